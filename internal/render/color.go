package render

const (
	ansiReset = "\x1b[0m"
	ansiGreen = "\x1b[32m"
)

func (r *Renderer) paint(color, line string) string {
	if !r.colorize {
		return line
	}
	return color + line + ansiReset
}
