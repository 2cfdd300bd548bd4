package render

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/mattn/go-isatty"
)

// Status is the value of the "status" key in structured supervisor output.
type Status string

const (
	StatusAlreadyRunning Status = "already_running"
	StatusStarted        Status = "started"
	StatusStarting       Status = "starting"
	StatusExited         Status = "exited"
	StatusError          Status = "error"
	StatusOK             Status = "ok"
)

// Outcome is a successful supervisor result.
type Outcome struct {
	Status  Status
	Message string
	PID     int
	// ExitCode is only meaningful for StatusExited; nil means the process
	// ended without an exit code (for example, killed by a signal).
	ExitCode *int
}

type statusObject struct {
	Status  Status `json:"status"`
	Message string `json:"message,omitempty"`
	PID     int    `json:"pid,omitempty"`
}

type exitedObject struct {
	Status   Status `json:"status"`
	ExitCode *int   `json:"exit_code"`
}

type errorObject struct {
	Error string `json:"error"`
}

type responseObject struct {
	Status   Status `json:"status"`
	Response string `json:"response"`
}

// Renderer writes outcomes to stdout/stderr in one output mode.
type Renderer struct {
	stdout     io.Writer
	stderr     io.Writer
	structured bool
	colorize   bool
}

// New builds a renderer. Human-mode lines are colorized only when stdout is a
// terminal.
func New(stdout, stderr io.Writer, structured bool) *Renderer {
	return &Renderer{
		stdout:     stdout,
		stderr:     stderr,
		structured: structured,
		colorize:   !structured && isTerminal(stdout),
	}
}

// Structured reports whether the renderer emits JSON.
func (r *Renderer) Structured() bool {
	return r.structured
}

// Outcome renders a supervisor success.
func (r *Renderer) Outcome(o Outcome) error {
	if r.structured {
		if o.Status == StatusExited {
			return r.writeJSON(r.stdout, exitedObject{Status: o.Status, ExitCode: o.ExitCode})
		}
		return r.writeJSON(r.stdout, statusObject{Status: o.Status, Message: structuredMessage(o), PID: o.PID})
	}
	for _, line := range humanLines(o) {
		if _, err := fmt.Fprintln(r.stdout, r.paint(ansiGreen, line)); err != nil {
			return err
		}
	}
	return nil
}

// SupervisorError renders a failure of the start protocol. Structured output
// keeps the supervisor's status shape; human output goes to stderr.
func (r *Renderer) SupervisorError(message string) error {
	if r.structured {
		return r.writeJSON(r.stdout, statusObject{Status: StatusError, Message: message})
	}
	return r.humanError(message)
}

// Response renders a payload returned by the management service. A JSON
// object payload is passed through compacted; anything else is wrapped so
// structured output stays one object per line.
func (r *Renderer) Response(payload string) error {
	if !r.structured {
		_, err := fmt.Fprintln(r.stdout, payload)
		return err
	}
	if isJSONObject(payload) {
		var buf bytes.Buffer
		if err := json.Compact(&buf, []byte(payload)); err == nil {
			buf.WriteByte('\n')
			_, err := r.stdout.Write(buf.Bytes())
			return err
		}
	}
	return r.writeJSON(r.stdout, responseObject{Status: StatusOK, Response: payload})
}

// DispatchError renders a failure returned by the remote dispatch client.
func (r *Renderer) DispatchError(message string) error {
	if r.structured {
		return r.writeJSON(r.stdout, errorObject{Error: message})
	}
	return r.humanError(message)
}

func (r *Renderer) humanError(message string) error {
	_, err := fmt.Fprintf(r.stderr, "Error: %s\n", message)
	return err
}

func (r *Renderer) writeJSON(w io.Writer, v any) error {
	enc := json.NewEncoder(w)
	enc.SetEscapeHTML(false)
	return enc.Encode(v)
}

func structuredMessage(o Outcome) string {
	if o.Message != "" {
		return o.Message
	}
	switch o.Status {
	case StatusAlreadyRunning:
		return "Service is already running"
	case StatusStarted:
		return "Service started in background"
	case StatusStarting:
		return "Service starting..."
	default:
		return ""
	}
}

func humanLines(o Outcome) []string {
	switch o.Status {
	case StatusAlreadyRunning:
		return []string{"Service is already running."}
	case StatusStarted:
		return []string{fmt.Sprintf("✓ Service started in background (PID: %d)", o.PID)}
	case StatusStarting:
		return []string{
			fmt.Sprintf("✓ Service starting... (PID: %d)", o.PID),
			"Press Ctrl+C to stop the service",
		}
	case StatusExited:
		code := "none"
		if o.ExitCode != nil {
			code = fmt.Sprintf("%d", *o.ExitCode)
		}
		return []string{"Service exited with code: " + code}
	default:
		if o.Message != "" {
			return []string{o.Message}
		}
		return []string{string(o.Status)}
	}
}

func isJSONObject(payload string) bool {
	trimmed := bytes.TrimSpace([]byte(payload))
	return len(trimmed) > 0 && trimmed[0] == '{' && json.Valid(trimmed)
}

func isTerminal(w io.Writer) bool {
	file, ok := w.(*os.File)
	if !ok {
		return false
	}
	fd := file.Fd()
	return isatty.IsTerminal(fd) || isatty.IsCygwinTerminal(fd)
}
