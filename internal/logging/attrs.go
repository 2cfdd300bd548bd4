package logging

import "log/slog"

// Attr is re-exported so callers need not import log/slog for attributes.
type Attr = slog.Attr

func String(key, value string) Attr    { return slog.String(key, value) }
func Int(key string, value int) Attr   { return slog.Int(key, value) }
func Bool(key string, value bool) Attr { return slog.Bool(key, value) }

// Error attaches err under FieldError.
func Error(err error) Attr { return slog.Any(FieldError, err) }

// Args converts attrs for the variadic slog.Logger methods.
func Args(attrs ...Attr) []any {
	out := make([]any, len(attrs))
	for i := range attrs {
		out[i] = attrs[i]
	}
	return out
}

// NewNop returns a logger that discards everything.
func NewNop() *slog.Logger {
	return slog.New(slog.DiscardHandler)
}

// NewComponentLogger tags logger with a component name. A nil logger yields
// a no-op logger.
func NewComponentLogger(logger *slog.Logger, component string) *slog.Logger {
	if logger == nil {
		return NewNop()
	}
	return logger.With(slog.String(FieldComponent, component))
}
