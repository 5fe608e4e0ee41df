package errors

import (
	"log/slog"
	"os"
)

// LogHandler is an ErrorHandler that writes errors to a structured logger.
type LogHandler struct {
	// Logger receives the records. Nil logs text to stderr.
	Logger *slog.Logger
	// Verbose adds stack traces to the records.
	Verbose bool
}

func (h *LogHandler) logger() *slog.Logger {
	if h.Logger != nil {
		return h.Logger
	}
	return slog.New(slog.NewTextHandler(os.Stderr, nil))
}

// HandleError logs a NodeError at error level.
func (h *LogHandler) HandleError(err *NodeError) {
	if err == nil {
		return
	}
	attrs := []any{"op", err.Op, "kind", err.Kind.String(), "err", err.Err}
	if err.Tag != 0 {
		attrs = append(attrs, "node", err.Tag)
	}
	if h.Verbose && err.StackTrace != "" {
		attrs = append(attrs, "stack", err.StackTrace)
	}
	h.logger().Error("animated node error", attrs...)
}

// HandlePanic logs a PanicError at error level.
func (h *LogHandler) HandlePanic(err *PanicError) {
	if err == nil {
		return
	}
	attrs := []any{"value", err.Value}
	if err.Op != "" {
		attrs = append(attrs, "op", err.Op)
	}
	if h.Verbose && err.StackTrace != "" {
		attrs = append(attrs, "stack", err.StackTrace)
	}
	h.logger().Error("animated panic", attrs...)
}
