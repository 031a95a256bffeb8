package app

import (
	"context"
	"io"
	"log/slog"

	slogseq "github.com/sokkalf/slog-seq"
)

// newLogger creates and configures a new slog.Logger instance writing to
// outW. When seq is set, records are also shipped to the Seq server. It does
// not set the global logger. The returned func flushes and closes the Seq
// sink and is always safe to call.
func newLogger(levelStr, formatStr string, outW io.Writer, seq *SeqConfig) (*slog.Logger, func()) {
	var level slog.Level
	switch levelStr {
	case "debug":
		level = slog.LevelDebug
	case "info":
		level = slog.LevelInfo
	case "warn":
		level = slog.LevelWarn
	case "error":
		level = slog.LevelError
	default:
		level = slog.LevelInfo
	}

	handlerOpts := &slog.HandlerOptions{Level: level}
	var handler slog.Handler

	if formatStr == "json" {
		handler = slog.NewJSONHandler(outW, handlerOpts)
	} else {
		handler = slog.NewTextHandler(outW, handlerOpts)
	}

	if seq == nil {
		return slog.New(handler), func() {}
	}

	_, seqHandler := slogseq.NewLogger(
		seq.URL,
		slogseq.WithBatchSize(seq.BatchSize),
		slogseq.WithFlushInterval(seq.FlushInterval),
		slogseq.WithHandlerOptions(handlerOpts),
	)
	if seqHandler == nil {
		logger := slog.New(handler)
		logger.Warn("Seq sink unavailable, logging to console only.", "url", seq.URL)
		return logger, func() {}
	}

	multi := &multiHandler{handlers: []slog.Handler{handler, seqHandler}}
	return slog.New(multi), func() { seqHandler.Close() }
}

// multiHandler forwards log records to multiple handlers.
type multiHandler struct {
	handlers []slog.Handler
}

func (m *multiHandler) Enabled(ctx context.Context, level slog.Level) bool {
	for _, h := range m.handlers {
		if h.Enabled(ctx, level) {
			return true
		}
	}
	return false
}

func (m *multiHandler) Handle(ctx context.Context, r slog.Record) error {
	for _, h := range m.handlers {
		if !h.Enabled(ctx, r.Level) {
			continue
		}
		if err := h.Handle(ctx, r.Clone()); err != nil {
			return err
		}
	}
	return nil
}

func (m *multiHandler) WithAttrs(attrs []slog.Attr) slog.Handler {
	handlers := make([]slog.Handler, len(m.handlers))
	for i, h := range m.handlers {
		handlers[i] = h.WithAttrs(attrs)
	}
	return &multiHandler{handlers: handlers}
}

func (m *multiHandler) WithGroup(name string) slog.Handler {
	handlers := make([]slog.Handler, len(m.handlers))
	for i, h := range m.handlers {
		handlers[i] = h.WithGroup(name)
	}
	return &multiHandler{handlers: handlers}
}
