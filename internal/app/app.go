package app

import (
	"io"
	"log/slog"
)

// App encapsulates the application's dependencies, configuration, and lifecycle.
type App struct {
	outW     io.Writer
	logger   *slog.Logger
	config   *Config
	closeLog func()
}

// NewApp is the constructor for the main application. Reports go to outW,
// logs go to logW.
func NewApp(outW, logW io.Writer, cfg *Config) *App {
	logger, closeLog := newLogger(cfg.LogLevel, cfg.LogFormat, logW, cfg.Seq)
	logger.Debug("Logger configured successfully.", "level", cfg.LogLevel, "format", cfg.LogFormat, "seq", cfg.Seq != nil)

	return &App{
		outW:     outW,
		logger:   logger,
		config:   cfg,
		closeLog: closeLog,
	}
}

// Close flushes any buffered log sink.
func (a *App) Close() {
	a.closeLog()
}
