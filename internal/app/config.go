package app

import (
	"errors"
	"fmt"
	"time"
)

// Mode selects the single operation a run performs.
type Mode int

const (
	ModeNone Mode = iota
	ModeSummary
	ModeDescribe
	ModeFilter
)

func (m Mode) String() string {
	switch m {
	case ModeSummary:
		return "summary"
	case ModeDescribe:
		return "describe"
	case ModeFilter:
		return "filter"
	default:
		return "none"
	}
}

const (
	DefaultLogLevel    = "warn"
	DefaultLogFormat   = "text"
	DefaultPreviewRows = 10
	DefaultPrecision   = 6
)

// Config holds all the necessary configuration for an App instance to run.
type Config struct {
	FilePath string
	Mode     Mode
	Column   string // ModeDescribe
	Filter   string // ModeFilter
	OutPath  string // ModeFilter

	PreviewRows   int
	Precision     int
	MissingValues []string

	LogFormat string
	LogLevel  string
	Seq       *SeqConfig
}

// SeqConfig enables shipping logs to a Seq server.
type SeqConfig struct {
	URL           string
	BatchSize     int
	FlushInterval time.Duration
}

// NewConfig validates cfg and returns a copy of it.
func NewConfig(cfg Config) (*Config, error) {
	if cfg.FilePath == "" {
		return nil, errors.New("file path is required (--file)")
	}

	switch cfg.Mode {
	case ModeSummary:
	case ModeDescribe:
		if cfg.Column == "" {
			return nil, errors.New("column name must not be empty")
		}
	case ModeFilter:
		if cfg.Filter == "" {
			return nil, errors.New("filter expression must not be empty")
		}
		if cfg.OutPath == "" {
			return nil, errors.New("--out is required with --filter")
		}
	default:
		return nil, errors.New("one of --summary, --column or --filter is required")
	}

	switch cfg.LogLevel {
	case "debug", "info", "warn", "error":
	default:
		return nil, fmt.Errorf("invalid log-level %q: must be 'debug', 'info', 'warn', or 'error'", cfg.LogLevel)
	}
	switch cfg.LogFormat {
	case "text", "json":
	default:
		return nil, fmt.Errorf("invalid log-format %q: must be 'text' or 'json'", cfg.LogFormat)
	}

	if cfg.PreviewRows < 0 {
		return nil, fmt.Errorf("preview rows must not be negative, got %d", cfg.PreviewRows)
	}
	if cfg.Precision < 0 || cfg.Precision > 17 {
		return nil, fmt.Errorf("precision must be between 0 and 17, got %d", cfg.Precision)
	}
	if cfg.Seq != nil && cfg.Seq.URL == "" {
		cfg.Seq = nil
	}

	return &cfg, nil
}
