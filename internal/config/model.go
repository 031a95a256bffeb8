package config

import (
	"time"
)

// Settings is the unified representation of a settings file.
type Settings struct {
	LogLevel      *string
	LogFormat     *string
	PreviewRows   *int
	Precision     *int
	MissingValues []string
	Seq           *Seq
}

// Defaults for a seq block that omits the optional attributes.
const (
	DefaultSeqBatchSize     = 1
	DefaultSeqFlushInterval = 500 * time.Millisecond
)

// Seq configures shipping of log records to a Seq server.
type Seq struct {
	URL           string
	BatchSize     int
	FlushInterval time.Duration
}

// Merge overlays the fields set in other onto s and returns s.
func (s *Settings) Merge(other *Settings) *Settings {
	if other == nil {
		return s
	}
	if other.LogLevel != nil {
		s.LogLevel = other.LogLevel
	}
	if other.LogFormat != nil {
		s.LogFormat = other.LogFormat
	}
	if other.PreviewRows != nil {
		s.PreviewRows = other.PreviewRows
	}
	if other.Precision != nil {
		s.Precision = other.Precision
	}
	if len(other.MissingValues) > 0 {
		s.MissingValues = append([]string(nil), other.MissingValues...)
	}
	if other.Seq != nil {
		seq := *other.Seq
		s.Seq = &seq
	}
	return s
}
