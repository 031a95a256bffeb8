package hcl

import (
	"context"
	"fmt"
	"time"

	"github.com/hashicorp/hcl/v2"
	"github.com/hashicorp/hcl/v2/gohcl"
	"github.com/hashicorp/hcl/v2/hclparse"

	"github.com/specialistvlad/csvexplore/internal/config"
	"github.com/specialistvlad/csvexplore/internal/ctxlog"
	"github.com/specialistvlad/csvexplore/internal/fsutil"
)

// Loader is the HCL implementation of config.Loader.
type Loader struct {
	lookupEnv lookupEnvFunc
}

var _ config.Loader = (*Loader)(nil)

// NewLoader creates a Loader that resolves env() against the process
// environment.
func NewLoader() *Loader {
	return &Loader{}
}

// Load parses every .hcl file found under paths and merges them in order.
func (l *Loader) Load(ctx context.Context, paths ...string) (*config.Settings, error) {
	logger := ctxlog.FromContext(ctx)

	parser := hclparse.NewParser()
	evalCtx := newEvalContext(l.lookupEnv)
	settings := &config.Settings{}

	for _, path := range paths {
		files, err := fsutil.FindFilesByExtension(path, ".hcl")
		if err != nil {
			return nil, fmt.Errorf("failed to find settings files in %s: %w", path, err)
		}
		if len(files) == 0 {
			logger.Warn("No .hcl settings files found in path.", "path", path)
		}

		for _, file := range files {
			logger.Debug("Loading settings file.", "file", file)
			s, err := l.loadFile(parser, evalCtx, file)
			if err != nil {
				return nil, err
			}
			settings.Merge(s)
		}
	}

	return settings, nil
}

func (l *Loader) loadFile(parser *hclparse.Parser, evalCtx *hcl.EvalContext, path string) (*config.Settings, error) {
	hclFile, diags := parser.ParseHCLFile(path)
	if diags.HasErrors() {
		return nil, fmt.Errorf("failed to parse settings file %s: %w", path, diags)
	}

	var parsed settingsFile
	diags = gohcl.DecodeBody(hclFile.Body, evalCtx, &parsed)
	if diags.HasErrors() {
		return nil, fmt.Errorf("failed to decode settings file %s: %w", path, diags)
	}

	s, err := translate(&parsed)
	if err != nil {
		return nil, fmt.Errorf("invalid settings file %s: %w", path, err)
	}
	return s, nil
}

// translate converts the HCL schema into the agnostic model.
func translate(f *settingsFile) (*config.Settings, error) {
	s := &config.Settings{
		LogLevel:      f.LogLevel,
		LogFormat:     f.LogFormat,
		PreviewRows:   f.PreviewRows,
		Precision:     f.Precision,
		MissingValues: f.MissingValues,
	}
	if f.Seq == nil {
		return s, nil
	}

	seq := &config.Seq{URL: f.Seq.URL, BatchSize: config.DefaultSeqBatchSize, FlushInterval: config.DefaultSeqFlushInterval}
	if f.Seq.BatchSize != nil {
		if *f.Seq.BatchSize < 1 {
			return nil, fmt.Errorf("seq.batch_size must be at least 1, got %d", *f.Seq.BatchSize)
		}
		seq.BatchSize = *f.Seq.BatchSize
	}
	if f.Seq.FlushInterval != nil {
		d, err := time.ParseDuration(*f.Seq.FlushInterval)
		if err != nil {
			return nil, fmt.Errorf("seq.flush_interval: %w", err)
		}
		seq.FlushInterval = d
	}
	s.Seq = seq
	return s, nil
}
