package cli

import (
	"context"
	"flag"
	"fmt"
	"io"
	"log/slog"
	"strings"

	"github.com/specialistvlad/csvexplore/internal/app"
	"github.com/specialistvlad/csvexplore/internal/config"
)

// Exit codes.
const (
	ExitFailure = 1
	ExitUsage   = 2
)

// ExitError is a custom error type that includes a specific exit code.
type ExitError struct {
	Code    int
	Message string
	Err     error
}

// Error implements the error interface for ExitError.
func (e *ExitError) Error() string {
	return e.Message
}

// Unwrap returns the wrapped cause, if any.
func (e *ExitError) Unwrap() error {
	return e.Err
}

// Failure wraps an operation error so main exits with ExitFailure.
func Failure(err error) *ExitError {
	return &ExitError{Code: ExitFailure, Message: err.Error(), Err: err}
}

func usageError(format string, args ...any) *ExitError {
	return &ExitError{Code: ExitUsage, Message: fmt.Sprintf(format, args...)}
}

// Parse processes command-line arguments. It returns a populated app.Config,
// a boolean indicating if the program should exit cleanly, or an ExitError.
// loader reads the optional --config settings file.
func Parse(args []string, output io.Writer, loader config.Loader) (*app.Config, bool, error) {
	slog.Debug("CLI parser started.")
	flagSet := flag.NewFlagSet("csvexplore", flag.ContinueOnError)
	flagSet.SetOutput(output)

	flagSet.Usage = func() {
		fmt.Fprint(output, `
csvexplore - Summarize, describe and filter CSV files.

Usage:
  csvexplore --file PATH --summary
  csvexplore --file PATH --column NAME
  csvexplore --file PATH --filter EXPR --out PATH

Filter expressions compare one column with a value using one of
>=, <=, ==, !=, >, <. For example: heart_rate>120, status==ok.

Options:
`)
		flagSet.PrintDefaults()
	}

	fileFlag := flagSet.String("file", "", "Path to the input CSV file (required).")
	summaryFlag := flagSet.Bool("summary", false, "Print summary statistics for every column.")
	columnFlag := flagSet.String("column", "", "Describe a single column.")
	filterFlag := flagSet.String("filter", "", "Keep rows matching EXPR, e.g. 'heart_rate>120'.")
	outFlag := flagSet.String("out", "", "Destination CSV for --filter.")
	configFlag := flagSet.String("config", "", "Path to an HCL settings file or directory.")
	previewFlag := flagSet.Int("preview", app.DefaultPreviewRows, "Filtered rows printed to stdout. 0 disables the preview.")
	precisionFlag := flagSet.Int("precision", app.DefaultPrecision, "Decimals shown for numeric statistics.")
	logFormatFlag := flagSet.String("log-format", app.DefaultLogFormat, "Log output format. Options: 'text' or 'json'.")
	logLevelFlag := flagSet.String("log-level", app.DefaultLogLevel, "Set the logging level. Options: 'debug', 'info', 'warn', 'error'.")
	seqURLFlag := flagSet.String("seq-url", "", "Seq server URL to ship logs to. Empty disables it.")

	if err := flagSet.Parse(args); err != nil {
		if err == flag.ErrHelp {
			return nil, true, nil
		}
		return nil, false, &ExitError{Code: ExitUsage, Message: err.Error(), Err: err}
	}
	slog.Debug("Arguments parsed successfully.")

	if flagSet.NArg() > 0 {
		return nil, false, usageError("unexpected arguments: %s", strings.Join(flagSet.Args(), " "))
	}

	explicit := make(map[string]bool)
	flagSet.Visit(func(f *flag.Flag) { explicit[f.Name] = true })

	if len(args) == 0 {
		slog.Debug("No arguments provided, printing usage and exiting.")
		flagSet.Usage()
		return nil, true, nil
	}

	mode, err := selectMode(*summaryFlag, explicit["column"], explicit["filter"])
	if err != nil {
		return nil, false, err
	}
	if explicit["out"] && mode != app.ModeFilter {
		return nil, false, usageError("--out is only valid with --filter")
	}

	settings := &config.Settings{}
	if *configFlag != "" {
		loaded, err := loader.Load(context.Background(), *configFlag)
		if err != nil {
			return nil, false, usageError("failed to load settings: %v", err)
		}
		settings = loaded
	}
	slog.Debug("Settings resolved.", "config", *configFlag)

	cfg := app.Config{
		FilePath:      *fileFlag,
		Mode:          mode,
		Column:        *columnFlag,
		Filter:        *filterFlag,
		OutPath:       *outFlag,
		PreviewRows:   pick(explicit["preview"], *previewFlag, settings.PreviewRows),
		Precision:     pick(explicit["precision"], *precisionFlag, settings.Precision),
		MissingValues: settings.MissingValues,
		LogFormat:     strings.ToLower(pick(explicit["log-format"], *logFormatFlag, settings.LogFormat)),
		LogLevel:      strings.ToLower(pick(explicit["log-level"], *logLevelFlag, settings.LogLevel)),
	}

	if settings.Seq != nil {
		cfg.Seq = &app.SeqConfig{
			URL:           settings.Seq.URL,
			BatchSize:     settings.Seq.BatchSize,
			FlushInterval: settings.Seq.FlushInterval,
		}
	}
	if explicit["seq-url"] {
		if cfg.Seq == nil {
			cfg.Seq = &app.SeqConfig{BatchSize: config.DefaultSeqBatchSize, FlushInterval: config.DefaultSeqFlushInterval}
		}
		cfg.Seq.URL = *seqURLFlag
	}

	validated, err := app.NewConfig(cfg)
	if err != nil {
		return nil, false, usageError("%s", err.Error())
	}

	slog.Debug("CLI parser finished successfully.", "mode", validated.Mode.String())
	return validated, false, nil
}

// selectMode enforces that exactly one operation was requested.
func selectMode(summary, column, filter bool) (app.Mode, error) {
	var modes []string
	mode := app.ModeNone
	if summary {
		modes = append(modes, "--summary")
		mode = app.ModeSummary
	}
	if column {
		modes = append(modes, "--column")
		mode = app.ModeDescribe
	}
	if filter {
		modes = append(modes, "--filter")
		mode = app.ModeFilter
	}

	switch len(modes) {
	case 0:
		return app.ModeNone, usageError("one of --summary, --column or --filter is required")
	case 1:
		return mode, nil
	default:
		return app.ModeNone, usageError("%s are mutually exclusive", strings.Join(modes, ", "))
	}
}

// pick returns the flag value when it was set on the command line, then the
// settings file value, then the flag's default.
func pick[T any](explicit bool, flagValue T, fromFile *T) T {
	if explicit || fromFile == nil {
		return flagValue
	}
	return *fromFile
}
