package app

import (
	"context"
	"fmt"

	"github.com/specialistvlad/csvexplore/internal/ctxlog"
	"github.com/specialistvlad/csvexplore/internal/filter"
	"github.com/specialistvlad/csvexplore/internal/loader"
	"github.com/specialistvlad/csvexplore/internal/model"
	"github.com/specialistvlad/csvexplore/internal/report"
	"github.com/specialistvlad/csvexplore/internal/stats"
)

// Run loads the input file and performs the configured operation. Every
// failure is returned as is; nothing is retried.
func (a *App) Run(ctx context.Context) error {
	ctx = ctxlog.With(ctxlog.WithLogger(ctx, a.logger), "mode", a.config.Mode.String())
	logger := ctxlog.FromContext(ctx)
	logger.Debug("App.Run method started.", "file", a.config.FilePath)

	table, err := loader.Load(ctx, a.config.FilePath, loader.Options{MissingValues: a.config.MissingValues})
	if err != nil {
		return err
	}

	printer := report.New(a.outW, a.config.Precision)

	switch a.config.Mode {
	case ModeSummary:
		err = a.summary(printer, table)
	case ModeDescribe:
		err = a.describe(printer, table)
	case ModeFilter:
		err = a.filter(ctx, printer, table)
	default:
		err = fmt.Errorf("unsupported mode %q", a.config.Mode)
	}
	if err != nil {
		return err
	}

	logger.Debug("App.Run method finished.")
	return nil
}

func (a *App) summary(p *report.Printer, table *model.Table) error {
	if err := p.Info(table); err != nil {
		return err
	}
	fmt.Fprintln(a.outW)
	return p.Summary(stats.Summarize(table))
}

func (a *App) describe(p *report.Printer, table *model.Table) error {
	cs, err := stats.Describe(table, a.config.Column)
	if err != nil {
		return err
	}
	return p.Column(cs)
}

func (a *App) filter(ctx context.Context, p *report.Printer, table *model.Table) error {
	expr, err := filter.Parse(a.config.Filter)
	if err != nil {
		return err
	}

	result, err := filter.Apply(ctx, table, expr)
	if err != nil {
		return err
	}

	if a.config.PreviewRows > 0 {
		if err := p.Preview(result, a.config.PreviewRows); err != nil {
			return err
		}
		fmt.Fprintln(a.outW)
	}

	if err := loader.Write(ctx, result, a.config.OutPath); err != nil {
		return err
	}
	fmt.Fprintf(a.outW, "Filtered data saved to %s (%d of %d rows)\n", a.config.OutPath, result.Len(), table.Len())
	return nil
}
