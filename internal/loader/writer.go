package loader

import (
	"context"
	"encoding/csv"
	"io"

	"github.com/specialistvlad/csvexplore/internal/ctxlog"
	"github.com/specialistvlad/csvexplore/internal/fsutil"
	"github.com/specialistvlad/csvexplore/internal/model"
)

// Write serializes table to path with the same header it was loaded with.
// Nothing is left at path when writing fails.
func Write(ctx context.Context, table *model.Table, path string) error {
	logger := ctxlog.FromContext(ctx)
	logger.Debug("Writing table.", "path", path, "rows", table.Len())

	err := fsutil.WriteFileAtomic(path, 0o644, func(w io.Writer) error {
		return Encode(w, table)
	})
	if err != nil {
		return model.NewWriteError(path, err)
	}

	logger.Info("Table written.", "path", path, "rows", table.Len())
	return nil
}

// Encode writes table as CSV to w, header first, cells as their raw text.
func Encode(w io.Writer, table *model.Table) error {
	cw := csv.NewWriter(w)
	if err := cw.Write(table.Names()); err != nil {
		return err
	}
	for i := 0; i < table.Len(); i++ {
		if err := cw.Write(table.Record(i)); err != nil {
			return err
		}
	}
	cw.Flush()
	return cw.Error()
}
