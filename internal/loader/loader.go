// Package loader reads delimited files into model.Table values and writes
// tables back out as CSV.
package loader

import (
	"bufio"
	"bytes"
	"context"
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"

	"github.com/specialistvlad/csvexplore/internal/ctxlog"
	"github.com/specialistvlad/csvexplore/internal/fsutil"
	"github.com/specialistvlad/csvexplore/internal/model"
)

// errNoHeader is reported for input without a single record.
var errNoHeader = errors.New("no header row found")

// utf8BOM leads spreadsheet "CSV UTF-8" exports.
var utf8BOM = []byte{0xEF, 0xBB, 0xBF}

// Options tune how cells are interpreted.
type Options struct {
	// MissingValues are extra tokens treated as missing cells, on top of
	// model.DefaultMissingTokens.
	MissingValues []string
}

// Load opens path and reads it as comma-delimited text with a header row.
func Load(ctx context.Context, path string, opts Options) (*model.Table, error) {
	logger := ctxlog.FromContext(ctx)
	logger.Debug("Opening input file.", "path", path)

	f, err := os.Open(path)
	if err != nil {
		if fsutil.IsNotExist(err) {
			return nil, model.NewFileNotFound(path, err)
		}
		return nil, model.NewParseError(path, err)
	}
	defer f.Close()

	info, err := f.Stat()
	if err != nil {
		return nil, model.NewParseError(path, err)
	}
	if info.IsDir() {
		return nil, model.NewParseError(path, fmt.Errorf("is a directory"))
	}

	return Read(ctx, f, path, opts)
}

// Read parses CSV from r. name identifies the source in errors and logs.
func Read(ctx context.Context, r io.Reader, name string, opts Options) (*model.Table, error) {
	logger := ctxlog.FromContext(ctx)

	reader := csv.NewReader(skipBOM(r))
	// Zero makes the reader lock the width to the header's.
	reader.FieldsPerRecord = 0

	header, err := reader.Read()
	if err == io.EOF {
		return nil, model.NewParseError(name, errNoHeader)
	}
	if err != nil {
		return nil, model.NewParseError(name, err)
	}
	names := normalizeHeader(header)

	cells := make([][]string, len(names))
	for {
		rec, err := reader.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, model.NewParseError(name, err)
		}
		for i, field := range rec {
			cells[i] = append(cells[i], field)
		}
	}

	missing := model.NewMissingSet(opts.MissingValues...)
	columns := make([]*model.Column, len(names))
	for i, colName := range names {
		columns[i] = model.InferColumn(colName, cells[i], missing)
		logger.Debug("Column inferred.", "column", colName, "kind", columns[i].Kind, "non_missing", columns[i].NonMissing())
	}

	table, err := model.NewTable(name, columns...)
	if err != nil {
		return nil, model.NewParseError(name, err)
	}
	logger.Info("Table loaded.", "source", name, "rows", table.Len(), "columns", len(columns))
	return table, nil
}

// skipBOM drops a leading UTF-8 byte order mark so it does not end up in
// the first column name.
func skipBOM(r io.Reader) io.Reader {
	br := bufio.NewReader(r)
	if prefix, err := br.Peek(len(utf8BOM)); err == nil && bytes.Equal(prefix, utf8BOM) {
		_, _ = br.Discard(len(utf8BOM))
	}
	return br
}

// normalizeHeader names blank header cells "Unnamed: <i>" and suffixes
// repeated names with ".1", ".2", ... in order of appearance.
func normalizeHeader(header []string) []string {
	names := make([]string, len(header))
	seen := make(map[string]int, len(header))
	taken := make(map[string]bool, len(header))
	for _, h := range header {
		taken[h] = true
	}
	for i, h := range header {
		if h == "" {
			h = "Unnamed: " + strconv.Itoa(i)
		}
		name := h
		if n, dup := seen[h]; dup {
			for {
				n++
				name = h + "." + strconv.Itoa(n)
				if !taken[name] {
					break
				}
			}
			seen[h] = n
		} else {
			seen[h] = 0
		}
		taken[name] = true
		names[i] = name
	}
	return names
}
