package stats

import (
	"github.com/specialistvlad/csvexplore/internal/model"
)

// Summary describes every column of a table.
type Summary struct {
	Source  string
	Rows    int
	Columns []ColumnStats
}

// Empty reports whether the table had no rows.
func (s Summary) Empty() bool {
	return s.Rows == 0
}

// Describe computes the statistics of the named column. The column is looked
// up before any computation so a missing name is reported as such.
func Describe(table *model.Table, name string) (ColumnStats, error) {
	col, ok := table.Column(name)
	if !ok {
		return ColumnStats{}, model.NewColumnNotFound(name, table.Names())
	}
	return DescribeColumn(col), nil
}

// Summarize describes all columns in header order. Column statistics are
// left empty for a table without rows.
func Summarize(table *model.Table) Summary {
	s := Summary{Source: table.Source, Rows: table.Len()}
	s.Columns = make([]ColumnStats, 0, len(table.Columns()))
	for _, col := range table.Columns() {
		if s.Empty() {
			s.Columns = append(s.Columns, ColumnStats{Name: col.Name, Kind: col.Kind})
			continue
		}
		s.Columns = append(s.Columns, DescribeColumn(col))
	}
	return s
}
