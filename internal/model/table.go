package model

import (
	"fmt"
)

// Column is a named, uniformly typed sequence of cells.
type Column struct {
	Name   string
	Kind   Kind
	Values []Value
}

// Len returns the number of cells in the column.
func (c *Column) Len() int {
	return len(c.Values)
}

// NonMissing returns the number of cells that are not missing.
func (c *Column) NonMissing() int {
	n := 0
	for _, v := range c.Values {
		if !v.Missing {
			n++
		}
	}
	return n
}

// Numbers returns the parsed values of all non-missing cells of a numeric
// column, in row order. It returns nil for text columns.
func (c *Column) Numbers() []float64 {
	if c.Kind != Number {
		return nil
	}
	out := make([]float64, 0, len(c.Values))
	for _, v := range c.Values {
		if !v.Missing {
			out = append(out, v.Num)
		}
	}
	return out
}

// InferColumn runs the single type-inference pass over raw cells. The column
// is numeric when it has at least one non-missing cell and every non-missing
// cell parses as a float64.
func InferColumn(name string, raws []string, missing MissingSet) *Column {
	numeric := false
	nums := make([]float64, len(raws))
	miss := make([]bool, len(raws))
	for i, raw := range raws {
		if missing.IsMissing(raw) {
			miss[i] = true
			continue
		}
		f, ok := ParseNumber(raw)
		if !ok {
			numeric = false
			break
		}
		nums[i] = f
		numeric = true
	}
	col := &Column{Name: name, Values: make([]Value, len(raws))}
	if numeric {
		col.Kind = Number
		for i, raw := range raws {
			if miss[i] {
				col.Values[i] = MissingNumber(raw)
			} else {
				col.Values[i] = NumberValue(raw, nums[i])
			}
		}
		return col
	}

	col.Kind = Text
	for i, raw := range raws {
		col.Values[i] = TextValue(raw, missing.IsMissing(raw))
	}
	return col
}

// Table is an ordered set of equally long columns. A Table is never mutated
// after construction; Select produces a new one.
type Table struct {
	Source  string
	columns []*Column
	index   map[string]int
	rows    int
}

// NewTable builds a table from columns, which must all have the same length
// and unique names.
func NewTable(source string, columns ...*Column) (*Table, error) {
	t := &Table{
		Source:  source,
		columns: columns,
		index:   make(map[string]int, len(columns)),
	}
	for i, col := range columns {
		if _, dup := t.index[col.Name]; dup {
			return nil, fmt.Errorf("duplicate column name %q", col.Name)
		}
		if i == 0 {
			t.rows = col.Len()
		} else if col.Len() != t.rows {
			return nil, fmt.Errorf("column %q has %d values, want %d", col.Name, col.Len(), t.rows)
		}
		t.index[col.Name] = i
	}
	return t, nil
}

// Len returns the number of rows.
func (t *Table) Len() int {
	return t.rows
}

// Columns returns the columns in header order.
func (t *Table) Columns() []*Column {
	return t.columns
}

// Names returns the column names in header order.
func (t *Table) Names() []string {
	names := make([]string, len(t.columns))
	for i, col := range t.columns {
		names[i] = col.Name
	}
	return names
}

// Column looks up a column by name.
func (t *Table) Column(name string) (*Column, bool) {
	i, ok := t.index[name]
	if !ok {
		return nil, false
	}
	return t.columns[i], true
}

// Record returns the raw text of row i, ready to be written as CSV.
func (t *Table) Record(i int) []string {
	rec := make([]string, len(t.columns))
	for j, col := range t.columns {
		rec[j] = col.Values[i].Raw
	}
	return rec
}

// Select returns a new table holding the given rows, in the given order,
// with every column of t. Column kinds are carried over unchanged.
func (t *Table) Select(rows []int) *Table {
	cols := make([]*Column, len(t.columns))
	for j, col := range t.columns {
		values := make([]Value, len(rows))
		for k, r := range rows {
			values[k] = col.Values[r]
		}
		cols[j] = &Column{Name: col.Name, Kind: col.Kind, Values: values}
	}
	index := make(map[string]int, len(t.index))
	for name, i := range t.index {
		index[name] = i
	}
	return &Table{Source: t.Source, columns: cols, index: index, rows: len(rows)}
}
