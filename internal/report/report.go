// Package report renders statistics and table previews as aligned text.
package report

import (
	"fmt"
	"io"
	"math"
	"strconv"
	"strings"
	"text/tabwriter"

	"github.com/specialistvlad/csvexplore/internal/model"
	"github.com/specialistvlad/csvexplore/internal/stats"
)

// NoRowsMessage is printed instead of statistics for a table without rows.
const NoRowsMessage = "no rows: the table is empty, no statistics to compute"

// Printer writes reports to an io.Writer.
type Printer struct {
	w         io.Writer
	precision int
}

// New returns a Printer. precision is the number of decimals used for
// numeric statistics; negative means shortest exact form.
func New(w io.Writer, precision int) *Printer {
	return &Printer{w: w, precision: precision}
}

func (p *Printer) table() *tabwriter.Writer {
	return tabwriter.NewWriter(p.w, 0, 0, 2, ' ', tabwriter.AlignRight)
}

// Info prints the "Basic info" block: shape and per-column kind and
// non-missing counts.
func (p *Printer) Info(t *model.Table) error {
	fmt.Fprintln(p.w, "Basic info:")
	fmt.Fprintf(p.w, "source: %s\n", t.Source)
	fmt.Fprintf(p.w, "rows: %d, columns: %d\n", t.Len(), len(t.Columns()))

	tw := tabwriter.NewWriter(p.w, 0, 0, 2, ' ', 0)
	fmt.Fprintln(tw, "#\tcolumn\tnon-missing\tkind\t")
	for i, col := range t.Columns() {
		fmt.Fprintf(tw, "%d\t%s\t%d\t%s\t\n", i, col.Name, col.NonMissing(), col.Kind)
	}
	return tw.Flush()
}

// Summary prints the statistics of every column side by side, one column of
// output per table column. Rows that do not apply to a column's kind are
// left blank.
func (p *Printer) Summary(s stats.Summary) error {
	fmt.Fprintln(p.w, "Summary stats:")
	if s.Empty() {
		_, err := fmt.Fprintln(p.w, NoRowsMessage)
		return err
	}

	tw := p.table()
	header := []string{""}
	for _, c := range s.Columns {
		header = append(header, c.Name)
	}
	writeRow(tw, header)

	hasNumeric, hasText := false, false
	for _, c := range s.Columns {
		hasNumeric = hasNumeric || c.Numeric != nil
		hasText = hasText || c.Categorical != nil
	}

	addRow := func(label string, numeric func(*stats.Numeric) string, text func(*stats.Categorical) string) {
		row := []string{label}
		for _, c := range s.Columns {
			switch {
			case c.Numeric != nil && numeric != nil:
				row = append(row, numeric(c.Numeric))
			case c.Categorical != nil && text != nil:
				row = append(row, text(c.Categorical))
			default:
				row = append(row, "")
			}
		}
		writeRow(tw, row)
	}

	addRow("count",
		func(n *stats.Numeric) string { return strconv.Itoa(n.Count) },
		func(c *stats.Categorical) string { return strconv.Itoa(c.Count) })
	if hasText {
		addRow("unique", nil, func(c *stats.Categorical) string { return strconv.Itoa(c.Unique) })
		addRow("top", nil, func(c *stats.Categorical) string { return c.Top })
		addRow("freq", nil, func(c *stats.Categorical) string { return strconv.Itoa(c.Freq) })
	}
	if hasNumeric {
		for _, r := range numericRows {
			get := r.get
			addRow(r.label, func(n *stats.Numeric) string { return p.number(get(n)) }, nil)
		}
	}
	return tw.Flush()
}

// Column prints the description of a single column.
func (p *Printer) Column(cs stats.ColumnStats) error {
	fmt.Fprintf(p.w, "Summary for column: %s\n", cs.Name)
	if cs.Count() == 0 {
		_, err := fmt.Fprintf(p.w, "no values: %d rows, none with a value\n", cs.Rows)
		return err
	}

	tw := tabwriter.NewWriter(p.w, 0, 0, 2, ' ', 0)
	switch {
	case cs.Numeric != nil:
		fmt.Fprintf(tw, "count\t%d\n", cs.Numeric.Count)
		for _, r := range numericRows {
			fmt.Fprintf(tw, "%s\t%s\n", r.label, p.number(r.get(cs.Numeric)))
		}
	case cs.Categorical != nil:
		c := cs.Categorical
		fmt.Fprintf(tw, "count\t%d\n", c.Count)
		fmt.Fprintf(tw, "unique\t%d\n", c.Unique)
		fmt.Fprintf(tw, "top\t%s\n", cellEscaper.Replace(c.Top))
		fmt.Fprintf(tw, "freq\t%d\n", c.Freq)
	}
	fmt.Fprintf(tw, "kind\t%s\n", cs.Kind)
	return tw.Flush()
}

// Preview prints up to limit rows of t under a header line.
func (p *Printer) Preview(t *model.Table, limit int) error {
	shown := t.Len()
	if limit >= 0 && shown > limit {
		shown = limit
	}
	fmt.Fprintf(p.w, "Filtered rows (first %d of %d):\n", shown, t.Len())
	if t.Len() == 0 {
		_, err := fmt.Fprintln(p.w, "no rows matched")
		return err
	}

	tw := p.table()
	writeRow(tw, append([]string{""}, t.Names()...))
	for i := 0; i < shown; i++ {
		writeRow(tw, append([]string{strconv.Itoa(i)}, t.Record(i)...))
	}
	return tw.Flush()
}

var numericRows = []struct {
	label string
	get   func(*stats.Numeric) float64
}{
	{"mean", func(n *stats.Numeric) float64 { return n.Mean }},
	{"std", func(n *stats.Numeric) float64 { return n.Std }},
	{"min", func(n *stats.Numeric) float64 { return n.Min }},
	{"25%", func(n *stats.Numeric) float64 { return n.Q25 }},
	{"50%", func(n *stats.Numeric) float64 { return n.Q50 }},
	{"75%", func(n *stats.Numeric) float64 { return n.Q75 }},
	{"max", func(n *stats.Numeric) float64 { return n.Max }},
}

func (p *Printer) number(f float64) string {
	if math.IsNaN(f) {
		return "NaN"
	}
	return strconv.FormatFloat(f, 'f', p.precision, 64)
}

// cellEscaper keeps embedded tabs and newlines from breaking the layout.
var cellEscaper = strings.NewReplacer("\t", " ", "\r", " ", "\n", " ")

func writeRow(w io.Writer, cells []string) {
	for i, c := range cells {
		cells[i] = cellEscaper.Replace(c)
	}
	fmt.Fprintln(w, strings.Join(cells, "\t")+"\t")
}
