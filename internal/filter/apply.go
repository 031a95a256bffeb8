package filter

import (
	"context"
	"fmt"
	"strings"

	"github.com/specialistvlad/csvexplore/internal/ctxlog"
	"github.com/specialistvlad/csvexplore/internal/model"
)

// Predicate tests a single cell.
type Predicate func(v model.Value) bool

// Compile checks expr against the column it names and returns the cell
// predicate. Ordering operators need a numeric column and a numeric
// threshold; equality operators work across kinds by comparing text.
func Compile(table *model.Table, expr Expression) (*model.Column, Predicate, error) {
	col, ok := table.Column(expr.Column)
	if !ok {
		return nil, nil, model.NewColumnNotFound(expr.Column, table.Names())
	}

	numeric := col.Kind == model.Number && expr.Threshold.IsNumeric

	if expr.Operator.Ordering() {
		switch {
		case col.Kind != model.Number:
			return nil, nil, model.NewTypeMismatch(col.Name,
				fmt.Sprintf("operator %s needs a numeric column, column is %s", expr.Operator, col.Kind))
		case !expr.Threshold.IsNumeric:
			return nil, nil, model.NewTypeMismatch(col.Name,
				fmt.Sprintf("operator %s needs a numeric value, got %s", expr.Operator, expr.Threshold))
		}
	}

	if numeric {
		return col, numberPredicate(expr.Operator, expr.Threshold.Num), nil
	}
	return col, textPredicate(expr.Operator, expr.Threshold.Text), nil
}

// Apply returns a new table with the rows of table that satisfy expr, in
// their original order and with all columns.
func Apply(ctx context.Context, table *model.Table, expr Expression) (*model.Table, error) {
	logger := ctxlog.FromContext(ctx)

	col, pred, err := Compile(table, expr)
	if err != nil {
		return nil, err
	}

	var rows []int
	for i, v := range col.Values {
		if pred(v) {
			rows = append(rows, i)
		}
	}

	logger.Debug("Filter applied.", "expression", expr.String(), "matched", len(rows), "total", table.Len())
	return table.Select(rows), nil
}

// Missing cells satisfy only !=.
func numberPredicate(op Operator, threshold float64) Predicate {
	var cmp func(float64) bool
	switch op {
	case OpGreater:
		cmp = func(x float64) bool { return x > threshold }
	case OpLess:
		cmp = func(x float64) bool { return x < threshold }
	case OpGreaterEqual:
		cmp = func(x float64) bool { return x >= threshold }
	case OpLessEqual:
		cmp = func(x float64) bool { return x <= threshold }
	case OpEqual:
		cmp = func(x float64) bool { return x == threshold }
	case OpNotEqual:
		cmp = func(x float64) bool { return x != threshold }
	default:
		panic(fmt.Sprintf("filter: unknown operator %q", op))
	}
	return func(v model.Value) bool {
		if v.Missing {
			return op == OpNotEqual
		}
		return cmp(v.Num)
	}
}

// Text is compared after trimming the cell, the same way the threshold was
// trimmed when parsed.
func textPredicate(op Operator, threshold string) Predicate {
	switch op {
	case OpEqual:
		return func(v model.Value) bool { return !v.Missing && strings.TrimSpace(v.Raw) == threshold }
	case OpNotEqual:
		return func(v model.Value) bool { return v.Missing || strings.TrimSpace(v.Raw) != threshold }
	default:
		panic(fmt.Sprintf("filter: operator %q cannot compare text", op))
	}
}
