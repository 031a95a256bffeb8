// Package filter parses single-comparison row filters such as
// "heart_rate>120" and evaluates them against a model.Table.
package filter

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/specialistvlad/csvexplore/internal/model"
)

// Operator is one of the six comparison tokens.
type Operator string

const (
	OpGreaterEqual Operator = ">="
	OpLessEqual    Operator = "<="
	OpEqual        Operator = "=="
	OpNotEqual     Operator = "!="
	OpGreater      Operator = ">"
	OpLess         Operator = "<"
)

// operatorTokens is the match order used by Parse. Two-character tokens come
// before their one-character prefixes.
var operatorTokens = []Operator{
	OpGreaterEqual,
	OpLessEqual,
	OpEqual,
	OpNotEqual,
	OpGreater,
	OpLess,
}

// Ordering reports whether op compares magnitude rather than identity.
func (op Operator) Ordering() bool {
	switch op {
	case OpGreater, OpLess, OpGreaterEqual, OpLessEqual:
		return true
	}
	return false
}

// Literal is the right-hand side of an expression.
type Literal struct {
	Text      string
	Num       float64
	IsNumeric bool
}

// NumberLiteral builds a numeric literal, using the shortest text form.
func NumberLiteral(f float64) Literal {
	return Literal{Text: strconv.FormatFloat(f, 'g', -1, 64), Num: f, IsNumeric: true}
}

// StringLiteral builds a string literal.
func StringLiteral(s string) Literal {
	return Literal{Text: s}
}

// String implements fmt.Stringer.
func (l Literal) String() string {
	if l.IsNumeric {
		return l.Text
	}
	return strconv.Quote(l.Text)
}

// Expression is a parsed "<column> <op> <threshold>" filter.
type Expression struct {
	Column    string
	Operator  Operator
	Threshold Literal
	source    string
}

// String returns the expression as the user wrote it, or a canonical form
// for expressions built by hand.
func (e Expression) String() string {
	if e.source != "" {
		return e.source
	}
	return fmt.Sprintf("%s%s%s", e.Column, e.Operator, e.Threshold)
}

// Parse splits expr at the first operator occurrence, scanning left to right
// and trying operatorTokens in order at each position.
func Parse(expr string) (Expression, error) {
	pos, op, found := findOperator(expr)
	if !found {
		return Expression{}, model.NewInvalidFilterSyntax(expr, "no comparison operator (one of >=, <=, ==, !=, >, <)")
	}

	column := strings.TrimSpace(expr[:pos])
	if column == "" {
		return Expression{}, model.NewInvalidFilterSyntax(expr, "missing column name before "+string(op))
	}
	rhs := strings.TrimSpace(expr[pos+len(op):])
	if rhs == "" {
		return Expression{}, model.NewInvalidFilterSyntax(expr, "missing value after "+string(op))
	}

	return Expression{
		Column:    column,
		Operator:  op,
		Threshold: parseLiteral(rhs),
		source:    expr,
	}, nil
}

func findOperator(expr string) (int, Operator, bool) {
	for i := 0; i < len(expr); i++ {
		for _, op := range operatorTokens {
			if strings.HasPrefix(expr[i:], string(op)) {
				return i, op, true
			}
		}
	}
	return 0, "", false
}

// parseLiteral treats a quoted right-hand side as a string even when its
// content looks numeric.
func parseLiteral(rhs string) Literal {
	if len(rhs) >= 2 {
		first, last := rhs[0], rhs[len(rhs)-1]
		if (first == '"' || first == '\'') && first == last {
			return StringLiteral(rhs[1 : len(rhs)-1])
		}
	}
	if f, err := strconv.ParseFloat(rhs, 64); err == nil {
		return Literal{Text: rhs, Num: f, IsNumeric: true}
	}
	return StringLiteral(rhs)
}
