package model

import (
	"errors"
	"strconv"
	"strings"
)

// Kind is the inferred type of a column. Every column is exactly one kind,
// decided once when the table is loaded.
type Kind int

const (
	// Text columns hold arbitrary strings.
	Text Kind = iota
	// Number columns hold values that all parse as float64.
	Number
)

// String returns the name used for the kind in reports.
func (k Kind) String() string {
	switch k {
	case Number:
		return "number"
	case Text:
		return "text"
	default:
		return "unknown"
	}
}

// Value is a single cell. Raw keeps the text exactly as it appeared in the
// input; Num is only meaningful when Kind is Number and Missing is false.
type Value struct {
	Kind    Kind
	Raw     string
	Num     float64
	Missing bool
}

// TextValue builds a text cell.
func TextValue(raw string, missing bool) Value {
	return Value{Kind: Text, Raw: raw, Missing: missing}
}

// NumberValue builds a numeric cell.
func NumberValue(raw string, num float64) Value {
	return Value{Kind: Number, Raw: raw, Num: num}
}

// MissingNumber builds an empty cell in a numeric column.
func MissingNumber(raw string) Value {
	return Value{Kind: Number, Raw: raw, Missing: true}
}

// DefaultMissingTokens are the cell contents treated as missing values in
// addition to the empty string.
var DefaultMissingTokens = []string{
	"NA", "N/A", "n/a", "NaN", "nan", "-NaN", "-nan",
	"NULL", "null", "None", "<NA>", "#N/A", "#NA",
}

// MissingSet is a lookup of tokens that mark a cell as missing.
type MissingSet map[string]struct{}

// NewMissingSet builds a MissingSet from the default tokens plus any extras.
func NewMissingSet(extra ...string) MissingSet {
	set := make(MissingSet, len(DefaultMissingTokens)+len(extra))
	for _, tok := range DefaultMissingTokens {
		set[tok] = struct{}{}
	}
	for _, tok := range extra {
		set[strings.TrimSpace(tok)] = struct{}{}
	}
	return set
}

// IsMissing reports whether raw denotes a missing cell.
func (s MissingSet) IsMissing(raw string) bool {
	trimmed := strings.TrimSpace(raw)
	if trimmed == "" {
		return true
	}
	_, ok := s[trimmed]
	return ok
}

// ParseNumber parses raw as a float64 after trimming surrounding whitespace.
// Values too large for a float64 parse as ±Inf.
func ParseNumber(raw string) (float64, bool) {
	f, err := strconv.ParseFloat(strings.TrimSpace(raw), 64)
	if err != nil && !errors.Is(err, strconv.ErrRange) {
		return 0, false
	}
	return f, true
}
