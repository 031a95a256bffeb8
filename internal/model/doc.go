// Package model holds the in-memory representation of a loaded CSV file.
//
// A Table is an ordered set of named Columns of equal length. Each Column is
// typed once, when it is built by InferColumn: it is a Number column when it
// has at least one non-missing cell and every non-missing cell parses as a
// float64, and a Text column otherwise. Cells keep their original text in
// Value.Raw so a table can be written back out exactly as it was read.
//
// The package also defines Error, the classified failure returned by every
// operation, and the sentinel errors used to match its kinds with errors.Is.
package model
