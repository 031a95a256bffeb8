package model

import (
	"errors"
	"fmt"
)

// ErrorKind classifies every failure the explorer reports to the user.
type ErrorKind string

const (
	KindFileNotFound        ErrorKind = "FileNotFound"
	KindParseError          ErrorKind = "ParseError"
	KindColumnNotFound      ErrorKind = "ColumnNotFound"
	KindInvalidFilterSyntax ErrorKind = "InvalidFilterSyntax"
	KindTypeMismatch        ErrorKind = "TypeMismatch"
	KindWriteError          ErrorKind = "WriteError"
)

// Sentinels for errors.Is. An *Error matches the sentinel of its kind.
var (
	ErrFileNotFound        = errors.New(string(KindFileNotFound))
	ErrParse               = errors.New(string(KindParseError))
	ErrColumnNotFound      = errors.New(string(KindColumnNotFound))
	ErrInvalidFilterSyntax = errors.New(string(KindInvalidFilterSyntax))
	ErrTypeMismatch        = errors.New(string(KindTypeMismatch))
	ErrWrite               = errors.New(string(KindWriteError))
)

var sentinels = map[ErrorKind]error{
	KindFileNotFound:        ErrFileNotFound,
	KindParseError:          ErrParse,
	KindColumnNotFound:      ErrColumnNotFound,
	KindInvalidFilterSyntax: ErrInvalidFilterSyntax,
	KindTypeMismatch:        ErrTypeMismatch,
	KindWriteError:          ErrWrite,
}

// Error is a classified failure. Subject names the path, column or
// expression the failure is about.
type Error struct {
	Kind    ErrorKind
	Subject string
	Detail  string
	Err     error
}

// Error formats the message as "<Kind>: <detail>".
func (e *Error) Error() string {
	msg := e.Detail
	if msg == "" && e.Err != nil {
		msg = e.Err.Error()
	} else if e.Err != nil {
		msg = fmt.Sprintf("%s: %v", msg, e.Err)
	}
	if msg == "" {
		msg = e.Subject
	}
	return fmt.Sprintf("%s: %s", e.Kind, msg)
}

// Unwrap exposes the underlying cause.
func (e *Error) Unwrap() error {
	return e.Err
}

// Is matches the sentinel error of the same kind.
func (e *Error) Is(target error) bool {
	s, ok := sentinels[e.Kind]
	return ok && s == target
}

// KindOf returns the kind of the first *Error in err's chain.
func KindOf(err error) (ErrorKind, bool) {
	var e *Error
	if errors.As(err, &e) {
		return e.Kind, true
	}
	return "", false
}

func NewFileNotFound(path string, err error) *Error {
	return &Error{
		Kind:    KindFileNotFound,
		Subject: path,
		Detail:  fmt.Sprintf("file %q does not exist", path),
		Err:     err,
	}
}

// NewParseError keeps the parser's own message untouched.
func NewParseError(path string, err error) *Error {
	return &Error{
		Kind:    KindParseError,
		Subject: path,
		Detail:  path,
		Err:     err,
	}
}

func NewColumnNotFound(column string, available []string) *Error {
	return &Error{
		Kind:    KindColumnNotFound,
		Subject: column,
		Detail:  fmt.Sprintf("column %q not found (available: %q)", column, available),
	}
}

func NewInvalidFilterSyntax(expr, reason string) *Error {
	return &Error{
		Kind:    KindInvalidFilterSyntax,
		Subject: expr,
		Detail:  fmt.Sprintf("%q: %s", expr, reason),
	}
}

func NewTypeMismatch(column, detail string) *Error {
	return &Error{
		Kind:    KindTypeMismatch,
		Subject: column,
		Detail:  fmt.Sprintf("column %q: %s", column, detail),
	}
}

func NewWriteError(path string, err error) *Error {
	return &Error{
		Kind:    KindWriteError,
		Subject: path,
		Detail:  fmt.Sprintf("cannot write %q", path),
		Err:     err,
	}
}
