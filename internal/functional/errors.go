package functional

import (
	"errors"
	"fmt"
)

// ParseError is a lexical or structural failure with the document
// position at which it was detected. Line and column are 1-based.
type ParseError struct {
	Line    int
	Column  int
	Message string
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("parse error at line %d, column %d: %s", e.Line, e.Column, e.Message)
}

// FileError is an I/O failure opening or reading a document, raised
// before any parsing begins. It is distinct from ParseError so callers
// can tell "unreadable file" from "malformed document".
type FileError struct {
	Path string
	Err  error
}

func (e *FileError) Error() string {
	return fmt.Sprintf("read %s: %v", e.Path, e.Err)
}

func (e *FileError) Unwrap() error { return e.Err }

// IsParseError reports whether err is (or wraps) a ParseError.
func IsParseError(err error) bool {
	var pe *ParseError
	return errors.As(err, &pe)
}

// IsFileError reports whether err is (or wraps) a FileError.
func IsFileError(err error) bool {
	var fe *FileError
	return errors.As(err, &fe)
}
