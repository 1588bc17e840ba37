package input

import (
	"errors"
	"fmt"
)

// ErrEndOfFile is matched by every ParseError of kind EndOfFile.
var ErrEndOfFile = errors.New("end of file")

type ErrorKind int

const (
	// EndOfFile means more input was required but none remained.
	EndOfFile ErrorKind = iota
	// ErrorAt means the character at Offset did not satisfy the rule.
	ErrorAt
)

func (k ErrorKind) String() string {
	switch k {
	case EndOfFile:
		return "end of file"
	case ErrorAt:
		return "error at position"
	default:
		return fmt.Sprintf("ErrorKind(%d)", int(k))
	}
}

// ParseError is the only error type returned by this package.
// Offset is -1 for EndOfFile errors.
type ParseError struct {
	Kind    ErrorKind
	Offset  int
	Message string
}

func (e *ParseError) Error() string {
	if e.Kind == EndOfFile {
		return fmt.Sprintf("end of file: %s", e.Message)
	}
	return fmt.Sprintf("offset %d: %s", e.Offset, e.Message)
}

func (e *ParseError) Unwrap() error {
	if e.Kind == EndOfFile {
		return ErrEndOfFile
	}
	return nil
}

func endOfFile(label string) *ParseError {
	return &ParseError{Kind: EndOfFile, Offset: -1, Message: label}
}

func errorAt(offset int, format string, args ...any) *ParseError {
	return &ParseError{Kind: ErrorAt, Offset: offset, Message: fmt.Sprintf(format, args...)}
}
