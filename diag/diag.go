// Package diag turns parse errors into positioned, human-readable
// diagnostics.
package diag

import (
	"errors"
	"fmt"
	"unicode/utf8"

	"github.com/dhamidi/pcomb/datum"
	"github.com/dhamidi/pcomb/input"
)

// Position represents a location in source text.
type Position struct {
	Filename string
	Offset   int
	Line     int
	Column   int
}

func (p Position) String() string {
	if p.Filename != "" {
		return fmt.Sprintf("%s:%d:%d", p.Filename, p.Line, p.Column)
	}
	return fmt.Sprintf("%d:%d", p.Line, p.Column)
}

// Locate returns the 1-based line and column of a byte offset in src.
// Columns count runes. Offsets outside src locate the end of src.
func Locate(src string, offset int) Position {
	if offset < 0 || offset > len(src) {
		offset = len(src)
	}

	line, column := 1, 1
	for i := 0; i < offset; {
		r, size := utf8.DecodeRuneInString(src[i:])
		if r == '\n' {
			line++
			column = 1
		} else {
			column++
		}
		i += size
	}
	return Position{Offset: offset, Line: line, Column: column}
}

type Severity int

const (
	SeverityError Severity = iota
	SeverityWarning
)

func (s Severity) String() string {
	if s == SeverityWarning {
		return "warning"
	}
	return "error"
}

// Diagnostic is a message attached to a source position.
type Diagnostic struct {
	Position Position
	Severity Severity
	Message  string
	// EOF is set when the input ended too early.
	EOF bool
}

func (d Diagnostic) String() string {
	if d.Severity == SeverityWarning {
		return fmt.Sprintf("%s: warning: %s", d.Position, d.Message)
	}
	return fmt.Sprintf("%s: %s", d.Position, d.Message)
}

// FromError builds a diagnostic for err. Errors that do not wrap an
// *input.ParseError are reported at the start of src.
func FromError(filename, src string, err error) Diagnostic {
	var perr *input.ParseError
	if !errors.As(err, &perr) {
		pos := Locate(src, 0)
		pos.Filename = filename
		return Diagnostic{Position: pos, Message: err.Error()}
	}

	d := Diagnostic{Message: perr.Message}
	if perr.Kind == input.EndOfFile {
		d.EOF = true
		d.Message = "unexpected end of file: " + perr.Message
		d.Position = Locate(src, len(src))
	} else {
		d.Position = Locate(src, perr.Offset)
	}
	d.Position.Filename = filename
	return d
}

// Check parses src as a datum document. A syntax error yields a single
// error diagnostic. Otherwise every number literal that does not convert to
// a float yields a warning.
func Check(filename, src string) []Diagnostic {
	doc, err := datum.Parse(src)
	if err != nil {
		return []Diagnostic{FromError(filename, src, err)}
	}

	var diags []Diagnostic
	for _, b := range doc.Bindings {
		datum.Walk(b.Value, func(v datum.Value) bool {
			n, ok := v.(*datum.Number)
			if !ok {
				return true
			}
			if _, err := n.Float(); err != nil {
				pos := Locate(src, n.Start)
				pos.Filename = filename
				diags = append(diags, Diagnostic{
					Position: pos,
					Severity: SeverityWarning,
					Message:  fmt.Sprintf("malformed number %q", n.Value),
				})
			}
			return true
		})
	}
	return diags
}
