package input

import (
	"fmt"
	"strings"
	"unicode"
)

// Char is a rune together with its byte offset in the source text.
type Char struct {
	Offset int
	Rune   rune
}

// Index decodes s into offset/rune pairs. Invalid UTF-8 bytes decode to
// utf8.RuneError, one per byte, as in a range loop.
func Index(s string) []Char {
	chars := make([]Char, 0, len(s))
	for i, r := range s {
		chars = append(chars, Char{Offset: i, Rune: r})
	}
	return chars
}

// Input is a cursor over the unconsumed suffix of an indexed character
// sequence.
type Input struct {
	data []Char
}

// RestorePoint is a checkpoint created by Input.CreateRestore.
type RestorePoint struct {
	data []Char
}

// Offset returns the offset the checkpoint points at, or -1 at end of input.
func (rp RestorePoint) Offset() int {
	if len(rp.data) == 0 {
		return -1
	}
	return rp.data[0].Offset
}

func New(chars []Char) *Input {
	return &Input{data: chars}
}

// FromString indexes s and returns a cursor at its start.
func FromString(s string) *Input {
	return New(Index(s))
}

func (in *Input) CreateRestore() RestorePoint {
	return RestorePoint{data: in.data}
}

func (in *Input) Restore(rp RestorePoint) {
	in.data = rp.data
}

// Len returns the number of unconsumed characters.
func (in *Input) Len() int {
	return len(in.data)
}

func (in *Input) AtEnd() bool {
	return len(in.data) == 0
}

// Offset returns the offset of the next unconsumed character, or -1 at end
// of input.
func (in *Input) Offset() int {
	if len(in.data) == 0 {
		return -1
	}
	return in.data[0].Offset
}

// Remaining returns the unconsumed text.
func (in *Input) Remaining() string {
	var sb strings.Builder
	for _, c := range in.data {
		sb.WriteRune(c.Rune)
	}
	return sb.String()
}

// SkipTrivia consumes whitespace and block comments. Comments nest, so every
// "/*" inside a comment needs its own "*/". It fails only when the input ends
// inside a comment, in which case the cursor is left where it was.
func (in *Input) SkipTrivia() error {
	d := in.data
	depth := 0
	for {
		switch {
		case len(d) == 0:
			if depth > 0 {
				return endOfFile("expected end of comment but found end of file")
			}
			in.data = d
			return nil
		case startsWith(d, '/', '*'):
			depth++
			d = d[2:]
		case depth > 0 && startsWith(d, '*', '/'):
			depth--
			d = d[2:]
		case depth > 0:
			d = d[1:]
		case unicode.IsSpace(d[0].Rune):
			d = d[1:]
		default:
			in.data = d
			return nil
		}
	}
}

func startsWith(d []Char, a, b rune) bool {
	return len(d) >= 2 && d[0].Rune == a && d[1].Rune == b
}

// ExpectEnd succeeds if nothing but trivia remains.
func (in *Input) ExpectEnd() error {
	if err := in.SkipTrivia(); err != nil {
		return err
	}
	if len(in.data) == 0 {
		return nil
	}
	c := in.data[0]
	return errorAt(c.Offset, "expected end of input, but found %q", c.Rune)
}

// Expect skips trivia and then consumes literal. The cursor only moves past
// the literal when all of it matches.
func (in *Input) Expect(literal string) error {
	if err := in.SkipTrivia(); err != nil {
		return err
	}

	d := in.data
	for _, want := range literal {
		if len(d) == 0 {
			return endOfFile(fmt.Sprintf("expected %q in %q", want, literal))
		}
		if d[0].Rune != want {
			return errorAt(d[0].Offset, "expected %q in %q but found %q", want, literal, d[0].Rune)
		}
		d = d[1:]
	}
	in.data = d
	return nil
}
