package input

import (
	"strings"
	"unicode"
)

// PSym is a successfully scanned token. End is the offset of the last
// consumed character. Value is the decoded text, which for strings differs
// from the source text.
type PSym struct {
	Start int
	End   int
	Value string
}

// isAlphabetic reports whether r has the Unicode Alphabetic property.
func isAlphabetic(r rune) bool {
	return unicode.IsLetter(r) || unicode.In(r, unicode.Other_Alphabetic, unicode.Nl)
}

func isSymbolStart(r rune) bool {
	return isAlphabetic(r) || r == '_'
}

func isSymbolPart(r rune) bool {
	return isSymbolStart(r) || unicode.IsNumber(r)
}

func isNumberStart(r rune) bool {
	return unicode.IsNumber(r) || r == '-'
}

func isNumberPart(r rune) bool {
	return unicode.IsNumber(r) || r == '.' || r == '-' || r == 'e' || r == 'E'
}

// ParseSymbol scans an alphabetic character or '_' followed by any run of
// alphabetic characters, numerics and '_'.
func (in *Input) ParseSymbol() (PSym, error) {
	if err := in.SkipTrivia(); err != nil {
		return PSym{}, err
	}

	d := in.data
	if len(d) == 0 {
		return PSym{}, endOfFile("parse_symbol")
	}
	if !isSymbolStart(d[0].Rune) {
		return PSym{}, errorAt(d[0].Offset, "encountered %q in parse_symbol", d[0].Rune)
	}

	var sb strings.Builder
	start, end := d[0].Offset, d[0].Offset
	sb.WriteRune(d[0].Rune)
	d = d[1:]
	for len(d) > 0 && isSymbolPart(d[0].Rune) {
		sb.WriteRune(d[0].Rune)
		end = d[0].Offset
		d = d[1:]
	}

	in.data = d
	return PSym{Start: start, End: end, Value: sb.String()}, nil
}

// ParseNumber scans a digit or '-' followed by any run of digits, '.', '-',
// 'e' and 'E'. Only the last character is validated: it must be a digit.
// Shapes such as "1-2.3.4" are accepted and left to the caller.
func (in *Input) ParseNumber() (PSym, error) {
	if err := in.SkipTrivia(); err != nil {
		return PSym{}, err
	}

	d := in.data
	if len(d) == 0 {
		return PSym{}, endOfFile("parse_number")
	}
	if !isNumberStart(d[0].Rune) {
		return PSym{}, errorAt(d[0].Offset, "encountered %q in parse_number", d[0].Rune)
	}

	var sb strings.Builder
	start, end := d[0].Offset, d[0].Offset
	last := d[0].Rune
	sb.WriteRune(last)
	d = d[1:]
	for len(d) > 0 && isNumberPart(d[0].Rune) {
		last = d[0].Rune
		sb.WriteRune(last)
		end = d[0].Offset
		d = d[1:]
	}

	if !unicode.IsNumber(last) {
		return PSym{}, errorAt(end, "parse_number requires last character to be a numeric")
	}

	in.data = d
	return PSym{Start: start, End: end, Value: sb.String()}, nil
}

// escapes maps the character after a backslash to the rune it stands for.
var escapes = map[rune]rune{
	'\\': '\\',
	'n':  '\n',
	'r':  '\r',
	'0':  0,
	't':  '\t',
	'"':  '"',
}

// ParseString scans a double quoted string. Start and End are the offsets of
// the quotes; Value holds the body with escapes resolved.
func (in *Input) ParseString() (PSym, error) {
	if err := in.SkipTrivia(); err != nil {
		return PSym{}, err
	}

	d := in.data
	if len(d) == 0 {
		return PSym{}, endOfFile("parse_string")
	}
	if d[0].Rune != '"' {
		return PSym{}, errorAt(d[0].Offset, "encountered %q at the beginning of parse_string", d[0].Rune)
	}
	start := d[0].Offset
	d = d[1:]

	var sb strings.Builder
	escape := false
	for {
		if len(d) == 0 {
			return PSym{}, endOfFile("parse_string")
		}
		c := d[0]
		if escape {
			r, ok := escapes[c.Rune]
			if !ok {
				return PSym{}, errorAt(c.Offset, "encountered unknown escape character %q", c.Rune)
			}
			sb.WriteRune(r)
			escape = false
			d = d[1:]
			continue
		}
		if c.Rune == '"' {
			break
		}
		if c.Rune == '\\' {
			escape = true
		} else {
			sb.WriteRune(c.Rune)
		}
		d = d[1:]
	}

	// The loop only exits on an unescaped quote.
	end := d[0].Offset
	in.data = d[1:]
	return PSym{Start: start, End: end, Value: sb.String()}, nil
}
