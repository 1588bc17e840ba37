package format

import (
	"bytes"
	"io"
	"strings"

	"github.com/dhamidi/pcomb/datum"
)

// TextEncoder writes a document back in datum syntax, one binding per line.
type TextEncoder struct {
	w   io.Writer
	doc *datum.Document
}

func NewTextEncoder(w io.Writer) *TextEncoder {
	return &TextEncoder{w: w}
}

func (e *TextEncoder) Encode(doc *datum.Document) error {
	e.doc = doc
	return write(e.w, e)
}

func (e *TextEncoder) MarshalText() ([]byte, error) {
	var buf bytes.Buffer
	for _, b := range e.doc.Bindings {
		for _, a := range b.Annotations {
			buf.WriteString("@")
			buf.WriteString(a.Value)
			buf.WriteString(" ")
		}
		buf.WriteString(b.Name.Value)
		buf.WriteString(" = ")
		writeValue(&buf, b.Value)
		buf.WriteString(";\n")
	}
	return buf.Bytes(), nil
}

// Value renders a single value in datum syntax.
func Value(v datum.Value) string {
	var buf bytes.Buffer
	writeValue(&buf, v)
	return buf.String()
}

func writeValue(buf *bytes.Buffer, v datum.Value) {
	switch v := v.(type) {
	case *datum.Number:
		buf.WriteString(v.Value)
	case *datum.String:
		buf.WriteString(Quote(v.Value))
	case *datum.List:
		buf.WriteString("[")
		writeValues(buf, v.Items)
		buf.WriteString("]")
	case *datum.Record:
		buf.WriteString("{")
		for i, f := range v.Fields {
			if i > 0 {
				buf.WriteString(", ")
			}
			buf.WriteString(f.Name.Value)
			buf.WriteString(": ")
			writeValue(buf, f.Value)
		}
		buf.WriteString("}")
	case *datum.Reference:
		buf.WriteString(v.Name())
		if v.Call {
			buf.WriteString("(")
			writeValues(buf, v.Args)
			buf.WriteString(")")
		}
	}
}

func writeValues(buf *bytes.Buffer, values []datum.Value) {
	for i, v := range values {
		if i > 0 {
			buf.WriteString(", ")
		}
		writeValue(buf, v)
	}
}

var quoter = strings.NewReplacer(
	`\`, `\\`,
	`"`, `\"`,
	"\n", `\n`,
	"\r", `\r`,
	"\t", `\t`,
	"\x00", `\0`,
)

// Quote returns s as a datum string literal.
func Quote(s string) string {
	return `"` + quoter.Replace(s) + `"`
}
