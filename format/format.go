// Package format encodes parsed datum documents for output.
package format

import (
	"encoding"
	"fmt"
	"io"

	"github.com/dhamidi/pcomb/datum"
)

type Encoder interface {
	encoding.TextMarshaler
	Encode(doc *datum.Document) error
}

// Names lists the encoders accepted by New.
var Names = []string{"json", "yaml", "text"}

// New returns the encoder called name writing to w.
func New(name string, w io.Writer) (Encoder, error) {
	switch name {
	case "json":
		return NewJSONEncoder(w), nil
	case "yaml":
		return NewYAMLEncoder(w), nil
	case "text":
		return NewTextEncoder(w), nil
	default:
		return nil, fmt.Errorf("unknown format: %s", name)
	}
}

func write(w io.Writer, m encoding.TextMarshaler) error {
	text, err := m.MarshalText()
	if err != nil {
		return err
	}
	_, err = w.Write(text)
	return err
}
