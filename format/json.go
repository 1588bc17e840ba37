package format

import (
	"encoding/json"
	"io"

	"github.com/dhamidi/pcomb/datum"
)

type JSONEncoder struct {
	w   io.Writer
	doc *datum.Document
}

func NewJSONEncoder(w io.Writer) *JSONEncoder {
	return &JSONEncoder{w: w}
}

func (e *JSONEncoder) Encode(doc *datum.Document) error {
	e.doc = doc
	return write(e.w, e)
}

func (e *JSONEncoder) MarshalText() ([]byte, error) {
	data, err := json.MarshalIndent(buildTree(e.doc), "", "  ")
	if err != nil {
		return nil, err
	}
	return append(data, '\n'), nil
}
