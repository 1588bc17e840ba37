package format

import "github.com/dhamidi/pcomb/datum"

// treeDocument mirrors datum.Document with plain fields so that it can be
// marshalled by both encoding/json and yaml.v3.
type treeDocument struct {
	Bindings []treeBinding `json:"bindings" yaml:"bindings"`
}

type treeBinding struct {
	Name        string    `json:"name" yaml:"name"`
	Annotations []string  `json:"annotations,omitempty" yaml:"annotations,omitempty"`
	Value       treeValue `json:"value" yaml:"value"`
	Span        treeSpan  `json:"span" yaml:"span"`
}

type treeSpan struct {
	Start int `json:"start" yaml:"start"`
	End   int `json:"end" yaml:"end"`
}

type treeValue struct {
	Kind   string      `json:"kind" yaml:"kind"`
	Text   string      `json:"text,omitempty" yaml:"text,omitempty"`
	Call   bool        `json:"call,omitempty" yaml:"call,omitempty"`
	Items  []treeValue `json:"items,omitempty" yaml:"items,omitempty"`
	Fields []treeField `json:"fields,omitempty" yaml:"fields,omitempty"`
	Span   treeSpan    `json:"span" yaml:"span"`
}

type treeField struct {
	Name  string    `json:"name" yaml:"name"`
	Value treeValue `json:"value" yaml:"value"`
}

func buildTree(doc *datum.Document) treeDocument {
	tree := treeDocument{Bindings: make([]treeBinding, 0, len(doc.Bindings))}
	for _, b := range doc.Bindings {
		tb := treeBinding{
			Name:  b.Name.Value,
			Value: buildValue(b.Value),
			Span:  treeSpan{Start: b.Name.Start, End: b.End},
		}
		for _, a := range b.Annotations {
			tb.Annotations = append(tb.Annotations, a.Value)
		}
		tree.Bindings = append(tree.Bindings, tb)
	}
	return tree
}

func buildValue(v datum.Value) treeValue {
	start, end := v.Span()
	tv := treeValue{Span: treeSpan{Start: start, End: end}}

	switch v := v.(type) {
	case *datum.Number:
		tv.Kind = "number"
		tv.Text = v.Value
	case *datum.String:
		tv.Kind = "string"
		tv.Text = v.Value
	case *datum.List:
		tv.Kind = "list"
		for _, item := range v.Items {
			tv.Items = append(tv.Items, buildValue(item))
		}
	case *datum.Record:
		tv.Kind = "record"
		for _, f := range v.Fields {
			tv.Fields = append(tv.Fields, treeField{Name: f.Name.Value, Value: buildValue(f.Value)})
		}
	case *datum.Reference:
		tv.Kind = "reference"
		tv.Text = v.Name()
		tv.Call = v.Call
		for _, arg := range v.Args {
			tv.Items = append(tv.Items, buildValue(arg))
		}
	}
	return tv
}
