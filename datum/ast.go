package datum

import (
	"strconv"
	"strings"

	"github.com/dhamidi/pcomb/input"
)

// Value is a datum value: *Number, *String, *List, *Record or *Reference.
type Value interface {
	// Span returns the offsets of the first and last source character.
	Span() (start, end int)
	value()
}

type Number struct {
	input.PSym
}

// Float converts the literal. The scanner accepts shapes like "1-2" that
// are not numbers; Float reports those.
func (n *Number) Float() (float64, error) {
	return strconv.ParseFloat(n.Value, 64)
}

type String struct {
	input.PSym
}

type List struct {
	Start int
	End   int
	Items []Value
}

type Field struct {
	Name  input.PSym
	Value Value
}

type Record struct {
	Start  int
	End    int
	Fields []Field
}

// Get returns the value of the first field called name.
func (r *Record) Get(name string) (Value, bool) {
	for _, f := range r.Fields {
		if f.Name.Value == name {
			return f.Value, true
		}
	}
	return nil, false
}

// Reference is a dotted name, optionally applied to arguments:
// a.b.c or f(1, 2). Call is true when parentheses were present, even if
// the argument list is empty.
type Reference struct {
	Path []input.PSym
	Call bool
	Args []Value
	End  int
}

// Name joins the path with dots.
func (r *Reference) Name() string {
	parts := make([]string, len(r.Path))
	for i, p := range r.Path {
		parts[i] = p.Value
	}
	return strings.Join(parts, ".")
}

func (n *Number) Span() (int, int)    { return n.Start, n.End }
func (s *String) Span() (int, int)    { return s.Start, s.End }
func (l *List) Span() (int, int)      { return l.Start, l.End }
func (r *Record) Span() (int, int)    { return r.Start, r.End }
func (r *Reference) Span() (int, int) { return r.Path[0].Start, r.End }

func (*Number) value()    {}
func (*String) value()    {}
func (*List) value()      {}
func (*Record) value()    {}
func (*Reference) value() {}

type Binding struct {
	Annotations []input.PSym
	Name        input.PSym
	Value       Value
	// End is the offset of the terminating ';'.
	End int
}

// HasAnnotation reports whether the binding carries @name.
func (b *Binding) HasAnnotation(name string) bool {
	for _, a := range b.Annotations {
		if a.Value == name {
			return true
		}
	}
	return false
}

type Document struct {
	Bindings []*Binding
}

// Lookup returns the first binding called name.
func (d *Document) Lookup(name string) (*Binding, bool) {
	for _, b := range d.Bindings {
		if b.Name.Value == name {
			return b, true
		}
	}
	return nil, false
}

// Names returns binding names in source order without duplicates.
func (d *Document) Names() []string {
	seen := make(map[string]bool)
	var names []string
	for _, b := range d.Bindings {
		if seen[b.Name.Value] {
			continue
		}
		seen[b.Name.Value] = true
		names = append(names, b.Name.Value)
	}
	return names
}

// Walk calls fn for v and, while fn returns true, for every value nested
// inside it, depth first.
func Walk(v Value, fn func(Value) bool) {
	if v == nil || !fn(v) {
		return
	}
	switch v := v.(type) {
	case *List:
		for _, item := range v.Items {
			Walk(item, fn)
		}
	case *Record:
		for _, f := range v.Fields {
			Walk(f.Value, fn)
		}
	case *Reference:
		for _, arg := range v.Args {
			Walk(arg, fn)
		}
	}
}
