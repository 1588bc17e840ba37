// Package datum implements a small configuration-data language on top of
// package input:
//
//	@deprecated
//	server = {
//	    host: "localhost",
//	    ports: [8080, 8443],
//	    /* references may be called */
//	    timeout: seconds(30)
//	};
//
// The grammar is available in EBNF form as Grammar.
package datum

import (
	"github.com/dhamidi/pcomb/input"
)

// Parse parses a complete document.
func Parse(src string) (*Document, error) {
	return ParseChars(input.Index(src))
}

// ParseChars parses a complete document from already indexed characters.
// Errors are *input.ParseError values.
func ParseChars(chars []input.Char) (*Document, error) {
	in := input.New(chars)

	bindings, err := input.OneOrMore(in, parseBinding)
	if err != nil {
		return nil, err
	}
	if err := in.ExpectEnd(); err != nil {
		// The repetition stopped early. Parsing the offending binding
		// again yields an error that points into it.
		if _, berr := parseBinding(in); berr != nil {
			return nil, berr
		}
		return nil, err
	}

	return &Document{Bindings: bindings}, nil
}

// ParseValue parses a single value followed by end of input.
func ParseValue(src string) (Value, error) {
	in := input.FromString(src)
	v, err := parseValue(in)
	if err != nil {
		return nil, err
	}
	if err := in.ExpectEnd(); err != nil {
		return nil, err
	}
	return v, nil
}

// punct consumes literal and returns the offset of its first character.
func punct(in *input.Input, literal string) (int, error) {
	if err := in.SkipTrivia(); err != nil {
		return 0, err
	}
	offset := in.Offset()
	if err := in.Expect(literal); err != nil {
		return 0, err
	}
	return offset, nil
}

func parseBinding(in *input.Input) (*Binding, error) {
	annotations := input.ZeroOrMore(in, parseAnnotation)

	name, err := in.ParseSymbol()
	if err != nil {
		return nil, err
	}
	if err := in.Expect("="); err != nil {
		return nil, err
	}
	value, err := parseValue(in)
	if err != nil {
		return nil, err
	}
	end, err := punct(in, ";")
	if err != nil {
		return nil, err
	}

	return &Binding{
		Annotations: annotations,
		Name:        name,
		Value:       value,
		End:         end,
	}, nil
}

func parseAnnotation(in *input.Input) (input.PSym, error) {
	if err := in.Expect("@"); err != nil {
		return input.PSym{}, err
	}
	return in.ParseSymbol()
}

func parseValue(in *input.Input) (Value, error) {
	return input.Choice(in, parseNumber, parseString, parseList, parseRecord, parseReference)
}

func parseNumber(in *input.Input) (Value, error) {
	sym, err := in.ParseNumber()
	if err != nil {
		return nil, err
	}
	return &Number{PSym: sym}, nil
}

func parseString(in *input.Input) (Value, error) {
	sym, err := in.ParseString()
	if err != nil {
		return nil, err
	}
	return &String{PSym: sym}, nil
}

func parseList(in *input.Input) (Value, error) {
	start, err := punct(in, "[")
	if err != nil {
		return nil, err
	}
	items, err := input.List(in, parseValue)
	if err != nil {
		return nil, err
	}
	end, err := punct(in, "]")
	if err != nil {
		return nil, err
	}
	return &List{Start: start, End: end, Items: items}, nil
}

func parseRecord(in *input.Input) (Value, error) {
	start, err := punct(in, "{")
	if err != nil {
		return nil, err
	}
	fields, err := input.List(in, parseField)
	if err != nil {
		return nil, err
	}
	end, err := punct(in, "}")
	if err != nil {
		return nil, err
	}
	return &Record{Start: start, End: end, Fields: fields}, nil
}

func parseField(in *input.Input) (Field, error) {
	name, err := in.ParseSymbol()
	if err != nil {
		return Field{}, err
	}
	if err := in.Expect(":"); err != nil {
		return Field{}, err
	}
	value, err := parseValue(in)
	if err != nil {
		return Field{}, err
	}
	return Field{Name: name, Value: value}, nil
}

func parseSegment(in *input.Input) (input.PSym, error) {
	if err := in.Expect("."); err != nil {
		return input.PSym{}, err
	}
	return in.ParseSymbol()
}

type arguments struct {
	values []Value
	end    int
}

func parseArguments(in *input.Input) (arguments, error) {
	if err := in.Expect("("); err != nil {
		return arguments{}, err
	}
	values, err := input.List(in, parseValue)
	if err != nil {
		return arguments{}, err
	}
	end, err := punct(in, ")")
	if err != nil {
		return arguments{}, err
	}
	return arguments{values: values, end: end}, nil
}

func parseReference(in *input.Input) (Value, error) {
	first, err := in.ParseSymbol()
	if err != nil {
		return nil, err
	}
	path := append([]input.PSym{first}, input.ZeroOrMore(in, parseSegment)...)
	ref := &Reference{Path: path, End: path[len(path)-1].End}

	if args, ok := input.Maybe(in, parseArguments); ok {
		ref.Call = true
		ref.Args = args.values
		ref.End = args.end
	}
	return ref, nil
}
