package input

// Func is a scanner: it consumes from in and returns a value or an error.
// Combinators never inspect the value.
type Func[T any] func(in *Input) (T, error)

// Maybe runs parse and reports whether it succeeded. On failure the cursor
// is restored and the error is dropped.
func Maybe[T any](in *Input, parse Func[T]) (T, bool) {
	rp := in.CreateRestore()
	v, err := parse(in)
	if err != nil {
		in.Restore(rp)
		var zero T
		return zero, false
	}
	return v, true
}

// ZeroOrMore runs parse until it fails, undoing only the failed attempt.
func ZeroOrMore[T any](in *Input, parse Func[T]) []T {
	var items []T
	for {
		rp := in.CreateRestore()
		v, err := parse(in)
		if err != nil {
			in.Restore(rp)
			return items
		}
		items = append(items, v)
	}
}

// OneOrMore is ZeroOrMore with an obligatory first item. The error of a
// failed first attempt is returned unchanged and nothing is restored.
func OneOrMore[T any](in *Input, parse Func[T]) ([]T, error) {
	first, err := parse(in)
	if err != nil {
		return nil, err
	}
	return append([]T{first}, ZeroOrMore(in, parse)...), nil
}

// List parses a comma separated sequence. See SeparatedBy.
func List[T any](in *Input, parse Func[T]) ([]T, error) {
	return SeparatedBy(in, ",", parse)
}

// SeparatedBy parses zero or more items separated by sep. A missing first
// item yields an empty result; an item missing after a separator is an
// error.
func SeparatedBy[T any](in *Input, sep string, parse Func[T]) ([]T, error) {
	rp := in.CreateRestore()
	first, err := parse(in)
	if err != nil {
		in.Restore(rp)
		return []T{}, nil
	}

	items := []T{first}
	for {
		// Expect leaves the separator unconsumed when it does not match.
		if in.Expect(sep) != nil {
			return items, nil
		}
		v, err := parse(in)
		if err != nil {
			return nil, err
		}
		items = append(items, v)
	}
}

// Choice tries each scanner in order and returns the first success. When all
// fail the cursor is restored and the last error is returned. Choice panics
// if called without scanners.
func Choice[T any](in *Input, parsers ...Func[T]) (T, error) {
	if len(parsers) == 0 {
		panic("input: choice must have at least one parser")
	}

	var lastErr error
	for _, parse := range parsers {
		rp := in.CreateRestore()
		v, err := parse(in)
		if err == nil {
			return v, nil
		}
		lastErr = err
		in.Restore(rp)
	}

	var zero T
	return zero, lastErr
}
