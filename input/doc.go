// Package input provides a backtracking cursor over pre-indexed characters,
// a handful of primitive token scanners and generic combinators for composing
// them into recursive-descent grammars.
//
// # Overview
//
// Source text is indexed once into (offset, rune) pairs. An Input is a view of
// the unconsumed suffix of that index; scanning narrows the view, it never
// copies characters.
//
//	┌─────────────┐     ┌─────────────┐     ┌─────────────┐
//	│   Index     │────▶│   Input     │────▶│ Combinators │
//	│ (offset,r)  │     │ (scanners)  │     │ (grammars)  │
//	└─────────────┘     └─────────────┘     └─────────────┘
//
// There is no token stream. Every scanner first skips trivia (whitespace and
// nested /* */ comments) and then consumes the longest token it accepts.
//
// # Backtracking
//
// CreateRestore returns an O(1) checkpoint; Restore rewinds to it. A
// checkpoint can be restored any number of times. Combinators take their own
// checkpoints:
//
//	Maybe       failure → restore, report absence
//	ZeroOrMore  failure → restore to before the failed attempt, return items
//	OneOrMore   first failure propagates, later ones behave like ZeroOrMore
//	List        empty on a failed first element, error on a dangling ","
//	Choice      first success wins, otherwise the last error
//
// # Scanners
//
// Scanners are plain functions of type Func. Method expressions of Input
// satisfy it directly:
//
//	nums, err := input.List(in, (*input.Input).ParseNumber)
//
// Successful primitive scans return a PSym whose End is the offset of the
// last consumed character, not one past it.
//
// # Errors
//
// Every failure is a *ParseError, either EndOfFile or ErrorAt. EndOfFile
// errors match ErrEndOfFile under errors.Is. The package never formats
// diagnostics itself.
//
// An Input must not be shared between goroutines.
package input
