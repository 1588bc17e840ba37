package datum

import (
	_ "embed"
	"fmt"
	"strings"

	"golang.org/x/exp/ebnf"
)

// Grammar is the EBNF description of the language accepted by Parse.
//
//go:embed datum.ebnf
var Grammar string

// Start is the start production of Grammar.
const Start = "Document"

// LoadGrammar parses Grammar and verifies it from Start.
func LoadGrammar() (ebnf.Grammar, error) {
	g, err := ebnf.Parse("datum.ebnf", strings.NewReader(Grammar))
	if err != nil {
		return nil, fmt.Errorf("parse grammar: %w", err)
	}
	if err := ebnf.Verify(g, Start); err != nil {
		return nil, fmt.Errorf("verify grammar: %w", err)
	}
	return g, nil
}
