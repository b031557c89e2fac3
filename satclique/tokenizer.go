// SPDX-License-Identifier: MIT

package satclique

import (
	"errors"
	"fmt"
	"strings"
)

var (
	// ErrUnexpectedRune indicates a character outside the formula alphabet.
	ErrUnexpectedRune = errors.New("satclique: unexpected character")

	// ErrDanglingNegation indicates a "-" not immediately followed by a letter.
	ErrDanglingNegation = errors.New("satclique: negation without variable")

	// ErrNotSquare indicates a literal count that is not k² for some k ≥ 1.
	ErrNotSquare = errors.New("satclique: literal count is not a perfect square")
)

// Literal is one variable occurrence, possibly negated.
type Literal struct {
	Negated bool
	Var     byte // 'a'..'z'
}

// Complement reports whether l and o are the same variable with opposite
// polarity.
func (l Literal) Complement(o Literal) bool {
	return l.Var == o.Var && l.Negated != o.Negated
}

// String renders the literal as in the input, e.g. "-a".
func (l Literal) String() string {
	if l.Negated {
		return "-" + string(l.Var)
	}
	return string(l.Var)
}

// Tokenize scans formula left to right and returns its literals.
//
// Errors:
//   - ErrUnexpectedRune for any character outside the grammar.
//   - ErrDanglingNegation for "-" not directly followed by a letter.
func Tokenize(formula string) ([]Literal, error) {
	lits := make([]Literal, 0, strings.Count(formula, "+")+1)
	negated := false

	for pos, r := range formula {
		switch {
		case r >= 'a' && r <= 'z':
			lits = append(lits, Literal{Negated: negated, Var: byte(r)})
			negated = false
		case negated:
			return nil, fmt.Errorf("Tokenize: offset %d: %w", pos-1, ErrDanglingNegation)
		case r == '-':
			negated = true
		case r == '(' || r == ')' || r == '*' || r == '+' ||
			r == ' ' || r == '\t' || r == '\n' || r == '\r':
		default:
			return nil, fmt.Errorf("Tokenize: offset %d: %q: %w", pos, r, ErrUnexpectedRune)
		}
	}
	if negated {
		return nil, fmt.Errorf("Tokenize: at end of input: %w", ErrDanglingNegation)
	}

	return lits, nil
}

// Format renders lits as a formula with k literals per clause,
// e.g. "(a+-b)*(b+c)". It is the inverse of Tokenize for well-formed input.
func Format(lits []Literal, k int) string {
	if k <= 0 {
		return ""
	}
	var sb strings.Builder
	for i, l := range lits {
		switch {
		case i == 0:
			sb.WriteByte('(')
		case i%k == 0:
			sb.WriteString(")*(")
		default:
			sb.WriteByte('+')
		}
		sb.WriteString(l.String())
	}
	if len(lits) > 0 {
		sb.WriteByte(')')
	}

	return sb.String()
}
