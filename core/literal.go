// Package core implements the cycle-accurate SAT-solver node: a deterministic
// state machine that explores variable assignments via chronological
// backtracking with Boolean constraint propagation (BCP). It is a golden
// reference model for an RTL hardware implementation, so it commits to a
// specific per-cycle schedule rather than just the eventual SAT/UNSAT answer.
package core

// Literal is an encoded clause entry: 0 is padding, 2*v is the positive
// literal for variable v, 2*v+1 is its negation.
type Literal uint32

// LiteralNone names Literal's zero value where it means "no literal". It is
// the same value as the padding encoding, so the two cannot be told apart.
const LiteralNone Literal = 0

// Negate flips a literal's polarity. Negate(0) is 0 by convention (padding
// negates to itself).
func Negate(l Literal) Literal {
	if l == 0 {
		return 0
	}
	return l ^ 1
}

// Variable extracts the variable id (1..V) a literal refers to.
func Variable(l Literal) int {
	return int(l / 2)
}

// FalsifyingAssignment returns the variable/value pair that makes l false.
// An even literal (2v) is x_v, so x_v=false falsifies it; an odd literal
// (2v+1) is ¬x_v, so x_v=true falsifies it.
func FalsifyingAssignment(l Literal) (variable int, value bool) {
	return Variable(l), l%2 == 1
}

// EncodeSigned converts a signed DIMACS-style literal (positive for the
// variable, negative for its negation) into the encoding above.
func EncodeSigned(raw int) Literal {
	if raw > 0 {
		return Literal(2 * raw)
	}
	return Literal(2*(-raw) + 1)
}
