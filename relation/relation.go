/*
Package relation provides the law checks every other checker is built from.

The checks know nothing about equality, ordering or hashing. They take the
relation as a predicate together with the symbol used to describe it in a
violation ("==", "<=", ...). Operands may have different types, so the checks
also serve relations with asymmetric signatures, e.g. a time.Time compared
with a wrapper around it.
*/
package relation

import (
	"github.com/npillmayer/schuko/tracing"

	"reltest/violation"
)

// tracer traces with key 'reltest.relation'
func tracer() tracing.Trace {
	return tracing.Select("reltest.relation")
}

// Check that r(a, a) holds
func Reflexive[A any](sym string, r func(A, A) bool, a A) error {
	if !r(a, a) {
		return violation.New(violation.ReflexivityViolation, "expected a %s a", sym).With("a", a)
	}
	return nil
}

// Check that r(a, a) does not hold
func Irreflexive[A any](sym string, r func(A, A) bool, a A) error {
	if r(a, a) {
		return violation.New(violation.ReflexivityViolation, "expected !(a %s a)", sym).With("a", a)
	}
	return nil
}

// Check that ab(a, b) and ba(b, a) agree.
//
// ab and ba are the same relation seen from either operand.
func Symmetric[A, B any](sym string, ab func(A, B) bool, ba func(B, A) bool, a A, b B) error {
	x, y := ab(a, b), ba(b, a)
	if x != y {
		tracer().Debugf("%v %s %v is %v but the reverse is %v", a, sym, b, x, y)
		return violation.New(violation.SymmetryViolation, "(a %s b) = %v but (b %s a) = %v", sym, x, sym, y).
			With("a", a).With("b", b)
	}
	return nil
}

// Check that ab(a, b) and ba(b, a) together imply eq(a, b)
func Antisymmetric[A, B any](sym string, ab func(A, B) bool, ba func(B, A) bool, eq func(A, B) bool, a A, b B) error {
	if ab(a, b) && ba(b, a) && !eq(a, b) {
		return violation.New(violation.AntisymmetryViolation, "a %s b and b %s a but a != b", sym, sym).
			With("a", a).With("b", b)
	}
	return nil
}

// Check that ab(a, b) and bc(b, c) together imply ac(a, c).
//
// The premise is checked on the given values only.
func Transitive[A, B, C any](sym string, ab func(A, B) bool, bc func(B, C) bool, ac func(A, C) bool, a A, b B, c C) error {
	if ab(a, b) && bc(b, c) && !ac(a, c) {
		return violation.New(violation.TransitivityViolation, "a %s b and b %s c but not a %s c", sym, sym, sym).
			With("a", a).With("b", b).With("c", c)
	}
	return nil
}

// Check that lt(a, b) holds exactly when gt(b, a) holds, i.e. that a < b iff b > a
func Dual[A, B any](lt func(A, B) bool, gt func(B, A) bool, a A, b B) error {
	x, y := lt(a, b), gt(b, a)
	if x != y {
		return violation.New(violation.MethodInconsistency, "(a < b) = %v but (b > a) = %v", x, y).
			With("a", a).With("b", b)
	}
	return nil
}
