/*
Package violation holds the vocabulary every checker in reltest reports through.

A Violation describes exactly one broken law together with the operands that
broke it. Violations are ordinary errors: a check that finds nothing returns nil,
otherwise it returns the first *Violation it found.

	err := equality.TotalCheck(a, b, c)
	if errors.Is(err, violation.SymmetryViolation) {
		...
	}

Kinds implement error themselves, so errors.Is matches a kind anywhere in the
cause chain of a PreconditionFailed violation.
*/
package violation

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer traces with key 'reltest.violation'
func tracer() tracing.Trace {
	return tracing.Select("reltest.violation")
}
