/*
Package ordering checks that a comparison is consistent with itself and with equality.

A partial order may report two values as incomparable, a total order may not.
Every check first requires the equality of the type to be lawful; if it is not,
the equality violation is returned wrapped in a PreconditionFailed violation.

The remaining laws are checked in this order:

  - antisymmetry: comparing b with a gives the reverse of comparing a with b,
    and a <= b together with b <= a implies a == b
  - transitivity of <= and of <
  - a == b exactly when the comparison reports Equal
  - totality, for the total contract only
*/
package ordering

import (
	"fmt"

	"github.com/npillmayer/schuko/tracing"
)

// tracer traces with key 'reltest.ordering'
func tracer() tracing.Trace {
	return tracing.Select("reltest.ordering")
}

// The result of comparing two values
type Ordering int8

const (
	Less    Ordering = -1
	Equal   Ordering = 0
	Greater Ordering = 1
)

// Return the ordering seen from the other operand
func (o Ordering) Reverse() Ordering {
	return -o
}

func (o Ordering) String() string {
	switch o {
	case Less:
		return "Less"
	case Equal:
		return "Equal"
	case Greater:
		return "Greater"
	}
	return fmt.Sprintf("Ordering(%d)", int8(o))
}

// Convert the result of a cmp.Compare style function
func FromInt(c int) Ordering {
	switch {
	case c < 0:
		return Less
	case c > 0:
		return Greater
	}
	return Equal
}

// A type with an equality and a partial comparison.
// PartialCompare reports false when the values are incomparable.
type PartialOrderer[T any] interface {
	Equal(T) bool
	PartialCompare(T) (Ordering, bool)
}

// A type with an equality and a total comparison in the style of cmp.Compare
type Comparer[T any] interface {
	Equal(T) bool
	Compare(T) int
}

// Optionally implemented by a Comparer. When present Less must agree with Compare
type lesser[T any] interface {
	Less(T) bool
}
