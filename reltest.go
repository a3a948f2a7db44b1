/*
Package reltest checks that hand-written equality, ordering, hashing and
iteration implementations obey the laws of their protocols.

The checks are spot checks over caller-supplied samples. They are meant to be
called from randomized or property-based tests with generated values,
including edge cases:

	rapid.Check(t, func(t *rapid.T) {
		a, b, c := gen.Draw(t, "a"), gen.Draw(t, "b"), gen.Draw(t, "c")
		if err := reltest.TotalOrderingCheck(a, b, c); err != nil {
			t.Fatal(err)
		}
	})

Every check returns nil or the first *violation.Violation it found. The
functions in this package cover the common case of types with methods. The
packages equality, ordering, hashing and iteration offer variants over caller
functions, builtin operators and other comparison signatures, and relation
holds the underlying law checks.
*/
package reltest

import (
	"reltest/equality"
	"reltest/hashing"
	"reltest/iteration"
	"reltest/ordering"
)

// Check that Equal is a partial equivalence relation over a, b and c
func EqualityCheck[T equality.Equaler[T]](a, b, c T) error {
	return equality.Check(a, b, c)
}

// Check that Equal is an equivalence relation over a, b and c. Every value must be equal to itself
func TotalEqualityCheck[T equality.Equaler[T]](a, b, c T) error {
	return equality.TotalCheck(a, b, c)
}

// Check that PartialCompare is a partial order over a, b and c, consistent with Equal
func OrderingCheck[T ordering.PartialOrderer[T]](a, b, c T) error {
	return ordering.Check(a, b, c)
}

// Check that PartialCompare is a total order over a, b and c, consistent with Equal
func TotalOrderingCheck[T ordering.PartialOrderer[T]](a, b, c T) error {
	return ordering.TotalCheck(a, b, c)
}

// Check that equal values hash identically
func HashCheck[T hashing.Hashable[T]](a, b T) error {
	return hashing.Check(a, b)
}

// Check the base sequence protocol of the iterators created by newIter
func SequenceCheck[T any](newIter func() iteration.Iterator[T], opts ...iteration.Option) error {
	return iteration.Check(newIter, opts...)
}

// Check that the iterators created by newIter stay exhausted
func FusedSequenceCheck[T any](newIter func() iteration.Iterator[T], opts ...iteration.Option) error {
	return iteration.FusedCheck(newIter, opts...)
}

// Check that taking values from both ends of the iterators created by newIter agrees with a forward traversal
func BidirectionalSequenceCheck[T comparable](newIter func() iteration.DoubleEnded[T], opts ...iteration.Option) error {
	return iteration.BidirectionalCheck(newIter, opts...)
}
