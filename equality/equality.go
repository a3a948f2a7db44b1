/*
Package equality checks that an equality implementation is an equivalence relation.

Two contracts are distinguished. A partial equality may leave values that are
equal to nothing, not even to themselves (floating point NaN is the usual
example). A total equality must be reflexive for every value. Which contract a
type is supposed to satisfy is up to the caller: use Check for the former and
TotalCheck for the latter.

The laws are checked in a fixed order, reflexivity, then symmetry, then
transitivity, and the first violation is returned.
*/
package equality

import (
	"github.com/npillmayer/schuko/tracing"

	"reltest/relation"
)

// tracer traces with key 'reltest.equality'
func tracer() tracing.Trace {
	return tracing.Select("reltest.equality")
}

// A type with an equality method, such as time.Time
type Equaler[T any] interface {
	Equal(T) bool
}

// Check that the Equal method of T is a partial equivalence relation over a, b and c
func Check[T Equaler[T]](a, b, c T) error {
	return CheckFunc(a, b, c, method[T])
}

// Check that the Equal method of T is an equivalence relation over a, b and c
func TotalCheck[T Equaler[T]](a, b, c T) error {
	return TotalCheckFunc(a, b, c, method[T])
}

// Check that eq is a partial equivalence relation over a, b and c.
//
// A value only has to be equal to itself if it is equal to one of the other values.
func CheckFunc[T any](a, b, c T, eq func(T, T) bool) error {
	tracer().Debugf("partial equality check over %v, %v, %v", a, b, c)
	samples := [3]T{a, b, c}
	for i, s := range samples {
		related := false
		for j, o := range samples {
			if i != j && (eq(s, o) || eq(o, s)) {
				related = true
				break
			}
		}
		if !related {
			continue
		}
		if err := relation.Reflexive("==", eq, s); err != nil {
			return err
		}
	}
	return checkSymmetricTransitive(samples, eq)
}

// Check that eq is an equivalence relation over a, b and c
func TotalCheckFunc[T any](a, b, c T, eq func(T, T) bool) error {
	tracer().Debugf("total equality check over %v, %v, %v", a, b, c)
	samples := [3]T{a, b, c}
	for _, s := range samples {
		if err := relation.Reflexive("==", eq, s); err != nil {
			return err
		}
	}
	return checkSymmetricTransitive(samples, eq)
}

// Check the builtin == of T as a partial equality
func CheckComparable[T comparable](a, b, c T) error {
	return CheckFunc(a, b, c, builtin[T])
}

// Check the builtin == of T as a total equality. Fails for floating point NaN
func TotalCheckComparable[T comparable](a, b, c T) error {
	return TotalCheckFunc(a, b, c, builtin[T])
}

func checkSymmetricTransitive[T any](s [3]T, eq func(T, T) bool) error {
	for _, p := range pairs {
		if err := relation.Symmetric("==", eq, eq, s[p[0]], s[p[1]]); err != nil {
			return err
		}
	}
	for _, p := range permutations {
		if err := relation.Transitive("==", eq, eq, eq, s[p[0]], s[p[1]], s[p[2]]); err != nil {
			return err
		}
	}
	return nil
}

var pairs = [][2]int{{0, 1}, {0, 2}, {1, 2}}

var permutations = [][3]int{
	{0, 1, 2}, {0, 2, 1},
	{1, 0, 2}, {1, 2, 0},
	{2, 0, 1}, {2, 1, 0},
}

func method[T Equaler[T]](a, b T) bool {
	return a.Equal(b)
}

func builtin[T comparable](a, b T) bool {
	return a == b
}
