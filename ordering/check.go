package ordering

import (
	"golang.org/x/exp/constraints"

	"reltest/equality"
	"reltest/relation"
	"reltest/violation"
)

// A comparison that reports false when the operands are incomparable
type CompareFunc[T any] func(a, b T) (Ordering, bool)

// Check that the methods of T form a partial order over a, b and c
func Check[T PartialOrderer[T]](a, b, c T) error {
	return CheckFunc(a, b, c, equalMethod[T], partialMethod[T])
}

// Check that the methods of T form a total order over a, b and c
func TotalCheck[T PartialOrderer[T]](a, b, c T) error {
	return TotalCheckFunc(a, b, c, equalMethod[T], partialMethod[T])
}

// Check that compare is a partial order over a, b and c that is consistent with eq
func CheckFunc[T any](a, b, c T, eq func(T, T) bool, compare CompareFunc[T]) error {
	tracer().Debugf("partial ordering check over %v, %v, %v", a, b, c)
	if err := equality.CheckFunc(a, b, c, eq); err != nil {
		return violation.Precondition("partial ordering check", err)
	}
	return check([3]T{a, b, c}, eq, compare, false)
}

// Check that compare is a total order over a, b and c that is consistent with eq
func TotalCheckFunc[T any](a, b, c T, eq func(T, T) bool, compare CompareFunc[T]) error {
	tracer().Debugf("total ordering check over %v, %v, %v", a, b, c)
	if err := equality.TotalCheckFunc(a, b, c, eq); err != nil {
		return violation.Precondition("total ordering check", err)
	}
	return check([3]T{a, b, c}, eq, compare, true)
}

// Check that the Compare method of T is a total order over a, b and c that is consistent with Equal.
//
// If T also has a Less method, a.Less(b) must hold exactly when a.Compare(b) < 0.
func CompareCheck[T Comparer[T]](a, b, c T) error {
	compare := func(x, y T) (Ordering, bool) { return FromInt(x.Compare(y)), true }
	if err := TotalCheckFunc(a, b, c, equalMethod[T], compare); err != nil {
		return err
	}
	if _, ok := any(a).(lesser[T]); !ok {
		return nil
	}
	less := func(x, y T) bool { return any(x).(lesser[T]).Less(y) }
	greater := func(x, y T) bool { return x.Compare(y) > 0 }
	s := [3]T{a, b, c}
	for _, x := range s {
		for _, y := range s {
			if err := relation.Dual(less, greater, x, y); err != nil {
				return err
			}
		}
	}
	return nil
}

// Check that the comparator is a total order over a, b and c.
// Equality is taken to be compare(a, b) == 0.
//
// Works with cmp.Compare, strings.Compare and comparators of container libraries.
func CompareFuncCheck[T any](a, b, c T, compare func(T, T) int) error {
	eq := func(x, y T) bool { return compare(x, y) == 0 }
	return TotalCheckFunc(a, b, c, eq, func(x, y T) (Ordering, bool) {
		return FromInt(compare(x, y)), true
	})
}

// Check the builtin operators of an ordered type as a partial order.
// Floating point NaN is unequal and incomparable to every value.
func OrderedCheck[T constraints.Ordered](a, b, c T) error {
	return CheckFunc(a, b, c, func(x, y T) bool { return x == y }, compareOrdered[T])
}

func check[T any](s [3]T, eq func(T, T) bool, compare CompareFunc[T], total bool) error {
	le := func(x, y T) bool {
		o, ok := compare(x, y)
		return ok && o != Greater
	}
	lt := func(x, y T) bool {
		o, ok := compare(x, y)
		return ok && o == Less
	}

	for _, p := range pairs {
		x, y := s[p[0]], s[p[1]]
		if err := reversed(x, y, compare); err != nil {
			return err
		}
		if err := relation.Antisymmetric("<=", le, le, eq, x, y); err != nil {
			return err
		}
	}

	for _, p := range permutations {
		x, y, z := s[p[0]], s[p[1]], s[p[2]]
		if err := relation.Transitive("<=", le, le, le, x, y, z); err != nil {
			return err
		}
		if err := relation.Transitive("<", lt, lt, lt, x, y, z); err != nil {
			return err
		}
	}

	for _, x := range s {
		for _, y := range s {
			o, ok := compare(x, y)
			e := eq(x, y)
			if e != (ok && o == Equal) {
				return violation.New(violation.EqualityOrderingInconsistency, "(a == b) = %v but compare(a, b) = %v", e, describe(o, ok)).
					With("a", x).With("b", y)
			}
		}
	}

	if !total {
		return nil
	}
	for _, x := range s {
		for _, y := range s {
			if _, ok := compare(x, y); !ok {
				return violation.New(violation.TotalityViolation, "a and b are incomparable under a total order").
					With("a", x).With("b", y)
			}
		}
	}
	return nil
}

// Comparing y with x must give the reverse of comparing x with y
func reversed[T any](x, y T, compare CompareFunc[T]) error {
	o1, ok1 := compare(x, y)
	o2, ok2 := compare(y, x)
	if ok1 != ok2 || (ok1 && o2 != o1.Reverse()) {
		return violation.New(violation.AntisymmetryViolation, "compare(a, b) = %v but compare(b, a) = %v", describe(o1, ok1), describe(o2, ok2)).
			With("a", x).With("b", y).Values(describe(o1.Reverse(), ok1), describe(o2, ok2))
	}
	return nil
}

func describe(o Ordering, ok bool) string {
	if !ok {
		return "incomparable"
	}
	return o.String()
}

var pairs = [][2]int{{0, 0}, {0, 1}, {0, 2}, {1, 1}, {1, 2}, {2, 2}}

var permutations = [][3]int{
	{0, 1, 2}, {0, 2, 1},
	{1, 0, 2}, {1, 2, 0},
	{2, 0, 1}, {2, 1, 0},
}

func equalMethod[T interface{ Equal(T) bool }](a, b T) bool {
	return a.Equal(b)
}

func partialMethod[T PartialOrderer[T]](a, b T) (Ordering, bool) {
	return a.PartialCompare(b)
}

func compareOrdered[T constraints.Ordered](a, b T) (Ordering, bool) {
	switch {
	case a < b:
		return Less, true
	case a > b:
		return Greater, true
	case a == b:
		return Equal, true
	}
	return Equal, false
}
