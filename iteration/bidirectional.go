package iteration

import (
	"errors"

	"golang.org/x/exp/slices"

	"reltest/scheduler"
	"reltest/violation"
)

// Check that values taken from both ends of iterators created by newIter agree with a forward traversal.
//
// For every interleaving picked by the configured scheduler a fresh iterator is drained from both ends.
// Every value must be the snapshot value at the position of the end it was taken from,
// neither end may report exhaustion before the ends meet, and both must report exhaustion after they have met.
// A violation carries the run that produced it so that it can be replayed with ReplayInterleaving.
func BidirectionalCheck[T comparable](newIter func() DoubleEnded[T], opts ...Option) error {
	return BidirectionalCheckFunc(newIter, func(a, b T) bool { return a == b }, opts...)
}

// Check values taken from both ends of iterators created by newIter, comparing them with eq.
func BidirectionalCheckFunc[T any](newIter func() DoubleEnded[T], eq func(T, T) bool, opts ...Option) error {
	forward := func() Iterator[T] { return newIter() }
	if err := Check(forward, opts...); err != nil {
		return violation.Precondition("bidirectional sequence check", err)
	}
	cfg := configure(opts)

	var snapshot []T
	it := newIter()
	for {
		v, ok := it.Next()
		if !ok {
			break
		}
		snapshot = append(snapshot, v)
	}

	sch := cfg.sch.GetRunScheduler()
	for run := 0; cfg.maxRuns < 0 || run < cfg.maxRuns; run++ {
		if err := sch.StartRun(); err != nil {
			if errors.Is(err, scheduler.NoRunsError) {
				break
			}
			return err
		}
		taken, err := drain(newIter(), snapshot, eq, sch)
		if err != nil {
			return err
		}
		sch.EndRun(taken)
	}
	return nil
}

// Drain both ends of it as directed by sch
func drain[T any](it DoubleEnded[T], snapshot []T, eq func(T, T) bool, sch scheduler.RunScheduler) (scheduler.Run, error) {
	n := len(snapshot)
	taken := make(scheduler.Run, 0, n)
	fromFront := make([]T, 0, n)
	fromBack := make([]T, 0, n)

	for step := 0; len(fromFront)+len(fromBack) < n; step++ {
		side := sch.Next()
		taken = append(taken, side)

		var (
			v        T
			ok       bool
			expected T
		)
		if side == scheduler.Front {
			expected = snapshot[len(fromFront)]
			v, ok = it.Next()
		} else {
			expected = snapshot[n-1-len(fromBack)]
			v, ok = it.NextBack()
		}
		if !ok {
			return taken, mismatch("the %v reported exhaustion before the ends met", side).
				At(step).Values(expected, "exhaustion").During(taken)
		}
		if !eq(v, expected) {
			return taken, mismatch("unexpected value taken from the %v", side).
				At(step).Values(expected, v).During(taken)
		}
		if side == scheduler.Front {
			fromFront = append(fromFront, v)
		} else {
			fromBack = append(fromBack, v)
		}
	}
	tracer().Debugf("run %v took %d values from the front and %d from the back", taken, len(fromFront), len(fromBack))

	// The ends have met. Neither may produce another value.
	for _, side := range []scheduler.Side{scheduler.Front, scheduler.Back} {
		next := it.Next
		if side == scheduler.Back {
			next = it.NextBack
		}
		v, ok, fault := probe(next)
		if fault != nil {
			return taken, violation.New(violation.ExhaustionFault, "the %v panicked after the ends met", side).
				With("panic", fault).At(n).During(taken)
		}
		if ok {
			return taken, mismatch("the %v produced a value after the ends met", side).
				With("value", v).With("front", len(fromFront)).With("back", len(fromBack)).At(n).During(taken)
		}
	}

	combined := slices.Clone(fromFront)
	for i := len(fromBack) - 1; i >= 0; i-- {
		combined = append(combined, fromBack[i])
	}
	if !slices.EqualFunc(combined, snapshot, eq) {
		return taken, mismatch("front values followed by reversed back values differ from the forward traversal").
			Values(snapshot, combined).During(taken)
	}
	return taken, nil
}

func mismatch(format string, args ...any) *violation.Violation {
	return violation.New(violation.BidirectionalMismatch, format, args...)
}
