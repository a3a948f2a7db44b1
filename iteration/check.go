package iteration

import (
	"fmt"

	"reltest/violation"
)

// A size hint observed before taking a value
type hint struct {
	lower, upper int
	bounded      bool
}

func (h hint) String() string {
	if !h.bounded {
		return fmt.Sprintf("(%d, none)", h.lower)
	}
	return fmt.Sprintf("(%d, %d)", h.lower, h.upper)
}

// Check that iterators created by newIter honor the base sequence protocol.
//
// If the iterator implements SizeHinter, its hint must be correct before every value is taken and after exhaustion.
// Once exhausted the iterator is asked for more values, which must not panic. It may resume producing values.
func Check[T any](newIter func() Iterator[T], opts ...Option) error {
	cfg := configure(opts)
	it := newIter()
	hinter, hinted := it.(SizeHinter)

	var hints []hint
	n := 0
	for {
		if hinted {
			lower, upper, bounded := hinter.SizeHint()
			hints = append(hints, hint{lower, upper, bounded})
		}
		if _, ok := it.Next(); !ok {
			break
		}
		n++
	}
	tracer().Debugf("sequence holds %d values", n)

	for step, h := range hints {
		remaining := n - step
		if h.lower > remaining {
			return violation.New(violation.SizeEstimateViolation, "lower bound of size hint exceeds the remaining count").
				With("hint", h).With("remaining", remaining).At(step)
		}
		if h.bounded && h.upper < remaining {
			return violation.New(violation.SizeEstimateViolation, "upper bound of size hint is below the remaining count").
				With("hint", h).With("remaining", remaining).At(step)
		}
	}

	probes := cfg.probesFor(n)
	for p := 0; p < probes; p++ {
		if _, _, fault := probe(it.Next); fault != nil {
			return violation.New(violation.ExhaustionFault, "next panicked after the sequence was exhausted").
				With("panic", fault).At(n + p)
		}
	}
	return nil
}

// Check that iterators created by newNext honor the base sequence protocol
func CheckFunc[T any](newNext func() func() (T, bool), opts ...Option) error {
	return Check(nextFuncs(newNext), opts...)
}

// Check that an exhausted iterator keeps reporting exhaustion.
//
// The base check must hold first. The number of probes is configured with ExhaustionProbes.
func FusedCheck[T any](newIter func() Iterator[T], opts ...Option) error {
	if err := Check(newIter, opts...); err != nil {
		return violation.Precondition("fused sequence check", err)
	}
	cfg := configure(opts)
	it := newIter()
	n := 0
	for {
		if _, ok := it.Next(); !ok {
			break
		}
		n++
	}

	probes := cfg.probesFor(n)
	for p := 0; p < probes; p++ {
		v, ok, _ := probe(it.Next)
		if ok {
			return violation.New(violation.ExhaustionNotIdempotent, "a value was produced after the sequence was exhausted").
				With("probe", p).With("value", v).At(n + p)
		}
	}
	return nil
}

// Check that iterators created by newNext keep reporting exhaustion
func FusedCheckFunc[T any](newNext func() func() (T, bool), opts ...Option) error {
	return FusedCheck(nextFuncs(newNext), opts...)
}

func nextFuncs[T any](newNext func() func() (T, bool)) func() Iterator[T] {
	return func() Iterator[T] {
		return NextFunc[T](newNext())
	}
}

// Call next, recovering a panic
func probe[T any](next func() (T, bool)) (v T, ok bool, fault any) {
	defer func() {
		if r := recover(); r != nil {
			fault = r
		}
	}()
	v, ok = next()
	return
}
