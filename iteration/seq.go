package iteration

import (
	"iter"

	"reltest/violation"
)

// Check that seq stops calling yield once yield returns false.
//
// seq is ranged over once to count its values, then once for every count, stopping after that many values.
func SeqCheck[T any](seq iter.Seq[T]) error {
	n := 0
	for range seq {
		n++
	}
	tracer().Debugf("sequence holds %d values", n)

	for stop := 0; stop < n; stop++ {
		var (
			calls   int
			stopped bool
			late    []T
		)
		seq(func(v T) bool {
			if stopped {
				late = append(late, v)
				return false
			}
			calls++
			if calls > stop {
				stopped = true
				return false
			}
			return true
		})
		if len(late) > 0 {
			return violation.New(violation.YieldAfterStop, "yield was called after it returned false").
				With("value", late[0]).With("calls", len(late)).At(stop)
		}
	}
	return nil
}
