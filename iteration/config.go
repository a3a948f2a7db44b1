package iteration

import (
	"reltest/scheduler"
)

type Option interface{}

type schedulerOption struct {
	sch scheduler.GlobalScheduler
	// the scheduler explores a bounded space and is not capped by default
	exhaustive bool
}

// Interleave front and back consumption at random.
//
// The random walk is seeded, so the same seed always produces the same runs.
// It does not guarantee that all interleavings are tested, nor that an interleaving is not tested twice.
// This is the default, with seed 1.
func RandomInterleaving(seed int64) Option {
	return schedulerOption{sch: scheduler.NewRandom(seed)}
}

// Replay the provided run.
//
// The run can be taken from the Run field of a BidirectionalMismatch violation.
// Values are taken from the front once the run is used up.
func ReplayInterleaving(run scheduler.Run) Option {
	return schedulerOption{sch: scheduler.NewReplay(run), exhaustive: true}
}

// Alternate between the front and the back, starting at the front
func AlternatingInterleaving() Option {
	return schedulerOption{sch: scheduler.NewAlternating(), exhaustive: true}
}

// Test every interleaving of front and back consumption.
//
// A sequence of length n has 2^n interleavings. Unless MaxRuns is set, all of them are tested.
func ExhaustiveInterleaving() Option {
	return schedulerOption{sch: scheduler.NewPrefix(), exhaustive: true}
}

// Use the provided scheduler to pick the interleavings
func WithScheduler(sch scheduler.GlobalScheduler) Option {
	return schedulerOption{sch: sch}
}

type maxRunsOption struct{ maxRuns int }

// Configure the maximum number of interleavings tested by a bidirectional check.
//
// Default value is 8. Replayed, alternating and exhaustive interleavings are not capped by default,
// they run until the scheduler has no more runs.
func MaxRuns(maxRuns int) Option {
	return maxRunsOption{maxRuns: maxRuns}
}

type exhaustionProbesOption struct{ n int }

// Configure how many times an exhausted iterator is asked for another value.
//
// Default value is the length of the sequence plus one.
func ExhaustionProbes(n int) Option {
	return exhaustionProbesOption{n: n}
}

type config struct {
	sch     scheduler.GlobalScheduler
	maxRuns int
	// negative until resolved against the length of the sequence
	probes int
}

func configure(opts []Option) config {
	var (
		sch        scheduler.GlobalScheduler = scheduler.NewRandom(1)
		exhaustive                           = false
		maxRuns                              = 0
		probes                               = -1
	)

	for _, opt := range opts {
		switch t := opt.(type) {
		case schedulerOption:
			sch = t.sch
			exhaustive = t.exhaustive
		case maxRunsOption:
			maxRuns = t.maxRuns
		case exhaustionProbesOption:
			probes = t.n
		}
	}

	if maxRuns <= 0 {
		if exhaustive {
			maxRuns = -1
		} else {
			maxRuns = 8
		}
	}
	return config{
		sch:     sch,
		maxRuns: maxRuns,
		probes:  probes,
	}
}

// The number of exhaustion probes for a sequence of length n
func (c config) probesFor(n int) int {
	if c.probes < 0 {
		return n + 1
	}
	return c.probes
}
