package scheduler

import (
	"math/rand"
)

// A scheduler that randomly picks the side the next value is taken from.
//
// It is useful for testing a random selection of interleavings when the number of interleavings is to large to perform an exhaustive search.
// It provides no guarantee that all errors have been found.
// Since the random source is seeded, the same seed always produces the same runs.
type Random struct {
	seed int64
}

// Create a new Random scheduler
//
// Initialized with a seed which is used to initialize run-specific schedulers
func NewRandom(seed int64) *Random {
	return &Random{
		seed: seed,
	}
}

// Create a RunScheduler that draws from its own random source
func (r *Random) GetRunScheduler() RunScheduler {
	return newRandomRun(r.seed)
}

type randomRun struct {
	rand *rand.Rand
}

func newRandomRun(seed int64) *randomRun {
	return &randomRun{
		rand: rand.New(rand.NewSource(seed)),
	}
}

// A random walk has no designated stop point. The number of runs is bounded by the caller.
func (rr *randomRun) StartRun() error {
	return nil
}

func (rr *randomRun) Next() Side {
	if rr.rand.Intn(2) == 0 {
		return Front
	}
	return Back
}

func (rr *randomRun) EndRun(Run) {}
