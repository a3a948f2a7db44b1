package scheduler

import (
	"golang.org/x/exp/slices"
)

// Explores the interleavings by maintaining a stack of unexplored prefixes.
// When a new run is started it follows the prefix and then takes every value from the front, adding a new prefix for every front step it takes.
// Every interleaving of a sequence of length n is explored exactly once, 2^n runs in total.
type Prefix struct{}

func NewPrefix() *Prefix {
	return &Prefix{}
}

func (p *Prefix) GetRunScheduler() RunScheduler {
	return newRunPrefix()
}

type runPrefix struct {
	// unexplored prefixes
	pending []Run

	currentIndex int
	currentRun   Run
}

func newRunPrefix() *runPrefix {
	return &runPrefix{
		pending: []Run{{}},
	}
}

// Pop the latest prefix. Returns NoRunsError when the stack is empty.
func (rp *runPrefix) StartRun() error {
	if len(rp.pending) == 0 {
		return NoRunsError
	}
	rp.currentRun = rp.pending[len(rp.pending)-1]
	rp.pending = rp.pending[:len(rp.pending)-1]
	rp.currentIndex = 0
	return nil
}

// Follow the current prefix until it has no more sides, then take from the front.
func (rp *runPrefix) Next() Side {
	if rp.currentIndex < len(rp.currentRun) {
		side := rp.currentRun[rp.currentIndex]
		rp.currentIndex++
		return side
	}
	rp.currentIndex++
	return Front
}

// Add the unexplored alternatives discovered during the run.
// Every front step taken after the prefix could have been a back step instead.
func (rp *runPrefix) EndRun(taken Run) {
	for i := len(rp.currentRun); i < len(taken); i++ {
		if taken[i] != Front {
			continue
		}
		alt := slices.Clone(taken[:i])
		alt = append(alt, Back)
		rp.pending = append(rp.pending, alt)
	}
}
