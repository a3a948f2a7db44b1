package scheduler

// Replays a single recorded run.
//
// The run is typically obtained from a violation reported by a bidirectional check.
// Once the recorded sides are used up the remaining values are taken from the front.
type Replay struct {
	run Run
}

func NewReplay(run Run) *Replay {
	return &Replay{
		run: run,
	}
}

func (r *Replay) GetRunScheduler() RunScheduler {
	return newRunReplay(r.run)
}

type runReplay struct {
	// The run to be replayed
	run Run
	// The index of the next side
	index int
	done  bool
}

func newRunReplay(run Run) *runReplay {
	return &runReplay{
		run: run,
	}
}

func (rr *runReplay) StartRun() error {
	if rr.done {
		return NoRunsError
	}
	rr.done = true
	rr.index = 0
	return nil
}

func (rr *runReplay) Next() Side {
	if rr.index >= len(rr.run) {
		return Front
	}
	side := rr.run[rr.index]
	rr.index++
	return side
}

func (rr *runReplay) EndRun(Run) {}

// Alternates between the front and the back, starting at the front.
type Alternating struct{}

func NewAlternating() *Alternating {
	return &Alternating{}
}

func (a *Alternating) GetRunScheduler() RunScheduler {
	return &runAlternating{}
}

type runAlternating struct {
	next Side
	done bool
}

func (ra *runAlternating) StartRun() error {
	if ra.done {
		return NoRunsError
	}
	ra.done = true
	ra.next = Front
	return nil
}

func (ra *runAlternating) Next() Side {
	side := ra.next
	if side == Front {
		ra.next = Back
	} else {
		ra.next = Front
	}
	return side
}

func (ra *runAlternating) EndRun(Run) {}
