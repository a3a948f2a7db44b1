package scheduler

import (
	"errors"
	"fmt"
	"strings"
)

// The end of a double-ended sequence that a value is taken from.
type Side int8

const (
	Front Side = iota
	Back
)

func (s Side) String() string {
	switch s {
	case Front:
		return "front"
	case Back:
		return "back"
	}
	return fmt.Sprintf("Side(%d)", int8(s))
}

// A run is the sequence of sides that values were taken from while draining a
// double-ended sequence. It is exported on failure so that it can be replayed.
type Run []Side

// Returns the run in its compact form, e.g. "FBBF".
func (r Run) String() string {
	var sb strings.Builder
	for _, s := range r {
		if s == Back {
			sb.WriteByte('B')
		} else {
			sb.WriteByte('F')
		}
	}
	return sb.String()
}

// Parse the compact form returned by Run.String.
func ParseRun(s string) (Run, error) {
	run := make(Run, 0, len(s))
	for i, c := range s {
		switch c {
		case 'F', 'f':
			run = append(run, Front)
		case 'B', 'b':
			run = append(run, Back)
		default:
			return nil, fmt.Errorf("scheduler: invalid side %q at position %d", c, i)
		}
	}
	return run, nil
}

type GlobalScheduler interface {
	// Used to manage the exploration of the interleavings of front and back consumption.
	// The global scheduler manages the total state across several runs.

	// Create a RunScheduler that will communicate with the global scheduler
	GetRunScheduler() RunScheduler
}

type RunScheduler interface {
	// Decides, step by step, which end of the sequence the next value is taken from.
	// A RunScheduler is used from a single goroutine.

	// Prepare for starting a new run. Returns a NoRunsError if all possible runs have been completed.
	StartRun() error
	// Get the side the next value should be taken from.
	Next() Side
	// Finish the current run. taken holds the sides that produced a value during the run.
	EndRun(taken Run)
}

var (
	NoRunsError = errors.New("scheduler: No available new runs to be started")
)
