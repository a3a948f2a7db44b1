package scheduler

import (
	"testing"

	"golang.org/x/exp/slices"
)

func TestReplayScheduler(t *testing.T) {
	for i, test := range replaySchedulerTest {
		runs := collectRuns(t, NewReplay(test.run), test.n, 10)
		if len(runs) != 1 {
			t.Fatalf("Expected the replay scheduler to produce a single run in test %v. Got %v", i, len(runs))
		}
		if !slices.Equal(runs[0], test.expected) {
			t.Errorf("Received unexpected run in test %v. \n Got: %v\n Expected %v", i, runs[0], test.expected)
		}
	}
}

func TestAlternatingScheduler(t *testing.T) {
	runs := collectRuns(t, NewAlternating(), 5, 10)
	if len(runs) != 1 {
		t.Fatalf("Expected a single run. Got %v", len(runs))
	}
	expected := Run{Front, Back, Front, Back, Front}
	if !slices.Equal(runs[0], expected) {
		t.Errorf("Received unexpected run. Got %v. Expected %v", runs[0], expected)
	}
}

var replaySchedulerTest = []struct {
	run      Run
	n        int
	expected Run
}{
	{Run{Back, Front}, 2, Run{Back, Front}},
	{Run{Back}, 3, Run{Back, Front, Front}},
	{Run{}, 2, Run{Front, Front}},
	{Run{Back, Back, Back}, 2, Run{Back, Back}},
}
