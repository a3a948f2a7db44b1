package grpcstatus

import (
	"errors"
	"testing"

	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
	"gotest.tools/v3/assert"

	"reltest/scheduler"
	"reltest/violation"
)

func TestStatusCodes(t *testing.T) {
	for i, test := range statusCodeTest {
		st := Status(test.err)
		if st.Code() != test.code {
			t.Errorf("Received unexpected code in test %v. Got %v. Expected %v", i, st.Code(), test.code)
		}
	}
}

func TestRoundTrip(t *testing.T) {
	for i, test := range roundTripTest {
		// through the error a gRPC handler would return
		st, ok := status.FromError(Status(test).Err())
		assert.Assert(t, ok)
		back := FromStatus(st)
		if back.Error() != test.Error() {
			t.Errorf("Received unexpected violation in test %v. \n Got: %v\n Expected %v", i, back, test)
		}
		if violation.KindOf(back) != violation.KindOf(test) {
			t.Errorf("Received unexpected kind in test %v. Got %v", i, violation.KindOf(back))
		}
	}
}

func TestRoundTripKeepsChain(t *testing.T) {
	inner := violation.New(violation.BidirectionalMismatch, "unexpected value taken from the back").
		At(1).Values(5, 2).During(scheduler.Run{scheduler.Front, scheduler.Back})
	err := violation.Precondition("outer check", inner)

	back := FromStatus(Status(err))
	assert.Assert(t, errors.Is(back, violation.BidirectionalMismatch))
	root := violation.Root(back)
	assert.Equal(t, root.Step, 1)
	assert.Equal(t, root.Run.String(), "FB")
	assert.Equal(t, root.Expected, "5")
}

func TestPlainErrors(t *testing.T) {
	assert.NilError(t, FromStatus(Status(nil)))
	err := FromStatus(Status(errors.New("worker lost")))
	assert.Error(t, err, "worker lost")
	assert.Equal(t, violation.KindOf(err), violation.None)
}

var statusCodeTest = []struct {
	err  error
	code codes.Code
}{
	{nil, codes.OK},
	{errors.New("boom"), codes.Unknown},
	{violation.New(violation.SymmetryViolation, "a == b but b != a"), codes.FailedPrecondition},
	{violation.Precondition("hash check", violation.New(violation.ReflexivityViolation, "a != a")), codes.FailedPrecondition},
}

var roundTripTest = []*violation.Violation{
	violation.New(violation.ReflexivityViolation, "expected a == a").With("a", 1.5),
	violation.New(violation.SizeEstimateViolation, "lower bound of size hint exceeds the remaining count").With("hint", "(3, 3)").With("remaining", 2).At(1),
	violation.New(violation.HashInconsistency, "a == b but their hashes differ").With("a", "Go").With("b", "GO").Values("476f", "474f"),
	violation.Precondition("fused sequence check", violation.New(violation.ExhaustionFault, "100%% broken").With("panic", "boom").At(4)),
	violation.Precondition("plain", errors.New("not a violation")),
}
