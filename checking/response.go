package checking

import (
	"bytes"
	"fmt"
	"text/tabwriter"

	"reltest/scheduler"
	"reltest/violation"
)

// CheckerResponse is a response returned by a Checker
//
// Contains the result of running the checks.
type CheckerResponse interface {
	// Create a response.
	//
	// Returns a boolean that is true if all checks hold, false otherwise.
	// Returns a string describing the response.
	// This includes the broken law, the operands that broke it and, for bidirectional checks, the run that produced it.
	Response() (bool, string)

	// Export the interleaving that caused a bidirectional check to fail
	//
	// Returns an empty run if no check failed or the failure was not produced by an interleaving.
	Export() scheduler.Run
}

type Response struct {
	Result bool   // True if all checks hold. False otherwise
	Test   int    // The index of the failing check. -1 if Result is true
	Name   string // The name of the failing check
	Err    error  // The error returned by the failing check. nil if Result is true
}

// Generate a response
// Returns two parameters, result, and description.
// Result is true if all checks hold, false otherwise.
// If result is false the description lists every violation in the cause chain with its operands
func (r Response) Response() (bool, string) {
	if r.Result {
		return r.Result, "All checks hold"
	}
	var buffer bytes.Buffer
	wrt := tabwriter.NewWriter(&buffer, 4, 4, 1, ' ', 0)
	out := fmt.Sprintf("Check broken. Check: %v (%v). Violation: \n", r.Test, r.Name)

	v, ok := violation.As(r.Err)
	if !ok {
		fmt.Fprintf(wrt, "-> %v \n", r.Err)
	}
	for ok {
		fmt.Fprintf(wrt, "-> %v\t%v \n", v.Kind, v.Description)
		for _, op := range v.Operands {
			fmt.Fprintf(wrt, "\t%v\t= %v \n", op.Name, op.Value)
		}
		if v.Step >= 0 {
			fmt.Fprintf(wrt, "\tstep\t= %v \n", v.Step)
		}
		if v.Expected != nil || v.Observed != nil {
			fmt.Fprintf(wrt, "\texpected\t= %v \n", v.Expected)
			fmt.Fprintf(wrt, "\tobserved\t= %v \n", v.Observed)
		}
		if len(v.Run) > 0 {
			fmt.Fprintf(wrt, "\trun\t= %v \n", v.Run)
		}
		v, ok = violation.As(v.Unwrap())
	}
	wrt.Flush()
	out += buffer.String()
	return r.Result, out
}

// Export the failing run to be replayed with iteration.ReplayInterleaving
func (r Response) Export() scheduler.Run {
	run := scheduler.Run{}
	v, ok := violation.As(r.Err)
	for ok {
		if len(v.Run) > 0 {
			return append(run, v.Run...)
		}
		v, ok = violation.As(v.Unwrap())
	}
	return run
}
