package violation

import (
	"errors"
	"fmt"
	"strings"

	"reltest/scheduler"
)

// A named value involved in a violation
type Operand struct {
	Name  string
	Value any
}

func (o Operand) String() string {
	return fmt.Sprintf("%s = %v", o.Name, o.Value)
}

// A Violation describes exactly one broken law.
//
// It is created by a checker at the point of failure and is not changed after it has been returned.
type Violation struct {
	Kind        Kind
	Description string
	Operands    []Operand

	// The step of the iteration the violation was found at. -1 if the violation is not tied to a step
	Step int
	// The expected and observed values. Both are nil when the law does not compare against an expectation
	Expected any
	Observed any
	// The interleaving of front and back consumption that produced a bidirectional mismatch
	Run scheduler.Run

	cause error
}

// Create a new violation of the given kind.
//
// The description is formatted with fmt.Sprintf.
func New(kind Kind, format string, args ...any) *Violation {
	v := &Violation{
		Kind:        kind,
		Description: fmt.Sprintf(format, args...),
		Step:        -1,
	}
	tracer().Debugf("%v: %v", kind, v.Description)
	return v
}

// Wrap the violation of a dependency check.
//
// check names the check that could not be performed. If cause is not a violation it is still kept as the cause.
func Precondition(check string, cause error) *Violation {
	return New(PreconditionFailed, "%s requires its precondition to hold", check).Because(cause)
}

// Add a named operand to the violation
func (v *Violation) With(name string, value any) *Violation {
	v.Operands = append(v.Operands, Operand{Name: name, Value: value})
	return v
}

// Set the step the violation was found at
func (v *Violation) At(step int) *Violation {
	v.Step = step
	return v
}

// Set the expected and observed values
func (v *Violation) Values(expected, observed any) *Violation {
	v.Expected = expected
	v.Observed = observed
	return v
}

// Set the violation that caused this one
func (v *Violation) Because(cause error) *Violation {
	v.cause = cause
	return v
}

// Attach the interleaving that produced the violation
func (v *Violation) During(run scheduler.Run) *Violation {
	v.Run = run
	return v
}

func (v *Violation) Error() string {
	var sb strings.Builder
	sb.WriteString(v.Kind.String())
	sb.WriteString(": ")
	sb.WriteString(v.Description)
	if len(v.Operands) > 0 {
		sb.WriteString(" (")
		for i, op := range v.Operands {
			if i > 0 {
				sb.WriteString(", ")
			}
			sb.WriteString(op.String())
		}
		sb.WriteString(")")
	}
	if v.Step >= 0 {
		fmt.Fprintf(&sb, " at step %d", v.Step)
	}
	if v.Expected != nil || v.Observed != nil {
		fmt.Fprintf(&sb, ": expected %v, observed %v", v.Expected, v.Observed)
	}
	if len(v.Run) > 0 {
		fmt.Fprintf(&sb, " [run %v]", v.Run)
	}
	if v.cause != nil {
		sb.WriteString(": ")
		sb.WriteString(v.cause.Error())
	}
	return sb.String()
}

// The violation of the dependency check. nil unless Kind is PreconditionFailed
func (v *Violation) Unwrap() error {
	return v.cause
}

// Report whether target is the kind of this violation.
// Used by errors.Is, which also follows the cause chain.
func (v *Violation) Is(target error) bool {
	k, ok := target.(Kind)
	return ok && k == v.Kind
}

// Return the outermost violation in the chain of err
func As(err error) (*Violation, bool) {
	var v *Violation
	if errors.As(err, &v) {
		return v, true
	}
	return nil, false
}

// Return the kind of the outermost violation in err. None if err holds no violation
func KindOf(err error) Kind {
	if v, ok := As(err); ok {
		return v.Kind
	}
	return None
}

// Return the innermost violation in the cause chain of err.
// For a PreconditionFailed violation this is the violation that was found by the dependency check.
func Root(err error) *Violation {
	v, ok := As(err)
	if !ok {
		return nil
	}
	for {
		next, ok := As(v.cause)
		if !ok {
			return v
		}
		v = next
	}
}
