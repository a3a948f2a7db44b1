package violation

import (
	"fmt"
)

// The law a Violation reports as broken.
type Kind int

const (
	// Not a violation. Returned by KindOf for errors that are not violations.
	None Kind = iota

	ReflexivityViolation
	SymmetryViolation
	AntisymmetryViolation
	TransitivityViolation
	EqualityOrderingInconsistency
	TotalityViolation
	HashInconsistency
	SizeEstimateViolation
	ExhaustionNotIdempotent
	BidirectionalMismatch
	PreconditionFailed

	// Two methods of the same protocol disagree, e.g. Less and Compare.
	MethodInconsistency
	// The hash input of one value is a proper prefix of the hash input of an unequal value.
	PrefixCollision
	// The iterator panicked when asked for a value after it was exhausted.
	ExhaustionFault
	// An iter.Seq called yield after yield returned false.
	YieldAfterStop
)

var kindNames = map[Kind]string{
	None:                          "None",
	ReflexivityViolation:          "ReflexivityViolation",
	SymmetryViolation:             "SymmetryViolation",
	AntisymmetryViolation:         "AntisymmetryViolation",
	TransitivityViolation:         "TransitivityViolation",
	EqualityOrderingInconsistency: "EqualityOrderingInconsistency",
	TotalityViolation:             "TotalityViolation",
	HashInconsistency:             "HashInconsistency",
	SizeEstimateViolation:         "SizeEstimateViolation",
	ExhaustionNotIdempotent:       "ExhaustionNotIdempotent",
	BidirectionalMismatch:         "BidirectionalMismatch",
	PreconditionFailed:            "PreconditionFailed",
	MethodInconsistency:           "MethodInconsistency",
	PrefixCollision:               "PrefixCollision",
	ExhaustionFault:               "ExhaustionFault",
	YieldAfterStop:                "YieldAfterStop",
}

// All kinds that can be reported, in declaration order.
func Kinds() []Kind {
	kinds := make([]Kind, 0, len(kindNames)-1)
	for k := ReflexivityViolation; k <= YieldAfterStop; k++ {
		kinds = append(kinds, k)
	}
	return kinds
}

func (k Kind) String() string {
	if name, ok := kindNames[k]; ok {
		return name
	}
	return fmt.Sprintf("Kind(%d)", int(k))
}

// A Kind is an error so that errors.Is(err, kind) can be used to test for it.
func (k Kind) Error() string {
	return k.String()
}

// Parse the name of a kind as returned by Kind.String
func ParseKind(s string) (Kind, error) {
	for k, name := range kindNames {
		if name == s {
			return k, nil
		}
	}
	return None, fmt.Errorf("violation: unknown kind %q", s)
}
