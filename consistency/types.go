package consistency

import "fmt"

// UnionType distinguishes the two ordered-class union shapes a measure can
// be evaluated against.
type UnionType int

const (
	// AtLeast is the "at least class k" union.
	AtLeast UnionType = iota
	// AtMost is the "at most class k" union.
	AtMost
)

func (u UnionType) String() string {
	switch u {
	case AtLeast:
		return "AT_LEAST"
	case AtMost:
		return "AT_MOST"
	default:
		return fmt.Sprintf("UnionType(%d)", int(u))
	}
}

// Sense declares which direction of a measure's value counts as "more
// consistent": Gain means higher is better, Cost means lower is better.
type Sense int

const (
	// Gain: the object satisfies a threshold iff its value is >= it.
	Gain Sense = iota
	// Cost: the object satisfies a threshold iff its value is <= it.
	Cost
)

func (s Sense) String() string {
	switch s {
	case Gain:
		return "GAIN"
	case Cost:
		return "COST"
	default:
		return fmt.Sprintf("Sense(%d)", int(s))
	}
}

// Satisfies reports whether a measured value meets a threshold under the
// given sense: value >= threshold for Gain, value <= threshold for Cost.
func Satisfies(value, threshold float64, sense Sense) bool {
	if sense == Gain {
		return value >= threshold
	}
	return value <= threshold
}

// Classifier is the minimal view of a decision-class union a consistency
// measure needs: its type, how many of a given set of object indices carry
// a decision negative for the union, and the size of the union's
// complement. Package approximation's Union satisfies this interface;
// consistency does not import approximation in order to keep it importable
// on its own and to let approximation depend on consistency's measures
// without a cycle.
type Classifier interface {
	// Type reports whether this is an AT_LEAST or AT_MOST union.
	Type() UnionType
	// CountNegative reports how many of objects have a decision classified
	// as negative for this union (i.e. belong to the union's complement,
	// excluding neutral objects).
	CountNegative(objects []int) int
	// ComplementSize reports |complement(U)|, excluding neutral objects.
	ComplementSize() int
}
