package consistency

import "github.com/roughset/drsa/dominance"

// Measure is an object consistency measure: a function of an object and the
// union it is being tested against, with a declared Sense that Satisfies
// uses to interpret a threshold.
type Measure interface {
	// Name identifies the measure for diagnostics and serialization.
	Name() string
	// Sense reports whether higher or lower values are more consistent.
	Sense() Sense
	// Evaluate computes the measure's value for obj against u, consulting
	// cones for whatever dominance-cone data the measure needs.
	Evaluate(obj int, u Classifier, cones *dominance.ConeSet) (float64, error)
}

// EpsilonMeasure is the distinguished consistency measure of §4.4.3: the
// number of objects in an object's counting cone whose decision is negative
// for the union under test, divided by the size of the union's complement.
// It is a Cost measure (0 fully consistent, 1 worst).
//
// The counting cone is D+(inv) for AT_LEAST unions and D- for AT_MOST
// unions — see package dominance's doc comment for why the inverted flavor
// is defined the way it is.
type EpsilonMeasure struct{}

// Name returns "epsilon".
func (EpsilonMeasure) Name() string { return "epsilon" }

// Sense returns Cost: smaller epsilon is more consistent.
func (EpsilonMeasure) Sense() Sense { return Cost }

// Evaluate computes ε(obj, u) = |{j in counting cone : decision(j) negative
// for u}| / |complement(u)|, degenerating to 0 when the complement is empty.
func (EpsilonMeasure) Evaluate(obj int, u Classifier, cones *dominance.ConeSet) (float64, error) {
	flavor, err := countingCone(u.Type())
	if err != nil {
		return 0, err
	}
	cone, err := cones.Cone(flavor, obj)
	if err != nil {
		return 0, err
	}

	complement := u.ComplementSize()
	if complement == 0 {
		return 0, nil
	}
	negative := u.CountNegative(cone)
	return float64(negative) / float64(complement), nil
}

func countingCone(t UnionType) (dominance.Flavor, error) {
	switch t {
	case AtLeast:
		return dominance.PositiveInverted, nil
	case AtMost:
		return dominance.NegativeStandard, nil
	default:
		return 0, ErrUnsupportedUnionType
	}
}
