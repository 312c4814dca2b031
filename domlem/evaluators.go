package domlem

import (
	"github.com/roughset/drsa/consistency"
	"github.com/roughset/drsa/ruleconditions"
)

// ConsistencyEvaluator is a Cost measure: the fraction of a candidate's
// hypothetical covered set that falls outside the rule's allowed-coverage
// set. Zero means every covered object is allowed (fully consistent);
// deteriorates as more disallowed objects are swept in, hence
// DeterioratesWithCoverage. Grounded on the same "negative fraction of a
// cone" shape as consistency.EpsilonMeasure, applied to a rule's covered
// set instead of a cone.
type ConsistencyEvaluator struct{}

// Name returns "consistency".
func (ConsistencyEvaluator) Name() string { return "consistency" }

// Sense returns Cost: smaller is better.
func (ConsistencyEvaluator) Sense() consistency.Sense { return consistency.Cost }

// Monotonicity returns DeterioratesWithCoverage.
func (ConsistencyEvaluator) Monotonicity() MonotonicityType { return DeterioratesWithCoverage }

// Evaluate computes |covered \ allowed| / |covered|, 0 when covered is
// empty (vacuously consistent).
func (ConsistencyEvaluator) Evaluate(covered []int, rc *ruleconditions.RuleConditions) float64 {
	if len(covered) == 0 {
		return 0
	}
	disallowed := 0
	for _, i := range covered {
		if !rc.IsAllowed(i) {
			disallowed++
		}
	}
	return float64(disallowed) / float64(len(covered))
}

// CoverageEvaluator is a Gain measure: the number of positive objects in a
// candidate's hypothetical covered set. Larger is better (more support),
// and strictly improves as coverage grows, hence ImprovesWithCoverage.
type CoverageEvaluator struct{}

// Name returns "coverage".
func (CoverageEvaluator) Name() string { return "coverage" }

// Sense returns Gain: larger is better.
func (CoverageEvaluator) Sense() consistency.Sense { return consistency.Gain }

// Monotonicity returns ImprovesWithCoverage.
func (CoverageEvaluator) Monotonicity() MonotonicityType { return ImprovesWithCoverage }

// Evaluate counts how many of covered are positive objects.
func (CoverageEvaluator) Evaluate(covered []int, rc *ruleconditions.RuleConditions) float64 {
	n := 0
	for _, i := range covered {
		if rc.IsPositive(i) {
			n++
		}
	}
	return float64(n)
}

// DefaultEvaluators returns the standard VC-DomLEM evaluator pair in
// literature order: minimize inconsistency first, break ties by maximizing
// support.
func DefaultEvaluators() []Evaluator {
	return []Evaluator{ConsistencyEvaluator{}, CoverageEvaluator{}}
}

// validateEvaluators enforces §4.7's validation contract: the evaluator
// list's monotonicity type may switch at most once walking it in order.
func validateEvaluators(evaluators []Evaluator) error {
	if len(evaluators) == 0 {
		return ErrNoEvaluators
	}
	switches := 0
	for i := 1; i < len(evaluators); i++ {
		if evaluators[i].Monotonicity() != evaluators[i-1].Monotonicity() {
			switches++
		}
	}
	if switches > 1 {
		return ErrEvaluatorMonotonicitySwitchedTwice
	}
	return nil
}

// compareByEvaluators compares two candidates' hypothetical covered sets
// lexicographically across evaluators, in list order. It returns a
// positive number if a is better, negative if b is better, 0 if tied on
// every evaluator.
func compareByEvaluators(evaluators []Evaluator, coveredA, coveredB []int, rc *ruleconditions.RuleConditions) int {
	for _, e := range evaluators {
		va := e.Evaluate(coveredA, rc)
		vb := e.Evaluate(coveredB, rc)
		if strictlyBetter(va, vb, e.Sense()) {
			return 1
		}
		if strictlyBetter(vb, va, e.Sense()) {
			return -1
		}
	}
	return 0
}
