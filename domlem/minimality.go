package domlem

import (
	"github.com/roughset/drsa/condition"
	"github.com/roughset/drsa/ruleconditions"
	"github.com/roughset/drsa/value"
)

// DefaultMinimalityChecker rejects a candidate rule if some already-accepted
// rule is at least as general (every one of its conditions also appears in
// the candidate) and at least as good on every configured evaluator —
// i.e. the candidate brings nothing the accepted rule doesn't already cover
// at least as well.
type DefaultMinimalityChecker struct{}

// IsMinimal reports whether candidate should be accepted given the rules
// already accepted for this induction run.
func (DefaultMinimalityChecker) IsMinimal(candidate *ruleconditions.RuleConditions, accepted []*ruleconditions.RuleConditions, evaluators []Evaluator) bool {
	candConds := candidate.Conditions()
	candCovered := candidate.CoveredObjectsIterator()

	for _, acc := range accepted {
		if !conditionsSubsetOf(acc.Conditions(), candConds) {
			continue
		}
		accCovered := acc.CoveredObjectsIterator()
		noWorse := true
		for _, e := range evaluators {
			if !betterOrEqual(e.Evaluate(accCovered, acc), e.Evaluate(candCovered, acc), e.Sense()) {
				noWorse = false
				break
			}
		}
		if noWorse {
			return false
		}
	}
	return true
}

// conditionsSubsetOf reports whether every condition in sub has a matching
// condition (same attribute, relation, phrasing, and limit) in super.
func conditionsSubsetOf(sub, super []condition.Condition) bool {
	for _, s := range sub {
		found := false
		for _, t := range super {
			if sameCondition(s, t) {
				found = true
				break
			}
		}
		if !found {
			return false
		}
	}
	return true
}

func sameCondition(a, b condition.Condition) bool {
	return a.AttributeIndex() == b.AttributeIndex() &&
		a.Relation() == b.Relation() &&
		a.Phrasing() == b.Phrasing() &&
		a.Limit().Equal(b.Limit()) == value.TRUE
}
