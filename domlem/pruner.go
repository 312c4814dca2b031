package domlem

import (
	"github.com/roughset/drsa/condition"
	"github.com/roughset/drsa/ruleconditions"
)

// FIFOConditionPruner tries dropping conditions in the order they were
// added to the rule: a condition is dropped permanently if the rule built
// from the remaining ones still satisfies the stopping checker, otherwise
// it is kept. Each trial rebuilds a fresh RuleConditions from the kept
// subset rather than mutating rc in place, so the result never depends on
// how RemoveCondition/AddCondition interleave with each other.
type FIFOConditionPruner struct{}

// Prune returns a new RuleConditions with a minimal (w.r.t. this one
// left-to-right pass) subset of rc's conditions that still satisfies
// stopping.
func (FIFOConditionPruner) Prune(rc *ruleconditions.RuleConditions, stopping StoppingChecker) (*ruleconditions.RuleConditions, error) {
	original := rc.Conditions()
	kept := make([]bool, len(original))
	for i := range kept {
		kept[i] = true
	}

	for i := range original {
		kept[i] = false
		candidate, err := buildFromKept(rc, original, kept)
		if err != nil {
			return nil, err
		}
		if !stopping.IsSatisfied(candidate) {
			kept[i] = true
		}
	}
	return buildFromKept(rc, original, kept)
}

func buildFromKept(rc *ruleconditions.RuleConditions, original []condition.Condition, kept []bool) (*ruleconditions.RuleConditions, error) {
	fresh := rc.EmptyWithSameContext()
	for i, c := range original {
		if !kept[i] {
			continue
		}
		if err := fresh.AddCondition(c); err != nil {
			return nil, err
		}
	}
	return fresh, nil
}

// DefaultRuleSetPruner drops whole rules from a per-union emitted list in
// order, keeping a drop permanent only if the remaining rules still cover
// every object in base0 (the union's full base set before any rule was
// induced, i.e. Lower(U)/Upper(U)/Boundary(U) prior to the sequential
// covering loop).
type DefaultRuleSetPruner struct{}

// Prune returns the subset of rules still required to cover base0.
func (DefaultRuleSetPruner) Prune(rules []*ruleconditions.RuleConditions, base0 []int) []*ruleconditions.RuleConditions {
	kept := make([]bool, len(rules))
	for i := range kept {
		kept[i] = true
	}
	for i := range rules {
		kept[i] = false
		if !coversAll(rules, kept, base0) {
			kept[i] = true
		}
	}

	out := make([]*ruleconditions.RuleConditions, 0, len(rules))
	for i, k := range kept {
		if k {
			out = append(out, rules[i])
		}
	}
	return out
}

func coversAll(rules []*ruleconditions.RuleConditions, kept []bool, base0 []int) bool {
	for _, obj := range base0 {
		covered := false
		for i, r := range rules {
			if !kept[i] {
				continue
			}
			if r.Covers(obj) {
				covered = true
				break
			}
		}
		if !covered {
			return false
		}
	}
	return true
}
