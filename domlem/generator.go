package domlem

import (
	"github.com/roughset/drsa/condition"
	"github.com/roughset/drsa/consistency"
	"github.com/roughset/drsa/ruleconditions"
	"github.com/roughset/drsa/table"
	"github.com/roughset/drsa/value"
)

// ConditionGenerator implements §4.7's M4-optimized best-condition search:
// for every active-condition attribute without an existing condition in
// the current RuleConditions, it builds a candidate elementary condition
// and ranks candidates lexicographically by an ordered Evaluator list,
// picking the overall best across attributes.
//
// Fidelity note: §4.7 step 7 describes narrowing a search interval on q as
// a *performance* optimization once an evaluator-monotonicity mismatch
// (checkLessExtreme) makes the single extreme value insufficient. This
// generator reproduces the same final answer by scanning every distinct
// value the attribute takes among the considered objects instead of
// tracking narrowing interval endpoints — strictly more work in the
// mismatched-monotonicity case, but observably identical, since the
// narrowed interval is a subset of the full scan and both are ranked by
// the same evaluator list.
type ConditionGenerator struct {
	tbl        *table.InformationTable
	evaluators []Evaluator
	mixed      bool
}

// NewConditionGenerator validates evaluators (§4.7's "switches monotonicity
// at most once" contract) and returns a generator over tbl.
func NewConditionGenerator(tbl *table.InformationTable, evaluators []Evaluator) (*ConditionGenerator, error) {
	if err := validateEvaluators(evaluators); err != nil {
		return nil, err
	}
	if len(tbl.ConditionAttributeIndices()) == 0 {
		return nil, ErrNoActiveConditionAttributes
	}
	return &ConditionGenerator{
		tbl:        tbl,
		evaluators: evaluators,
		mixed:      mixedMonotonicity(evaluators),
	}, nil
}

// GetBestCondition returns the best elementary condition to add next, or
// ErrElementaryConditionNotFound if no active-condition attribute yields a
// candidate (every attribute already has a condition, or every attribute's
// values on consideredObjects are all missing).
func (g *ConditionGenerator) GetBestCondition(consideredObjects []int, rc *ruleconditions.RuleConditions, ruleType condition.RuleType, unionType consistency.UnionType) (condition.Condition, error) {
	var best condition.Condition
	var bestCovered []int
	have := false

	for _, q := range g.tbl.ConditionAttributeIndices() {
		if rc.HasConditionForAttribute(q) {
			continue
		}
		attr := g.tbl.Attributes()[q]

		cand, covered, ok, err := g.bestForAttribute(q, attr, consideredObjects, rc, ruleType, unionType)
		if err != nil {
			return condition.Condition{}, err
		}
		if !ok {
			continue
		}
		if !have || compareByEvaluators(g.evaluators, covered, bestCovered, rc) > 0 {
			best, bestCovered, have = cand, covered, true
		}
	}

	if !have {
		return condition.Condition{}, ErrElementaryConditionNotFound
	}
	return best, nil
}

// bestForAttribute returns attribute q's single best candidate condition
// over consideredObjects, or ok=false if q has no non-missing evaluation
// among them.
func (g *ConditionGenerator) bestForAttribute(q int, attr table.Attribute, consideredObjects []int, rc *ruleconditions.RuleConditions, ruleType condition.RuleType, unionType consistency.UnionType) (condition.Condition, []int, bool, error) {
	values, err := distinctValuesOnAttribute(g.tbl, q, consideredObjects)
	if err != nil {
		return condition.Condition{}, nil, false, err
	}
	if len(values) == 0 {
		return condition.Condition{}, nil, false, nil
	}

	candidates := values
	if attr.Preference != table.None && attr.ValueKind != value.KindPair && !g.mixed {
		cm := compareToMultiplier(attr.Preference, unionType)
		wantLeastRestrictive := g.evaluators[0].Monotonicity() == ImprovesWithCoverage
		candidates = []value.Value{extremeValue(cm, values, wantLeastRestrictive)}
	}

	var best condition.Condition
	var bestCovered []int
	have := false
	for _, v := range candidates {
		cand, err := condition.Construct(ruleType, unionType, attr.Preference, q, attr.Name, v, attr.MissingValueFlavor)
		if err != nil {
			return condition.Condition{}, nil, false, err
		}
		covered, err := hypotheticalCovered(consideredObjects, rc, cand)
		if err != nil {
			return condition.Condition{}, nil, false, err
		}
		if !have || compareByEvaluators(g.evaluators, covered, bestCovered, rc) > 0 {
			best, bestCovered, have = cand, covered, true
		}
	}
	return best, bestCovered, have, nil
}

// hypotheticalCovered returns the subset of consideredObjects that would
// remain covered if cand were added to rc, without mutating rc.
func hypotheticalCovered(consideredObjects []int, rc *ruleconditions.RuleConditions, cand condition.Condition) ([]int, error) {
	simulated, err := rc.GetIndicesOfCoveredObjectsWithCondition(cand)
	if err != nil {
		return nil, err
	}
	inSimulated := make(map[int]bool, len(simulated))
	for _, i := range simulated {
		inSimulated[i] = true
	}
	var out []int
	for _, i := range consideredObjects {
		if inSimulated[i] {
			out = append(out, i)
		}
	}
	return out, nil
}

// distinctValuesOnAttribute collects every distinct non-missing value
// attribute q takes among objects, in first-seen order.
func distinctValuesOnAttribute(tbl *table.InformationTable, q int, objects []int) ([]value.Value, error) {
	var values []value.Value
	for _, i := range objects {
		v, err := tbl.GetField(i, q)
		if err != nil {
			return nil, err
		}
		if v.IsMissing() {
			continue
		}
		seen := false
		for _, existing := range values {
			if existing.Equal(v) == value.TRUE {
				seen = true
				break
			}
		}
		if !seen {
			values = append(values, v)
		}
	}
	return values, nil
}

// compareToMultiplier conflates q's preference direction with the union's
// AT_LEAST/AT_MOST semantics (§4.7 step 1) so restrictiveness can always be
// read "as if >=": +1 means restrictiveness increases with the raw
// threshold value, -1 means it decreases.
func compareToMultiplier(pref table.PreferenceType, unionType consistency.UnionType) int {
	gain := 1
	if pref == table.Cost {
		gain = -1
	}
	atLeast := 1
	if unionType == consistency.AtMost {
		atLeast = -1
	}
	return gain * atLeast
}

// extremeValue returns the least (or most) restrictive value among values
// under multiplier cm, per the derivation in compareToMultiplier's doc
// comment: restrictiveness increases with the raw value when cm == +1.
func extremeValue(cm int, values []value.Value, wantLeastRestrictive bool) value.Value {
	wantMin := (cm == 1) == wantLeastRestrictive
	if wantMin {
		return minValue(values)
	}
	return maxValue(values)
}

func minValue(values []value.Value) value.Value {
	best := values[0]
	for _, v := range values[1:] {
		if v.AtMost(best) == value.TRUE && v.Equal(best) != value.TRUE {
			best = v
		}
	}
	return best
}

func maxValue(values []value.Value) value.Value {
	best := values[0]
	for _, v := range values[1:] {
		if v.AtLeast(best) == value.TRUE && v.Equal(best) != value.TRUE {
			best = v
		}
	}
	return best
}

// mixedMonotonicity reports whether evaluators' monotonicity types are not
// all equal, per §4.7's checkLessExtreme condition.
func mixedMonotonicity(evaluators []Evaluator) bool {
	first := evaluators[0].Monotonicity()
	for _, e := range evaluators[1:] {
		if e.Monotonicity() != first {
			return true
		}
	}
	return false
}
