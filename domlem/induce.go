package domlem

import (
	"errors"

	"github.com/roughset/drsa/approximation"
	"github.com/roughset/drsa/condition"
	"github.com/roughset/drsa/consistency"
	"github.com/roughset/drsa/dominance"
	"github.com/roughset/drsa/rule"
	"github.com/roughset/drsa/ruleconditions"
	"github.com/roughset/drsa/table"
)

// ruleTypes is the fixed processing order within one union: certain rules
// from Lower, then possible rules from Upper, then approximate rules from
// Boundary.
var ruleTypes = []condition.RuleType{condition.Certain, condition.Possible, condition.Approximate}

// Induce runs VC-DomLEM sequential covering over tbl and returns the
// induced RuleSet: the downward (AT_LEAST) unions' rules followed by the
// upward (AT_MOST) unions' rules, per §4.8's closing paragraph — the
// ordering approximation.OrderUnions already produces.
func Induce(tbl *table.InformationTable, opts ...Option) (rule.RuleSet, error) {
	rules, _, err := induce(tbl, opts...)
	if err != nil {
		return rule.RuleSet{}, err
	}
	var downward, upward []rule.Rule
	for _, r := range rules {
		if r.DecisionRelation() == rule.AtMost {
			upward = append(upward, r)
		} else {
			downward = append(downward, r)
		}
	}
	return rule.NewRuleSet(downward...).Join(rule.NewRuleSet(upward...)), nil
}

// InduceRulesWithCharacteristics runs the same induction as Induce and
// additionally returns, per rule, its support/strength/confidence/
// coverage-factor/epsilon characteristics (Supplemented Feature D.1).
func InduceRulesWithCharacteristics(tbl *table.InformationTable, opts ...Option) (rule.RuleSetWithCharacteristics, error) {
	rules, chars, err := induce(tbl, opts...)
	if err != nil {
		return rule.RuleSetWithCharacteristics{}, err
	}
	return rule.NewRuleSetWithCharacteristics(rules, chars)
}

func induce(tbl *table.InformationTable, opts ...Option) ([]rule.Rule, []rule.Characteristics, error) {
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}

	gen, err := NewConditionGenerator(tbl, o.Evaluators)
	if err != nil {
		return nil, nil, err
	}

	decAttrIdx, ok := tbl.DecisionAttributeIndex()
	if !ok {
		return nil, nil, approximation.ErrNoActiveDecision
	}

	cones := dominance.NewConeSet(tbl)
	ordered, err := approximation.OrderUnions(tbl, cones)
	if err != nil {
		return nil, nil, err
	}

	var rules []rule.Rule
	var chars []rule.Characteristics
	var accepted []*ruleconditions.RuleConditions

	for _, u := range ordered {
		active := u
		if len(o.Measures) > 0 {
			vc, err := approximation.NewVCUnion(tbl, cones, u.Type(), u.LimitingDecision(), o.Measures, o.Thresholds)
			if err != nil {
				return nil, nil, err
			}
			active = vc
		}

		o.logger().Debug("processing union", "type", active.Type().String(), "limit", active.LimitingDecision().String())

		uRules, uChars, err := induceForUnion(tbl, gen, &o, active, decAttrIdx, &accepted)
		if err != nil {
			return nil, nil, err
		}
		rules = append(rules, uRules...)
		chars = append(chars, uChars...)
	}
	return rules, chars, nil
}

// induceForUnion runs the sequential-covering loop (§4.8) over one union's
// three base sets (Lower, Upper, Boundary), appending newly minimal rules
// to accepted as they're accepted so later unions' minimality checks see
// them.
func induceForUnion(tbl *table.InformationTable, gen *ConditionGenerator, o *Options, u *approximation.Union, decAttrIdx int, accepted *[]*ruleconditions.RuleConditions) ([]rule.Rule, []rule.Characteristics, error) {
	var rules []rule.Rule
	var chars []rule.Characteristics

	positives := u.Objects()
	neutral := u.Neutral()

	for _, ruleType := range ruleTypes {
		base0, err := baseFor(u, ruleType)
		if err != nil {
			return nil, nil, err
		}
		if len(base0) == 0 {
			continue
		}

		allowed, err := allowedFor(u, ruleType)
		if err != nil {
			return nil, nil, err
		}

		remaining := append([]int(nil), base0...)
		var emitted []*ruleconditions.RuleConditions

		for len(remaining) > 0 {
			rc := ruleconditions.NewWithContext(tbl, positives, remaining, allowed, neutral)
			considered := append([]int(nil), remaining...)

			for !o.StoppingChecker.IsSatisfied(rc) {
				cand, err := gen.GetBestCondition(considered, rc, ruleType, u.Type())
				if errors.Is(err, ErrElementaryConditionNotFound) {
					break
				}
				if err != nil {
					return nil, nil, err
				}
				if err := rc.AddCondition(cand); err != nil {
					return nil, nil, err
				}
				considered = intersectInts(considered, rc.CoveredObjectsIterator())
			}

			pruned, err := o.ConditionPruner.Prune(rc, o.StoppingChecker)
			if err != nil {
				return nil, nil, err
			}

			emitted = append(emitted, pruned)
			covered := pruned.CoveredObjectsIterator()
			remaining = subtractInts(remaining, covered)
			o.observeObjectsProcessed(len(covered))
		}

		emitted = o.RuleSetPruner.Prune(emitted, base0)

		for _, rc := range emitted {
			if !o.MinimalityChecker.IsMinimal(rc, *accepted, o.Evaluators) {
				continue
			}
			*accepted = append(*accepted, rc)

			r, err := freezeRule(u, ruleType, decAttrIdx, rc)
			if err != nil {
				return nil, nil, err
			}
			rules = append(rules, r)
			chars = append(chars, characteristics(rc))
			o.observeRuleInduced(ruleType, rc.Len())
		}
	}
	return rules, chars, nil
}

// baseFor returns the generator's starting object set for ruleType: Lower
// for certain rules, Upper for possible, Boundary for approximate.
func baseFor(u *approximation.Union, ruleType condition.RuleType) ([]int, error) {
	switch ruleType {
	case condition.Certain:
		return u.Lower()
	case condition.Possible:
		return u.Upper()
	default:
		return u.Boundary()
	}
}

// allowedFor returns the allowed-coverage set for ruleType: the positive
// region for certain rules, positive+boundary regions for possible rules,
// and every object for approximate rules — always with the union's neutral
// objects added, since a rule may legally cover an object its decision
// can't be compared against.
func allowedFor(u *approximation.Union, ruleType condition.RuleType) ([]int, error) {
	var allowed []int
	switch ruleType {
	case condition.Certain:
		pr, err := u.PositiveRegion()
		if err != nil {
			return nil, err
		}
		allowed = pr
	case condition.Possible:
		pr, err := u.PositiveRegion()
		if err != nil {
			return nil, err
		}
		br, err := u.BoundaryRegion()
		if err != nil {
			return nil, err
		}
		allowed = append(append([]int(nil), pr...), br...)
	default:
		allowed = allObjects(u.InformationTable().RowCount())
	}
	return append(allowed, u.Neutral()...), nil
}

func allObjects(n int) []int {
	out := make([]int, n)
	for i := range out {
		out[i] = i
	}
	return out
}

func intersectInts(a, b []int) []int {
	bs := toIntSet(b)
	var out []int
	for _, i := range a {
		if bs[i] {
			out = append(out, i)
		}
	}
	return out
}

func subtractInts(a, b []int) []int {
	bs := toIntSet(b)
	var out []int
	for _, i := range a {
		if !bs[i] {
			out = append(out, i)
		}
	}
	return out
}

func toIntSet(xs []int) map[int]bool {
	s := make(map[int]bool, len(xs))
	for _, x := range xs {
		s[x] = true
	}
	return s
}

// freezeRule turns a pruned, finished RuleConditions into an immutable
// rule.Rule, reading the decision head from the union it was induced
// against.
func freezeRule(u *approximation.Union, ruleType condition.RuleType, decAttrIdx int, rc *ruleconditions.RuleConditions) (rule.Rule, error) {
	dec := u.LimitingDecision()
	decisionRelation := rule.AtLeast
	if u.Type() == consistency.AtMost {
		decisionRelation = rule.AtMost
	}
	return rule.New(ruleType, decisionRelation, rc.Conditions(), decAttrIdx, dec.Attribute(0).Name, dec.Value(0))
}

// characteristics computes the standard VC-DomLEM rule-quality measures
// (Supplemented Feature D.1) for a finished RuleConditions.
func characteristics(rc *ruleconditions.RuleConditions) rule.Characteristics {
	covered := rc.CoveredObjectsIterator()
	support := 0
	for _, i := range covered {
		if rc.IsPositive(i) {
			support++
		}
	}

	n := rc.RowCount()
	totalPositives := rc.PositiveCount()

	var confidence float64
	if len(covered) > 0 {
		confidence = float64(support) / float64(len(covered))
	}
	var coverageFactor float64
	if totalPositives > 0 {
		coverageFactor = float64(support) / float64(totalPositives)
	}

	return rule.Characteristics{
		Support:        support,
		Strength:       float64(support) / float64(n),
		Confidence:     confidence,
		CoverageFactor: coverageFactor,
		Epsilon:        ConsistencyEvaluator{}.Evaluate(covered, rc),
	}
}
