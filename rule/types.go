package rule

import (
	"fmt"

	"github.com/roughset/drsa/condition"
	"github.com/roughset/drsa/table"
	"github.com/roughset/drsa/value"
)

// DecisionRelation is the comparison a rule's decision head asserts between
// an object's (hypothetical) decision and the rule's limiting class. It is
// a superset of consistency.UnionType's two variants: AtLeast and AtMost
// mirror the union a certain/possible/approximate rule was induced from;
// Equal is reserved RuleML vocabulary for a single-class decision head that
// this module's induction path never emits on its own.
type DecisionRelation int

const (
	// AtLeast: "decision(x) is at least the limiting class".
	AtLeast DecisionRelation = iota
	// AtMost: "decision(x) is at most the limiting class".
	AtMost
	// Equal: "decision(x) is exactly the limiting class".
	Equal
)

func (d DecisionRelation) String() string {
	switch d {
	case AtLeast:
		return "AT_LEAST"
	case AtMost:
		return "AT_MOST"
	case Equal:
		return "EQUAL"
	default:
		return fmt.Sprintf("DecisionRelation(%d)", int(d))
	}
}

// Rule is an immutable "IF conditions THEN decision" rule: a conjunction of
// elementary conditions plus a decision head naming the attribute, relation,
// and limiting class a covered object is asserted to satisfy.
type Rule struct {
	ruleType         condition.RuleType
	decisionRelation DecisionRelation
	conditions       []condition.Condition
	decisionAttrIdx  int
	decisionAttrName string
	limitingDecision value.Value
}

// New freezes conditions (which must be non-empty) into a Rule with the
// given decision head.
func New(ruleType condition.RuleType, decisionRelation DecisionRelation, conditions []condition.Condition, decisionAttrIdx int, decisionAttrName string, limitingDecision value.Value) (Rule, error) {
	if len(conditions) == 0 {
		return Rule{}, ErrEmptyConditions
	}
	return Rule{
		ruleType:         ruleType,
		decisionRelation: decisionRelation,
		conditions:       append([]condition.Condition(nil), conditions...),
		decisionAttrIdx:  decisionAttrIdx,
		decisionAttrName: decisionAttrName,
		limitingDecision: limitingDecision,
	}, nil
}

// Type reports whether this is a certain, possible, or approximate rule.
func (r Rule) Type() condition.RuleType { return r.ruleType }

// DecisionRelation reports the rule's decision-head relation.
func (r Rule) DecisionRelation() DecisionRelation { return r.decisionRelation }

// Conditions returns the rule's LHS conjunction, in induction order.
func (r Rule) Conditions() []condition.Condition {
	return append([]condition.Condition(nil), r.conditions...)
}

// DecisionAttributeIndex returns the table column index of the rule's
// decision head.
func (r Rule) DecisionAttributeIndex() int { return r.decisionAttrIdx }

// DecisionAttributeName returns the display name of the rule's decision
// head attribute.
func (r Rule) DecisionAttributeName() string { return r.decisionAttrName }

// LimitingDecision returns the rule's decision-head limiting class.
func (r Rule) LimitingDecision() value.Value { return r.limitingDecision }

// Covers reports whether object i, read from tbl, satisfies every condition
// in the rule's LHS.
func (r Rule) Covers(i int, tbl *table.InformationTable) (bool, error) {
	for _, c := range r.conditions {
		ok, err := c.SatisfiedBy(i, tbl)
		if err != nil {
			return false, err
		}
		if !ok {
			return false, nil
		}
	}
	return true, nil
}

// String renders the rule as "IF c1 AND c2 THEN decision rel limit",
// suitable for logs and diagnostics; ruleml.Encode is the serialization
// format for interchange.
func (r Rule) String() string {
	lhs := ""
	for i, c := range r.conditions {
		if i > 0 {
			lhs += " AND "
		}
		lhs += c.String()
	}
	return fmt.Sprintf("IF %s THEN %s %s %s", lhs, r.decisionAttrName, r.decisionRelation, r.limitingDecision)
}

// RuleSet is an immutable, ordered collection of rules.
type RuleSet struct {
	rules []Rule
}

// NewRuleSet returns a RuleSet holding a copy of rules, in order.
func NewRuleSet(rules ...Rule) RuleSet {
	return RuleSet{rules: append([]Rule(nil), rules...)}
}

// Rules returns a copy of the rule set's rules, in order.
func (rs RuleSet) Rules() []Rule { return append([]Rule(nil), rs.rules...) }

// Len returns the number of rules in the set.
func (rs RuleSet) Len() int { return len(rs.rules) }

// Join returns a new RuleSet holding rs's rules followed by other's,
// without mutating either. Used to concatenate the downward (AT_LEAST) and
// upward (AT_MOST) rule sets VC-DomLEM induces separately.
func (rs RuleSet) Join(other RuleSet) RuleSet {
	joined := make([]Rule, 0, len(rs.rules)+len(other.rules))
	joined = append(joined, rs.rules...)
	joined = append(joined, other.rules...)
	return RuleSet{rules: joined}
}

// Characteristics holds the standard VC-DomLEM rule-quality measures for
// one rule, computed against the table it was induced from:
//
//   - Support: |objects covered by the rule that are also positive for its
//     originating union|.
//   - Strength: Support / (total objects in the table).
//   - Confidence: Support / |objects covered by the rule| — the rule's own
//     certainty factor (1.0 for a certain rule with no threshold slack).
//   - CoverageFactor: Support / |positive objects for the originating
//     union| — how much of the target class this one rule accounts for.
//   - Epsilon: the fraction of covered objects that are not in the rule's
//     allowed-coverage set, i.e. the rule's own inconsistency degree.
type Characteristics struct {
	Support        int
	Strength       float64
	Confidence     float64
	CoverageFactor float64
	Epsilon        float64
}

// RuleSetWithCharacteristics pairs an immutable RuleSet with one
// Characteristics value per rule, index-aligned.
type RuleSetWithCharacteristics struct {
	rules           []Rule
	characteristics []Characteristics
}

// NewRuleSetWithCharacteristics returns a RuleSetWithCharacteristics over
// copies of rules and characteristics, which must have equal length.
func NewRuleSetWithCharacteristics(rules []Rule, characteristics []Characteristics) (RuleSetWithCharacteristics, error) {
	if len(rules) != len(characteristics) {
		return RuleSetWithCharacteristics{}, ErrRuleCharacteristicsLengthMismatch
	}
	return RuleSetWithCharacteristics{
		rules:           append([]Rule(nil), rules...),
		characteristics: append([]Characteristics(nil), characteristics...),
	}, nil
}

// Rules returns a copy of the underlying rules, in order.
func (rs RuleSetWithCharacteristics) Rules() []Rule { return append([]Rule(nil), rs.rules...) }

// Characteristics returns a copy of the per-rule characteristics, index-
// aligned with Rules().
func (rs RuleSetWithCharacteristics) Characteristics() []Characteristics {
	return append([]Characteristics(nil), rs.characteristics...)
}

// Len returns the number of rules in the set.
func (rs RuleSetWithCharacteristics) Len() int { return len(rs.rules) }

// At returns the i'th rule and its characteristics.
func (rs RuleSetWithCharacteristics) At(i int) (Rule, Characteristics) {
	return rs.rules[i], rs.characteristics[i]
}

// RuleSet discards the characteristics, returning the plain rule set.
func (rs RuleSetWithCharacteristics) RuleSet() RuleSet {
	return NewRuleSet(rs.rules...)
}
