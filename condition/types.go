package condition

import (
	"fmt"

	"github.com/roughset/drsa/consistency"
	"github.com/roughset/drsa/table"
	"github.com/roughset/drsa/value"
)

// Relation is the literal comparison an elementary condition applies
// between an object's evaluation and a limiting value. Unlike
// table.Attribute.AtLeastAsGood, Relation is not preference-aware — by the
// time Construct resolves a Relation, the attribute's gain/cost direction
// has already been folded into the choice of Relation itself.
type Relation int

const (
	// RelAtLeast is the literal v >= t comparison.
	RelAtLeast Relation = iota
	// RelAtMost is the literal v <= t comparison.
	RelAtMost
	// RelEqual is the literal v == t comparison, used for attributes with
	// no preference direction.
	RelEqual
)

func (r Relation) String() string {
	switch r {
	case RelAtLeast:
		return ">="
	case RelAtMost:
		return "<="
	case RelEqual:
		return "=="
	default:
		return fmt.Sprintf("Relation(%d)", int(r))
	}
}

// Phrasing selects which side of a Relation is the object's evaluation and
// which is the fixed limiting value.
type Phrasing int

const (
	// ThresholdVsObject reads "attribute q of x [relation] t" — the object
	// is the left-hand operand. Used by certain and approximate rules.
	ThresholdVsObject Phrasing = iota
	// ObjectVsThreshold reads "t [relation] attribute q of x" — the
	// limiting value is the left-hand operand. Used by possible rules.
	ObjectVsThreshold
)

func (p Phrasing) String() string {
	switch p {
	case ThresholdVsObject:
		return "ThresholdVsObject"
	case ObjectVsThreshold:
		return "ObjectVsThreshold"
	default:
		return fmt.Sprintf("Phrasing(%d)", int(p))
	}
}

// RuleType selects which of the three rule kinds a condition is being
// built for; it determines the Phrasing (see phrasingFor).
type RuleType int

const (
	// Certain rules are induced from Lower approximations.
	Certain RuleType = iota
	// Possible rules are induced from Upper approximations.
	Possible
	// Approximate rules are induced from Boundary approximations (Upper
	// minus Lower).
	Approximate
)

func (rt RuleType) String() string {
	switch rt {
	case Certain:
		return "CERTAIN"
	case Possible:
		return "POSSIBLE"
	case Approximate:
		return "APPROXIMATE"
	default:
		return fmt.Sprintf("RuleType(%d)", int(rt))
	}
}

// Condition is an elementary condition: attribute index attrIdx compared,
// via relation and phrasing, against a fixed limit.
type Condition struct {
	attrIdx       int
	attrName      string
	relation      Relation
	phrasing      Phrasing
	limit         value.Value
	missingFlavor value.MissingFlavor
}

// AttributeIndex returns the original attribute index this condition
// evaluates.
func (c Condition) AttributeIndex() int { return c.attrIdx }

// AttributeName returns the display name of the attribute this condition
// evaluates, as passed to Construct.
func (c Condition) AttributeName() string { return c.attrName }

// Limit returns the condition's fixed comparison value.
func (c Condition) Limit() value.Value { return c.limit }

// Relation returns the condition's literal comparison operator.
func (c Condition) Relation() Relation { return c.relation }

// Phrasing returns which operand is the object's evaluation.
func (c Condition) Phrasing() Phrasing { return c.phrasing }

// Duplicate returns a value-semantic copy of c. Condition has no pointer or
// slice fields of its own, so this is equivalent to an ordinary assignment;
// it exists so callers have an explicit, self-documenting copy contract
// instead of relying on that being true by accident.
func (c Condition) Duplicate() Condition { return c }

// SatisfiedBy reports whether object obj, read from tbl, satisfies c. A
// missing evaluation satisfies the condition iff the attribute's declared
// missing-value flavor is MV1.5; otherwise it never satisfies, regardless
// of relation or phrasing — this is the contract §4.5 requires for the
// condition generator's monotonicity to hold.
func (c Condition) SatisfiedBy(obj int, tbl *table.InformationTable) (bool, error) {
	v, err := tbl.GetField(obj, c.attrIdx)
	if err != nil {
		return false, err
	}
	if v.IsMissing() {
		return c.missingFlavor == value.MV15, nil
	}

	var tri value.TriLogic
	switch c.phrasing {
	case ThresholdVsObject:
		switch c.relation {
		case RelAtLeast:
			tri = v.AtLeast(c.limit)
		case RelAtMost:
			tri = v.AtMost(c.limit)
		default:
			tri = v.Equal(c.limit)
		}
	default: // ObjectVsThreshold
		switch c.relation {
		case RelAtLeast:
			tri = c.limit.AtLeast(v)
		case RelAtMost:
			tri = c.limit.AtMost(v)
		default:
			tri = c.limit.Equal(v)
		}
	}
	return tri == value.TRUE, nil
}

// String renders c for logs, diagnostics, and RuleML serialization.
func (c Condition) String() string {
	switch c.phrasing {
	case ThresholdVsObject:
		return fmt.Sprintf("%s %s %s", c.attrName, c.relation, c.limit)
	default:
		return fmt.Sprintf("%s %s %s", c.limit, c.relation, c.attrName)
	}
}

// Construct builds the Condition for attribute attrIdx (named attrName,
// preference pref, missing-value flavor missingFlavor) limited to limit,
// given the rule type being built and the union type (AT_LEAST/AT_MOST) it
// is built against. Every (ruleType, unionType, pref) combination returns
// explicitly — the original system's possible-rule branch fell through to
// a default case here; this one never does.
func Construct(ruleType RuleType, unionType consistency.UnionType, pref table.PreferenceType, attrIdx int, attrName string, limit value.Value, missingFlavor value.MissingFlavor) (Condition, error) {
	relation, err := relationFor(unionType, pref)
	if err != nil {
		return Condition{}, err
	}
	phrasing, err := phrasingFor(ruleType)
	if err != nil {
		return Condition{}, err
	}
	return Condition{
		attrIdx:       attrIdx,
		attrName:      attrName,
		relation:      relation,
		phrasing:      phrasing,
		limit:         limit,
		missingFlavor: missingFlavor,
	}, nil
}

func relationFor(unionType consistency.UnionType, pref table.PreferenceType) (Relation, error) {
	switch unionType {
	case consistency.AtLeast:
		switch pref {
		case table.Gain:
			return RelAtLeast, nil
		case table.Cost:
			return RelAtMost, nil
		default:
			return RelEqual, nil
		}
	case consistency.AtMost:
		switch pref {
		case table.Gain:
			return RelAtMost, nil
		case table.Cost:
			return RelAtLeast, nil
		default:
			return RelEqual, nil
		}
	default:
		return 0, ErrUnsupportedRelation
	}
}

func phrasingFor(ruleType RuleType) (Phrasing, error) {
	switch ruleType {
	case Certain, Approximate:
		return ThresholdVsObject, nil
	case Possible:
		return ObjectVsThreshold, nil
	default:
		return 0, ErrUnsupportedRelation
	}
}
