package table

import (
	"fmt"

	"github.com/roughset/drsa/value"
)

// PreferenceType declares whether higher values of a criterion are
// preferred (Gain), lower values are preferred (Cost), or the attribute
// carries no preference order at all (None, i.e. a nominal attribute).
type PreferenceType int

const (
	// Gain: greater evaluations are preferred ("more is better").
	Gain PreferenceType = iota
	// Cost: lesser evaluations are preferred ("less is better").
	Cost
	// None: the attribute has no preference direction (nominal).
	None
)

func (p PreferenceType) String() string {
	switch p {
	case Gain:
		return "GAIN"
	case Cost:
		return "COST"
	case None:
		return "NONE"
	default:
		return fmt.Sprintf("PreferenceType(%d)", int(p))
	}
}

// AttributeKind classifies the role an attribute plays in a table.
type AttributeKind int

const (
	// KindCondition: an evaluation attribute usable as a rule condition.
	KindCondition AttributeKind = iota
	// KindDecision: the ordinal class attribute.
	KindDecision
	// KindDescription: an evaluation attribute carried for display only,
	// never used as a condition or a decision.
	KindDescription
	// KindIdentification: a non-evaluation attribute identifying objects.
	KindIdentification
)

func (k AttributeKind) String() string {
	switch k {
	case KindCondition:
		return "CONDITION"
	case KindDecision:
		return "DECISION"
	case KindDescription:
		return "DESCRIPTION"
	case KindIdentification:
		return "IDENTIFICATION"
	default:
		return fmt.Sprintf("AttributeKind(%d)", int(k))
	}
}

// Attribute is named, typed column metadata for one table column.
type Attribute struct {
	// Name is the attribute's display and serialization name.
	Name string

	// Active marks whether this attribute takes part in induction
	// (as a condition, the decision, or the identifier). Inactive
	// attributes are always treated as KindDescription regardless of
	// their declared Kind.
	Active bool

	// Kind classifies the attribute's role; see AttributeKind.
	Kind AttributeKind

	// Preference is only meaningful for KindCondition (and KindDecision)
	// attributes with an ordered ValueKind.
	Preference PreferenceType

	// ValueKind declares the value.Kind every field in this column must
	// have (KindMissing fields are always allowed regardless).
	ValueKind value.Kind

	// Domain is the shared enumeration domain, only set when
	// ValueKind == value.KindEnumeration.
	Domain []string

	// MissingValueFlavor is the semantics applied when a field in this
	// column is a missing value.
	MissingValueFlavor value.MissingFlavor
}

// isOrdered reports whether values of this attribute support AtLeast/
// AtMost comparisons (i.e. are not KindMissing-only placeholders).
func (a Attribute) isOrdered() bool {
	switch a.ValueKind {
	case value.KindInteger, value.KindReal, value.KindEnumeration, value.KindPair:
		return true
	default:
		return false
	}
}

// AtLeastAsGood reports whether x is preference-wise at least as good as y
// under a's preference direction: AtLeast on Gain attributes, AtMost on
// Cost attributes, and Equal when the attribute carries no preference.
func (a Attribute) AtLeastAsGood(x, y value.Value) value.TriLogic {
	return atLeastAsGood(a.Preference, x, y)
}

// AtLeastAsGoodInverted is AtLeastAsGood computed under a's preference
// direction flipped (Gain<->Cost, None unchanged). The dominance engine
// uses this to derive the "inverted" cone flavors from the same attribute
// metadata, without mutating the attribute itself.
func (a Attribute) AtLeastAsGoodInverted(x, y value.Value) value.TriLogic {
	return atLeastAsGood(invertPreference(a.Preference), x, y)
}

func atLeastAsGood(pref PreferenceType, x, y value.Value) value.TriLogic {
	switch pref {
	case Gain:
		return x.AtLeast(y)
	case Cost:
		return x.AtMost(y)
	default:
		return x.Equal(y)
	}
}

func invertPreference(p PreferenceType) PreferenceType {
	switch p {
	case Gain:
		return Cost
	case Cost:
		return Gain
	default:
		return None
	}
}
