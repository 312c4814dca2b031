package approximation

import (
	"fmt"
	"sort"
	"sync"

	"github.com/roughset/drsa/consistency"
	"github.com/roughset/drsa/dominance"
	"github.com/roughset/drsa/table"
	"github.com/roughset/drsa/value"
)

// category classifies a table object with respect to a Union's limiting
// decision.
type category int8

const (
	catNegative category = iota
	catNeutral
	catMember
)

// Union is an ordered-class union ("at least" or "at most" a limiting
// decision) over an information table, together with its classical or
// variable-consistency rough approximations and derived regions. See the
// package doc comment for why one type covers both variants.
type Union struct {
	tbl              *table.InformationTable
	cones            *dominance.ConeSet
	unionType        consistency.UnionType
	limitingDecision table.Decision

	cat        []category // [obj] -> category
	members    []int      // ascending
	neutral    []int      // ascending
	complement []int      // ascending

	measures   []consistency.Measure
	thresholds []float64

	lower onceIntSet

	complementMu  sync.Mutex
	complementary *Union
	upperStarted  bool
	upper         onceIntSet

	boundary       onceIntSet
	positiveRegion onceIntSet
	negativeRegion onceIntSet
	boundaryRegion onceIntSet
}

// onceIntSet is a compute-once, read-only cache for an ascending []int
// result, following spec.md §9's "OnceCell-style single-init container"
// prescription for lazy aggregates.
type onceIntSet struct {
	once sync.Once
	val  []int
	err  error
}

func (o *onceIntSet) get(compute func() ([]int, error)) ([]int, error) {
	o.once.Do(func() { o.val, o.err = compute() })
	if o.err != nil {
		return nil, o.err
	}
	return append([]int(nil), o.val...), nil
}

// NewUnion builds the classical variant of the union {i : decision(i)
// compares favorably with limitingDecision per unionType}.
func NewUnion(tbl *table.InformationTable, cones *dominance.ConeSet, unionType consistency.UnionType, limitingDecision table.Decision) (*Union, error) {
	return newUnion(tbl, cones, unionType, limitingDecision, nil, nil)
}

// NewVCUnion builds the variable-consistency variant: an object i is
// admitted to Lower only when every measure's value at (i, U) satisfies
// its threshold (per the measure's declared Sense). At least one measure
// is required, and measures/thresholds must be parallel slices.
func NewVCUnion(tbl *table.InformationTable, cones *dominance.ConeSet, unionType consistency.UnionType, limitingDecision table.Decision, measures []consistency.Measure, thresholds []float64) (*Union, error) {
	if len(measures) == 0 {
		return nil, ErrNoMeasures
	}
	if len(measures) != len(thresholds) {
		return nil, fmt.Errorf("%w: %d measures, %d thresholds", ErrMeasureThresholdCountMismatch, len(measures), len(thresholds))
	}
	return newUnion(tbl, cones, unionType, limitingDecision, measures, thresholds)
}

func newUnion(tbl *table.InformationTable, cones *dominance.ConeSet, unionType consistency.UnionType, limitingDecision table.Decision, measures []consistency.Measure, thresholds []float64) (*Union, error) {
	decAttrIdx, ok := tbl.DecisionAttributeIndex()
	if !ok {
		return nil, ErrNoActiveDecision
	}
	decAttr := tbl.Attributes()[decAttrIdx]
	if decAttr.Preference == table.None {
		return nil, ErrDecisionAttributeNotOrdered
	}

	n := tbl.RowCount()
	u := &Union{
		tbl:              tbl,
		cones:            cones,
		unionType:        unionType,
		limitingDecision: limitingDecision,
		cat:              make([]category, n),
		measures:         measures,
		thresholds:       thresholds,
	}
	for i := 0; i < n; i++ {
		c, err := u.classify(i)
		if err != nil {
			return nil, err
		}
		u.cat[i] = c
		switch c {
		case catMember:
			u.members = append(u.members, i)
		case catNeutral:
			u.neutral = append(u.neutral, i)
		default:
			u.complement = append(u.complement, i)
		}
	}
	return u, nil
}

// classify determines i's category per §4.4.1: for AT_LEAST, membership is
// decision(i).AtLeastAsGood(limitingDecision) == TRUE; for AT_MOST, the
// dual limitingDecision.AtLeastAsGood(decision(i)) == TRUE. UNCOMPARABLE in
// either direction means i is neutral.
func (u *Union) classify(i int) (category, error) {
	dec, ok := u.tbl.GetDecision(i)
	if !ok {
		return catNegative, ErrNoActiveDecision
	}

	var cmp value.TriLogic
	if u.unionType == consistency.AtLeast {
		cmp = dec.AtLeastAsGood(u.limitingDecision)
	} else {
		cmp = u.limitingDecision.AtLeastAsGood(dec)
	}

	switch cmp {
	case value.TRUE:
		return catMember, nil
	case value.UNCOMPARABLE:
		return catNeutral, nil
	default:
		return catNegative, nil
	}
}

// Type implements consistency.Classifier.
func (u *Union) Type() consistency.UnionType { return u.unionType }

// CountNegative implements consistency.Classifier.
func (u *Union) CountNegative(objects []int) int {
	n := 0
	for _, i := range objects {
		if u.cat[i] == catNegative {
			n++
		}
	}
	return n
}

// ComplementSize implements consistency.Classifier.
func (u *Union) ComplementSize() int { return len(u.complement) }

// Objects returns the union's members, in ascending order.
func (u *Union) Objects() []int { return append([]int(nil), u.members...) }

// Neutral returns the objects whose decision is uncomparable with the
// limiting decision, in ascending order.
func (u *Union) Neutral() []int { return append([]int(nil), u.neutral...) }

// Complement returns the objects strictly in the complement (excluding
// neutral objects), in ascending order.
func (u *Union) Complement() []int { return append([]int(nil), u.complement...) }

// IsDecisionNegative reports whether object i is in the complement.
func (u *Union) IsDecisionNegative(i int) bool { return u.cat[i] == catNegative }

// InformationTable returns the table this union was built over.
func (u *Union) InformationTable() *table.InformationTable { return u.tbl }

// LimitingDecision returns the decision this union was built relative to.
func (u *Union) LimitingDecision() table.Decision { return u.limitingDecision }

// isVC reports whether this Union is the variable-consistency variant.
func (u *Union) isVC() bool { return len(u.measures) > 0 }

// coneFlavorLower is the cone flavor Lower and PositiveRegion anchor
// classical containment checks with: D+ for AT_LEAST, D- for AT_MOST.
func (u *Union) coneFlavorLower() dominance.Flavor {
	if u.unionType == consistency.AtLeast {
		return dominance.PositiveStandard
	}
	return dominance.NegativeStandard
}

// Lower returns the lower approximation, in ascending order: classical
// cone containment, or variable-consistency threshold satisfaction,
// depending on how this Union was constructed.
func (u *Union) Lower() ([]int, error) {
	return u.lower.get(func() ([]int, error) {
		var out []int
		for _, i := range u.members {
			ok, err := u.admitsLower(i)
			if err != nil {
				return nil, err
			}
			if ok {
				out = append(out, i)
			}
		}
		return out, nil
	})
}

func (u *Union) admitsLower(i int) (bool, error) {
	if u.isVC() {
		for k, m := range u.measures {
			v, err := m.Evaluate(i, u, u.cones)
			if err != nil {
				return false, err
			}
			if !consistency.Satisfies(v, u.thresholds[k], m.Sense()) {
				return false, nil
			}
		}
		return true, nil
	}

	cone, err := u.cones.Cone(u.coneFlavorLower(), i)
	if err != nil {
		return false, err
	}
	for _, j := range cone {
		if u.cat[j] == catNegative {
			return false, nil
		}
	}
	return true, nil
}

// SetComplementaryUnion overrides the Union this Union derives its Upper
// approximation's duality from (default: a Union built automatically from
// this Union's own object classification). Only legal before Upper has
// been read, per §4.4 — afterward it returns
// ErrComplementaryUnionAlreadySet, an IllegalState condition.
func (u *Union) SetComplementaryUnion(other *Union) error {
	u.complementMu.Lock()
	defer u.complementMu.Unlock()
	if u.upperStarted {
		return ErrComplementaryUnionAlreadySet
	}
	u.complementary = other
	return nil
}

// Upper returns the upper approximation, in ascending order:
// universe \ Lower(complement(U)) — the duality §4.4.2/§4.4.3 prescribe,
// used uniformly for both the classical and variable-consistency variants.
func (u *Union) Upper() ([]int, error) {
	u.complementMu.Lock()
	u.upperStarted = true
	comp := u.complementary
	u.complementMu.Unlock()

	return u.upper.get(func() ([]int, error) {
		if comp == nil {
			comp = u.buildComplement()
		}
		compLower, err := comp.Lower()
		if err != nil {
			return nil, err
		}
		inCompLower := make([]bool, u.tbl.RowCount())
		for _, i := range compLower {
			inCompLower[i] = true
		}
		var out []int
		for i := 0; i < u.tbl.RowCount(); i++ {
			if !inCompLower[i] {
				out = append(out, i)
			}
		}
		return out, nil
	})
}

// buildComplement returns the dual Union (AT_LEAST <-> AT_MOST, member and
// complement categories swapped, neutral unchanged) sharing this Union's
// table, cones, and measures — the same inputs, oriented the other way.
func (u *Union) buildComplement() *Union {
	dual := &Union{
		tbl:              u.tbl,
		cones:            u.cones,
		unionType:        flipUnionType(u.unionType),
		limitingDecision: u.limitingDecision,
		cat:              make([]category, len(u.cat)),
		members:          append([]int(nil), u.complement...),
		neutral:          append([]int(nil), u.neutral...),
		complement:       append([]int(nil), u.members...),
		measures:         u.measures,
		thresholds:       u.thresholds,
	}
	for i, c := range u.cat {
		switch c {
		case catMember:
			dual.cat[i] = catNegative
		case catNegative:
			dual.cat[i] = catMember
		default:
			dual.cat[i] = catNeutral
		}
	}
	return dual
}

func flipUnionType(t consistency.UnionType) consistency.UnionType {
	if t == consistency.AtLeast {
		return consistency.AtMost
	}
	return consistency.AtLeast
}

// Boundary returns Upper \ Lower, in ascending order.
func (u *Union) Boundary() ([]int, error) {
	return u.boundary.get(func() ([]int, error) {
		lower, err := u.Lower()
		if err != nil {
			return nil, err
		}
		upper, err := u.Upper()
		if err != nil {
			return nil, err
		}
		inLower := toSet(lower)
		var out []int
		for _, i := range upper {
			if !inLower[i] {
				out = append(out, i)
			}
		}
		return out, nil
	})
}

// PositiveRegion returns Lower(U) unioned with every cone anchored at a
// Lower(U) member (the same cone flavor Lower itself uses), in ascending
// order.
func (u *Union) PositiveRegion() ([]int, error) {
	return u.positiveRegion.get(func() ([]int, error) {
		lower, err := u.Lower()
		if err != nil {
			return nil, err
		}
		return u.coneUnion(u.coneFlavorLower(), lower)
	})
}

// NegativeRegion returns PositiveRegion(complement(U)), in ascending order.
func (u *Union) NegativeRegion() ([]int, error) {
	return u.negativeRegion.get(func() ([]int, error) {
		comp := u.buildComplement()
		return comp.PositiveRegion()
	})
}

// BoundaryRegion returns every object in neither PositiveRegion nor
// NegativeRegion, in ascending order.
func (u *Union) BoundaryRegion() ([]int, error) {
	return u.boundaryRegion.get(func() ([]int, error) {
		pos, err := u.PositiveRegion()
		if err != nil {
			return nil, err
		}
		neg, err := u.NegativeRegion()
		if err != nil {
			return nil, err
		}
		covered := toSet(pos)
		for i := range toSet(neg) {
			covered[i] = true
		}
		var out []int
		for i := 0; i < u.tbl.RowCount(); i++ {
			if !covered[i] {
				out = append(out, i)
			}
		}
		return out, nil
	})
}

func (u *Union) coneUnion(flavor dominance.Flavor, anchors []int) ([]int, error) {
	seen := make(map[int]bool)
	for _, i := range anchors {
		cone, err := u.cones.Cone(flavor, i)
		if err != nil {
			return nil, err
		}
		for _, j := range cone {
			seen[j] = true
		}
	}
	out := make([]int, 0, len(seen))
	for j := range seen {
		out = append(out, j)
	}
	sort.Ints(out)
	return out, nil
}

func toSet(xs []int) map[int]bool {
	s := make(map[int]bool, len(xs))
	for _, x := range xs {
		s[x] = true
	}
	return s
}
