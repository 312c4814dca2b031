package dominance

import (
	"sync"

	"github.com/roughset/drsa/table"
	"github.com/roughset/drsa/value"
)

// Flavor selects one of the four dominance-cone variants.
type Flavor int

const (
	// PositiveStandard is D+(i) = {j : j dominates i}.
	PositiveStandard Flavor = iota
	// NegativeStandard is D-(i) = {j : i dominates j}.
	NegativeStandard
	// PositiveInverted is D+(i) computed under every active condition
	// attribute's preference direction reversed.
	PositiveInverted
	// NegativeInverted is D-(i) computed under every active condition
	// attribute's preference direction reversed.
	NegativeInverted
)

const flavorCount = 4

func (f Flavor) String() string {
	switch f {
	case PositiveStandard:
		return "D+"
	case NegativeStandard:
		return "D-"
	case PositiveInverted:
		return "D+(inv)"
	case NegativeInverted:
		return "D-(inv)"
	default:
		return "D?"
	}
}

// ConeSet lazily computes and caches, for a single table, all four
// dominance cones and their decision-class distributions for every
// object. A ConeSet is safe for concurrent read after its first access
// triggers materialization; the table it was built from is immutable, so
// the cache is never invalidated.
type ConeSet struct {
	tbl *table.InformationTable

	once  sync.Once
	err   error
	cones [flavorCount][][]int
	dists [flavorCount][]*Distribution
}

// NewConeSet returns a ConeSet over tbl. Computation is deferred until the
// first Cone/Distribution call.
func NewConeSet(tbl *table.InformationTable) *ConeSet {
	return &ConeSet{tbl: tbl}
}

// Cone returns, in ascending object-index order, the members of object
// obj's cone of the given flavor.
func (cs *ConeSet) Cone(flavor Flavor, obj int) ([]int, error) {
	if err := cs.ensure(); err != nil {
		return nil, err
	}
	members := cs.cones[flavor][obj]
	out := make([]int, len(members))
	copy(out, members)
	return out, nil
}

// Distribution returns the decision-class distribution of object obj's
// cone of the given flavor.
func (cs *ConeSet) Distribution(flavor Flavor, obj int) (*Distribution, error) {
	if err := cs.ensure(); err != nil {
		return nil, err
	}
	return cs.dists[flavor][obj], nil
}

func (cs *ConeSet) ensure() error {
	cs.once.Do(cs.compute)
	return cs.err
}

func (cs *ConeSet) compute() {
	n := cs.tbl.RowCount()
	condAttrs := cs.tbl.ConditionAttributeIndices()
	attrs := cs.tbl.Attributes()

	for f := Flavor(0); f < flavorCount; f++ {
		cs.cones[f] = make([][]int, n)
		cs.dists[f] = make([]*Distribution, n)
	}

	for i := 0; i < n; i++ {
		for f := Flavor(0); f < flavorCount; f++ {
			var members []int
			for j := 0; j < n; j++ {
				if cs.dominatesUnderFlavor(f, attrs, condAttrs, j, i) {
					members = append(members, j)
				}
			}
			cs.cones[f][i] = members

			dist := NewDistribution()
			for _, j := range members {
				if dec, ok := cs.tbl.GetDecision(j); ok {
					dist.Add(dec)
				}
			}
			cs.dists[f][i] = dist
		}
	}
}

// dominatesUnderFlavor reports whether object j belongs to object i's cone
// of the given flavor, i.e. whether j stands in the dominance relation
// that flavor names with respect to i.
func (cs *ConeSet) dominatesUnderFlavor(f Flavor, attrs []table.Attribute, condAttrs []int, j, i int) bool {
	for _, q := range condAttrs {
		vj, err := cs.tbl.GetField(j, q)
		if err != nil {
			return false
		}
		vi, err := cs.tbl.GetField(i, q)
		if err != nil {
			return false
		}
		attr := attrs[q]

		var holds bool
		switch f {
		case PositiveStandard:
			holds = attr.AtLeastAsGood(vj, vi) == value.TRUE
		case NegativeStandard:
			holds = attr.AtLeastAsGood(vi, vj) == value.TRUE
		case PositiveInverted:
			holds = attr.AtLeastAsGoodInverted(vj, vi) == value.TRUE
		case NegativeInverted:
			holds = attr.AtLeastAsGoodInverted(vi, vj) == value.TRUE
		}
		if !holds {
			return false
		}
	}
	return true
}
