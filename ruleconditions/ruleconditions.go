package ruleconditions

import (
	"fmt"

	"github.com/roughset/drsa/condition"
	"github.com/roughset/drsa/table"
)

// RuleConditions holds an ordered conjunction of conditions under
// construction, plus the incremental coverage bookkeeping §4.6 requires:
// for every object in the owning table, a count of how many of the current
// conditions it fails to satisfy, and the set of objects whose count is
// zero (the covered set).
type RuleConditions struct {
	tbl        *table.InformationTable
	conditions []condition.Condition

	attrCount map[int]int // multiset: attribute index -> number of conditions on it
	counters  []int       // [obj] -> notCoveringConditionsCount
	covered   map[int]struct{}

	positives map[int]bool // target objects for the rule under construction
	base      []int        // the generator's starting object set (Lower/Upper/Boundary)
	allowed   map[int]bool // objects the rule may cover without an inconsistency penalty
	neutral   map[int]bool // objects with a decision uncomparable with the union's limit
}

// New returns an empty RuleConditions over tbl, with every object initially
// covered (zero conditions, zero unsatisfied) and no positives/base/allowed/
// neutral context attached. Used directly by tests exercising only the
// coverage bookkeeping; induction uses NewWithContext.
func New(tbl *table.InformationTable) *RuleConditions {
	n := tbl.RowCount()
	rc := &RuleConditions{
		tbl:       tbl,
		attrCount: make(map[int]int),
		counters:  make([]int, n),
		covered:   make(map[int]struct{}, n),
	}
	for i := 0; i < n; i++ {
		rc.covered[i] = struct{}{}
	}
	return rc
}

// NewWithContext returns an empty RuleConditions as New does, additionally
// recording the four object sets §4.8's sequential coverer attaches to
// every rule it grows: positives (typically the approximated set's
// members), base (the current subset of the generator's starting set: the
// lower approximation for certain rules, the upper approximation for
// possible rules, the boundary for approximate rules), allowed (objects
// the rule may legally cover), and neutral (objects with an uncomparable
// decision with respect to the union being covered).
func NewWithContext(tbl *table.InformationTable, positives, base, allowed, neutral []int) *RuleConditions {
	rc := New(tbl)
	rc.positives = toBoolSet(positives)
	rc.base = append([]int(nil), base...)
	rc.allowed = toBoolSet(allowed)
	rc.neutral = toBoolSet(neutral)
	return rc
}

func toBoolSet(xs []int) map[int]bool {
	s := make(map[int]bool, len(xs))
	for _, x := range xs {
		s[x] = true
	}
	return s
}

// IsPositive reports whether object i belongs to the rule's target set.
func (rc *RuleConditions) IsPositive(i int) bool { return rc.positives[i] }

// IsAllowed reports whether object i may be covered by the rule without
// counting against its consistency.
func (rc *RuleConditions) IsAllowed(i int) bool { return rc.allowed[i] }

// IsNeutral reports whether object i has a decision uncomparable with the
// union's limiting decision.
func (rc *RuleConditions) IsNeutral(i int) bool { return rc.neutral[i] }

// Base returns the generator's starting object set (a copy).
func (rc *RuleConditions) Base() []int { return append([]int(nil), rc.base...) }

// PositiveCount returns the total number of positive objects attached to
// this RuleConditions, regardless of how many are currently covered.
func (rc *RuleConditions) PositiveCount() int {
	return len(rc.positives)
}

// RowCount returns the number of objects in the owning table.
func (rc *RuleConditions) RowCount() int { return len(rc.counters) }

// EmptyWithSameContext returns a new, empty RuleConditions over the same
// table and the same positives/base/allowed/neutral context as rc, with
// every object covered and no conditions. Used by condition pruners that
// need to test candidate subsets of an existing conjunction from scratch.
func (rc *RuleConditions) EmptyWithSameContext() *RuleConditions {
	n := rc.tbl.RowCount()
	fresh := &RuleConditions{
		tbl:       rc.tbl,
		attrCount: make(map[int]int),
		counters:  make([]int, n),
		covered:   make(map[int]struct{}, n),
		positives: rc.positives,
		base:      rc.base,
		allowed:   rc.allowed,
		neutral:   rc.neutral,
	}
	for i := 0; i < n; i++ {
		fresh.covered[i] = struct{}{}
	}
	return fresh
}

// Len returns the number of conditions currently in the conjunction.
func (rc *RuleConditions) Len() int { return len(rc.conditions) }

// Conditions returns the conditions in the order they were added.
func (rc *RuleConditions) Conditions() []condition.Condition {
	return append([]condition.Condition(nil), rc.conditions...)
}

// Counters returns a snapshot of the per-object notCoveringConditionsCount
// array, primarily for tests asserting against §8's seed scenario S4.
func (rc *RuleConditions) Counters() []int {
	return append([]int(nil), rc.counters...)
}

// AddCondition appends c to the conjunction and updates every object's
// counter: objects that fail c have their counter incremented, and any
// object whose counter transitions 0 -> 1 leaves the covered set.
func (rc *RuleConditions) AddCondition(c condition.Condition) error {
	for i := range rc.counters {
		ok, err := c.SatisfiedBy(i, rc.tbl)
		if err != nil {
			return err
		}
		if !ok {
			rc.counters[i]++
			if rc.counters[i] == 1 {
				delete(rc.covered, i)
			}
		}
	}
	rc.conditions = append(rc.conditions, c)
	rc.attrCount[c.AttributeIndex()]++
	return nil
}

// RemoveCondition removes the condition at index k (in addition order),
// reversing its delta on every object's counter: objects that failed it
// have their counter decremented, and any object whose counter transitions
// 1 -> 0 rejoins the covered set. Counter monotonicity makes this correct
// regardless of the order conditions are removed in.
func (rc *RuleConditions) RemoveCondition(k int) error {
	if k < 0 || k >= len(rc.conditions) {
		return fmt.Errorf("%w: %d", ErrConditionIndexOutOfRange, k)
	}
	c := rc.conditions[k]
	for i := range rc.counters {
		ok, err := c.SatisfiedBy(i, rc.tbl)
		if err != nil {
			return err
		}
		if !ok {
			rc.counters[i]--
			if rc.counters[i] == 0 {
				rc.covered[i] = struct{}{}
			}
		}
	}
	rc.conditions = append(rc.conditions[:k], rc.conditions[k+1:]...)
	rc.attrCount[c.AttributeIndex()]--
	if rc.attrCount[c.AttributeIndex()] == 0 {
		delete(rc.attrCount, c.AttributeIndex())
	}
	return nil
}

// Covers reports whether object i satisfies every condition currently in
// the conjunction, via the O(1) counter rather than a full re-check.
func (rc *RuleConditions) Covers(i int) bool {
	return rc.counters[i] == 0
}

// CoveredObjectsIterator returns the indices of currently covered objects
// in ascending order.
func (rc *RuleConditions) CoveredObjectsIterator() []int {
	out := make([]int, 0, len(rc.covered))
	for i := range rc.counters {
		if _, ok := rc.covered[i]; ok {
			out = append(out, i)
		}
	}
	return out
}

// HasConditionForAttribute reports whether any condition in the conjunction
// evaluates attribute q, in O(1) via the attribute-index multiset.
func (rc *RuleConditions) HasConditionForAttribute(q int) bool {
	_, ok := rc.attrCount[q]
	return ok
}

// GetIndicesOfCoveredObjectsWithCondition non-destructively simulates
// adding c: it returns, without mutating rc, the subset of the currently
// covered objects that also satisfy c (objects already uncovered cannot
// become covered by adding a further condition, so only the covered set
// needs checking).
func (rc *RuleConditions) GetIndicesOfCoveredObjectsWithCondition(c condition.Condition) ([]int, error) {
	var out []int
	for _, i := range rc.CoveredObjectsIterator() {
		ok, err := c.SatisfiedBy(i, rc.tbl)
		if err != nil {
			return nil, err
		}
		if ok {
			out = append(out, i)
		}
	}
	return out, nil
}
