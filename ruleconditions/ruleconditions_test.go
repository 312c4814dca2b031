package ruleconditions_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/roughset/drsa/condition"
	"github.com/roughset/drsa/consistency"
	"github.com/roughset/drsa/ruleconditions"
	"github.com/roughset/drsa/table"
	"github.com/roughset/drsa/value"
)

// seedScenarioS4Table builds 5 objects over three independent Gain
// attributes, one per condition below, each valued 5 ("passes threshold
// 2") or 1 ("fails threshold 2"). The per-attribute fail sets are chosen so
// that c1 fails only object 3, c2 fails objects 3 and 4, and c3 fails only
// object 4 — reproducing §8 scenario S4's stated exclude sets ({3}, {3,4},
// {4,5}, the "5" being a nonexistent sixth object in this 5-object table
// and so contributing nothing).
func seedScenarioS4Table(t *testing.T) (*table.InformationTable, condition.Condition, condition.Condition, condition.Condition) {
	t.Helper()
	attrs := []table.Attribute{
		{Name: "q1", Active: true, Kind: table.KindCondition, Preference: table.Gain, ValueKind: value.KindInteger},
		{Name: "q2", Active: true, Kind: table.KindCondition, Preference: table.Gain, ValueKind: value.KindInteger},
		{Name: "q3", Active: true, Kind: table.KindCondition, Preference: table.Gain, ValueKind: value.KindInteger},
	}
	rows := [][]value.Value{
		{value.NewInteger(5), value.NewInteger(5), value.NewInteger(5)},
		{value.NewInteger(5), value.NewInteger(5), value.NewInteger(5)},
		{value.NewInteger(5), value.NewInteger(5), value.NewInteger(5)},
		{value.NewInteger(1), value.NewInteger(1), value.NewInteger(5)},
		{value.NewInteger(5), value.NewInteger(1), value.NewInteger(1)},
	}
	tbl, err := table.New(attrs, rows)
	require.NoError(t, err)

	c1, err := condition.Construct(condition.Certain, consistency.AtLeast, table.Gain, 0, "q1", value.NewInteger(2), value.MV2)
	require.NoError(t, err)
	c2, err := condition.Construct(condition.Certain, consistency.AtLeast, table.Gain, 1, "q2", value.NewInteger(2), value.MV2)
	require.NoError(t, err)
	c3, err := condition.Construct(condition.Certain, consistency.AtLeast, table.Gain, 2, "q3", value.NewInteger(2), value.MV2)
	require.NoError(t, err)
	return tbl, c1, c2, c3
}

// TestSeedScenarioS4IncrementalCoverage reproduces spec.md §8's scenario S4
// end to end: three adds, then two removes, checking covered set and
// counters after every step.
func TestSeedScenarioS4IncrementalCoverage(t *testing.T) {
	tbl, c1, c2, c3 := seedScenarioS4Table(t)
	rc := ruleconditions.New(tbl)

	require.NoError(t, rc.AddCondition(c1))
	require.NoError(t, rc.AddCondition(c2))
	require.NoError(t, rc.AddCondition(c3))
	assert.Equal(t, []int{0, 1, 2}, rc.CoveredObjectsIterator())
	assert.Equal(t, []int{0, 0, 0, 2, 2}, rc.Counters())

	// Objects 3 and 4 each still fail one remaining condition (c1 and c3
	// respectively), so only a counter of zero puts an object back in the
	// covered set.
	require.NoError(t, rc.RemoveCondition(1)) // remove c2
	assert.Equal(t, []int{0, 1, 2}, rc.CoveredObjectsIterator())
	assert.Equal(t, []int{0, 0, 0, 1, 1}, rc.Counters())

	require.NoError(t, rc.RemoveCondition(0)) // remove c1
	assert.Equal(t, []int{0, 1, 2, 3}, rc.CoveredObjectsIterator())
	assert.Equal(t, []int{0, 0, 0, 0, 1}, rc.Counters())
}

// TestCoversMatchesCounterInvariant checks §8 invariant 6 directly.
func TestCoversMatchesCounterInvariant(t *testing.T) {
	tbl, c1, c2, c3 := seedScenarioS4Table(t)
	rc := ruleconditions.New(tbl)
	require.NoError(t, rc.AddCondition(c1))
	require.NoError(t, rc.AddCondition(c2))
	require.NoError(t, rc.AddCondition(c3))

	counters := rc.Counters()
	for i := range counters {
		assert.Equal(t, counters[i] == 0, rc.Covers(i), "object %d", i)
	}
}

// TestAddThenRemoveIsIdempotent checks §8 invariant 7: adding a condition
// and immediately removing it restores both structures bitwise.
func TestAddThenRemoveIsIdempotent(t *testing.T) {
	tbl, c1, c2, _ := seedScenarioS4Table(t)
	rc := ruleconditions.New(tbl)
	require.NoError(t, rc.AddCondition(c1))

	before := rc.Counters()
	beforeCovered := rc.CoveredObjectsIterator()

	require.NoError(t, rc.AddCondition(c2))
	require.NoError(t, rc.RemoveCondition(rc.Len()-1))

	assert.Equal(t, before, rc.Counters())
	assert.Equal(t, beforeCovered, rc.CoveredObjectsIterator())
}

func TestHasConditionForAttribute(t *testing.T) {
	tbl, c1, _, _ := seedScenarioS4Table(t)
	rc := ruleconditions.New(tbl)
	assert.False(t, rc.HasConditionForAttribute(0))
	require.NoError(t, rc.AddCondition(c1))
	assert.True(t, rc.HasConditionForAttribute(0))
	assert.False(t, rc.HasConditionForAttribute(1))
}

func TestGetIndicesOfCoveredObjectsWithConditionIsNonDestructive(t *testing.T) {
	tbl, c1, c2, _ := seedScenarioS4Table(t)
	rc := ruleconditions.New(tbl)
	require.NoError(t, rc.AddCondition(c1))

	beforeCovered := rc.CoveredObjectsIterator()
	simulated, err := rc.GetIndicesOfCoveredObjectsWithCondition(c2)
	require.NoError(t, err)

	// Simulating must not mutate rc: the covered set is unchanged...
	assert.Equal(t, beforeCovered, rc.CoveredObjectsIterator())
	// ...but the simulated result reflects what adding c2 would do: object 4
	// is currently covered (only c1 has been added) and fails c2, so it must
	// be excluded from the simulated set.
	assert.NotContains(t, simulated, 4)
	assert.Contains(t, simulated, 0)
}

func TestRemoveConditionOutOfRange(t *testing.T) {
	tbl, _, _, _ := seedScenarioS4Table(t)
	rc := ruleconditions.New(tbl)
	err := rc.RemoveCondition(0)
	assert.ErrorIs(t, err, ruleconditions.ErrConditionIndexOutOfRange)
}
