package domlem_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/roughset/drsa/condition"
	"github.com/roughset/drsa/consistency"
	"github.com/roughset/drsa/domlem"
	"github.com/roughset/drsa/ruleconditions"
	"github.com/roughset/drsa/table"
	"github.com/roughset/drsa/value"
)

// monotoneAttributes describes a single Gain criterion "quality" and a Gain
// decision "class", so object i+1 always dominates object i.
func monotoneAttributes() []table.Attribute {
	return []table.Attribute{
		{Name: "quality", Active: true, Kind: table.KindCondition, Preference: table.Gain, ValueKind: value.KindInteger},
		{Name: "class", Active: true, Kind: table.KindDecision, Preference: table.Gain, ValueKind: value.KindInteger},
	}
}

// monotoneTable lays out five objects with strictly increasing quality and
// class, so the lower and upper approximations of every union coincide.
//
//	obj  quality  class
//	0       1        1
//	1       2        1
//	2       3        2
//	3       4        2
//	4       5        3
func monotoneTable(t *testing.T) *table.InformationTable {
	t.Helper()
	rows := [][]value.Value{
		{value.NewInteger(1), value.NewInteger(1)},
		{value.NewInteger(2), value.NewInteger(1)},
		{value.NewInteger(3), value.NewInteger(2)},
		{value.NewInteger(4), value.NewInteger(2)},
		{value.NewInteger(5), value.NewInteger(3)},
	}
	tbl, err := table.New(monotoneAttributes(), rows)
	require.NoError(t, err)
	return tbl
}

// TestGetBestConditionFindsMostRestrictiveGainExtremeForCertainRule
// reproduces the Certain/AT_LEAST condition search: considering only object
// 4 (quality 5), the generator must propose "quality >= 5", the only value
// among considered objects.
func TestGetBestConditionFindsMostRestrictiveGainExtremeForCertainRule(t *testing.T) {
	tbl := monotoneTable(t)
	gen, err := domlem.NewConditionGenerator(tbl, domlem.DefaultEvaluators())
	require.NoError(t, err)

	rc := ruleconditions.NewWithContext(tbl, []int{4}, []int{4}, []int{4}, nil)
	cand, err := gen.GetBestCondition([]int{4}, rc, condition.Certain, consistency.AtLeast)
	require.NoError(t, err)

	assert.Equal(t, 0, cand.AttributeIndex())
	assert.Equal(t, condition.RelAtLeast, cand.Relation())
	assert.Equal(t, condition.ThresholdVsObject, cand.Phrasing())
	assert.Equal(t, value.TRUE, cand.Limit().Equal(value.NewInteger(5)))
}

// TestGetBestConditionReturnsNotFoundWhenAttributeAlreadyUsed checks that
// the generator skips an attribute once HasConditionForAttribute is true,
// surfacing ErrElementaryConditionNotFound when it was the only attribute.
func TestGetBestConditionReturnsNotFoundWhenAttributeAlreadyUsed(t *testing.T) {
	tbl := monotoneTable(t)
	gen, err := domlem.NewConditionGenerator(tbl, domlem.DefaultEvaluators())
	require.NoError(t, err)

	rc := ruleconditions.NewWithContext(tbl, []int{4}, []int{4}, []int{4}, nil)
	used, err := condition.Construct(condition.Certain, consistency.AtLeast, table.Gain, 0, "quality", value.NewInteger(5), value.MV15)
	require.NoError(t, err)
	require.NoError(t, rc.AddCondition(used))

	_, err = gen.GetBestCondition([]int{4}, rc, condition.Certain, consistency.AtLeast)
	assert.ErrorIs(t, err, domlem.ErrElementaryConditionNotFound)
}

func TestNewConditionGeneratorRejectsEmptyEvaluators(t *testing.T) {
	tbl := monotoneTable(t)
	_, err := domlem.NewConditionGenerator(tbl, nil)
	assert.ErrorIs(t, err, domlem.ErrNoEvaluators)
}
