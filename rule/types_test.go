package rule_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/roughset/drsa/condition"
	"github.com/roughset/drsa/consistency"
	"github.com/roughset/drsa/rule"
	"github.com/roughset/drsa/table"
	"github.com/roughset/drsa/value"
)

func twoObjectTable(t *testing.T) *table.InformationTable {
	t.Helper()
	attrs := []table.Attribute{
		{Name: "quality", Active: true, Kind: table.KindCondition, Preference: table.Gain, ValueKind: value.KindInteger},
		{Name: "class", Active: true, Kind: table.KindDecision, Preference: table.Gain, ValueKind: value.KindInteger},
	}
	rows := [][]value.Value{
		{value.NewInteger(1), value.NewInteger(1)},
		{value.NewInteger(5), value.NewInteger(2)},
	}
	tbl, err := table.New(attrs, rows)
	require.NoError(t, err)
	return tbl
}

func TestNewRejectsEmptyConditions(t *testing.T) {
	_, err := rule.New(condition.Certain, rule.AtLeast, nil, 1, "class", value.NewInteger(2))
	assert.ErrorIs(t, err, rule.ErrEmptyConditions)
}

func TestRuleCoversOnlyObjectsSatisfyingItsConditions(t *testing.T) {
	tbl := twoObjectTable(t)
	cond, err := condition.Construct(condition.Certain, consistency.AtLeast, table.Gain, 0, "quality", value.NewInteger(5), value.MV15)
	require.NoError(t, err)

	r, err := rule.New(condition.Certain, rule.AtLeast, []condition.Condition{cond}, 1, "class", value.NewInteger(2))
	require.NoError(t, err)

	covers0, err := r.Covers(0, tbl)
	require.NoError(t, err)
	assert.False(t, covers0)

	covers1, err := r.Covers(1, tbl)
	require.NoError(t, err)
	assert.True(t, covers1)
}

func TestRuleStringRendersConditionsAndDecisionHead(t *testing.T) {
	cond, err := condition.Construct(condition.Certain, consistency.AtLeast, table.Gain, 0, "quality", value.NewInteger(5), value.MV15)
	require.NoError(t, err)

	r, err := rule.New(condition.Certain, rule.AtLeast, []condition.Condition{cond}, 1, "class", value.NewInteger(2))
	require.NoError(t, err)

	assert.Equal(t, "IF quality >= 5 THEN class AT_LEAST 2", r.String())
}

func TestRuleSetJoinConcatenatesWithoutMutatingEitherOperand(t *testing.T) {
	condA, err := condition.Construct(condition.Certain, consistency.AtLeast, table.Gain, 0, "quality", value.NewInteger(5), value.MV15)
	require.NoError(t, err)
	condB, err := condition.Construct(condition.Certain, consistency.AtMost, table.Gain, 0, "quality", value.NewInteger(1), value.MV15)
	require.NoError(t, err)

	ruleA, err := rule.New(condition.Certain, rule.AtLeast, []condition.Condition{condA}, 1, "class", value.NewInteger(2))
	require.NoError(t, err)
	ruleB, err := rule.New(condition.Certain, rule.AtMost, []condition.Condition{condB}, 1, "class", value.NewInteger(1))
	require.NoError(t, err)

	left := rule.NewRuleSet(ruleA)
	right := rule.NewRuleSet(ruleB)

	joined := left.Join(right)
	require.Equal(t, 2, joined.Len())
	assert.Equal(t, rule.AtLeast, joined.Rules()[0].DecisionRelation())
	assert.Equal(t, rule.AtMost, joined.Rules()[1].DecisionRelation())

	assert.Equal(t, 1, left.Len())
	assert.Equal(t, 1, right.Len())
}

func TestNewRuleSetWithCharacteristicsRejectsLengthMismatch(t *testing.T) {
	cond, err := condition.Construct(condition.Certain, consistency.AtLeast, table.Gain, 0, "quality", value.NewInteger(5), value.MV15)
	require.NoError(t, err)
	r, err := rule.New(condition.Certain, rule.AtLeast, []condition.Condition{cond}, 1, "class", value.NewInteger(2))
	require.NoError(t, err)

	_, err = rule.NewRuleSetWithCharacteristics([]rule.Rule{r}, nil)
	assert.ErrorIs(t, err, rule.ErrRuleCharacteristicsLengthMismatch)
}

func TestRuleSetWithCharacteristicsAtReturnsAlignedPair(t *testing.T) {
	cond, err := condition.Construct(condition.Certain, consistency.AtLeast, table.Gain, 0, "quality", value.NewInteger(5), value.MV15)
	require.NoError(t, err)
	r, err := rule.New(condition.Certain, rule.AtLeast, []condition.Condition{cond}, 1, "class", value.NewInteger(2))
	require.NoError(t, err)

	chars := rule.Characteristics{Support: 1, Strength: 0.5, Confidence: 1, CoverageFactor: 1, Epsilon: 0}
	rswc, err := rule.NewRuleSetWithCharacteristics([]rule.Rule{r}, []rule.Characteristics{chars})
	require.NoError(t, err)

	gotRule, gotChars := rswc.At(0)
	assert.Equal(t, r, gotRule)
	assert.Equal(t, chars, gotChars)
	assert.Equal(t, 1, rswc.RuleSet().Len())
}
