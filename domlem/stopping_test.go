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

func TestDefaultStoppingCheckerNotSatisfiedWithNoConditions(t *testing.T) {
	tbl := monotoneTable(t)
	rc := ruleconditions.NewWithContext(tbl, []int{4}, []int{4}, []int{4}, nil)

	assert.False(t, domlem.DefaultStoppingChecker{}.IsSatisfied(rc))
}

func TestDefaultStoppingCheckerSatisfiedWhenCoveredIsSubsetOfAllowed(t *testing.T) {
	tbl := monotoneTable(t)
	rc := ruleconditions.NewWithContext(tbl, []int{4}, []int{4}, []int{4}, nil)

	c, err := condition.Construct(condition.Certain, consistency.AtLeast, table.Gain, 0, "quality", value.NewInteger(5), value.MV15)
	require.NoError(t, err)
	require.NoError(t, rc.AddCondition(c))

	assert.True(t, domlem.DefaultStoppingChecker{}.IsSatisfied(rc))
}
