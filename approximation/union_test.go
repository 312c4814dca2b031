package approximation_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/roughset/drsa/approximation"
	"github.com/roughset/drsa/consistency"
	"github.com/roughset/drsa/dominance"
	"github.com/roughset/drsa/table"
	"github.com/roughset/drsa/value"
)

// monotoneAttributes describes a single Gain criterion "quality" and a
// Gain decision "class", so object i+1 always dominates object i.
func monotoneAttributes() []table.Attribute {
	return []table.Attribute{
		{Name: "quality", Active: true, Kind: table.KindCondition, Preference: table.Gain, ValueKind: value.KindInteger},
		{Name: "class", Active: true, Kind: table.KindDecision, Preference: table.Gain, ValueKind: value.KindInteger},
	}
}

// monotoneTable lays out five objects with strictly increasing quality and
// class, so the dominance cones and decision classes coincide exactly with
// the object's rank.
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

func classDecision(t *testing.T, tbl *table.InformationTable, class int64) table.Decision {
	t.Helper()
	return table.NewSimpleDecision(tbl.Attributes()[1], value.NewInteger(class))
}

// TestClassicalUnionAtLeastIsConsistent reproduces §8 invariant 4: in a
// table with no rank reversal, the classical lower and upper approximation
// of "at least class 2" coincide, since the union is crisply definable.
func TestClassicalUnionAtLeastIsConsistent(t *testing.T) {
	tbl := monotoneTable(t)
	cones := dominance.NewConeSet(tbl)

	u, err := approximation.NewUnion(tbl, cones, consistency.AtLeast, classDecision(t, tbl, 2))
	require.NoError(t, err)

	assert.Equal(t, []int{2, 3, 4}, u.Objects())

	lower, err := u.Lower()
	require.NoError(t, err)
	upper, err := u.Upper()
	require.NoError(t, err)
	assert.Equal(t, []int{2, 3, 4}, lower)
	assert.Equal(t, []int{2, 3, 4}, upper)

	boundary, err := u.Boundary()
	require.NoError(t, err)
	assert.Empty(t, boundary)
}

// TestClassicalUnionAtMost mirrors the AT_MOST direction.
func TestClassicalUnionAtMost(t *testing.T) {
	tbl := monotoneTable(t)
	cones := dominance.NewConeSet(tbl)

	u, err := approximation.NewUnion(tbl, cones, consistency.AtMost, classDecision(t, tbl, 1))
	require.NoError(t, err)
	assert.Equal(t, []int{0, 1}, u.Objects())

	lower, err := u.Lower()
	require.NoError(t, err)
	upper, err := u.Upper()
	require.NoError(t, err)
	assert.Equal(t, []int{0, 1}, lower)
	assert.Equal(t, []int{0, 1}, upper)
}

// TestBoundaryIsUpperMinusLower reproduces §8 invariant 2: when a rank
// reversal introduces an inconsistency, boundary = upper \ lower and lower
// excludes the reversed object while upper includes it.
func TestBoundaryIsUpperMinusLower(t *testing.T) {
	// obj 1 has higher quality than obj 2 but a worse class: a reversal.
	rows := [][]value.Value{
		{value.NewInteger(1), value.NewInteger(1)},
		{value.NewInteger(3), value.NewInteger(1)}, // high quality, low class
		{value.NewInteger(2), value.NewInteger(2)}, // lower quality, high class
	}
	tbl, err := table.New(monotoneAttributes(), rows)
	require.NoError(t, err)
	cones := dominance.NewConeSet(tbl)

	u, err := approximation.NewUnion(tbl, cones, consistency.AtLeast, classDecision(t, tbl, 2))
	require.NoError(t, err)
	assert.Equal(t, []int{2}, u.Objects())

	lower, err := u.Lower()
	require.NoError(t, err)
	upper, err := u.Upper()
	require.NoError(t, err)
	boundary, err := u.Boundary()
	require.NoError(t, err)

	// obj 2's D+ cone contains obj 1 (quality 3 >= 2), whose class (1) is
	// negative for the union, so obj 2 is excluded from Lower.
	assert.Empty(t, lower)
	assert.ElementsMatch(t, []int{1, 2}, upper)
	assert.ElementsMatch(t, []int{1, 2}, boundary)
}

// TestRegionsPartitionTheUniverse reproduces §8 invariant 3.
func TestRegionsPartitionTheUniverse(t *testing.T) {
	tbl := monotoneTable(t)
	cones := dominance.NewConeSet(tbl)

	u, err := approximation.NewUnion(tbl, cones, consistency.AtLeast, classDecision(t, tbl, 2))
	require.NoError(t, err)

	pos, err := u.PositiveRegion()
	require.NoError(t, err)
	neg, err := u.NegativeRegion()
	require.NoError(t, err)
	bnd, err := u.BoundaryRegion()
	require.NoError(t, err)

	seen := make(map[int]int)
	for _, i := range pos {
		seen[i]++
	}
	for _, i := range neg {
		seen[i]++
	}
	for _, i := range bnd {
		seen[i]++
	}
	for i := 0; i < tbl.RowCount(); i++ {
		assert.Equal(t, 1, seen[i], "object %d must be in exactly one region", i)
	}
}

// TestNeutralObjectIsExcludedFromComplement reproduces §8 scenario S5: an
// object whose decision is uncomparable with the limiting decision is
// neutral, counted in neither the union nor its complement.
func TestNeutralObjectIsExcludedFromComplement(t *testing.T) {
	attrs := []table.Attribute{
		{Name: "quality", Active: true, Kind: table.KindCondition, Preference: table.Gain, ValueKind: value.KindInteger},
		{Name: "class", Active: true, Kind: table.KindDecision, Preference: table.Gain, ValueKind: value.KindEnumeration, Domain: []string{"red", "green", "blue"}},
	}
	enumVal := func(idx int) value.Value {
		v, err := value.NewEnumeration(idx, attrs[1].Domain)
		require.NoError(t, err)
		return v
	}
	rows := [][]value.Value{
		{value.NewInteger(1), enumVal(0)},
		{value.NewInteger(2), enumVal(1)},
		{value.NewInteger(3), enumVal(2)},
		{value.NewInteger(4), value.NewMissing(value.MV2)},
	}
	tbl, err := table.New(attrs, rows)
	require.NoError(t, err)
	cones := dominance.NewConeSet(tbl)

	// Enumeration decisions are ordered by index under Gain; object 3's MV2
	// missing decision compares UNCOMPARABLE with the limiting decision, so
	// it is the neutral object.
	limiting := table.NewSimpleDecision(attrs[1], enumVal(1))
	u, err := approximation.NewUnion(tbl, cones, consistency.AtLeast, limiting)
	require.NoError(t, err)
	assert.Equal(t, []int{1, 2}, u.Objects())
	assert.Equal(t, []int{0}, u.Complement())
	assert.Equal(t, []int{3}, u.Neutral())
	assert.Equal(t, 1, u.ComplementSize())
}

// vcMeasure is a deterministic test double so VC threshold behavior can be
// checked without depending on EpsilonMeasure's cone arithmetic.
type vcMeasure struct {
	values map[int]float64
}

func (m vcMeasure) Name() string            { return "vc-test" }
func (m vcMeasure) Sense() consistency.Sense { return consistency.Cost }
func (m vcMeasure) Evaluate(obj int, _ consistency.Classifier, _ *dominance.ConeSet) (float64, error) {
	return m.values[obj], nil
}

// TestVCUnionLowerUsesMeasureThreshold checks that VC Lower admits exactly
// the members whose measure value satisfies the threshold, regardless of
// cone containment.
func TestVCUnionLowerUsesMeasureThreshold(t *testing.T) {
	tbl := monotoneTable(t)
	cones := dominance.NewConeSet(tbl)

	m := vcMeasure{values: map[int]float64{2: 0.0, 3: 0.5, 4: 0.0}}
	u, err := approximation.NewVCUnion(tbl, cones, consistency.AtLeast, classDecision(t, tbl, 2), []consistency.Measure{m}, []float64{0.1})
	require.NoError(t, err)

	lower, err := u.Lower()
	require.NoError(t, err)
	assert.Equal(t, []int{2, 4}, lower)
}

func TestNewVCUnionRejectsEmptyMeasures(t *testing.T) {
	tbl := monotoneTable(t)
	cones := dominance.NewConeSet(tbl)
	_, err := approximation.NewVCUnion(tbl, cones, consistency.AtLeast, classDecision(t, tbl, 2), nil, nil)
	assert.ErrorIs(t, err, approximation.ErrNoMeasures)
}

func TestNewVCUnionRejectsMismatchedLengths(t *testing.T) {
	tbl := monotoneTable(t)
	cones := dominance.NewConeSet(tbl)
	m := vcMeasure{values: map[int]float64{}}
	_, err := approximation.NewVCUnion(tbl, cones, consistency.AtLeast, classDecision(t, tbl, 2), []consistency.Measure{m}, []float64{0.1, 0.2})
	assert.ErrorIs(t, err, approximation.ErrMeasureThresholdCountMismatch)
}

func TestSetComplementaryUnionRejectedAfterUpperRead(t *testing.T) {
	tbl := monotoneTable(t)
	cones := dominance.NewConeSet(tbl)
	u, err := approximation.NewUnion(tbl, cones, consistency.AtLeast, classDecision(t, tbl, 2))
	require.NoError(t, err)

	_, err = u.Upper()
	require.NoError(t, err)

	other, err := approximation.NewUnion(tbl, cones, consistency.AtMost, classDecision(t, tbl, 1))
	require.NoError(t, err)
	err = u.SetComplementaryUnion(other)
	assert.ErrorIs(t, err, approximation.ErrComplementaryUnionAlreadySet)
}

func TestOrderUnionsConcatenatesAtLeastThenAtMost(t *testing.T) {
	tbl := monotoneTable(t)
	cones := dominance.NewConeSet(tbl)

	unions, err := approximation.OrderUnions(tbl, cones)
	require.NoError(t, err)
	require.Len(t, unions, 4) // 2 AT_LEAST (class 2, class 3) + 2 AT_MOST (class 1, class 2)

	assert.Equal(t, consistency.AtLeast, unions[0].Type())
	assert.Equal(t, consistency.AtLeast, unions[1].Type())
	assert.Equal(t, consistency.AtMost, unions[2].Type())
	assert.Equal(t, consistency.AtMost, unions[3].Type())

	// AT_LEAST descends from best (class 3) to second-worst (class 2).
	assert.Equal(t, []int{4}, unions[0].Objects())
	assert.Equal(t, []int{2, 3, 4}, unions[1].Objects())
	// AT_MOST ascends from worst (class 1) to second-best (class 2).
	assert.Equal(t, []int{0, 1}, unions[2].Objects())
	assert.Equal(t, []int{0, 1, 2, 3}, unions[3].Objects())
}
