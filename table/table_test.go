package table

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/roughset/drsa/value"
)

func sampleAttributes() []Attribute {
	return []Attribute{
		{Name: "cost", Active: true, Kind: KindCondition, Preference: Cost, ValueKind: value.KindInteger},
		{Name: "quality", Active: true, Kind: KindCondition, Preference: Gain, ValueKind: value.KindInteger},
		{Name: "class", Active: true, Kind: KindDecision, Preference: Gain, ValueKind: value.KindInteger},
		{Name: "id", Active: true, Kind: KindIdentification, ValueKind: value.KindInteger},
		{Name: "note", Active: false, Kind: KindDescription, ValueKind: value.KindInteger},
	}
}

func sampleRows() [][]value.Value {
	return [][]value.Value{
		{value.NewInteger(10), value.NewInteger(1), value.NewInteger(1), value.NewInteger(100), value.NewInteger(0)},
		{value.NewInteger(20), value.NewInteger(2), value.NewInteger(2), value.NewInteger(101), value.NewInteger(0)},
		{value.NewInteger(30), value.NewInteger(3), value.NewInteger(3), value.NewInteger(102), value.NewInteger(0)},
		{value.NewInteger(40), value.NewInteger(1), value.NewInteger(1), value.NewInteger(103), value.NewInteger(0)},
	}
}

func TestNewAndGetField(t *testing.T) {
	tbl, err := New(sampleAttributes(), sampleRows())
	require.NoError(t, err)
	require.Equal(t, 4, tbl.RowCount())

	v, err := tbl.GetField(1, 0) // object 1, "cost"
	require.NoError(t, err)
	assert.Equal(t, int64(20), v.Int())

	d, ok := tbl.GetDecision(2)
	require.True(t, ok)
	assert.Equal(t, int64(3), d.Value(0).Int())

	ident, ok := tbl.GetIdentification(0)
	require.True(t, ok)
	assert.Equal(t, int64(100), ident.Int())
}

func TestMultipleActiveDecisionsRejected(t *testing.T) {
	attrs := sampleAttributes()
	attrs[4].Active = true
	attrs[4].Kind = KindDecision
	_, err := New(attrs, sampleRows())
	assert.ErrorIs(t, err, ErrMultipleActiveDecisions)
}

func TestRowWidthMismatchRejected(t *testing.T) {
	rows := sampleRows()
	rows[1] = rows[1][:len(rows[1])-1]
	_, err := New(sampleAttributes(), rows)
	assert.ErrorIs(t, err, ErrRowWidthMismatch)
}

func TestNoActiveDecisionIsAbsentNotError(t *testing.T) {
	attrs := sampleAttributes()
	attrs[2].Active = false
	tbl, err := New(attrs, sampleRows())
	require.NoError(t, err)
	_, ok := tbl.GetDecision(0)
	assert.False(t, ok)
}

// TestSelectPreservesIdsAndFields is seed scenario S6: a 4-row table
// projected by Select([2,0,2]) must yield 3 rows whose ids equal the
// originals at positions 2, 0, 2 and whose fields match row-by-row.
func TestSelectPreservesIdsAndFields(t *testing.T) {
	tbl, err := New(sampleAttributes(), sampleRows())
	require.NoError(t, err)

	id2, _ := tbl.ObjectID(2)
	id0, _ := tbl.ObjectID(0)

	projected, err := tbl.Select([]int{2, 0, 2})
	require.NoError(t, err)
	require.Equal(t, 3, projected.RowCount())

	pid0, _ := projected.ObjectID(0)
	pid1, _ := projected.ObjectID(1)
	pid2, _ := projected.ObjectID(2)
	assert.Equal(t, id2, pid0)
	assert.Equal(t, id0, pid1)
	assert.Equal(t, id2, pid2)

	for k, src := range []int{2, 0, 2} {
		want, _ := tbl.GetField(src, 0)
		got, err := projected.GetField(k, 0)
		require.NoError(t, err)
		assert.Equal(t, want.Int(), got.Int())
	}
}

func TestSelectOutOfRange(t *testing.T) {
	tbl, err := New(sampleAttributes(), sampleRows())
	require.NoError(t, err)
	_, err = tbl.Select([]int{0, 99})
	assert.ErrorIs(t, err, ErrObjectIndexOutOfRange)
}

func TestObjectIDsAreGloballyUnique(t *testing.T) {
	tbl1, err := New(sampleAttributes(), sampleRows())
	require.NoError(t, err)
	tbl2, err := New(sampleAttributes(), sampleRows())
	require.NoError(t, err)

	seen := map[uint64]bool{}
	for i := 0; i < tbl1.RowCount(); i++ {
		id, _ := tbl1.ObjectID(i)
		assert.False(t, seen[id])
		seen[id] = true
	}
	for i := 0; i < tbl2.RowCount(); i++ {
		id, _ := tbl2.ObjectID(i)
		assert.False(t, seen[id])
		seen[id] = true
	}
}

func TestAtLeastAsGoodRespectsPreferenceDirection(t *testing.T) {
	attrs := sampleAttributes()
	cost := attrs[0]
	quality := attrs[1]

	// cost is a Cost attribute: lower is preference-wise "at least as good".
	assert.Equal(t, value.TRUE, cost.AtLeastAsGood(value.NewInteger(10), value.NewInteger(20)))
	assert.Equal(t, value.FALSE, cost.AtLeastAsGood(value.NewInteger(20), value.NewInteger(10)))

	// quality is a Gain attribute: higher is preference-wise "at least as good".
	assert.Equal(t, value.TRUE, quality.AtLeastAsGood(value.NewInteger(3), value.NewInteger(1)))
	assert.Equal(t, value.FALSE, quality.AtLeastAsGood(value.NewInteger(1), value.NewInteger(3)))
}
