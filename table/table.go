package table

import (
	"fmt"

	"github.com/roughset/drsa/value"
)

// InformationTable is an immutable, column-typed object×attribute matrix.
//
// Columns are partitioned at construction time into active-condition,
// active-decision, active-identification, and other (inactive or
// description), matching spec.md's "Information table" entity. Row data is
// stored column-major and is never copied by Select; only the row→original-
// row mapping and the id slice are recomputed, so projections are O(k) in
// the number of selected rows, not O(k·attributes).
type InformationTable struct {
	attributes []Attribute

	conditionAttrIdx []int // original attribute index, one per condition column
	decisionAttrIdx  int   // original attribute index of the decision column, or -1
	identAttrIdx     int   // original attribute index of the identification column, or -1
	otherAttrIdx     []int // original attribute index, one per other column

	// encoded[j] dispatches GetField(obj, j) to a partition in one branch:
	// encoded[j] > 0  -> conditionCols[encoded[j]-1]
	// encoded[j] < 0  -> otherCols[-encoded[j]-1]
	// encoded[j] == 0 -> the decision or identification column (j tells which)
	encoded []int

	conditionCols [][]value.Value // [colPos][rootObj]
	decisionCol   []value.Value   // [rootObj], nil if no active decision attribute
	identCol      []value.Value   // [rootObj], nil if no active identification attribute
	otherCols     [][]value.Value // [colPos][rootObj]

	rowMap []int    // [localObj] -> rootObj index into the *Cols slices above
	ids    []uint64 // [localObj] -> stable global object id
}

// New builds an InformationTable from an attribute list and row-major field
// data (rows[i][j] is the value of attributes[j] for object i).
func New(attributes []Attribute, rows [][]value.Value) (*InformationTable, error) {
	decisionAttrIdx, identAttrIdx := -1, -1
	for j, a := range attributes {
		if !a.Active {
			continue
		}
		switch a.Kind {
		case KindDecision:
			if decisionAttrIdx != -1 {
				return nil, fmt.Errorf("%w: attributes %q and %q", ErrMultipleActiveDecisions, attributes[decisionAttrIdx].Name, a.Name)
			}
			decisionAttrIdx = j
		case KindIdentification:
			if identAttrIdx != -1 {
				return nil, fmt.Errorf("%w: attributes %q and %q", ErrMultipleActiveIdentifications, attributes[identAttrIdx].Name, a.Name)
			}
			identAttrIdx = j
		}
	}

	for i, row := range rows {
		if len(row) != len(attributes) {
			return nil, fmt.Errorf("%w: row %d has %d fields, want %d", ErrRowWidthMismatch, i, len(row), len(attributes))
		}
	}
	for i, row := range rows {
		for j, v := range row {
			if v.IsMissing() {
				continue
			}
			if v.Kind() != attributes[j].ValueKind {
				return nil, fmt.Errorf("%w: object %d attribute %q has %s, want %s", ErrValueKindMismatch, i, attributes[j].Name, v.Kind(), attributes[j].ValueKind)
			}
		}
	}

	t := &InformationTable{
		attributes:      append([]Attribute(nil), attributes...),
		decisionAttrIdx: decisionAttrIdx,
		identAttrIdx:    identAttrIdx,
		encoded:         make([]int, len(attributes)),
	}

	for j, a := range attributes {
		switch {
		case a.Active && a.Kind == KindCondition:
			t.conditionAttrIdx = append(t.conditionAttrIdx, j)
			t.encoded[j] = len(t.conditionAttrIdx) // positive, 1-based
		case j == decisionAttrIdx || j == identAttrIdx:
			t.encoded[j] = 0
		default:
			t.otherAttrIdx = append(t.otherAttrIdx, j)
			t.encoded[j] = -len(t.otherAttrIdx) // negative, 1-based
		}
	}

	n := len(rows)
	t.conditionCols = make([][]value.Value, len(t.conditionAttrIdx))
	for c := range t.conditionCols {
		t.conditionCols[c] = make([]value.Value, n)
	}
	t.otherCols = make([][]value.Value, len(t.otherAttrIdx))
	for c := range t.otherCols {
		t.otherCols[c] = make([]value.Value, n)
	}
	if decisionAttrIdx != -1 {
		t.decisionCol = make([]value.Value, n)
	}
	if identAttrIdx != -1 {
		t.identCol = make([]value.Value, n)
	}

	for i, row := range rows {
		for j, v := range row {
			switch e := t.encoded[j]; {
			case e > 0:
				t.conditionCols[e-1][i] = v
			case e < 0:
				t.otherCols[-e-1][i] = v
			default:
				if j == decisionAttrIdx {
					t.decisionCol[i] = v
				} else if j == identAttrIdx {
					t.identCol[i] = v
				}
			}
		}
	}

	t.rowMap = make([]int, n)
	t.ids = make([]uint64, n)
	for i := range rows {
		t.rowMap[i] = i
		t.ids[i] = newObjectID()
	}
	return t, nil
}

// RowCount reports the number of objects (rows) currently visible through
// this table (after any Select projection).
func (t *InformationTable) RowCount() int { return len(t.rowMap) }

// Attributes returns the full, original attribute list in column order.
func (t *InformationTable) Attributes() []Attribute { return t.attributes }

// ConditionAttributeIndices returns the original attribute indices of the
// active condition columns, in column order.
func (t *InformationTable) ConditionAttributeIndices() []int {
	return append([]int(nil), t.conditionAttrIdx...)
}

// DecisionAttributeIndex returns the original attribute index of the active
// decision column, or (-1, false) if none is declared.
func (t *InformationTable) DecisionAttributeIndex() (int, bool) {
	return t.decisionAttrIdx, t.decisionAttrIdx != -1
}

// IdentificationAttributeIndex returns the original attribute index of the
// active identification column, or (-1, false) if none is declared.
func (t *InformationTable) IdentificationAttributeIndex() (int, bool) {
	return t.identAttrIdx, t.identAttrIdx != -1
}

// ObjectID returns the stable, globally unique id of local object obj.
// Object ids survive Select projections, including duplication.
func (t *InformationTable) ObjectID(obj int) (uint64, error) {
	if obj < 0 || obj >= len(t.ids) {
		return 0, fmt.Errorf("%w: %d", ErrObjectIndexOutOfRange, obj)
	}
	return t.ids[obj], nil
}

// GetField returns the value of attribute attrIdx (an original attribute
// index, as returned by ConditionAttributeIndices et al.) for object obj.
func (t *InformationTable) GetField(obj, attrIdx int) (value.Value, error) {
	if obj < 0 || obj >= len(t.rowMap) {
		return value.Value{}, fmt.Errorf("%w: %d", ErrObjectIndexOutOfRange, obj)
	}
	if attrIdx < 0 || attrIdx >= len(t.encoded) {
		return value.Value{}, fmt.Errorf("%w: %d", ErrAttributeIndexOutOfRange, attrIdx)
	}
	root := t.rowMap[obj]
	switch e := t.encoded[attrIdx]; {
	case e > 0:
		return t.conditionCols[e-1][root], nil
	case e < 0:
		return t.otherCols[-e-1][root], nil
	default:
		if attrIdx == t.decisionAttrIdx {
			return t.decisionCol[root], nil
		}
		if attrIdx == t.identAttrIdx {
			return t.identCol[root], nil
		}
		return value.Value{}, fmt.Errorf("%w: %d", ErrMissingAttributeMetadata, attrIdx)
	}
}

// GetDecision returns object obj's Decision. The second return value is
// false, with a zero Decision, when the table has no active decision
// attribute — a typed "absent" result rather than an error, per this
// module's error-handling contract for intentionally missing context.
func (t *InformationTable) GetDecision(obj int) (Decision, bool) {
	if t.decisionAttrIdx == -1 {
		return Decision{}, false
	}
	if obj < 0 || obj >= len(t.rowMap) {
		return Decision{}, false
	}
	root := t.rowMap[obj]
	return NewSimpleDecision(t.attributes[t.decisionAttrIdx], t.decisionCol[root]), true
}

// GetIdentification returns object obj's identification value, or
// (zero Value, false) if the table declares no active identification
// attribute.
func (t *InformationTable) GetIdentification(obj int) (value.Value, bool) {
	if t.identAttrIdx == -1 {
		return value.Value{}, false
	}
	if obj < 0 || obj >= len(t.rowMap) {
		return value.Value{}, false
	}
	return t.identCol[t.rowMap[obj]], true
}

// Select returns a new table restricted to (and reordered by) indices,
// which are local object indices into t and may repeat. The returned
// table shares t's underlying column data by reference; only the
// row→root mapping and id slice are recomputed.
func (t *InformationTable) Select(indices []int) (*InformationTable, error) {
	rowMap := make([]int, len(indices))
	ids := make([]uint64, len(indices))
	for k, idx := range indices {
		if idx < 0 || idx >= len(t.rowMap) {
			return nil, fmt.Errorf("%w: %d", ErrObjectIndexOutOfRange, idx)
		}
		rowMap[k] = t.rowMap[idx]
		ids[k] = t.ids[idx]
	}
	projected := &InformationTable{
		attributes:       t.attributes,
		conditionAttrIdx: t.conditionAttrIdx,
		decisionAttrIdx:  t.decisionAttrIdx,
		identAttrIdx:     t.identAttrIdx,
		otherAttrIdx:     t.otherAttrIdx,
		encoded:          t.encoded,
		conditionCols:    t.conditionCols,
		decisionCol:      t.decisionCol,
		identCol:         t.identCol,
		otherCols:        t.otherCols,
		rowMap:           rowMap,
		ids:              ids,
	}
	return projected, nil
}
