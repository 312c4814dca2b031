package approximation

import (
	"sort"

	"github.com/roughset/drsa/consistency"
	"github.com/roughset/drsa/dominance"
	"github.com/roughset/drsa/table"
	"github.com/roughset/drsa/value"
)

// OrderUnions enumerates the distinct decision classes present in tbl,
// worst to best under the decision attribute's preference direction, and
// builds every non-trivial classical union over them: AT_LEAST unions from
// the best class down to the second-worst, followed by AT_MOST unions from
// the worst class up to the second-best. AT_LEAST(worst) and AT_MOST(best)
// are both the whole universe and are omitted, matching the closing
// paragraph of §4.8 on how the two rule-type sequences are concatenated.
func OrderUnions(tbl *table.InformationTable, cones *dominance.ConeSet) ([]*Union, error) {
	decAttrIdx, ok := tbl.DecisionAttributeIndex()
	if !ok {
		return nil, ErrNoActiveDecision
	}
	decAttr := tbl.Attributes()[decAttrIdx]
	if decAttr.Preference == table.None {
		return nil, ErrDecisionAttributeNotOrdered
	}

	classes, err := distinctDecisionValues(tbl, decAttrIdx)
	if err != nil {
		return nil, err
	}
	sort.Slice(classes, func(a, b int) bool {
		return decAttr.AtLeastAsGood(classes[b], classes[a]) == value.TRUE
	})
	if len(classes) <= 1 {
		return nil, nil
	}

	var unions []*Union
	for k := len(classes) - 1; k >= 1; k-- {
		u, err := NewUnion(tbl, cones, consistency.AtLeast, table.NewSimpleDecision(decAttr, classes[k]))
		if err != nil {
			return nil, err
		}
		unions = append(unions, u)
	}
	for k := 0; k <= len(classes)-2; k++ {
		u, err := NewUnion(tbl, cones, consistency.AtMost, table.NewSimpleDecision(decAttr, classes[k]))
		if err != nil {
			return nil, err
		}
		unions = append(unions, u)
	}
	return unions, nil
}

// distinctDecisionValues collects every distinct decision-attribute value
// present in tbl, in first-seen order.
func distinctDecisionValues(tbl *table.InformationTable, decAttrIdx int) ([]value.Value, error) {
	var classes []value.Value
	n := tbl.RowCount()
	for i := 0; i < n; i++ {
		v, err := tbl.GetField(i, decAttrIdx)
		if err != nil {
			return nil, err
		}
		seen := false
		for _, c := range classes {
			if c.Equal(v) == value.TRUE {
				seen = true
				break
			}
		}
		if !seen {
			classes = append(classes, v)
		}
	}
	return classes, nil
}
