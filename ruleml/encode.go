package ruleml

import (
	"encoding/xml"
	"io"

	"github.com/roughset/drsa/rule"
)

// xmlRuleSet is the on-wire RuleML document shape: a flat list of rules,
// each a condition conjunction plus a single disjunctive decision head
// (spec.md §6). "Disjunctive" describes the head's semantics (AT_LEAST/
// AT_MOST assert a disjunction of classes, EQUAL a single one), not its
// XML shape — the head is always one element, since rule.Rule carries
// exactly one limiting decision.
type xmlRuleSet struct {
	XMLName xml.Name   `xml:"RuleSet"`
	Rules   []xmlRule  `xml:"Rule"`
}

type xmlRule struct {
	Type       string         `xml:"type,attr"`
	Conditions []xmlCondition `xml:"Conditions>Condition"`
	Decision   xmlDecision    `xml:"Decision"`
}

type xmlCondition struct {
	Attribute string `xml:"attribute,attr"`
	Relation  string `xml:"relation,attr"`
	Phrasing  string `xml:"phrasing,attr"`
	Value     string `xml:"value,attr"`
}

type xmlDecision struct {
	Attribute string `xml:"attribute,attr"`
	Semantics string `xml:"semantics,attr"`
	Value     string `xml:"value,attr"`
}

// Encode writes rs to w as an indented RuleML/XML document.
func Encode(w io.Writer, rs rule.RuleSet) error {
	doc := xmlRuleSet{Rules: make([]xmlRule, 0, rs.Len())}
	for _, r := range rs.Rules() {
		doc.Rules = append(doc.Rules, toXMLRule(r))
	}

	enc := xml.NewEncoder(w)
	enc.Indent("", "  ")
	if err := enc.Encode(doc); err != nil {
		return err
	}
	_, err := w.Write([]byte("\n"))
	return err
}

func toXMLRule(r rule.Rule) xmlRule {
	conds := make([]xmlCondition, 0, len(r.Conditions()))
	for _, c := range r.Conditions() {
		conds = append(conds, xmlCondition{
			Attribute: c.AttributeName(),
			Relation:  c.Relation().String(),
			Phrasing:  c.Phrasing().String(),
			Value:     c.Limit().String(),
		})
	}
	return xmlRule{
		Type:       r.Type().String(),
		Conditions: conds,
		Decision: xmlDecision{
			Attribute: r.DecisionAttributeName(),
			Semantics: r.DecisionRelation().String(),
			Value:     r.LimitingDecision().String(),
		},
	}
}
