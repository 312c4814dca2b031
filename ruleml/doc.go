// Package ruleml serializes an induced rule.RuleSet to RuleML/XML, the
// rule-serialization collaborator spec.md §1/§6 names as deliberately out
// of the algorithmic core's scope: each rule's condition conjunction, its
// disjunctive decision head, its rule type (CERTAIN/POSSIBLE/APPROXIMATE),
// and its decision semantics (AT_LEAST/AT_MOST/EQUAL).
//
// Encoding is one-way (induced rules out); this package has no decoder,
// since nothing in this module's scope ever reads rules back in.
package ruleml
