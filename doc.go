// Package drsa is a Dominance-based Rough Set Approach toolkit: given a
// preference-ordered information table, it computes upward/downward
// unions of decision classes, their classical or variable-consistency
// rough approximations, and induces a minimal cover of "if...then"
// decision rules over them with VC-DomLEM.
//
// The algorithmic core is organized as a pipeline of subpackages:
//
//	value/          — ordered field values (Integer, Real, Enumeration, Pair) and missing-value handling
//	table/          — InformationTable: attributes, objects, decisions
//	dominance/      — dominance cones over a table's condition attributes
//	consistency/    — variable-consistency measures (epsilon, ...)
//	approximation/  — unions of classes and their lower/upper rough approximations
//	ruleconditions/ — growable elementary-condition conjunctions
//	condition/      — a single elementary condition (attribute, relation, limit)
//	domlem/         — the VC-DomLEM induction algorithm
//	rule/           — induced Rule/RuleSet and their quality characteristics
//
// Ambient collaborators sit alongside the core:
//
//	dataio/    — attribute-schema and object-table ingestion (JSON/CSV)
//	ruleml/    — RuleML/XML rule-set serialization
//	telemetry/ — optional Prometheus metrics + run-correlated logging
//	cmd/drsa/  — a cobra CLI wiring the above into a single induce command
package drsa
