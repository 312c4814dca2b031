// Package domlem implements the VC-DomLEM sequential-covering rule
// induction algorithm: given an ordered sequence of approximated unions
// (see package approximation), it grows one rule at a time by repeatedly
// adding the locally-best elementary condition (package condition) to a
// growing conjunction (package ruleconditions) until a stopping condition
// is met, prunes redundant conditions from the finished rule, and repeats
// over the remaining uncovered base objects until every union's base set
// is exhausted.
//
// The induction loop composes five collaborators, each independently
// swappable via Options: a condition generator (the M4-optimized search of
// §4.7, ranking candidates lexicographically by an ordered list of
// Evaluators), a stopping-condition checker, a condition pruner (FIFO:
// tries dropping the earliest-added condition first), a rule-set pruner
// (drops whole rules whose removal still leaves the base set covered), and
// a minimality checker (rejects a rule already dominated by one already
// accepted). Induce and InduceRulesWithCharacteristics are the library's two
// entry points, mirroring spec.md §6's abstract interface.
package domlem
