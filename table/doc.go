// Package table implements the column-typed, object×attribute information
// table that every other package in this module reads from.
//
// An InformationTable is built once from an attribute list and a matrix of
// row vectors and is immutable thereafter. Construction partitions the
// attribute columns into four disjoint groups — active-condition, active-
// decision, active-identification, and other (inactive or description) —
// so that a later GetField lookup is a single branch on which partition an
// attribute belongs to, followed by a direct slice index.
//
// Row projection (Select) returns a new table that shares its underlying
// field slices with the original; only the index→stable-id mapping is
// recomputed, so object identity survives arbitrary (and possibly
// repeating) row selections.
package table
