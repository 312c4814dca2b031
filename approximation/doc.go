// Package approximation builds ordered-class unions ("at least class k" /
// "at most class k") over an information table and computes their rough
// approximations — classical and variable-consistency — plus the region
// algebra (positive/negative/boundary) derived from those approximations.
//
// A Union classifies every table object into exactly one of three
// categories with respect to a limiting decision: member (belongs to the
// union), neutral (its decision is uncomparable with the limiting
// decision), or negative (belongs to the complement). NewUnion builds the
// classical variant; NewVCUnion additionally takes a set of consistency
// measures and thresholds and switches Lower's admission rule from cone
// containment to "every measure satisfies its threshold" — per spec.md
// §9's note that the classical/VC split collapses to one interface with
// two configurations rather than a type hierarchy, this package models
// both with the same Union type, distinguished only by whether measures
// are configured.
//
// Lower, Upper, Boundary, and the three regions are each computed once, on
// first read, and cached for the Union's lifetime, matching the
// OnceCell-style memoization spec.md §9 prescribes for every lazy
// aggregate in this system.
package approximation
