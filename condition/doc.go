// Package condition implements the elementary-condition sum type used as
// the building block of induced rules: a relation ({AtLeast, AtMost,
// Equal}) applied between an object's evaluation on one attribute and a
// limiting value, in one of two phrasings.
//
// ThresholdVsObject reads "attribute q of x is at least/at most/equal to
// t" — the phrasing certain rules use. ObjectVsThreshold swaps the roles,
// asserting "t is at least/at most/equal to attribute q of x" — the
// phrasing possible rules need, where the limiting value's existence
// (rather than the object's) is what the rule asserts.
//
// A single satisfiedBy interpreter covers every combination; there is no
// inheritance hierarchy of condition subtypes.
package condition
