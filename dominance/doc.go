// Package dominance computes, for every object in an information table,
// its four dominance cones and their decision-class distributions.
//
// For object i the four cone flavors are:
//
//	PositiveStandard(i) — {j : j dominates i}, i.e. objects at least as
//	                       preference-wise good as i on every active
//	                       condition attribute.
//	NegativeStandard(i) — {j : i dominates j}.
//	PositiveInverted(i), NegativeInverted(i) — the same two relations
//	                       computed with every active condition
//	                       attribute's preference direction flipped
//	                       (gain<->cost, none unchanged). These feed the
//	                       variable-consistency measures (package
//	                       consistency), which need a cone of objects
//	                       comparable to i under the reversed criterion
//	                       sense to count inconsistent evidence.
//
// Cones and their per-object decision-class distributions are computed
// once per table, on first access, and cached for the table's lifetime —
// tables are immutable, so there is never a reason to invalidate the
// cache.
package dominance
