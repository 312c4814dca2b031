// Package ruleconditions implements the incremental coverage bookkeeping
// behind a growing rule: an ordered list of conditions plus, for every
// object in the owning table, a counter of how many of those conditions it
// fails to satisfy. An object is covered exactly when its counter is zero.
//
// Add and remove are both amortized O(N) in the number of objects — not
// O(N*conditions) — because each operation only visits every object once,
// adjusting its counter and, where the counter crosses the 0/1 boundary,
// its membership in the covered-objects set. Counter monotonicity (adding
// a condition can only increase a counter; removing it can only decrease
// the same counter back) guarantees add/remove correctness regardless of
// the order conditions are removed in.
//
// NewWithContext additionally attaches the four object sets a sequential
// coverer needs while growing one rule's conditions: positives (the
// decision rule's target objects), base (the generator's starting object
// set — Lower/Upper/Boundary depending on rule type), allowed (objects a
// rule may legally cover without being penalized for inconsistency), and
// neutral (objects with an uncomparable decision). These never change
// after construction; only the conjunction and its coverage bookkeeping
// are mutable.
package ruleconditions
