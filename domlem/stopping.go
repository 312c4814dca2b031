package domlem

import "github.com/roughset/drsa/ruleconditions"

// DefaultStoppingChecker implements §4.8's stopping condition: a growing
// rule conjunction is specific enough once every object it currently covers
// is allowed, and it covers at least one object (an empty-covering
// conjunction is never a useful rule and must keep growing, or fail via
// ErrElementaryConditionNotFound).
type DefaultStoppingChecker struct{}

// IsSatisfied reports whether every currently covered object is allowed.
func (DefaultStoppingChecker) IsSatisfied(rc *ruleconditions.RuleConditions) bool {
	covered := rc.CoveredObjectsIterator()
	if len(covered) == 0 {
		return false
	}
	for _, i := range covered {
		if !rc.IsAllowed(i) {
			return false
		}
	}
	return true
}
