package rule

import "errors"

var (
	// ErrEmptyConditions is returned when constructing a Rule with no
	// conditions — a rule with no LHS is never meaningful, since it would
	// be satisfied by every object.
	ErrEmptyConditions = errors.New("rule: a rule requires at least one condition")

	// ErrRuleCharacteristicsLengthMismatch is returned when constructing a
	// RuleSetWithCharacteristics whose rules and characteristics slices
	// differ in length.
	ErrRuleCharacteristicsLengthMismatch = errors.New("rule: rules and characteristics must have the same length")
)
