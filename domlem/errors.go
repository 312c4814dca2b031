package domlem

import "errors"

var (
	// ErrElementaryConditionNotFound is returned by the condition generator
	// when no active-condition attribute yields a candidate strictly
	// narrowing the current rule conditions — a NotFound condition the
	// induction loop recovers from locally by ending the current rule.
	ErrElementaryConditionNotFound = errors.New("domlem: condition generator found no candidate condition")

	// ErrNoEvaluators is returned when a condition generator is configured
	// with zero condition-addition evaluators.
	ErrNoEvaluators = errors.New("domlem: condition generator requires at least one evaluator")

	// ErrEvaluatorMonotonicitySwitchedTwice is returned when the configured
	// evaluator list's monotonicity type changes more than once walking the
	// list in order, violating §4.7's validation contract.
	ErrEvaluatorMonotonicitySwitchedTwice = errors.New("domlem: evaluator list switches monotonicity type more than once")

	// ErrNoActiveConditionAttributes is returned when a table has no active
	// condition attributes for the generator to search over.
	ErrNoActiveConditionAttributes = errors.New("domlem: table has no active condition attributes")
)
