package domlem

import (
	"log/slog"

	"github.com/roughset/drsa/condition"
	"github.com/roughset/drsa/consistency"
	"github.com/roughset/drsa/ruleconditions"
)

// MonotonicityType declares how a condition-addition evaluator's value
// moves as a candidate condition admits more objects into coverage.
type MonotonicityType int

const (
	// ImprovesWithCoverage: the evaluator's value gets better (per its
	// Sense) as the number of covered objects grows.
	ImprovesWithCoverage MonotonicityType = iota
	// DeterioratesWithCoverage: the evaluator's value gets worse as the
	// number of covered objects grows.
	DeterioratesWithCoverage
)

func (m MonotonicityType) String() string {
	if m == ImprovesWithCoverage {
		return "IMPROVES_WITH_COVERAGE"
	}
	return "DETERIORATES_WITH_COVERAGE"
}

// Evaluator is a monotonic condition-addition evaluator (§4.7): a function
// of a candidate condition's hypothetical covered-object set, used by the
// condition generator to rank candidates lexicographically. covered is the
// subset of consideredObjects that would remain covered if the candidate
// were added to rc.
type Evaluator interface {
	// Name identifies the evaluator for diagnostics.
	Name() string
	// Sense reports whether higher or lower values are better.
	Sense() consistency.Sense
	// Monotonicity reports how this evaluator's value moves as coverage
	// grows; the generator uses this to decide which extreme value to
	// search from and whether a less-extreme scan is required.
	Monotonicity() MonotonicityType
	// Evaluate computes this evaluator's value for the hypothetical
	// covered set, given the owning RuleConditions for positive/allowed
	// lookups.
	Evaluate(covered []int, rc *ruleconditions.RuleConditions) float64
}

// betterOrEqual reports whether value a is at least as good as value b
// under sense s (a >= b for Gain, a <= b for Cost).
func betterOrEqual(a, b float64, s consistency.Sense) bool {
	if s == consistency.Gain {
		return a >= b
	}
	return a <= b
}

// strictlyBetter reports whether a is strictly better than b under s.
func strictlyBetter(a, b float64, s consistency.Sense) bool {
	if s == consistency.Gain {
		return a > b
	}
	return a < b
}

// StoppingChecker decides whether a growing RuleConditions conjunction is
// already specific enough to stop adding conditions.
type StoppingChecker interface {
	IsSatisfied(rc *ruleconditions.RuleConditions) bool
}

// ConditionPruner removes redundant conditions from a finished
// RuleConditions without losing the property that it still satisfies the
// stopping checker.
type ConditionPruner interface {
	Prune(rc *ruleconditions.RuleConditions, stopping StoppingChecker) (*ruleconditions.RuleConditions, error)
}

// RuleSetPruner drops whole rules from a per-union emitted list whose
// removal still leaves every object in base0 covered by some remaining
// rule.
type RuleSetPruner interface {
	Prune(rules []*ruleconditions.RuleConditions, base0 []int) []*ruleconditions.RuleConditions
}

// MinimalityChecker decides whether a newly emitted rule is minimal with
// respect to a set of already-accepted rules.
type MinimalityChecker interface {
	IsMinimal(candidate *ruleconditions.RuleConditions, accepted []*ruleconditions.RuleConditions, evaluators []Evaluator) bool
}

// Telemetry receives optional induction-progress signals. A nil Telemetry
// is always safe for Induce/InduceRulesWithCharacteristics to call through a
// helper that no-ops on nil, so induction behavior never depends on it.
type Telemetry interface {
	ObserveObjectsProcessed(n int)
	ObserveRuleInduced(ruleType condition.RuleType, conditionCount int)
}

// Options configures one induction run. The zero value is not directly
// usable; build one with DefaultOptions and the With* functions.
type Options struct {
	Measures   []consistency.Measure
	Thresholds []float64

	Evaluators        []Evaluator
	StoppingChecker   StoppingChecker
	ConditionPruner   ConditionPruner
	RuleSetPruner     RuleSetPruner
	MinimalityChecker MinimalityChecker

	Logger    *slog.Logger
	Telemetry Telemetry
}

// Option is a functional option over Options, following the same pattern
// as this module's other configurable algorithms.
type Option func(*Options)

// DefaultOptions returns the classical (non-variable-consistency) default
// configuration: the standard consistency-then-coverage evaluator pair,
// FIFO condition pruning, base-set-coverage rule-set pruning, and
// subset-domination minimality checking.
func DefaultOptions() Options {
	return Options{
		Evaluators:        DefaultEvaluators(),
		StoppingChecker:   DefaultStoppingChecker{},
		ConditionPruner:   FIFOConditionPruner{},
		RuleSetPruner:     DefaultRuleSetPruner{},
		MinimalityChecker: DefaultMinimalityChecker{},
		Logger:            slog.Default(),
	}
}

// WithConsistencyThreshold switches Induce to the variable-consistency
// calculator, admitting an object to Lower(U) when EpsilonMeasure's value
// is at most threshold (EpsilonMeasure is a Cost measure; see package
// consistency). This is the functional-option mirror of spec.md §6's
// `induceRules(table, consistencyThreshold)` entry point.
func WithConsistencyThreshold(threshold float64) Option {
	return WithMeasure(consistency.EpsilonMeasure{}, threshold)
}

// WithMeasure appends an additional variable-consistency measure and its
// threshold. Configuring at least one measure switches every union Induce
// builds from NewUnion to NewVCUnion.
func WithMeasure(m consistency.Measure, threshold float64) Option {
	return func(o *Options) {
		o.Measures = append(o.Measures, m)
		o.Thresholds = append(o.Thresholds, threshold)
	}
}

// WithEvaluators overrides the condition generator's evaluator list.
func WithEvaluators(evaluators ...Evaluator) Option {
	return func(o *Options) { o.Evaluators = evaluators }
}

// WithStoppingChecker overrides the stopping-condition checker.
func WithStoppingChecker(s StoppingChecker) Option {
	return func(o *Options) { o.StoppingChecker = s }
}

// WithConditionPruner overrides the condition pruner.
func WithConditionPruner(p ConditionPruner) Option {
	return func(o *Options) { o.ConditionPruner = p }
}

// WithRuleSetPruner overrides the rule-set pruner.
func WithRuleSetPruner(p RuleSetPruner) Option {
	return func(o *Options) { o.RuleSetPruner = p }
}

// WithMinimalityChecker overrides the minimality checker.
func WithMinimalityChecker(c MinimalityChecker) Option {
	return func(o *Options) { o.MinimalityChecker = c }
}

// WithLogger overrides the default logger (slog.Default()).
func WithLogger(l *slog.Logger) Option {
	return func(o *Options) { o.Logger = l }
}

// WithTelemetry attaches an optional metrics collector.
func WithTelemetry(t Telemetry) Option {
	return func(o *Options) { o.Telemetry = t }
}

func (o Options) logger() *slog.Logger {
	if o.Logger != nil {
		return o.Logger
	}
	return slog.Default()
}

func (o Options) observeObjectsProcessed(n int) {
	if o.Telemetry != nil {
		o.Telemetry.ObserveObjectsProcessed(n)
	}
}

func (o Options) observeRuleInduced(ruleType condition.RuleType, conditionCount int) {
	if o.Telemetry != nil {
		o.Telemetry.ObserveRuleInduced(ruleType, conditionCount)
	}
}
