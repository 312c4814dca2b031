// Package rule is the immutable decision-rule model VC-DomLEM emits into:
// a Rule freezes a finished ruleconditions.RuleConditions conjunction into
// a condition list plus a decision head (an attribute, a relation, and a
// limiting value), and RuleSet is an ordered, append-only collection of
// rules. RuleSetWithCharacteristics additionally carries, per rule, the
// standard support/strength/confidence/coverage-factor/epsilon quality
// measures computed at induction time, before the rule's originating
// RuleConditions bookkeeping is discarded.
package rule
