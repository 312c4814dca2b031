package approximation

import "errors"

var (
	// ErrDecisionAttributeNotOrdered is returned when a Union is built
	// against a table whose active decision attribute carries no
	// preference direction (an unordered decision cannot be compared
	// against a limiting value).
	ErrDecisionAttributeNotOrdered = errors.New("approximation: decision attribute has no preference direction")

	// ErrNoActiveDecision is returned when a Union is built against a
	// table with no active decision attribute.
	ErrNoActiveDecision = errors.New("approximation: table has no active decision attribute")

	// ErrNoMeasures is returned by NewVCUnion when called with zero
	// consistency measures.
	ErrNoMeasures = errors.New("approximation: variable-consistency union requires at least one measure")

	// ErrMeasureThresholdCountMismatch is returned by NewVCUnion when the
	// measures and thresholds slices have different lengths.
	ErrMeasureThresholdCountMismatch = errors.New("approximation: measure count does not match threshold count")

	// ErrComplementaryUnionAlreadySet is returned by SetComplementaryUnion
	// once the receiver's upper approximation has already been read.
	ErrComplementaryUnionAlreadySet = errors.New("approximation: upper approximation already materialized")
)
