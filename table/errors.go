package table

import "errors"

// Sentinel errors returned by table construction and access. Fatal
// conditions are wrapped with fmt.Errorf at the boundary of the offending
// call; callers should match with errors.Is against these sentinels.
var (
	// ErrMultipleActiveDecisions indicates more than one attribute was
	// marked as an active decision attribute.
	ErrMultipleActiveDecisions = errors.New("table: more than one active decision attribute")

	// ErrMultipleActiveIdentifications indicates more than one attribute
	// was marked as an active identification attribute.
	ErrMultipleActiveIdentifications = errors.New("table: more than one active identification attribute")

	// ErrRowWidthMismatch indicates a row vector's length does not match
	// the number of declared attributes.
	ErrRowWidthMismatch = errors.New("table: row width does not match attribute count")

	// ErrMissingAttributeMetadata indicates an attribute was referenced
	// without having been declared in the table's attribute list.
	ErrMissingAttributeMetadata = errors.New("table: missing attribute metadata")

	// ErrAttributeIndexOutOfRange indicates an attribute index passed to
	// GetField (or similar) is outside [0, len(attributes)).
	ErrAttributeIndexOutOfRange = errors.New("table: attribute index out of range")

	// ErrObjectIndexOutOfRange indicates an object index is outside
	// [0, RowCount()).
	ErrObjectIndexOutOfRange = errors.New("table: object index out of range")

	// ErrNoActiveDecisionAttribute names the absence of an active decision
	// attribute. No function of this package returns it: GetDecision
	// reports that absence through its bool result.
	ErrNoActiveDecisionAttribute = errors.New("table: no active decision attribute declared")

	// ErrValueKindMismatch indicates a row field's value.Kind does not
	// match its attribute's declared ValueKind.
	ErrValueKindMismatch = errors.New("table: field value kind does not match attribute's declared value kind")
)
