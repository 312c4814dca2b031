package value

import "errors"

// Sentinel errors for malformed value construction.
var (
	// ErrEnumIndexOutOfRange indicates an Enumeration value was built with
	// an index outside its domain slice.
	ErrEnumIndexOutOfRange = errors.New("value: enumeration index out of range")

	// ErrPairSubtypeMismatch indicates NewPair was called with components
	// of two different subtypes (e.g. an Integer and a Real).
	ErrPairSubtypeMismatch = errors.New("value: pair components have mismatched subtypes")

	// ErrPairComponentNotOrdered indicates NewPair was called with a
	// component that is itself a Pair or Missing value.
	ErrPairComponentNotOrdered = errors.New("value: pair components must be simple ordered values")
)
