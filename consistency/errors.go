package consistency

import "errors"

// ErrUnsupportedUnionType is returned by measures that only know how to
// derive a counting cone for AtLeast/AtMost unions when given any other
// UnionType value.
var ErrUnsupportedUnionType = errors.New("consistency: unsupported union type")
