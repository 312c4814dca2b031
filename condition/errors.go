package condition

import "errors"

// ErrUnsupportedRelation is returned by Construct when asked to build a
// condition for a Relation/Phrasing/UnionType/PreferenceType combination
// that has no defined mapping.
var ErrUnsupportedRelation = errors.New("condition: unsupported relation combination")
