package ruleconditions

import "errors"

// ErrConditionIndexOutOfRange is returned by RemoveCondition when given an
// index outside [0, Len()).
var ErrConditionIndexOutOfRange = errors.New("ruleconditions: condition index out of range")
