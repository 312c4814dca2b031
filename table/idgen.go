package table

import "sync/atomic"

// nextObjectID is the process-wide monotonic counter backing every
// InformationTable's stable object ids. It is shared across all tables in
// the process so that ids remain globally unique even when multiple tables
// are built concurrently; callers never need to synchronize around it.
var nextObjectID uint64

// newObjectID atomically reserves and returns the next globally unique
// object id. Safe for concurrent callers.
func newObjectID() uint64 {
	return atomic.AddUint64(&nextObjectID, 1)
}
