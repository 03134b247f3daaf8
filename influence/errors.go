package influence

import "errors"

// Sentinel errors for influence map construction. Dimension mismatches
// on Reset and out-of-range access are precondition violations (spec:
// programmer bug) and panic instead of returning one of these.
var (
	// ErrAllocation indicates the field buffer could not be allocated.
	ErrAllocation = errors.New("influence: failed to allocate field buffer")
)
