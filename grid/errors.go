package grid

import "errors"

// Sentinel errors for grid construction. Out-of-range cell access is a
// precondition violation, not a recoverable error (spec: programmer bug,
// implementation may assert/abort), and panics instead of returning one
// of these.
var (
	// ErrEmptyDimensions indicates a grid was requested with a
	// non-positive width or height.
	ErrEmptyDimensions = errors.New("grid: width and height must be positive")
	// ErrCellCountMismatch indicates the supplied cell slice does not
	// have exactly width*height elements.
	ErrCellCountMismatch = errors.New("grid: cell slice length does not match width*height")
)
