package linkage

import "errors"

// Fatal conditions. Both abort the current operation before any write; the
// link keeps its previous state. Recoverable conditions are reported as
// Diagnostic values instead.
var (
	// ErrZeroLengthAxis reports a joint axis vector of zero length. A zero
	// axis is never silently normalized to a default.
	ErrZeroLengthAxis = errors.New("linkage: joint axis has zero length")

	// ErrAmbiguousChild reports that resolving a joint's child reference
	// yielded zero or multiple links.
	ErrAmbiguousChild = errors.New("linkage: child link resolution is ambiguous")
)
