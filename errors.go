package ift

import "errors"

// Error kinds shared by every package of the module. Package-level sentinels wrap
// exactly one of them, so callers can branch on the kind with errors.Is.
var (
	// ErrConfiguration reports invalid input detected at an API boundary:
	// dimension mismatches, empty seed sets, out-of-range parameters.
	// Nothing is mutated when it is returned.
	ErrConfiguration = errors.New("ift: configuration error")

	// ErrResource reports that a run cannot be sized: the node count does not fit
	// the node type, the arrays exceed the configured memory limit, or the
	// scheduler cost range exceeds its bucket budget.
	ErrResource = errors.New("ift: resource error")

	// ErrLogic reports API misuse: reusing a settled engine without Reset,
	// inserting a queued node twice, removing from an empty scheduler.
	ErrLogic = errors.New("ift: logic error")
)
