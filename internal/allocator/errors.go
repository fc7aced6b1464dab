package allocator

import "errors"

// Allocation errors, surfaced before the grid enumeration begins.
var (
	// ErrNoFeasibleAllocation indicates that no spend tuple on the step grid
	// can sum exactly to the total budget.
	ErrNoFeasibleAllocation = errors.New("no feasible allocation")

	// ErrUnknownChannel indicates a requested channel the model has no
	// coefficient for.
	ErrUnknownChannel = errors.New("unknown channel")

	// ErrEmptyChannelSet indicates that zero channels were supplied.
	ErrEmptyChannelSet = errors.New("empty channel set")
)
