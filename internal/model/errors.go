package model

import "errors"

// Fitting errors. All are detected before or during the least-squares solve and
// returned wrapped with context; Fit never returns non-finite coefficients
// without signaling one of these.
var (
	// ErrInvalidObservation indicates an observation with negative spend, a
	// non-finite value, or a spend map that does not cover the channel set.
	ErrInvalidObservation = errors.New("invalid observation")

	// ErrInsufficientData indicates too few observations to determine the
	// model coefficients.
	ErrInsufficientData = errors.New("insufficient data")

	// ErrDegenerateInput indicates a rank-deficient design matrix, typically
	// caused by a channel whose spend is constant across all observations.
	ErrDegenerateInput = errors.New("degenerate input")

	// ErrEmptyChannelSet indicates that no channels were supplied.
	ErrEmptyChannelSet = errors.New("empty channel set")

	// ErrUnknownChannel indicates a channel with no fitted coefficient.
	ErrUnknownChannel = errors.New("unknown channel")
)
