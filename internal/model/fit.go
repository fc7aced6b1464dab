package model

import (
	"fmt"
	"math"
	"sort"

	"go.uber.org/zap"
	"gonum.org/v1/gonum/mat"

	"github.com/iwvelando/mediamix-planner/pkg/constants"
)

// Fit estimates a ChannelResponseModel from observations by ordinary least
// squares. The design matrix holds an intercept column of ones plus one
// ln(spend+1) column per channel, with channels assigned to columns in sorted
// identifier order so the solve is deterministic. The solve is closed-form
// (QR); no iterative optimization is involved.
//
// Structural preconditions are checked before any numeric work: every
// observation must cover exactly the supplied channel set with non-negative
// finite spend and a finite outcome, and there must be strictly more
// observations than channels plus one.
func Fit(logger *zap.Logger, observations []Observation, channels []string) (*ChannelResponseModel, error) {
	if logger == nil {
		logger = zap.NewNop()
	}

	if len(channels) == 0 {
		return nil, fmt.Errorf("%w: no channels supplied for fitting", ErrEmptyChannelSet)
	}
	sorted := make([]string, len(channels))
	copy(sorted, channels)
	sort.Strings(sorted)

	if err := validateObservations(observations, sorted); err != nil {
		return nil, err
	}

	n := len(observations)
	k := len(sorted)
	if n <= k+1 {
		return nil, fmt.Errorf("%w: %d observations for %d channels; need at least %d",
			ErrInsufficientData, n, k, k+2)
	}

	// A constant transformed-spend column makes the normal equations singular;
	// reject it up front rather than relying on the solver's conditioning check.
	for _, channel := range sorted {
		if constantColumn(observations, channel) {
			return nil, fmt.Errorf("%w: channel %s has constant spend across all observations",
				ErrDegenerateInput, channel)
		}
	}

	design := mat.NewDense(n, k+1, nil)
	response := mat.NewDense(n, 1, nil)
	for i, obs := range observations {
		design.Set(i, 0, 1)
		for j, channel := range sorted {
			design.Set(i, j+1, math.Log(obs.Spend[channel]+1))
		}
		response.Set(i, 0, obs.Outcome)
	}

	var solution mat.Dense
	if err := solution.Solve(design, response); err != nil {
		return nil, fmt.Errorf("%w: least-squares solve failed: %v", ErrDegenerateInput, err)
	}

	fitted := &ChannelResponseModel{
		Baseline:     solution.At(0, 0),
		Coefficients: make(map[string]float64, k),
	}
	if math.IsNaN(fitted.Baseline) || math.IsInf(fitted.Baseline, 0) {
		return nil, fmt.Errorf("%w: non-finite baseline", ErrDegenerateInput)
	}
	for j, channel := range sorted {
		coefficient := solution.At(j+1, 0)
		if math.IsNaN(coefficient) || math.IsInf(coefficient, 0) {
			return nil, fmt.Errorf("%w: non-finite coefficient for channel %s", ErrDegenerateInput, channel)
		}
		fitted.Coefficients[channel] = coefficient
	}

	logger.Debug("fitted channel-response model",
		zap.String("op", "model.Fit"),
		zap.Int("observations", n),
		zap.Int("channels", k),
		zap.Float64("baseline", fitted.Baseline),
	)

	return fitted, nil
}

func validateObservations(observations []Observation, channels []string) error {
	if len(observations) == 0 {
		return fmt.Errorf("%w: no observations provided", ErrInsufficientData)
	}
	for i, obs := range observations {
		if math.IsNaN(obs.Outcome) || math.IsInf(obs.Outcome, 0) {
			return fmt.Errorf("%w: observation %d has non-finite outcome", ErrInvalidObservation, i)
		}
		if len(obs.Spend) != len(channels) {
			return fmt.Errorf("%w: observation %d covers %d channels, expected %d",
				ErrInvalidObservation, i, len(obs.Spend), len(channels))
		}
		for _, channel := range channels {
			spend, ok := obs.Spend[channel]
			if !ok {
				return fmt.Errorf("%w: observation %d is missing channel %s",
					ErrInvalidObservation, i, channel)
			}
			if math.IsNaN(spend) || math.IsInf(spend, 0) {
				return fmt.Errorf("%w: observation %d has non-finite spend for channel %s",
					ErrInvalidObservation, i, channel)
			}
			if spend < 0 {
				return fmt.Errorf("%w: observation %d has negative spend %.2f for channel %s",
					ErrInvalidObservation, i, spend, channel)
			}
		}
	}
	return nil
}

func constantColumn(observations []Observation, channel string) bool {
	first := math.Log(observations[0].Spend[channel] + 1)
	for _, obs := range observations[1:] {
		if math.Abs(math.Log(obs.Spend[channel]+1)-first) > constants.VarianceTolerance {
			return false
		}
	}
	return true
}
