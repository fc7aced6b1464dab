// Package model defines the channel-response data structures and fits the
// additive log-linear response model from historical observations.
package model

import (
	"fmt"
	"math"
	"sort"
)

// Observation is one historical data point: per-channel spend for a week plus
// the observed outcome (e.g. revenue). Observations are immutable once
// recorded.
type Observation struct {
	Week    int
	Spend   map[string]float64
	Outcome float64
}

// ChannelResponseModel is the fitted artifact:
//
//	outcome = Baseline + sum_c Coefficients[c] * ln(spend_c + 1)
//
// Coefficients carries an entry for every channel present in the training
// observations. The model is immutable after fitting and is consumed
// read-only by the allocator and by external rendering code.
type ChannelResponseModel struct {
	Baseline     float64
	Coefficients map[string]float64
}

// Channels returns the model's channel identifiers in sorted order.
func (m *ChannelResponseModel) Channels() []string {
	channels := make([]string, 0, len(m.Coefficients))
	for channel := range m.Coefficients {
		channels = append(channels, channel)
	}
	sort.Strings(channels)
	return channels
}

// Predict evaluates the fitted response at the given per-channel spend.
// Channels absent from the spend map contribute nothing; spend on a channel
// the model was not trained on fails with ErrUnknownChannel.
func (m *ChannelResponseModel) Predict(spend map[string]float64) (float64, error) {
	outcome := m.Baseline
	for channel, amount := range spend {
		coefficient, ok := m.Coefficients[channel]
		if !ok {
			return 0, fmt.Errorf("%w: %s", ErrUnknownChannel, channel)
		}
		outcome += coefficient * math.Log(amount+1)
	}
	return outcome, nil
}
