// Package dataset builds observation sequences for fitting, either by
// simulating a noisy log-linear response or by loading a tabular CSV file.
package dataset

import (
	"fmt"
	"math"
	"math/rand"
	"sort"

	"github.com/iwvelando/mediamix-planner/internal/model"
)

// SimulationConfig describes a synthetic weekly dataset generated from known
// ground-truth coefficients, used for illustration and for validating fits.
type SimulationConfig struct {
	Weeks        int
	Baseline     float64
	Coefficients map[string]float64
	NoiseStdDev  float64
	MaxSpend     float64
	Seed         int64
}

// Simulate generates Weeks observations. Each week draws an independent
// uniform spend in [0, MaxSpend] per channel and computes
//
//	outcome = Baseline + sum_c Coefficients[c]*ln(spend_c+1) + N(0, NoiseStdDev)
//
// from a generator seeded with Seed, so identical configs produce identical
// datasets.
func Simulate(cfg SimulationConfig) ([]model.Observation, error) {
	if cfg.Weeks <= 0 {
		return nil, fmt.Errorf("simulation requires a positive number of weeks, got %d", cfg.Weeks)
	}
	if len(cfg.Coefficients) == 0 {
		return nil, fmt.Errorf("simulation requires at least one channel coefficient")
	}
	if cfg.MaxSpend <= 0 {
		return nil, fmt.Errorf("simulation requires a positive max spend, got %.2f", cfg.MaxSpend)
	}
	if cfg.NoiseStdDev < 0 {
		return nil, fmt.Errorf("noise standard deviation must be non-negative, got %.2f", cfg.NoiseStdDev)
	}

	channels := make([]string, 0, len(cfg.Coefficients))
	for channel := range cfg.Coefficients {
		channels = append(channels, channel)
	}
	sort.Strings(channels)

	rng := rand.New(rand.NewSource(cfg.Seed))
	observations := make([]model.Observation, cfg.Weeks)
	for week := range observations {
		spend := make(map[string]float64, len(channels))
		outcome := cfg.Baseline
		for _, channel := range channels {
			amount := math.Round(rng.Float64() * cfg.MaxSpend)
			spend[channel] = amount
			outcome += cfg.Coefficients[channel] * math.Log(amount+1)
		}
		if cfg.NoiseStdDev > 0 {
			outcome += rng.NormFloat64() * cfg.NoiseStdDev
		}
		observations[week] = model.Observation{
			Week:    week + 1,
			Spend:   spend,
			Outcome: outcome,
		}
	}
	return observations, nil
}
