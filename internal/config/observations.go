package config

import (
	"fmt"
	"sort"

	"go.uber.org/zap"

	"github.com/iwvelando/mediamix-planner/internal/dataset"
	"github.com/iwvelando/mediamix-planner/internal/model"
)

// BuildObservations materializes the historical dataset from whichever source
// the configuration provides, with precedence inline observations, then CSV,
// then simulation. It returns the observations together with the sorted
// channel identifiers they cover.
func (conf *Configuration) BuildObservations(logger *zap.Logger) ([]model.Observation, []string, error) {
	if logger == nil {
		logger = zap.NewNop()
	}

	channels := conf.ResolveChannels()

	switch {
	case len(conf.Dataset.Observations) > 0:
		if len(channels) == 0 {
			return nil, nil, fmt.Errorf("inline observations require an explicit channels list")
		}
		observations := make([]model.Observation, len(conf.Dataset.Observations))
		for i, obs := range conf.Dataset.Observations {
			observations[i] = model.Observation{
				Week:    i + 1,
				Spend:   obs.Spend,
				Outcome: obs.Outcome,
			}
		}
		logger.Debug("using inline observations",
			zap.String("op", "config.BuildObservations"),
			zap.Int("observations", len(observations)),
		)
		return observations, channels, nil

	case conf.Dataset.CSVPath != "":
		if len(channels) == 0 {
			return nil, nil, fmt.Errorf("CSV datasets require an explicit channels list")
		}
		observations, err := dataset.LoadCSV(conf.Dataset.CSVPath, channels, conf.Dataset.OutcomeColumn)
		if err != nil {
			return nil, nil, err
		}
		logger.Debug("loaded CSV observations",
			zap.String("op", "config.BuildObservations"),
			zap.String("path", conf.Dataset.CSVPath),
			zap.Int("observations", len(observations)),
		)
		return observations, channels, nil

	case conf.Simulation.Enabled():
		observations, err := dataset.Simulate(dataset.SimulationConfig{
			Weeks:        conf.Simulation.Weeks,
			Baseline:     conf.Simulation.Baseline,
			Coefficients: conf.Simulation.Coefficients,
			NoiseStdDev:  conf.Simulation.NoiseStdDev,
			MaxSpend:     conf.Simulation.MaxSpend,
			Seed:         conf.Simulation.Seed,
		})
		if err != nil {
			return nil, nil, err
		}
		logger.Debug("simulated observations",
			zap.String("op", "config.BuildObservations"),
			zap.Int("weeks", conf.Simulation.Weeks),
			zap.Int64("seed", conf.Simulation.Seed),
		)
		return observations, channels, nil
	}

	return nil, nil, fmt.Errorf("configuration provides no dataset: set inline observations, a csvPath, or a simulation")
}

// ResolveChannels returns the channel identifiers the plan operates on, in
// sorted order. An explicit channels list wins; otherwise the channels are
// derived from the simulation coefficients.
func (conf *Configuration) ResolveChannels() []string {
	channels := conf.Channels
	if len(channels) == 0 && conf.Simulation.Enabled() {
		for channel := range conf.Simulation.Coefficients {
			channels = append(channels, channel)
		}
	}
	sorted := append([]string(nil), channels...)
	sort.Strings(sorted)
	return sorted
}
