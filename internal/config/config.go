// Package config defines the data structures related to configuration and
// includes functions for loading and validating the config.
package config

import (
	"fmt"

	"github.com/spf13/viper"

	"github.com/iwvelando/mediamix-planner/pkg/constants"
)

// Configuration holds all configuration for the mediamix planner.
type Configuration struct {
	Channels   []string
	Dataset    DatasetConfig
	Simulation SimulationConfig `yaml:"simulation,omitempty"`
	Allocation AllocationConfig
	Logging    LoggingConfig `yaml:"logging,omitempty"`
	Output     OutputConfig  `yaml:"output,omitempty"`
}

// DatasetConfig describes the historical dataset, either inline observations
// or a CSV file with one column per channel plus an outcome column.
type DatasetConfig struct {
	CSVPath       string              `yaml:"csvPath,omitempty"`
	OutcomeColumn string              `yaml:"outcomeColumn,omitempty"`
	Observations  []ObservationConfig `yaml:"observations,omitempty"`
}

// ObservationConfig is one inline data point: per-channel spend plus outcome.
type ObservationConfig struct {
	Spend   map[string]float64
	Outcome float64
}

// SimulationConfig describes an illustrative synthetic dataset generated from
// known ground-truth coefficients. Weeks > 0 enables simulation.
type SimulationConfig struct {
	Weeks        int
	Baseline     float64
	Coefficients map[string]float64
	NoiseStdDev  float64 `yaml:"noiseStdDev,omitempty"`
	MaxSpend     float64 `yaml:"maxSpend,omitempty"`
	Seed         int64
}

// Enabled reports whether the configuration requests a simulated dataset.
func (s SimulationConfig) Enabled() bool {
	return s.Weeks > 0
}

// AllocationConfig holds the budget-allocation request.
type AllocationConfig struct {
	TotalBudget   float64  `yaml:"totalBudget"`
	Step          float64  `yaml:"step,omitempty"`
	Objective     string   `yaml:"objective,omitempty"`
	ExhaustBudget bool     `yaml:"exhaustBudget,omitempty"`
	Channels      []string `yaml:"channels,omitempty"`
}

// LoggingConfig holds logging configuration options
type LoggingConfig struct {
	Level      string `yaml:"level,omitempty"`      // debug, info, warn, error
	Format     string `yaml:"format,omitempty"`     // json, console
	OutputFile string `yaml:"outputFile,omitempty"` // optional file output
}

// OutputConfig holds output format configuration options
type OutputConfig struct {
	Format string `yaml:"format,omitempty"` // pretty, csv
}

// LoadConfiguration takes a file path as input and loads the YAML-formatted
// configuration there.
func LoadConfiguration(configPath string) (*Configuration, error) {
	viper.SetConfigFile(configPath)
	viper.AutomaticEnv()

	viper.SetConfigType("yml")

	if err := viper.ReadInConfig(); err != nil {
		return nil, fmt.Errorf("error reading config file, %s", err)
	}

	var configuration Configuration
	err := viper.Unmarshal(&configuration)
	if err != nil {
		return nil, fmt.Errorf("unable to decode into struct, %s", err)
	}

	configuration.ApplyDefaults()
	return &configuration, nil
}

// ApplyDefaults fills in the allocation defaults the config file may omit.
func (conf *Configuration) ApplyDefaults() {
	if conf.Allocation.Step == 0 {
		conf.Allocation.Step = constants.DefaultStep
	}
	if conf.Allocation.Objective == "" {
		conf.Allocation.Objective = constants.ObjectiveOutcome
	}
}
