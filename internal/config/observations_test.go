package config

import (
	"os"
	"path/filepath"
	"testing"

	"go.uber.org/zap"
)

func TestBuildObservationsInline(t *testing.T) {
	logger, _ := zap.NewDevelopment()
	conf := Configuration{
		Channels: []string{"social", "search"},
		Dataset: DatasetConfig{
			Observations: []ObservationConfig{
				{Spend: map[string]float64{"search": 10, "social": 20}, Outcome: 550},
				{Spend: map[string]float64{"search": 30, "social": 5}, Outcome: 560},
			},
		},
	}

	observations, channels, err := conf.BuildObservations(logger)
	if err != nil {
		t.Fatalf("BuildObservations() error = %v", err)
	}
	if len(observations) != 2 {
		t.Fatalf("BuildObservations() returned %d observations, expected 2", len(observations))
	}
	if observations[0].Week != 1 || observations[1].Week != 2 {
		t.Errorf("weeks = (%d, %d), expected (1, 2)", observations[0].Week, observations[1].Week)
	}
	if len(channels) != 2 || channels[0] != "search" || channels[1] != "social" {
		t.Errorf("channels = %v, expected sorted [search social]", channels)
	}
}

func TestBuildObservationsPrecedence(t *testing.T) {
	logger, _ := zap.NewDevelopment()

	// Inline observations win over a configured simulation.
	conf := Configuration{
		Channels: []string{"search"},
		Dataset: DatasetConfig{
			Observations: []ObservationConfig{
				{Spend: map[string]float64{"search": 10}, Outcome: 550},
			},
		},
		Simulation: SimulationConfig{
			Weeks:        52,
			Baseline:     500,
			Coefficients: map[string]float64{"search": 20},
			MaxSpend:     100,
		},
	}

	observations, _, err := conf.BuildObservations(logger)
	if err != nil {
		t.Fatalf("BuildObservations() error = %v", err)
	}
	if len(observations) != 1 {
		t.Errorf("BuildObservations() returned %d observations, expected the 1 inline row", len(observations))
	}
}

func TestBuildObservationsSimulation(t *testing.T) {
	logger, _ := zap.NewDevelopment()
	conf := Configuration{
		Simulation: SimulationConfig{
			Weeks:        26,
			Baseline:     500,
			Coefficients: map[string]float64{"social": 5, "search": 20},
			MaxSpend:     100,
			Seed:         42,
		},
	}

	observations, channels, err := conf.BuildObservations(logger)
	if err != nil {
		t.Fatalf("BuildObservations() error = %v", err)
	}
	if len(observations) != 26 {
		t.Errorf("BuildObservations() returned %d observations, expected 26", len(observations))
	}
	// Channels derive from the simulation coefficients when unset.
	if len(channels) != 2 || channels[0] != "search" || channels[1] != "social" {
		t.Errorf("channels = %v, expected sorted [search social]", channels)
	}
}

func TestBuildObservationsCSV(t *testing.T) {
	logger, _ := zap.NewDevelopment()
	path := filepath.Join(t.TempDir(), "spend.csv")
	if err := os.WriteFile(path, []byte("search,revenue\n10,550\n30,560\n"), 0644); err != nil {
		t.Fatalf("failed to write dataset: %v", err)
	}

	conf := Configuration{
		Channels: []string{"search"},
		Dataset:  DatasetConfig{CSVPath: path, OutcomeColumn: "revenue"},
	}

	observations, channels, err := conf.BuildObservations(logger)
	if err != nil {
		t.Fatalf("BuildObservations() error = %v", err)
	}
	if len(observations) != 2 {
		t.Errorf("BuildObservations() returned %d observations, expected 2", len(observations))
	}
	if len(channels) != 1 || channels[0] != "search" {
		t.Errorf("channels = %v, expected [search]", channels)
	}
}

func TestBuildObservationsErrors(t *testing.T) {
	logger, _ := zap.NewDevelopment()

	tests := []struct {
		name string
		conf Configuration
	}{
		{
			name: "No dataset source",
			conf: Configuration{Channels: []string{"search"}},
		},
		{
			name: "Inline without channels",
			conf: Configuration{
				Dataset: DatasetConfig{
					Observations: []ObservationConfig{
						{Spend: map[string]float64{"search": 10}, Outcome: 550},
					},
				},
			},
		},
		{
			name: "CSV without channels",
			conf: Configuration{
				Dataset: DatasetConfig{CSVPath: "spend.csv", OutcomeColumn: "revenue"},
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, _, err := tt.conf.BuildObservations(logger); err == nil {
				t.Errorf("BuildObservations() expected error, got nil")
			}
		})
	}
}
