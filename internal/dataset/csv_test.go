package dataset

import (
	"os"
	"path/filepath"
	"testing"
)

func writeDataset(t *testing.T, contents string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "spend.csv")
	if err := os.WriteFile(path, []byte(contents), 0644); err != nil {
		t.Fatalf("failed to write dataset: %v", err)
	}
	return path
}

func TestLoadCSV(t *testing.T) {
	path := writeDataset(t, "week,search,social,revenue\n1,10,20,550.5\n2,30,5,560\n3,50,45,580.25\n")

	observations, err := LoadCSV(path, []string{"search", "social"}, "revenue")
	if err != nil {
		t.Fatalf("LoadCSV() error = %v", err)
	}
	if len(observations) != 3 {
		t.Fatalf("LoadCSV() returned %d observations, expected 3", len(observations))
	}

	first := observations[0]
	if first.Week != 1 {
		t.Errorf("first observation week = %d, expected 1", first.Week)
	}
	if first.Spend["search"] != 10 || first.Spend["social"] != 20 {
		t.Errorf("first observation spend = %v, expected search=10 social=20", first.Spend)
	}
	if first.Outcome != 550.5 {
		t.Errorf("first observation outcome = %.2f, expected 550.5", first.Outcome)
	}
	if observations[2].Outcome != 580.25 {
		t.Errorf("third observation outcome = %.2f, expected 580.25", observations[2].Outcome)
	}
}

func TestLoadCSVErrors(t *testing.T) {
	valid := "search,social,revenue\n10,20,550\n"

	tests := []struct {
		name     string
		contents string
		channels []string
		outcome  string
	}{
		{
			name:     "Missing channel column",
			contents: valid,
			channels: []string{"search", "tv"},
			outcome:  "revenue",
		},
		{
			name:     "Missing outcome column",
			contents: valid,
			channels: []string{"search", "social"},
			outcome:  "profit",
		},
		{
			name:     "No data rows",
			contents: "search,social,revenue\n",
			channels: []string{"search", "social"},
			outcome:  "revenue",
		},
		{
			name:     "Invalid spend value",
			contents: "search,social,revenue\nten,20,550\n",
			channels: []string{"search", "social"},
			outcome:  "revenue",
		},
		{
			name:     "Invalid outcome value",
			contents: "search,social,revenue\n10,20,lots\n",
			channels: []string{"search", "social"},
			outcome:  "revenue",
		},
		{
			name:     "No channels",
			contents: valid,
			channels: nil,
			outcome:  "revenue",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			path := writeDataset(t, tt.contents)
			if _, err := LoadCSV(path, tt.channels, tt.outcome); err == nil {
				t.Errorf("LoadCSV() expected error, got nil")
			}
		})
	}
}

func TestLoadCSVMissingFile(t *testing.T) {
	if _, err := LoadCSV(filepath.Join(t.TempDir(), "absent.csv"), []string{"search"}, "revenue"); err == nil {
		t.Errorf("LoadCSV() expected error for missing file, got nil")
	}
}
