package dataset

import (
	"encoding/csv"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/iwvelando/mediamix-planner/internal/model"
)

// LoadCSV reads a tabular dataset: a header row naming the columns, then one
// row per time period. Each channel identifier must match a column, as must
// outcomeColumn; extra columns are ignored. Rows become observations in file
// order, week-indexed from 1.
func LoadCSV(path string, channels []string, outcomeColumn string) ([]model.Observation, error) {
	if len(channels) == 0 {
		return nil, fmt.Errorf("no channels specified for CSV dataset %s", path)
	}
	if outcomeColumn == "" {
		return nil, fmt.Errorf("no outcome column specified for CSV dataset %s", path)
	}

	file, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open dataset %s: %w", path, err)
	}
	defer func() {
		_ = file.Close()
	}()

	reader := csv.NewReader(file)
	records, err := reader.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("failed to read dataset %s: %w", path, err)
	}
	if len(records) < 2 {
		return nil, fmt.Errorf("dataset %s has no data rows", path)
	}

	header := records[0]
	columns := make(map[string]int, len(header))
	for i, name := range header {
		columns[strings.TrimSpace(name)] = i
	}
	for _, channel := range channels {
		if _, ok := columns[channel]; !ok {
			return nil, fmt.Errorf("dataset %s has no column for channel %s", path, channel)
		}
	}
	outcomeIndex, ok := columns[outcomeColumn]
	if !ok {
		return nil, fmt.Errorf("dataset %s has no outcome column %s", path, outcomeColumn)
	}

	observations := make([]model.Observation, 0, len(records)-1)
	for row, record := range records[1:] {
		spend := make(map[string]float64, len(channels))
		for _, channel := range channels {
			value, err := strconv.ParseFloat(strings.TrimSpace(record[columns[channel]]), 64)
			if err != nil {
				return nil, fmt.Errorf("dataset %s row %d: invalid spend for channel %s: %w",
					path, row+2, channel, err)
			}
			spend[channel] = value
		}
		outcome, err := strconv.ParseFloat(strings.TrimSpace(record[outcomeIndex]), 64)
		if err != nil {
			return nil, fmt.Errorf("dataset %s row %d: invalid outcome: %w", path, row+2, err)
		}
		observations = append(observations, model.Observation{
			Week:    row + 1,
			Spend:   spend,
			Outcome: outcome,
		})
	}
	return observations, nil
}
