// Package validation provides common validation utilities.
package validation

import (
	"fmt"

	"github.com/iwvelando/mediamix-planner/pkg/constants"
)

// ValidateOutputFormat checks if the output format is one of the supported formats.
func ValidateOutputFormat(format string) error {
	if format != constants.OutputFormatPretty && format != constants.OutputFormatCSV {
		return fmt.Errorf("expected output format of %s or %s, got %s",
			constants.OutputFormatPretty, constants.OutputFormatCSV, format)
	}
	return nil
}

// ValidateObjective checks if the objective is one of the supported objectives.
func ValidateObjective(objective string) error {
	if objective != constants.ObjectiveOutcome && objective != constants.ObjectiveProfit {
		return fmt.Errorf("expected objective of %s or %s, got %s",
			constants.ObjectiveOutcome, constants.ObjectiveProfit, objective)
	}
	return nil
}
