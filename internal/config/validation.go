package config

import (
	"fmt"

	"github.com/iwvelando/mediamix-planner/pkg/mathutil"
	"github.com/iwvelando/mediamix-planner/pkg/validation"
)

// ValidateConfiguration performs sanity checks and returns a list of warnings.
// Hard failures (no dataset at all, invalid objective) are reported when the
// plan runs; these are advance notices about configurations that will likely
// fail or behave surprisingly.
func (conf *Configuration) ValidateConfiguration() []string {
	var warnings []string

	sources := 0
	if len(conf.Dataset.Observations) > 0 {
		sources++
	}
	if conf.Dataset.CSVPath != "" {
		sources++
	}
	if conf.Simulation.Enabled() {
		sources++
	}
	if sources == 0 {
		warnings = append(warnings, "no dataset source configured (inline observations, csvPath, or simulation); planning will fail")
	}
	if sources > 1 {
		warnings = append(warnings, "multiple dataset sources configured; precedence is inline observations, then CSV, then simulation")
	}

	if conf.Dataset.CSVPath != "" && conf.Dataset.OutcomeColumn == "" {
		warnings = append(warnings, fmt.Sprintf("csvPath %s is set without an outcomeColumn", conf.Dataset.CSVPath))
	}

	if err := validation.ValidateObjective(conf.Allocation.Objective); err != nil {
		warnings = append(warnings, err.Error())
	}

	if conf.Allocation.Step > conf.Allocation.TotalBudget && conf.Allocation.TotalBudget > 0 {
		warnings = append(warnings, fmt.Sprintf("allocation step %.2f exceeds total budget %.2f; only the zero allocation is on the grid",
			conf.Allocation.Step, conf.Allocation.TotalBudget))
	}

	if conf.Allocation.ExhaustBudget && conf.Allocation.Step > 0 &&
		!mathutil.IsMultipleOf(conf.Allocation.TotalBudget, conf.Allocation.Step) {
		warnings = append(warnings, fmt.Sprintf("step %.4f does not evenly divide total budget %.2f; exhaustBudget allocation will fail",
			conf.Allocation.Step, conf.Allocation.TotalBudget))
	}

	if conf.Simulation.Enabled() && conf.Simulation.NoiseStdDev == 0 {
		warnings = append(warnings, "simulation noiseStdDev is zero; simulated outcomes will be exactly log-linear")
	}

	return warnings
}
