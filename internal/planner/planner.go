// Package planner runs the full planning pipeline shared by the CLI and the
// HTTP server: materialize the dataset, fit the channel-response model, and
// search for the best budget allocation.
package planner

import (
	"time"

	"go.uber.org/zap"

	"github.com/iwvelando/mediamix-planner/internal/allocator"
	"github.com/iwvelando/mediamix-planner/internal/config"
	"github.com/iwvelando/mediamix-planner/internal/model"
)

// Plan holds the outputs of one planning run.
type Plan struct {
	Model        *model.ChannelResponseModel
	Allocation   *allocator.Result
	Objective    string
	Channels     []string
	Observations int
	Elapsed      time.Duration
}

// Run executes the pipeline for the given configuration.
func Run(logger *zap.Logger, conf config.Configuration) (*Plan, error) {
	if logger == nil {
		logger = zap.NewNop()
	}
	start := time.Now()

	observations, channels, err := conf.BuildObservations(logger)
	if err != nil {
		return nil, err
	}

	fitted, err := model.Fit(logger, observations, channels)
	if err != nil {
		return nil, err
	}

	allocation, err := allocator.Optimize(logger, fitted, allocator.Params{
		TotalBudget:   conf.Allocation.TotalBudget,
		Step:          conf.Allocation.Step,
		Objective:     allocator.Objective(conf.Allocation.Objective),
		ExhaustBudget: conf.Allocation.ExhaustBudget,
		Channels:      conf.Allocation.Channels,
	})
	if err != nil {
		return nil, err
	}

	plan := &Plan{
		Model:        fitted,
		Allocation:   allocation,
		Objective:    conf.Allocation.Objective,
		Channels:     channels,
		Observations: len(observations),
		Elapsed:      time.Since(start),
	}

	logger.Info("plan computed",
		zap.String("op", "planner.Run"),
		zap.Int("observations", plan.Observations),
		zap.Int("channels", len(channels)),
		zap.Float64("score", allocation.Score),
		zap.Duration("elapsed", plan.Elapsed),
	)

	return plan, nil
}
