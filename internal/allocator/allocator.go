// Package allocator searches the discretized budget simplex for the
// per-channel spend that maximizes a fitted channel-response model's
// predicted outcome or profit.
//
// The search is deliberately brute force: every spend tuple on the step grid
// is evaluated, which is exact for the small channel counts this tool targets
// but grows as O((budget/step)^(k-1)) for k channels. Past three or so the
// grid becomes impractical; the replacement strategy is a constrained
// numerical optimizer (the log-sum objective is concave under positive
// coefficients), keeping the same Params/Result contract.
package allocator

import (
	"fmt"
	"math"
	"sort"

	"go.uber.org/zap"

	"github.com/iwvelando/mediamix-planner/internal/model"
	"github.com/iwvelando/mediamix-planner/pkg/constants"
)

// Objective selects the score the allocator maximizes.
type Objective string

// Supported objectives.
const (
	// MaximizeOutcome scores candidates by predicted outcome alone.
	MaximizeOutcome Objective = constants.ObjectiveOutcome

	// MaximizeProfit scores candidates by predicted outcome minus total spend.
	MaximizeProfit Objective = constants.ObjectiveProfit
)

// Params defines one allocation request.
type Params struct {
	// TotalBudget is the spend ceiling (or exact total when ExhaustBudget).
	TotalBudget float64

	// Step is the grid increment; candidate spends are integer multiples of it.
	Step float64

	// Objective selects the score to maximize.
	Objective Objective

	// ExhaustBudget requires candidate spends to sum exactly to TotalBudget
	// rather than at most TotalBudget.
	ExhaustBudget bool

	// Channels optionally restricts allocation to a subset of the model's
	// channels. Empty means all fitted channels.
	Channels []string
}

// Result is the winning allocation.
type Result struct {
	// Spend maps each channel to its recommended spend.
	Spend map[string]float64

	// Outcome is the model's predicted outcome at the recommended spend.
	Outcome float64

	// Profit is Outcome minus the recommended total spend.
	Profit float64

	// Score is the value of the chosen objective at the recommended spend.
	Score float64

	// Tied reports that more than one candidate achieved the maximum score;
	// the result is the lexicographically first such candidate over the
	// sorted channel order.
	Tied bool

	// Evaluated counts the candidates scored during the search.
	Evaluated int
}

type search struct {
	channels     []string
	coefficients []float64
	baseline     float64
	step         float64
	profit       bool
	exhaust      bool

	units     []int
	evaluated int
	bestScore float64
	bestUnits []int
	found     bool
	tied      bool
}

// Optimize runs the grid search and returns the best allocation. It is a pure
// function of its inputs: identical inputs yield identical results, including
// the tie-break.
func Optimize(logger *zap.Logger, m *model.ChannelResponseModel, params Params) (*Result, error) {
	if logger == nil {
		logger = zap.NewNop()
	}

	if m == nil || len(m.Coefficients) == 0 {
		return nil, fmt.Errorf("%w: model has no fitted channels", ErrEmptyChannelSet)
	}
	if params.Step <= 0 {
		return nil, fmt.Errorf("step must be positive, got %.4f", params.Step)
	}
	if params.TotalBudget < 0 {
		return nil, fmt.Errorf("total budget must be non-negative, got %.2f", params.TotalBudget)
	}
	if params.Objective != MaximizeOutcome && params.Objective != MaximizeProfit {
		return nil, fmt.Errorf("unsupported objective %q", params.Objective)
	}

	channels := params.Channels
	if len(channels) == 0 {
		channels = m.Channels()
	} else {
		channels = append([]string(nil), channels...)
		sort.Strings(channels)
	}
	coefficients := make([]float64, len(channels))
	for i, channel := range channels {
		coefficient, ok := m.Coefficients[channel]
		if !ok {
			return nil, fmt.Errorf("%w: %s", ErrUnknownChannel, channel)
		}
		coefficients[i] = coefficient
	}

	totalUnits := int(math.Round(params.TotalBudget / params.Step))
	exact := math.Abs(float64(totalUnits)*params.Step-params.TotalBudget) <= constants.StepTolerance
	if !exact {
		if params.ExhaustBudget {
			return nil, fmt.Errorf("%w: step %.4f does not evenly divide budget %.2f",
				ErrNoFeasibleAllocation, params.Step, params.TotalBudget)
		}
		// Truncate to the largest grid total that fits under the budget.
		totalUnits = int(math.Floor(params.TotalBudget / params.Step))
	}

	s := &search{
		channels:     channels,
		coefficients: coefficients,
		baseline:     m.Baseline,
		step:         params.Step,
		profit:       params.Objective == MaximizeProfit,
		exhaust:      params.ExhaustBudget,
		units:        make([]int, len(channels)),
	}
	s.enumerate(0, totalUnits)

	result := &Result{
		Spend:     make(map[string]float64, len(channels)),
		Tied:      s.tied,
		Evaluated: s.evaluated,
	}
	totalSpend := 0.0
	for i, channel := range channels {
		spend := float64(s.bestUnits[i]) * params.Step
		result.Spend[channel] = spend
		totalSpend += spend
	}
	result.Outcome = s.predict(s.bestUnits)
	result.Profit = result.Outcome - totalSpend
	result.Score = result.Outcome
	if s.profit {
		result.Score = result.Profit
	}

	logger.Debug("allocation search complete",
		zap.String("op", "allocator.Optimize"),
		zap.Int("channels", len(channels)),
		zap.Int("evaluated", s.evaluated),
		zap.Float64("score", result.Score),
		zap.Bool("tied", result.Tied),
	)

	return result, nil
}

// enumerate walks spend tuples in lexicographic order over the sorted channel
// sequence. Because candidates arrive in lexicographic order, keeping the
// incumbent on score ties yields the lexicographically first maximum.
func (s *search) enumerate(index, remaining int) {
	if index == len(s.units)-1 {
		if s.exhaust {
			s.units[index] = remaining
			s.score()
			return
		}
		for u := 0; u <= remaining; u++ {
			s.units[index] = u
			s.score()
		}
		return
	}
	for u := 0; u <= remaining; u++ {
		s.units[index] = u
		s.enumerate(index+1, remaining-u)
	}
}

func (s *search) score() {
	s.evaluated++
	value := s.predict(s.units)
	if s.profit {
		for _, u := range s.units {
			value -= float64(u) * s.step
		}
	}
	switch {
	case !s.found || value > s.bestScore:
		s.found = true
		s.tied = false
		s.bestScore = value
		s.bestUnits = append(s.bestUnits[:0], s.units...)
	case value == s.bestScore:
		s.tied = true
	}
}

func (s *search) predict(units []int) float64 {
	outcome := s.baseline
	for i, u := range units {
		outcome += s.coefficients[i] * math.Log(float64(u)*s.step+1)
	}
	return outcome
}
