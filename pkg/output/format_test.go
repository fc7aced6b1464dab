package output

import (
	"bytes"
	"strings"
	"testing"

	"github.com/iwvelando/mediamix-planner/internal/allocator"
	"github.com/iwvelando/mediamix-planner/internal/model"
	"github.com/iwvelando/mediamix-planner/internal/planner"
)

func testPlan() *planner.Plan {
	return &planner.Plan{
		Model: &model.ChannelResponseModel{
			Baseline:     500.0,
			Coefficients: map[string]float64{"search": 20.0, "social": 5.0},
		},
		Allocation: &allocator.Result{
			Spend:   map[string]float64{"search": 81, "social": 19},
			Outcome: 603.11,
			Profit:  503.11,
			Score:   603.11,
		},
		Objective:    "outcome",
		Channels:     []string{"search", "social"},
		Observations: 104,
	}
}

func TestPrettyFormat(t *testing.T) {
	var buf bytes.Buffer
	PrettyFormat(&buf, testPlan())
	got := buf.String()

	for _, expected := range []string{
		"Baseline: $500.00",
		"search",
		"social",
		"objective: outcome",
		"$81.00",
		"$19.00",
		"Total spend: $100.00",
		"Predicted outcome: $603.11",
		"Predicted profit: $503.11",
	} {
		if !strings.Contains(got, expected) {
			t.Errorf("PrettyFormat() output missing %q:\n%s", expected, got)
		}
	}
	if strings.Contains(got, "tied") {
		t.Errorf("PrettyFormat() mentions a tie for an untied result:\n%s", got)
	}
}

func TestPrettyFormatTied(t *testing.T) {
	plan := testPlan()
	plan.Allocation.Tied = true

	var buf bytes.Buffer
	PrettyFormat(&buf, plan)
	if !strings.Contains(buf.String(), "tied for the maximum") {
		t.Errorf("PrettyFormat() missing tie note:\n%s", buf.String())
	}
}

func TestCsvFormat(t *testing.T) {
	var buf bytes.Buffer
	CsvFormat(&buf, testPlan())
	got := buf.String()

	lines := strings.Split(strings.TrimSpace(got), "\n")
	if lines[0] != "\"channel\",\"coefficient\",\"spend\"" {
		t.Errorf("CsvFormat() header = %s", lines[0])
	}
	for _, expected := range []string{
		"\"search\",\"20.000000\",\"81.00\"",
		"\"social\",\"5.000000\",\"19.00\"",
		"\"baseline\",\"500.000000\",\"\"",
		"\"tied\",\"false\",\"\"",
	} {
		if !strings.Contains(got, expected) {
			t.Errorf("CsvFormat() output missing %q:\n%s", expected, got)
		}
	}
}
