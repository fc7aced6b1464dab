// Package output provides utilities for formatting and displaying plans.
package output

import (
	"fmt"
	"io"

	"golang.org/x/text/language"
	"golang.org/x/text/message"

	"github.com/iwvelando/mediamix-planner/internal/planner"
)

// PrettyFormat outputs a human-readable rather than machine-readable report.
func PrettyFormat(w io.Writer, plan *planner.Plan) {
	p := message.NewPrinter(language.English)

	fmt.Fprintf(w, "--- Fitted channel-response model (%d observations) ---\n", plan.Observations)
	_, _ = p.Fprintf(w, "Baseline: $%.2f\n", plan.Model.Baseline)
	fmt.Fprintf(w, "Channel     | Coefficient\n")
	fmt.Fprintf(w, "_______     | ___________\n")
	for _, channel := range plan.Channels {
		fmt.Fprintf(w, "%-11s | %.4f\n", channel, plan.Model.Coefficients[channel])
	}

	fmt.Fprintf(w, "\n--- Recommended allocation (objective: %s) ---\n", plan.Objective)
	fmt.Fprintf(w, "Channel     | Spend\n")
	fmt.Fprintf(w, "_______     | _____\n")
	total := 0.0
	for _, channel := range plan.Channels {
		spend := plan.Allocation.Spend[channel]
		total += spend
		_, _ = p.Fprintf(w, "%-11s | $%.2f\n", channel, spend)
	}
	_, _ = p.Fprintf(w, "Total spend: $%.2f\n", total)
	_, _ = p.Fprintf(w, "Predicted outcome: $%.2f\n", plan.Allocation.Outcome)
	_, _ = p.Fprintf(w, "Predicted profit: $%.2f\n", plan.Allocation.Profit)
	if plan.Allocation.Tied {
		fmt.Fprintf(w, "Note: multiple allocations tied for the maximum; showing the lexicographically first\n")
	}
}

// CsvFormat outputs in comma-separated value format.
func CsvFormat(w io.Writer, plan *planner.Plan) {
	fmt.Fprintf(w, "\"channel\",\"coefficient\",\"spend\"\n")
	for _, channel := range plan.Channels {
		fmt.Fprintf(w, "\"%s\",\"%.6f\",\"%.2f\"\n",
			channel, plan.Model.Coefficients[channel], plan.Allocation.Spend[channel])
	}
	fmt.Fprintf(w, "\"baseline\",\"%.6f\",\"\"\n", plan.Model.Baseline)
	fmt.Fprintf(w, "\"outcome\",\"%.6f\",\"\"\n", plan.Allocation.Outcome)
	fmt.Fprintf(w, "\"profit\",\"%.6f\",\"\"\n", plan.Allocation.Profit)
	fmt.Fprintf(w, "\"tied\",\"%t\",\"\"\n", plan.Allocation.Tied)
}
