// Package report renders engine results for the console. All functions return
// strings so callers decide where the text goes and tests stay I/O-free.
package report

import (
	"fmt"
	"sort"
	"strings"

	"lotsim/internal/lottery"
)

// RenderSettings writes the preamble block describing the fixed simulation
// inputs shared by every case.
func RenderSettings(settings lottery.Settings, targets lottery.Targets) string {
	var sb strings.Builder
	sb.WriteString("===== Simulation Settings =====\n")
	fmt.Fprintf(&sb, "Total attendance:    %d across %d events (%.0f seats per event)\n",
		settings.TotalAttendance, settings.NumEvents, settings.SeatsPerEvent())
	fmt.Fprintf(&sb, "Core fan population: %d\n", settings.CoreFanPopulation)

	keys := make([]string, 0, len(targets))
	for key := range targets {
		keys = append(keys, key)
	}
	sort.Strings(keys)
	parts := make([]string, 0, len(keys))
	for _, key := range keys {
		parts = append(parts, fmt.Sprintf("%s: %d", key, targets[key]))
	}
	fmt.Fprintf(&sb, "Target events:       %d", targets.Total())
	if len(parts) > 0 {
		fmt.Fprintf(&sb, " (%s)", strings.Join(parts, ", "))
	}
	sb.WriteString("\n")
	return sb.String()
}

// RenderSummary writes the first-win probability breakdown for one case. The
// listed probabilities partition the whole sample space, so they sum to 100%
// up to rounding.
func RenderSummary(result lottery.CaseResult) string {
	var sb strings.Builder
	sum := 0.0
	for _, st := range result.Stages {
		fmt.Fprintf(&sb, "Won at %s: %.2f%%\n", st.Name, st.FirstWinProb*100)
		sum += st.FirstWinProb
	}
	fmt.Fprintf(&sb, "Never won: %.2f%%\n", result.NeverWin*100)
	sum += result.NeverWin
	fmt.Fprintf(&sb, "Total: %.2f%% (may drift slightly from 100%% due to rounding)\n", sum*100)
	return sb.String()
}

// RenderDetails writes the per-stage table: applicant pools, seat allocations
// and the probability chain.
func RenderDetails(result lottery.CaseResult) string {
	if len(result.Stages) == 0 {
		return ""
	}

	var sb strings.Builder
	header := fmt.Sprintf("%-18s | %12s | %10s | %12s | %12s | %10s",
		"Stage", "Applicants", "Seats", "P(applicant)", "P(win stage)", "P(no win)")
	sb.WriteString(header + "\n")
	sb.WriteString(strings.Repeat("-", len(header)) + "\n")

	for _, st := range result.Stages {
		fmt.Fprintf(&sb, "%-18s | %12.0f | %10.0f | %11.2f%% | %11.2f%% | %9.2f%%\n",
			st.Name, st.Applicants, st.Seats,
			st.PerApplicantProb*100, st.StageWinProb*100, st.CumulativeNotWon*100)
	}
	return sb.String()
}
