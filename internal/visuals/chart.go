// Package visuals renders Mermaid text charts from simulation results, the
// console-friendly stand-in for a plotted figure.
package visuals

import (
	"fmt"
	"math"
	"strings"

	"lotsim/internal/lottery"
)

// GenerateComparisonChart creates a Mermaid grouped bar chart comparing
// first-win probability per stage (plus the never-win bucket) across cases.
// Needs at least two cases to compare; fewer return an empty string.
func GenerateComparisonChart(results []lottery.CaseResult) string {
	if len(results) < 2 {
		return ""
	}

	var labels []string
	for _, st := range results[0].Stages {
		labels = append(labels, fmt.Sprintf("\"%s\"", st.Name))
	}
	labels = append(labels, "\"No win\"")

	maxVal := 0.0
	series := make([]string, 0, len(results))
	caseNames := make([]string, 0, len(results))
	for _, res := range results {
		var values []string
		for _, st := range res.Stages {
			pct := st.FirstWinProb * 100
			values = append(values, fmt.Sprintf("%.2f", pct))
			if pct > maxVal {
				maxVal = pct
			}
		}
		pct := res.NeverWin * 100
		values = append(values, fmt.Sprintf("%.2f", pct))
		if pct > maxVal {
			maxVal = pct
		}
		series = append(series, strings.Join(values, ", "))
		caseNames = append(caseNames, res.Case)
	}

	var sb strings.Builder
	sb.WriteString("```mermaid\n")
	sb.WriteString("xychart-beta\n")
	// xychart has no legend; the title carries the bar order instead.
	sb.WriteString(fmt.Sprintf("    title \"Win Probability by Stage (%s)\"\n", strings.Join(caseNames, " | ")))
	sb.WriteString(fmt.Sprintf("    x-axis [%s]\n", strings.Join(labels, ", ")))
	sb.WriteString(fmt.Sprintf("    y-axis \"Probability (%%)\" 0 --> %d\n", int(math.Ceil(maxVal*1.1))))
	for _, s := range series {
		sb.WriteString(fmt.Sprintf("    bar [%s]\n", s))
	}
	sb.WriteString("```")
	return sb.String()
}
