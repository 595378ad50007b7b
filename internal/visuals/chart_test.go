package visuals

import (
	"strings"
	"testing"

	"lotsim/internal/lottery"
)

func TestGenerateComparisonChart(t *testing.T) {
	results := []lottery.CaseResult{
		{
			Case: "baseline",
			Stages: []lottery.StageResult{
				{Name: "presale", FirstWinProb: 0.25},
				{Name: "general", FirstWinProb: 0.1875},
			},
			NeverWin: 0.5625,
		},
		{
			Case: "reduced",
			Stages: []lottery.StageResult{
				{Name: "presale", FirstWinProb: 0.25},
				{Name: "general", FirstWinProb: 0.09375},
			},
			NeverWin: 0.65625,
		},
	}

	chart := GenerateComparisonChart(results)

	if !strings.HasPrefix(chart, "```mermaid\nxychart-beta\n") {
		t.Errorf("Chart missing mermaid preamble:\n%s", chart)
	}
	if strings.Count(chart, "    bar [") != 2 {
		t.Errorf("Expected one bar series per case:\n%s", chart)
	}
	for _, want := range []string{"\"presale\"", "\"general\"", "\"No win\"", "baseline | reduced", "65.62"} {
		if !strings.Contains(chart, want) {
			t.Errorf("Chart missing %q:\n%s", want, chart)
		}
	}
}

func TestGenerateComparisonChart_NeedsTwoCases(t *testing.T) {
	single := []lottery.CaseResult{{Case: "only"}}
	if chart := GenerateComparisonChart(single); chart != "" {
		t.Errorf("Expected empty chart for a single case, got:\n%s", chart)
	}
	if chart := GenerateComparisonChart(nil); chart != "" {
		t.Errorf("Expected empty chart for no cases, got:\n%s", chart)
	}
}
