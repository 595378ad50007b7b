package lottery_test

import (
	"bytes"
	"encoding/json"
	"flag"
	"os"
	"path/filepath"
	"testing"

	"lotsim/internal/lottery"
)

var update = flag.Bool("update", false, "update golden files")

// The scenario uses dyadic probabilities (0.25, 0.125, ...) only, so every
// intermediate value is exact in float64 and the snapshot is stable.
func TestCasePipeline_Golden(t *testing.T) {
	engine, err := lottery.NewEngine(
		lottery.Settings{TotalAttendance: 500000, NumEvents: 1, CoreFanPopulation: 1000000},
		lottery.Targets{"tokyo": 1},
		[]lottery.Stage{
			{Name: "first", CoreFanRatio: 1.0, Weight: 2},
			{Name: "second", CoreFanRatio: 1.0, Weight: 2},
		},
	)
	if err != nil {
		t.Fatalf("NewEngine failed: %v", err)
	}

	outcomes := lottery.RunCases(engine, []lottery.Case{
		{Name: "no adjustment"},
		{Name: "half reduction", Policy: lottery.Policy{Type: lottery.PolicySeatReduction, Rate: 0.5}},
	})

	results := make([]lottery.CaseResult, 0, len(outcomes))
	for _, o := range outcomes {
		if o.Err != nil {
			t.Fatalf("Case %q failed: %v", o.Case.Name, o.Err)
		}
		results = append(results, o.Result)
	}

	actualJSON, err := json.MarshalIndent(results, "", "  ")
	if err != nil {
		t.Fatalf("Failed to marshal results: %v", err)
	}

	goldenPath := filepath.Join("testdata", "cases_golden.json")

	if *update {
		if err := os.MkdirAll(filepath.Dir(goldenPath), 0755); err != nil {
			t.Fatalf("Failed to create testdata dir: %v", err)
		}
		if err := os.WriteFile(goldenPath, actualJSON, 0644); err != nil {
			t.Fatalf("Failed to write golden file: %v", err)
		}
		t.Logf("Golden file updated at %s", goldenPath)
		return
	}

	expectedJSON, err := os.ReadFile(goldenPath)
	if err != nil {
		t.Fatalf("Failed to read golden file (run with -update to generate): %v", err)
	}

	if !bytes.Equal(expectedJSON, actualJSON) {
		t.Errorf("Mismatch between actual results and golden file.\nExpected:\n%s\nActual:\n%s",
			expectedJSON, actualJSON)
	}
}
