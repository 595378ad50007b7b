package lottery

import (
	"errors"
	"fmt"
)

// ErrValidation marks malformed configuration detected before any computation
// runs. A case built from inputs that fail validation produces no partial
// results.
var ErrValidation = errors.New("invalid configuration")

// Settings fixes the aggregate shape of the tour being simulated: how many
// seats exist in total, across how many events, and how large the loyal fan
// population is.
type Settings struct {
	TotalAttendance   int `json:"total_overall_attendance"`
	NumEvents         int `json:"num_total_events"`
	CoreFanPopulation int `json:"core_fan_total_population"`
}

func (s Settings) Validate() error {
	if s.TotalAttendance <= 0 {
		return fmt.Errorf("total_overall_attendance must be > 0, got %d: %w", s.TotalAttendance, ErrValidation)
	}
	if s.NumEvents <= 0 {
		return fmt.Errorf("num_total_events must be > 0, got %d: %w", s.NumEvents, ErrValidation)
	}
	if s.CoreFanPopulation <= 0 {
		return fmt.Errorf("core_fan_total_population must be > 0, got %d: %w", s.CoreFanPopulation, ErrValidation)
	}
	return nil
}

// SeatsPerEvent is kept fractional; rounding happens only at display time.
func (s Settings) SeatsPerEvent() float64 {
	return float64(s.TotalAttendance) / float64(s.NumEvents)
}

// Targets maps an event identifier (a region, a venue) to how many events of
// that kind the user applies for. Only the sum matters to the engine.
type Targets map[string]int

func (t Targets) Validate() error {
	for key, count := range t {
		if count < 0 {
			return fmt.Errorf("target event count for %q must be >= 0, got %d: %w", key, count, ErrValidation)
		}
	}
	return nil
}

// Total returns the number of event applications the user submits.
func (t Targets) Total() int {
	sum := 0
	for _, count := range t {
		sum += count
	}
	return sum
}

// PolicyType selects how duplicate wins across stages are treated.
type PolicyType string

const (
	// PolicyNone applies no adjustment.
	PolicyNone PolicyType = "none"
	// PolicySeatReduction shrinks the seats available to new winners in every
	// stage after the first, modeling seats already held by earlier winners.
	PolicySeatReduction PolicyType = "seat_reduction"
)

// Policy is the duplicate-win adjustment attached to one simulation case.
type Policy struct {
	Type PolicyType `json:"type"`
	Rate float64    `json:"rate,omitempty"`
}

func (p Policy) Validate() error {
	switch p.Type {
	case PolicyNone, "":
		return nil
	case PolicySeatReduction:
		if p.Rate < 0 || p.Rate > 1 {
			return fmt.Errorf("seat reduction rate must be within [0,1], got %g: %w", p.Rate, ErrValidation)
		}
		return nil
	default:
		return fmt.Errorf("unknown duplicate policy type %q: %w", p.Type, ErrValidation)
	}
}

// Case names one policy variant to evaluate against the shared settings,
// targets, and stage list.
type Case struct {
	Name   string `json:"case_name"`
	Policy Policy `json:"duplicate_policy"`
}

// StageResult captures the engine output for a single stage.
type StageResult struct {
	Name             string  `json:"name"`
	Applicants       float64 `json:"applicants"`
	Seats            float64 `json:"seats"`
	PerApplicantProb float64 `json:"per_applicant_probability"`
	StageWinProb     float64 `json:"stage_win_probability"`
	FirstWinProb     float64 `json:"first_win_probability"`
	CumulativeNotWon float64 `json:"cumulative_not_won"`
}

// CaseResult is the ordered stage breakdown for one case plus the composite
// probabilities. OverallWin and NeverWin always sum to 1.
type CaseResult struct {
	Case       string        `json:"case"`
	Stages     []StageResult `json:"stages"`
	OverallWin float64       `json:"overall_win_probability"`
	NeverWin   float64       `json:"overall_never_win_probability"`
}
