package lottery

import (
	"fmt"
	"math"
)

// Engine walks an ordered stage sequence and computes, for one policy at a
// time, each stage's win probability and the running probability of not yet
// having won. The model is analytical: no sampling, no randomness.
//
// An Engine is built once from immutable inputs and never mutated by Run, so
// multiple cases can be evaluated against it concurrently.
type Engine struct {
	settings    Settings
	targetCount int
	stages      []Stage
	totalWeight float64
}

// NewEngine validates every shared input eagerly. A malformed stage list or
// settings block is rejected here, before any case runs.
func NewEngine(settings Settings, targets Targets, stages []Stage) (*Engine, error) {
	if err := settings.Validate(); err != nil {
		return nil, err
	}
	if err := targets.Validate(); err != nil {
		return nil, err
	}
	totalWeight := 0.0
	for _, stage := range stages {
		if err := stage.Validate(); err != nil {
			return nil, err
		}
		totalWeight += stage.Weight
	}
	return &Engine{
		settings:    settings,
		targetCount: targets.Total(),
		stages:      append([]Stage(nil), stages...),
		totalWeight: totalWeight,
	}, nil
}

// Run evaluates the full stage sequence under one duplicate-win policy.
//
// Seats for a single event instance are distributed across stages by weight.
// The user's chance of winning a stage treats each of their targeted event
// applications as an independent trial at that stage's per-applicant
// probability, and winning at a later stage is conditioned on not having won
// any earlier one via the running not-won probability.
func (e *Engine) Run(c Case) (CaseResult, error) {
	if err := c.Policy.Validate(); err != nil {
		return CaseResult{}, fmt.Errorf("case %q: %w", c.Name, err)
	}

	result := CaseResult{Case: c.Name, NeverWin: 1}
	if len(e.stages) == 0 {
		// Nothing to apply for: the user loses every (nonexistent) round.
		return result, nil
	}

	totalSeats := e.settings.SeatsPerEvent()
	notWon := 1.0
	result.Stages = make([]StageResult, 0, len(e.stages))

	for i, stage := range e.stages {
		applicants := stage.ApplicantCount(e.settings.CoreFanPopulation)
		seats := stage.SeatAllocation(totalSeats, e.totalWeight)
		if c.Policy.Type == PolicySeatReduction && i > 0 {
			// Earlier winners already hold part of this stage's nominal
			// allocation. The first stage has no earlier winners.
			seats *= 1 - c.Policy.Rate
		}

		// A stage nobody applies to awards nothing; treat it as unwinnable
		// rather than as a free win.
		perApplicant := 0.0
		if applicants > 0 {
			perApplicant = math.Min(1, seats/applicants)
		}

		stageWin := 1 - math.Pow(1-perApplicant, float64(e.targetCount))
		firstWin := notWon * stageWin
		notWon *= 1 - stageWin

		result.Stages = append(result.Stages, StageResult{
			Name:             stage.Name,
			Applicants:       applicants,
			Seats:            seats,
			PerApplicantProb: perApplicant,
			StageWinProb:     stageWin,
			FirstWinProb:     firstWin,
			CumulativeNotWon: notWon,
		})
	}

	result.NeverWin = notWon
	result.OverallWin = 1 - notWon
	return result, nil
}
