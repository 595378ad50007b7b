package lottery

import "fmt"

// Stage describes one sequential lottery round: which share of the core fan
// population applies, how many outside applicants join, and the weight that
// decides its slice of the seat pool. Stage order is significant: earlier
// stages feed the duplicate-win adjustment applied to later ones.
type Stage struct {
	Name                 string  `json:"name"`
	CoreFanRatio         float64 `json:"applicant_core_fan_ratio"`
	AdditionalApplicants int     `json:"additional_applicants"`
	Weight               float64 `json:"weight"`
}

func (s Stage) Validate() error {
	if s.CoreFanRatio < 0 || s.CoreFanRatio > 1 {
		return fmt.Errorf("stage %q: applicant_core_fan_ratio must be within [0,1], got %g: %w", s.Name, s.CoreFanRatio, ErrValidation)
	}
	if s.AdditionalApplicants < 0 {
		return fmt.Errorf("stage %q: additional_applicants must be >= 0, got %d: %w", s.Name, s.AdditionalApplicants, ErrValidation)
	}
	if s.Weight <= 0 {
		return fmt.Errorf("stage %q: weight must be > 0, got %g: %w", s.Name, s.Weight, ErrValidation)
	}
	return nil
}

// ApplicantCount is the expected applicant pool at this stage: the ratio-based
// slice of the core fan population plus the fixed outside applicants. The
// count stays real-valued so rounding error does not compound across stages.
func (s Stage) ApplicantCount(coreFanPopulation int) float64 {
	return float64(coreFanPopulation)*s.CoreFanRatio + float64(s.AdditionalApplicants)
}

// SeatAllocation is this stage's weight-proportional share of the seat pool.
func (s Stage) SeatAllocation(totalSeats, totalWeight float64) float64 {
	return totalSeats * (s.Weight / totalWeight)
}
