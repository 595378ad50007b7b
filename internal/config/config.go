package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"lotsim/internal/lottery"

	"github.com/joho/godotenv"
	"github.com/rs/zerolog/log"
	"gopkg.in/yaml.v3"
)

// File mirrors the on-disk configuration shape. JSON is the primary format;
// a .yaml/.yml extension switches the decoder.
type File struct {
	Settings    SettingsSection `json:"simulation_settings" yaml:"simulation_settings"`
	UserTargets map[string]int  `json:"user_target_events" yaml:"user_target_events"`
	Stages      []StageSection  `json:"lottery_stages" yaml:"lottery_stages"`
	Cases       []CaseSection   `json:"simulation_cases" yaml:"simulation_cases"`
}

type SettingsSection struct {
	TotalAttendance   int `json:"total_overall_attendance" yaml:"total_overall_attendance"`
	NumEvents         int `json:"num_total_events" yaml:"num_total_events"`
	CoreFanPopulation int `json:"core_fan_total_population" yaml:"core_fan_total_population"`
}

type StageSection struct {
	Name                 string  `json:"name" yaml:"name"`
	CoreFanRatio         float64 `json:"applicant_core_fan_ratio" yaml:"applicant_core_fan_ratio"`
	AdditionalApplicants int     `json:"additional_applicants" yaml:"additional_applicants"`
	Weight               float64 `json:"weight" yaml:"weight"`
}

type PolicySection struct {
	Type string  `json:"type" yaml:"type"`
	Rate float64 `json:"rate,omitempty" yaml:"rate,omitempty"`
}

type CaseSection struct {
	Name   string        `json:"case_name" yaml:"case_name"`
	Policy PolicySection `json:"duplicate_policy" yaml:"duplicate_policy"`
}

// Load resolves and reads the simulation configuration. Resolution order:
// explicit path, LOTSIM_CONFIG, ./config.json, built-in defaults. A path that
// was asked for but cannot be read is an error; only the implicit fallbacks
// degrade silently to the defaults.
func Load(path string) (*File, error) {
	// .env from the binary directory first, then the working directory, the
	// same layering the logger bootstrap uses.
	if exePath, err := os.Executable(); err == nil {
		_ = godotenv.Load(filepath.Join(filepath.Dir(exePath), ".env"))
	}
	_ = godotenv.Load()

	explicit := path != ""
	if path == "" {
		path = os.Getenv("LOTSIM_CONFIG")
		explicit = path != ""
	}
	if path == "" {
		if _, err := os.Stat("config.json"); err == nil {
			path = "config.json"
		}
	}
	if path == "" {
		log.Info().Msg("No configuration file found, using built-in defaults")
		return Default(), nil
	}

	cfg, err := readFile(path)
	if err != nil {
		if !explicit {
			log.Warn().Err(err).Str("path", path).Msg("Failed to read configuration, using built-in defaults")
			return Default(), nil
		}
		return nil, err
	}
	if err := cfg.validate(); err != nil {
		return nil, fmt.Errorf("config %s: %w", path, err)
	}

	log.Info().Str("path", path).Msg("Loaded configuration")
	return cfg, nil
}

func readFile(path string) (*File, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read config: %w", err)
	}

	var cfg File
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		if err := yaml.Unmarshal(data, &cfg); err != nil {
			return nil, fmt.Errorf("parse yaml config %s: %w", path, err)
		}
	default:
		if err := json.Unmarshal(data, &cfg); err != nil {
			return nil, fmt.Errorf("parse json config %s: %w", path, err)
		}
	}
	return &cfg, nil
}

// validate rejects shapes the engine could not even start from. Value-range
// checks (ratios, weights, rates) belong to the engine's own validation.
func (f *File) validate() error {
	var errs []string

	if f.Settings == (SettingsSection{}) {
		errs = append(errs, "simulation_settings is required")
	}
	if len(f.Stages) == 0 {
		errs = append(errs, "lottery_stages must list at least one stage")
	}
	for i, s := range f.Stages {
		if s.Name == "" {
			errs = append(errs, fmt.Sprintf("lottery_stages[%d].name is required", i))
		}
	}
	for i, c := range f.Cases {
		if c.Name == "" {
			errs = append(errs, fmt.Sprintf("simulation_cases[%d].case_name is required", i))
		}
	}

	if len(errs) > 0 {
		return fmt.Errorf("%s: %w", strings.Join(errs, "; "), lottery.ErrValidation)
	}
	return nil
}

// Lottery converts the file shape into engine inputs. A file without explicit
// cases gets a single baseline case with no duplicate-win adjustment.
func (f *File) Lottery() (lottery.Settings, lottery.Targets, []lottery.Stage, []lottery.Case) {
	settings := lottery.Settings{
		TotalAttendance:   f.Settings.TotalAttendance,
		NumEvents:         f.Settings.NumEvents,
		CoreFanPopulation: f.Settings.CoreFanPopulation,
	}

	targets := make(lottery.Targets, len(f.UserTargets))
	for key, count := range f.UserTargets {
		targets[key] = count
	}

	stages := make([]lottery.Stage, len(f.Stages))
	for i, s := range f.Stages {
		stages[i] = lottery.Stage{
			Name:                 s.Name,
			CoreFanRatio:         s.CoreFanRatio,
			AdditionalApplicants: s.AdditionalApplicants,
			Weight:               s.Weight,
		}
	}

	cases := make([]lottery.Case, len(f.Cases))
	for i, c := range f.Cases {
		cases[i] = lottery.Case{
			Name: c.Name,
			Policy: lottery.Policy{
				Type: lottery.PolicyType(c.Policy.Type),
				Rate: c.Policy.Rate,
			},
		}
	}
	if len(cases) == 0 {
		cases = []lottery.Case{{Name: "baseline", Policy: lottery.Policy{Type: lottery.PolicyNone}}}
	}

	return settings, targets, stages, cases
}

// Default returns the built-in fallback configuration, constructed fresh on
// every call so no two callers share state.
func Default() *File {
	return &File{
		Settings: SettingsSection{
			TotalAttendance:   300000,
			NumEvents:         6,
			CoreFanPopulation: 500000,
		},
		UserTargets: map[string]int{
			"tokyo": 2,
			"osaka": 1,
		},
		Stages: []StageSection{
			{Name: "Fanclub presale", CoreFanRatio: 0.5, AdditionalApplicants: 0, Weight: 5},
			{Name: "Mobile presale", CoreFanRatio: 0.7, AdditionalApplicants: 100000, Weight: 3},
			{Name: "General sale", CoreFanRatio: 1.0, AdditionalApplicants: 300000, Weight: 2},
		},
		Cases: []CaseSection{
			{Name: "No duplicate adjustment", Policy: PolicySection{Type: string(lottery.PolicyNone)}},
			{Name: "Seat reduction 10%", Policy: PolicySection{Type: string(lottery.PolicySeatReduction), Rate: 0.1}},
		},
	}
}
