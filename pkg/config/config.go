// Package config loads the optional presets file that pre-fills the CLI's
// schedule day counts and interest defaults.
package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/coolbeans/lexcalc/pkg/docket"
)

// ScheduleDays holds the statutory day presets for date calculations.
type ScheduleDays struct {
	// AnnouncementDays is the public-notice announcement period before a
	// hearing.
	AnnouncementDays int `yaml:"announcement_days"`
	// AppealDays is the appeal period for domestic judgments.
	AppealDays int `yaml:"appeal_days"`
	// ForeignJudgmentDays is the appeal period for foreign-related
	// judgments.
	ForeignJudgmentDays int `yaml:"foreign_judgment_days"`
	// ReplyDays is the defendant's defense period.
	ReplyDays int `yaml:"reply_days"`
}

// InterestDefaults holds the defaults applied when an interest query omits
// the basis or cadence.
type InterestDefaults struct {
	// YearBasis is 360 or 365.
	YearBasis int `yaml:"year_basis"`
	// Cadence is "day", "month" or "year".
	Cadence string `yaml:"cadence"`
}

// Presets is the root of the presets file.
type Presets struct {
	Schedule ScheduleDays     `yaml:"schedule"`
	Interest InterestDefaults `yaml:"interest"`
}

// Default returns the compiled-in presets.
func Default() Presets {
	return Presets{
		Schedule: ScheduleDays{
			AnnouncementDays:    docket.DefaultAnnouncementDays,
			AppealDays:          docket.DefaultAppealDays,
			ForeignJudgmentDays: docket.DefaultForeignJudgmentDays,
			ReplyDays:           docket.DefaultReplyDays,
		},
		Interest: InterestDefaults{
			YearBasis: 365,
			Cadence:   "year",
		},
	}
}

// Load reads presets from a YAML file. An empty path returns the defaults.
// Fields absent from the file keep their default values.
func Load(path string) (Presets, error) {
	presets := Default()
	if path == "" {
		return presets, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return Presets{}, fmt.Errorf("reading presets: %w", err)
	}
	if err := yaml.Unmarshal(data, &presets); err != nil {
		return Presets{}, fmt.Errorf("parsing presets %s: %w", path, err)
	}
	if err := presets.validate(); err != nil {
		return Presets{}, fmt.Errorf("presets %s: %w", path, err)
	}
	return presets, nil
}

func (p Presets) validate() error {
	if p.Interest.YearBasis != 360 && p.Interest.YearBasis != 365 {
		return fmt.Errorf("year_basis must be 360 or 365, got %d", p.Interest.YearBasis)
	}
	switch p.Interest.Cadence {
	case "day", "month", "year":
	default:
		return fmt.Errorf("cadence must be day, month or year, got %q", p.Interest.Cadence)
	}
	if p.Schedule.AnnouncementDays < 0 || p.Schedule.AppealDays < 0 ||
		p.Schedule.ForeignJudgmentDays < 0 || p.Schedule.ReplyDays < 0 {
		return fmt.Errorf("schedule day presets must be non-negative")
	}
	return nil
}
