package rules

import (
	"time"

	"github.com/Shima-cpu/Ru-passport-validity-calculator/internal/config"
)

// Stage identifies the age threshold the current document corresponds to.
type Stage int

const (
	// StageUnknown means the issue date does not fit any threshold window.
	// This is degraded input, not an error: the calculator still produces a
	// result using an age-based fallback.
	StageUnknown Stage = iota
	Stage14
	Stage20
	Stage45
)

// String returns a short identifier used in structured logs.
func (s Stage) String() string {
	switch s {
	case Stage14:
		return "14"
	case Stage20:
		return "20"
	case Stage45:
		return "45"
	default:
		return "unknown"
	}
}

// FallbackLabel returns the built-in Russian label for the stage.
// The UI normally overrides this via Calculator.FormatStage.
func (s Stage) FallbackLabel() string {
	switch s {
	case Stage14:
		return config.FallbackStage14
	case Stage20:
		return config.FallbackStage20
	case Stage45:
		return config.FallbackStage45
	default:
		return config.FallbackStageUnknown
	}
}

// ClassifyStage determines which threshold the current passport was issued
// for. The windows are checked from oldest to youngest, each tolerating the
// statutory grace period after the threshold birthday:
//
//	issue >= d45                      -> Stage45
//	d20 <= issue <= d45 + grace       -> Stage20
//	d14 <= issue <= d20 + grace       -> Stage14
//
// Issue dates outside every window yield StageUnknown.
// The caller is expected to have validated issue >= birth beforehand.
func ClassifyStage(birth, issue time.Time) Stage {
	birth, issue = Day(birth), Day(issue)

	d14 := AddYears(birth, config.AgeFirstIssue)
	d20 := AddYears(birth, config.AgeFirstRenewal)
	d45 := AddYears(birth, config.AgeFinalRenewal)

	switch {
	case !issue.Before(d45):
		return Stage45
	case !issue.Before(d20) && !issue.After(d45.AddDate(0, 0, config.GraceDays)):
		return Stage20
	case !issue.Before(d14) && !issue.After(d20.AddDate(0, 0, config.GraceDays)):
		return Stage14
	default:
		return StageUnknown
	}
}
