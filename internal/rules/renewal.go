package rules

import (
	"log/slog"
	"time"

	"github.com/Shima-cpu/Ru-passport-validity-calculator/internal/config"
)

// StatusKind classifies the passport relative to its renewal schedule.
type StatusKind int

const (
	// StatusOK: the next threshold has not been reached yet.
	StatusOK StatusKind = iota
	// StatusDue: the threshold has passed but the grace deadline has not.
	StatusDue
	// StatusInvalid: the grace deadline has passed; the document is overdue.
	StatusInvalid
	// StatusNoMore: the 45-year document is terminal, no age-triggered
	// renewal remains.
	StatusNoMore
)

// String returns a short identifier used in structured logs.
func (k StatusKind) String() string {
	switch k {
	case StatusDue:
		return "due"
	case StatusInvalid:
		return "invalid"
	case StatusNoMore:
		return "no_more"
	default:
		return "ok"
	}
}

// Result is the record returned to the caller for display.
// Absent fields are flagged with booleans rather than pointers.
type Result struct {
	// Stage the current document corresponds to.
	Stage Stage

	// StageLabel is the human-readable stage description.
	StageLabel string

	// NextChange is the date of the next mandatory renewal.
	// Only valid if HasNext is true.
	NextChange time.Time

	// Deadline is NextChange plus the grace period.
	// Only valid if HasNext is true.
	Deadline time.Time

	// HasNext is false for terminal results (StatusNoMore).
	HasNext bool

	// Status classifies the document as of "today".
	Status StatusKind

	// DaysLeft counts days until NextChange (StatusOK) or until Deadline
	// (StatusDue). Only valid if HasDays is true; never negative.
	DaysLeft int
	HasDays  bool
}

// Calculator evaluates the renewal schedule for a pair of input dates.
type Calculator struct {
	Clock Clock // Interface for time mocking.

	// FormatStage allows the UI to inject localized stage labels into the
	// logic layer. Nil falls back to the built-in Russian text.
	FormatStage func(stage Stage) string
}

// Evaluate determines the next mandatory renewal for the given birth and
// issue dates. Inputs are assumed to have passed Validate; a StageUnknown
// classification is still computed via the age-based fallback.
func (c *Calculator) Evaluate(birth, issue time.Time) Result {
	clock := c.Clock
	if clock == nil {
		clock = RealClock{}
	}
	today := Day(clock.Now())
	birth, issue = Day(birth), Day(issue)

	d20 := AddYears(birth, config.AgeFirstRenewal)
	d45 := AddYears(birth, config.AgeFinalRenewal)

	stage := ClassifyStage(birth, issue)

	res := Result{
		Stage:      stage,
		StageLabel: c.formatStage(stage),
	}

	if stage == Stage45 {
		res.Status = StatusNoMore
		c.logResult(birth, issue, res)
		return res
	}

	switch stage {
	case Stage20:
		res.NextChange = d45
	case Stage14:
		res.NextChange = d20
	default:
		// Could not pin down the stage; fall back on the holder's age.
		if today.Before(d45) {
			res.NextChange = d20
		} else {
			res.NextChange = d45
		}
	}

	res.HasNext = true
	res.Deadline = res.NextChange.AddDate(0, 0, config.GraceDays)

	switch {
	case today.After(res.Deadline):
		res.Status = StatusInvalid
	case !today.Before(res.NextChange):
		res.Status = StatusDue
		res.DaysLeft = DaysBetween(today, res.Deadline)
		res.HasDays = true
	default:
		res.Status = StatusOK
		res.DaysLeft = DaysBetween(today, res.NextChange)
		res.HasDays = true
	}

	c.logResult(birth, issue, res)
	return res
}

func (c *Calculator) formatStage(stage Stage) string {
	if c.FormatStage != nil {
		if label := c.FormatStage(stage); label != "" {
			return label
		}
	}
	return stage.FallbackLabel()
}

func (c *Calculator) logResult(birth, issue time.Time, res Result) {
	attrs := []any{
		config.LogKeyComponent, config.CompRules,
		config.LogKeyBirth, birth.Format(config.DateFormatFullDash),
		config.LogKeyIssue, issue.Format(config.DateFormatFullDash),
		config.LogKeyStage, res.Stage.String(),
		config.LogKeyStatus, res.Status.String(),
	}
	if res.HasNext {
		attrs = append(attrs, config.LogKeyNext, res.NextChange.Format(config.DateFormatFullDash))
	}
	if res.HasDays {
		attrs = append(attrs, config.LogKeyDaysLeft, res.DaysLeft)
	}
	slog.Debug(config.MsgComputeDone, attrs...)
}
