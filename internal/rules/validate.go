package rules

import (
	"fmt"
	"time"

	"github.com/Shima-cpu/Ru-passport-validity-calculator/internal/config"
)

// Issue is a single validation finding. The numeric order matches the fixed
// order in which checks run and messages are displayed.
type Issue int

const (
	IssueBirthInFuture Issue = iota
	IssueIssueInFuture
	IssueIssueBeforeBirth
	IssueUnder14
	IssueIssueBeforeEligible
	IssueBirthOutOfRange
	IssueIssueOutOfRange
)

// String returns a short identifier used in structured logs.
func (i Issue) String() string {
	switch i {
	case IssueBirthInFuture:
		return "birth_in_future"
	case IssueIssueInFuture:
		return "issue_in_future"
	case IssueIssueBeforeBirth:
		return "issue_before_birth"
	case IssueUnder14:
		return "under_14"
	case IssueIssueBeforeEligible:
		return "issue_before_14"
	case IssueBirthOutOfRange:
		return "birth_out_of_range"
	case IssueIssueOutOfRange:
		return "issue_out_of_range"
	default:
		return "unknown"
	}
}

// Message returns the built-in Russian rule text for the issue. The range
// messages embed the allowed calendar bounds, which depend on "today".
// The UI normally replaces these with localized messages keyed by Issue.
func (i Issue) Message(today time.Time) string {
	switch i {
	case IssueBirthInFuture:
		return config.FallbackErrBirthFuture
	case IssueIssueInFuture:
		return config.FallbackErrIssueFuture
	case IssueIssueBeforeBirth:
		return config.FallbackErrIssueBeforeDOB
	case IssueUnder14:
		return config.FallbackErrUnder14
	case IssueIssueBeforeEligible:
		return config.FallbackErrIssueTooEarly
	case IssueBirthOutOfRange:
		return fmt.Sprintf(config.FallbackErrBirthRange,
			config.MinCalendarDate.Format(config.DateFormatRU),
			Day(today).Format(config.DateFormatRU))
	case IssueIssueOutOfRange:
		return fmt.Sprintf(config.FallbackErrIssueRange,
			config.MinCalendarDate.Format(config.DateFormatRU),
			Day(today).Format(config.DateFormatRU))
	default:
		return ""
	}
}

// Validate checks the structural sanity of the two input dates against each
// other and against the allowed calendar range [MinCalendarDate, today].
// Every check runs unconditionally; findings keep the fixed order above.
// An empty slice means the inputs are usable.
func Validate(birth, issue, today time.Time) []Issue {
	birth, issue, today = Day(birth), Day(issue), Day(today)

	var issues []Issue

	if birth.After(today) {
		issues = append(issues, IssueBirthInFuture)
	}
	if issue.After(today) {
		issues = append(issues, IssueIssueInFuture)
	}
	if issue.Before(birth) {
		issues = append(issues, IssueIssueBeforeBirth)
	}

	d14 := AddYears(birth, config.AgeFirstIssue)
	if today.Before(d14) {
		issues = append(issues, IssueUnder14)
	}
	if issue.Before(d14) {
		issues = append(issues, IssueIssueBeforeEligible)
	}

	if birth.Before(config.MinCalendarDate) || birth.After(today) {
		issues = append(issues, IssueBirthOutOfRange)
	}
	if issue.Before(config.MinCalendarDate) || issue.After(today) {
		issues = append(issues, IssueIssueOutOfRange)
	}

	return issues
}

// Messages renders the built-in text for a list of findings, preserving order.
func Messages(issues []Issue, today time.Time) []string {
	out := make([]string, 0, len(issues))
	for _, i := range issues {
		out = append(out, i.Message(today))
	}
	return out
}
