package rules_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/Shima-cpu/Ru-passport-validity-calculator/internal/rules"
)

func TestValidate_CleanInput(t *testing.T) {
	issues := rules.Validate(
		date(1990, 1, 1),
		date(2010, 1, 15),
		date(2025, 6, 1),
	)
	assert.Empty(t, issues)
}

func TestValidate_IssueBeforeBirth(t *testing.T) {
	issues := rules.Validate(
		date(2000, 1, 1),
		date(1999, 1, 1),
		date(2025, 1, 1),
	)

	// The pre-eligibility check also fires: an issue date before birth is
	// necessarily before the 14th birthday. Order is fixed.
	assert.Equal(t, []rules.Issue{
		rules.IssueIssueBeforeBirth,
		rules.IssueIssueBeforeEligible,
	}, issues)

	msg := rules.IssueIssueBeforeBirth.Message(date(2025, 1, 1))
	assert.Contains(t, msg, "раньше даты рождения")
}

func TestValidate_Under14(t *testing.T) {
	issues := rules.Validate(
		date(2015, 1, 1),
		date(2024, 1, 1),
		date(2025, 1, 1),
	)

	assert.Equal(t, []rules.Issue{
		rules.IssueUnder14,
		rules.IssueIssueBeforeEligible,
	}, issues)
}

func TestValidate_FutureDates_AllChecksRun(t *testing.T) {
	// Nothing short-circuits: a birth date in the future trips every check
	// that depends on it, in declaration order.
	issues := rules.Validate(
		date(2030, 1, 1),
		date(2031, 1, 1),
		date(2025, 1, 1),
	)

	assert.Equal(t, []rules.Issue{
		rules.IssueBirthInFuture,
		rules.IssueIssueInFuture,
		rules.IssueUnder14,
		rules.IssueIssueBeforeEligible,
		rules.IssueBirthOutOfRange,
		rules.IssueIssueOutOfRange,
	}, issues)
}

func TestValidate_CalendarLowerBound(t *testing.T) {
	// Births before 1900 are rejected as data-entry mistakes even when the
	// cross-field checks all pass.
	issues := rules.Validate(
		date(1890, 1, 1),
		date(1910, 1, 1),
		date(2025, 1, 1),
	)

	assert.Equal(t, []rules.Issue{rules.IssueBirthOutOfRange}, issues)
}

func TestValidate_EligibilityBoundary(t *testing.T) {
	birth := date(2000, 5, 10)
	d14 := date(2014, 5, 10)

	// Issued exactly on the 14th birthday: allowed.
	assert.Empty(t, rules.Validate(birth, d14, date(2025, 1, 1)))

	// One day earlier: rejected.
	issues := rules.Validate(birth, d14.AddDate(0, 0, -1), date(2025, 1, 1))
	assert.Equal(t, []rules.Issue{rules.IssueIssueBeforeEligible}, issues)
}

func TestValidate_LeaplingEligibility(t *testing.T) {
	// Feb-29 birth clamps d14 to 2014-02-28; the holder counts as 14 from
	// that day on.
	birth := date(2000, 2, 29)

	assert.Empty(t, rules.Validate(birth, date(2014, 2, 28), date(2025, 1, 1)))

	issues := rules.Validate(birth, date(2014, 2, 27), date(2025, 1, 1))
	assert.Equal(t, []rules.Issue{rules.IssueIssueBeforeEligible}, issues)
}

func TestIssue_Messages(t *testing.T) {
	today := date(2025, 6, 1)

	// Range messages embed the allowed calendar bounds in display format.
	assert.Equal(t,
		"Дата рождения должна быть в диапазоне 01.01.1900–01.06.2025.",
		rules.IssueBirthOutOfRange.Message(today))
	assert.Equal(t,
		"Дата выдачи должна быть в диапазоне 01.01.1900–01.06.2025.",
		rules.IssueIssueOutOfRange.Message(today))

	// Every issue renders non-empty text.
	all := []rules.Issue{
		rules.IssueBirthInFuture,
		rules.IssueIssueInFuture,
		rules.IssueIssueBeforeBirth,
		rules.IssueUnder14,
		rules.IssueIssueBeforeEligible,
		rules.IssueBirthOutOfRange,
		rules.IssueIssueOutOfRange,
	}
	for _, i := range all {
		assert.NotEmpty(t, i.Message(today), "Issue %s must have rule text", i)
	}
}

func TestMessages_PreservesOrder(t *testing.T) {
	today := date(2025, 1, 1)
	issues := rules.Validate(date(2030, 1, 1), date(2031, 1, 1), today)

	msgs := rules.Messages(issues, today)

	assert.Len(t, msgs, len(issues))
	for idx, i := range issues {
		assert.Equal(t, i.Message(today), msgs[idx])
	}
}
