package config_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/Shima-cpu/Ru-passport-validity-calculator/internal/config"
)

// TestConstants_Integrity ensures critical constants are not empty or malformed.
// This prevents accidental deletion of keys required for runtime or UI logic.
func TestConstants_Integrity(t *testing.T) {
	tests := []struct {
		name  string
		value string
	}{
		{"AppName", config.AppName},
		{"AppID", config.AppID},
		{"Version", config.Version},
		{"ICalVersion", config.ICalVersion},
		{"ICalProdid", config.ICalProdid},
		{"DefaultLanguage", config.DefaultLanguage},
		{"DateFormatRU", config.DateFormatRU},
		{"DefaultAlarmTrigger", config.DefaultAlarmTrigger},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.NotEmpty(t, tt.value, "Critical constant %s should not be empty", tt.name)
		})
	}
}

// TestRuleThresholds_Sanity checks the statutory values against the federal
// regulation they encode.
func TestRuleThresholds_Sanity(t *testing.T) {
	t.Parallel()

	assert.Equal(t, 14, config.AgeFirstIssue, "First issue is at 14")
	assert.Equal(t, 20, config.AgeFirstRenewal, "First exchange is at 20")
	assert.Equal(t, 45, config.AgeFinalRenewal, "Final exchange is at 45")
	assert.Equal(t, 90, config.GraceDays, "Filing window is 90 days")

	assert.Less(t, config.AgeFirstIssue, config.AgeFirstRenewal)
	assert.Less(t, config.AgeFirstRenewal, config.AgeFinalRenewal)
}

// TestCalendarBounds ensures the input range guard stays where the validator
// expects it.
func TestCalendarBounds(t *testing.T) {
	t.Parallel()

	assert.Equal(t, 1900, config.MinCalendarDate.Year())
	assert.Equal(t, time.UTC, config.MinCalendarDate.Location(), "Bounds are compared at UTC midnight")
	assert.Equal(t, time.Duration(0), config.MinCalendarDate.Sub(config.MinCalendarDate.Truncate(24*time.Hour)), "Bound must be a midnight instant")
}

// TestLanguages ensures the default locale is among the supported ones.
func TestLanguages(t *testing.T) {
	assert.Contains(t, config.SupportedLanguages, config.DefaultLanguage)
}
