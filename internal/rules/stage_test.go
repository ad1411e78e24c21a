package rules

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

// TestClassifyStage covers the threshold windows and their grace boundaries.
// Reference holder: born 1990-01-01, so d14=2004-01-01, d20=2010-01-01,
// d45=2035-01-01.
func TestClassifyStage(t *testing.T) {
	birth := time.Date(1990, 1, 1, 0, 0, 0, 0, time.UTC)

	tests := []struct {
		name  string
		issue time.Time
		want  Stage
		desc  string
	}{
		{
			name:  "Issued exactly at 14",
			issue: time.Date(2004, 1, 1, 0, 0, 0, 0, time.UTC),
			want:  Stage14,
			desc:  "d14 itself opens the first window",
		},
		{
			name:  "Issued within the 14 window",
			issue: time.Date(2006, 8, 20, 0, 0, 0, 0, time.UTC),
			want:  Stage14,
		},
		{
			name:  "Issued on the last grace day after 20",
			issue: time.Date(2010, 4, 1, 0, 0, 0, 0, time.UTC),
			want:  Stage20,
			desc:  "d20+90d belongs to the 20 window, which is checked first",
		},
		{
			name:  "Issued the day before turning 14",
			issue: time.Date(2003, 12, 31, 0, 0, 0, 0, time.UTC),
			want:  StageUnknown,
			desc:  "Before d14 no window matches",
		},
		{
			name:  "Issued exactly at 20",
			issue: time.Date(2010, 1, 1, 0, 0, 0, 0, time.UTC),
			want:  Stage20,
		},
		{
			name:  "Issued late but inside the 20 window",
			issue: time.Date(2030, 5, 5, 0, 0, 0, 0, time.UTC),
			want:  Stage20,
		},
		{
			name:  "Issued exactly at 45",
			issue: time.Date(2035, 1, 1, 0, 0, 0, 0, time.UTC),
			want:  Stage45,
		},
		{
			name:  "Issued after 45",
			issue: time.Date(2040, 3, 3, 0, 0, 0, 0, time.UTC),
			want:  Stage45,
			desc:  "The >=d45 check wins even though d45+90 also bounds the 20 window",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ClassifyStage(birth, tt.issue), tt.desc)
		})
	}
}

// TestClassifyStage_Leapling verifies the windows of a Feb-29 holder.
// d14 clamps to 2014-02-28, d20 lands on 2020-02-29 (leap year).
func TestClassifyStage_Leapling(t *testing.T) {
	birth := time.Date(2000, 2, 29, 0, 0, 0, 0, time.UTC)

	// One day before the clamped d14: no window yet.
	assert.Equal(t, StageUnknown,
		ClassifyStage(birth, time.Date(2014, 2, 27, 0, 0, 0, 0, time.UTC)))

	// The clamped threshold itself opens the window.
	assert.Equal(t, Stage14,
		ClassifyStage(birth, time.Date(2014, 2, 28, 0, 0, 0, 0, time.UTC)))

	// d20 exists as a real Feb 29.
	assert.Equal(t, Stage20,
		ClassifyStage(birth, time.Date(2020, 2, 29, 0, 0, 0, 0, time.UTC)))
}

func TestStage_Strings(t *testing.T) {
	assert.Equal(t, "14", Stage14.String())
	assert.Equal(t, "20", Stage20.String())
	assert.Equal(t, "45", Stage45.String())
	assert.Equal(t, "unknown", StageUnknown.String())

	// Every stage has a non-empty fallback label for the degraded-i18n path.
	for _, s := range []Stage{Stage14, Stage20, Stage45, StageUnknown} {
		assert.NotEmpty(t, s.FallbackLabel())
	}
}
