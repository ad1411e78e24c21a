package ui

import (
	"time"

	"fyne.io/fyne/v2/driver/mobile"
	"fyne.io/fyne/v2/widget"

	"github.com/Shima-cpu/Ru-passport-validity-calculator/internal/config"
	"github.com/Shima-cpu/Ru-passport-validity-calculator/internal/rules"
)

// DateEntry is a custom Entry widget for DD.MM.YYYY dates.
// It embeds widget.Entry to inherit all standard behavior.
type DateEntry struct {
	widget.Entry
}

// NewDateEntry creates a new instance of DateEntry.
func NewDateEntry() *DateEntry {
	entry := &DateEntry{}
	entry.ExtendBaseWidget(entry)
	entry.PlaceHolder = config.DateFormatRU
	return entry
}

// TypedRune intercepts text input events.
// It filters characters to digits and the date separator.
func (e *DateEntry) TypedRune(r rune) {
	if (r >= '0' && r <= '9') || r == '.' {
		e.Entry.TypedRune(r)
	}
	// Ignore everything else. Pasted text bypasses this filter and is
	// caught by Date() when the form is evaluated.
}

// Keyboard overrides the default keyboard type.
// This ensures that on mobile devices, a numeric keypad is shown.
func (e *DateEntry) Keyboard() mobile.KeyboardType {
	return mobile.NumberKeyboard
}

// Date parses the current text as a calendar date.
func (e *DateEntry) Date() (time.Time, error) {
	t, err := time.Parse(config.DateFormatRU, e.Text)
	if err != nil {
		return time.Time{}, err
	}
	return rules.Day(t), nil
}

// SetDate formats a date into the entry.
func (e *DateEntry) SetDate(t time.Time) {
	e.SetText(t.Format(config.DateFormatRU))
}
