// Package contacts reads birth dates from local vCard files so the form can
// be prefilled without retyping the date.
package contacts

import (
	"errors"
	"io"
	"log/slog"
	"os"
	"sort"
	"strings"
	"time"

	"github.com/emersion/go-vcard"

	"github.com/Shima-cpu/Ru-passport-validity-calculator/internal/config"
	"github.com/Shima-cpu/Ru-passport-validity-calculator/internal/rules"
)

// Entry is a lightweight contact record for the picker table.
type Entry struct {
	// Name is the display name (Formatted Name or Structured Name).
	Name string

	// DateOfBirth is the parsed BDAY value, normalized to midnight UTC.
	// The year is always present: truncated --MM-DD values are skipped
	// because the renewal rules need a full birth date.
	DateOfBirth time.Time
}

// LoadFile reads a local .vcf/.vcard file.
func LoadFile(path string) ([]Entry, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	// Best effort close. Errors in Close() for read-only files are rarely actionable here.
	defer func() { _ = f.Close() }()
	return Load(f)
}

// Load parses a vCard stream and returns the contacts carrying a usable
// birth date, sorted by name. Malformed cards are skipped, not fatal, to
// maximize data recovery.
func Load(r io.Reader) ([]Entry, error) {
	decoder := vcard.NewDecoder(r)
	var entries []Entry

	for {
		card, err := decoder.Decode()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			slog.Warn(config.MsgSkippedCard,
				config.LogKeyComponent, config.CompContacts,
				config.LogKeyError, err)
			continue
		}

		bday := card.Get(config.VCardBDAY)
		if bday == nil || bday.Value == "" {
			continue
		}

		birthDate, err := parseBirthDate(bday.Value)
		if err != nil {
			slog.Debug(config.MsgSkippedDate,
				config.LogKeyComponent, config.CompContacts,
				config.LogKeyValue, bday.Value)
			continue
		}

		// Name Strategy: FN (Formatted) > N (Structured) > Fallback
		name := config.FallbackName
		if fn := card.Get(config.VCardFN); fn != nil && fn.Value != "" {
			name = fn.Value
		} else if n := card.Get(config.VCardN); n != nil && n.Value != "" {
			name = n.Value
		}

		entries = append(entries, Entry{
			Name:        name,
			DateOfBirth: birthDate,
		})
	}

	sort.Slice(entries, func(i, j int) bool {
		return strings.ToLower(entries[i].Name) < strings.ToLower(entries[j].Name)
	})

	slog.Info(config.MsgContactsLoaded,
		config.LogKeyComponent, config.CompContacts,
		config.LogKeyCount, len(entries))
	return entries, nil
}

// parseBirthDate handles the vCard date formats that include a year.
func parseBirthDate(value string) (time.Time, error) {
	formats := []string{
		config.DateFormatFullDash,
		config.DateFormatFullBasic,
		config.DateFormatRFC3339,
		config.DateFormatFullT,
	}

	for _, f := range formats {
		if t, err := time.Parse(f, value); err == nil {
			return rules.Day(t), nil
		}
	}

	return time.Time{}, errors.New(config.ErrDateParse)
}
