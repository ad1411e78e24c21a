// Package export renders a computed renewal schedule as an iCalendar file
// that users can import into their calendar application.
package export

import (
	"bytes"
	"crypto/sha256"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/emersion/go-ical"

	"github.com/Shima-cpu/Ru-passport-validity-calculator/internal/config"
	"github.com/Shima-cpu/Ru-passport-validity-calculator/internal/rules"
)

// Schedule builds the iCalendar document for a renewal result.
type Schedule struct {
	Clock rules.Clock // Interface for time mocking.

	// FormatSummary allows the UI to inject localized event titles.
	// It receives config.EventKindRenewal or config.EventKindDeadline.
	FormatSummary func(kind string) string

	// AlarmTrigger is an ISO8601 duration for a DISPLAY alarm on the
	// renewal event (e.g. "-P7D"). Empty disables the alarm.
	AlarmTrigger string
}

// Encode produces the ICS bytes for the result's next change date and grace
// deadline. Terminal results carry no upcoming dates, and overdue results
// carry only past ones; neither can be exported.
func (s *Schedule) Encode(res rules.Result) ([]byte, error) {
	if !res.HasNext || res.Status == rules.StatusInvalid {
		return nil, errors.New(config.ErrNothingToExport)
	}

	clock := s.Clock
	if clock == nil {
		clock = rules.RealClock{}
	}

	cal := ical.NewCalendar()
	cal.Props.SetText(config.PropVersion, config.ICalVersion)
	cal.Props.SetText(config.PropProdid, config.ICalProdid)
	cal.Props.SetText(config.PropXWRCalName, config.ICalCalName)
	cal.Props.SetText(config.PropCalScale, config.ICalScale)
	cal.Props.SetText(config.PropMethod, config.ICalMethod)

	dtStampProp := ical.NewProp(config.PropDTStamp)
	dtStampProp.SetDateTime(clock.Now().UTC())

	renewal := s.buildEvent(config.EventKindRenewal, res.NextChange, config.FallbackEvtRenewal)
	if s.AlarmTrigger != "" {
		addAlarm(renewal, s.AlarmTrigger, s.summary(config.EventKindRenewal, config.FallbackEvtRenewal))
	}

	deadline := s.buildEvent(config.EventKindDeadline, res.Deadline, config.FallbackEvtDeadline)

	for _, e := range []*ical.Event{renewal, deadline} {
		e.Props.Set(dtStampProp)
		cal.Children = append(cal.Children, e.Component)
	}

	var buf bytes.Buffer
	if err := ical.NewEncoder(&buf).Encode(cal); err != nil {
		return nil, fmt.Errorf("%s: %w", config.ErrICalEncode, err)
	}

	slog.Debug(config.MsgExportDone,
		config.LogKeyComponent, config.CompExport,
		config.LogKeyNext, res.NextChange.Format(config.DateFormatFullDash),
		config.LogKeySizeBytes, buf.Len(),
	)
	return buf.Bytes(), nil
}

// buildEvent assembles a full-day VEVENT with a deterministic UID so that
// re-imports replace the previous entry instead of duplicating it.
func (s *Schedule) buildEvent(kind string, date time.Time, fallback string) *ical.Event {
	event := ical.NewEvent()

	input := fmt.Sprintf(config.FormatHashInput, kind, date.Format(time.RFC3339), config.UIDSalt)
	hash := sha256.Sum256([]byte(input))
	uidBase := fmt.Sprintf("%x", hash[:config.UIDHashLength])
	event.Props.SetText(config.PropUID, fmt.Sprintf(config.FormatUID, uidBase, kind, config.ICalDomain))

	event.Props.SetText(config.PropSummary, s.summary(kind, fallback))

	dtStartProp := ical.NewProp(config.PropDTStart)
	dtStartProp.SetDate(date)
	event.Props.Set(dtStartProp)

	return event
}

func (s *Schedule) summary(kind, fallback string) string {
	if s.FormatSummary != nil {
		if text := s.FormatSummary(kind); text != "" {
			return text
		}
	}
	return fallback
}

// addAlarm appends a DISPLAY alarm (notification) to the event.
func addAlarm(event *ical.Event, trigger, description string) {
	alarm := ical.NewComponent(config.ICalComponent)
	alarm.Props.SetText(config.PropAction, config.ICalAction)
	alarm.Props.SetText(config.PropDescription, description)

	// Set trigger manually to avoid "VALUE=TEXT" param
	triggerProp := ical.NewProp(config.PropTrigger)
	triggerProp.Value = trigger
	alarm.Props.Set(triggerProp)

	event.Children = append(event.Children, alarm)
}
