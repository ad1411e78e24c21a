package ui

import (
	"context"
	"log/slog"
	"time"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/widget"
	"github.com/nicksnyder/go-i18n/v2/i18n"

	"github.com/Shima-cpu/Ru-passport-validity-calculator/internal/config"
	"github.com/Shima-cpu/Ru-passport-validity-calculator/internal/rules"
)

// PassportApp encapsulates the UI state, preferences, and form logic.
type PassportApp struct {
	App         fyne.App
	Window      fyne.Window
	Preferences fyne.Preferences
	I18nBundle  *i18n.Bundle
	Localizer   *i18n.Localizer
	Ctx         context.Context

	Clock rules.Clock // Injected clock for testability (e.g. mocking time travel)

	SupportedLanguages []string

	settingsWindow fyne.Window
	contactsWindow fyne.Window

	// Form widgets, built once in BuildMainWindow.
	birthEntry  *DateEntry
	issueEntry  *DateEntry
	errorsLabel *widget.Label
	resultCard  *resultWidgets

	// Last successful evaluation, consumed by the export action.
	lastResult rules.Result
	hasResult  bool
}

// NewPassportApp constructs the application and wires dependencies.
func NewPassportApp(a fyne.App, ctx context.Context) *PassportApp {
	return &PassportApp{
		App:                a,
		Preferences:        a.Preferences(),
		Ctx:                ctx,
		Clock:              rules.RealClock{}, // Default to real clock in production
		SupportedLanguages: config.SupportedLanguages,
	}
}

// Run launches the main window and blocks until the application quits.
func (app *PassportApp) Run() {
	app.SetupI18n()
	app.BuildMainWindow()
	app.Window.Show()
	app.App.Run()
}

// buildStageFormatter returns a closure that localizes stage labels for the
// rule core.
func (app *PassportApp) buildStageFormatter() func(stage rules.Stage) string {
	return func(stage rules.Stage) string {
		var key string
		switch stage {
		case rules.Stage14:
			key = config.TKeyStage14
		case rules.Stage20:
			key = config.TKeyStage20
		case rules.Stage45:
			key = config.TKeyStage45
		default:
			key = config.TKeyStageUnknown
		}

		if app.Localizer == nil {
			return "" // Calculator falls back to the built-in label
		}
		msg, err := app.Localizer.Localize(&i18n.LocalizeConfig{MessageID: key})
		if err != nil {
			return ""
		}
		return msg
	}
}

// buildSummaryFormatter returns a closure that localizes the exported
// calendar event titles.
func (app *PassportApp) buildSummaryFormatter() func(kind string) string {
	return func(kind string) string {
		key := config.TKeyEvtRenewal
		if kind == config.EventKindDeadline {
			key = config.TKeyEvtDeadline
		}
		if app.Localizer == nil {
			return ""
		}
		msg, err := app.Localizer.Localize(&i18n.LocalizeConfig{MessageID: key})
		if err != nil {
			return ""
		}
		return msg
	}
}

// statusMessage renders the localized status line for a result.
func (app *PassportApp) statusMessage(res rules.Result) string {
	var key string
	data := map[string]interface{}{}

	switch res.Status {
	case rules.StatusNoMore:
		key = config.TKeyStatusNoMore
	case rules.StatusInvalid:
		key = config.TKeyStatusInvalid
	case rules.StatusDue:
		key = config.TKeyStatusDue
		data["Days"] = res.DaysLeft
	default:
		key = config.TKeyStatusOK
		data["Days"] = res.DaysLeft
	}

	return app.GetMsgData(key, data)
}

// localizeIssue maps a validation finding to its localized message.
// The range messages receive the allowed calendar bounds as template data.
func (app *PassportApp) localizeIssue(issue rules.Issue, today time.Time) string {
	var key string
	data := map[string]interface{}{}

	switch issue {
	case rules.IssueBirthInFuture:
		key = config.TKeyErrBirthFuture
	case rules.IssueIssueInFuture:
		key = config.TKeyErrIssueFuture
	case rules.IssueIssueBeforeBirth:
		key = config.TKeyErrIssueBeforeDOB
	case rules.IssueUnder14:
		key = config.TKeyErrUnder14
	case rules.IssueIssueBeforeEligible:
		key = config.TKeyErrIssueTooEarly
	case rules.IssueBirthOutOfRange:
		key = config.TKeyErrBirthRange
	case rules.IssueIssueOutOfRange:
		key = config.TKeyErrIssueRange
	default:
		return issue.Message(today)
	}

	if key == config.TKeyErrBirthRange || key == config.TKeyErrIssueRange {
		data["Min"] = config.MinCalendarDate.Format(app.displayDateFormat())
		data["Max"] = rules.Day(today).Format(app.displayDateFormat())
	}

	if app.Localizer == nil {
		return issue.Message(today)
	}
	msg, err := app.Localizer.Localize(&i18n.LocalizeConfig{
		MessageID:    key,
		TemplateData: data,
	})
	if err != nil {
		slog.Debug(config.MsgTransMissing,
			config.LogKeyComponent, config.CompI18n,
			config.LogKeyKey, key,
			config.LogKeyError, err,
		)
		return issue.Message(today)
	}
	return msg
}

// displayDateFormat retrieves the localized date layout.
func (app *PassportApp) displayDateFormat() string {
	format := app.GetMsg(config.TKeyFormatDate)
	if format == config.TKeyFormatDate {
		format = config.DateFormatRU
	}
	return format
}
