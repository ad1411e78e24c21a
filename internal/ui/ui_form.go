package ui

import (
	"fmt"
	"log/slog"
	"strings"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/dialog"
	"fyne.io/fyne/v2/storage"
	"fyne.io/fyne/v2/theme"
	"fyne.io/fyne/v2/widget"

	"github.com/Shima-cpu/Ru-passport-validity-calculator/internal/config"
	"github.com/Shima-cpu/Ru-passport-validity-calculator/internal/contacts"
	"github.com/Shima-cpu/Ru-passport-validity-calculator/internal/export"
	"github.com/Shima-cpu/Ru-passport-validity-calculator/internal/rules"
)

// resultWidgets holds references to the result card labels so the evaluate
// action can update them in place.
type resultWidgets struct {
	stageValue    *widget.Label
	nextValue     *widget.Label
	deadlineValue *widget.Label
	daysValue     *widget.Label
	statusLabel   *widget.Label
	exportBtn     *widget.Button
}

// BuildMainWindow assembles the two-field form, the result card, and the
// legal note.
func (app *PassportApp) BuildMainWindow() {
	w := app.App.NewWindow(app.GetMsg(config.TKeyWinTitle))
	app.Window = w

	content := app.buildMainContent()
	w.SetContent(content)
	w.Resize(fyne.NewSize(config.MainWindowWidth, content.MinSize().Height))
	w.SetMaster()

	app.clearResult()
}

// RefreshMainWindow rebuilds the main content after a language change,
// preserving whatever the user has typed.
func (app *PassportApp) RefreshMainWindow() {
	if app.Window == nil {
		return
	}

	birthText := app.birthEntry.Text
	issueText := app.issueEntry.Text

	app.Window.SetTitle(app.GetMsg(config.TKeyWinTitle))
	app.Window.SetContent(app.buildMainContent())
	app.clearResult()

	app.birthEntry.SetText(birthText)
	app.issueEntry.SetText(issueText)
}

// buildMainContent constructs the window content with the current locale.
func (app *PassportApp) buildMainContent() fyne.CanvasObject {
	// --- 1. Input Form ---
	app.birthEntry = NewDateEntry()
	app.issueEntry = NewDateEntry()

	itemBirth := widget.NewFormItem(app.GetMsg(config.TKeyLblBirth), app.birthEntry)
	itemBirth.HintText = app.GetMsg(config.TKeyHelpBirth)

	itemIssue := widget.NewFormItem(app.GetMsg(config.TKeyLblIssue), app.issueEntry)
	itemIssue.HintText = app.GetMsg(config.TKeyHelpIssue)

	inputForm := widget.NewForm(itemBirth, itemIssue)

	btnCompute := widget.NewButtonWithIcon(app.GetMsg(config.TKeyBtnCompute), theme.ConfirmIcon(), app.evaluate)
	btnCompute.Importance = widget.HighImportance

	btnContacts := widget.NewButtonWithIcon(app.GetMsg(config.TKeyBtnContacts), theme.AccountIcon(), app.pickFromContacts)
	btnSettings := widget.NewButtonWithIcon(app.GetMsg(config.TKeyBtnSettings), theme.SettingsIcon(), app.ShowSettingsWindow)

	// --- 2. Validation Errors ---
	app.errorsLabel = widget.NewLabel("")
	app.errorsLabel.Wrapping = fyne.TextWrapWord
	app.errorsLabel.Importance = widget.DangerImportance
	app.errorsLabel.Hide()

	// --- 3. Result Card ---
	rw := &resultWidgets{
		stageValue:    widget.NewLabel(""),
		nextValue:     widget.NewLabel(""),
		deadlineValue: widget.NewLabel(""),
		daysValue:     widget.NewLabel(""),
		statusLabel:   widget.NewLabel(""),
	}
	rw.statusLabel.Wrapping = fyne.TextWrapWord
	rw.statusLabel.TextStyle = fyne.TextStyle{Bold: true}

	rw.exportBtn = widget.NewButtonWithIcon(app.GetMsg(config.TKeyBtnExport), theme.DownloadIcon(), app.exportSchedule)
	rw.exportBtn.Disable()
	app.resultCard = rw

	resultForm := widget.NewForm(
		widget.NewFormItem(app.GetMsg(config.TKeyLblStage), rw.stageValue),
		widget.NewFormItem(app.GetMsg(config.TKeyLblNextChange), rw.nextValue),
		widget.NewFormItem(app.GetMsg(config.TKeyLblDeadline), rw.deadlineValue),
		widget.NewFormItem(app.GetMsg(config.TKeyLblDaysLeft), rw.daysValue),
	)

	resultCard := widget.NewCard(app.GetMsg(config.TKeyLblResult), "",
		container.NewVBox(rw.statusLabel, resultForm, rw.exportBtn))

	// --- 4. Legal Note (collapsed by default, as in the original service) ---
	legalLabel := widget.NewLabel(app.GetMsg(config.TKeyLegalText))
	legalLabel.Wrapping = fyne.TextWrapWord
	legal := widget.NewAccordion(widget.NewAccordionItem(app.GetMsg(config.TKeyLblLegal), legalLabel))

	// --- Footer ---
	footerText := fmt.Sprintf(app.GetMsg(config.TKeyLblFooter), config.Version)
	footerLabel := widget.NewLabel(footerText)
	footerLabel.Alignment = fyne.TextAlignCenter
	footerLabel.TextStyle = fyne.TextStyle{Italic: true}

	// Assembly
	return container.NewPadded(container.NewVBox(
		inputForm,
		container.NewGridWithColumns(config.LayoutColumnsDouble, btnContacts, btnCompute),
		app.errorsLabel,
		resultCard,
		legal,
		btnSettings,
		footerLabel,
	))
}

// evaluate runs the validator and, when the input is clean, the calculator.
func (app *PassportApp) evaluate() {
	slog.Info(config.MsgComputeReq, config.LogKeyComponent, config.CompUI)
	app.clearResult()

	birth, errBirth := app.birthEntry.Date()
	issue, errIssue := app.issueEntry.Date()
	if errBirth != nil || errIssue != nil {
		app.showErrors([]string{app.GetMsg(config.TKeyErrDateFormat)})
		return
	}

	today := rules.Day(app.Clock.Now())

	issues := rules.Validate(birth, issue, today)
	if len(issues) > 0 {
		slog.Info(config.MsgValidationFail,
			config.LogKeyComponent, config.CompUI,
			config.LogKeyCount, len(issues),
			config.LogKeyIssues, issues,
		)
		msgs := make([]string, 0, len(issues))
		for _, i := range issues {
			msgs = append(msgs, app.localizeIssue(i, today))
		}
		app.showErrors(msgs)
		return
	}

	calc := &rules.Calculator{
		Clock:       app.Clock,
		FormatStage: app.buildStageFormatter(),
	}
	res := calc.Evaluate(birth, issue)

	app.lastResult = res
	app.hasResult = true
	app.renderResult(res)
}

// showErrors displays the validation messages, order preserved.
func (app *PassportApp) showErrors(msgs []string) {
	app.errorsLabel.SetText(strings.Join(msgs, "\n"))
	app.errorsLabel.Show()
}

// renderResult fills the result card from the evaluation record.
func (app *PassportApp) renderResult(res rules.Result) {
	none := app.GetMsg(config.TKeyValNone)
	format := app.displayDateFormat()

	app.resultCard.stageValue.SetText(res.StageLabel)

	if res.HasNext {
		app.resultCard.nextValue.SetText(res.NextChange.Format(format))
		app.resultCard.deadlineValue.SetText(res.Deadline.Format(format))
	} else {
		app.resultCard.nextValue.SetText(none)
		app.resultCard.deadlineValue.SetText(none)
	}

	if res.HasDays {
		app.resultCard.daysValue.SetText(fmt.Sprintf("%d", res.DaysLeft))
	} else {
		app.resultCard.daysValue.SetText(none)
	}

	app.resultCard.statusLabel.SetText(app.statusMessage(res))
	app.resultCard.statusLabel.Importance = statusImportance(res.Status)
	app.resultCard.statusLabel.Refresh()

	// Exporting needs upcoming dates; terminal and overdue documents have none.
	if res.HasNext && res.Status != rules.StatusInvalid {
		app.resultCard.exportBtn.Enable()
	} else {
		app.resultCard.exportBtn.Disable()
	}
}

// clearResult resets the card and hides stale errors.
func (app *PassportApp) clearResult() {
	app.hasResult = false
	app.errorsLabel.SetText("")
	app.errorsLabel.Hide()

	none := app.GetMsg(config.TKeyValNone)
	app.resultCard.stageValue.SetText(none)
	app.resultCard.nextValue.SetText(none)
	app.resultCard.deadlineValue.SetText(none)
	app.resultCard.daysValue.SetText(none)
	app.resultCard.statusLabel.SetText("")
	app.resultCard.exportBtn.Disable()
}

// statusImportance maps the status kind to the label color.
func statusImportance(kind rules.StatusKind) widget.Importance {
	switch kind {
	case rules.StatusOK:
		return widget.SuccessImportance
	case rules.StatusDue:
		return widget.WarningImportance
	case rules.StatusInvalid:
		return widget.DangerImportance
	default: // StatusNoMore
		return widget.MediumImportance
	}
}

// exportSchedule writes the last result as an .ics file chosen by the user.
func (app *PassportApp) exportSchedule() {
	if !app.hasResult || !app.lastResult.HasNext || app.lastResult.Status == rules.StatusInvalid {
		dialog.ShowInformation(config.AppName, app.GetMsg(config.TKeyErrNoExport), app.Window)
		return
	}

	sched := &export.Schedule{
		Clock:         app.Clock,
		FormatSummary: app.buildSummaryFormatter(),
		AlarmTrigger:  config.DefaultAlarmTrigger,
	}

	data, err := sched.Encode(app.lastResult)
	if err != nil {
		slog.Error(config.ErrICalEncode,
			config.LogKeyComponent, config.CompUI,
			config.LogKeyError, err)
		dialog.ShowInformation(config.AppName, app.GetMsg(config.TKeyNotifExportErr), app.Window)
		return
	}

	d := dialog.NewFileSave(func(wc fyne.URIWriteCloser, err error) {
		if err != nil || wc == nil {
			return
		}
		defer func() { _ = wc.Close() }()

		if _, err := wc.Write(data); err != nil {
			slog.Error(config.ErrWriteFile,
				config.LogKeyComponent, config.CompUI,
				config.LogKeyError, err)
			dialog.ShowInformation(config.AppName, app.GetMsg(config.TKeyNotifExportErr), app.Window)
			return
		}

		slog.Info(config.MsgExportDone,
			config.LogKeyComponent, config.CompUI,
			config.LogKeySizeBytes, len(data))
		app.App.SendNotification(fyne.NewNotification(config.AppName, app.GetMsg(config.TKeyNotifExportOK)))
	}, app.Window)
	d.SetFileName(config.ICalDomain + config.ExtICS)
	d.SetFilter(storage.NewExtensionFileFilter([]string{config.ExtICS}))
	d.Show()
}

// pickFromContacts opens a vCard file and shows the contact picker.
func (app *PassportApp) pickFromContacts() {
	d := dialog.NewFileOpen(func(r fyne.URIReadCloser, err error) {
		if err != nil || r == nil {
			return
		}
		defer func() { _ = r.Close() }()

		entries, err := contacts.Load(r)
		if err != nil {
			slog.Error(config.ErrVCardParse,
				config.LogKeyComponent, config.CompUI,
				config.LogKeyError, err)
			dialog.ShowInformation(config.AppName, app.GetMsg(config.TKeyNotifContactErr), app.Window)
			return
		}
		if len(entries) == 0 {
			dialog.ShowInformation(config.AppName, app.GetMsg(config.TKeyMsgNoContacts), app.Window)
			return
		}

		app.ShowContactsWindow(entries)
	}, app.Window)
	d.SetFilter(storage.NewExtensionFileFilter([]string{config.ExtVCF, config.ExtVCard}))
	d.Show()
}
