package ui

import (
	"log/slog"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/widget"

	"github.com/Shima-cpu/Ru-passport-validity-calculator/internal/config"
	"github.com/Shima-cpu/Ru-passport-validity-calculator/internal/contacts"
)

// ShowContactsWindow displays a picker over the loaded vCard entries.
// Tapping a row copies the contact's birth date into the form and closes
// the window. It implements a singleton pattern: if the window is already
// open, it is rebuilt with the new entries.
func (app *PassportApp) ShowContactsWindow(entries []contacts.Entry) {
	if app.contactsWindow != nil {
		app.contactsWindow.Close()
	}

	title := app.GetMsg(config.TKeyWinContacts)
	app.contactsWindow = app.App.NewWindow(title)
	app.contactsWindow.Resize(fyne.NewSize(config.ContactsWinWidth, config.ContactsWinHeight))

	slog.Info(config.LogMsgOpenWin,
		config.LogKeyComponent, config.CompUI,
		config.LogKeyCount, len(entries))

	format := app.displayDateFormat()

	table := widget.NewTable(
		// Length callback
		func() (int, int) {
			return len(entries), config.LayoutColumnsDouble
		},
		// Create cell callback
		func() fyne.CanvasObject {
			return widget.NewLabel(config.TablePlaceholder)
		},
		// Update cell callback
		func(id widget.TableCellID, o fyne.CanvasObject) {
			label := o.(*widget.Label)
			if id.Row >= len(entries) {
				return
			}
			c := entries[id.Row]

			switch id.Col {
			case config.ColIDName:
				label.SetText(c.Name)
			case config.ColIDBirth:
				label.SetText(c.DateOfBirth.Format(format))
			}
		},
	)

	table.ShowHeaderRow = true
	table.CreateHeader = func() fyne.CanvasObject {
		return widget.NewLabel(config.TablePlaceholder)
	}
	table.UpdateHeader = func(id widget.TableCellID, o fyne.CanvasObject) {
		label := o.(*widget.Label)
		label.TextStyle = fyne.TextStyle{Bold: true}

		switch id.Col {
		case config.ColIDName:
			label.SetText(app.GetMsg(config.TKeyColName))
		case config.ColIDBirth:
			label.SetText(app.GetMsg(config.TKeyColBirth))
		}
	}

	table.SetColumnWidth(config.ColIDName, config.ColWidthName)
	table.SetColumnWidth(config.ColIDBirth, config.ColWidthBirth)

	table.OnSelected = func(id widget.TableCellID) {
		if id.Row < 0 || id.Row >= len(entries) {
			return
		}
		c := entries[id.Row]

		slog.Info(config.LogMsgPicked,
			config.LogKeyComponent, config.CompUI,
			config.LogKeyName, c.Name)

		app.birthEntry.SetDate(c.DateOfBirth)
		app.contactsWindow.Close()
	}

	content := container.NewBorder(nil, nil, nil, nil, table)
	app.contactsWindow.SetContent(content)

	app.contactsWindow.SetOnClosed(func() {
		app.contactsWindow = nil
	})

	app.contactsWindow.Show()
}
