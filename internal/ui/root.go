package ui

import (
	"fmt"
	"log"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/dialog"
	"fyne.io/fyne/v2/widget"

	"github.com/ytget/health-diary/internal/diary"
	"github.com/ytget/health-diary/internal/model"
	"github.com/ytget/health-diary/internal/platform"
)

var viewTitleKeys = map[diary.View]TextKey{
	diary.ViewDaily:    KeyDaily,
	diary.ViewWeekly:   KeyWeekly,
	diary.ViewAnalysis: KeyAnalysis,
	diary.ViewCalendar: KeyCalendar,
}

// viewRenderer is implemented by every main-area view
type viewRenderer interface {
	Container() fyne.CanvasObject
}

// confirmFunc asks the user a yes/no question
type confirmFunc func(title, message string, callback func(bool), parent fyne.Window)

// RootUI represents the main UI structure
type RootUI struct {
	window       fyne.Window
	state        *diary.State
	localization *Localization
	dataDir      string

	// Header
	titleLabel  *widget.Label
	tabButtons  map[diary.View]*widget.Button
	resetBtn    *widget.Button
	languageBtn *widget.Button

	// Main area shows exactly one view
	mainArea    *fyne.Container
	currentView viewRenderer

	confirm confirmFunc
}

// NewRootUI creates and initializes the main UI
func NewRootUI(window fyne.Window, state *diary.State, dataDir string) *RootUI {
	localization := NewLocalization()
	localization.SetLanguage(state.Language())

	ui := &RootUI{
		window:       window,
		state:        state,
		localization: localization,
		dataDir:      dataDir,
		tabButtons:   make(map[diary.View]*widget.Button),
		confirm:      dialog.ShowConfirm,
	}

	// Shell transitions rebuild the main area
	state.SetChangeCallback(ui.render)

	// Edits are made in the daily and weekly views, which already show them.
	// Views derived from the whole document are rebuilt.
	state.Diary().SetUpdateCallback(func(model.AppData) {
		if v := state.View(); v == diary.ViewAnalysis || v == diary.ViewCalendar {
			ui.renderView()
		}
	})

	ui.setupUI()
	ui.render()

	log.Printf("RootUI initialized with language %s, view %s", state.Language(), state.View())
	return ui
}

// setupUI creates and arranges all UI components
func (ui *RootUI) setupUI() {
	ui.titleLabel = widget.NewLabel("")
	ui.titleLabel.TextStyle = fyne.TextStyle{Bold: true}

	tabs := container.NewHBox()
	for _, v := range diary.Views {
		view := v // Capture for closure
		btn := widget.NewButton("", func() { ui.state.SetView(view) })
		ui.tabButtons[view] = btn
		tabs.Add(btn)
	}

	ui.resetBtn = widget.NewButton("", ui.onResetClick)
	ui.resetBtn.Importance = widget.DangerImportance

	ui.languageBtn = widget.NewButton("", ui.state.ToggleLanguage)
	ui.languageBtn.Importance = widget.LowImportance

	header := container.NewBorder(
		nil,
		nil,
		ui.titleLabel,
		container.NewHBox(ui.resetBtn, ui.languageBtn),
		container.NewCenter(tabs),
	)

	ui.mainArea = container.NewStack()

	content := container.NewBorder(
		container.NewVBox(header, widget.NewSeparator()), // top
		nil,         // bottom
		nil,         // left
		nil,         // right
		ui.mainArea, // center
	)

	ui.window.SetContent(content)
	log.Printf("UI setup completed successfully")
}

// createMenu creates the application menu
func (ui *RootUI) createMenu() {
	showDataItem := fyne.NewMenuItem(ui.localization.GetText(KeyShowDataDir), ui.onShowDataDir)

	languageMenu := fyne.NewMenu(IconLanguage)
	for _, code := range []string{ui.localization.GetCurrentLanguage(), ui.localization.NextLanguage()} {
		langCode := code // Capture for closure
		langItem := fyne.NewMenuItem(ui.localization.GetAvailableLanguages()[code], func() {
			ui.state.SetLanguage(langCode)
		})

		// Mark current language
		langItem.Checked = ui.localization.GetCurrentLanguage() == code
		languageMenu.Items = append(languageMenu.Items, langItem)
	}

	ui.window.SetMainMenu(fyne.NewMainMenu(
		fyne.NewMenu(ui.localization.GetText(KeyFile), showDataItem),
		languageMenu,
	))
}

// render brings the header and the main area in line with the state
func (ui *RootUI) render() {
	if ui.localization.GetCurrentLanguage() != ui.state.Language() {
		ui.localization.SetLanguage(ui.state.Language())
	}
	ui.refreshUITexts()
	ui.renderView()
}

// refreshUITexts updates all header texts with the current language
func (ui *RootUI) refreshUITexts() {
	title := ui.localization.GetText(KeyAppTitle)
	ui.window.SetTitle(title)
	ui.titleLabel.SetText(title)

	active := ui.state.View()
	for view, btn := range ui.tabButtons {
		btn.SetText(ui.localization.GetText(viewTitleKeys[view]))
		if view == active {
			btn.Importance = widget.HighImportance
		} else {
			btn.Importance = widget.MediumImportance
		}
		btn.Refresh()
	}

	ui.resetBtn.SetText(ui.localization.GetText(KeyReset))
	if ui.state.CanReset() {
		ui.resetBtn.Enable()
	} else {
		ui.resetBtn.Disable()
	}

	ui.languageBtn.SetText(IconLanguage + " " + ui.localization.GetText(KeyLanguage))

	// Recreate menu to update labels and checkmarks
	ui.createMenu()
}

// renderView rebuilds the active view from the current snapshot
func (ui *RootUI) renderView() {
	switch ui.state.View() {
	case diary.ViewWeekly:
		ui.currentView = NewWeeklyView(ui.state, ui.localization)
	case diary.ViewAnalysis:
		ui.currentView = NewAnalysisView(ui.state, ui.localization)
	case diary.ViewCalendar:
		ui.currentView = NewCalendarView(ui.state, ui.localization)
	default:
		ui.currentView = NewDailyView(ui.state, ui.localization)
	}

	ui.mainArea.Objects = []fyne.CanvasObject{ui.currentView.Container()}
	ui.mainArea.Refresh()
}

// onResetClick asks for confirmation before removing the active view's entry
func (ui *RootUI) onResetClick() {
	target, ok := ui.state.ResetTarget()
	if !ok {
		return
	}

	key := KeyResetDaily
	if ui.state.View() == diary.ViewWeekly {
		key = KeyResetWeekly
	}
	message := fmt.Sprintf(ui.localization.GetText(key), target)

	ui.confirm(ui.localization.GetText(KeyResetTitle), message, func(confirmed bool) {
		if !confirmed {
			return
		}
		ui.state.Reset()
	}, ui.window)
}

// onShowDataDir reveals the directory holding the diary files
func (ui *RootUI) onShowDataDir() {
	if err := platform.CreateDirectoryIfNotExists(ui.dataDir); err != nil {
		log.Printf("Warning: failed to create data directory %s: %v", ui.dataDir, err)
	}
	if err := platform.OpenDirectory(ui.dataDir); err != nil {
		log.Printf("Error opening data directory: %v", err)
		dialog.ShowError(err, ui.window)
	}
}
