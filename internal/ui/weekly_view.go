package ui

import (
	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/widget"

	"github.com/ytget/health-diary/internal/calendar"
	"github.com/ytget/health-diary/internal/diary"
	"github.com/ytget/health-diary/internal/model"
)

// WeeklyView is the meal planner for the week containing today
type WeeklyView struct {
	state        *diary.State
	localization *Localization
	weekStart    string

	// planEntries is keyed by date, then slot
	planEntries map[string]map[model.MealSlot]*widget.Entry
	notesEntry  *widget.Entry

	content fyne.CanvasObject
}

// NewWeeklyView builds the planner grid from the current snapshot
func NewWeeklyView(state *diary.State, localization *Localization) *WeeklyView {
	v := &WeeklyView{
		state:        state,
		localization: localization,
		weekStart:    state.CurrentWeek(),
		planEntries:  make(map[string]map[model.MealSlot]*widget.Entry),
	}
	v.createUI()
	return v
}

// Container returns the root object of the view
func (v *WeeklyView) Container() fyne.CanvasObject {
	return v.content
}

func (v *WeeklyView) createUI() {
	week := v.state.Diary().Week(v.weekStart)
	start, err := calendar.ParseDate(v.weekStart)
	if err != nil {
		start = calendar.WeekStart(v.state.Now())
	}
	days := calendar.WeekDays(start)

	grid := container.NewGridWithColumns(calendar.DaysPerWeek + 1)

	// Header row
	grid.Add(widget.NewLabel(""))
	for _, date := range days {
		grid.Add(v.createDayHeader(date))
	}

	// One row per meal slot
	for _, slot := range model.MealSlots {
		slotLabel := widget.NewLabel(v.localization.GetText(mealTitleKeys[slot]))
		slotLabel.TextStyle = fyne.TextStyle{Bold: true}
		grid.Add(slotLabel)

		for _, date := range days {
			grid.Add(v.createPlanEntry(date, slot, week.Plan(date, slot)))
		}
	}

	v.notesEntry = widget.NewMultiLineEntry()
	v.notesEntry.SetMinRowsVisible(NotesMinRows)
	v.notesEntry.SetText(week.Notes)
	v.notesEntry.OnChanged = func(text string) {
		v.state.Diary().UpdateWeekly(v.weekStart, func(w *model.WeeklyEntry) { w.Notes = text })
	}

	title := widget.NewLabel(v.localization.GetText(KeyWeeklyPlan) + MiddleDotSeparator + days[0] + " " + DashPlaceholder + " " + days[len(days)-1])
	title.TextStyle = fyne.TextStyle{Bold: true}

	body := container.NewVBox(
		title,
		container.NewHScroll(grid),
		widget.NewCard(v.localization.GetText(KeyWeeklyNotes), "", v.notesEntry),
	)
	v.content = container.NewVScroll(body)
}

// createDayHeader creates the weekday and date label for one column
func (v *WeeklyView) createDayHeader(date string) fyne.CanvasObject {
	t, err := calendar.ParseDate(date)
	if err != nil {
		return widget.NewLabel(date)
	}
	label := widget.NewLabel(weekdayName(v.localization, t) + " " + t.Format(ShortDateLayout))
	label.Alignment = fyne.TextAlignCenter
	if date == calendar.Today(v.state.Now()) {
		label.TextStyle = fyne.TextStyle{Bold: true}
	}
	return label
}

// createPlanEntry creates the text field for one day and slot
func (v *WeeklyView) createPlanEntry(date string, slot model.MealSlot, text string) fyne.CanvasObject {
	entry := widget.NewEntry()
	entry.SetText(text)
	entry.OnChanged = func(value string) {
		v.state.Diary().UpdateWeekly(v.weekStart, func(w *model.WeeklyEntry) {
			w.SetPlan(date, slot, value)
		})
	}

	if v.planEntries[date] == nil {
		v.planEntries[date] = make(map[model.MealSlot]*widget.Entry)
	}
	v.planEntries[date][slot] = entry

	return container.NewGridWrap(fyne.NewSize(WeeklyCellMinWidth, entry.MinSize().Height), entry)
}
