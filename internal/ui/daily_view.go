package ui

import (
	"fmt"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/widget"

	"github.com/ytget/health-diary/internal/calendar"
	"github.com/ytget/health-diary/internal/diary"
	"github.com/ytget/health-diary/internal/model"
)

var mealTitleKeys = map[model.MealSlot]TextKey{
	model.MealBreakfast: KeyBreakfast,
	model.MealLunch:     KeyLunch,
	model.MealSnack:     KeySnack,
	model.MealDinner:    KeyDinner,
}

// DailyView is the form for everything logged on the selected date
type DailyView struct {
	state        *diary.State
	localization *Localization
	date         string

	// Exposed for tests
	waterPicker  *WaterPicker
	weightEntry  *widget.Entry
	sleepSlider  *widget.Slider
	energySlider *widget.Slider
	menuEntries  map[model.MealSlot]*widget.Entry
	ratingGroups map[model.MealSlot]*widget.RadioGroup

	content fyne.CanvasObject
}

// NewDailyView builds the form from the current snapshot
func NewDailyView(state *diary.State, localization *Localization) *DailyView {
	v := &DailyView{
		state:        state,
		localization: localization,
		date:         state.SelectedDate(),
		menuEntries:  make(map[model.MealSlot]*widget.Entry),
		ratingGroups: make(map[model.MealSlot]*widget.RadioGroup),
	}
	v.createUI()
	return v
}

// Container returns the root object of the view
func (v *DailyView) Container() fyne.CanvasObject {
	return v.content
}

func (v *DailyView) createUI() {
	entry := v.state.Diary().Entry(v.date)

	meals := container.NewGridWithColumns(adaptiveColumns(2))
	for _, slot := range model.MealSlots {
		meals.Add(v.createMealCard(slot, entry.Meal(slot)))
	}

	v.waterPicker = NewWaterPicker(entry.Water, v.localization)
	v.waterPicker.OnChanged = func(cups int) {
		v.update(func(e *model.DailyEntry) { e.Water = model.ClampWater(cups) })
	}

	v.weightEntry = widget.NewEntry()
	v.weightEntry.SetPlaceHolder(v.localization.GetText(KeyWeightHint))
	v.weightEntry.SetText(entry.Weight)
	v.weightEntry.OnChanged = func(text string) {
		v.update(func(e *model.DailyEntry) { e.Weight = text })
	}

	sleepLabel := widget.NewLabel(v.sleepText(entry.Sleep))
	v.sleepSlider = widget.NewSlider(model.MinSleep, model.MaxSleep)
	v.sleepSlider.Step = model.SleepStep
	v.sleepSlider.Value = model.ClampSleep(entry.Sleep)
	v.sleepSlider.OnChanged = func(hours float64) {
		hours = model.ClampSleep(hours)
		sleepLabel.SetText(v.sleepText(hours))
		v.update(func(e *model.DailyEntry) { e.Sleep = hours })
	}

	energyLabel := widget.NewLabel(v.energyText(entry.Energy))
	v.energySlider = widget.NewSlider(model.MinEnergy, model.MaxEnergy)
	v.energySlider.Step = 1
	v.energySlider.Value = float64(model.ClampEnergy(entry.Energy))
	v.energySlider.OnChanged = func(level float64) {
		energy := model.ClampEnergy(int(level + 0.5))
		energyLabel.SetText(v.energyText(energy))
		v.update(func(e *model.DailyEntry) { e.Energy = energy })
	}

	exerciseEntry := widget.NewMultiLineEntry()
	exerciseEntry.SetMinRowsVisible(2)
	exerciseEntry.SetPlaceHolder(v.localization.GetText(KeyExerciseHint))
	exerciseEntry.SetText(entry.Exercise)
	exerciseEntry.OnChanged = func(text string) {
		v.update(func(e *model.DailyEntry) { e.Exercise = text })
	}

	notesEntry := widget.NewMultiLineEntry()
	notesEntry.SetMinRowsVisible(NotesMinRows)
	notesEntry.SetText(entry.Notes)
	notesEntry.OnChanged = func(text string) {
		v.update(func(e *model.DailyEntry) { e.Notes = text })
	}

	health := widget.NewForm(
		widget.NewFormItem(v.localization.GetText(KeyWater), v.waterPicker),
		widget.NewFormItem(v.localization.GetText(KeyWeight), v.weightEntry),
		widget.NewFormItem(v.localization.GetText(KeySleep), container.NewBorder(nil, nil, nil, sleepLabel, v.sleepSlider)),
		widget.NewFormItem(v.localization.GetText(KeyEnergy), container.NewBorder(nil, nil, nil, energyLabel, v.energySlider)),
		widget.NewFormItem(v.localization.GetText(KeyExercise), exerciseEntry),
	)

	body := container.NewVBox(
		v.createNavigation(),
		meals,
		widget.NewCard("", "", health),
		widget.NewCard(v.localization.GetText(KeyDailyNotes), "", notesEntry),
	)
	v.content = container.NewVScroll(body)
}

// createNavigation creates the previous/today/next row above the form
func (v *DailyView) createNavigation() fyne.CanvasObject {
	prevBtn := widget.NewButton(v.localization.GetText(KeyPrevious), func() { v.state.ShiftDay(-1) })
	nextBtn := widget.NewButton(v.localization.GetText(KeyNext), func() { v.state.ShiftDay(1) })
	todayBtn := widget.NewButton(v.localization.GetText(KeyToday), v.state.GoToToday)
	todayBtn.Importance = widget.LowImportance

	dateLabel := NewSwipeLabel(v.dateText(), v.state.ShiftDay)
	dateLabel.TextStyle = fyne.TextStyle{Bold: true}
	dateLabel.Alignment = fyne.TextAlignCenter

	return container.NewBorder(nil, nil, prevBtn, container.NewHBox(todayBtn, nextBtn), dateLabel)
}

// createMealCard creates the editor for one meal slot
func (v *DailyView) createMealCard(slot model.MealSlot, meal model.MealEntry) fyne.CanvasObject {
	timeEntry := widget.NewEntry()
	timeEntry.SetText(meal.Time)
	timeEntry.OnChanged = func(text string) {
		v.updateMeal(slot, func(m *model.MealEntry) { m.Time = text })
	}

	menuEntry := widget.NewEntry()
	menuEntry.SetPlaceHolder(v.localization.GetText(KeyMenuHint))
	menuEntry.SetText(meal.Menu)
	menuEntry.OnChanged = func(text string) {
		v.updateMeal(slot, func(m *model.MealEntry) { m.Menu = text })
	}
	v.menuEntries[slot] = menuEntry

	labels := v.localization.GetList(KeyRatingLabels)
	rating := widget.NewRadioGroup(labels, nil)
	rating.Horizontal = true
	if meal.HasRating() && meal.Rating <= len(labels) {
		rating.Selected = labels[meal.Rating-1]
	}
	rating.OnChanged = func(selected string) {
		value := ratingFromLabel(labels, selected)
		v.updateMeal(slot, func(m *model.MealEntry) { m.Rating = value })
	}
	v.ratingGroups[slot] = rating

	notesEntry := widget.NewEntry()
	notesEntry.SetText(meal.Notes)
	notesEntry.OnChanged = func(text string) {
		v.updateMeal(slot, func(m *model.MealEntry) { m.Notes = text })
	}

	form := widget.NewForm(
		widget.NewFormItem(v.localization.GetText(KeyMealTime), timeEntry),
		widget.NewFormItem(v.localization.GetText(KeyMenu), menuEntry),
		widget.NewFormItem(v.localization.GetText(KeyRating), rating),
		widget.NewFormItem(v.localization.GetText(KeyMealNotes), notesEntry),
	)
	return widget.NewCard(v.localization.GetText(mealTitleKeys[slot]), "", form)
}

func (v *DailyView) update(fn func(*model.DailyEntry)) {
	v.state.Diary().UpdateDaily(v.date, fn)
}

func (v *DailyView) updateMeal(slot model.MealSlot, fn func(*model.MealEntry)) {
	v.update(func(e *model.DailyEntry) {
		meal := e.Meal(slot)
		fn(&meal)
		if e.Meals == nil {
			e.Meals = make(map[model.MealSlot]model.MealEntry, len(model.MealSlots))
		}
		e.Meals[slot] = meal
	})
}

func (v *DailyView) dateText() string {
	t, err := calendar.ParseDate(v.date)
	if err != nil {
		return v.date
	}
	return v.date + " (" + weekdayName(v.localization, t) + ")"
}

func (v *DailyView) sleepText(hours float64) string {
	return fmt.Sprintf(SleepLabelFormat, model.ClampSleep(hours), v.localization.GetText(KeyHours))
}

func (v *DailyView) energyText(level int) string {
	labels := v.localization.GetList(KeyEnergyLabels)
	level = model.ClampEnergy(level)
	if level-1 < len(labels) {
		return labels[level-1]
	}
	return fmt.Sprint(level)
}

// ratingFromLabel returns the 1-based rating for a label, or 0 when cleared
func ratingFromLabel(labels []string, selected string) int {
	for i, label := range labels {
		if label == selected {
			return model.ClampRating(i + 1)
		}
	}
	return 0
}
