package ui

import (
	"fmt"
	"image/color"
	"strconv"
	"time"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/canvas"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/theme"
	"fyne.io/fyne/v2/widget"

	"github.com/ytget/health-diary/internal/calendar"
	"github.com/ytget/health-diary/internal/diary"
)

// CalendarView shows a month grid; tapping a day opens it in the daily view
type CalendarView struct {
	state        *diary.State
	localization *Localization

	cells    []calendar.Cell
	buttons  []*widget.Button
	dayTexts []*canvas.Text
	markers  []*canvas.Text

	content fyne.CanvasObject
}

// NewCalendarView builds the grid for the displayed month
func NewCalendarView(state *diary.State, localization *Localization) *CalendarView {
	v := &CalendarView{
		state:        state,
		localization: localization,
	}
	v.createUI()
	return v
}

// Container returns the root object of the view
func (v *CalendarView) Container() fyne.CanvasObject {
	return v.content
}

func (v *CalendarView) createUI() {
	data := v.state.Diary().Data()
	month := v.state.Month()
	v.cells = calendar.Grid(month, v.state.Now(), data.HasDaily)

	prevBtn := widget.NewButton(v.localization.GetText(KeyPrevious), func() { v.state.ShiftMonth(-1) })
	nextBtn := widget.NewButton(v.localization.GetText(KeyNext), func() { v.state.ShiftMonth(1) })
	monthLabel := NewSwipeLabel(monthTitle(v.localization, month), v.state.ShiftMonth)
	monthLabel.TextStyle = fyne.TextStyle{Bold: true}
	monthLabel.Alignment = fyne.TextAlignCenter
	header := container.NewBorder(nil, nil, prevBtn, nextBtn, monthLabel)

	grid := container.NewGridWithColumns(calendar.DaysPerWeek)
	for _, name := range v.localization.GetList(KeyWeekdaysShort) {
		label := widget.NewLabel(name)
		label.Alignment = fyne.TextAlignCenter
		grid.Add(label)
	}

	v.buttons = make([]*widget.Button, len(v.cells))
	v.dayTexts = make([]*canvas.Text, len(v.cells))
	v.markers = make([]*canvas.Text, len(v.cells))
	for i, cell := range v.cells {
		grid.Add(v.createDayCell(i, cell))
	}

	v.content = container.NewVScroll(container.NewVBox(header, grid))
}

// createDayCell creates the tappable cell for one grid day. The button fills
// the cell; the day number and entry marker are drawn on top of it.
func (v *CalendarView) createDayCell(i int, cell calendar.Cell) fyne.CanvasObject {
	key := cell.Key
	btn := widget.NewButton("", func() { v.state.SelectDate(key) })
	switch {
	case cell.IsToday:
		btn.Importance = widget.HighImportance
	case cell.HasEntry && cell.InMonth:
		btn.Importance = widget.MediumImportance
	default:
		btn.Importance = widget.LowImportance
	}

	dayColor := theme.Color(theme.ColorNameForeground)
	if !cell.InMonth {
		dayColor = theme.Color(ColorNameOutOfMonth)
	}
	dayText := canvas.NewText(strconv.Itoa(cell.Day), dayColor)
	dayText.Alignment = fyne.TextAlignCenter
	if cell.IsToday {
		dayText.TextStyle = fyne.TextStyle{Bold: true}
	}

	marker := canvas.NewText(IconEntryDot, theme.Color(ColorNameEntryMarker))
	marker.Alignment = fyne.TextAlignCenter
	if !cell.HasEntry {
		marker.Hide()
	}

	// Keeps rows tall enough to tap while the grid stretches the width
	spacer := canvas.NewRectangle(color.Transparent)
	spacer.SetMinSize(fyne.NewSize(0, CalendarCellMinHeight))

	v.buttons[i] = btn
	v.dayTexts[i] = dayText
	v.markers[i] = marker
	return container.NewStack(spacer, btn, container.NewCenter(container.NewVBox(dayText, marker)))
}

// monthTitle formats a month heading in the active language
func monthTitle(l *Localization, m calendar.Month) string {
	names := l.GetList(KeyMonths)
	name := m.Month.String()
	if i := int(m.Month) - 1; i >= 0 && i < len(names) {
		name = names[i]
	}
	return fmt.Sprintf(l.GetText(KeyMonthTitle), m.Year, name)
}

// weekdayName returns the short localized weekday name for t
func weekdayName(l *Localization, t time.Time) string {
	names := l.GetList(KeyWeekdaysShort)
	if i := int(t.Weekday()); i < len(names) {
		return names[i]
	}
	return t.Weekday().String()
}
