package ui

import (
	"fmt"
	"strconv"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/widget"

	"github.com/ytget/health-diary/internal/chart"
	"github.com/ytget/health-diary/internal/diary"
)

// AnalysisView shows the 30-day weight trend and averages
type AnalysisView struct {
	state        *diary.State
	localization *Localization

	// chart is nil when there are not enough points
	chart        *WeightChart
	messageLabel *widget.Label

	content fyne.CanvasObject
}

// NewAnalysisView builds the view from the current snapshot
func NewAnalysisView(state *diary.State, localization *Localization) *AnalysisView {
	v := &AnalysisView{
		state:        state,
		localization: localization,
	}
	v.createUI()
	return v
}

// Container returns the root object of the view
func (v *AnalysisView) Container() fyne.CanvasObject {
	return v.content
}

func (v *AnalysisView) createUI() {
	data := v.state.Diary().Data()
	now := v.state.Now()

	title := widget.NewLabel(v.localization.GetText(KeyWeightTrend))
	title.TextStyle = fyne.TextStyle{Bold: true}

	var trend fyne.CanvasObject
	points := chart.PointsFromDaily(data.Daily, now, chart.TrendDays)
	if chart.CanRender(points) {
		v.chart = NewWeightChart(points)
		trend = v.chart
	} else {
		v.messageLabel = widget.NewLabel(v.localization.GetText(KeyNotEnoughData))
		v.messageLabel.Wrapping = fyne.TextWrapWord
		v.messageLabel.Alignment = fyne.TextAlignCenter
		trend = v.messageLabel
	}

	summary := chart.Summarize(data.Daily, now, chart.TrendDays)

	v.content = container.NewVScroll(container.NewVBox(
		title,
		trend,
		widget.NewCard("", "", v.createSummary(summary)),
	))
}

// createSummary lays out the averages next to each other
func (v *AnalysisView) createSummary(s chart.Summary) fyne.CanvasObject {
	latest, change, average := DashPlaceholder, DashPlaceholder, DashPlaceholder
	if s.HasWeight {
		latest = s.Latest.Raw + " kg"
		average = fmt.Sprintf(WeightLabelFormat, s.AvgWeight)
		if s.WeightDays >= chart.MinPoints {
			change = fmt.Sprintf(ChangeLabelFormat, s.Change)
		}
	}

	sleep, water := DashPlaceholder, DashPlaceholder
	if s.DaysLogged > 0 {
		sleep = fmt.Sprintf(SleepLabelFormat, s.AvgSleep, v.localization.GetText(KeyHours))
		water = fmt.Sprintf("%.1f %s", s.AvgWater, v.localization.GetText(KeyCups))
	}

	return container.NewGridWithColumns(3,
		statBlock(v.localization.GetText(KeyLatest), latest),
		statBlock(v.localization.GetText(KeyChange), change),
		statBlock(v.localization.GetText(KeyAverage), average),
		statBlock(v.localization.GetText(KeyDaysLogged), strconv.Itoa(s.DaysLogged)),
		statBlock(v.localization.GetText(KeyAvgSleep), sleep),
		statBlock(v.localization.GetText(KeyAvgWater), water),
	)
}

func statBlock(caption, value string) fyne.CanvasObject {
	valueLabel := widget.NewLabel(value)
	valueLabel.TextStyle = fyne.TextStyle{Bold: true}
	return container.NewVBox(widget.NewLabel(caption), valueLabel)
}
