package ui

import "image/color"

// UI-wide constants to avoid magic numbers/strings scattered across the codebase.

// Icons (emojis/symbols)
const (
	IconCupFull  = "💧"
	IconCupEmpty = "○"
	IconLanguage = "🌐"
	IconEntryDot = "•"
)

// Text fragments
const (
	MiddleDotSeparator = " · "
	DashPlaceholder    = "—"
	WaterLabelFormat   = "%d / %d %s"
	SleepLabelFormat   = "%.1f %s"
	WeightLabelFormat  = "%.1f kg"
	ChangeLabelFormat  = "%+.1f kg"
	ShortDateLayout    = "01/02"
)

// Layout sizing
const (
	ChartMinWidth  float32 = 480
	ChartMinHeight float32 = 240

	PointRadius       float32 = 4
	PointRadiusActive float32 = 6
	LineWidth         float32 = 2
	GridLineWidth     float32 = 1
	TickTextSize      float32 = 11

	TooltipPadding float32 = 6

	CalendarCellMinHeight float32 = 56
	WeeklyCellMinWidth    float32 = 110
	NotesMinRows                  = 3
)

// Chart palette
var (
	ChartLineColor    = color.NRGBA{R: 46, G: 160, B: 67, A: 255}
	ChartPointColor   = color.NRGBA{R: 25, G: 118, B: 210, A: 255}
	ChartGridColor    = color.NRGBA{R: 128, G: 128, B: 128, A: 64}
	ChartTooltipColor = color.NRGBA{R: 33, G: 33, B: 33, A: 230}
	ChartTooltipText  = color.NRGBA{R: 255, G: 255, B: 255, A: 255}
)
