package ui

import (
	"testing"
	"time"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/driver/desktop"
	"fyne.io/fyne/v2/test"

	"github.com/ytget/health-diary/internal/chart"
)

func twoPoints() []chart.Point {
	return []chart.Point{
		{Date: "2026-10-18", Time: time.Date(2026, 10, 18, 0, 0, 0, 0, time.Local), Weight: 60.0, Raw: "60.0"},
		{Date: "2026-10-19", Time: time.Date(2026, 10, 19, 0, 0, 0, 0, time.Local), Weight: 62.0, Raw: "62"},
	}
}

func mouseAt(x, y float32) *desktop.MouseEvent {
	return &desktop.MouseEvent{PointEvent: fyne.PointEvent{Position: fyne.NewPos(x, y)}}
}

func newTestChart(t *testing.T, size fyne.Size) (*WeightChart, *weightChartRenderer) {
	t.Helper()
	app := test.NewApp()
	t.Cleanup(app.Quit)

	c := NewWeightChart(twoPoints())
	c.Resize(size)
	r, ok := test.WidgetRenderer(c).(*weightChartRenderer)
	if !ok {
		t.Fatal("Unexpected renderer type")
	}
	return c, r
}

func TestWeightChart_HoverNearestPoint(t *testing.T) {
	// Logical and widget coordinates coincide at 600x300
	c, r := newTestChart(t, fyne.NewSize(600, 300))

	// First point sits at the bottom-left corner of the plot area (50, 260)
	c.MouseIn(mouseAt(55, 255))
	point, ok := c.Hovered()
	if !ok || point.Date != "2026-10-18" {
		t.Fatalf("Expected first point hovered, got %+v (%v)", point, ok)
	}
	if !r.tooltipBg.Visible() {
		t.Error("Expected tooltip to be visible")
	}
	if r.tooltipText.Text != "2026-10-18"+MiddleDotSeparator+"60.0 kg" {
		t.Errorf("Unexpected tooltip text %q", r.tooltipText.Text)
	}

	// Second point sits at the top-right corner (570, 20)
	c.MouseMoved(mouseAt(560, 30))
	if point, ok := c.Hovered(); !ok || point.Date != "2026-10-19" {
		t.Errorf("Expected second point hovered, got %+v (%v)", point, ok)
	}
}

func TestWeightChart_FarPointerClearsTooltip(t *testing.T) {
	c, r := newTestChart(t, fyne.NewSize(600, 300))

	c.MouseMoved(mouseAt(55, 255))
	if _, ok := c.Hovered(); !ok {
		t.Fatal("Expected a hovered point")
	}

	c.MouseMoved(mouseAt(300, 150))
	if _, ok := c.Hovered(); ok {
		t.Error("Expected no hovered point in the middle of the chart")
	}
	if r.tooltipBg.Visible() {
		t.Error("Expected tooltip to be hidden")
	}
}

func TestWeightChart_MouseOutClearsTooltip(t *testing.T) {
	c, r := newTestChart(t, fyne.NewSize(600, 300))

	c.MouseIn(mouseAt(570, 20))
	c.MouseOut()

	if _, ok := c.Hovered(); ok {
		t.Error("Expected no hovered point after MouseOut")
	}
	if r.tooltipText.Visible() {
		t.Error("Expected tooltip text to be hidden")
	}
}

func TestWeightChart_ScaledWidget(t *testing.T) {
	// At double size a widget position maps back to half in logical units
	c, _ := newTestChart(t, fyne.NewSize(1200, 600))

	c.MouseMoved(mouseAt(110, 510))
	if point, ok := c.Hovered(); !ok || point.Date != "2026-10-18" {
		t.Errorf("Expected first point hovered, got %+v (%v)", point, ok)
	}

	// 40 widget units is 20 logical units: still inside the radius
	c.MouseMoved(mouseAt(1140, 80))
	if point, ok := c.Hovered(); !ok || point.Date != "2026-10-19" {
		t.Errorf("Expected second point hovered, got %+v (%v)", point, ok)
	}
}

func TestWeightChart_TapShowsTooltip(t *testing.T) {
	c, _ := newTestChart(t, fyne.NewSize(600, 300))

	c.Tapped(&fyne.PointEvent{Position: fyne.NewPos(50, 260)})
	if _, ok := c.Hovered(); !ok {
		t.Error("Expected tap to select the nearest point")
	}
}

func TestWeightChart_TickLabels(t *testing.T) {
	_, r := newTestChart(t, fyne.NewSize(600, 300))

	expected := []string{"60.0", "60.5", "61.0", "61.5", "62.0"}
	if len(r.yLabels) != len(expected) {
		t.Fatalf("Expected %d y labels, got %d", len(expected), len(r.yLabels))
	}
	for i, label := range r.yLabels {
		if label.Text != expected[i] {
			t.Errorf("Y label %d = %q, expected %q", i, label.Text, expected[i])
		}
	}

	if len(r.xLabels) != 2 {
		t.Errorf("Expected 2 x labels, got %d", len(r.xLabels))
	}
	if len(r.segments) != 1 || len(r.dots) != 2 {
		t.Errorf("Expected 1 segment and 2 dots, got %d and %d", len(r.segments), len(r.dots))
	}
}
