package ui

import (
	"fmt"
	"strconv"
	"time"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/canvas"
	"fyne.io/fyne/v2/driver/desktop"
	"fyne.io/fyne/v2/theme"
	"fyne.io/fyne/v2/widget"

	"github.com/ytget/health-diary/internal/chart"
)

// Chart label geometry in widget units
const (
	chartLabelGap    float32 = 6
	chartXLabelWidth float32 = 64
	chartLabelHeight float32 = TickTextSize * 1.5
)

// WeightChart draws the weight trend and shows a tooltip for the point
// nearest to the pointer.
type WeightChart struct {
	widget.BaseWidget

	points  []chart.Point
	scale   chart.Scale
	coords  []chart.Coord
	hovered int
}

var (
	_ desktop.Hoverable = (*WeightChart)(nil)
	_ fyne.Tappable     = (*WeightChart)(nil)
)

// NewWeightChart creates a chart for points, which must satisfy chart.CanRender
func NewWeightChart(points []chart.Point) *WeightChart {
	scale := chart.NewScale(points)
	c := &WeightChart{
		points:  points,
		scale:   scale,
		coords:  scale.Path(points),
		hovered: -1,
	}
	c.ExtendBaseWidget(c)
	return c
}

// Hovered returns the point under the tooltip, if any
func (c *WeightChart) Hovered() (chart.Point, bool) {
	if c.hovered < 0 || c.hovered >= len(c.points) {
		return chart.Point{}, false
	}
	return c.points[c.hovered], true
}

// MouseIn implements desktop.Hoverable
func (c *WeightChart) MouseIn(ev *desktop.MouseEvent) {
	c.hoverAt(ev.Position)
}

// MouseMoved implements desktop.Hoverable
func (c *WeightChart) MouseMoved(ev *desktop.MouseEvent) {
	c.hoverAt(ev.Position)
}

// MouseOut implements desktop.Hoverable
func (c *WeightChart) MouseOut() {
	c.setHovered(-1)
}

// Tapped shows the tooltip on touch devices
func (c *WeightChart) Tapped(ev *fyne.PointEvent) {
	c.hoverAt(ev.Position)
}

// MinSize keeps the chart readable
func (c *WeightChart) MinSize() fyne.Size {
	return fyne.NewSize(ChartMinWidth, ChartMinHeight)
}

func (c *WeightChart) hoverAt(pos fyne.Position) {
	size := c.Size()
	local := chart.ToLocal(float64(pos.X), float64(pos.Y), float64(size.Width), float64(size.Height))
	index, ok := chart.HitTest(c.coords, local, chart.HitRadius)
	if !ok {
		index = -1
	}
	c.setHovered(index)
}

func (c *WeightChart) setHovered(index int) {
	if c.hovered == index {
		return
	}
	c.hovered = index
	c.Refresh()
}

// CreateRenderer implements fyne.Widget
func (c *WeightChart) CreateRenderer() fyne.WidgetRenderer {
	r := &weightChartRenderer{chart: c}

	r.axisX = canvas.NewLine(theme.Color(theme.ColorNameForeground))
	r.axisY = canvas.NewLine(theme.Color(theme.ColorNameForeground))

	for _, tick := range c.scale.YTicks() {
		line := canvas.NewLine(ChartGridColor)
		line.StrokeWidth = GridLineWidth
		label := canvas.NewText(strconv.FormatFloat(tick, 'f', 1, 64), theme.Color(theme.ColorNameForeground))
		label.TextSize = TickTextSize
		label.Alignment = fyne.TextAlignTrailing
		r.yTicks = append(r.yTicks, tick)
		r.gridLines = append(r.gridLines, line)
		r.yLabels = append(r.yLabels, label)
	}

	for _, tick := range c.scale.XTicks() {
		label := canvas.NewText(tick.Format(ShortDateLayout), theme.Color(theme.ColorNameForeground))
		label.TextSize = TickTextSize
		label.Alignment = fyne.TextAlignCenter
		r.xLabels = append(r.xLabels, label)
	}
	r.xTicks = c.scale.XTicks()

	for i := 1; i < len(c.coords); i++ {
		segment := canvas.NewLine(ChartLineColor)
		segment.StrokeWidth = LineWidth
		r.segments = append(r.segments, segment)
	}

	for range c.coords {
		dot := canvas.NewCircle(ChartPointColor)
		r.dots = append(r.dots, dot)
	}

	r.tooltipBg = canvas.NewRectangle(ChartTooltipColor)
	r.tooltipBg.CornerRadius = 4
	r.tooltipText = canvas.NewText("", ChartTooltipText)
	r.tooltipText.TextSize = TickTextSize

	r.rebuildObjects()
	r.Refresh()
	return r
}

type weightChartRenderer struct {
	chart *WeightChart

	axisX, axisY *canvas.Line
	gridLines    []*canvas.Line
	yTicks       []float64
	yLabels      []*canvas.Text
	xTicks       []time.Time
	xLabels      []*canvas.Text
	segments     []*canvas.Line
	dots         []*canvas.Circle
	tooltipBg    *canvas.Rectangle
	tooltipText  *canvas.Text

	objects []fyne.CanvasObject
}

func (r *weightChartRenderer) rebuildObjects() {
	r.objects = r.objects[:0]
	for _, l := range r.gridLines {
		r.objects = append(r.objects, l)
	}
	r.objects = append(r.objects, r.axisX, r.axisY)
	for _, t := range r.yLabels {
		r.objects = append(r.objects, t)
	}
	for _, t := range r.xLabels {
		r.objects = append(r.objects, t)
	}
	for _, s := range r.segments {
		r.objects = append(r.objects, s)
	}
	for _, d := range r.dots {
		r.objects = append(r.objects, d)
	}
	r.objects = append(r.objects, r.tooltipBg, r.tooltipText)
}

// Layout maps the logical drawing area onto size
func (r *weightChartRenderer) Layout(size fyne.Size) {
	topLeft, bottomRight := chart.PlotBounds()
	tl := toWidget(topLeft, size)
	br := toWidget(bottomRight, size)

	r.axisX.Position1 = fyne.NewPos(tl.X, br.Y)
	r.axisX.Position2 = br
	r.axisY.Position1 = tl
	r.axisY.Position2 = fyne.NewPos(tl.X, br.Y)

	for i, tick := range r.yTicks {
		y := toWidget(chart.Coord{Y: r.chart.scale.Y(tick)}, size).Y
		r.gridLines[i].Position1 = fyne.NewPos(tl.X, y)
		r.gridLines[i].Position2 = fyne.NewPos(br.X, y)

		r.yLabels[i].Resize(fyne.NewSize(tl.X-chartLabelGap, chartLabelHeight))
		r.yLabels[i].Move(fyne.NewPos(0, y-chartLabelHeight/2))
	}

	for i, tick := range r.xTicks {
		x := toWidget(chart.Coord{X: r.chart.scale.X(tick)}, size).X
		r.xLabels[i].Resize(fyne.NewSize(chartXLabelWidth, chartLabelHeight))
		r.xLabels[i].Move(fyne.NewPos(x-chartXLabelWidth/2, br.Y+chartLabelGap))
	}

	positions := make([]fyne.Position, len(r.chart.coords))
	for i, c := range r.chart.coords {
		positions[i] = toWidget(c, size)
	}
	for i, segment := range r.segments {
		segment.Position1 = positions[i]
		segment.Position2 = positions[i+1]
	}
	for i, dot := range r.dots {
		radius := PointRadius
		if i == r.chart.hovered {
			radius = PointRadiusActive
		}
		dot.Resize(fyne.NewSize(radius*2, radius*2))
		dot.Move(fyne.NewPos(positions[i].X-radius, positions[i].Y-radius))
	}

	r.layoutTooltip(size, positions)
}

// layoutTooltip places the tooltip above the hovered point, kept inside size
func (r *weightChartRenderer) layoutTooltip(size fyne.Size, positions []fyne.Position) {
	point, ok := r.chart.Hovered()
	if !ok {
		r.tooltipBg.Hide()
		r.tooltipText.Hide()
		return
	}

	r.tooltipText.Text = tooltipLabel(point)
	textSize := r.tooltipText.MinSize()
	boxSize := fyne.NewSize(textSize.Width+2*TooltipPadding, textSize.Height+2*TooltipPadding)

	anchor := positions[r.chart.hovered]
	x := anchor.X - boxSize.Width/2
	y := anchor.Y - boxSize.Height - PointRadiusActive - TooltipPadding
	if x < 0 {
		x = 0
	}
	if x+boxSize.Width > size.Width {
		x = size.Width - boxSize.Width
	}
	if y < 0 {
		y = anchor.Y + PointRadiusActive + TooltipPadding
	}

	r.tooltipBg.Resize(boxSize)
	r.tooltipBg.Move(fyne.NewPos(x, y))
	r.tooltipText.Resize(textSize)
	r.tooltipText.Move(fyne.NewPos(x+TooltipPadding, y+TooltipPadding))
	r.tooltipBg.Show()
	r.tooltipText.Show()
}

func (r *weightChartRenderer) MinSize() fyne.Size {
	return r.chart.MinSize()
}

func (r *weightChartRenderer) Refresh() {
	for i, dot := range r.dots {
		if i == r.chart.hovered {
			dot.FillColor = ChartLineColor
		} else {
			dot.FillColor = ChartPointColor
		}
	}
	r.Layout(r.chart.Size())
	for _, o := range r.objects {
		o.Refresh()
	}
}

func (r *weightChartRenderer) Objects() []fyne.CanvasObject {
	return r.objects
}

func (r *weightChartRenderer) Destroy() {}

// toWidget converts logical chart coordinates into widget coordinates
func toWidget(c chart.Coord, size fyne.Size) fyne.Position {
	x, y := chart.FromLocal(c, float64(size.Width), float64(size.Height))
	return fyne.NewPos(float32(x), float32(y))
}

// tooltipLabel shows the date and the weight as it was typed
func tooltipLabel(p chart.Point) string {
	weight := p.Raw
	if weight == "" {
		weight = strconv.FormatFloat(p.Weight, 'f', -1, 64)
	}
	return fmt.Sprintf("%s%s%s kg", p.Date, MiddleDotSeparator, weight)
}
