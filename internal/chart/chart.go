package chart

import (
	"math"
	"time"

	"github.com/ytget/health-diary/internal/calendar"
	"github.com/ytget/health-diary/internal/model"
)

// Logical drawing area. Widgets scale this box to their actual size.
const (
	Width  float64 = 600
	Height float64 = 300

	MarginTop    float64 = 20
	MarginRight  float64 = 30
	MarginBottom float64 = 40
	MarginLeft   float64 = 50
)

// Data and tick limits
const (
	TrendDays   = 30
	MinPoints   = 2
	YTickCount  = 5
	MaxXTicks   = 7
	HitRadius   = 30.0
	TickDecimal = 10.0
)

// Point is one day's weight measurement
type Point struct {
	Date   string
	Time   time.Time
	Weight float64
	Raw    string
}

// Coord is a position in the logical drawing area
type Coord struct {
	X float64
	Y float64
}

// PointsFromDaily collects one point per day over the trailing days ending at
// today, skipping days whose weight does not parse. Points are ascending by date.
func PointsFromDaily(daily map[string]model.DailyEntry, today time.Time, days int) []Point {
	end := calendar.Midnight(today)
	start := end.AddDate(0, 0, -(days - 1))

	var points []Point
	for d := start; !d.After(end); d = d.AddDate(0, 0, 1) {
		key := calendar.FormatDate(d)
		entry, ok := daily[key]
		if !ok {
			continue
		}
		w, ok := entry.WeightValue()
		if !ok {
			continue
		}
		points = append(points, Point{Date: key, Time: d, Weight: w, Raw: entry.Weight})
	}
	return points
}

// CanRender reports whether there are enough points to draw a trend
func CanRender(points []Point) bool {
	return len(points) >= MinPoints
}

// Scale maps the data domain onto the logical drawing area
type Scale struct {
	MinWeight float64
	MaxWeight float64
	MinTime   time.Time
	MaxTime   time.Time
	count     int
}

// NewScale computes the weight and date extents of points
func NewScale(points []Point) Scale {
	s := Scale{count: len(points)}
	for i, p := range points {
		if i == 0 || p.Weight < s.MinWeight {
			s.MinWeight = p.Weight
		}
		if i == 0 || p.Weight > s.MaxWeight {
			s.MaxWeight = p.Weight
		}
		if i == 0 || p.Time.Before(s.MinTime) {
			s.MinTime = p.Time
		}
		if i == 0 || p.Time.After(s.MaxTime) {
			s.MaxTime = p.Time
		}
	}
	return s
}

// Plot area bounds in logical units
func plotLeft() float64   { return MarginLeft }
func plotRight() float64  { return Width - MarginRight }
func plotTop() float64    { return MarginTop }
func plotBottom() float64 { return Height - MarginBottom }

// X maps a time onto the horizontal axis. A zero date range maps to the middle.
func (s Scale) X(t time.Time) float64 {
	span := s.MaxTime.Sub(s.MinTime)
	if span <= 0 {
		return (plotLeft() + plotRight()) / 2
	}
	ratio := float64(t.Sub(s.MinTime)) / float64(span)
	return plotLeft() + ratio*(plotRight()-plotLeft())
}

// Y maps a weight onto the vertical axis, max at the top. A zero weight range maps to the middle.
func (s Scale) Y(w float64) float64 {
	span := s.MaxWeight - s.MinWeight
	if span == 0 {
		return (plotTop() + plotBottom()) / 2
	}
	ratio := (s.MaxWeight - w) / span
	return plotTop() + ratio*(plotBottom()-plotTop())
}

// Coord maps a point into the drawing area
func (s Scale) Coord(p Point) Coord {
	return Coord{X: s.X(p.Time), Y: s.Y(p.Weight)}
}

// Path maps every point, in order, to drawing coordinates
func (s Scale) Path(points []Point) []Coord {
	coords := make([]Coord, len(points))
	for i, p := range points {
		coords[i] = s.Coord(p)
	}
	return coords
}

// YTicks returns YTickCount evenly spaced weights rounded to one decimal,
// or the single weight when all points share it.
func (s Scale) YTicks() []float64 {
	span := s.MaxWeight - s.MinWeight
	if span == 0 {
		return []float64{roundTick(s.MinWeight)}
	}
	ticks := make([]float64, YTickCount)
	step := span / float64(YTickCount-1)
	for i := range ticks {
		ticks[i] = roundTick(s.MinWeight + float64(i)*step)
	}
	return ticks
}

// XTicks returns min(MaxXTicks, point count) evenly spaced times across the
// date range, or a single tick when the range is zero.
func (s Scale) XTicks() []time.Time {
	span := s.MaxTime.Sub(s.MinTime)
	n := s.count
	if n > MaxXTicks {
		n = MaxXTicks
	}
	if span <= 0 || n < 2 {
		return []time.Time{s.MinTime}
	}
	ticks := make([]time.Time, n)
	step := span / time.Duration(n-1)
	for i := range ticks {
		ticks[i] = s.MinTime.Add(time.Duration(i) * step)
	}
	return ticks
}

func roundTick(v float64) float64 {
	return math.Round(v*TickDecimal) / TickDecimal
}

// HitTest returns the index of the coordinate nearest to pos, or false when
// the nearest one is farther than radius.
func HitTest(coords []Coord, pos Coord, radius float64) (int, bool) {
	best := -1
	bestDist := math.Inf(1)
	for i, c := range coords {
		d := math.Hypot(c.X-pos.X, c.Y-pos.Y)
		if d < bestDist {
			best = i
			bestDist = d
		}
	}
	if best < 0 || bestDist > radius {
		return -1, false
	}
	return best, true
}

// ToLocal converts a position in a widget of the given size into logical
// drawing coordinates.
func ToLocal(x, y, widgetWidth, widgetHeight float64) Coord {
	if widgetWidth <= 0 || widgetHeight <= 0 {
		return Coord{X: x, Y: y}
	}
	return Coord{X: x * Width / widgetWidth, Y: y * Height / widgetHeight}
}

// FromLocal converts logical drawing coordinates into widget coordinates
func FromLocal(c Coord, widgetWidth, widgetHeight float64) (float64, float64) {
	return c.X * widgetWidth / Width, c.Y * widgetHeight / Height
}

// PlotBounds returns the top-left and bottom-right corners of the plot area
func PlotBounds() (Coord, Coord) {
	return Coord{X: plotLeft(), Y: plotTop()}, Coord{X: plotRight(), Y: plotBottom()}
}
