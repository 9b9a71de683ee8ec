package chart

import (
	"time"

	"github.com/ytget/health-diary/internal/calendar"
	"github.com/ytget/health-diary/internal/model"
)

// Summary aggregates the trailing window shown next to the trend chart
type Summary struct {
	DaysLogged int

	Latest     Point
	HasWeight  bool
	Change     float64 // last minus first weight in the window
	AvgWeight  float64
	AvgSleep   float64
	AvgWater   float64
	AvgEnergy  float64
	WeightDays int
}

// Summarize computes averages over the days with an entry in the trailing
// window ending at today. Averages are zero when no day was logged.
func Summarize(daily map[string]model.DailyEntry, today time.Time, days int) Summary {
	var s Summary

	end := calendar.Midnight(today)
	start := end.AddDate(0, 0, -(days - 1))

	var sleep, water, energy float64
	for d := start; !d.After(end); d = d.AddDate(0, 0, 1) {
		entry, ok := daily[calendar.FormatDate(d)]
		if !ok {
			continue
		}
		s.DaysLogged++
		sleep += entry.Sleep
		water += float64(entry.Water)
		energy += float64(entry.Energy)
	}
	if s.DaysLogged > 0 {
		n := float64(s.DaysLogged)
		s.AvgSleep = sleep / n
		s.AvgWater = water / n
		s.AvgEnergy = energy / n
	}

	points := PointsFromDaily(daily, today, days)
	s.WeightDays = len(points)
	if len(points) == 0 {
		return s
	}

	var total float64
	for _, p := range points {
		total += p.Weight
	}
	s.HasWeight = true
	s.Latest = points[len(points)-1]
	s.Change = points[len(points)-1].Weight - points[0].Weight
	s.AvgWeight = total / float64(len(points))
	return s
}
