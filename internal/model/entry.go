package model

import (
	"math"
	"strconv"
	"strings"
)

// MealSlot identifies one of the fixed meals of a day
type MealSlot string

const (
	MealBreakfast MealSlot = "breakfast"
	MealLunch     MealSlot = "lunch"
	MealSnack     MealSlot = "snack"
	MealDinner    MealSlot = "dinner"
)

// MealSlots lists the meal slots in display order
var MealSlots = []MealSlot{MealBreakfast, MealLunch, MealSnack, MealDinner}

// String returns the string representation of MealSlot
func (s MealSlot) String() string {
	return string(s)
}

// Preset meal times used by the default daily template
var DefaultMealTimes = map[MealSlot]string{
	MealBreakfast: "08:00",
	MealLunch:     "12:30",
	MealSnack:     "15:30",
	MealDinner:    "19:00",
}

// Field ranges
const (
	MaxWater = 8

	MinSleep  = 0.0
	MaxSleep  = 16.0
	SleepStep = 0.5

	MinEnergy = 1
	MaxEnergy = 5

	MinRating = 1
	MaxRating = 4

	DefaultSleep  = 7.0
	DefaultEnergy = 3
)

// MealEntry records a single meal. Rating is 0 when not rated.
type MealEntry struct {
	Time   string `json:"time"`
	Menu   string `json:"menu"`
	Rating int    `json:"rating,omitempty"`
	Notes  string `json:"notes"`
}

// HasRating reports whether the meal was rated
func (m MealEntry) HasRating() bool {
	return m.Rating >= MinRating && m.Rating <= MaxRating
}

// DailyEntry is everything logged for one calendar date
type DailyEntry struct {
	Meals    map[MealSlot]MealEntry `json:"meals"`
	Water    int                    `json:"water"`
	Weight   string                 `json:"weight"`
	Sleep    float64                `json:"sleep"`
	Energy   int                    `json:"energy"`
	Exercise string                 `json:"exercise"`
	Notes    string                 `json:"notes"`
}

// NewDailyEntry returns the template used when a date is edited for the first time
func NewDailyEntry() DailyEntry {
	meals := make(map[MealSlot]MealEntry, len(MealSlots))
	for _, slot := range MealSlots {
		meals[slot] = MealEntry{Time: DefaultMealTimes[slot]}
	}
	return DailyEntry{
		Meals:  meals,
		Sleep:  DefaultSleep,
		Energy: DefaultEnergy,
	}
}

// Meal returns the entry for a slot, falling back to the preset time
func (e DailyEntry) Meal(slot MealSlot) MealEntry {
	if m, ok := e.Meals[slot]; ok {
		return m
	}
	return MealEntry{Time: DefaultMealTimes[slot]}
}

// Clone returns a deep copy so the original snapshot is never shared
func (e DailyEntry) Clone() DailyEntry {
	out := e
	out.Meals = make(map[MealSlot]MealEntry, len(e.Meals))
	for slot, meal := range e.Meals {
		out.Meals[slot] = meal
	}
	return out
}

// WeightValue parses the free-text weight. Empty or unparseable text is not a data point.
func (e DailyEntry) WeightValue() (float64, bool) {
	s := strings.TrimSpace(e.Weight)
	if s == "" {
		return 0, false
	}
	v, err := strconv.ParseFloat(s, 64)
	if err != nil || math.IsNaN(v) || math.IsInf(v, 0) {
		return 0, false
	}
	return v, true
}

// MealPlan holds planned meal text for one day; only edited slots are present
type MealPlan map[MealSlot]string

// WeeklyEntry is the meal plan and notes for one ISO week, keyed by its Monday
type WeeklyEntry struct {
	Days  map[string]MealPlan `json:"days"`
	Notes string              `json:"notes"`
}

// NewWeeklyEntry returns an empty weekly entry
func NewWeeklyEntry() WeeklyEntry {
	return WeeklyEntry{Days: make(map[string]MealPlan)}
}

// Plan returns the planned text for a date and slot
func (w WeeklyEntry) Plan(date string, slot MealSlot) string {
	return w.Days[date][slot]
}

// Clone returns a deep copy of the weekly entry
func (w WeeklyEntry) Clone() WeeklyEntry {
	out := WeeklyEntry{
		Days:  make(map[string]MealPlan, len(w.Days)),
		Notes: w.Notes,
	}
	for date, plan := range w.Days {
		cp := make(MealPlan, len(plan))
		for slot, text := range plan {
			cp[slot] = text
		}
		out.Days[date] = cp
	}
	return out
}

// SetPlan records planned text for a date and slot
func (w *WeeklyEntry) SetPlan(date string, slot MealSlot, text string) {
	if w.Days == nil {
		w.Days = make(map[string]MealPlan)
	}
	plan, ok := w.Days[date]
	if !ok {
		plan = make(MealPlan)
		w.Days[date] = plan
	}
	plan[slot] = text
}

// ClampWater limits the cup count to 0..MaxWater
func ClampWater(cups int) int {
	if cups < 0 {
		return 0
	}
	if cups > MaxWater {
		return MaxWater
	}
	return cups
}

// ClampSleep limits hours to MinSleep..MaxSleep and snaps to SleepStep
func ClampSleep(hours float64) float64 {
	if math.IsNaN(hours) || hours < MinSleep {
		return MinSleep
	}
	if hours > MaxSleep {
		return MaxSleep
	}
	return math.Round(hours/SleepStep) * SleepStep
}

// ClampEnergy limits the energy level to MinEnergy..MaxEnergy
func ClampEnergy(level int) int {
	if level < MinEnergy {
		return MinEnergy
	}
	if level > MaxEnergy {
		return MaxEnergy
	}
	return level
}

// ClampRating returns a valid rating, or 0 (unrated) when out of range
func ClampRating(rating int) int {
	if rating < MinRating || rating > MaxRating {
		return 0
	}
	return rating
}
