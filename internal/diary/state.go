package diary

import (
	"log"
	"time"

	"github.com/ytget/health-diary/internal/calendar"
	"github.com/ytget/health-diary/internal/config"
)

// View identifies the screen shown in the main area
type View string

const (
	ViewDaily    View = "daily"
	ViewWeekly   View = "weekly"
	ViewAnalysis View = "analysis"
	ViewCalendar View = "calendar"
)

// Views lists the views in tab order
var Views = []View{ViewDaily, ViewWeekly, ViewAnalysis, ViewCalendar}

// String returns the string representation of View
func (v View) String() string {
	return string(v)
}

// CanReset reports whether the view has a resettable entry
func (v View) CanReset() bool {
	return v == ViewDaily || v == ViewWeekly
}

// State holds the top-level UI state of the application shell
type State struct {
	diary    Diary
	settings *config.Settings
	now      func() time.Time

	view         View
	language     string
	selectedDate string
	month        calendar.Month

	onChange func()
}

// NewState creates the shell state. The selected date and displayed month
// start at today; the language comes from settings.
func NewState(d Diary, settings *config.Settings, now func() time.Time) *State {
	if now == nil {
		now = time.Now
	}
	today := now()
	return &State{
		diary:        d,
		settings:     settings,
		now:          now,
		view:         ViewDaily,
		language:     settings.GetLanguage(),
		selectedDate: calendar.Today(today),
		month:        calendar.MonthOf(today),
	}
}

// SetChangeCallback sets the callback invoked after every transition
func (s *State) SetChangeCallback(callback func()) {
	s.onChange = callback
}

// Diary returns the document owner
func (s *State) Diary() Diary { return s.diary }

// View returns the active view
func (s *State) View() View { return s.view }

// Language returns the active language
func (s *State) Language() string { return s.language }

// SelectedDate returns the date edited by the daily view
func (s *State) SelectedDate() string { return s.selectedDate }

// Month returns the month displayed by the calendar view
func (s *State) Month() calendar.Month { return s.month }

// Now returns the current time from the state clock
func (s *State) Now() time.Time { return s.now() }

// CurrentWeek returns the Monday key of the week containing today
func (s *State) CurrentWeek() string {
	return calendar.WeekStartKey(s.now())
}

// SetView switches the main area to v
func (s *State) SetView(v View) {
	if s.view == v {
		return
	}
	s.view = v
	s.changed()
}

// SelectDate makes date the selected date and shows the daily view
func (s *State) SelectDate(date string) {
	if _, err := calendar.ParseDate(date); err != nil {
		log.Printf("Warning: ignoring invalid date %q: %v", date, err)
		return
	}
	s.selectedDate = date
	s.view = ViewDaily
	s.changed()
}

// ShiftDay moves the selected date by delta days
func (s *State) ShiftDay(delta int) {
	s.selectedDate = calendar.AddDays(s.selectedDate, delta)
	s.changed()
}

// GoToToday selects today's date
func (s *State) GoToToday() {
	s.selectedDate = calendar.Today(s.now())
	s.changed()
}

// ShiftMonth moves the displayed calendar month by delta months
func (s *State) ShiftMonth(delta int) {
	s.month = s.month.Shift(delta)
	s.changed()
}

// ToggleLanguage switches to the next language and persists the choice
func (s *State) ToggleLanguage() {
	s.SetLanguage(config.NextLanguage(s.language))
}

// SetLanguage switches to lang and persists the choice. Unsupported
// languages are ignored.
func (s *State) SetLanguage(lang string) {
	if !config.IsSupportedLanguage(lang) {
		log.Printf("Warning: unsupported language %q", lang)
		return
	}
	if lang == s.language {
		return
	}
	s.language = lang
	s.settings.SetLanguage(lang)
	log.Printf("Language changed to: %s", lang)
	s.changed()
}

// CanReset reports whether the active view has a resettable entry
func (s *State) CanReset() bool {
	return s.view.CanReset()
}

// ResetTarget returns the key that Reset would remove for the active view
func (s *State) ResetTarget() (string, bool) {
	switch s.view {
	case ViewDaily:
		return s.selectedDate, true
	case ViewWeekly:
		return s.CurrentWeek(), true
	default:
		return "", false
	}
}

// Reset removes the entry of the active view's context. It must only be
// called after the user confirmed. Reports whether anything was removed.
func (s *State) Reset() bool {
	target, ok := s.ResetTarget()
	if !ok {
		return false
	}

	var removed bool
	switch s.view {
	case ViewDaily:
		removed = s.diary.ResetDaily(target)
	case ViewWeekly:
		removed = s.diary.ResetWeekly(target)
	}
	if removed {
		log.Printf("Reset %s entry %s", s.view, target)
	}
	s.changed()
	return removed
}

func (s *State) changed() {
	if s.onChange != nil {
		s.onChange()
	}
}
