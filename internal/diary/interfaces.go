package diary

import (
	"github.com/ytget/health-diary/internal/model"
)

// Diary defines the interface for the diary document owner.
type Diary interface {
	SetUpdateCallback(func(model.AppData))
	Data() model.AppData
	Entry(date string) model.DailyEntry
	Week(weekStart string) model.WeeklyEntry
	UpdateDaily(date string, fn func(*model.DailyEntry))
	UpdateWeekly(weekStart string, fn func(*model.WeeklyEntry))

	// ResetDaily removes the entry for one date and reports whether one existed
	ResetDaily(date string) bool

	// ResetWeekly removes the entry for one week and reports whether one existed
	ResetWeekly(weekStart string) bool
}

var _ Diary = (*Service)(nil)
