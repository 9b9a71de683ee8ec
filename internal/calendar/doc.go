package calendar

// Package calendar provides the date keys used throughout the diary, ISO
// week starts, and the fixed six-week month grid shown by the calendar view.
