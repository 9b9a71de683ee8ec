package ui

// Package ui contains the Fyne-based user interface of the diary. RootUI owns
// the header (title, view tabs, reset and language buttons) and rebuilds the
// main area from diary.State on every shell transition. Views write edits
// straight through diary.Service. All UI strings are localized via Localization.
