package diary

// Package diary owns the application document and the shell state. Service
// holds the current AppData snapshot, replaces it copy-on-write on every edit
// and writes it to the store synchronously. State tracks the active view,
// language, selected date and calendar month, and implements reset.
