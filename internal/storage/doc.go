package storage

// Package storage persists JSON-encoded values under string keys. Reads never
// fail from the caller's point of view: missing or corrupt data yields the
// supplied default. Backends are Fyne preferences (default) or SQLite.
