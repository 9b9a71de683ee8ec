package storage

import (
	"fyne.io/fyne/v2"
)

// PreferencesBackend stores values in the application's Fyne preferences.
// Preferences cannot tell an empty string from a missing key, so an empty
// value reads as ErrNotFound; every JSON value is non-empty.
type PreferencesBackend struct {
	prefs fyne.Preferences
}

// NewPreferencesBackend creates a backend over the app's preferences
func NewPreferencesBackend(app fyne.App) *PreferencesBackend {
	return &PreferencesBackend{prefs: app.Preferences()}
}

// Read returns the stored string for key
func (b *PreferencesBackend) Read(key string) (string, error) {
	value := b.prefs.StringWithFallback(key, "")
	if value == "" {
		return "", ErrNotFound
	}
	return value, nil
}

// Write stores value under key
func (b *PreferencesBackend) Write(key, value string) error {
	b.prefs.SetString(key, value)
	return nil
}

// Delete removes key
func (b *PreferencesBackend) Delete(key string) error {
	b.prefs.RemoveValue(key)
	return nil
}
