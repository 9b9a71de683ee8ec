package config

import (
	"testing"

	"fyne.io/fyne/v2/test"

	"github.com/ytget/health-diary/internal/storage"
)

func newTestSettings(fallback string) *Settings {
	app := test.NewApp()
	return NewSettings(storage.NewStore(storage.NewPreferencesBackend(app)), fallback)
}

func TestNewSettings(t *testing.T) {
	settings := newTestSettings("")

	if settings.fallback != DefaultLanguage {
		t.Errorf("Expected fallback %s, got %s", DefaultLanguage, settings.fallback)
	}
}

func TestLanguage(t *testing.T) {
	settings := newTestSettings(LanguageKorean)

	// Test default value
	lang := settings.GetLanguage()
	if lang != LanguageKorean {
		t.Errorf("Expected default language %s, got %s", LanguageKorean, lang)
	}

	// Test setting custom value
	settings.SetLanguage(LanguageEnglish)

	retrievedLang := settings.GetLanguage()
	if retrievedLang != LanguageEnglish {
		t.Errorf("Expected language 'en', got %s", retrievedLang)
	}
}

func TestLanguage_StoredAsJSON(t *testing.T) {
	app := test.NewApp()
	settings := NewSettings(storage.NewStore(storage.NewPreferencesBackend(app)), "")

	settings.SetLanguage(LanguageKorean)

	raw := app.Preferences().String(KeyLanguage)
	if raw != `"ko"` {
		t.Errorf("Expected JSON-encoded language, got %s", raw)
	}
}

func TestNextLanguage(t *testing.T) {
	tests := []struct {
		lang     string
		expected string
	}{
		{LanguageEnglish, LanguageKorean},
		{LanguageKorean, LanguageEnglish},
		{"fr", DefaultLanguage},
		{"", DefaultLanguage},
	}

	for _, tt := range tests {
		t.Run(tt.lang, func(t *testing.T) {
			if got := NextLanguage(tt.lang); got != tt.expected {
				t.Errorf("NextLanguage(%q) = %q, expected %q", tt.lang, got, tt.expected)
			}
		})
	}
}

func TestIsSupportedLanguage(t *testing.T) {
	if !IsSupportedLanguage(LanguageKorean) {
		t.Error("Expected 'ko' to be supported")
	}
	if IsSupportedLanguage(LanguageSystem) {
		t.Error("Expected 'system' not to be a table language")
	}
}
