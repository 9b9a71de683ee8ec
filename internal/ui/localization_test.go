package ui

import (
	"testing"

	"github.com/ytget/health-diary/internal/config"
)

func TestTranslate_Korean(t *testing.T) {
	if got := Translate(config.LanguageKorean, KeyAppTitle); got != "건강 다이어리" {
		t.Errorf("Expected Korean title, got %q", got)
	}
	if got := Translate(config.LanguageEnglish, KeyAppTitle); got != "Health Diary" {
		t.Errorf("Expected English title, got %q", got)
	}
}

func TestTranslate_FallsBackToDefault(t *testing.T) {
	if _, found := translations[config.LanguageKorean].texts[KeyPrevious]; found {
		t.Fatal("Test requires a key missing from the Korean table")
	}

	if got := Translate(config.LanguageKorean, KeyPrevious); got != "‹" {
		t.Errorf("Expected English fallback, got %q", got)
	}
	if got := Translate("fr", KeyReset); got != "Reset" {
		t.Errorf("Expected English text for unknown language, got %q", got)
	}
	if got := Translate(config.LanguageKorean, TextKey("missing")); got != "missing" {
		t.Errorf("Expected key name for unknown key, got %q", got)
	}
}

func TestTranslateList(t *testing.T) {
	weekdays := TranslateList(config.LanguageKorean, KeyWeekdaysShort)
	if len(weekdays) != 7 || weekdays[0] != "일" {
		t.Errorf("Unexpected Korean weekdays: %v", weekdays)
	}
	if got := TranslateList(config.LanguageKorean, ListKey("missing")); got != nil {
		t.Errorf("Expected nil for unknown list, got %v", got)
	}
}

func TestTablesHaveSameListLengths(t *testing.T) {
	for key, en := range translations[config.LanguageEnglish].lists {
		ko, found := translations[config.LanguageKorean].lists[key]
		if found && len(ko) != len(en) {
			t.Errorf("List %s has %d Korean and %d English items", key, len(ko), len(en))
		}
	}
}

func TestLocalization_FallbackForDeletedKey(t *testing.T) {
	ko := translationTable{texts: map[TextKey]string{}, lists: map[ListKey][]string{}}
	for k, v := range translations[config.LanguageKorean].texts {
		ko.texts[k] = v
	}
	delete(ko.texts, KeyWater)

	l := &Localization{
		currentLanguage: config.LanguageKorean,
		tables: map[string]translationTable{
			config.LanguageEnglish: translations[config.LanguageEnglish],
			config.LanguageKorean:  ko,
		},
	}

	if got := l.GetText(KeyWater); got != "Water" {
		t.Errorf("Expected English fallback 'Water', got %q", got)
	}
	if got := l.GetText(KeyAppTitle); got != "건강 다이어리" {
		t.Errorf("Expected Korean title, got %q", got)
	}
	if got := l.GetList(KeyMonths); len(got) != 12 || got[0] != "January" {
		t.Errorf("Expected English months as fallback, got %v", got)
	}
}

func TestLocalization_SetLanguage(t *testing.T) {
	l := NewLocalization()

	if l.GetCurrentLanguage() != config.LanguageEnglish {
		t.Errorf("Expected default language en, got %s", l.GetCurrentLanguage())
	}

	l.SetLanguage(config.LanguageKorean)
	if l.GetCurrentLanguage() != config.LanguageKorean {
		t.Errorf("Expected ko, got %s", l.GetCurrentLanguage())
	}
	if l.NextLanguage() != config.LanguageEnglish {
		t.Errorf("Expected next language en, got %s", l.NextLanguage())
	}

	l.SetLanguage("ko-KR")
	if l.GetCurrentLanguage() != config.LanguageKorean {
		t.Errorf("Expected ko for ko-KR, got %s", l.GetCurrentLanguage())
	}

	l.SetLanguage(config.LanguageSystem)
	if !config.IsSupportedLanguage(l.GetCurrentLanguage()) {
		t.Errorf("System language resolved to unsupported %s", l.GetCurrentLanguage())
	}
}

func TestResolveLanguage(t *testing.T) {
	tests := []struct {
		tag      string
		expected string
	}{
		{"ko", "ko"},
		{"ko-KR", "ko"},
		{"ko_KR.UTF-8", "ko"},
		{"en_US.UTF-8", "en"},
		{"en-GB", "en"},
		{"fr-FR", "en"},
		{"C", "en"},
		{"not a locale!", "en"},
	}

	for _, tt := range tests {
		t.Run(tt.tag, func(t *testing.T) {
			if got := ResolveLanguage(tt.tag); got != tt.expected {
				t.Errorf("ResolveLanguage(%q) = %q, expected %q", tt.tag, got, tt.expected)
			}
		})
	}
}

func TestLocalization_GetAvailableLanguages(t *testing.T) {
	options := NewLocalization().GetAvailableLanguages()

	for _, lang := range config.SupportedLanguages {
		if options[lang] == "" {
			t.Errorf("Expected a display name for %s", lang)
		}
	}
	if len(options) != len(config.SupportedLanguages) {
		t.Errorf("Expected %d languages, got %d", len(config.SupportedLanguages), len(options))
	}
}
