package config

import (
	"github.com/ytget/health-diary/internal/storage"
)

// Store keys
const (
	KeyLanguage = "healthDiaryLang"
	KeyData     = "healthDiaryData"
)

// Languages
const (
	LanguageEnglish = "en"
	LanguageKorean  = "ko"
	LanguageSystem  = "system"

	DefaultLanguage = LanguageEnglish
)

// SupportedLanguages lists the languages with a translation table, in toggle order
var SupportedLanguages = []string{LanguageEnglish, LanguageKorean}

// IsSupportedLanguage reports whether lang has a translation table
func IsSupportedLanguage(lang string) bool {
	for _, l := range SupportedLanguages {
		if l == lang {
			return true
		}
	}
	return false
}

// NextLanguage returns the language that follows lang in toggle order
func NextLanguage(lang string) string {
	for i, l := range SupportedLanguages {
		if l == lang {
			return SupportedLanguages[(i+1)%len(SupportedLanguages)]
		}
	}
	return DefaultLanguage
}

// Settings manages the persisted user preferences
type Settings struct {
	store    *storage.Store
	fallback string
}

// NewSettings creates a new settings manager. fallback is returned by
// GetLanguage while no language has been stored.
func NewSettings(store *storage.Store, fallback string) *Settings {
	if fallback == "" {
		fallback = DefaultLanguage
	}
	return &Settings{store: store, fallback: fallback}
}

// GetLanguage returns the stored language tag
func (s *Settings) GetLanguage() string {
	lang := storage.Load(s.store, KeyLanguage, s.fallback)
	if !IsSupportedLanguage(lang) {
		return s.fallback
	}
	return lang
}

// SetLanguage stores the language tag. Failures are logged by the store.
func (s *Settings) SetLanguage(lang string) {
	_ = s.store.Save(KeyLanguage, lang)
}
