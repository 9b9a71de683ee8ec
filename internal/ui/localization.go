package ui

import (
	"strings"

	fynelang "fyne.io/fyne/v2/lang"
	"golang.org/x/text/language"

	"github.com/ytget/health-diary/internal/config"
)

// TextKey identifies a translated string
type TextKey string

// ListKey identifies a translated list of strings
type ListKey string

// Text keys for localization
const (
	KeyAppTitle      TextKey = "title"
	KeyDaily         TextKey = "daily"
	KeyWeekly        TextKey = "weekly"
	KeyAnalysis      TextKey = "analysis"
	KeyCalendar      TextKey = "calendar"
	KeyReset         TextKey = "reset"
	KeyResetTitle    TextKey = "resetTitle"
	KeyResetDaily    TextKey = "resetDailyConfirm"
	KeyResetWeekly   TextKey = "resetWeeklyConfirm"
	KeyLanguage      TextKey = "languageToggle"
	KeyToday         TextKey = "today"
	KeyPrevious      TextKey = "previous"
	KeyNext          TextKey = "next"
	KeyBreakfast     TextKey = "breakfast"
	KeyLunch         TextKey = "lunch"
	KeySnack         TextKey = "snack"
	KeyDinner        TextKey = "dinner"
	KeyMealTime      TextKey = "time"
	KeyMenu          TextKey = "menu"
	KeyMenuHint      TextKey = "menuPlaceholder"
	KeyRating        TextKey = "rating"
	KeyMealNotes     TextKey = "mealNotes"
	KeyWater         TextKey = "water"
	KeyCups          TextKey = "cups"
	KeyWeight        TextKey = "weight"
	KeyWeightHint    TextKey = "weightPlaceholder"
	KeySleep         TextKey = "sleep"
	KeyHours         TextKey = "hours"
	KeyEnergy        TextKey = "energy"
	KeyExercise      TextKey = "exercise"
	KeyExerciseHint  TextKey = "exercisePlaceholder"
	KeyDailyNotes    TextKey = "dailyNotes"
	KeyWeeklyPlan    TextKey = "weeklyPlan"
	KeyWeeklyNotes   TextKey = "weeklyNotes"
	KeyWeightTrend   TextKey = "weightTrend"
	KeyNotEnoughData TextKey = "notEnoughData"
	KeyLatest        TextKey = "latest"
	KeyChange        TextKey = "change"
	KeyAverage       TextKey = "average"
	KeyDaysLogged    TextKey = "daysLogged"
	KeyAvgSleep      TextKey = "avgSleep"
	KeyAvgWater      TextKey = "avgWater"
	KeyShowDataDir   TextKey = "showDataDir"
	KeyFile          TextKey = "file"
	KeyMonthTitle    TextKey = "monthTitle"
)

// List keys for localization
const (
	KeyWeekdaysShort ListKey = "weekdaysShort" // Sunday first
	KeyMonths        ListKey = "months"
	KeyRatingLabels  ListKey = "ratingLabels"
	KeyEnergyLabels  ListKey = "energyLabels"
)

// translationTable holds every value of one language
type translationTable struct {
	texts map[TextKey]string
	lists map[ListKey][]string
}

var translations = map[string]translationTable{
	config.LanguageEnglish: {
		texts: map[TextKey]string{
			KeyAppTitle:      "Health Diary",
			KeyDaily:         "Daily Log",
			KeyWeekly:        "Weekly Plan",
			KeyAnalysis:      "Analysis",
			KeyCalendar:      "Calendar",
			KeyReset:         "Reset",
			KeyResetTitle:    "Reset data",
			KeyResetDaily:    "Delete everything logged for %s?",
			KeyResetWeekly:   "Delete the meal plan for the week of %s?",
			KeyLanguage:      "한국어",
			KeyToday:         "Today",
			KeyPrevious:      "‹",
			KeyNext:          "›",
			KeyBreakfast:     "Breakfast",
			KeyLunch:         "Lunch",
			KeySnack:         "Snack",
			KeyDinner:        "Dinner",
			KeyMealTime:      "Time",
			KeyMenu:          "Menu",
			KeyMenuHint:      "What did you eat?",
			KeyRating:        "Taste",
			KeyMealNotes:     "Notes",
			KeyWater:         "Water",
			KeyCups:          "cups",
			KeyWeight:        "Weight (kg)",
			KeyWeightHint:    "e.g. 62.5",
			KeySleep:         "Sleep",
			KeyHours:         "h",
			KeyEnergy:        "Energy",
			KeyExercise:      "Exercise",
			KeyExerciseHint:  "e.g. 30 min walk",
			KeyDailyNotes:    "Notes for the day",
			KeyWeeklyPlan:    "Meal plan",
			KeyWeeklyNotes:   "Notes for the week",
			KeyWeightTrend:   "Weight trend (30 days)",
			KeyNotEnoughData: "Not enough data yet. Log your weight on at least two days to see a trend.",
			KeyLatest:        "Latest",
			KeyChange:        "Change",
			KeyAverage:       "Average",
			KeyDaysLogged:    "Days logged",
			KeyAvgSleep:      "Average sleep",
			KeyAvgWater:      "Average water",
			KeyShowDataDir:   "Show data folder",
			KeyFile:          "File",
			KeyMonthTitle:    "%[2]s %[1]d",
		},
		lists: map[ListKey][]string{
			KeyWeekdaysShort: {"Sun", "Mon", "Tue", "Wed", "Thu", "Fri", "Sat"},
			KeyMonths: {"January", "February", "March", "April", "May", "June",
				"July", "August", "September", "October", "November", "December"},
			KeyRatingLabels: {"Bad", "Okay", "Good", "Great"},
			KeyEnergyLabels: {"Exhausted", "Tired", "Normal", "Good", "Energetic"},
		},
	},
	config.LanguageKorean: {
		texts: map[TextKey]string{
			KeyAppTitle:      "건강 다이어리",
			KeyDaily:         "일일 기록",
			KeyWeekly:        "주간 계획",
			KeyAnalysis:      "분석",
			KeyCalendar:      "달력",
			KeyReset:         "초기화",
			KeyResetTitle:    "데이터 초기화",
			KeyResetDaily:    "%s의 기록을 모두 삭제할까요?",
			KeyResetWeekly:   "%s 주의 식단 계획을 삭제할까요?",
			KeyLanguage:      "English",
			KeyToday:         "오늘",
			KeyBreakfast:     "아침",
			KeyLunch:         "점심",
			KeySnack:         "간식",
			KeyDinner:        "저녁",
			KeyMealTime:      "시간",
			KeyMenu:          "메뉴",
			KeyMenuHint:      "무엇을 드셨나요?",
			KeyRating:        "맛",
			KeyMealNotes:     "메모",
			KeyWater:         "물",
			KeyCups:          "잔",
			KeyWeight:        "체중 (kg)",
			KeyWeightHint:    "예: 62.5",
			KeySleep:         "수면",
			KeyHours:         "시간",
			KeyEnergy:        "컨디션",
			KeyExercise:      "운동",
			KeyExerciseHint:  "예: 30분 걷기",
			KeyDailyNotes:    "오늘의 메모",
			KeyWeeklyPlan:    "식단 계획",
			KeyWeeklyNotes:   "이번 주 메모",
			KeyWeightTrend:   "체중 변화 (30일)",
			KeyNotEnoughData: "데이터가 부족합니다. 이틀 이상 체중을 기록하면 추이를 볼 수 있어요.",
			KeyLatest:        "최근",
			KeyChange:        "변화",
			KeyAverage:       "평균",
			KeyDaysLogged:    "기록한 날",
			KeyAvgSleep:      "평균 수면",
			KeyAvgWater:      "평균 물 섭취",
			KeyShowDataDir:   "데이터 폴더 열기",
			KeyFile:          "파일",
			KeyMonthTitle:    "%[1]d년 %[2]s",
		},
		lists: map[ListKey][]string{
			KeyWeekdaysShort: {"일", "월", "화", "수", "목", "금", "토"},
			KeyMonths: {"1월", "2월", "3월", "4월", "5월", "6월",
				"7월", "8월", "9월", "10월", "11월", "12월"},
			KeyRatingLabels: {"별로", "보통", "좋음", "최고"},
			KeyEnergyLabels: {"매우 피곤", "피곤", "보통", "좋음", "활기참"},
		},
	},
}

// Translate returns the text for key in lang, falling back to the default
// language and then to the key itself.
func Translate(lang string, key TextKey) string {
	return lookupText(translations, lang, key)
}

// TranslateList returns the list for key in lang, falling back to the
// default language. Unknown keys yield nil.
func TranslateList(lang string, key ListKey) []string {
	return lookupList(translations, lang, key)
}

func lookupText(tables map[string]translationTable, lang string, key TextKey) string {
	if text, found := tables[lang].texts[key]; found {
		return text
	}

	// Fallback to English
	if text, found := tables[config.DefaultLanguage].texts[key]; found {
		return text
	}

	// Final fallback - return key itself
	return string(key)
}

func lookupList(tables map[string]translationTable, lang string, key ListKey) []string {
	if list, found := tables[lang].lists[key]; found {
		return list
	}
	return tables[config.DefaultLanguage].lists[key]
}

// Localization manages UI text translations for the active language
type Localization struct {
	currentLanguage string
	tables          map[string]translationTable
}

// NewLocalization creates a new localization manager
func NewLocalization() *Localization {
	return &Localization{
		currentLanguage: config.DefaultLanguage,
		tables:          translations,
	}
}

// SetLanguage sets the current language. "system" and locale strings are
// resolved to a supported language.
func (l *Localization) SetLanguage(lang string) {
	if _, exists := l.tables[lang]; !exists {
		lang = ResolveLanguage(lang)
	}
	if _, exists := l.tables[lang]; exists {
		l.currentLanguage = lang
	}
}

// GetText returns localized text for the given key
func (l *Localization) GetText(key TextKey) string {
	return lookupText(l.tables, l.currentLanguage, key)
}

// GetList returns the localized list for the given key
func (l *Localization) GetList(key ListKey) []string {
	return lookupList(l.tables, l.currentLanguage, key)
}

// GetCurrentLanguage returns the current language code
func (l *Localization) GetCurrentLanguage() string {
	return l.currentLanguage
}

// GetAvailableLanguages returns map of available languages with their display names
func (l *Localization) GetAvailableLanguages() map[string]string {
	return map[string]string{
		config.LanguageEnglish: "English",
		config.LanguageKorean:  "한국어",
	}
}

// NextLanguage returns the language the toggle button switches to
func (l *Localization) NextLanguage() string {
	return config.NextLanguage(l.currentLanguage)
}

var languageMatcher = language.NewMatcher([]language.Tag{
	language.English,
	language.Korean,
})

// ResolveLanguage maps a BCP 47 tag, a POSIX locale such as "ko_KR.UTF-8" or
// "system" onto a supported language.
func ResolveLanguage(tag string) string {
	if tag == "" || tag == config.LanguageSystem {
		tag = fynelang.SystemLocale().String()
	}

	// POSIX locales carry an encoding and modifier
	if i := strings.IndexAny(tag, ".@"); i >= 0 {
		tag = tag[:i]
	}
	tag = strings.ReplaceAll(tag, "_", "-")

	parsed, err := language.Parse(tag)
	if err != nil {
		return config.DefaultLanguage
	}

	_, index, confidence := languageMatcher.Match(parsed)
	if confidence == language.No {
		return config.DefaultLanguage
	}
	return config.SupportedLanguages[index]
}
