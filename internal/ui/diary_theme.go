package ui

import (
	"image/color"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/theme"
)

// Theme colors used by the diary widgets
const (
	ColorNameEntryMarker fyne.ThemeColorName = "diaryEntryMarker"
	ColorNameOutOfMonth  fyne.ThemeColorName = "diaryOutOfMonth"
)

// DiaryTheme is a soft green theme with slightly tighter spacing than the default
type DiaryTheme struct{}

// NewDiaryTheme creates the application theme
func NewDiaryTheme() fyne.Theme {
	return &DiaryTheme{}
}

// Color returns theme colors
func (t *DiaryTheme) Color(name fyne.ThemeColorName, variant fyne.ThemeVariant) color.Color {
	switch name {
	case theme.ColorNamePrimary:
		return color.RGBA{R: 46, G: 160, B: 67, A: 255} // Green for the active tab and filled cups
	case theme.ColorNameError:
		return color.RGBA{R: 183, G: 28, B: 28, A: 255} // Red for reset
	case ColorNameEntryMarker:
		return color.RGBA{R: 25, G: 118, B: 210, A: 255} // Blue dot on logged days
	case ColorNameOutOfMonth:
		if variant == theme.VariantDark {
			return color.RGBA{R: 110, G: 110, B: 110, A: 255}
		}
		return color.RGBA{R: 170, G: 170, B: 170, A: 255}
	case theme.ColorNameBackground:
		if variant == theme.VariantDark {
			return color.RGBA{R: 20, G: 24, B: 20, A: 255}
		}
		return color.RGBA{R: 248, G: 251, B: 247, A: 255}
	}

	// Use default colors for everything else
	return theme.DefaultTheme().Color(name, variant)
}

// Font returns theme fonts
func (t *DiaryTheme) Font(style fyne.TextStyle) fyne.Resource {
	return theme.DefaultTheme().Font(style)
}

// Icon returns theme icons
func (t *DiaryTheme) Icon(name fyne.ThemeIconName) fyne.Resource {
	return theme.DefaultTheme().Icon(name)
}

// Size returns theme sizes
func (t *DiaryTheme) Size(name fyne.ThemeSizeName) float32 {
	switch name {
	case theme.SizeNamePadding:
		return 3
	case theme.SizeNameInnerPadding:
		return 6
	case theme.SizeNameLineSpacing:
		return 3
	case theme.SizeNameHeadingText:
		return 20
	case theme.SizeNameSubHeadingText:
		return 15
	case theme.SizeNameInputRadius:
		return 6
	}

	return theme.DefaultTheme().Size(name)
}
