package ui

import (
	"fyne.io/fyne/v2"
)

// isMobileDevice checks if the app is running on a mobile device
func isMobileDevice() bool {
	if fyne.CurrentApp() == nil {
		return false
	}
	return fyne.CurrentDevice().IsMobile()
}

// isPortrait returns true if a mobile device is held upright
func isPortrait() bool {
	orientation := fyne.CurrentDevice().Orientation()
	return orientation == fyne.OrientationVertical || orientation == fyne.OrientationVerticalUpsideDown
}

// adaptiveColumns returns desktop columns, or a single column on phones in portrait
func adaptiveColumns(desktop int) int {
	if isMobileDevice() && isPortrait() {
		return 1
	}
	return desktop
}
