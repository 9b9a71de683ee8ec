package ui

import (
	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/driver/mobile"
	"fyne.io/fyne/v2/widget"
)

// GestureType represents the gestures recognised on touch screens
type GestureType int

const (
	GestureNone GestureType = iota
	GestureSwipeLeft
	GestureSwipeRight
)

// DefaultSwipeThreshold is the horizontal travel needed for a swipe
const DefaultSwipeThreshold float32 = 50.0

// GestureHandler turns touch down/up pairs into swipes
type GestureHandler struct {
	onGesture func(GestureType)

	// Touch tracking
	tracking      bool
	touchStartPos fyne.Position

	swipeThreshold float32
}

// NewGestureHandler creates a new gesture handler
func NewGestureHandler(onGesture func(GestureType)) *GestureHandler {
	return &GestureHandler{
		onGesture:      onGesture,
		swipeThreshold: DefaultSwipeThreshold,
	}
}

// TouchDown handles touch down events for gesture detection
func (gh *GestureHandler) TouchDown(event *mobile.TouchEvent) {
	gh.tracking = true
	gh.touchStartPos = event.Position
}

// TouchUp handles touch up events for gesture detection
func (gh *GestureHandler) TouchUp(event *mobile.TouchEvent) {
	if !gh.tracking {
		return
	}
	gh.tracking = false

	dx := event.Position.X - gh.touchStartPos.X
	dy := event.Position.Y - gh.touchStartPos.Y

	if gesture := gh.classify(dx, dy); gesture != GestureNone && gh.onGesture != nil {
		gh.onGesture(gesture)
	}
}

// TouchCancel handles touch cancel events
func (gh *GestureHandler) TouchCancel(event *mobile.TouchEvent) {
	gh.tracking = false
}

// classify determines the gesture for a movement of (dx, dy).
// Only horizontal swipes are reported; vertical movement belongs to scrolling
// and taps go to the widgets underneath.
func (gh *GestureHandler) classify(dx, dy float32) GestureType {
	absDx, absDy := dx, dy
	if absDx < 0 {
		absDx = -absDx
	}
	if absDy < 0 {
		absDy = -absDy
	}

	if absDx < gh.swipeThreshold || absDx <= absDy {
		return GestureNone
	}
	if dx > 0 {
		return GestureSwipeRight
	}
	return GestureSwipeLeft
}

// SwipeLabel is a label that reports horizontal swipes, used for the date
// and month headings so they can be paged on touch screens.
type SwipeLabel struct {
	widget.Label
	gestureHandler *GestureHandler
}

var _ mobile.Touchable = (*SwipeLabel)(nil)

// NewSwipeLabel creates a label calling onSwipe with -1 for a swipe to the
// right (previous) and +1 for a swipe to the left (next).
func NewSwipeLabel(text string, onSwipe func(delta int)) *SwipeLabel {
	sl := &SwipeLabel{}
	sl.Text = text
	sl.ExtendBaseWidget(sl)
	sl.gestureHandler = NewGestureHandler(func(g GestureType) {
		switch g {
		case GestureSwipeLeft:
			onSwipe(1)
		case GestureSwipeRight:
			onSwipe(-1)
		}
	})
	return sl
}

// TouchDown handles touch down events
func (sl *SwipeLabel) TouchDown(event *mobile.TouchEvent) {
	sl.gestureHandler.TouchDown(event)
}

// TouchUp handles touch up events
func (sl *SwipeLabel) TouchUp(event *mobile.TouchEvent) {
	sl.gestureHandler.TouchUp(event)
}

// TouchCancel handles touch cancel events
func (sl *SwipeLabel) TouchCancel(event *mobile.TouchEvent) {
	sl.gestureHandler.TouchCancel(event)
}
