package ui

import (
	"fmt"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/widget"

	"github.com/ytget/health-diary/internal/model"
)

// WaterPicker is a row of cup buttons. Tapping cup n sets the count to n;
// tapping the last filled cup empties it.
type WaterPicker struct {
	widget.BaseWidget

	value        int
	localization *Localization

	cups  []*widget.Button
	label *widget.Label

	// OnChanged is called with the new cup count after a tap
	OnChanged func(cups int)
}

// NewWaterPicker creates a picker showing value cups
func NewWaterPicker(value int, localization *Localization) *WaterPicker {
	wp := &WaterPicker{
		value:        model.ClampWater(value),
		localization: localization,
		label:        widget.NewLabel(""),
	}
	wp.ExtendBaseWidget(wp)

	wp.cups = make([]*widget.Button, model.MaxWater)
	for i := range wp.cups {
		cup := i + 1
		wp.cups[i] = widget.NewButton(IconCupEmpty, func() { wp.tapCup(cup) })
	}
	wp.updateFromValue()
	return wp
}

// Value returns the current cup count
func (wp *WaterPicker) Value() int {
	return wp.value
}

// SetValue updates the cup count without calling OnChanged
func (wp *WaterPicker) SetValue(cups int) {
	wp.value = model.ClampWater(cups)
	wp.updateFromValue()
}

// CreateRenderer implements fyne.Widget
func (wp *WaterPicker) CreateRenderer() fyne.WidgetRenderer {
	objects := make([]fyne.CanvasObject, 0, len(wp.cups)+1)
	for _, cup := range wp.cups {
		objects = append(objects, cup)
	}
	objects = append(objects, wp.label)
	return widget.NewSimpleRenderer(container.NewHBox(objects...))
}

func (wp *WaterPicker) tapCup(cup int) {
	if wp.value == cup {
		wp.value = cup - 1
	} else {
		wp.value = cup
	}
	wp.updateFromValue()

	if wp.OnChanged != nil {
		wp.OnChanged(wp.value)
	}
}

func (wp *WaterPicker) updateFromValue() {
	for i, btn := range wp.cups {
		if i < wp.value {
			btn.SetText(IconCupFull)
			btn.Importance = widget.HighImportance
		} else {
			btn.SetText(IconCupEmpty)
			btn.Importance = widget.LowImportance
		}
		btn.Refresh()
	}
	wp.label.SetText(fmt.Sprintf(WaterLabelFormat, wp.value, model.MaxWater, wp.localization.GetText(KeyCups)))
}
