package ui

import (
	"testing"

	"fyne.io/fyne/v2/test"
)

func TestWaterPicker_Tap(t *testing.T) {
	app := test.NewApp()
	defer app.Quit()

	wp := NewWaterPicker(0, NewLocalization())
	var changes []int
	wp.OnChanged = func(cups int) { changes = append(changes, cups) }

	tests := []struct {
		name     string
		cup      int
		expected int
	}{
		{"fill to three", 3, 3},
		{"tap last filled cup", 3, 2},
		{"fill to eight", 8, 8},
		{"tap first cup", 1, 1},
		{"empty", 1, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			test.Tap(wp.cups[tt.cup-1])
			if wp.Value() != tt.expected {
				t.Errorf("Expected %d cups, got %d", tt.expected, wp.Value())
			}
		})
	}

	if len(changes) != len(tests) {
		t.Errorf("Expected %d change callbacks, got %d", len(tests), len(changes))
	}
}

func TestWaterPicker_SetValue(t *testing.T) {
	app := test.NewApp()
	defer app.Quit()

	wp := NewWaterPicker(12, NewLocalization())
	if wp.Value() != 8 {
		t.Errorf("Expected value clamped to 8, got %d", wp.Value())
	}

	called := false
	wp.OnChanged = func(int) { called = true }
	wp.SetValue(2)

	if called {
		t.Error("Expected SetValue not to call OnChanged")
	}
	if wp.cups[1].Text != IconCupFull || wp.cups[2].Text != IconCupEmpty {
		t.Errorf("Unexpected cup icons %q %q", wp.cups[1].Text, wp.cups[2].Text)
	}
	if wp.label.Text != "2 / 8 cups" {
		t.Errorf("Unexpected label %q", wp.label.Text)
	}
}
