package model

import (
	"encoding/json"
	"reflect"
	"testing"
)

func TestAppData_WithDaily_LeavesSnapshotUntouched(t *testing.T) {
	before := NewAppData()
	after := before.WithDaily("2026-10-19", NewDailyEntry())

	if before.HasDaily("2026-10-19") {
		t.Error("WithDaily must not mutate the receiver")
	}
	if !after.HasDaily("2026-10-19") {
		t.Error("Expected entry in the new document")
	}
}

func TestAppData_WithoutDaily_RemovesOnlyThatDate(t *testing.T) {
	data := NewAppData().
		WithDaily("2026-10-18", NewDailyEntry()).
		WithDaily("2026-10-19", NewDailyEntry()).
		WithWeekly("2026-10-19", NewWeeklyEntry())

	after := data.WithoutDaily("2026-10-19")

	if after.HasDaily("2026-10-19") {
		t.Error("Expected 2026-10-19 to be removed")
	}
	if !after.HasDaily("2026-10-18") {
		t.Error("Other dates must be kept")
	}
	if _, ok := after.Weekly["2026-10-19"]; !ok {
		t.Error("Weekly entries must be kept")
	}
	if !data.HasDaily("2026-10-19") {
		t.Error("Original snapshot must still contain the removed date")
	}
}

func TestAppData_WithoutWeekly_RemovesOnlyThatWeek(t *testing.T) {
	data := NewAppData().
		WithDaily("2026-10-19", NewDailyEntry()).
		WithWeekly("2026-10-12", NewWeeklyEntry()).
		WithWeekly("2026-10-19", NewWeeklyEntry())

	after := data.WithoutWeekly("2026-10-19")

	if _, ok := after.Weekly["2026-10-19"]; ok {
		t.Error("Expected week 2026-10-19 to be removed")
	}
	if _, ok := after.Weekly["2026-10-12"]; !ok {
		t.Error("Other weeks must be kept")
	}
	if !after.HasDaily("2026-10-19") {
		t.Error("Daily entries must be kept")
	}
}

func TestAppData_Normalize(t *testing.T) {
	var legacy AppData
	if err := json.Unmarshal([]byte(`{"daily":{"2026-10-19":{"water":3}}}`), &legacy); err != nil {
		t.Fatalf("Unmarshal failed: %v", err)
	}

	normalized := legacy.Normalize()

	if normalized.Version != CurrentVersion {
		t.Errorf("Expected version %d, got %d", CurrentVersion, normalized.Version)
	}
	if normalized.Weekly == nil {
		t.Error("Weekly map should be initialized")
	}
	if normalized.Daily["2026-10-19"].Water != 3 {
		t.Error("Existing entries must survive normalization")
	}
}

func TestAppData_JSONRoundTrip(t *testing.T) {
	entry := NewDailyEntry()
	entry.Water = 5
	entry.Weight = "61.5"
	entry.Sleep = 6.5
	entry.Energy = 4
	entry.Exercise = "30 min walk"
	entry.Notes = "felt good"
	lunch := entry.Meals[MealLunch]
	lunch.Menu = "김치찌개"
	lunch.Rating = 3
	lunch.Notes = "spicy"
	entry.Meals[MealLunch] = lunch

	week := NewWeeklyEntry()
	week.SetPlan("2026-10-20", MealDinner, "salmon")
	week.Notes = "less sugar"

	data := NewAppData().WithDaily("2026-10-19", entry).WithWeekly("2026-10-19", week)

	raw, err := json.Marshal(data)
	if err != nil {
		t.Fatalf("Marshal failed: %v", err)
	}

	var decoded AppData
	if err := json.Unmarshal(raw, &decoded); err != nil {
		t.Fatalf("Unmarshal failed: %v", err)
	}

	if !reflect.DeepEqual(data, decoded) {
		t.Errorf("Round trip mismatch:\n got  %+v\n want %+v", decoded, data)
	}
}
