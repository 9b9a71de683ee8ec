package storage

import (
	"errors"
	"path/filepath"
	"reflect"
	"testing"

	"fyne.io/fyne/v2/test"

	"github.com/ytget/health-diary/internal/model"
)

// failingBackend rejects every operation
type failingBackend struct {
	writes int
}

func (b *failingBackend) Read(key string) (string, error) { return "", errors.New("disk on fire") }
func (b *failingBackend) Write(key, value string) error {
	b.writes++
	return errors.New("quota exceeded")
}
func (b *failingBackend) Delete(key string) error { return errors.New("read-only") }

// mapBackend is an in-memory backend
type mapBackend map[string]string

func (b mapBackend) Read(key string) (string, error) {
	v, ok := b[key]
	if !ok {
		return "", ErrNotFound
	}
	return v, nil
}
func (b mapBackend) Write(key, value string) error { b[key] = value; return nil }
func (b mapBackend) Delete(key string) error      { delete(b, key); return nil }

func sampleData() model.AppData {
	entry := model.NewDailyEntry()
	entry.Water = 6
	entry.Weight = "63.4"
	entry.Sleep = 8.5
	entry.Energy = 5
	breakfast := entry.Meals[model.MealBreakfast]
	breakfast.Menu = "rice, soup"
	breakfast.Rating = 4
	entry.Meals[model.MealBreakfast] = breakfast

	week := model.NewWeeklyEntry()
	week.SetPlan("2026-10-21", model.MealSnack, "apple")
	week.Notes = "prep on sunday"

	return model.NewAppData().WithDaily("2026-10-19", entry).WithWeekly("2026-10-19", week)
}

func TestLoad_MissingKeyReturnsDefault(t *testing.T) {
	store := NewStore(mapBackend{})

	lang := Load(store, "lang", "en")
	if lang != "en" {
		t.Errorf("Expected default 'en', got %q", lang)
	}
}

func TestLoad_CorruptDataReturnsDefault(t *testing.T) {
	store := NewStore(mapBackend{"data": "{not json"})

	data := Load(store, "data", model.NewAppData())
	if data.Version != model.CurrentVersion || len(data.Daily) != 0 {
		t.Errorf("Expected empty default document, got %+v", data)
	}
}

func TestLoad_ReadFailureReturnsDefault(t *testing.T) {
	store := NewStore(&failingBackend{})

	if got := Load(store, "lang", "ko"); got != "ko" {
		t.Errorf("Expected default 'ko', got %q", got)
	}
}

func TestSave_FailureIsReportedNotFatal(t *testing.T) {
	backend := &failingBackend{}
	store := NewStore(backend)

	err := store.Save("data", sampleData())
	if err == nil {
		t.Fatal("Expected an error from a failing backend")
	}
	if backend.writes != 1 {
		t.Errorf("Expected exactly one write attempt (no retry), got %d", backend.writes)
	}
}

func TestSave_UnencodableValue(t *testing.T) {
	store := NewStore(mapBackend{})

	if err := store.Save("bad", make(chan int)); err == nil {
		t.Error("Expected an encode error for a channel value")
	}
}

func TestPreferencesBackend_RoundTrip(t *testing.T) {
	app := test.NewApp()
	defer app.Quit()

	store := NewStore(NewPreferencesBackend(app))
	saved := sampleData()

	if err := store.Save("healthDiaryData", saved); err != nil {
		t.Fatalf("Save failed: %v", err)
	}
	if err := store.Save("healthDiaryLang", "ko"); err != nil {
		t.Fatalf("Save failed: %v", err)
	}

	reloaded := Load(NewStore(NewPreferencesBackend(app)), "healthDiaryData", model.NewAppData())
	if !reflect.DeepEqual(saved, reloaded) {
		t.Errorf("Reloaded document differs:\n got  %+v\n want %+v", reloaded, saved)
	}
	if lang := Load(store, "healthDiaryLang", "en"); lang != "ko" {
		t.Errorf("Expected language 'ko', got %q", lang)
	}

	if err := store.Remove("healthDiaryLang"); err != nil {
		t.Fatalf("Remove failed: %v", err)
	}
	if lang := Load(store, "healthDiaryLang", "en"); lang != "en" {
		t.Errorf("Expected default after removal, got %q", lang)
	}
}

func TestSQLiteBackend_RoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "diary.db")

	backend, err := OpenSQLite(path)
	if err != nil {
		t.Fatalf("OpenSQLite failed: %v", err)
	}

	saved := sampleData()
	store := NewStore(backend)
	if err := store.Save("healthDiaryData", saved); err != nil {
		t.Fatalf("Save failed: %v", err)
	}

	// Overwrite to exercise the upsert path
	saved = saved.WithoutWeekly("2026-10-19")
	if err := store.Save("healthDiaryData", saved); err != nil {
		t.Fatalf("Second save failed: %v", err)
	}
	if err := backend.Close(); err != nil {
		t.Fatalf("Close failed: %v", err)
	}

	reopened, err := OpenSQLite(path)
	if err != nil {
		t.Fatalf("Reopen failed: %v", err)
	}
	defer reopened.Close()

	reloaded := Load(NewStore(reopened), "healthDiaryData", model.NewAppData())
	if !reflect.DeepEqual(saved, reloaded) {
		t.Errorf("Reloaded document differs:\n got  %+v\n want %+v", reloaded, saved)
	}

	if _, err := reopened.Read("missing"); !errors.Is(err, ErrNotFound) {
		t.Errorf("Expected ErrNotFound, got %v", err)
	}

	if err := NewStore(reopened).Remove("healthDiaryData"); err != nil {
		t.Fatalf("Remove failed: %v", err)
	}
	if _, err := reopened.Read("healthDiaryData"); !errors.Is(err, ErrNotFound) {
		t.Errorf("Expected ErrNotFound after removal, got %v", err)
	}
}

func TestOpenSQLite_InMemory(t *testing.T) {
	backend, err := OpenSQLite(":memory:")
	if err != nil {
		t.Fatalf("OpenSQLite failed: %v", err)
	}
	defer backend.Close()

	if err := backend.Write("k", `"v"`); err != nil {
		t.Fatalf("Write failed: %v", err)
	}
	if v, err := backend.Read("k"); err != nil || v != `"v"` {
		t.Errorf("Read = (%q, %v), expected (\"v\", nil)", v, err)
	}
}
