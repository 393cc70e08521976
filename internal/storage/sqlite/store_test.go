package sqlite

import (
	"path/filepath"
	"testing"

	"github.com/AshokKumar3502/facemirror/internal/constants"
	"github.com/AshokKumar3502/facemirror/internal/models"
)

func newTestStore(t *testing.T) *Store {
	t.Helper()
	store := NewStore(filepath.Join(t.TempDir(), "facemirror.db"))
	if err := store.Init(); err != nil {
		t.Fatalf("init: %v", err)
	}
	t.Cleanup(func() { store.Close() })
	return store
}

func TestInitSeedsDefaults(t *testing.T) {
	store := newTestStore(t)

	settings, err := store.GetSettings()
	if err != nil {
		t.Fatalf("get settings: %v", err)
	}
	if settings.ReminderTime != constants.DefaultReminderTime {
		t.Errorf("unexpected default reminder time: %q", settings.ReminderTime)
	}
	if settings.ReminderEnabled != constants.DefaultReminderEnabled {
		t.Errorf("unexpected default reminder enabled: %v", settings.ReminderEnabled)
	}

	entries, err := store.GetEntries()
	if err != nil {
		t.Fatalf("get entries: %v", err)
	}
	if len(entries) != 0 {
		t.Errorf("expected empty journal, got %d entries", len(entries))
	}
}

func TestLoadBeforeInit(t *testing.T) {
	store := NewStore(filepath.Join(t.TempDir(), "missing.db"))
	if err := store.Load(); err == nil {
		t.Fatal("expected load to fail before init")
	}
}

func TestSettingsRoundTrip(t *testing.T) {
	store := newTestStore(t)

	want := models.Settings{
		ReminderEnabled:      true,
		ReminderTime:         "06:45",
		LastNotificationDate: "2026-03-05",
		CustomAPIKey:         "k-456",
	}
	if err := store.SaveSettings(want); err != nil {
		t.Fatalf("save settings: %v", err)
	}

	got, err := store.GetSettings()
	if err != nil {
		t.Fatalf("get settings: %v", err)
	}
	if got != want {
		t.Errorf("settings mismatch: got %+v want %+v", got, want)
	}
}

func TestEntriesRoundTrip(t *testing.T) {
	store := newTestStore(t)

	entries := []models.JournalEntry{
		{
			ID:        "e1",
			Timestamp: 1000,
			DayNumber: 1,
			Context:   models.ContextBeforeSleep,
			Insight: models.InsightData{
				EmotionalScore:    58,
				SimpleExplanation: "winding down",
				Vitals:            models.Vitals{Stress: 30, Calmness: 70},
				StressTriggers: []models.StressTrigger{
					{Type: "work", Impact: models.ImpactMedium, Description: "deadline"},
				},
			},
			Image: "aW1n",
		},
		{
			ID:        "e2",
			Timestamp: 2000,
			DayNumber: 2,
			Context:   models.ContextWork,
			Insight:   models.InsightData{EmotionalScore: 72},
		},
	}
	if err := store.SaveEntries(entries); err != nil {
		t.Fatalf("save entries: %v", err)
	}

	got, err := store.GetEntries()
	if err != nil {
		t.Fatalf("get entries: %v", err)
	}
	if len(got) != 2 {
		t.Fatalf("expected 2 entries, got %d", len(got))
	}

	byID := map[string]models.JournalEntry{got[0].ID: got[0], got[1].ID: got[1]}
	first, ok := byID["e1"]
	if !ok {
		t.Fatal("entry e1 missing")
	}
	if first.Insight.EmotionalScore != 58 || first.Insight.Vitals.Calmness != 70 {
		t.Errorf("insight not preserved: %+v", first.Insight)
	}
	if len(first.Insight.StressTriggers) != 1 || first.Insight.StressTriggers[0].Impact != models.ImpactMedium {
		t.Errorf("triggers not preserved: %+v", first.Insight.StressTriggers)
	}
	if first.Image != "aW1n" {
		t.Errorf("image not preserved: %q", first.Image)
	}

	// A save fully replaces the journal.
	if err := store.SaveEntries(entries[:1]); err != nil {
		t.Fatalf("save entries: %v", err)
	}
	got, _ = store.GetEntries()
	if len(got) != 1 {
		t.Errorf("expected 1 entry after rewrite, got %d", len(got))
	}
}

func TestReopenKeepsData(t *testing.T) {
	store := newTestStore(t)
	if err := store.SaveEntries([]models.JournalEntry{{ID: "e1", Timestamp: 1, DayNumber: 1, Context: models.ContextWork}}); err != nil {
		t.Fatalf("save: %v", err)
	}
	path := store.GetConfigPath()
	if err := store.Close(); err != nil {
		t.Fatalf("close: %v", err)
	}

	reopened := NewStore(path)
	if err := reopened.Load(); err != nil {
		t.Fatalf("load: %v", err)
	}
	defer reopened.Close()

	entries, err := reopened.GetEntries()
	if err != nil {
		t.Fatalf("get entries: %v", err)
	}
	if len(entries) != 1 || entries[0].ID != "e1" {
		t.Errorf("journal not persisted: %+v", entries)
	}
}
