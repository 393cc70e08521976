package reminder

import (
	stderrors "errors"
	"testing"
	"time"

	"github.com/AshokKumar3502/facemirror/internal/errors"
	"github.com/AshokKumar3502/facemirror/internal/models"
)

type fakeStore struct {
	settings models.Settings
}

func (f *fakeStore) Init() error  { return nil }
func (f *fakeStore) Load() error  { return nil }
func (f *fakeStore) Close() error { return nil }

func (f *fakeStore) GetSettings() (models.Settings, error) { return f.settings, nil }
func (f *fakeStore) SaveSettings(s models.Settings) error {
	f.settings = s
	return nil
}

func (f *fakeStore) GetEntries() ([]models.JournalEntry, error) { return nil, nil }
func (f *fakeStore) SaveEntries([]models.JournalEntry) error    { return nil }
func (f *fakeStore) GetConfigPath() string                      { return "" }

type fakeDispatcher struct {
	available bool
	notifyErr error
	notified  int
}

func (f *fakeDispatcher) Notify(string) error {
	f.notified++
	return f.notifyErr
}

func (f *fakeDispatcher) Available() bool { return f.available }

func at(hour, minute int) time.Time {
	return time.Date(2026, 3, 5, hour, minute, 0, 0, time.Local)
}

func TestShouldFireNow(t *testing.T) {
	tests := []struct {
		name     string
		settings models.Settings
		now      time.Time
		want     bool
	}{
		{
			name:     "disabled never fires",
			settings: models.Settings{ReminderEnabled: false, ReminderTime: "08:00"},
			now:      at(23, 59),
			want:     false,
		},
		{
			name:     "before the configured time",
			settings: models.Settings{ReminderEnabled: true, ReminderTime: "20:00"},
			now:      at(19, 59),
			want:     false,
		},
		{
			name:     "exactly at the configured time",
			settings: models.Settings{ReminderEnabled: true, ReminderTime: "20:00"},
			now:      at(20, 0),
			want:     true,
		},
		{
			name:     "well past the configured time",
			settings: models.Settings{ReminderEnabled: true, ReminderTime: "20:00"},
			now:      at(23, 30),
			want:     true,
		},
		{
			name: "already fired today",
			settings: models.Settings{
				ReminderEnabled:      true,
				ReminderTime:         "20:00",
				LastNotificationDate: "2026-03-05",
			},
			now:  at(21, 0),
			want: false,
		},
		{
			name: "fired yesterday fires again",
			settings: models.Settings{
				ReminderEnabled:      true,
				ReminderTime:         "20:00",
				LastNotificationDate: "2026-03-04",
			},
			now:  at(21, 0),
			want: true,
		},
		{
			name:     "unparseable time never fires",
			settings: models.Settings{ReminderEnabled: true, ReminderTime: "late"},
			now:      at(23, 0),
			want:     false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := ShouldFireNow(tt.settings, tt.now); got != tt.want {
				t.Errorf("ShouldFireNow() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestCheck(t *testing.T) {
	t.Run("fires at most once per day", func(t *testing.T) {
		store := &fakeStore{settings: models.Settings{ReminderEnabled: true, ReminderTime: "20:00"}}
		dispatcher := &fakeDispatcher{available: true}
		s := NewScheduler(store, dispatcher)

		fired, err := s.Check(at(20, 5))
		if err != nil || !fired {
			t.Fatalf("expected first check to fire, got fired=%v err=%v", fired, err)
		}

		// Repeated polls on the same day stay quiet.
		for minute := 10; minute <= 50; minute += 10 {
			fired, err = s.Check(at(20, minute))
			if err != nil || fired {
				t.Fatalf("expected later check to stay quiet, got fired=%v err=%v", fired, err)
			}
		}
		if dispatcher.notified != 1 {
			t.Errorf("expected exactly 1 notification, got %d", dispatcher.notified)
		}
	})

	t.Run("dispatch failure skips the day without marking", func(t *testing.T) {
		store := &fakeStore{settings: models.Settings{ReminderEnabled: true, ReminderTime: "20:00"}}
		dispatcher := &fakeDispatcher{available: true, notifyErr: stderrors.New("tray unreachable")}
		s := NewScheduler(store, dispatcher)

		fired, err := s.Check(at(20, 5))
		if err == nil || fired {
			t.Fatalf("expected dispatch failure, got fired=%v err=%v", fired, err)
		}
		if store.settings.LastNotificationDate != "" {
			t.Error("failed dispatch must not mark the day")
		}

		// Once the dispatcher recovers, the same day fires normally.
		dispatcher.notifyErr = nil
		fired, err = s.Check(at(20, 30))
		if err != nil || !fired {
			t.Fatalf("expected recovery to fire, got fired=%v err=%v", fired, err)
		}
	})
}

func TestMarkFired(t *testing.T) {
	store := &fakeStore{settings: models.Settings{ReminderEnabled: true, ReminderTime: "20:00"}}
	s := NewScheduler(store, &fakeDispatcher{available: true})

	if err := s.MarkFired(at(20, 0)); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if store.settings.LastNotificationDate != "2026-03-05" {
		t.Errorf("unexpected last notification date: %q", store.settings.LastNotificationDate)
	}
}

func TestSetEnabled(t *testing.T) {
	t.Run("denied when notifications unavailable", func(t *testing.T) {
		store := &fakeStore{}
		s := NewScheduler(store, &fakeDispatcher{available: false})

		err := s.SetEnabled(true)
		if !errors.IsKind(err, errors.KindPermissionDenied) {
			t.Fatalf("expected permission denied, got %v", err)
		}
		if store.settings.ReminderEnabled {
			t.Error("denied enable must not persist")
		}
	})

	t.Run("enable persists when available", func(t *testing.T) {
		store := &fakeStore{}
		s := NewScheduler(store, &fakeDispatcher{available: true})

		if err := s.SetEnabled(true); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if !store.settings.ReminderEnabled {
			t.Error("expected reminder enabled")
		}
	})

	t.Run("disable never needs the dispatcher", func(t *testing.T) {
		store := &fakeStore{settings: models.Settings{ReminderEnabled: true}}
		s := NewScheduler(store, &fakeDispatcher{available: false})

		if err := s.SetEnabled(false); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if store.settings.ReminderEnabled {
			t.Error("expected reminder disabled")
		}
	})
}

func TestSetTime(t *testing.T) {
	store := &fakeStore{}
	s := NewScheduler(store, &fakeDispatcher{available: true})

	if err := s.SetTime("07:30"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if store.settings.ReminderTime != "07:30" {
		t.Errorf("unexpected reminder time: %q", store.settings.ReminderTime)
	}

	for _, bad := range []string{"7:30pm", "25:00", "noon", ""} {
		if err := s.SetTime(bad); err == nil {
			t.Errorf("expected %q to be rejected", bad)
		}
	}
}
