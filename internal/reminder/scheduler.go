package reminder

import (
	"fmt"
	"time"

	"github.com/AshokKumar3502/facemirror/internal/constants"
	"github.com/AshokKumar3502/facemirror/internal/errors"
	"github.com/AshokKumar3502/facemirror/internal/logger"
	"github.com/AshokKumar3502/facemirror/internal/models"
	"github.com/AshokKumar3502/facemirror/internal/storage"
)

// Dispatcher delivers a reminder to the platform. The notifier satisfies it.
type Dispatcher interface {
	Notify(text string) error
	Available() bool
}

// Scheduler decides when the daily check-in reminder should fire and records
// that it fired, guaranteeing at most one firing per local calendar date.
type Scheduler struct {
	store      storage.Provider
	dispatcher Dispatcher
}

func NewScheduler(store storage.Provider, dispatcher Dispatcher) *Scheduler {
	return &Scheduler{
		store:      store,
		dispatcher: dispatcher,
	}
}

// ShouldFireNow reports whether a reminder is due: reminders enabled, the
// local time of day is at or past the configured reminder time, and none has
// fired yet on now's local calendar date.
func ShouldFireNow(settings models.Settings, now time.Time) bool {
	if !settings.ReminderEnabled {
		return false
	}

	target, err := time.Parse(constants.TimeFormat, settings.ReminderTime)
	if err != nil {
		logger.Warn("Unparseable reminder time", "value", settings.ReminderTime)
		return false
	}

	nowMinutes := now.Hour()*60 + now.Minute()
	targetMinutes := target.Hour()*60 + target.Minute()
	if nowMinutes < targetMinutes {
		return false
	}

	return settings.LastNotificationDate != now.Format(constants.DateFormat)
}

// MarkFired records now's local calendar date as the last notification date.
func (s *Scheduler) MarkFired(now time.Time) error {
	settings, err := s.store.GetSettings()
	if err != nil {
		return err
	}
	settings.LastNotificationDate = now.Format(constants.DateFormat)
	return s.store.SaveSettings(settings)
}

// Check is the fixed-interval poll body: if a reminder is due it dispatches
// one and marks the date. Dispatch failure skips the day's marking so the
// poller's retry policy stays in the caller's hands; a transient failure can
// cost a day but never duplicates a reminder.
func (s *Scheduler) Check(now time.Time) (bool, error) {
	settings, err := s.store.GetSettings()
	if err != nil {
		return false, err
	}

	if !ShouldFireNow(settings, now) {
		return false, nil
	}

	if err := s.dispatcher.Notify("Time for your daily check-in. How are you feeling?"); err != nil {
		return false, fmt.Errorf("failed to dispatch reminder: %w", err)
	}

	if err := s.MarkFired(now); err != nil {
		return true, err
	}
	return true, nil
}

// SetEnabled toggles the reminder, requiring the dispatcher to be reachable
// before it can be switched on. The denial is reported synchronously and
// never enters the session flow.
func (s *Scheduler) SetEnabled(enabled bool) error {
	if enabled && !s.dispatcher.Available() {
		return errors.New(errors.KindPermissionDenied, "notifications are not available: grant permission or start the tray app")
	}

	settings, err := s.store.GetSettings()
	if err != nil {
		return err
	}
	settings.ReminderEnabled = enabled
	return s.store.SaveSettings(settings)
}

// SetTime updates the reminder's wall-clock time of day.
func (s *Scheduler) SetTime(value string) error {
	if _, err := time.Parse(constants.TimeFormat, value); err != nil {
		return fmt.Errorf("invalid reminder time %q (expected HH:MM)", value)
	}

	settings, err := s.store.GetSettings()
	if err != nil {
		return err
	}
	settings.ReminderTime = value
	return s.store.SaveSettings(settings)
}
