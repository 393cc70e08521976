package models

import (
	"testing"

	"github.com/AshokKumar3502/facemirror/internal/constants"
)

func TestSettingsMapRoundTrip(t *testing.T) {
	settings := Settings{
		ReminderEnabled:      true,
		ReminderTime:         "21:30",
		LastNotificationDate: "2026-03-05",
		CustomAPIKey:         "k-789",
	}

	got, err := MapToSettings(SettingsToMap(settings))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got != settings {
		t.Errorf("round trip mismatch: got %+v want %+v", got, settings)
	}
}

func TestMapToSettingsIgnoresUnknownKeys(t *testing.T) {
	got, err := MapToSettings(map[string]string{
		constants.SettingReminderTime: "09:00",
		"legacy_theme":                "dark",
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got.ReminderTime != "09:00" {
		t.Errorf("known key not applied: %+v", got)
	}
}

func TestApplyDefaultSettings(t *testing.T) {
	settings := Settings{}
	ApplyDefaultSettings(&settings)
	if settings.ReminderTime != constants.DefaultReminderTime {
		t.Errorf("expected default reminder time, got %q", settings.ReminderTime)
	}

	settings = Settings{ReminderTime: "06:00"}
	ApplyDefaultSettings(&settings)
	if settings.ReminderTime != "06:00" {
		t.Error("existing reminder time must be preserved")
	}
}

func TestContextValid(t *testing.T) {
	for _, c := range Contexts() {
		if !c.Valid() {
			t.Errorf("expected %q to be valid", c)
		}
	}
	for _, bad := range []Context{"", "afternoon", "WORK"} {
		if bad.Valid() {
			t.Errorf("expected %q to be invalid", bad)
		}
	}
}
