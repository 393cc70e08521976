package models

import (
	"github.com/AshokKumar3502/facemirror/internal/constants"
)

// MapToSettings converts a map of key-value pairs to a Settings struct.
func MapToSettings(data map[string]string) (Settings, error) {
	settings := Settings{}

	for key, value := range data {
		switch key {
		case constants.SettingReminderEnabled:
			settings.ReminderEnabled = value == "true"
		case constants.SettingReminderTime:
			settings.ReminderTime = value
		case constants.SettingLastNotificationDate:
			settings.LastNotificationDate = value
		case constants.SettingCustomAPIKey:
			settings.CustomAPIKey = value
		}
	}
	return settings, nil
}

// SettingsToMap converts a Settings struct to a map of key-value pairs.
func SettingsToMap(settings Settings) map[string]string {
	enabled := "false"
	if settings.ReminderEnabled {
		enabled = "true"
	}
	return map[string]string{
		constants.SettingReminderEnabled:      enabled,
		constants.SettingReminderTime:         settings.ReminderTime,
		constants.SettingLastNotificationDate: settings.LastNotificationDate,
		constants.SettingCustomAPIKey:         settings.CustomAPIKey,
	}
}

// ApplyDefaultSettings applies default values to missing settings.
func ApplyDefaultSettings(settings *Settings) {
	if settings.ReminderTime == "" {
		settings.ReminderTime = constants.DefaultReminderTime
	}
}

// DefaultSettings returns a Settings struct populated with defaults.
func DefaultSettings() Settings {
	return Settings{
		ReminderEnabled:      constants.DefaultReminderEnabled,
		ReminderTime:         constants.DefaultReminderTime,
		LastNotificationDate: "",
		CustomAPIKey:         constants.DefaultCustomAPIKey,
	}
}
