package models

// Settings represents application-wide settings
type Settings struct {
	ReminderEnabled      bool   `json:"reminder_enabled"`       // whether the daily reminder is enabled
	ReminderTime         string `json:"reminder_time"`          // wall-clock time of day the reminder fires, e.g. "20:00"
	LastNotificationDate string `json:"last_notification_date"` // local calendar date a reminder last fired (YYYY-MM-DD), empty if never
	CustomAPIKey         string `json:"custom_api_key"`         // analysis API credential, passed through to the analyzer untouched
}
