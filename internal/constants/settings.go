package constants

const (
	// Settings keys
	SettingReminderEnabled      = "reminder_enabled"
	SettingReminderTime         = "reminder_time"
	SettingLastNotificationDate = "last_notification_date"
	SettingCustomAPIKey         = "custom_api_key"

	// Default Settings Values
	DefaultReminderEnabled = false
	DefaultReminderTime    = "20:00"
	DefaultCustomAPIKey    = ""
)
