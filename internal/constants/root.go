package constants

import "time"

const (
	AppName            = "facemirror"
	DefaultKeyringUser = "analysis-api-key"
	DefaultConfigPath  = "~/.config/facemirror/facemirror.db"
	Version            = "v0.3.0"

	// Backup constants
	MaxBackups       = 14
	BackupDirName    = "backups"
	BackupFilePrefix = "facemirror-"
	BackupFileSuffix = ".db"

	// Notify constants
	NotifyMaxRetries       = 3
	NotifyRetryDelay       = 100 * time.Millisecond
	NotifierLockfileName   = "facemirror-notifier.lock"
	NotificationDurationMs = 5000
	TrayAppIdentifier      = "com.ashokkumar.facemirror"

	// MillisPerDay is the length of one logical journal day in epoch milliseconds.
	MillisPerDay = 86_400_000

	// WeeklyMinEntries is the minimum journal size before a weekly summary may be requested.
	WeeklyMinEntries = 2
	// WeeklyMaxEntries caps how many recent entries are forwarded to the summarizer.
	WeeklyMaxEntries = 14
)
