package storage

import "github.com/AshokKumar3502/facemirror/internal/models"

// Provider is the durable store behind the journal and settings records.
// Implementations own the durable bytes exclusively; callers re-read on every
// operation and hold no cached copies. Reads degrade to empty/default values
// rather than failing, so a corrupted store never blocks a new session.
// Writes either fully apply or leave the prior content intact.
type Provider interface {
	// Lifecycle
	Init() error
	Load() error
	Close() error

	// Settings
	GetSettings() (models.Settings, error)
	SaveSettings(models.Settings) error

	// Journal
	GetEntries() ([]models.JournalEntry, error)
	SaveEntries([]models.JournalEntry) error

	// Utils
	GetConfigPath() string
}
