package cli

import (
	"os"

	"github.com/AshokKumar3502/facemirror/internal/backup"
	"github.com/AshokKumar3502/facemirror/internal/insight"
	"github.com/AshokKumar3502/facemirror/internal/journal"
	"github.com/AshokKumar3502/facemirror/internal/keyring"
	"github.com/AshokKumar3502/facemirror/internal/logger"
	"github.com/AshokKumar3502/facemirror/internal/reminder"
	"github.com/AshokKumar3502/facemirror/internal/storage"
)

// Context is the shared dependency bundle handed to every command.
type Context struct {
	Store     storage.Provider
	Journal   *journal.Manager
	Scheduler *reminder.Scheduler
}

// PerformAutomaticBackup creates an automatic backup and silently handles errors
func (c *Context) PerformAutomaticBackup() {
	mgr := backup.NewManager(c.Store.GetConfigPath())
	if _, err := mgr.CreateBackup(); err != nil {
		// Log warning but don't interrupt user workflow
		logger.Warn("Automatic backup failed", "error", err)
	}
}

// ResolveAPIKey returns the analysis credential: OS keyring first, then the
// settings record, then the environment. Empty means no key is configured,
// which the analyzer reports as a key-missing failure per call.
func (c *Context) ResolveAPIKey() string {
	if key, err := keyring.GetAPIKey(); err == nil && key != "" {
		return key
	}
	if settings, err := c.Store.GetSettings(); err == nil && settings.CustomAPIKey != "" {
		return settings.CustomAPIKey
	}
	return os.Getenv("GEMINI_API_KEY")
}

// NewAnalyzer builds the analysis client with the currently resolved key.
func (c *Context) NewAnalyzer() insight.Analyzer {
	return insight.NewClient(insight.Config{APIKey: c.ResolveAPIKey()})
}
