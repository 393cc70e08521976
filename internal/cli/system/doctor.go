package system

import (
	"fmt"

	"github.com/AshokKumar3502/facemirror/internal/backup"
	"github.com/AshokKumar3502/facemirror/internal/cli"
	"github.com/AshokKumar3502/facemirror/internal/keyring"
	"github.com/AshokKumar3502/facemirror/internal/notifier"
	"github.com/AshokKumar3502/facemirror/internal/storage/sqlite"
)

type DoctorCmd struct{}

func (cmd *DoctorCmd) Run(ctx *cli.Context) error {
	fmt.Println("Running diagnostics...")
	fmt.Println()

	hasError := false
	dbReachable := false

	// Check 1: store reachable
	if err := ctx.Store.Load(); err != nil {
		fmt.Printf("❌ Storage reachable: FAIL\n")
		fmt.Printf("   Error: %v\n", err)
		hasError = true
	} else {
		fmt.Printf("✓ Storage reachable: OK\n")
		dbReachable = true
	}

	// Check 2: schema version (SQLite only, and only if reachable)
	if store, ok := ctx.Store.(*sqlite.Store); ok {
		if dbReachable {
			if err := checkSchemaVersion(store); err != nil {
				fmt.Printf("❌ Schema version: FAIL\n")
				fmt.Printf("   Error: %v\n", err)
				hasError = true
			} else {
				fmt.Printf("✓ Schema version: OK\n")
			}
		} else {
			fmt.Printf("⊘ Schema version: SKIPPED (storage not reachable)\n")
		}
	}

	// Check 3: analysis API key configured
	if ctx.ResolveAPIKey() == "" {
		fmt.Printf("⚠ Analysis API key: WARNING\n")
		fmt.Printf("   No key configured. Run 'facemirror key set' or set GEMINI_API_KEY.\n")
	} else {
		fmt.Printf("✓ Analysis API key: OK\n")
	}

	// Check 4: OS keyring available
	if keyring.IsAvailable() {
		fmt.Printf("✓ OS keyring: OK\n")
	} else {
		fmt.Printf("⚠ OS keyring: WARNING (falling back to settings record for the API key)\n")
	}

	// Check 5: notification permission / tray app
	if notifier.New().Available() {
		fmt.Printf("✓ Notifications: OK\n")
	} else {
		fmt.Printf("⚠ Notifications: WARNING (tray app not running; reminders cannot be enabled)\n")
	}

	// Check 6: backups present (warning only)
	backups, err := backup.NewManager(ctx.Store.GetConfigPath()).ListBackups()
	if err != nil || len(backups) == 0 {
		fmt.Printf("⚠ Backups present: WARNING (no backups found)\n")
	} else {
		fmt.Printf("✓ Backups present: OK (%d)\n", len(backups))
	}

	fmt.Println()
	if hasError {
		return fmt.Errorf("diagnostics found problems")
	}
	fmt.Println("All critical checks passed.")
	return nil
}

func checkSchemaVersion(store *sqlite.Store) error {
	runner, err := store.Runner()
	if err != nil {
		return err
	}

	current, err := runner.GetCurrentVersion()
	if err != nil {
		return err
	}
	latest, err := runner.GetLatestVersion()
	if err != nil {
		return err
	}
	if current != latest {
		return fmt.Errorf("schema at version %d, expected %d (run 'facemirror migrate')", current, latest)
	}
	return nil
}
