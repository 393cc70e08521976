package backups

import (
	"fmt"
	"path/filepath"

	"github.com/AshokKumar3502/facemirror/internal/backup"
	"github.com/AshokKumar3502/facemirror/internal/cli"
)

type BackupCreateCmd struct{}

func (c *BackupCreateCmd) Run(ctx *cli.Context) error {
	mgr := backup.NewManager(ctx.Store.GetConfigPath())
	path, err := mgr.CreateBackup()
	if err != nil {
		return err
	}
	fmt.Printf("Created backup: %s\n", path)
	return nil
}

type BackupListCmd struct{}

func (c *BackupListCmd) Run(ctx *cli.Context) error {
	mgr := backup.NewManager(ctx.Store.GetConfigPath())
	backups, err := mgr.ListBackups()
	if err != nil {
		return err
	}
	if len(backups) == 0 {
		fmt.Println("No backups found.")
		return nil
	}

	fmt.Printf("Backups in %s:\n", mgr.GetBackupDir())
	for _, b := range backups {
		fmt.Printf("  %s  (%d bytes)\n", filepath.Base(b.Path), b.Size)
	}
	return nil
}

type BackupRestoreCmd struct {
	Name string `arg:"" help:"Backup filename to restore."`
}

func (c *BackupRestoreCmd) Run(ctx *cli.Context) error {
	// Close the live store before overwriting its file.
	if err := ctx.Store.Close(); err != nil {
		return fmt.Errorf("failed to close storage before restore: %w", err)
	}

	mgr := backup.NewManager(ctx.Store.GetConfigPath())
	if err := mgr.RestoreBackup(filepath.Join(mgr.GetBackupDir(), c.Name)); err != nil {
		return err
	}
	fmt.Printf("Restored backup: %s\n", c.Name)
	return nil
}
