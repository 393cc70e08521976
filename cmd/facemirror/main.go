package main

import (
	"path/filepath"

	"github.com/alecthomas/kong"

	"github.com/AshokKumar3502/facemirror/internal/cli"
	"github.com/AshokKumar3502/facemirror/internal/cli/backups"
	"github.com/AshokKumar3502/facemirror/internal/cli/entries"
	"github.com/AshokKumar3502/facemirror/internal/cli/settings"
	"github.com/AshokKumar3502/facemirror/internal/cli/system"
	"github.com/AshokKumar3502/facemirror/internal/constants"
	"github.com/AshokKumar3502/facemirror/internal/errors"
	"github.com/AshokKumar3502/facemirror/internal/journal"
	"github.com/AshokKumar3502/facemirror/internal/logger"
	"github.com/AshokKumar3502/facemirror/internal/notifier"
	"github.com/AshokKumar3502/facemirror/internal/reminder"
	"github.com/AshokKumar3502/facemirror/internal/storage"
)

var CLI struct {
	Version kong.VersionFlag
	Config  string `help:"Database path. A .json suffix selects the single-file JSON store." type:"string" default:"${config_path}"`
	Debug   bool   `help:"Enable debug logging."`

	Init     system.InitCmd      `cmd:"" help:"Initialize facemirror storage."`
	Migrate  system.MigrateCmd   `cmd:"" help:"Run database migrations."`
	Doctor   system.DoctorCmd    `cmd:"" help:"Run health checks and diagnostics."`
	Tui      system.TuiCmd       `cmd:"" help:"Launch the interactive session." default:"1"`
	Checkin  entries.CheckinCmd  `cmd:"" help:"Analyze a photo and save the check-in without the TUI."`
	History  entries.HistoryCmd  `cmd:"" help:"Show the journal timeline grouped by day."`
	Weekly   entries.WeeklyCmd   `cmd:"" help:"Request a weekly summary over recent check-ins."`
	Clear    entries.ClearCmd    `cmd:"" help:"Delete the entire journal."`
	Settings settings.SettingsCmd `cmd:"" help:"Manage application settings."`
	Key      struct {
		Set    system.KeySetCmd    `cmd:"" help:"Store the analysis API key." default:"1"`
		Show   system.KeyShowCmd   `cmd:"" help:"Show whether an API key is configured."`
		Delete system.KeyDeleteCmd `cmd:"" help:"Remove the stored API key."`
	} `cmd:"" help:"Manage the analysis API key."`
	Backup struct {
		Create  backups.BackupCreateCmd  `cmd:"" help:"Create a manual backup." default:"1"`
		List    backups.BackupListCmd    `cmd:"" help:"List available backups."`
		Restore backups.BackupRestoreCmd `cmd:"" help:"Restore from a backup."`
	} `cmd:"" help:"Manage journal backups."`
	Notify system.NotifyCmd `cmd:"" hidden:"" help:"Poll the reminder scheduler (used internally)."`
}

func main() {
	ctx := kong.Parse(&CLI,
		kong.Name(constants.AppName),
		kong.Description("Reflective photo journal with AI emotional insights"),
		kong.UsageOnError(),
		kong.ConfigureHelp(kong.HelpOptions{
			Compact:             true,
			NoExpandSubcommands: true,
		}),
		kong.Vars{
			"version":     constants.Version,
			"config_path": constants.DefaultConfigPath,
		},
	)

	store := storage.NewProvider(CLI.Config)

	if err := logger.Init(logger.Config{
		Debug:     CLI.Debug,
		ConfigDir: filepath.Dir(store.GetConfigPath()),
	}); err != nil {
		errors.Fatal(err)
	}

	appCtx := &cli.Context{
		Store:     store,
		Journal:   journal.NewManager(store),
		Scheduler: reminder.NewScheduler(store, notifier.New()),
	}
	defer store.Close()

	if err := ctx.Run(appCtx); err != nil {
		errors.Fatal(err)
	}
}
