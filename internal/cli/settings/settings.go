package settings

import (
	"fmt"

	"github.com/AshokKumar3502/facemirror/internal/cli"
	"github.com/AshokKumar3502/facemirror/internal/errors"
)

type SettingsCmd struct {
	List bool `help:"List current settings."`

	Reminder     *bool   `help:"Enable or disable the daily check-in reminder."`
	ReminderTime *string `help:"Reminder time of day (HH:MM)."`
}

func (c *SettingsCmd) Run(ctx *cli.Context) error {
	if err := ctx.Store.Load(); err != nil {
		return err
	}

	settings, err := ctx.Store.GetSettings()
	if err != nil {
		return fmt.Errorf("failed to get settings: %w", err)
	}

	if c.List {
		fmt.Println("Current Settings:")
		fmt.Printf("  Reminder Enabled:  %v\n", settings.ReminderEnabled)
		fmt.Printf("  Reminder Time:     %s\n", settings.ReminderTime)
		if settings.LastNotificationDate != "" {
			fmt.Printf("  Last Reminder:     %s\n", settings.LastNotificationDate)
		}
		if settings.CustomAPIKey != "" {
			fmt.Println("  API Key:           configured (settings record)")
		}
		return nil
	}

	updated := false
	if c.ReminderTime != nil {
		if err := ctx.Scheduler.SetTime(*c.ReminderTime); err != nil {
			return err
		}
		updated = true
	}
	if c.Reminder != nil {
		// Enabling requires the notification permission; the denial is
		// reported here and never reaches the session flow.
		if err := ctx.Scheduler.SetEnabled(*c.Reminder); err != nil {
			if errors.IsKind(err, errors.KindPermissionDenied) {
				return fmt.Errorf("cannot enable reminders: %w", err)
			}
			return err
		}
		updated = true
	}

	if updated {
		fmt.Println("Settings updated successfully.")
	} else {
		fmt.Println("No changes specified. Use --list to view settings or flags to update them.")
	}

	return nil
}
