package system

import (
	"fmt"
	"time"

	"github.com/AshokKumar3502/facemirror/internal/cli"
	"github.com/AshokKumar3502/facemirror/internal/reminder"
)

// NotifyCmd is the fixed-interval reminder poll. A cron job or the tray app
// invokes it; it fires at most one reminder per local calendar date.
type NotifyCmd struct {
	DryRun bool `help:"Print the decision to stdout instead of dispatching."`
}

func (c *NotifyCmd) Run(ctx *cli.Context) error {
	if err := ctx.Store.Load(); err != nil {
		return err
	}

	now := time.Now()

	if c.DryRun {
		settings, err := ctx.Store.GetSettings()
		if err != nil {
			return fmt.Errorf("failed to get settings: %w", err)
		}
		if !settings.ReminderEnabled {
			fmt.Println("Reminders are disabled in settings.")
			return nil
		}
		if reminder.ShouldFireNow(settings, now) {
			fmt.Printf("A reminder is due (reminder time %s, last fired %q).\n", settings.ReminderTime, settings.LastNotificationDate)
		} else {
			fmt.Println("No reminder due right now.")
		}
		return nil
	}

	fired, err := ctx.Scheduler.Check(now)
	if err != nil {
		return err
	}
	if fired {
		fmt.Println("Reminder dispatched.")
	}
	return nil
}
