package entries

import (
	"context"
	"errors"
	"fmt"

	"github.com/AshokKumar3502/facemirror/internal/cli"
	"github.com/AshokKumar3502/facemirror/internal/weekly"
)

type WeeklyCmd struct{}

func (c *WeeklyCmd) Run(ctx *cli.Context) error {
	if err := ctx.Store.Load(); err != nil {
		return err
	}

	trigger := weekly.NewTrigger(ctx.Journal, ctx.NewAnalyzer())

	fmt.Println("Summarizing your recent check-ins...")
	summary, err := trigger.Run(context.Background())
	if err != nil {
		if errors.Is(err, weekly.ErrNotEnoughEntries) {
			fmt.Println("You need at least two check-ins before a weekly summary.")
			return nil
		}
		return err
	}

	fmt.Printf("\n%s\n\n", summary.WeekTitle)
	fmt.Printf("%s\n\n", summary.SoulReport)
	fmt.Printf("Trend:       %s\n", summary.EmotionalTrend)
	fmt.Printf("Realization: %s\n", summary.KeyRealization)
	fmt.Printf("Mantra:      %s\n", summary.NextWeekMantra)
	return nil
}
