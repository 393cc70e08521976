package entries

import (
	"fmt"
	"time"

	"github.com/AshokKumar3502/facemirror/internal/cli"
	"github.com/AshokKumar3502/facemirror/internal/constants"
	"github.com/AshokKumar3502/facemirror/internal/journal"
)

type HistoryCmd struct {
	Day   *int `help:"Show only the given day number."`
	Limit int  `help:"Maximum number of entries to show." default:"20"`
}

func (c *HistoryCmd) Run(ctx *cli.Context) error {
	if err := ctx.Store.Load(); err != nil {
		return err
	}

	entries, err := ctx.Journal.ListEntries()
	if err != nil {
		return err
	}
	if len(entries) == 0 {
		fmt.Println("No journal entries yet. Run 'facemirror checkin' to start.")
		return nil
	}

	day, err := ctx.Journal.CurrentDayNumber()
	if err == nil {
		fmt.Printf("Journal (Day %d, %d entries total)\n\n", day, len(entries))
	}

	journal.SortNewestFirst(entries)
	if c.Day == nil && c.Limit > 0 && len(entries) > c.Limit {
		entries = entries[:c.Limit]
	}

	groups := journal.GroupByDay(entries)
	for _, label := range journal.DayOrder(entries) {
		if c.Day != nil && label != journal.DayLabel(*c.Day) {
			continue
		}
		fmt.Println(label)
		for _, entry := range groups[label] {
			when := time.UnixMilli(entry.Timestamp).Format(constants.DateFormat + " " + constants.TimeFormat)
			fmt.Printf("  %s  [%s]  score %d  %s\n",
				when, entry.Context, entry.Insight.EmotionalScore, entry.Insight.PsychProfile)
		}
		fmt.Println()
	}

	return nil
}
