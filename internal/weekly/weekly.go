// Package weekly gates and runs the weekly meta-summary over recent entries.
package weekly

import (
	"context"

	"github.com/AshokKumar3502/facemirror/internal/constants"
	"github.com/AshokKumar3502/facemirror/internal/errors"
	"github.com/AshokKumar3502/facemirror/internal/insight"
	"github.com/AshokKumar3502/facemirror/internal/journal"
	"github.com/AshokKumar3502/facemirror/internal/models"
)

// ErrNotEnoughEntries is returned while the journal is too small for a
// meaningful summary.
var ErrNotEnoughEntries = errors.New(errors.KindGeneral, "not enough journal entries for a weekly summary yet")

// Trigger requests a meta-summary over the most recent entries. It is
// manually invoked, holds no memory of prior summaries, and may be invoked
// repeatedly with no state change.
type Trigger struct {
	journal    *journal.Manager
	summarizer insight.Analyzer
}

func NewTrigger(jm *journal.Manager, summarizer insight.Analyzer) *Trigger {
	return &Trigger{
		journal:    jm,
		summarizer: summarizer,
	}
}

// Eligible reports whether enough entries exist to request a summary.
func Eligible(entryCount int) bool {
	return entryCount >= constants.WeeklyMinEntries
}

// SelectEntries picks at most the WeeklyMaxEntries most recently created
// entries and returns them oldest-first, ready for the summarizer.
func SelectEntries(entries []models.JournalEntry) []models.JournalEntry {
	selected := make([]models.JournalEntry, len(entries))
	copy(selected, entries)

	journal.SortNewestFirst(selected)
	if len(selected) > constants.WeeklyMaxEntries {
		selected = selected[:constants.WeeklyMaxEntries]
	}
	journal.SortOldestFirst(selected)
	return selected
}

// Run gates on journal size and forwards the bounded, ordered slice to the
// external summarizer.
func (t *Trigger) Run(ctx context.Context) (models.WeeklyInsight, error) {
	entries, err := t.journal.ListEntries()
	if err != nil {
		return models.WeeklyInsight{}, err
	}

	if !Eligible(len(entries)) {
		return models.WeeklyInsight{}, ErrNotEnoughEntries
	}

	return t.summarizer.Summarize(ctx, SelectEntries(entries))
}
