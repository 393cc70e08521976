package journal

import (
	"fmt"
	"sort"
	"time"

	"github.com/google/uuid"

	"github.com/AshokKumar3502/facemirror/internal/constants"
	"github.com/AshokKumar3502/facemirror/internal/errors"
	"github.com/AshokKumar3502/facemirror/internal/logger"
	"github.com/AshokKumar3502/facemirror/internal/models"
	"github.com/AshokKumar3502/facemirror/internal/storage"
)

// Manager owns entry creation, day numbering, grouping and deletion. It keeps
// no state of its own: every operation re-reads the store, so the store stays
// the single source of truth even if something else mutates it.
type Manager struct {
	store storage.Provider
	now   func() time.Time
}

func NewManager(store storage.Provider) *Manager {
	return &Manager{
		store: store,
		now:   time.Now,
	}
}

// ListEntries returns the current journal contents. Order is whatever the
// store returns; callers needing chronological order sort explicitly.
func (m *Manager) ListEntries() ([]models.JournalEntry, error) {
	return m.store.GetEntries()
}

// SortNewestFirst orders entries by descending timestamp, in place.
func SortNewestFirst(entries []models.JournalEntry) {
	sort.SliceStable(entries, func(i, j int) bool {
		return entries[i].Timestamp > entries[j].Timestamp
	})
}

// SortOldestFirst orders entries by ascending timestamp, in place.
func SortOldestFirst(entries []models.JournalEntry) {
	sort.SliceStable(entries, func(i, j int) bool {
		return entries[i].Timestamp < entries[j].Timestamp
	})
}

// CurrentDayNumber returns the logical journal day for "now": 1 for an empty
// journal, otherwise elapsed whole days since the first-ever entry plus one.
// The count follows wall-clock time, not how many entries exist.
func (m *Manager) CurrentDayNumber() (int, error) {
	entries, err := m.ListEntries()
	if err != nil {
		return 1, err
	}
	return dayNumberAt(entries, m.now()), nil
}

func dayNumberAt(entries []models.JournalEntry, now time.Time) int {
	if len(entries) == 0 {
		return 1
	}

	first := entries[0].Timestamp
	for _, e := range entries[1:] {
		if e.Timestamp < first {
			first = e.Timestamp
		}
	}

	elapsed := now.UnixMilli() - first
	if elapsed < 0 {
		// Clock moved behind the first entry; the day counter never drops below 1.
		return 1
	}
	return int(elapsed/constants.MillisPerDay) + 1
}

// AddEntry appends a new entry to the journal. When manualDay is non-nil it
// is stored verbatim; otherwise the day number follows the elapsed-time
// formula. If the write fails on payload size the entry is retried once with
// the image cleared before the failure is surfaced.
func (m *Manager) AddEntry(context models.Context, insight models.InsightData, image string, manualDay *int) (models.JournalEntry, error) {
	if !context.Valid() {
		return models.JournalEntry{}, fmt.Errorf("unknown context: %s", context)
	}

	entries, err := m.ListEntries()
	if err != nil {
		return models.JournalEntry{}, err
	}

	now := m.now()
	day := dayNumberAt(entries, now)
	if manualDay != nil {
		if *manualDay < day {
			logger.Warn("Manual day is behind the automatic day counter", "manual", *manualDay, "automatic", day)
		}
		day = *manualDay
	}

	entry := models.JournalEntry{
		ID:        uuid.New().String(),
		Timestamp: now.UnixMilli(),
		DayNumber: day,
		Context:   context,
		Insight:   insight,
		Image:     image,
	}

	if err := m.store.SaveEntries(append(entries, entry)); err != nil {
		if !errors.IsKind(err, errors.KindWriteFailed) || entry.Image == "" {
			return models.JournalEntry{}, err
		}

		// Likely a quota failure on the photo payload: drop the image and
		// keep the assessment rather than losing the whole entry.
		logger.Warn("Journal write failed, retrying without image", "id", entry.ID, "error", err)
		entry.Image = ""
		if err := m.store.SaveEntries(append(entries, entry)); err != nil {
			return models.JournalEntry{}, err
		}
	}

	return entry, nil
}

// ClearAll deletes the entire journal. Irreversible.
func (m *Manager) ClearAll() error {
	return m.store.SaveEntries([]models.JournalEntry{})
}

// DayLabel formats a day number for display and grouping.
func DayLabel(day int) string {
	return fmt.Sprintf("Day %d", day)
}

// GroupByDay partitions entries into "Day N" buckets. Within a bucket the
// input order is preserved. Pure view function; the input is not modified.
func GroupByDay(entries []models.JournalEntry) map[string][]models.JournalEntry {
	groups := make(map[string][]models.JournalEntry)
	for _, entry := range entries {
		label := DayLabel(entry.DayNumber)
		groups[label] = append(groups[label], entry)
	}
	return groups
}

// DayOrder returns the group labels in order of first appearance in the input.
func DayOrder(entries []models.JournalEntry) []string {
	var order []string
	seen := make(map[string]bool)
	for _, entry := range entries {
		label := DayLabel(entry.DayNumber)
		if !seen[label] {
			seen[label] = true
			order = append(order, label)
		}
	}
	return order
}
