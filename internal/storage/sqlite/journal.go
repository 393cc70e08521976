package sqlite

import (
	"encoding/json"

	"github.com/AshokKumar3502/facemirror/internal/errors"
	"github.com/AshokKumar3502/facemirror/internal/logger"
	"github.com/AshokKumar3502/facemirror/internal/models"
)

func (s *Store) GetEntries() ([]models.JournalEntry, error) {
	if s.db == nil {
		return []models.JournalEntry{}, nil
	}

	rows, err := s.db.Query("SELECT id, timestamp, day_number, context, insight, image FROM journal")
	if err != nil {
		logger.Warn("Failed to read journal, using empty state", "error", err)
		return []models.JournalEntry{}, nil
	}
	defer rows.Close()

	entries := []models.JournalEntry{}
	for rows.Next() {
		var entry models.JournalEntry
		var insightJSON string
		var context string
		if err := rows.Scan(&entry.ID, &entry.Timestamp, &entry.DayNumber, &context, &insightJSON, &entry.Image); err != nil {
			logger.Warn("Failed to scan journal row, skipping", "error", err)
			continue
		}
		entry.Context = models.Context(context)
		if err := json.Unmarshal([]byte(insightJSON), &entry.Insight); err != nil {
			logger.Warn("Failed to parse stored insight, keeping entry shell", "id", entry.ID, "error", err)
		}
		entries = append(entries, entry)
	}
	if err := rows.Err(); err != nil {
		logger.Warn("Failed to iterate journal rows", "error", err)
	}

	return entries, nil
}

// SaveEntries replaces the whole journal record in one transaction. The
// journal is small (one photo check-in at a time) so a full rewrite keeps the
// store's two-record contract identical across backends.
func (s *Store) SaveEntries(entries []models.JournalEntry) error {
	if s.db == nil {
		return errors.New(errors.KindWriteFailed, "storage is not open")
	}

	tx, err := s.db.Begin()
	if err != nil {
		return errors.Wrap(errors.KindWriteFailed, "failed to begin journal write", err)
	}
	defer tx.Rollback()

	if _, err := tx.Exec("DELETE FROM journal"); err != nil {
		return errors.Wrap(errors.KindWriteFailed, "failed to clear journal", err)
	}

	stmt, err := tx.Prepare("INSERT INTO journal (id, timestamp, day_number, context, insight, image) VALUES (?, ?, ?, ?, ?, ?)")
	if err != nil {
		return errors.Wrap(errors.KindWriteFailed, "failed to prepare journal write", err)
	}
	defer stmt.Close()

	for _, entry := range entries {
		insightJSON, err := json.Marshal(entry.Insight)
		if err != nil {
			return errors.Wrap(errors.KindWriteFailed, "failed to serialize insight", err)
		}
		if _, err := stmt.Exec(entry.ID, entry.Timestamp, entry.DayNumber, string(entry.Context), string(insightJSON), entry.Image); err != nil {
			return errors.Wrap(errors.KindWriteFailed, "failed to write journal entry "+entry.ID, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return errors.Wrap(errors.KindWriteFailed, "failed to commit journal", err)
	}
	return nil
}
