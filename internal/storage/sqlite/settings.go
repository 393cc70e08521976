package sqlite

import (
	"github.com/AshokKumar3502/facemirror/internal/errors"
	"github.com/AshokKumar3502/facemirror/internal/logger"
	"github.com/AshokKumar3502/facemirror/internal/models"
)

func (s *Store) GetSettings() (models.Settings, error) {
	if s.db == nil {
		return models.DefaultSettings(), nil
	}

	rows, err := s.db.Query("SELECT key, value FROM settings")
	if err != nil {
		// A readable settings record is never required to start a session.
		logger.Warn("Failed to read settings, using defaults", "error", err)
		return models.DefaultSettings(), nil
	}
	defer rows.Close()

	data := make(map[string]string)
	for rows.Next() {
		var key, value string
		if err := rows.Scan(&key, &value); err != nil {
			logger.Warn("Failed to scan settings row, using defaults", "error", err)
			return models.DefaultSettings(), nil
		}
		data[key] = value
	}
	if err := rows.Err(); err != nil {
		logger.Warn("Failed to iterate settings, using defaults", "error", err)
		return models.DefaultSettings(), nil
	}

	if len(data) == 0 {
		return models.DefaultSettings(), nil
	}

	settings, err := models.MapToSettings(data)
	if err != nil {
		return models.DefaultSettings(), nil
	}
	models.ApplyDefaultSettings(&settings)
	return settings, nil
}

func (s *Store) SaveSettings(settings models.Settings) error {
	if s.db == nil {
		return errors.New(errors.KindWriteFailed, "storage is not open")
	}

	tx, err := s.db.Begin()
	if err != nil {
		return errors.Wrap(errors.KindWriteFailed, "failed to begin settings write", err)
	}
	defer tx.Rollback()

	stmt, err := tx.Prepare("INSERT OR REPLACE INTO settings (key, value) VALUES (?, ?)")
	if err != nil {
		return errors.Wrap(errors.KindWriteFailed, "failed to prepare settings write", err)
	}
	defer stmt.Close()

	for key, value := range models.SettingsToMap(settings) {
		if _, err := stmt.Exec(key, value); err != nil {
			return errors.Wrap(errors.KindWriteFailed, "failed to write setting "+key, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return errors.Wrap(errors.KindWriteFailed, "failed to commit settings", err)
	}
	return nil
}
