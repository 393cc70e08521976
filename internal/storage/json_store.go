package storage

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/AshokKumar3502/facemirror/internal/errors"
	"github.com/AshokKumar3502/facemirror/internal/logger"
	"github.com/AshokKumar3502/facemirror/internal/models"
)

// document is the single JSON file the store persists. Two logical records
// live in it: the journal and the settings.
type document struct {
	Version  int                   `json:"version"`
	Settings models.Settings       `json:"settings"`
	Journal  []models.JournalEntry `json:"journal"`
}

// JSONStore persists everything in one JSON document. It holds no in-memory
// state between calls: every read loads the file and every write replaces it
// atomically via a temp-file rename, so a failed write leaves the prior
// content intact.
type JSONStore struct {
	path string
}

func NewJSONStore(configPath string) *JSONStore {
	return &JSONStore{
		path: configPath,
	}
}

func (s *JSONStore) Init() error {
	dir := filepath.Dir(s.path)
	if err := os.MkdirAll(dir, 0700); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}

	if _, err := os.Stat(s.path); err == nil {
		return fmt.Errorf("storage already initialized at %s", s.path)
	}

	return s.save(&document{
		Version:  1,
		Settings: models.DefaultSettings(),
		Journal:  []models.JournalEntry{},
	})
}

func (s *JSONStore) Load() error {
	if _, err := os.Stat(s.path); os.IsNotExist(err) {
		return fmt.Errorf("storage not initialized, run 'facemirror init' first")
	}
	return nil
}

func (s *JSONStore) Close() error {
	return nil
}

// read loads the document from disk. A missing or unparseable file degrades
// to an empty document with default settings.
func (s *JSONStore) read() *document {
	doc := &document{
		Version:  1,
		Settings: models.DefaultSettings(),
		Journal:  []models.JournalEntry{},
	}

	data, err := os.ReadFile(s.path)
	if err != nil {
		if !os.IsNotExist(err) {
			logger.Warn("Failed to read storage, using empty state", "error", err)
		}
		return doc
	}

	if err := json.Unmarshal(data, doc); err != nil {
		logger.Warn("Failed to parse storage, using empty state", "error", err)
		return &document{
			Version:  1,
			Settings: models.DefaultSettings(),
			Journal:  []models.JournalEntry{},
		}
	}

	models.ApplyDefaultSettings(&doc.Settings)
	if doc.Journal == nil {
		doc.Journal = []models.JournalEntry{}
	}

	return doc
}

func (s *JSONStore) save(doc *document) error {
	data, err := json.MarshalIndent(doc, "", "  ")
	if err != nil {
		return errors.Wrap(errors.KindWriteFailed, "failed to serialize storage", err)
	}

	// Write to a temp file in the same directory, then rename over the
	// target. Rename is atomic on the same filesystem, so a quota or crash
	// mid-write never corrupts the previous document.
	tmp, err := os.CreateTemp(filepath.Dir(s.path), ".facemirror-*.tmp")
	if err != nil {
		return errors.Wrap(errors.KindWriteFailed, "failed to create temp file", err)
	}
	tmpPath := tmp.Name()

	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		os.Remove(tmpPath)
		return errors.Wrap(errors.KindWriteFailed, "failed to write storage", err)
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmpPath)
		return errors.Wrap(errors.KindWriteFailed, "failed to flush storage", err)
	}
	if err := os.Chmod(tmpPath, 0600); err != nil {
		os.Remove(tmpPath)
		return errors.Wrap(errors.KindWriteFailed, "failed to set storage permissions", err)
	}
	if err := os.Rename(tmpPath, s.path); err != nil {
		os.Remove(tmpPath)
		return errors.Wrap(errors.KindWriteFailed, "failed to replace storage", err)
	}

	return nil
}

func (s *JSONStore) GetSettings() (models.Settings, error) {
	return s.read().Settings, nil
}

func (s *JSONStore) SaveSettings(settings models.Settings) error {
	doc := s.read()
	doc.Settings = settings
	return s.save(doc)
}

func (s *JSONStore) GetEntries() ([]models.JournalEntry, error) {
	return s.read().Journal, nil
}

func (s *JSONStore) SaveEntries(entries []models.JournalEntry) error {
	doc := s.read()
	if entries == nil {
		entries = []models.JournalEntry{}
	}
	doc.Journal = entries
	return s.save(doc)
}

func (s *JSONStore) GetConfigPath() string {
	return s.path
}
