package storage

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/AshokKumar3502/facemirror/internal/storage/sqlite"
)

// NewProvider selects a backend for the given config path: paths ending in
// .json get the single-document JSON store, everything else gets SQLite.
func NewProvider(configPath string) Provider {
	path := ExpandHome(configPath)
	if strings.HasSuffix(path, ".json") {
		return NewJSONStore(path)
	}
	return sqlite.NewStore(path)
}

// ExpandHome resolves a leading ~ in a path to the user's home directory.
func ExpandHome(path string) string {
	if path == "~" || strings.HasPrefix(path, "~/") {
		home, err := os.UserHomeDir()
		if err != nil {
			return path
		}
		return filepath.Join(home, strings.TrimPrefix(strings.TrimPrefix(path, "~"), "/"))
	}
	return path
}
