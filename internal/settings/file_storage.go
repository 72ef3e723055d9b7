//go:build !js

package settings

import (
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
)

const fileName = "settings.json"

// FileStorage keeps settings as JSON in a single file.
type FileStorage struct {
	path string
}

func NewFileStorage(path string) *FileStorage {
	return &FileStorage{path: path}
}

func (s *FileStorage) Path() string {
	return s.path
}

func (s *FileStorage) Save(settings Settings) error {
	if err := os.MkdirAll(filepath.Dir(s.path), 0o755); err != nil {
		return fmt.Errorf("failed to create settings dir: %w", err)
	}
	file, err := os.Create(s.path)
	if err != nil {
		return fmt.Errorf("failed to create settings file: %w", err)
	}
	defer file.Close()
	enc := json.NewEncoder(file)
	return enc.Encode(settings)
}

// Load returns the stored settings, or the zero value when nothing was
// saved yet.
func (s *FileStorage) Load() (Settings, error) {
	file, err := os.Open(s.path)
	if errors.Is(err, fs.ErrNotExist) {
		return Settings{}, nil
	}
	if err != nil {
		return Settings{}, fmt.Errorf("failed to open settings file: %w", err)
	}
	defer file.Close()
	var loaded Settings
	if err := json.NewDecoder(file).Decode(&loaded); err != nil {
		return Settings{}, fmt.Errorf("failed to decode settings: %w", err)
	}
	return loaded, nil
}
