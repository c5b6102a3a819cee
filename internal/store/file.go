package store

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/i474232898/weather-sea-effect/internal/weather"
)

// FileStore keeps one raw archive dump per city in a directory.
// Files are named "<City>Report.txt" and hold indented JSON.
type FileStore struct {
	dir string
}

// NewFileStore creates the cache directory if needed.
func NewFileStore(dir string) (*FileStore, error) {
	if dir == "" {
		dir = "."
	}
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("failed to create cache directory: %w", err)
	}
	return &FileStore{dir: dir}, nil
}

// Path returns the cache file path for city.
func (s *FileStore) Path(city string) string {
	return filepath.Join(s.dir, city+"Report.txt")
}

// Save overwrites the city's cache file.
func (s *FileStore) Save(city string, days []weather.RawDay) error {
	body, err := json.MarshalIndent(days, "", " ")
	if err != nil {
		return fmt.Errorf("failed converting %s data to json: %w", city, err)
	}
	if err := os.WriteFile(s.Path(city), body, 0o644); err != nil {
		return fmt.Errorf("failed storing the cache file: %w", err)
	}
	return nil
}

// Load reads the city's cache file back.
func (s *FileStore) Load(city string) ([]weather.RawDay, error) {
	path := s.Path(city)

	f, err := os.Open(path)
	if errors.Is(err, os.ErrNotExist) {
		return nil, fmt.Errorf("%w: %s", ErrNotFound, path)
	}
	if err != nil {
		return nil, fmt.Errorf("error reading the file '%s': %w", path, err)
	}
	defer f.Close()

	var days []weather.RawDay
	if err := json.NewDecoder(f).Decode(&days); err != nil {
		return nil, fmt.Errorf("error converting the file '%s' from json: %w", path, err)
	}
	return days, nil
}

var _ weather.RawStore = (*FileStore)(nil)
