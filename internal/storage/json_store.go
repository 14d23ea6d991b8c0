package storage

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/google/uuid"
)

type jsonFile struct {
	Version int               `json:"version"`
	Entries map[string]string `json:"entries"`
}

type JSONStore struct {
	path string
	file *jsonFile
}

func NewJSONStore(dataPath string) *JSONStore {
	return &JSONStore{
		path: dataPath,
	}
}

func (s *JSONStore) Init() error {
	// Create data directory if it doesn't exist
	dir := filepath.Dir(s.path)
	if err := os.MkdirAll(dir, 0700); err != nil {
		return fmt.Errorf("failed to create data directory: %w", err)
	}

	// Check if file already exists
	if _, err := os.Stat(s.path); err == nil {
		return fmt.Errorf("storage already initialized at %s", s.path)
	}

	s.file = &jsonFile{
		Version: 1,
		Entries: make(map[string]string),
	}

	return s.save()
}

func (s *JSONStore) Load() error {
	data, err := os.ReadFile(s.path)
	if err != nil {
		if os.IsNotExist(err) {
			return fmt.Errorf("storage not initialized, run 'timepie init' first")
		}
		return fmt.Errorf("failed to read storage: %w", err)
	}

	s.file = &jsonFile{}
	if err := json.Unmarshal(data, s.file); err != nil {
		return fmt.Errorf("failed to parse storage: %w", err)
	}

	if s.file.Entries == nil {
		s.file.Entries = make(map[string]string)
	}

	return nil
}

func (s *JSONStore) Close() error {
	return nil
}

// save writes the whole file through a uniquely named temp file and renames it
// into place, so a crash mid-write never leaves a truncated store behind.
func (s *JSONStore) save() error {
	data, err := json.MarshalIndent(s.file, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to serialize storage: %w", err)
	}

	tmp := fmt.Sprintf("%s.tmp-%s", s.path, uuid.NewString())
	if err := os.WriteFile(tmp, data, 0600); err != nil {
		return fmt.Errorf("failed to write storage: %w", err)
	}
	if err := os.Rename(tmp, s.path); err != nil {
		os.Remove(tmp)
		return fmt.Errorf("failed to replace storage: %w", err)
	}

	return nil
}

func (s *JSONStore) Get(key string) (string, bool, error) {
	if s.file == nil {
		return "", false, fmt.Errorf("storage not loaded")
	}

	value, ok := s.file.Entries[key]
	return value, ok, nil
}

func (s *JSONStore) Set(key, value string) error {
	if s.file == nil {
		return fmt.Errorf("storage not loaded")
	}

	s.file.Entries[key] = value
	return s.save()
}

// GetDataPath returns the path to the underlying storage file.
//
// Concurrency note:
//   - JSONStore is not safe for concurrent use by multiple goroutines without
//     external synchronization.
//   - Running multiple timepie processes against the same storage path at the
//     same time is not supported and may lead to data loss.
func (s *JSONStore) GetDataPath() string {
	return s.path
}
