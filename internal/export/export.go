// Package export writes the recorded day ledger out as a standalone JSON
// document, either in full or for a single day.
package export

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/julianstephens/timepie/internal/models"
)

// ErrNoData is returned when there is nothing to export; callers surface it
// instead of producing an empty download.
var ErrNoData = errors.New("no recorded activities to export")

// AllFilename is the download name for a full-ledger export.
func AllFilename() string {
	return "all_activities.json"
}

// DayFilename is the download name for a single-day export.
func DayFilename(date string) string {
	return fmt.Sprintf("activities-%s.json", date)
}

// WriteAll emits the full day ledger.
func WriteAll(w io.Writer, days []models.Day) error {
	if !hasRecords(days) {
		return ErrNoData
	}
	return encode(w, days)
}

// WriteDay emits one day's activities.
func WriteDay(w io.Writer, day models.Day) error {
	if len(day.Activities) == 0 {
		return fmt.Errorf("%w for %s", ErrNoData, day.Date)
	}
	return encode(w, day)
}

// SaveAll writes the full ledger into dir and returns the file path.
func SaveAll(dir string, days []models.Day) (string, error) {
	return save(filepath.Join(dir, AllFilename()), func(w io.Writer) error {
		return WriteAll(w, days)
	})
}

// SaveDay writes one day's activities into dir and returns the file path.
func SaveDay(dir string, day models.Day) (string, error) {
	return save(filepath.Join(dir, DayFilename(day.Date)), func(w io.Writer) error {
		return WriteDay(w, day)
	})
}

func save(path string, write func(io.Writer) error) (string, error) {
	f, err := os.Create(path)
	if err != nil {
		return "", fmt.Errorf("failed to create export file: %w", err)
	}
	if err := write(f); err != nil {
		f.Close()
		os.Remove(path)
		return "", err
	}
	if err := f.Close(); err != nil {
		return "", fmt.Errorf("failed to finish export file: %w", err)
	}
	return path, nil
}

func encode(w io.Writer, v any) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	if err := enc.Encode(v); err != nil {
		return fmt.Errorf("failed to serialize export: %w", err)
	}
	return nil
}

func hasRecords(days []models.Day) bool {
	for _, day := range days {
		if len(day.Activities) > 0 {
			return true
		}
	}
	return false
}
