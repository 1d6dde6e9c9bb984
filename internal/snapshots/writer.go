package snapshots

import (
	"bytes"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"time"

	domaingames "github.com/preston-bernstein/mlb-browser/internal/domain/games"
)

// Writer persists schedule snapshots and the manifest. Snapshots are never evicted.
type Writer struct {
	basePath string
	now      func() time.Time
}

// NewWriter constructs a writer rooted at basePath.
func NewWriter(basePath string) *Writer {
	return &Writer{
		basePath: basePath,
		now:      time.Now,
	}
}

// BasePath exposes the writer root path (primarily for testing).
func (w *Writer) BasePath() string {
	if w == nil {
		return ""
	}
	return w.basePath
}

// WriteSchedule writes the snapshot for schedule.Date and records it in the manifest.
// Games are stored in provider order so a cached day renders exactly like a fetched one.
func (w *Writer) WriteSchedule(schedule domaingames.Schedule) error {
	if w == nil {
		return fmt.Errorf("snapshot writer not configured")
	}
	if schedule.Date == "" {
		return fmt.Errorf("date required")
	}

	target := ScheduleSnapshotPath(w.basePath, schedule.Date)
	if err := os.MkdirAll(filepath.Dir(target), 0o755); err != nil {
		return err
	}

	data, err := json.MarshalIndent(schedule, "", "  ")
	if err != nil {
		return err
	}

	if existing, err := os.ReadFile(target); err == nil && bytes.Equal(existing, data) {
		return w.updateManifest(schedule.Date)
	}
	if err := writeAtomic(target, data); err != nil {
		return err
	}
	return w.updateManifest(schedule.Date)
}

// HasSnapshot reports whether a snapshot file exists for date.
func (w *Writer) HasSnapshot(date string) bool {
	if w == nil || date == "" {
		return false
	}
	_, err := os.Stat(ScheduleSnapshotPath(w.basePath, date))
	return err == nil
}

func (w *Writer) updateManifest(date string) error {
	m, _ := readManifest(ManifestPath(w.basePath))

	dates, err := w.listDates()
	if err != nil {
		return err
	}
	if !containsDate(dates, date) {
		dates = append(dates, date)
		sort.Strings(dates)
	}

	now := w.now()
	m.Schedules.Dates = dates
	m.Schedules.LastWritten = now.UTC()
	return writeManifest(w.basePath, m, now)
}

func containsDate(dates []string, date string) bool {
	for _, d := range dates {
		if d == date {
			return true
		}
	}
	return false
}

func (w *Writer) listDates() ([]string, error) {
	entries, err := os.ReadDir(filepath.Join(w.basePath, schedulesDir))
	if err != nil {
		if os.IsNotExist(err) {
			return []string{}, nil
		}
		return nil, err
	}
	var dates []string
	for _, e := range entries {
		if e.IsDir() {
			continue
		}
		name := e.Name()
		if filepath.Ext(name) != ".json" {
			continue
		}
		dates = append(dates, name[:len(name)-len(".json")])
	}
	sort.Strings(dates)
	return dates, nil
}
