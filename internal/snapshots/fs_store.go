package snapshots

import (
	"encoding/json"
	"errors"
	"os"

	domaingames "github.com/preston-bernstein/mlb-browser/internal/domain/games"
)

// Store defines how snapshots are loaded.
type Store interface {
	LoadSchedule(date string) (domaingames.Schedule, error)
}

// FSStore loads snapshots from the filesystem.
type FSStore struct {
	basePath string
}

// NewFSStore constructs an FS-backed snapshot store rooted at basePath.
func NewFSStore(basePath string) *FSStore {
	return &FSStore{basePath: basePath}
}

// LoadSchedule reads the snapshot for date (YYYY-MM-DD) from {basePath}/games/{date}.json.
func (s *FSStore) LoadSchedule(date string) (domaingames.Schedule, error) {
	if s == nil {
		return domaingames.Schedule{}, errors.New("snapshot store not configured")
	}
	if date == "" {
		return domaingames.Schedule{}, errors.New("snapshot date required")
	}

	var payload domaingames.Schedule
	if err := decodeFile(ScheduleSnapshotPath(s.basePath, date), &payload); err != nil {
		return domaingames.Schedule{}, err
	}
	if payload.Date == "" {
		payload.Date = date
	}
	return payload, nil
}

// Dates lists the dates recorded in the manifest.
func (s *FSStore) Dates() ([]string, error) {
	if s == nil {
		return nil, errors.New("snapshot store not configured")
	}
	m, err := readManifest(ManifestPath(s.basePath))
	if err != nil {
		return nil, err
	}
	return m.Schedules.Dates, nil
}

func decodeFile(path string, payload any) error {
	f, err := os.Open(path)
	if err != nil {
		return err
	}
	defer f.Close()
	return json.NewDecoder(f).Decode(payload)
}
