package snapshots

import (
	"encoding/json"
	"os"
	"time"
)

// Manifest tracks snapshot metadata.
type Manifest struct {
	Version     int           `json:"version"`
	GeneratedAt time.Time     `json:"generatedAt"`
	Schedules   SchedulesMeta `json:"schedules"`
}

type SchedulesMeta struct {
	Dates       []string  `json:"dates"`
	LastWritten time.Time `json:"lastWritten"`
}

func defaultManifest() Manifest {
	return Manifest{
		Version: 1,
		Schedules: SchedulesMeta{
			Dates: []string{},
		},
	}
}

func readManifest(path string) (Manifest, error) {
	var m Manifest
	if err := decodeFile(path, &m); err != nil {
		return defaultManifest(), err
	}
	if m.Schedules.Dates == nil {
		m.Schedules.Dates = []string{}
	}
	return m, nil
}

func writeManifest(basePath string, m Manifest, now time.Time) error {
	m.GeneratedAt = now.UTC()
	data, err := json.MarshalIndent(m, "", "  ")
	if err != nil {
		return err
	}
	return writeAtomic(ManifestPath(basePath), data)
}

// writeAtomic writes data next to path and renames it into place.
func writeAtomic(path string, data []byte) error {
	tmp := path + ".tmp"
	if err := os.WriteFile(tmp, data, 0o644); err != nil {
		return err
	}
	return os.Rename(tmp, path)
}
