package snapshots

import (
	"fmt"
	"path/filepath"
)

const (
	schedulesDir = "games"
	manifestName = "manifest.json"
)

// ScheduleSnapshotPath builds the path to a schedule snapshot for a given date.
func ScheduleSnapshotPath(basePath, date string) string {
	return filepath.Join(basePath, schedulesDir, fmt.Sprintf("%s.json", date))
}

// ManifestPath is where the manifest of cached dates lives.
func ManifestPath(basePath string) string {
	return filepath.Join(basePath, manifestName)
}
