package snapshots

import (
	"os"
	"testing"

	domaingames "github.com/preston-bernstein/mlb-browser/internal/domain/games"
	"github.com/preston-bernstein/mlb-browser/internal/testutil"
)

func simpleSchedule(date string, ids ...int) domaingames.Schedule {
	games := make([]domaingames.Game, 0, len(ids))
	for _, id := range ids {
		games = append(games, testutil.SampleGame(id))
	}
	return testutil.SampleSchedule(date, games...)
}

func writeSchedule(t *testing.T, w *Writer, snap domaingames.Schedule) {
	t.Helper()
	if w == nil {
		t.Fatalf("writer is nil for date %s", snap.Date)
	}
	if err := w.WriteSchedule(snap); err != nil {
		t.Fatalf("failed to write snapshot %s: %v", snap.Date, err)
	}
}

func requireSnapshotExists(t *testing.T, w *Writer, date string) {
	t.Helper()
	if _, err := os.Stat(ScheduleSnapshotPath(w.BasePath(), date)); err != nil {
		t.Fatalf("expected snapshot for %s to be written: %v", date, err)
	}
}

func assertDatesEqual(t *testing.T, got, want []string) {
	t.Helper()
	if len(got) != len(want) {
		t.Fatalf("dates length mismatch: got %v, want %v", got, want)
	}
	for i := range got {
		if got[i] != want[i] {
			t.Fatalf("dates mismatch at %d: got %v, want %v", i, got, want)
		}
	}
}
