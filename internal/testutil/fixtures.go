package testutil

import (
	"fmt"

	domaingames "github.com/preston-bernstein/mlb-browser/internal/domain/games"
)

// SampleGame returns a minimal game fixture with the provided id.
func SampleGame(id int) domaingames.Game {
	return domaingames.Game{
		ID:            id,
		HomeName:      fmt.Sprintf("Home %d", id),
		AwayName:      fmt.Sprintf("Away %d", id),
		RecapLabel:    fmt.Sprintf("Recap %d", id),
		RecapImageRef: fmt.Sprintf("https://img.example.com/recap/%d.jpg", id),
	}
}

// SampleGames returns n games with ids 1..n.
func SampleGames(n int) []domaingames.Game {
	out := make([]domaingames.Game, 0, n)
	for i := 1; i <= n; i++ {
		out = append(out, SampleGame(i))
	}
	return out
}

// SampleSchedule builds a Schedule with the given games.
func SampleSchedule(date string, games ...domaingames.Game) domaingames.Schedule {
	return domaingames.NewSchedule(date, games)
}
