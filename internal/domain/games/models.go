package games

import "fmt"

// Game is the canonical game shape the browser displays.
type Game struct {
	ID            int    `json:"id"`
	HomeName      string `json:"homeName"`
	AwayName      string `json:"awayName"`
	RecapLabel    string `json:"recapLabel"`
	RecapImageRef string `json:"recapImageRef"`
}

// Label renders the "home vs away" title shown above a highlighted card.
func (g Game) Label() string {
	return fmt.Sprintf("%s vs %s", g.HomeName, g.AwayName)
}

// Key is a stable identifier used for cache file names.
func (g Game) Key() string {
	return fmt.Sprintf("%d", g.ID)
}

// Schedule is one day's worth of games, as persisted in schedule snapshots.
type Schedule struct {
	Date  string `json:"date"`
	Games []Game `json:"games"`
}

// NewSchedule builds a Schedule payload.
func NewSchedule(date string, games []Game) Schedule {
	return Schedule{
		Date:  date,
		Games: games,
	}
}
