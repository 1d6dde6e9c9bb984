package statsapi

import (
	"sort"
	"strings"

	domaingames "github.com/preston-bernstein/mlb-browser/internal/domain/games"
)

func mapGame(g gameResponse) domaingames.Game {
	recap := g.Content.Editorial.Recap.MLB
	return domaingames.Game{
		ID:            g.GamePk,
		HomeName:      strings.TrimSpace(g.Teams.Home.Team.Name),
		AwayName:      strings.TrimSpace(g.Teams.Away.Team.Name),
		RecapLabel:    recapLabel(recap),
		RecapImageRef: pickCut(recap.Photo.Cuts),
	}
}

func recapLabel(recap recapArticle) string {
	if headline := strings.TrimSpace(recap.Headline); headline != "" {
		return headline
	}
	return strings.TrimSpace(recap.Blurb)
}

// pickCut prefers the configured 16:9 cuts, then the narrowest cut at least 200px wide,
// then the widest cut available.
func pickCut(cuts map[string]photoCut) string {
	if len(cuts) == 0 {
		return ""
	}
	for _, key := range preferredCuts {
		if cut, ok := cuts[key]; ok && cut.Src != "" {
			return cut.Src
		}
	}

	all := make([]photoCut, 0, len(cuts))
	for _, cut := range cuts {
		if cut.Src != "" {
			all = append(all, cut)
		}
	}
	if len(all) == 0 {
		return ""
	}
	sort.Slice(all, func(i, j int) bool {
		if all[i].Width == all[j].Width {
			return all[i].Src < all[j].Src
		}
		return all[i].Width < all[j].Width
	})
	for _, cut := range all {
		if cut.Width >= 200 {
			return cut.Src
		}
	}
	return all[len(all)-1].Src
}
