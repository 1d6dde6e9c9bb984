package statsapi

type scheduleResponse struct {
	TotalGames int            `json:"totalGames"`
	Dates      []dateResponse `json:"dates"`
}

type dateResponse struct {
	Date  string         `json:"date"`
	Games []gameResponse `json:"games"`
}

type gameResponse struct {
	GamePk   int             `json:"gamePk"`
	GameDate string          `json:"gameDate"`
	Teams    gameTeams       `json:"teams"`
	Content  contentResponse `json:"content"`
}

type gameTeams struct {
	Away gameTeam `json:"away"`
	Home gameTeam `json:"home"`
}

type gameTeam struct {
	Score int          `json:"score"`
	Team  teamResponse `json:"team"`
}

type teamResponse struct {
	ID   int    `json:"id"`
	Name string `json:"name"`
}

type contentResponse struct {
	Editorial editorialResponse `json:"editorial"`
}

type editorialResponse struct {
	Recap recapResponse `json:"recap"`
}

type recapResponse struct {
	MLB recapArticle `json:"mlb"`
}

type recapArticle struct {
	Headline string       `json:"headline"`
	Blurb    string       `json:"blurb"`
	Photo    photoPayload `json:"photo"`
}

type photoPayload struct {
	Title string              `json:"title"`
	Cuts  map[string]photoCut `json:"cuts"`
}

type photoCut struct {
	AspectRatio string `json:"aspectRatio"`
	Width       int    `json:"width"`
	Height      int    `json:"height"`
	Src         string `json:"src"`
}
