package model

type LeaderboardEntry struct {
	Rank           int    `json:"rank"`
	UserID         string `json:"userId"`
	Username       string `json:"username"`
	Avatar         string `json:"avatar"`
	Points         int    `json:"points"`
	ProblemsSolved int    `json:"problemsSolved"`
	Stats          Stats  `json:"stats"`
	IsCurrentUser  bool   `json:"isCurrentUser"`
}
