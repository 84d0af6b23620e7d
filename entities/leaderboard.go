package entities

import (
	"github.com/s0up4200/foursquare/mapping"
)

// Score is a single scoring event from a checkin
type Score struct {
	Points  int    `json:"points"`
	Icon    string `json:"icon,omitempty"`
	Message string `json:"message,omitempty"`
}

// Scores summarizes a user's weekly points
type Scores struct {
	Recent        int `json:"recent"`
	Max           int `json:"max"`
	Goal          int `json:"goal,omitempty"`
	CheckinsCount int `json:"checkinsCount"`
}

// LeaderboardItem is one row of the friends leaderboard
type LeaderboardItem struct {
	User   *CompactUser `json:"user,omitempty"`
	Scores *Scores      `json:"scores,omitempty"`
	Rank   int          `json:"rank"`
}

// LeaderboardItemGroup is the leaderboard returned by users/leaderboard
type LeaderboardItemGroup struct {
	Count int64             `json:"count"`
	Items []LeaderboardItem `json:"items,omitempty"`
}

var (
	ScoreShape                = mapping.NewShape[Score]("Score")
	ScoresShape               = mapping.NewShape[Scores]("Scores")
	LeaderboardItemShape      = mapping.NewShape[LeaderboardItem]("LeaderboardItem")
	LeaderboardItemGroupShape = mapping.NewShape[LeaderboardItemGroup]("LeaderboardItemGroup")
)

func init() {
	ScoreShape.Define(
		mapping.Int("points", func(s *Score) *int { return &s.Points }),
		mapping.String("icon", func(s *Score) *string { return &s.Icon }),
		mapping.String("message", func(s *Score) *string { return &s.Message }),
	)

	ScoresShape.Define(
		mapping.Int("recent", func(s *Scores) *int { return &s.Recent }),
		mapping.Int("max", func(s *Scores) *int { return &s.Max }),
		mapping.Int("goal", func(s *Scores) *int { return &s.Goal }),
		mapping.Int("checkinsCount", func(s *Scores) *int { return &s.CheckinsCount }),
	)

	LeaderboardItemShape.Define(
		mapping.Object("user", CompactUserShape, func(i *LeaderboardItem) **CompactUser { return &i.User }),
		mapping.Object("scores", ScoresShape, func(i *LeaderboardItem) **Scores { return &i.Scores }),
		mapping.Int("rank", func(i *LeaderboardItem) *int { return &i.Rank }),
	)

	LeaderboardItemGroupShape.Define(
		mapping.Long("count", func(g *LeaderboardItemGroup) *int64 { return &g.Count }),
		mapping.Array("items", LeaderboardItemShape, func(g *LeaderboardItemGroup) *[]LeaderboardItem { return &g.Items }),
	)
}
