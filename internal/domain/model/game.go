// Package model contains domain models passed between layers.
package model

import "time"

// Spread outcome values returned by GameRecord.SpreadOutcome.
const (
	HomeCovered = "home-covered"
	AwayCovered = "away-covered"
	SpreadPush  = "push"
	SpreadNone  = "none" // no betting line attached
)

// GameRecord represents one completed game. It is an immutable value:
// the engine reads it, never writes it.
//
// Week is a label, not a number; playoff rounds carry names such as
// "WildCard", "Division", "ConfChamp" and "SuperBowl".
type GameRecord struct {
	Season    int       `json:"season"`
	Week      string    `json:"week"`
	Date      time.Time `json:"date"`
	Home      string    `json:"home"`
	Away      string    `json:"away"`
	HomeScore int       `json:"home_score"`
	AwayScore int       `json:"away_score"`
	Playoff   bool      `json:"playoff"`

	// Closing betting lines. Spread is the home line (negative = home
	// favored). Only meaningful when HasOdds is true.
	Spread    float64 `json:"spread,omitempty"`
	OverUnder float64 `json:"over_under,omitempty"`
	HasOdds   bool    `json:"has_odds"`
}

// Tie reports whether the game ended level.
func (g GameRecord) Tie() bool { return g.HomeScore == g.AwayScore }

// Winner returns the winning team name, or "" for a tie.
func (g GameRecord) Winner() string {
	switch {
	case g.HomeScore > g.AwayScore:
		return g.Home
	case g.AwayScore > g.HomeScore:
		return g.Away
	default:
		return ""
	}
}

// Loser returns the losing team name, or "" for a tie.
func (g GameRecord) Loser() string {
	switch {
	case g.HomeScore > g.AwayScore:
		return g.Away
	case g.AwayScore > g.HomeScore:
		return g.Home
	default:
		return ""
	}
}

// TotalPoints returns the combined final score.
func (g GameRecord) TotalPoints() int { return g.HomeScore + g.AwayScore }

// Margin returns home score minus away score.
func (g GameRecord) Margin() int { return g.HomeScore - g.AwayScore }

// Involves reports whether team played in this game.
func (g GameRecord) Involves(team string) bool {
	return g.Home == team || g.Away == team
}

// Opponent returns the other participant from team's perspective,
// or "" if team did not play in this game.
func (g GameRecord) Opponent(team string) string {
	switch team {
	case g.Home:
		return g.Away
	case g.Away:
		return g.Home
	default:
		return ""
	}
}

// SpreadOutcome classifies the game against its closing home line.
// Returns SpreadNone when no odds are attached.
func (g GameRecord) SpreadOutcome() string {
	if !g.HasOdds {
		return SpreadNone
	}
	adjusted := float64(g.HomeScore) + g.Spread
	switch {
	case adjusted > float64(g.AwayScore):
		return HomeCovered
	case adjusted < float64(g.AwayScore):
		return AwayCovered
	default:
		return SpreadPush
	}
}
