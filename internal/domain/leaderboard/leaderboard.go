// Package leaderboard derives ranked top/bottom-N team views from
// completed games: against-the-spread records, power rankings,
// draft-capital value, strength of victory and schedule, and
// league-wide betting splits.
//
// Every view is an instantiation of the aggregate framework: a key
// extractor, a fold, a finish step, and a total-order comparator.
// Degenerate input never raises; it yields empty slices and zero rows.
package leaderboard

import (
	"slices"

	"github.com/okian/gridiron/internal/domain/model"
)

// DefaultLimit is the customary leaderboard depth.
const DefaultLimit = 10

// teamStats is the shared per-team fold state used by the views that
// need opponent context (power rankings, strength of victory).
type teamStats struct {
	wins, losses, ties       int
	pointsFor, pointsAgainst int
	beaten                   []string // opponents this team defeated
	opponents                []string // every opponent faced
}

func (s teamStats) games() int { return s.wins + s.losses + s.ties }

func (s teamStats) winPct() float64 {
	if s.games() == 0 {
		return 0
	}
	return float64(s.wins) / float64(s.games())
}

func (s teamStats) marginPerGame() float64 {
	if s.games() == 0 {
		return 0
	}
	return float64(s.pointsFor-s.pointsAgainst) / float64(s.games())
}

// foldTeamStats accumulates regular-season stats for every team in one
// pass. Playoff games are skipped.
func foldTeamStats(games []model.GameRecord) map[string]*teamStats {
	stats := make(map[string]*teamStats)
	get := func(team string) *teamStats {
		s, ok := stats[team]
		if !ok {
			s = &teamStats{}
			stats[team] = s
		}
		return s
	}

	for _, g := range games {
		if g.Playoff {
			continue
		}
		home, away := get(g.Home), get(g.Away)

		home.pointsFor += g.HomeScore
		home.pointsAgainst += g.AwayScore
		away.pointsFor += g.AwayScore
		away.pointsAgainst += g.HomeScore
		home.opponents = append(home.opponents, g.Away)
		away.opponents = append(away.opponents, g.Home)

		switch {
		case g.Tie():
			home.ties++
			away.ties++
		case g.Winner() == g.Home:
			home.wins++
			away.losses++
			home.beaten = append(home.beaten, g.Away)
		default:
			away.wins++
			home.losses++
			away.beaten = append(away.beaten, g.Home)
		}
	}
	return stats
}

// combinedPct is the game-weighted winning rate of a set of opponents:
// total opponent wins over total opponent games. Zero when the set is
// empty or the opponents played no games.
func combinedPct(stats map[string]*teamStats, opponents []string) float64 {
	var wins, games int
	for _, opp := range opponents {
		if s, ok := stats[opp]; ok {
			wins += s.wins
			games += s.games()
		}
	}
	if games == 0 {
		return 0
	}
	return float64(wins) / float64(games)
}

// sortedTeams returns the stat map's keys in lexical order so every
// view iterates deterministically.
func sortedTeams(stats map[string]*teamStats) []string {
	teams := make([]string, 0, len(stats))
	for team := range stats {
		teams = append(teams, team)
	}
	slices.Sort(teams)
	return teams
}
