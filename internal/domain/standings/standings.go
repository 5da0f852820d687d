// Package standings derives ranked league standings from completed
// games: multi-way split records, point totals, streaks, and
// deterministic ordering within each division.
package standings

import (
	"slices"

	"github.com/okian/gridiron/internal/domain/aggregate"
	"github.com/okian/gridiron/internal/domain/model"
)

// SplitRecord is a won/lost/tied count scoped to a sub-condition.
type SplitRecord struct {
	Wins   int `json:"wins"`
	Losses int `json:"losses"`
	Ties   int `json:"ties"`
}

// Games returns the number of games in this split.
func (r SplitRecord) Games() int { return r.Wins + r.Losses + r.Ties }

// TeamRow is the derived standings row for one team.
type TeamRow struct {
	Team          string      `json:"team"`
	Abbr          string      `json:"abbr"`
	Overall       SplitRecord `json:"overall"`
	Home          SplitRecord `json:"home"`
	Away          SplitRecord `json:"away"`
	Division      SplitRecord `json:"division"`
	Conference    SplitRecord `json:"conference"`
	Pct           string      `json:"pct"`
	PointsFor     int         `json:"points_for"`
	PointsAgainst int         `json:"points_against"`
	Net           int         `json:"net"`
	Streak        string      `json:"streak"`
	Rank          int         `json:"rank"`
}

// DivisionTable groups the ranked rows of one division.
type DivisionTable struct {
	Conference string    `json:"conference"`
	Division   string    `json:"division"`
	Teams      []TeamRow `json:"teams"`
}

// conferenceOrder and divisionOrder fix the emission order of division
// tables. This canonical order is part of the output contract; it never
// follows input iteration order.
var (
	conferenceOrder = []string{model.AFC, model.NFC}
	divisionOrder   = []string{model.East, model.North, model.South, model.West}
)

// acc is the per-team fold state. Games are retained in input order and
// sorted chronologically once, because the streak needs event order.
type acc struct {
	overall, home, away, division, conference SplitRecord
	pointsFor, pointsAgainst                  int
	games                                     []model.GameRecord
}

// Compute derives full league standings from games and the team
// reference list. Playoff games are ignored. Every listed team appears
// in the output even with zero games (0-0-0, ".000", "--"); games
// involving teams absent from the reference list contribute nothing.
func Compute(games []model.GameRecord, teams []model.TeamInfo) []DivisionTable {
	m := buildMembership(teams)

	keys := func(g model.GameRecord) []string {
		if g.Playoff {
			return nil
		}
		ks := make([]string, 0, 2)
		if _, ok := m.teams[g.Home]; ok {
			ks = append(ks, g.Home)
		}
		if _, ok := m.teams[g.Away]; ok {
			ks = append(ks, g.Away)
		}
		return ks
	}

	fold := func(team string, a *acc, g model.GameRecord) *acc {
		if a == nil {
			a = &acc{}
		}
		a.apply(team, g, m)
		return a
	}

	finish := func(team string, a *acc) TeamRow {
		if a == nil {
			a = &acc{}
		}
		return a.row(team, m.teams[team])
	}

	less := func(a, b TeamRow) bool { return rowLess(a, b, m) }

	rows := aggregate.Aggregate(games, keys, fold, finish, less, 0)
	rows = addMissingTeams(rows, teams, m)
	return groupByDivision(rows, m)
}

func (a *acc) apply(team string, g model.GameRecord, m *membership) {
	home := g.Home == team
	opp := g.Opponent(team)

	var delta SplitRecord
	switch {
	case g.Tie():
		delta.Ties = 1
	case g.Winner() == team:
		delta.Wins = 1
	default:
		delta.Losses = 1
	}

	a.overall = addSplit(a.overall, delta)
	if home {
		a.home = addSplit(a.home, delta)
		a.pointsFor += g.HomeScore
		a.pointsAgainst += g.AwayScore
	} else {
		a.away = addSplit(a.away, delta)
		a.pointsFor += g.AwayScore
		a.pointsAgainst += g.HomeScore
	}

	switch m.classify(team, opp) {
	case classDivisional:
		a.division = addSplit(a.division, delta)
		a.conference = addSplit(a.conference, delta)
	case classConference:
		a.conference = addSplit(a.conference, delta)
	}

	a.games = append(a.games, g)
}

func (a *acc) row(team string, info model.TeamInfo) TeamRow {
	chrono := make([]model.GameRecord, len(a.games))
	copy(chrono, a.games)
	slices.SortStableFunc(chrono, func(x, y model.GameRecord) int {
		return x.Date.Compare(y.Date)
	})

	return TeamRow{
		Team:          team,
		Abbr:          info.Abbr,
		Overall:       a.overall,
		Home:          a.home,
		Away:          a.away,
		Division:      a.division,
		Conference:    a.conference,
		Pct:           aggregate.Pct3(a.overall.Wins, a.overall.Losses, a.overall.Ties),
		PointsFor:     a.pointsFor,
		PointsAgainst: a.pointsAgainst,
		Net:           a.pointsFor - a.pointsAgainst,
		Streak:        streak(team, chrono),
	}
}

func addSplit(a, b SplitRecord) SplitRecord {
	return SplitRecord{Wins: a.Wins + b.Wins, Losses: a.Losses + b.Losses, Ties: a.Ties + b.Ties}
}

// rowLess orders rows globally: canonical division first, then win
// percentage desc, net points desc, and team name as the final
// deterministic tie-break.
func rowLess(a, b TeamRow, m *membership) bool {
	ca, da := divisionIndex(m.teams[a.Team])
	cb, db := divisionIndex(m.teams[b.Team])
	if ca != cb {
		return ca < cb
	}
	if da != db {
		return da < db
	}
	pa, pb := pctValue(a.Overall), pctValue(b.Overall)
	if pa != pb {
		return pa > pb
	}
	if a.Net != b.Net {
		return a.Net > b.Net
	}
	return a.Team < b.Team
}

// pctValue is the raw comparison rate; the rendered Pct string is not
// used for ordering to avoid string comparison artifacts.
func pctValue(r SplitRecord) float64 {
	if r.Games() == 0 {
		return 0
	}
	return float64(r.Wins) / float64(r.Games())
}

func divisionIndex(info model.TeamInfo) (int, int) {
	return slices.Index(conferenceOrder, info.Conference), slices.Index(divisionOrder, info.Division)
}

// addMissingTeams inserts zero rows for listed teams that played no
// games, keeping the global order intact.
func addMissingTeams(rows []TeamRow, teams []model.TeamInfo, m *membership) []TeamRow {
	present := make(map[string]bool, len(rows))
	for _, r := range rows {
		present[r.Team] = true
	}
	for _, t := range teams {
		if present[t.Name] {
			continue
		}
		zero := (&acc{}).row(t.Name, t)
		rows = append(rows, zero)
	}
	slices.SortStableFunc(rows, func(a, b TeamRow) int {
		switch {
		case rowLess(a, b, m):
			return -1
		case rowLess(b, a, m):
			return 1
		default:
			return 0
		}
	})
	return rows
}

// groupByDivision splits the globally ordered rows into canonical
// division tables and assigns 1-based ranks within each.
func groupByDivision(rows []TeamRow, m *membership) []DivisionTable {
	tables := make([]DivisionTable, 0, len(conferenceOrder)*len(divisionOrder))
	for _, conf := range conferenceOrder {
		for _, div := range divisionOrder {
			table := DivisionTable{Conference: conf, Division: div, Teams: []TeamRow{}}
			for _, r := range rows {
				info := m.teams[r.Team]
				if info.Conference == conf && info.Division == div {
					r.Rank = len(table.Teams) + 1
					table.Teams = append(table.Teams, r)
				}
			}
			if len(table.Teams) > 0 {
				tables = append(tables, table)
			}
		}
	}
	return tables
}
