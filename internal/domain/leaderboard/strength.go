package leaderboard

import (
	"slices"

	"github.com/okian/gridiron/internal/domain/aggregate"
	"github.com/okian/gridiron/internal/domain/model"
)

// StrengthRow pairs a team with its strength of victory (combined pct
// of beaten opponents) and strength of schedule (combined pct of all
// opponents, game-weighted).
type StrengthRow struct {
	Team              string `json:"team"`
	Wins              int    `json:"wins"`
	Losses            int    `json:"losses"`
	Ties              int    `json:"ties"`
	StrengthOfVictory string `json:"strength_of_victory"`
	StrengthOfSched   string `json:"strength_of_schedule"`
}

// Strength computes strength of victory and schedule for every team
// seen in games, ordered by SOV desc, SOS desc, team asc. A team that
// has beaten nobody carries a ".000" SOV.
func Strength(games []model.GameRecord) []StrengthRow {
	stats := foldTeamStats(games)

	type keyed struct {
		row      StrengthRow
		sov, sos float64
	}
	rows := make([]keyed, 0, len(stats))
	for _, team := range sortedTeams(stats) {
		s := stats[team]
		sov := combinedPct(stats, s.beaten)
		sos := combinedPct(stats, s.opponents)
		rows = append(rows, keyed{
			row: StrengthRow{
				Team:              team,
				Wins:              s.wins,
				Losses:            s.losses,
				Ties:              s.ties,
				StrengthOfVictory: aggregate.FormatRate3(aggregate.Round3(sov)),
				StrengthOfSched:   aggregate.FormatRate3(aggregate.Round3(sos)),
			},
			sov: sov,
			sos: sos,
		})
	}

	slices.SortStableFunc(rows, func(a, b keyed) int {
		switch {
		case a.sov != b.sov:
			return cmpDesc(a.sov, b.sov)
		case a.sos != b.sos:
			return cmpDesc(a.sos, b.sos)
		case a.row.Team < b.row.Team:
			return -1
		case a.row.Team > b.row.Team:
			return 1
		default:
			return 0
		}
	})

	out := make([]StrengthRow, len(rows))
	for i, k := range rows {
		out[i] = k.row
	}
	return out
}
