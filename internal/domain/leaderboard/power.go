package leaderboard

import (
	"slices"

	"github.com/okian/gridiron/internal/domain/aggregate"
	"github.com/okian/gridiron/internal/domain/model"
	"github.com/okian/gridiron/internal/domain/rating"
)

// PowerRow is one team's power-ranking line.
type PowerRow struct {
	Rank              int     `json:"rank"`
	Team              string  `json:"team"`
	Wins              int     `json:"wins"`
	Losses            int     `json:"losses"`
	Ties              int     `json:"ties"`
	Pct               string  `json:"pct"`
	Net               int     `json:"net"`
	StrengthOfVictory string  `json:"strength_of_victory"`
	Score             float64 `json:"score"`
}

// Power computes power rankings over regular-season games using the
// supplied rater. n <= 0 returns every team. The ordering is score
// desc, then win pct desc, then team name asc.
func Power(games []model.GameRecord, rater *rating.Rater, n int) []PowerRow {
	stats := foldTeamStats(games)

	rows := make([]PowerRow, 0, len(stats))
	for _, team := range sortedTeams(stats) {
		s := stats[team]
		sov := combinedPct(stats, s.beaten)
		rows = append(rows, PowerRow{
			Team:              team,
			Wins:              s.wins,
			Losses:            s.losses,
			Ties:              s.ties,
			Pct:               aggregate.Pct3(s.wins, s.losses, s.ties),
			Net:               s.pointsFor - s.pointsAgainst,
			StrengthOfVictory: aggregate.FormatRate3(aggregate.Round3(sov)),
			Score: rater.Score(rating.Input{
				WinPct:            s.winPct(),
				MarginPerGame:     s.marginPerGame(),
				StrengthOfVictory: sov,
			}),
		})
	}

	slices.SortStableFunc(rows, func(a, b PowerRow) int {
		switch {
		case a.Score != b.Score:
			return cmpDesc(a.Score, b.Score)
		case pctOf(a) != pctOf(b):
			return cmpDesc(pctOf(a), pctOf(b))
		case a.Team < b.Team:
			return -1
		case a.Team > b.Team:
			return 1
		default:
			return 0
		}
	})

	rows = aggregate.Head(rows, n)
	for i := range rows {
		rows[i].Rank = i + 1
	}
	return rows
}

func pctOf(r PowerRow) float64 {
	games := r.Wins + r.Losses + r.Ties
	if games == 0 {
		return 0
	}
	return float64(r.Wins) / float64(games)
}

func cmpDesc(a, b float64) int {
	if a > b {
		return -1
	}
	return 1
}
