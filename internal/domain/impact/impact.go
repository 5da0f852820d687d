// Package impact aggregates situational game detail: quarter scoring
// profiles, penalty impact, and red-zone efficiency.
//
// The live feed does not populate the detail fields yet, so production
// calls see zero values end to end; every function here returns a
// well-defined zero result for that case rather than NaN or a panic.
package impact

import (
	"fmt"
	"slices"

	"github.com/okian/gridiron/internal/domain/aggregate"
	"github.com/okian/gridiron/internal/domain/model"
)

// QuarterProfile is the league scoring shape: average points per
// quarter for home and away sides over every side of every game.
type QuarterProfile struct {
	Games   int        `json:"games"`
	Home    [4]float64 `json:"home"`
	Away    [4]float64 `json:"away"`
	Overall [4]float64 `json:"overall"`
}

// Quarters computes the average quarter-scoring profile. Zero games
// yields an all-zero profile.
func Quarters(details []model.GameDetail) QuarterProfile {
	p := QuarterProfile{Games: len(details)}
	if len(details) == 0 {
		return p
	}

	var home, away [4]int
	for _, d := range details {
		for q := 0; q < 4; q++ {
			home[q] += d.Home.QuarterScores[q]
			away[q] += d.Away.QuarterScores[q]
		}
	}
	n := float64(len(details))
	for q := 0; q < 4; q++ {
		p.Home[q] = aggregate.Round3(float64(home[q]) / n)
		p.Away[q] = aggregate.Round3(float64(away[q]) / n)
		p.Overall[q] = aggregate.Round3(float64(home[q]+away[q]) / (2 * n))
	}
	return p
}

// PenaltyImpact is the correlation between a side's penalty yardage and
// its scoring margin across every side of every game.
type PenaltyImpact struct {
	Sides int `json:"sides"`
	// Correlation is Pearson's r, rounded to 3 decimals; negative means
	// heavier-penalized sides tend to lose by more.
	Correlation float64 `json:"correlation"`
}

// Penalties measures penalty impact over details. Each game contributes
// two samples, one per side. Fewer than two samples yields zero.
func Penalties(details []model.GameDetail) PenaltyImpact {
	yards := make([]float64, 0, 2*len(details))
	margins := make([]float64, 0, 2*len(details))
	for _, d := range details {
		m := float64(d.Game.Margin())
		yards = append(yards, float64(d.Home.PenaltyYards), float64(d.Away.PenaltyYards))
		margins = append(margins, m, -m)
	}
	return PenaltyImpact{
		Sides:       len(yards),
		Correlation: aggregate.Pearson(yards, margins),
	}
}

// RedZoneRow is one team's red-zone conversion line. Efficiency renders
// as "scores/trips (rate)", e.g. "12/18 (66.7%)".
type RedZoneRow struct {
	Team       string `json:"team"`
	Trips      int    `json:"trips"`
	Scores     int    `json:"scores"`
	Efficiency string `json:"efficiency"`
}

// RedZone computes per-team red-zone efficiency over details, ordered
// by conversion rate descending, then trips descending, then team name.
// Teams with zero trips render "0/0 (0.0%)".
func RedZone(details []model.GameDetail) []RedZoneRow {
	type acc struct{ trips, scores int }
	accs := make(map[string]*acc)
	get := func(team string) *acc {
		a, ok := accs[team]
		if !ok {
			a = &acc{}
			accs[team] = a
		}
		return a
	}
	for _, d := range details {
		h, a := get(d.Game.Home), get(d.Game.Away)
		h.trips += d.Home.RedZoneTrips
		h.scores += d.Home.RedZoneScores
		a.trips += d.Away.RedZoneTrips
		a.scores += d.Away.RedZoneScores
	}

	teams := make([]string, 0, len(accs))
	for team := range accs {
		teams = append(teams, team)
	}
	slices.Sort(teams)

	rows := make([]RedZoneRow, 0, len(teams))
	for _, team := range teams {
		a := accs[team]
		rows = append(rows, RedZoneRow{
			Team:       team,
			Trips:      a.trips,
			Scores:     a.scores,
			Efficiency: fmt.Sprintf("%d/%d (%s)", a.scores, a.trips, aggregate.Percent1(a.scores, a.trips)),
		})
	}

	rate := func(r RedZoneRow) float64 {
		if r.Trips == 0 {
			return 0
		}
		return float64(r.Scores) / float64(r.Trips)
	}
	slices.SortStableFunc(rows, func(a, b RedZoneRow) int {
		switch {
		case rate(a) != rate(b):
			if rate(a) > rate(b) {
				return -1
			}
			return 1
		case a.Trips != b.Trips:
			return b.Trips - a.Trips
		case a.Team < b.Team:
			return -1
		case a.Team > b.Team:
			return 1
		default:
			return 0
		}
	})
	return rows
}
