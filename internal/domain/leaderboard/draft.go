package leaderboard

import (
	"fmt"
	"slices"

	"github.com/okian/gridiron/internal/domain/aggregate"
	"github.com/okian/gridiron/internal/domain/model"
)

// Draft-position buckets are 5 slots wide; everything from lastBucketLow
// down collapses into one wider trailing bucket.
const (
	draftBucketWidth = 5
	lastBucketLow    = 26
)

// DraftValueRow is one team-season that outperformed its draft slot.
type DraftValueRow struct {
	Team     string `json:"team"`
	Season   int    `json:"season"`
	Position int    `json:"position"`
	Bucket   string `json:"bucket"`
	Wins     int    `json:"wins"`
	// BucketAvgWins is the average win count of every pick in the same
	// position bucket; Outperformance is Wins minus that average.
	BucketAvgWins  float64 `json:"bucket_avg_wins"`
	Outperformance float64 `json:"outperformance"`
}

// DraftValue is the "best value" draft-capital view plus the overall
// correlation between draft position and wins.
type DraftValue struct {
	Rows []DraftValueRow `json:"rows"`
	// Correlation is Pearson's r between draft position and wins across
	// every pick, rounded to 3 decimals; negative means later picks win
	// fewer games.
	Correlation float64 `json:"correlation"`
}

// ComputeDraftValue buckets draft picks by position, averages wins per
// bucket, and keeps only the team-seasons that beat their bucket's
// average. Teams at or below the average are excluded entirely, not
// ranked low. n <= 0 uses DefaultLimit.
func ComputeDraftValue(games []model.GameRecord, picks []model.DraftPick, n int) DraftValue {
	if n <= 0 {
		n = DefaultLimit
	}

	wins := winsByTeamSeason(games)

	type entry struct {
		pick model.DraftPick
		wins int
	}
	entries := make([]entry, 0, len(picks))
	bucketWins := make(map[string][]int)
	var xs, ys []float64
	for _, p := range picks {
		if p.Position < 1 {
			continue
		}
		w := wins[seasonKey(p.Team, p.Season)]
		entries = append(entries, entry{pick: p, wins: w})
		b := bucketLabel(p.Position)
		bucketWins[b] = append(bucketWins[b], w)
		xs = append(xs, float64(p.Position))
		ys = append(ys, float64(w))
	}

	avg := make(map[string]float64, len(bucketWins))
	for b, ws := range bucketWins {
		sum := 0
		for _, w := range ws {
			sum += w
		}
		avg[b] = float64(sum) / float64(len(ws))
	}

	rows := make([]DraftValueRow, 0, len(entries))
	for _, e := range entries {
		b := bucketLabel(e.pick.Position)
		out := float64(e.wins) - avg[b]
		if out <= 0 {
			continue
		}
		rows = append(rows, DraftValueRow{
			Team:           e.pick.Team,
			Season:         e.pick.Season,
			Position:       e.pick.Position,
			Bucket:         b,
			Wins:           e.wins,
			BucketAvgWins:  aggregate.Round3(avg[b]),
			Outperformance: aggregate.Round3(out),
		})
	}

	slices.SortStableFunc(rows, func(a, b DraftValueRow) int {
		switch {
		case a.Outperformance != b.Outperformance:
			return cmpDesc(a.Outperformance, b.Outperformance)
		case a.Wins != b.Wins:
			return cmpDesc(float64(a.Wins), float64(b.Wins))
		case a.Team != b.Team:
			if a.Team < b.Team {
				return -1
			}
			return 1
		default:
			return a.Season - b.Season
		}
	})

	return DraftValue{
		Rows:        aggregate.Head(rows, n),
		Correlation: aggregate.Pearson(xs, ys),
	}
}

// bucketLabel maps a 1-based draft position to its bucket name:
// "1-5", "6-10", ..., "26+".
func bucketLabel(position int) string {
	if position >= lastBucketLow {
		return fmt.Sprintf("%d+", lastBucketLow)
	}
	low := ((position - 1) / draftBucketWidth) * draftBucketWidth
	return fmt.Sprintf("%d-%d", low+1, low+draftBucketWidth)
}

func seasonKey(team string, season int) string {
	return fmt.Sprintf("%s|%d", team, season)
}

// winsByTeamSeason counts regular-season wins per team-season.
func winsByTeamSeason(games []model.GameRecord) map[string]int {
	wins := make(map[string]int)
	for _, g := range games {
		if g.Playoff {
			continue
		}
		if w := g.Winner(); w != "" {
			wins[seasonKey(w, g.Season)]++
		}
	}
	return wins
}
