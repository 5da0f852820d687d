package seasongen

import (
	"context"
	"crypto/rand"
	"fmt"
	"math/big"
	"time"

	"github.com/okian/gridiron/internal/adapters/repository"
	"github.com/okian/gridiron/pkg/logger"
)

// Schedule shape constants.
const (
	regularWeeks   = 18
	oddsRatePct    = 92 // share of games carrying a betting line
	maxSpreadHalf  = 27 // spreads run -12.5..+13.5 in half points
	ouBaseHalf     = 75 // over/unders run 37.5..54.5 in half points
	ouRangeHalf    = 34
	maxTouchdowns  = 5
	maxFieldGoals  = 3
	touchdownValue = 7
	fieldGoalValue = 3
)

// Playoff rounds in order, with the number of games per round.
var playoffRounds = []struct {
	week  string
	games int
}{
	{"WildCard", 6},
	{"Division", 4},
	{"ConfChamp", 2},
	{"SuperBowl", 1},
}

// randomInt returns a uniform random int in [0, n) using crypto/rand.
func randomInt(n int) int {
	v, _ := rand.Int(rand.Reader, big.NewInt(int64(n)))
	return int(v.Int64())
}

// randomScore produces a plausible final score from touchdown and
// field-goal counts.
func randomScore() int {
	return touchdownValue*randomInt(maxTouchdowns+1) + fieldGoalValue*randomInt(maxFieldGoals+1)
}

// shuffledTeams returns the league team names in random order.
func shuffledTeams() []string {
	teams := repository.DefaultTeams()
	names := make([]string, len(teams))
	for i, t := range teams {
		names[i] = t.Name
	}
	for i := len(names) - 1; i > 0; i-- {
		j := randomInt(i + 1)
		names[i], names[j] = names[j], names[i]
	}
	return names
}

// makeGame builds one game between home and away in the given week.
func makeGame(season int, week string, date time.Time, home, away string, playoff bool) Game {
	g := Game{
		Season:    season,
		Week:      week,
		Date:      date.Format("2006-01-02"),
		Home:      home,
		Away:      away,
		HomeScore: randomScore(),
		AwayScore: randomScore(),
		Playoff:   playoff,
	}
	if playoff && g.HomeScore == g.AwayScore {
		g.HomeScore += fieldGoalValue
	}
	if randomInt(100) < oddsRatePct {
		g.HasOdds = true
		g.Spread = float64(randomInt(maxSpreadHalf)-maxSpreadHalf/2) + 0.5
		g.OverUnder = float64(ouBaseHalf+randomInt(ouRangeHalf)) / 2.0
	}
	return g
}

// generateSeason produces one full synthetic season: every team plays
// each regular week, followed by the four playoff rounds.
func generateSeason(season int) []Game {
	// Kickoff on the first Sunday of September, roughly.
	kickoff := time.Date(season, time.September, 7, 0, 0, 0, 0, time.UTC)

	var games []Game
	for week := 1; week <= regularWeeks; week++ {
		date := kickoff.AddDate(0, 0, 7*(week-1))
		names := shuffledTeams()
		for i := 0; i+1 < len(names); i += 2 {
			games = append(games, makeGame(season, fmt.Sprint(week), date, names[i], names[i+1], false))
		}
	}

	date := kickoff.AddDate(0, 0, 7*regularWeeks)
	for _, round := range playoffRounds {
		names := shuffledTeams()
		for i := 0; i < round.games; i++ {
			games = append(games, makeGame(season, round.week, date, names[2*i], names[2*i+1], true))
		}
		date = date.AddDate(0, 0, 7)
	}
	return games
}

// generateGames produces every configured season.
func generateGames(ctx context.Context, config *Config, stats *Stats) []Game {
	logger.Get().Info(ctx, "generating seasons",
		logger.Int("startSeason", config.StartSeason),
		logger.Int("numSeasons", config.NumSeasons))

	var games []Game
	for s := 0; s < config.NumSeasons; s++ {
		games = append(games, generateSeason(config.StartSeason+s)...)
	}
	stats.GamesGenerated = len(games)
	return games
}
