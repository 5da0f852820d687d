package standings

import (
	"strconv"

	"github.com/okian/gridiron/internal/domain/model"
)

// NoStreak is the sentinel for a team with no games.
const NoStreak = "--"

// streak walks a team's regular-season games backward from the most
// recent and counts the unbroken run of identical outcomes. games must
// already be in chronological order.
func streak(team string, games []model.GameRecord) string {
	if len(games) == 0 {
		return NoStreak
	}

	symbol := ""
	count := 0
	for i := len(games) - 1; i >= 0; i-- {
		s := outcomeSymbol(team, games[i])
		if symbol == "" {
			symbol = s
		}
		if s != symbol {
			break
		}
		count++
	}
	return symbol + strconv.Itoa(count)
}

func outcomeSymbol(team string, g model.GameRecord) string {
	switch {
	case g.Tie():
		return "T"
	case g.Winner() == team:
		return "W"
	default:
		return "L"
	}
}
