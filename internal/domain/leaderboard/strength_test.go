package leaderboard_test

import (
	"testing"

	leaderboard "github.com/okian/gridiron/internal/domain/leaderboard"
	model "github.com/okian/gridiron/internal/domain/model"
	. "github.com/smartystreets/goconvey/convey"
)

func TestStrengthOfVictoryAndSchedule(t *testing.T) {
	// Sharks beat Hawks, Hawks beat Bears, Bears beat nobody. Every
	// pairing plays once more so win rates are not all degenerate.
	games := []model.GameRecord{
		plainGame("Sharks", "Hawks", 27, 20),
		plainGame("Hawks", "Bears", 24, 10),
		plainGame("Bears", "Sharks", 7, 21),
		plainGame("Sharks", "Bears", 14, 3),
	}

	Convey("Given a small schedule", t, func() {
		rows := leaderboard.Strength(games)

		Convey("Then every team is present", func() {
			So(rows, ShouldHaveLength, 3)
		})

		Convey("Then SOV is the combined pct of beaten opponents", func() {
			byTeam := make(map[string]leaderboard.StrengthRow, len(rows))
			for _, r := range rows {
				byTeam[r.Team] = r
			}

			// Sharks beat Hawks once and Bears twice: victim pool is
			// Hawks (1-1) plus Bears (0-3) twice, 1 win in 8 games.
			So(byTeam["Sharks"].StrengthOfVictory, ShouldEqual, ".125")
			// Hawks' only victim is Bears at 0-3.
			So(byTeam["Hawks"].StrengthOfVictory, ShouldEqual, ".000")
			// Bears beat nobody.
			So(byTeam["Bears"].StrengthOfVictory, ShouldEqual, ".000")
		})

		Convey("Then SOS weights opponents by games faced", func() {
			byTeam := make(map[string]leaderboard.StrengthRow, len(rows))
			for _, r := range rows {
				byTeam[r.Team] = r
			}

			// Bears faced Hawks (1-1) once and Sharks (3-0) twice:
			// 7 opponent wins over 8 opponent games.
			So(byTeam["Bears"].StrengthOfSched, ShouldEqual, ".875")
		})

		Convey("Then rows order by SOV descending", func() {
			So(rows[0].Team, ShouldEqual, "Sharks")
			for i := 1; i < len(rows); i++ {
				So(rows[i].StrengthOfVictory, ShouldBeLessThanOrEqualTo, rows[i-1].StrengthOfVictory)
			}
		})
	})

	Convey("Given no games", t, func() {
		Convey("Then the view is empty, not nil", func() {
			So(leaderboard.Strength(nil), ShouldBeEmpty)
		})
	})
}
