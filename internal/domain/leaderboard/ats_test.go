package leaderboard_test

import (
	"testing"
	"time"

	leaderboard "github.com/okian/gridiron/internal/domain/leaderboard"
	model "github.com/okian/gridiron/internal/domain/model"
	. "github.com/smartystreets/goconvey/convey"
)

func linedGame(season int, home, away string, hs, as int, spread, ou float64) model.GameRecord {
	return model.GameRecord{
		Season:    season,
		Week:      "1",
		Date:      time.Date(season, 9, 10, 0, 0, 0, 0, time.UTC),
		Home:      home,
		Away:      away,
		HomeScore: hs,
		AwayScore: as,
		Spread:    spread,
		OverUnder: ou,
		HasOdds:   true,
	}
}

func TestATSLeaderboard(t *testing.T) {
	games := []model.GameRecord{
		// Sharks favored by 3, win by 10: cover.
		linedGame(2023, "Sharks", "Bears", 30, 20, -3, 45),
		// Sharks favored by 7 on the road, win by 10: cover again.
		linedGame(2023, "Bears", "Sharks", 14, 24, 7, 40),
		// Exact landing on the line: push for both sides.
		linedGame(2023, "Sharks", "Hawks", 23, 20, -3, 44),
		// Hawks lose outright and against the number.
		linedGame(2023, "Hawks", "Bears", 13, 27, -2, 41),
	}

	Convey("Given a slate of lined games", t, func() {
		board := leaderboard.ATS(games, 10)

		Convey("Then covers, losses and pushes land on the right teams", func() {
			top := board.Top
			So(top, ShouldNotBeEmpty)
			So(top[0].Team, ShouldEqual, "Sharks")
			So(top[0].Record.Wins, ShouldEqual, 2)
			So(top[0].Record.Losses, ShouldEqual, 0)
			So(top[0].Record.Pushes, ShouldEqual, 1)
			So(top[0].Record.Total, ShouldEqual, 3)
		})

		Convey("Then the cover rate excludes pushes from the denominator", func() {
			So(board.Top[0].CoverPct, ShouldEqual, "100.0%")
		})

		Convey("Then the bottom of the board leads with the worst team", func() {
			So(board.Bottom, ShouldNotBeEmpty)
			So(board.Bottom[0].Team, ShouldEqual, "Hawks")
			So(board.Bottom[0].Record.Wins, ShouldEqual, 0)
			So(board.Bottom[0].Record.Losses, ShouldEqual, 1)
			So(board.Bottom[0].Record.Pushes, ShouldEqual, 1)
		})
	})

	Convey("Given games without lines or played in the playoffs", t, func() {
		noOdds := model.GameRecord{
			Season: 2023, Week: "2", Home: "Sharks", Away: "Bears",
			HomeScore: 40, AwayScore: 0,
		}
		playoff := linedGame(2023, "Sharks", "Bears", 35, 3, -3, 44)
		playoff.Playoff = true
		playoff.Week = "WildCard"

		board := leaderboard.ATS(append(games, noOdds, playoff), 10)

		Convey("Then they do not move anyone's record", func() {
			So(board.Top[0].Team, ShouldEqual, "Sharks")
			So(board.Top[0].Record.Total, ShouldEqual, 3)
		})
	})

	Convey("Given no games at all", t, func() {
		board := leaderboard.ATS(nil, 10)

		Convey("Then both ends are empty but non-nil", func() {
			So(board.Top, ShouldNotBeNil)
			So(board.Top, ShouldBeEmpty)
			So(board.Bottom, ShouldNotBeNil)
			So(board.Bottom, ShouldBeEmpty)
		})
	})
}

func TestATSSeasonsSplitsByYear(t *testing.T) {
	games := []model.GameRecord{
		linedGame(2022, "Sharks", "Bears", 30, 20, -3, 45),
		linedGame(2022, "Bears", "Sharks", 14, 24, 7, 40),
		linedGame(2023, "Hawks", "Sharks", 31, 10, 3, 42),
	}

	Convey("Given seasons with opposite ATS fortunes", t, func() {
		board := leaderboard.ATSSeasons(games, 10)

		Convey("Then each team-season is its own row", func() {
			So(board.Top[0].Team, ShouldEqual, "Sharks")
			So(board.Top[0].Season, ShouldEqual, 2022)
			So(board.Top[0].Record.Wins, ShouldEqual, 2)

			So(board.Bottom[0].Team, ShouldEqual, "Sharks")
			So(board.Bottom[0].Season, ShouldEqual, 2023)
			So(board.Bottom[0].Record.Losses, ShouldEqual, 1)
		})
	})
}
