package standings_test

import (
	"math/rand"
	"testing"
	"time"

	model "github.com/okian/gridiron/internal/domain/model"
	standings "github.com/okian/gridiron/internal/domain/standings"
	. "github.com/smartystreets/goconvey/convey"
)

func testTeams() []model.TeamInfo {
	return []model.TeamInfo{
		{Name: "Buffalo Bills", Abbr: "BUF", Conference: model.AFC, Division: model.East},
		{Name: "Miami Dolphins", Abbr: "MIA", Conference: model.AFC, Division: model.East},
		{Name: "New York Jets", Abbr: "NYJ", Conference: model.AFC, Division: model.East},
		{Name: "Kansas City Chiefs", Abbr: "KC", Conference: model.AFC, Division: model.West},
		{Name: "Philadelphia Eagles", Abbr: "PHI", Conference: model.NFC, Division: model.East},
		{Name: "Dallas Cowboys", Abbr: "DAL", Conference: model.NFC, Division: model.East},
	}
}

func day(n int) time.Time {
	return time.Date(2023, 9, 1, 0, 0, 0, 0, time.UTC).AddDate(0, 0, n*7)
}

func TestComputeEmptyInput(t *testing.T) {
	Convey("Given no games at all", t, func() {
		tables := standings.Compute(nil, testTeams())

		Convey("Then every team is present with a zero row", func() {
			total := 0
			for _, table := range tables {
				total += len(table.Teams)
				for _, row := range table.Teams {
					So(row.Overall, ShouldResemble, standings.SplitRecord{})
					So(row.Pct, ShouldEqual, ".000")
					So(row.Streak, ShouldEqual, "--")
					So(row.PointsFor, ShouldEqual, 0)
					So(row.PointsAgainst, ShouldEqual, 0)
				}
			}
			So(total, ShouldEqual, len(testTeams()))
		})

		Convey("Then divisions come out in canonical conference order", func() {
			So(tables, ShouldHaveLength, 3)
			So(tables[0].Conference, ShouldEqual, model.AFC)
			So(tables[0].Division, ShouldEqual, model.East)
			So(tables[1].Conference, ShouldEqual, model.AFC)
			So(tables[1].Division, ShouldEqual, model.West)
			So(tables[2].Conference, ShouldEqual, model.NFC)
			So(tables[2].Division, ShouldEqual, model.East)
		})
	})
}

func TestComputeSplitsAndOrdering(t *testing.T) {
	games := []model.GameRecord{
		// Divisional: Bills beat Dolphins at home.
		{Season: 2023, Week: "1", Date: day(0), Home: "Buffalo Bills", Away: "Miami Dolphins", HomeScore: 31, AwayScore: 10},
		// Conference (non-divisional): Bills lose at Kansas City.
		{Season: 2023, Week: "2", Date: day(1), Home: "Kansas City Chiefs", Away: "Buffalo Bills", HomeScore: 24, AwayScore: 20},
		// Inter-conference: Bills beat Eagles on the road.
		{Season: 2023, Week: "3", Date: day(2), Home: "Philadelphia Eagles", Away: "Buffalo Bills", HomeScore: 14, AwayScore: 27},
		// Divisional tie between Dolphins and Jets.
		{Season: 2023, Week: "4", Date: day(3), Home: "Miami Dolphins", Away: "New York Jets", HomeScore: 20, AwayScore: 20},
		// Playoff game, must be excluded everywhere.
		{Season: 2023, Week: "SuperBowl", Date: day(20), Home: "Buffalo Bills", Away: "Philadelphia Eagles", HomeScore: 3, AwayScore: 40, Playoff: true},
	}

	Convey("Given a season's games", t, func() {
		tables := standings.Compute(games, testTeams())

		rowFor := func(team string) standings.TeamRow {
			for _, table := range tables {
				for _, row := range table.Teams {
					if row.Team == team {
						return row
					}
				}
			}
			return standings.TeamRow{}
		}

		Convey("Then split records land in the right buckets", func() {
			bills := rowFor("Buffalo Bills")
			So(bills.Overall, ShouldResemble, standings.SplitRecord{Wins: 2, Losses: 1})
			So(bills.Home, ShouldResemble, standings.SplitRecord{Wins: 1})
			So(bills.Away, ShouldResemble, standings.SplitRecord{Wins: 1, Losses: 1})
			So(bills.Division, ShouldResemble, standings.SplitRecord{Wins: 1})
			So(bills.Conference, ShouldResemble, standings.SplitRecord{Wins: 1, Losses: 1})
			So(bills.Pct, ShouldEqual, ".667")
			So(bills.PointsFor, ShouldEqual, 78)
			So(bills.PointsAgainst, ShouldEqual, 48)
			So(bills.Net, ShouldEqual, 30)
		})

		Convey("Then a tie credits both participants", func() {
			dolphins := rowFor("Miami Dolphins")
			jets := rowFor("New York Jets")
			So(dolphins.Overall, ShouldResemble, standings.SplitRecord{Wins: 0, Losses: 1, Ties: 1})
			So(jets.Overall, ShouldResemble, standings.SplitRecord{Ties: 1})
			So(dolphins.Division.Ties, ShouldEqual, 1)
			So(jets.Division.Ties, ShouldEqual, 1)
		})

		Convey("Then the playoff game contributed to nobody", func() {
			eagles := rowFor("Philadelphia Eagles")
			So(eagles.Overall.Games(), ShouldEqual, 1)
		})

		Convey("Then wins+losses+ties equals non-playoff appearances for every team", func() {
			appearances := map[string]int{}
			for _, g := range games {
				if g.Playoff {
					continue
				}
				appearances[g.Home]++
				appearances[g.Away]++
			}
			for _, table := range tables {
				for _, row := range table.Teams {
					So(row.Overall.Games(), ShouldEqual, appearances[row.Team])
				}
			}
		})

		Convey("Then ranks within a division start at 1 and follow pct", func() {
			east := tables[0]
			So(east.Division, ShouldEqual, model.East)
			So(east.Teams[0].Team, ShouldEqual, "Buffalo Bills")
			So(east.Teams[0].Rank, ShouldEqual, 1)
			for i, row := range east.Teams {
				So(row.Rank, ShouldEqual, i+1)
			}
		})

		Convey("Then shuffling the input does not change the output", func() {
			rng := rand.New(rand.NewSource(42))
			for trial := 0; trial < 10; trial++ {
				shuffled := make([]model.GameRecord, len(games))
				copy(shuffled, games)
				rng.Shuffle(len(shuffled), func(i, j int) {
					shuffled[i], shuffled[j] = shuffled[j], shuffled[i]
				})
				So(standings.Compute(shuffled, testTeams()), ShouldResemble, tables)
			}
		})
	})
}

func TestStreaks(t *testing.T) {
	Convey("Given a team that lost twice then won three straight", t, func() {
		games := []model.GameRecord{
			{Date: day(0), Home: "New York Jets", Away: "Buffalo Bills", HomeScore: 10, AwayScore: 20},
			{Date: day(1), Home: "Miami Dolphins", Away: "New York Jets", HomeScore: 21, AwayScore: 14},
			{Date: day(2), Home: "New York Jets", Away: "Miami Dolphins", HomeScore: 30, AwayScore: 3},
			{Date: day(3), Home: "Buffalo Bills", Away: "New York Jets", HomeScore: 13, AwayScore: 16},
			{Date: day(4), Home: "New York Jets", Away: "Buffalo Bills", HomeScore: 24, AwayScore: 17},
		}

		tables := standings.Compute(games, testTeams())

		var jets standings.TeamRow
		for _, table := range tables {
			for _, row := range table.Teams {
				if row.Team == "New York Jets" {
					jets = row
				}
			}
		}

		Convey("Then the current streak reads W3", func() {
			So(jets.Streak, ShouldEqual, "W3")
		})

		Convey("And the streak ignores input ordering", func() {
			reversed := []model.GameRecord{games[4], games[2], games[0], games[3], games[1]}
			again := standings.Compute(reversed, testTeams())
			So(again, ShouldResemble, tables)
		})
	})

	Convey("Given a team whose latest game was a tie", t, func() {
		games := []model.GameRecord{
			{Date: day(0), Home: "Buffalo Bills", Away: "Miami Dolphins", HomeScore: 28, AwayScore: 7},
			{Date: day(1), Home: "Miami Dolphins", Away: "New York Jets", HomeScore: 17, AwayScore: 17},
		}
		tables := standings.Compute(games, testTeams())

		for _, table := range tables {
			for _, row := range table.Teams {
				if row.Team == "Miami Dolphins" {
					So(row.Streak, ShouldEqual, "T1")
				}
			}
		}
	})
}
