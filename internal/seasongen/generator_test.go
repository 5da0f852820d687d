package seasongen

import (
	"testing"

	. "github.com/smartystreets/goconvey/convey"
)

func TestGenerateSeason(t *testing.T) {
	Convey("Given a generated season", t, func() {
		games := generateSeason(2023)

		Convey("Then every regular week schedules the full league", func() {
			regular := 0
			for _, g := range games {
				if !g.Playoff {
					regular++
				}
			}
			// 16 games a week, 18 weeks.
			So(regular, ShouldEqual, 16*regularWeeks)
		})

		Convey("Then the playoff bracket has thirteen games", func() {
			playoff := 0
			weeks := make(map[string]int)
			for _, g := range games {
				if g.Playoff {
					playoff++
					weeks[g.Week]++
				}
			}
			So(playoff, ShouldEqual, 13)
			So(weeks["WildCard"], ShouldEqual, 6)
			So(weeks["Division"], ShouldEqual, 4)
			So(weeks["ConfChamp"], ShouldEqual, 2)
			So(weeks["SuperBowl"], ShouldEqual, 1)
		})

		Convey("Then every game is well formed", func() {
			for _, g := range games {
				So(g.Season, ShouldEqual, 2023)
				So(g.Home, ShouldNotBeEmpty)
				So(g.Away, ShouldNotBeEmpty)
				So(g.Home, ShouldNotEqual, g.Away)
				So(g.HomeScore, ShouldBeGreaterThanOrEqualTo, 0)
				So(g.AwayScore, ShouldBeGreaterThanOrEqualTo, 0)
				So(g.Date, ShouldNotBeEmpty)
				if g.Playoff {
					So(g.HomeScore, ShouldNotEqual, g.AwayScore)
				}
				if g.HasOdds {
					So(g.OverUnder, ShouldBeGreaterThan, 30)
				}
			}
		})

		Convey("Then no fixture repeats within the season", func() {
			seen := make(map[string]bool)
			for _, g := range games {
				key := g.Week + "|" + g.Home + "|" + g.Away
				So(seen[key], ShouldBeFalse)
				seen[key] = true
			}
		})
	})
}
