package impact_test

import (
	"testing"

	impact "github.com/okian/gridiron/internal/domain/impact"
	model "github.com/okian/gridiron/internal/domain/model"
	. "github.com/smartystreets/goconvey/convey"
)

func detail(home, away string, hs, as int, h, a model.SideDetail) model.GameDetail {
	return model.GameDetail{
		Game: model.GameRecord{
			Season: 2023, Week: "1",
			Home: home, Away: away,
			HomeScore: hs, AwayScore: as,
		},
		Home: h,
		Away: a,
	}
}

func TestQuartersZeroFeed(t *testing.T) {
	Convey("Given details with unpopulated quarter scores", t, func() {
		details := []model.GameDetail{
			detail("Sharks", "Bears", 24, 17, model.SideDetail{}, model.SideDetail{}),
			detail("Hawks", "Colts", 10, 13, model.SideDetail{}, model.SideDetail{}),
		}
		p := impact.Quarters(details)

		Convey("Then the profile is all zeros but counts the games", func() {
			So(p.Games, ShouldEqual, 2)
			So(p.Home, ShouldResemble, [4]float64{})
			So(p.Away, ShouldResemble, [4]float64{})
			So(p.Overall, ShouldResemble, [4]float64{})
		})
	})

	Convey("Given no details at all", t, func() {
		So(impact.Quarters(nil).Games, ShouldEqual, 0)
	})
}

func TestQuartersSyntheticProfile(t *testing.T) {
	Convey("Given populated quarter scores", t, func() {
		details := []model.GameDetail{
			detail("Sharks", "Bears", 28, 14,
				model.SideDetail{QuarterScores: [4]int{7, 7, 7, 7}},
				model.SideDetail{QuarterScores: [4]int{0, 7, 0, 7}}),
			detail("Sharks", "Hawks", 14, 6,
				model.SideDetail{QuarterScores: [4]int{7, 0, 7, 0}},
				model.SideDetail{QuarterScores: [4]int{3, 0, 3, 0}}),
		}
		p := impact.Quarters(details)

		Convey("Then averages come out per side and overall", func() {
			So(p.Home, ShouldResemble, [4]float64{7, 3.5, 7, 3.5})
			So(p.Away, ShouldResemble, [4]float64{1.5, 3.5, 1.5, 3.5})
			So(p.Overall, ShouldResemble, [4]float64{4.25, 3.5, 4.25, 3.5})
		})
	})
}

func TestPenalties(t *testing.T) {
	Convey("Given a zero-valued feed", t, func() {
		details := []model.GameDetail{
			detail("Sharks", "Bears", 20, 17, model.SideDetail{}, model.SideDetail{}),
		}
		p := impact.Penalties(details)

		Convey("Then the correlation is zero, not NaN", func() {
			So(p.Sides, ShouldEqual, 2)
			So(p.Correlation, ShouldEqual, 0)
		})
	})

	Convey("Given penalty yards moving opposite to margin", t, func() {
		// The heavily penalized side loses by more in every game.
		details := []model.GameDetail{
			detail("Sharks", "Bears", 30, 10,
				model.SideDetail{PenaltyYards: 20},
				model.SideDetail{PenaltyYards: 120}),
			detail("Hawks", "Colts", 24, 14,
				model.SideDetail{PenaltyYards: 45},
				model.SideDetail{PenaltyYards: 95}),
		}
		p := impact.Penalties(details)

		Convey("Then the correlation is strongly negative", func() {
			So(p.Sides, ShouldEqual, 4)
			So(p.Correlation, ShouldBeLessThan, -0.9)
		})
	})

	Convey("Given no details", t, func() {
		So(impact.Penalties(nil).Correlation, ShouldEqual, 0)
	})
}

func TestRedZone(t *testing.T) {
	Convey("Given a zero-valued feed", t, func() {
		details := []model.GameDetail{
			detail("Sharks", "Bears", 20, 17, model.SideDetail{}, model.SideDetail{}),
		}
		rows := impact.RedZone(details)

		Convey("Then every team renders the zero-trip line", func() {
			So(rows, ShouldHaveLength, 2)
			for _, r := range rows {
				So(r.Efficiency, ShouldEqual, "0/0 (0.0%)")
			}
		})
	})

	Convey("Given populated red-zone counts", t, func() {
		details := []model.GameDetail{
			detail("Sharks", "Bears", 28, 14,
				model.SideDetail{RedZoneTrips: 4, RedZoneScores: 3},
				model.SideDetail{RedZoneTrips: 3, RedZoneScores: 1}),
			detail("Bears", "Sharks", 21, 24,
				model.SideDetail{RedZoneTrips: 3, RedZoneScores: 2},
				model.SideDetail{RedZoneTrips: 2, RedZoneScores: 2}),
		}
		rows := impact.RedZone(details)

		Convey("Then trips and scores accumulate across games", func() {
			So(rows[0].Team, ShouldEqual, "Sharks")
			So(rows[0].Trips, ShouldEqual, 6)
			So(rows[0].Scores, ShouldEqual, 5)
			So(rows[0].Efficiency, ShouldEqual, "5/6 (83.3%)")

			So(rows[1].Team, ShouldEqual, "Bears")
			So(rows[1].Efficiency, ShouldEqual, "3/6 (50.0%)")
		})
	})
}
