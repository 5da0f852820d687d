package repository_test

import (
	"context"
	"encoding/json"
	"errors"
	"testing"

	repository "github.com/okian/gridiron/internal/adapters/repository"
	model "github.com/okian/gridiron/internal/domain/model"
	. "github.com/smartystreets/goconvey/convey"
)

func game(season int, week, home, away string, hs, as int) model.GameRecord {
	return model.GameRecord{
		Season: season, Week: week,
		Home: home, Away: away,
		HomeScore: hs, AwayScore: as,
	}
}

func TestMemoryStorePutGame(t *testing.T) {
	ctx := context.Background()

	Convey("Given an empty store", t, func() {
		s := repository.NewMemoryStore()

		Convey("When storing a well-formed game", func() {
			err := s.PutGame(ctx, game(2023, "1", "Buffalo Bills", "New York Jets", 24, 17))

			Convey("Then it is accepted", func() {
				So(err, ShouldBeNil)
				So(s.Len(ctx), ShouldEqual, 1)
			})
		})

		Convey("When storing games with blank team names", func() {
			err := s.PutGame(ctx, game(2023, "1", "", "New York Jets", 24, 17))

			Convey("Then the record is rejected", func() {
				So(errors.Is(err, repository.ErrMissingTeam), ShouldBeTrue)
				So(s.Len(ctx), ShouldEqual, 0)
			})
		})

		Convey("When a team plays itself", func() {
			err := s.PutGame(ctx, game(2023, "1", "Buffalo Bills", "buffalo bills", 24, 17))

			Convey("Then the record is rejected", func() {
				So(errors.Is(err, repository.ErrSameTeam), ShouldBeTrue)
			})
		})

		Convey("When a score is negative", func() {
			err := s.PutGame(ctx, game(2023, "1", "Buffalo Bills", "New York Jets", -3, 17))

			Convey("Then the record is rejected", func() {
				So(errors.Is(err, repository.ErrInvalidScore), ShouldBeTrue)
			})
		})

		Convey("When the season is missing", func() {
			err := s.PutGame(ctx, game(0, "1", "Buffalo Bills", "New York Jets", 24, 17))

			Convey("Then the record is rejected", func() {
				So(errors.Is(err, repository.ErrInvalidSeason), ShouldBeTrue)
			})
		})
	})
}

func TestMemoryStoreSeasonIndex(t *testing.T) {
	ctx := context.Background()

	Convey("Given games across several seasons, stored out of order", t, func() {
		s := repository.NewMemoryStore()
		So(s.PutGame(ctx, game(2023, "1", "Buffalo Bills", "New York Jets", 24, 17)), ShouldBeNil)
		So(s.PutGame(ctx, game(2021, "1", "Dallas Cowboys", "New York Giants", 20, 13)), ShouldBeNil)
		So(s.PutGame(ctx, game(2023, "2", "Miami Dolphins", "Buffalo Bills", 21, 28)), ShouldBeNil)
		So(s.PutGame(ctx, game(2022, "1", "Buffalo Bills", "Tennessee Titans", 41, 7)), ShouldBeNil)

		Convey("Then seasons come back sorted", func() {
			So(s.Seasons(ctx), ShouldResemble, []int{2021, 2022, 2023})
		})

		Convey("Then per-season lookups return only that season", func() {
			games := s.GamesBySeason(ctx, 2023)
			So(games, ShouldHaveLength, 2)
			for _, g := range games {
				So(g.Season, ShouldEqual, 2023)
			}
		})

		Convey("Then unknown seasons yield an empty slice", func() {
			So(s.GamesBySeason(ctx, 1999), ShouldBeEmpty)
		})

		Convey("Then AllGames walks seasons in ascending order", func() {
			games := s.AllGames(ctx)
			So(games, ShouldHaveLength, 4)
			So(games[0].Season, ShouldEqual, 2021)
			So(games[len(games)-1].Season, ShouldEqual, 2023)
		})

		Convey("Then returned slices are copies", func() {
			games := s.GamesBySeason(ctx, 2022)
			games[0].HomeScore = 0
			So(s.GamesBySeason(ctx, 2022)[0].HomeScore, ShouldEqual, 41)
		})
	})
}

func TestMemoryStoreEmptyReads(t *testing.T) {
	ctx := context.Background()

	Convey("Given a store with nothing in it", t, func() {
		s := repository.NewMemoryStore()

		Convey("Then every read returns a non-nil slice", func() {
			So(s.Seasons(ctx), ShouldNotBeNil)
			So(s.Teams(ctx), ShouldNotBeNil)
			So(s.DraftPicks(ctx), ShouldNotBeNil)
			So(s.GamesBySeason(ctx, 2023), ShouldNotBeNil)
			So(s.AllGames(ctx), ShouldNotBeNil)
		})

		Convey("Then empty reads marshal as [] rather than null", func() {
			for _, v := range []any{
				s.Seasons(ctx),
				s.Teams(ctx),
				s.DraftPicks(ctx),
				s.GamesBySeason(ctx, 2023),
			} {
				b, err := json.Marshal(v)
				So(err, ShouldBeNil)
				So(string(b), ShouldEqual, "[]")
			}
		})
	})
}

func TestMemoryStoreTeamsAndPicks(t *testing.T) {
	ctx := context.Background()

	Convey("Given a store preloaded with the league directory", t, func() {
		s := repository.NewMemoryStore(repository.WithTeams(repository.DefaultTeams()))

		Convey("Then all 32 teams are present", func() {
			So(s.Teams(ctx), ShouldHaveLength, 32)
		})

		Convey("Then each division holds exactly four teams", func() {
			counts := make(map[string]int)
			for _, team := range s.Teams(ctx) {
				counts[team.Conference+" "+team.Division]++
			}
			So(counts, ShouldHaveLength, 8)
			for _, n := range counts {
				So(n, ShouldEqual, 4)
			}
		})

		Convey("When replacing the directory", func() {
			s.PutTeams(ctx, repository.DefaultTeams()[:4])

			Convey("Then the new directory wins", func() {
				So(s.Teams(ctx), ShouldHaveLength, 4)
			})
		})
	})

	Convey("Given draft picks", t, func() {
		s := repository.NewMemoryStore()
		picks := []model.DraftPick{
			{Season: 2023, Team: "Carolina Panthers", Position: 1},
			{Season: 2023, Team: "Houston Texans", Position: 2},
		}
		s.PutDraftPicks(ctx, picks)

		Convey("Then they round-trip as a copy", func() {
			got := s.DraftPicks(ctx)
			So(got, ShouldResemble, picks)
			got[0].Position = 99
			So(s.DraftPicks(ctx)[0].Position, ShouldEqual, 1)
		})
	})
}
