package types_test

import (
	"testing"

	"github.com/okian/mediaimpact/internal/domain/types"
	. "github.com/smartystreets/goconvey/convey"
)

func TestRank(t *testing.T) {
	Convey("Given unordered entries", t, func() {
		in := []types.Entry{
			{Name: "Chelsea", Score: 5},
			{Name: "Arsenal", Score: 10},
			{Name: "Everton", Score: 0},
			{Name: "Brentford", Score: 5},
		}

		Convey("When ranking", func() {
			ranked := types.Rank(in)

			Convey("Then higher scores come first and ties share a rank", func() {
				So(ranked[0].Name, ShouldEqual, "Arsenal")
				So(ranked[0].Rank, ShouldEqual, 1)
				So(ranked[1].Name, ShouldEqual, "Brentford")
				So(ranked[2].Name, ShouldEqual, "Chelsea")
				So(ranked[1].Rank, ShouldEqual, 2)
				So(ranked[2].Rank, ShouldEqual, 2)
				So(ranked[3].Rank, ShouldEqual, 4)
			})

			Convey("Then the input is left untouched", func() {
				So(in[0].Name, ShouldEqual, "Chelsea")
				So(in[0].Rank, ShouldEqual, 0)
			})

			Convey("Then Top trims the head", func() {
				So(types.Top(ranked, 2), ShouldHaveLength, 2)
				So(types.Top(ranked, 0), ShouldHaveLength, 4)
				So(types.Top(ranked, 10), ShouldHaveLength, 4)
			})
		})
	})
}
