package model_test

import (
	"encoding/json"
	"testing"

	model "github.com/okian/mediaimpact/internal/domain/model"
	"github.com/smartystreets/goconvey/convey"
)

func TestKind(t *testing.T) {
	convey.Convey("Given the entity kinds", t, func() {
		convey.Convey("Then clubs are scored before players", func() {
			convey.So(model.Kinds(), convey.ShouldResemble, []model.Kind{model.KindClub, model.KindPlayer})
		})

		convey.Convey("Then only known kinds are valid", func() {
			convey.So(model.KindClub.Valid(), convey.ShouldBeTrue)
			convey.So(model.KindPlayer.Valid(), convey.ShouldBeTrue)
			convey.So(model.Kind("coach").Valid(), convey.ShouldBeFalse)
		})
	})
}

func TestEntityKey(t *testing.T) {
	convey.Convey("Given an entity with a mixed-case name", t, func() {
		e := model.Entity{Name: "Bukayo Saka", Kind: model.KindPlayer, Affiliation: "Arsenal FC"}

		convey.Convey("Then its key is lowercase", func() {
			convey.So(e.Key(), convey.ShouldEqual, "bukayo saka")
		})
	})
}

func TestRound(t *testing.T) {
	convey.Convey("Given display rounding", t, func() {
		convey.So(model.Round(0.123456, 3), convey.ShouldEqual, 0.123)
		convey.So(model.Round(7.3351, 2), convey.ShouldEqual, 7.34)
		convey.So(model.Round(-0.0004, 3), convey.ShouldEqual, 0.0)
	})
}

func TestInsightJSON(t *testing.T) {
	convey.Convey("Given an insight without social data", t, func() {
		doc := model.Insight{Name: "Everton FC", Kind: model.KindClub, ImpactScore: 4.2}

		convey.Convey("When encoding to JSON", func() {
			raw, err := json.Marshal(doc)
			convey.So(err, convey.ShouldBeNil)

			var fields map[string]any
			convey.So(json.Unmarshal(raw, &fields), convey.ShouldBeNil)

			convey.Convey("Then the absent twitter axis is omitted, not zeroed", func() {
				_, hasAvg := fields["avg_sentiment_twitter"]
				_, hasNorm := fields["normalized_sentiment_twitter"]
				convey.So(hasAvg, convey.ShouldBeFalse)
				convey.So(hasNorm, convey.ShouldBeFalse)
				convey.So(fields["impact_score"], convey.ShouldEqual, 4.2)
			})
		})

		convey.Convey("When the twitter axis is present with a zero value", func() {
			doc.AvgSentimentTwitter = model.Ptr(0.0)
			raw, err := json.Marshal(doc)
			convey.So(err, convey.ShouldBeNil)

			convey.Convey("Then it is kept", func() {
				convey.So(string(raw), convey.ShouldContainSubstring, `"avg_sentiment_twitter":0`)
			})
		})
	})
}
