package repository

import (
	"testing"
	"time"

	"go.mongodb.org/mongo-driver/bson"

	"github.com/okian/mediaimpact/internal/domain/model"
	. "github.com/smartystreets/goconvey/convey"
)

func TestMongoDocumentMapping(t *testing.T) {
	Convey("Given an insight for a club", t, func() {
		doc := model.Insight{
			Name:        "Arsenal",
			Kind:        model.KindClub,
			ImpactScore: 8.25,
			YouTube:     model.YouTubeSummary{MentionCount: 3, NumVideos: 2},
		}

		Convey("When building the upsert", func() {
			coll, filter, update, err := insightUpdate(model.KindClub, doc)
			So(err, ShouldBeNil)

			Convey("Then it targets the club collection by club_name", func() {
				So(coll, ShouldEqual, "club_insights")
				So(filter, ShouldResemble, bson.M{"club_name": "Arsenal"})
			})

			Convey("Then the whole document is set with wire field names", func() {
				set, ok := update["$set"].(bson.M)
				So(ok, ShouldBeTrue)
				So(set["name"], ShouldEqual, "Arsenal")
				So(set["club_name"], ShouldEqual, "Arsenal")
				So(set["impact_score"], ShouldEqual, 8.25)
				So(set, ShouldContainKey, "youtube_summary")
				So(set, ShouldNotContainKey, "avg_sentiment_twitter")
			})
		})

		Convey("When the document belongs to a player", func() {
			doc.Kind = model.KindPlayer
			coll, filter, update, err := insightUpdate(model.KindPlayer, doc)
			So(err, ShouldBeNil)
			So(coll, ShouldEqual, "player_insights")
			So(filter, ShouldResemble, bson.M{"name": "Arsenal"})
			So(update["$set"].(bson.M), ShouldNotContainKey, "club_name")
		})
	})

	Convey("Given news batches", t, func() {
		So(newsFilter(model.KindClub, "Arsenal"), ShouldResemble, bson.M{"club": "Arsenal", "source": "news"})
		So(newsFilter(model.KindPlayer, "Bukayo Saka"), ShouldResemble, bson.M{"player": "Bukayo Saka", "source": "news"})

		rec := newNewsRecord(model.KindPlayer, "Bukayo Saka", []model.Article{{Text: "a"}, {Text: "b"}})
		So(rec.Player, ShouldEqual, "Bukayo Saka")
		So(rec.Club, ShouldBeEmpty)
		So(rec.Count, ShouldEqual, 2)

		raw, err := bson.Marshal(rec)
		So(err, ShouldBeNil)
		var m bson.M
		So(bson.Unmarshal(raw, &m), ShouldBeNil)
		So(m, ShouldNotContainKey, "club")
		So(m["articles_count"], ShouldEqual, int32(2))
	})

	Convey("Given a scraped twitter record", t, func() {
		ts := time.Date(2025, 4, 2, 18, 5, 9, 0, time.UTC)
		rec := newTwitterRecord("Arsenal", model.SocialRecord{
			MentionCount: 2,
			Posts:        []model.Post{{Content: "come on", Timestamp: ts}},
		})

		Convey("Then dates use the scraper layout and read back", func() {
			So(rec.Mentions[0].Date, ShouldEqual, "2025-04-02 18:05:09")

			back := rec.toModel()
			So(back.MentionCount, ShouldEqual, 2)
			So(back.Posts[0].Content, ShouldEqual, "come on")
			So(back.Posts[0].Timestamp.Equal(ts), ShouldBeTrue)
		})

		Convey("Then an unparsable date keeps the post", func() {
			rec.Mentions[0].Date = "yesterday"
			back := rec.toModel()
			So(back.Posts, ShouldHaveLength, 1)
			So(back.Posts[0].Timestamp.IsZero(), ShouldBeTrue)
		})
	})
}
