package dedupe_test

import (
	"context"
	"testing"

	dedupe "github.com/okian/mediaimpact/internal/domain/dedupe"
	. "github.com/smartystreets/goconvey/convey"
)

func TestInMemoryDeduper(t *testing.T) {
	Convey("Given a new InMemoryDeduper", t, func() {
		ctx := context.Background()

		Convey("When creating a deduper with default options", func() {
			d := dedupe.NewInMemoryDeduper()

			Convey("Then it should be empty", func() {
				So(d, ShouldNotBeNil)
				So(d.Size(), ShouldEqual, 0)
			})
		})

		Convey("When recording ids", func() {
			d := dedupe.NewInMemoryDeduper()

			Convey("And the id is new", func() {
				seen := d.SeenAndRecord(ctx, "url:a")

				Convey("Then it should return false and record the id", func() {
					So(seen, ShouldBeFalse)
					So(d.Size(), ShouldEqual, 1)
				})
			})

			Convey("And the id was already seen", func() {
				d.SeenAndRecord(ctx, "url:a")
				seen := d.SeenAndRecord(ctx, "url:a")

				Convey("Then it should return true without growing", func() {
					So(seen, ShouldBeTrue)
					So(d.Size(), ShouldEqual, 1)
				})
			})
		})

		Convey("When the deduper is bounded", func() {
			d := dedupe.NewInMemoryDeduper(dedupe.WithMaxSize(2))
			d.SeenAndRecord(ctx, "a")
			d.SeenAndRecord(ctx, "b")
			d.SeenAndRecord(ctx, "c")

			Convey("Then the oldest id is evicted first", func() {
				So(d.Size(), ShouldEqual, 2)
				So(d.SeenAndRecord(ctx, "c"), ShouldBeTrue)
				So(d.SeenAndRecord(ctx, "a"), ShouldBeFalse)
			})

			Convey("And a bound of zero keeps everything", func() {
				u := dedupe.NewInMemoryDeduper(dedupe.WithMaxSize(0))
				for _, id := range []string{"a", "b", "c", "d"} {
					u.SeenAndRecord(ctx, id)
				}
				So(u.Size(), ShouldEqual, 4)
				So(u.SeenAndRecord(ctx, "a"), ShouldBeTrue)
			})
		})
	})
}

func TestFingerprint(t *testing.T) {
	Convey("Given article fingerprints", t, func() {
		Convey("When a search result link carries appended tracking parameters", func() {
			a := dedupe.Fingerprint("https://news.example.com/Arsenal-Win", "")
			b := dedupe.Fingerprint(" https://news.example.com/Arsenal-Win&ved=2&usg=x#top", "other text")

			Convey("Then they collapse to one id", func() {
				So(a, ShouldEqual, b)
				So(a, ShouldEqual, "url:https://news.example.com/Arsenal-Win")
			})
		})

		Convey("When URLs differ in their query", func() {
			a := dedupe.Fingerprint("https://news.example.com/article.php?id=101", "")
			b := dedupe.Fingerprint("https://news.example.com/article.php?id=202", "")
			c := dedupe.Fingerprint("https://news.example.com/article.php?id=101&page=2", "")

			Convey("Then each query is a different article", func() {
				So(a, ShouldNotEqual, b)
				So(a, ShouldNotEqual, c)
			})
		})

		Convey("When URLs differ only in path case", func() {
			a := dedupe.Fingerprint("https://news.example.com/Story", "")
			b := dedupe.Fingerprint("https://news.example.com/story", "")

			Convey("Then the case is kept", func() {
				So(a, ShouldNotEqual, b)
			})
		})

		Convey("When there is no URL", func() {
			a := dedupe.Fingerprint("", "Arsenal  won\n2-0")
			b := dedupe.Fingerprint(" ", "arsenal won 2-0")
			c := dedupe.Fingerprint("", "Chelsea won 2-0")

			Convey("Then the normalised text decides", func() {
				So(a, ShouldEqual, b)
				So(a, ShouldNotEqual, c)
				So(a, ShouldStartWith, "text:")
			})
		})
	})
}
