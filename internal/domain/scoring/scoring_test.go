package scoring_test

import (
	"math/rand"
	"sort"
	"testing"

	"github.com/okian/mediaimpact/internal/domain/keyword"
	"github.com/okian/mediaimpact/internal/domain/mention"
	scoring "github.com/okian/mediaimpact/internal/domain/scoring"
	. "github.com/smartystreets/goconvey/convey"
)

func ptr(v float64) *float64 { return &v }

func TestNormalize(t *testing.T) {
	Convey("Given the min-max normalizer", t, func() {
		Convey("When the population spreads", func() {
			got := scoring.Normalize([]float64{2, -1, 0.5}, scoring.FeatureRange)

			Convey("Then the extremes hit the interval bounds", func() {
				So(got[0], ShouldEqual, 10.0)
				So(got[1], ShouldEqual, 1.0)
				So(got[2], ShouldAlmostEqual, 5.5, 1e-9)
			})
		})

		Convey("When values are random", func() {
			rng := rand.New(rand.NewSource(7))
			values := make([]float64, 200)
			for i := range values {
				values[i] = rng.NormFloat64() * 50
			}
			got := scoring.Normalize(values, scoring.ScoreRange)

			Convey("Then every output is in range and order is preserved", func() {
				idx := make([]int, len(values))
				for i := range idx {
					idx[i] = i
				}
				sort.Slice(idx, func(a, b int) bool { return values[idx[a]] < values[idx[b]] })

				So(got[idx[0]], ShouldEqual, 0.0)
				So(got[idx[len(idx)-1]], ShouldEqual, 10.0)
				for k := 1; k < len(idx); k++ {
					So(scoring.ScoreRange.Contains(got[idx[k]]), ShouldBeTrue)
					So(got[idx[k]], ShouldBeGreaterThanOrEqualTo, got[idx[k-1]])
				}
			})
		})

		Convey("When the population is a single member", func() {
			So(scoring.Normalize([]float64{0.42}, scoring.FeatureRange), ShouldResemble, []float64{5.5})
			So(scoring.Degenerate([]float64{0.42}), ShouldBeTrue)
		})

		Convey("When all values are equal", func() {
			got := scoring.Normalize([]float64{3, 3, 3}, scoring.ScoreRange)

			Convey("Then every member gets the midpoint instead of an error", func() {
				So(got, ShouldResemble, []float64{5, 5, 5})
				So(scoring.Degenerate([]float64{3, 3, 3}), ShouldBeTrue)
			})
		})

		Convey("When the population is empty", func() {
			So(scoring.Normalize(nil, scoring.ScoreRange), ShouldBeEmpty)
		})
	})

	Convey("Given target ranges", t, func() {
		So(scoring.FeatureRange.Midpoint(), ShouldEqual, 5.5)
		So(scoring.AxisRange.Midpoint(), ShouldEqual, 5.0)
		So(scoring.Range{Min: 3, Max: 3}.Valid(), ShouldBeFalse)
	})
}

func TestAggregate(t *testing.T) {
	Convey("Given raw statistics for an entity", t, func() {
		raw := mention.RawStats{
			News: mention.NewsStats{
				NumArticles:       3,
				Sentiments:        []float64{0.2, 0.4, -0.3},
				PositiveSentences: 2,
				NegativeSentences: 1,
				Keywords: keyword.Counts{
					Positive: map[string]int{"win": 3, "solid": 1},
					Negative: map[string]int{"loss": 2},
				},
			},
		}

		Convey("When there is no social or video data", func() {
			fv := scoring.Aggregate(raw)

			Convey("Then news features are derived and optional axes stay absent", func() {
				So(fv.AvgSentiment, ShouldAlmostEqual, 0.1, 1e-9)
				So(fv.PositiveSentences, ShouldEqual, 2)
				So(fv.NegativeSentences, ShouldEqual, 1)
				So(fv.PositiveKeywords, ShouldEqual, 4)
				So(fv.NegativeKeywords, ShouldEqual, 2)
				So(fv.AvgSentimentTwitter, ShouldBeNil)
				So(fv.AvgSentimentYouTube, ShouldBeNil)
			})
		})

		Convey("When posts and video mentions exist", func() {
			raw.Social = mention.SocialStats{NumPosts: 2, Sentiments: []float64{0.5, 0.1}}
			raw.Video = &mention.VideoStats{MentionCount: 1, Sentiments: []float64{-0.2}}
			fv := scoring.Aggregate(raw)

			So(*fv.AvgSentimentTwitter, ShouldAlmostEqual, 0.3, 1e-9)
			So(*fv.AvgSentimentYouTube, ShouldAlmostEqual, -0.2, 1e-9)
		})

		Convey("When a video only matched by title", func() {
			raw.Video = &mention.VideoStats{NumVideos: 1}
			So(scoring.Aggregate(raw).AvgSentimentYouTube, ShouldBeNil)
		})

		Convey("When every article was filtered out", func() {
			So(scoring.Aggregate(mention.RawStats{}).AvgSentiment, ShouldEqual, 0.0)
		})
	})
}

func TestComposer_Score(t *testing.T) {
	Convey("Given three clubs with positive, negative and balanced coverage", t, func() {
		vectors := []scoring.FeatureVector{
			{AvgSentiment: 0.5, PositiveSentences: 5, PositiveKeywords: 20, NegativeSentences: 0, NegativeKeywords: 1, AvgSentimentTwitter: ptr(0.4)},
			{AvgSentiment: -0.5, PositiveSentences: 0, PositiveKeywords: 1, NegativeSentences: 5, NegativeKeywords: 20},
			{AvgSentiment: 0, PositiveSentences: 2, PositiveKeywords: 10, NegativeSentences: 2, NegativeKeywords: 10, AvgSentimentTwitter: ptr(-0.4)},
		}

		Convey("When scoring the population", func() {
			res := scoring.NewComposer().Score(vectors)

			Convey("Then features are scaled onto [1,10]", func() {
				So(res.Normalized[0].Sentiment, ShouldEqual, 10.0)
				So(res.Normalized[1].Sentiment, ShouldEqual, 1.0)
				So(res.Normalized[2].Sentiment, ShouldAlmostEqual, 5.5, 1e-9)
				So(res.Normalized[0].NegativeKeywords, ShouldEqual, 1.0)
			})

			Convey("Then the composite is S+FP+KP-FN-KN", func() {
				So(res.Composite[0], ShouldAlmostEqual, 28, 1e-9)
				So(res.Composite[1], ShouldAlmostEqual, -17, 1e-9)
				So(res.Composite[2], ShouldAlmostEqual, 5.5, 1e-9)
			})

			Convey("Then impact is strictly ordered and spans [0,10]", func() {
				So(res.Impact[0], ShouldEqual, 10.0)
				So(res.Impact[1], ShouldEqual, 0.0)
				So(res.Impact[2], ShouldAlmostEqual, 5, 1e-9)
				So(res.Impact[0], ShouldBeGreaterThan, res.Impact[2])
				So(res.Impact[2], ShouldBeGreaterThan, res.Impact[1])
			})

			Convey("Then the twitter axis only covers members with posts", func() {
				So(res.Population[scoring.FeatureTwitter], ShouldEqual, 2)
				So(*res.Normalized[0].Twitter, ShouldEqual, 10.0)
				So(*res.Normalized[2].Twitter, ShouldEqual, 0.0)
				So(res.Normalized[1].Twitter, ShouldBeNil)
				So(res.Population, ShouldNotContainKey, scoring.FeatureYouTube)
			})

			Convey("Then nothing was degenerate", func() {
				So(res.Degenerate, ShouldBeEmpty)
				So(res.Population[scoring.FeatureImpact], ShouldEqual, 3)
			})
		})

		Convey("When the scores are computed twice", func() {
			a := scoring.NewComposer().Score(vectors)
			b := scoring.NewComposer().Score(vectors)
			So(a.Impact, ShouldResemble, b.Impact)
		})
	})

	Convey("Given a single scored entity", t, func() {
		res := scoring.NewComposer().Score([]scoring.FeatureVector{{AvgSentiment: 0.3, PositiveKeywords: 2}})

		Convey("Then every feature and the impact fall back to the midpoint", func() {
			So(res.Normalized[0].Sentiment, ShouldEqual, 5.5)
			So(res.Impact, ShouldResemble, []float64{5})
			So(res.Degenerate, ShouldContain, scoring.FeatureSentiment)
			So(res.Degenerate, ShouldContain, scoring.FeatureImpact)
			So(res.Degenerate, ShouldNotContain, scoring.FeatureTwitter)
		})
	})

	Convey("Given custom ranges", t, func() {
		c := scoring.NewComposer(
			scoring.WithScoreRange(scoring.Range{Min: 0, Max: 100}),
			scoring.WithFeatureRange(scoring.Range{Min: 5, Max: 5}),
		)
		res := c.Score([]scoring.FeatureVector{{AvgSentiment: 1}, {AvgSentiment: -1}})

		Convey("Then valid ranges apply and invalid ones are ignored", func() {
			So(res.Normalized[0].Sentiment, ShouldEqual, 10.0)
			So(res.Impact, ShouldResemble, []float64{100, 0})
		})
	})

	Convey("Given an empty population", t, func() {
		res := scoring.NewComposer().Score(nil)
		So(res.Impact, ShouldBeEmpty)
		So(res.Normalized, ShouldBeEmpty)
	})
}

func TestComposer_ScaleAxis(t *testing.T) {
	Convey("Given transcript sentiment for two clubs", t, func() {
		scaled, degenerate := scoring.NewComposer().ScaleAxis(map[string]float64{"arsenal": 0.8, "dover": -0.8})

		Convey("Then the axis spans [0,10]", func() {
			So(degenerate, ShouldBeFalse)
			So(scaled, ShouldResemble, map[string]float64{"arsenal": 10, "dover": 0})
		})
	})

	Convey("Given a single member", t, func() {
		scaled, degenerate := scoring.NewComposer().ScaleAxis(map[string]float64{"arsenal": 0.3})

		Convey("Then it lands on the midpoint", func() {
			So(degenerate, ShouldBeTrue)
			So(scaled["arsenal"], ShouldEqual, 5.0)
		})
	})

	Convey("Given no members", t, func() {
		scaled, degenerate := scoring.NewComposer().ScaleAxis(nil)
		So(scaled, ShouldBeEmpty)
		So(degenerate, ShouldBeFalse)
	})
}
