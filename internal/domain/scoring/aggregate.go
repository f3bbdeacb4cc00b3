package scoring

import (
	"github.com/okian/mediaimpact/internal/domain/keyword"
	"github.com/okian/mediaimpact/internal/domain/mention"
)

// FeatureVector is the unscaled signal set of one entity. The social and
// video axes are nil when the entity has no data for them.
type FeatureVector struct {
	AvgSentiment      float64
	PositiveSentences int
	PositiveKeywords  int
	NegativeSentences int
	NegativeKeywords  int

	AvgSentimentTwitter *float64
	AvgSentimentYouTube *float64
}

// Aggregate derives the feature vector of one entity. Every keyword
// occurrence and every strong sentence counts once.
func Aggregate(raw mention.RawStats) FeatureVector {
	fv := FeatureVector{
		AvgSentiment:      Mean(raw.News.Sentiments),
		PositiveSentences: raw.News.PositiveSentences,
		PositiveKeywords:  keyword.Total(raw.News.Keywords.Positive),
		NegativeSentences: raw.News.NegativeSentences,
		NegativeKeywords:  keyword.Total(raw.News.Keywords.Negative),
	}
	if len(raw.Social.Sentiments) > 0 {
		avg := Mean(raw.Social.Sentiments)
		fv.AvgSentimentTwitter = &avg
	}
	if raw.Video != nil && raw.Video.MentionCount > 0 {
		avg := Mean(raw.Video.Sentiments)
		fv.AvgSentimentYouTube = &avg
	}
	return fv
}

// Mean is the arithmetic mean of values, 0 when there are none.
func Mean(values []float64) float64 {
	if len(values) == 0 {
		return 0
	}
	sum := 0.0
	for _, v := range values {
		sum += v
	}
	return sum / float64(len(values))
}
