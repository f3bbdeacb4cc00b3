package scoring

import "sort"

// Feature names one scaled signal.
type Feature string

// Features scaled by Composer.Score.
const (
	FeatureSentiment         Feature = "sentiment_news"
	FeaturePositiveSentences Feature = "positive_sentences"
	FeaturePositiveKeywords  Feature = "positive_keywords"
	FeatureNegativeSentences Feature = "negative_sentences"
	FeatureNegativeKeywords  Feature = "negative_keywords"
	FeatureTwitter           Feature = "sentiment_twitter"
	FeatureYouTube           Feature = "sentiment_youtube"
	FeatureImpact            Feature = "impact"
)

// NormalizedVector is a FeatureVector after population scaling.
type NormalizedVector struct {
	Sentiment         float64
	PositiveSentences float64
	PositiveKeywords  float64
	NegativeSentences float64
	NegativeKeywords  float64

	Twitter *float64
}

// Result is the scaled population of one run, index-aligned with the input.
type Result struct {
	Normalized []NormalizedVector
	Composite  []float64 // before the final rescale
	Impact     []float64

	// Population holds the number of members that had a value per feature.
	Population map[Feature]int
	// Degenerate lists features whose population collapsed to the midpoint.
	Degenerate []Feature
}

// Option applies a configuration option to the Composer.
type Option func(*Composer)

// WithFeatureRange sets the interval for the composite inputs.
func WithFeatureRange(r Range) Option {
	return func(c *Composer) {
		if r.Valid() {
			c.featureRange = r
		}
	}
}

// WithAxisRange sets the interval for the social and video axes.
func WithAxisRange(r Range) Option {
	return func(c *Composer) {
		if r.Valid() {
			c.axisRange = r
		}
	}
}

// WithScoreRange sets the interval of the impact score.
func WithScoreRange(r Range) Option {
	return func(c *Composer) {
		if r.Valid() {
			c.scoreRange = r
		}
	}
}

// Composer scales a population and composes its impact scores.
type Composer struct {
	featureRange Range
	axisRange    Range
	scoreRange   Range
}

// NewComposer creates a composer with the standard intervals.
func NewComposer(opts ...Option) *Composer {
	c := &Composer{
		featureRange: FeatureRange,
		axisRange:    AxisRange,
		scoreRange:   ScoreRange,
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Score scales each feature independently over the members that have it,
// then rescales the composite onto the score range. The twitter axis is only
// scaled over members with posts and stays nil for the others. The youtube
// axis has its own population, see ScaleAxis.
func (c *Composer) Score(vectors []FeatureVector) Result {
	n := len(vectors)
	res := Result{
		Normalized: make([]NormalizedVector, n),
		Population: make(map[Feature]int),
	}
	if n == 0 {
		return res
	}

	scale := func(f Feature, r Range, get func(FeatureVector) (float64, bool), set func(*NormalizedVector, float64)) {
		var idx []int
		var values []float64
		for i, v := range vectors {
			if x, ok := get(v); ok {
				idx = append(idx, i)
				values = append(values, x)
			}
		}
		res.Population[f] = len(values)
		if len(values) == 0 {
			return
		}
		if Degenerate(values) {
			res.Degenerate = append(res.Degenerate, f)
		}
		for j, x := range Normalize(values, r) {
			set(&res.Normalized[idx[j]], x)
		}
	}
	count := func(get func(FeatureVector) int) func(FeatureVector) (float64, bool) {
		return func(v FeatureVector) (float64, bool) { return float64(get(v)), true }
	}
	optional := func(get func(FeatureVector) *float64) func(FeatureVector) (float64, bool) {
		return func(v FeatureVector) (float64, bool) {
			if p := get(v); p != nil {
				return *p, true
			}
			return 0, false
		}
	}

	scale(FeatureSentiment, c.featureRange,
		func(v FeatureVector) (float64, bool) { return v.AvgSentiment, true },
		func(nv *NormalizedVector, x float64) { nv.Sentiment = x })
	scale(FeaturePositiveSentences, c.featureRange,
		count(func(v FeatureVector) int { return v.PositiveSentences }),
		func(nv *NormalizedVector, x float64) { nv.PositiveSentences = x })
	scale(FeaturePositiveKeywords, c.featureRange,
		count(func(v FeatureVector) int { return v.PositiveKeywords }),
		func(nv *NormalizedVector, x float64) { nv.PositiveKeywords = x })
	scale(FeatureNegativeSentences, c.featureRange,
		count(func(v FeatureVector) int { return v.NegativeSentences }),
		func(nv *NormalizedVector, x float64) { nv.NegativeSentences = x })
	scale(FeatureNegativeKeywords, c.featureRange,
		count(func(v FeatureVector) int { return v.NegativeKeywords }),
		func(nv *NormalizedVector, x float64) { nv.NegativeKeywords = x })
	scale(FeatureTwitter, c.axisRange,
		optional(func(v FeatureVector) *float64 { return v.AvgSentimentTwitter }),
		func(nv *NormalizedVector, x float64) { nv.Twitter = &x })

	res.Composite = make([]float64, n)
	for i, nv := range res.Normalized {
		res.Composite[i] = Composite(nv)
	}
	res.Population[FeatureImpact] = n
	if Degenerate(res.Composite) {
		res.Degenerate = append(res.Degenerate, FeatureImpact)
	}
	res.Impact = Compose(res.Composite, c.scoreRange)
	return res
}

// ScaleAxis scales one standalone axis onto the axis range. values is keyed
// by entity and holds only members that have the axis. It also reports
// whether the population was degenerate.
func (c *Composer) ScaleAxis(values map[string]float64) (map[string]float64, bool) {
	out := make(map[string]float64, len(values))
	if len(values) == 0 {
		return out, false
	}
	keys := make([]string, 0, len(values))
	for k := range values {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	raw := make([]float64, len(keys))
	for i, k := range keys {
		raw[i] = values[k]
	}
	for i, x := range Normalize(raw, c.axisRange) {
		out[keys[i]] = x
	}
	return out, Degenerate(raw)
}

// Composite is S + FP + KP - FN - KN over a normalized vector. The social
// and video axes are reported separately and never enter the composite.
func Composite(nv NormalizedVector) float64 {
	return nv.Sentiment + nv.PositiveSentences + nv.PositiveKeywords -
		nv.NegativeSentences - nv.NegativeKeywords
}

// Compose rescales raw composites onto r.
func Compose(composites []float64, r Range) []float64 {
	return Normalize(composites, r)
}
