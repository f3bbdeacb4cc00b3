// Package sentiment maps text spans to a polarity in [-1, 1].
package sentiment

import (
	"math"

	"github.com/okian/mediaimpact/internal/domain/tokenize"
)

// Polarity bounds and the neutral value.
const (
	MinPolarity = -1.0
	MaxPolarity = 1.0
	Neutral     = 0.0

	negationFactor  = -0.5
	negationReach   = 3 // words a negation can look ahead
	maxIntensifiers = 2
)

// Scorer maps a text span to a polarity. Implementations must be
// deterministic and must return Neutral for empty or unscorable text.
type Scorer interface {
	Polarity(text string) float64
}

// Option applies a configuration option to the LexiconScorer.
type Option func(*LexiconScorer)

// WithLexicon replaces the word polarities. Values are clamped to [-1, 1].
func WithLexicon(lexicon map[string]float64) Option {
	return func(s *LexiconScorer) {
		if len(lexicon) == 0 {
			return
		}
		s.lexicon = make(map[string]float64, len(lexicon))
		for w, p := range lexicon {
			s.lexicon[w] = clamp(p)
		}
	}
}

// WithOverrides merges extra word polarities on top of the current lexicon.
func WithOverrides(overrides map[string]float64) Option {
	return func(s *LexiconScorer) {
		for w, p := range overrides {
			s.lexicon[w] = clamp(p)
		}
	}
}

// LexiconScorer averages the polarity of the evaluative words in a span.
// A preceding intensifier scales a word, a negation within a short window
// flips and halves it.
type LexiconScorer struct {
	lexicon      map[string]float64
	intensifiers map[string]float64
	negations    map[string]struct{}
}

// NewLexiconScorer creates a scorer with the built-in English lexicon.
func NewLexiconScorer(opts ...Option) *LexiconScorer {
	s := &LexiconScorer{
		lexicon:      DefaultLexicon(),
		intensifiers: defaultIntensifiers,
		negations:    defaultNegations,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Polarity returns the mean polarity of the evaluative words in text, or
// Neutral when there are none.
func (s *LexiconScorer) Polarity(text string) float64 {
	words := tokenize.Words(text)
	if len(words) == 0 {
		return Neutral
	}

	var sum float64
	var n int
	for i, w := range words {
		p, ok := s.lexicon[w]
		if !ok {
			continue
		}
		p *= s.intensity(words, i)
		if s.negated(words, i) {
			p *= negationFactor
		}
		sum += clamp(p)
		n++
	}
	if n == 0 {
		return Neutral
	}

	avg := sum / float64(n)
	if math.IsNaN(avg) {
		return Neutral
	}
	return clamp(avg)
}

// intensity multiplies the intensifiers directly before words[i].
func (s *LexiconScorer) intensity(words []string, i int) float64 {
	factor := 1.0
	for k := 1; k <= maxIntensifiers && i-k >= 0; k++ {
		m, ok := s.intensifiers[words[i-k]]
		if !ok {
			break
		}
		factor *= m
	}
	return factor
}

// negated reports whether a negation appears shortly before words[i]
// without another evaluative word in between.
func (s *LexiconScorer) negated(words []string, i int) bool {
	for k := 1; k <= negationReach && i-k >= 0; k++ {
		w := words[i-k]
		if _, ok := s.negations[w]; ok {
			return true
		}
		if _, ok := s.lexicon[w]; ok {
			return false
		}
	}
	return false
}

func clamp(v float64) float64 {
	return math.Max(MinPolarity, math.Min(MaxPolarity, v))
}
