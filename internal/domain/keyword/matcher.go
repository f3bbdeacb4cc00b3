// Package keyword counts positive and negative lexicon phrases in text.
package keyword

import (
	"errors"
	"fmt"
	"strings"

	"github.com/okian/mediaimpact/internal/domain/tokenize"
)

// Matcher names accepted by NewMatcher.
const (
	MatchSubstring = "substring"
	MatchToken     = "token"
)

// ErrUnknownMatcher is returned by NewMatcher for an unsupported name.
var ErrUnknownMatcher = errors.New("unknown keyword matcher")

// Matcher counts keyword occurrences in a text blob. The returned map only
// holds keywords that occur at least once.
type Matcher interface {
	Count(text string, keywords []string) map[string]int
}

// NewMatcher returns the matcher registered under name.
func NewMatcher(name string) (Matcher, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "", MatchSubstring:
		return SubstringMatcher{}, nil
	case MatchToken:
		return TokenMatcher{}, nil
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownMatcher, name)
	}
}

// SubstringMatcher counts case-insensitive, non-overlapping literal
// occurrences. Keywords inside longer words count: "error" matches "errors".
type SubstringMatcher struct{}

// Count implements Matcher.
func (SubstringMatcher) Count(text string, keywords []string) map[string]int {
	lower := strings.ToLower(text)
	out := make(map[string]int)
	for _, k := range keywords {
		k = strings.ToLower(k)
		if k == "" {
			continue
		}
		if n := strings.Count(lower, k); n > 0 {
			out[k] = n
		}
	}
	return out
}

// TokenMatcher only counts whole tokens: single-word keywords must equal a
// token and multi-word keywords must match a run of consecutive tokens.
type TokenMatcher struct{}

// Count implements Matcher.
func (TokenMatcher) Count(text string, keywords []string) map[string]int {
	tokens := tokenize.Words(text)
	out := make(map[string]int)
	for _, k := range keywords {
		phrase := tokenize.Words(k)
		if len(phrase) == 0 {
			continue
		}
		if n := countPhrase(tokens, phrase); n > 0 {
			out[strings.ToLower(k)] = n
		}
	}
	return out
}

func countPhrase(tokens, phrase []string) int {
	n := 0
	for i := 0; i+len(phrase) <= len(tokens); i++ {
		match := true
		for j, p := range phrase {
			if tokens[i+j] != p {
				match = false
				break
			}
		}
		if match {
			n++
			i += len(phrase) - 1
		}
	}
	return n
}

// Counts holds the positive and negative keyword occurrences of a text.
type Counts struct {
	Positive map[string]int
	Negative map[string]int
}

// Match counts both sides of lexicon in text.
func Match(m Matcher, text string, lexicon Lexicon) Counts {
	return Counts{
		Positive: m.Count(text, lexicon.Positive),
		Negative: m.Count(text, lexicon.Negative),
	}
}

// Total sums the occurrence counts of a keyword map.
func Total(counts map[string]int) int {
	total := 0
	for _, n := range counts {
		total += n
	}
	return total
}
