package mention

import (
	"errors"
	"fmt"
	"strings"
	"unicode"
	"unicode/utf8"
)

// Name matcher names accepted by NewNameMatcher.
const (
	NameMatchSubstring = "substring"
	NameMatchWord      = "word"
)

// ErrUnknownNameMatcher is returned by NewNameMatcher for an unsupported name.
var ErrUnknownNameMatcher = errors.New("unknown name matcher")

// NameMatcher decides whether a lowercase text mentions a lowercase name.
type NameMatcher interface {
	Contains(text, name string) bool
}

// NewNameMatcher returns the matcher registered under name.
func NewNameMatcher(name string) (NameMatcher, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "", NameMatchSubstring:
		return SubstringMatcher{}, nil
	case NameMatchWord:
		return WordMatcher{}, nil
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownNameMatcher, name)
	}
}

// SubstringMatcher matches names anywhere in the text, including inside
// longer words ("son" matches "season").
type SubstringMatcher struct{}

// Contains implements NameMatcher.
func (SubstringMatcher) Contains(text, name string) bool {
	return name != "" && strings.Contains(text, name)
}

// WordMatcher only matches names delimited by non-alphanumeric runes.
type WordMatcher struct{}

// Contains implements NameMatcher.
func (WordMatcher) Contains(text, name string) bool {
	if name == "" {
		return false
	}
	offset := 0
	for {
		i := strings.Index(text[offset:], name)
		if i < 0 {
			return false
		}
		start := offset + i
		end := start + len(name)
		if boundaryBefore(text, start) && boundaryAfter(text, end) {
			return true
		}
		_, size := utf8.DecodeRuneInString(text[start:])
		offset = start + size
	}
}

func boundaryBefore(text string, i int) bool {
	if i == 0 {
		return true
	}
	r, _ := utf8.DecodeLastRuneInString(text[:i])
	return !isWordRune(r)
}

func boundaryAfter(text string, i int) bool {
	if i >= len(text) {
		return true
	}
	r, _ := utf8.DecodeRuneInString(text[i:])
	return !isWordRune(r)
}

func isWordRune(r rune) bool {
	return unicode.IsLetter(r) || unicode.IsDigit(r)
}
