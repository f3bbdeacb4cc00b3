// Package tokenize splits raw article, post and transcript text into the
// sentence and word units the scoring pipeline works on.
package tokenize

import (
	"strings"
	"unicode"

	"github.com/PuerkitoBio/goquery"
)

// abbreviations never end a sentence even when followed by a capital.
var abbreviations = map[string]struct{}{ //nolint:gochecknoglobals // read-only table
	"mr": {}, "mrs": {}, "ms": {}, "dr": {}, "st": {}, "vs": {}, "v": {},
	"jr": {}, "sr": {}, "fc": {}, "no": {}, "etc": {}, "e.g": {}, "i.e": {},
	"utd": {}, "u.s": {}, "u.k": {},
}

// Sentences splits text on terminal punctuation followed by whitespace.
// Decimal numbers ("2.5") and common abbreviations ("Mr.", "vs.") do not
// terminate a sentence. Empty fragments are dropped and each sentence is
// trimmed.
func Sentences(text string) []string {
	runes := []rune(text)
	var out []string
	start := 0

	for i := 0; i < len(runes); i++ {
		r := runes[i]
		if r == '\n' && i+1 < len(runes) && runes[i+1] == '\n' {
			out = appendSentence(out, runes[start:i])
			start = i + 1
			continue
		}
		if r != '.' && r != '!' && r != '?' {
			continue
		}
		// absorb runs like "?!" or "..." and closing quotes
		j := i + 1
		for j < len(runes) && (runes[j] == '.' || runes[j] == '!' || runes[j] == '?' || runes[j] == '"' || runes[j] == '\'' || runes[j] == ')') {
			j++
		}
		if j < len(runes) && !unicode.IsSpace(runes[j]) {
			continue
		}
		if r == '.' && j == i+1 && isAbbreviation(runes[start:i], runes[j:]) {
			continue
		}
		out = appendSentence(out, runes[start:j])
		start = j
		i = j - 1
	}
	return appendSentence(out, runes[start:])
}

func appendSentence(out []string, rs []rune) []string {
	s := strings.TrimSpace(string(rs))
	if s == "" {
		return out
	}
	return append(out, s)
}

// openers start sentences often enough that a capital letter before them
// is read as the end of a sentence rather than an initial.
var openers = map[string]struct{}{ //nolint:gochecknoglobals // read-only table
	"a": {}, "an": {}, "the": {}, "then": {}, "but": {}, "and": {}, "so": {},
	"it": {}, "he": {}, "she": {}, "they": {}, "we": {}, "i": {}, "this": {},
	"that": {}, "there": {}, "in": {}, "on": {}, "at": {}, "after": {},
	"when": {}, "what": {}, "now": {}, "still": {}, "yet": {},
}

// isAbbreviation reports whether the word right before a period is a known
// abbreviation, or a capital initial followed by a capitalised name.
func isAbbreviation(before, after []rune) bool {
	k := len(before)
	for k > 0 && !unicode.IsSpace(before[k-1]) {
		k--
	}
	word := strings.TrimLeft(string(before[k:]), "(\"'")
	if word == "" {
		return false
	}
	if _, ok := abbreviations[strings.ToLower(word)]; ok {
		return true
	}
	w := []rune(word)
	return len(w) == 1 && unicode.IsUpper(w[0]) && nameFollows(after)
}

// nameFollows reports whether the next word is capitalised and not a common
// sentence opener.
func nameFollows(after []rune) bool {
	next := strings.Fields(string(after))
	if len(next) == 0 {
		return false
	}
	first := []rune(next[0])
	if !unicode.IsUpper(first[0]) {
		return false
	}
	_, opener := openers[strings.ToLower(strings.TrimRight(next[0], ".,;:!?'\""))]
	return !opener
}

// Words returns the lowercase word tokens of text. Apostrophes and hyphens
// inside a word are kept ("world-class", "didn't").
func Words(text string) []string {
	lower := strings.ToLower(text)
	fields := strings.FieldsFunc(lower, func(r rune) bool {
		return !unicode.IsLetter(r) && !unicode.IsDigit(r) && r != '\'' && r != '-'
	})
	out := fields[:0]
	for _, f := range fields {
		f = strings.Trim(f, "'-")
		if f != "" {
			out = append(out, f)
		}
	}
	return out
}

// StripMarkup returns the visible text of an HTML fragment. Plain text is
// returned with whitespace collapsed. It never fails: unparsable input comes
// back unchanged.
func StripMarkup(text string) string {
	if !strings.ContainsRune(text, '<') {
		return collapseSpace(text)
	}
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(text))
	if err != nil {
		return collapseSpace(text)
	}
	doc.Find("script, style, noscript, iframe").Remove()
	// keep paragraph boundaries visible to the sentence splitter
	doc.Find("p, br, li, h1, h2, h3, h4, div").Each(func(_ int, s *goquery.Selection) {
		s.AppendHtml("\n\n")
	})
	return collapseSpace(doc.Text())
}

// collapseSpace squeezes runs of spaces and tabs while keeping paragraph
// breaks as a blank line.
func collapseSpace(s string) string {
	paragraphs := strings.Split(strings.ReplaceAll(s, "\r\n", "\n"), "\n\n")
	kept := paragraphs[:0]
	for _, p := range paragraphs {
		p = strings.Join(strings.Fields(p), " ")
		if p != "" {
			kept = append(kept, p)
		}
	}
	return strings.Join(kept, "\n\n")
}
