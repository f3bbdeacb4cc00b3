// Package mention attributes text units to the clubs and players they
// mention and accumulates per-entity raw statistics for one run.
package mention

import (
	"context"
	"sort"
	"strings"

	"github.com/okian/mediaimpact/internal/domain/dedupe"
	"github.com/okian/mediaimpact/internal/domain/keyword"
	"github.com/okian/mediaimpact/internal/domain/model"
	"github.com/okian/mediaimpact/internal/domain/sentiment"
	"github.com/okian/mediaimpact/internal/domain/tokenize"
	"github.com/okian/mediaimpact/pkg/logger"
)

// DefaultStrongThreshold is the absolute polarity above which a news
// sentence lands in a strong bucket.
const DefaultStrongThreshold = 0.6

// Skip reasons reported in stats.
const (
	SkipEmpty     = "empty"
	SkipDuplicate = "duplicate"
)

// VideoStats is the transcript presence of one entity.
type VideoStats struct {
	MentionCount int
	NumVideos    int
	VideoIDs     []string
	Sentiments   []float64
	Keywords     keyword.Counts

	sentences []string
}

// NewsStats is the article coverage of one entity.
type NewsStats struct {
	NumArticles       int
	Sentiments        []float64 // one polarity per article
	PositiveSentences int
	NegativeSentences int
	StrongPositive    []string
	StrongNegative    []string
	Keywords          keyword.Counts
	Skipped           map[string]int
}

// SocialStats is the social-media coverage of one entity.
type SocialStats struct {
	MentionCount int
	NumPosts     int
	Sentiments   []float64
	Skipped      int
}

// RawStats gathers everything extracted for one entity in a run.
type RawStats struct {
	Entity model.Entity
	News   NewsStats
	Video  *VideoStats // nil when no transcript or title touched the entity
	Social SocialStats
}

// alias maps a lowercase name occurring in text to the entity it credits.
type alias struct {
	name string
	key  string
}

// Extractor attributes text to one population of entities.
type Extractor struct {
	kind     model.Kind
	entities []model.Entity
	aliases  []alias
	titles   map[string][]string // entity key -> title match terms

	names    NameMatcher
	scorer   sentiment.Scorer
	keywords keyword.Matcher
	lexicons keyword.LexiconSet
	strong   float64
	dedupe   int
	logger   logger.Logger
}

// Option applies a configuration option to the Extractor.
type Option func(*Extractor)

// WithNameMatcher sets how entity names are located in text.
func WithNameMatcher(m NameMatcher) Option {
	return func(e *Extractor) {
		if m != nil {
			e.names = m
		}
	}
}

// WithScorer sets the sentiment scorer.
func WithScorer(s sentiment.Scorer) Option {
	return func(e *Extractor) {
		if s != nil {
			e.scorer = s
		}
	}
}

// WithKeywordMatcher sets how lexicon keywords are counted.
func WithKeywordMatcher(m keyword.Matcher) Option {
	return func(e *Extractor) {
		if m != nil {
			e.keywords = m
		}
	}
}

// WithLexicons sets the news and video keyword lexicons.
func WithLexicons(set keyword.LexiconSet) Option {
	return func(e *Extractor) {
		e.lexicons = set
	}
}

// WithStrongThreshold sets the strong sentence threshold. Values outside
// (0, 1] are ignored.
func WithStrongThreshold(t float64) Option {
	return func(e *Extractor) {
		if t > 0 && t <= 1 {
			e.strong = t
		}
	}
}

// WithDedupeMaxSize bounds the article fingerprints kept while scoring one
// entity's news. Zero or less keeps all of them.
func WithDedupeMaxSize(n int) Option {
	return func(e *Extractor) {
		e.dedupe = n
	}
}

// WithLogger sets the logger.
func WithLogger(l logger.Logger) Option {
	return func(e *Extractor) {
		if l != nil {
			e.logger = l
		}
	}
}

// NewExtractor builds an extractor for the given population. For clubs the
// roster lets a player's name credit the player's club.
func NewExtractor(kind model.Kind, entities []model.Entity, roster []model.Player, opts ...Option) *Extractor {
	e := &Extractor{
		kind:     kind,
		names:    SubstringMatcher{},
		scorer:   sentiment.NewLexiconScorer(),
		keywords: keyword.SubstringMatcher{},
		strong:   DefaultStrongThreshold,
		titles:   make(map[string][]string),
	}
	for _, opt := range opts {
		opt(e)
	}
	if e.logger == nil {
		e.logger = logger.Nop()
	}

	e.entities = append([]model.Entity(nil), entities...)
	sort.Slice(e.entities, func(i, j int) bool { return e.entities[i].Key() < e.entities[j].Key() })

	known := make(map[string]bool, len(e.entities))
	for _, ent := range e.entities {
		key := ent.Key()
		if key == "" {
			continue
		}
		known[key] = true
		e.aliases = append(e.aliases, alias{name: key, key: key})
		e.titles[key] = titleTerms(kind, key)
	}
	if kind == model.KindClub {
		players := append([]model.Player(nil), roster...)
		sort.Slice(players, func(i, j int) bool { return players[i].Name < players[j].Name })
		for _, p := range players {
			club := strings.ToLower(p.Club)
			name := strings.ToLower(strings.TrimSpace(p.Name))
			if name == "" || !known[club] {
				continue
			}
			e.aliases = append(e.aliases, alias{name: name, key: club})
		}
	}
	return e
}

func titleTerms(kind model.Kind, key string) []string {
	if kind != model.KindPlayer {
		return []string{key}
	}
	return append([]string{key}, strings.Fields(key)...)
}

// Entities returns the population in key order.
func (e *Extractor) Entities() []model.Entity {
	return append([]model.Entity(nil), e.entities...)
}

// Videos scans every transcript sentence for entity names. An entity is
// counted once per sentence even when several aliases match. NumVideos is
// incremented once per video per touched entity, after the whole video
// (transcript and title) was processed. Returns stats keyed by entity key.
func (e *Extractor) Videos(ctx context.Context, videos []model.Video) map[string]*VideoStats {
	out := make(map[string]*VideoStats)
	get := func(key string) *VideoStats {
		st, ok := out[key]
		if !ok {
			st = &VideoStats{}
			out[key] = st
		}
		return st
	}

	for _, v := range videos {
		if strings.TrimSpace(v.Transcript) == "" && strings.TrimSpace(v.Title) == "" {
			e.logger.Debug(ctx, "skipping empty video", logger.String("video_id", v.ID))
			continue
		}
		touched := make(map[string]bool)

		for _, sentence := range tokenize.Sentences(v.Transcript) {
			lower := strings.ToLower(sentence)
			var polarity *float64
			credited := make(map[string]bool)
			for _, a := range e.aliases {
				if credited[a.key] || !e.names.Contains(lower, a.name) {
					continue
				}
				if polarity == nil {
					p := e.scorer.Polarity(sentence)
					polarity = &p
				}
				credited[a.key] = true
				touched[a.key] = true
				st := get(a.key)
				st.MentionCount++
				st.Sentiments = append(st.Sentiments, *polarity)
				st.sentences = append(st.sentences, lower)
			}
		}

		title := strings.ToLower(v.Title)
		for _, ent := range e.entities {
			key := ent.Key()
			if touched[key] {
				continue
			}
			for _, term := range e.titles[key] {
				if e.names.Contains(title, term) {
					touched[key] = true
					break
				}
			}
		}

		for _, ent := range e.entities {
			key := ent.Key()
			if !touched[key] {
				continue
			}
			st := get(key)
			st.NumVideos++
			if v.ID != "" {
				st.VideoIDs = append(st.VideoIDs, v.ID)
			}
		}
	}

	for _, st := range out {
		st.Keywords = keyword.Match(e.keywords, strings.Join(st.sentences, " "), e.lexicons.Video)
		st.sentences = nil
	}
	e.logger.Debug(ctx, "videos scanned",
		logger.String("kind", string(e.kind)),
		logger.Int("videos", len(videos)),
		logger.Int("entities_touched", len(out)))
	return out
}

// News scores the articles of one entity. Articles whose text is empty
// after markup stripping, or that repeat an earlier article, are skipped.
func (e *Extractor) News(ctx context.Context, entity model.Entity, articles []model.Article) NewsStats {
	st := NewsStats{Skipped: make(map[string]int)}
	seen := dedupe.NewInMemoryDeduper(dedupe.WithMaxSize(e.dedupe))
	texts := make([]string, 0, len(articles))

	for _, a := range articles {
		text := tokenize.StripMarkup(a.Text)
		if text == "" {
			st.Skipped[SkipEmpty]++
			continue
		}
		if seen.SeenAndRecord(ctx, dedupe.Fingerprint(a.URL, text)) {
			e.logger.Debug(ctx, "skipping duplicate article",
				logger.String("entity", entity.Name),
				logger.String("url", a.URL))
			st.Skipped[SkipDuplicate]++
			continue
		}

		st.NumArticles++
		st.Sentiments = append(st.Sentiments, e.scorer.Polarity(text))
		texts = append(texts, text)

		for _, sentence := range tokenize.Sentences(text) {
			p := e.scorer.Polarity(sentence)
			switch {
			case p > e.strong:
				st.PositiveSentences++
				st.StrongPositive = append(st.StrongPositive, sentence)
			case p < -e.strong:
				st.NegativeSentences++
				st.StrongNegative = append(st.StrongNegative, sentence)
			}
		}
	}

	st.Keywords = keyword.Match(e.keywords, strings.ToLower(strings.Join(texts, " ")), e.lexicons.News)
	return st
}

// Social scores the posts collected for one entity. Posts without content
// are skipped.
func (e *Extractor) Social(record model.SocialRecord) SocialStats {
	st := SocialStats{MentionCount: record.MentionCount}
	for _, p := range record.Posts {
		text := strings.TrimSpace(p.Content)
		if text == "" {
			st.Skipped++
			continue
		}
		st.NumPosts++
		st.Sentiments = append(st.Sentiments, e.scorer.Polarity(text))
	}
	return st
}
