package service

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/okian/mediaimpact/internal/domain/mention"
	"github.com/okian/mediaimpact/internal/domain/model"
	"github.com/okian/mediaimpact/internal/domain/scoring"
	"github.com/okian/mediaimpact/internal/domain/types"
	"github.com/okian/mediaimpact/pkg/logger"
)

// Exclusion reasons reported to metrics.
const (
	excludedNoNews      = "no_news"
	excludedLoadFailure = "load_error"
)

// population is one kind's entities plus the roster used for club aliases.
type population struct {
	entities []model.Entity
	roster   []model.Player
	clubs    map[string][]string // club key -> player names
}

func (s *Service) loadPopulation(ctx context.Context, kind model.Kind) (population, error) {
	players, err := s.store.Players(ctx)
	if err != nil {
		return population{}, fmt.Errorf("%w: players: %v", ErrLoadPopulation, err)
	}
	pop := population{roster: players, clubs: make(map[string][]string)}
	for _, p := range players {
		key := strings.ToLower(p.Club)
		pop.clubs[key] = append(pop.clubs[key], p.Name)
	}

	switch kind {
	case model.KindClub:
		clubs, err := s.store.Clubs(ctx)
		if err != nil {
			return population{}, fmt.Errorf("%w: clubs: %v", ErrLoadPopulation, err)
		}
		for _, c := range clubs {
			pop.entities = append(pop.entities, model.Entity{Name: c.Name, Kind: kind, Photo: c.Logo})
		}
	case model.KindPlayer:
		for _, p := range players {
			pop.entities = append(pop.entities, model.Entity{
				Name: p.Name, Kind: kind, Affiliation: p.Club, Photo: p.Photo,
			})
		}
	default:
		return population{}, fmt.Errorf("%w: unknown kind %q", ErrLoadPopulation, kind)
	}
	return pop, nil
}

func (s *Service) extractor(kind model.Kind, pop population) *mention.Extractor {
	return mention.NewExtractor(kind, pop.entities, pop.roster,
		mention.WithNameMatcher(s.names),
		mention.WithScorer(s.scorer),
		mention.WithKeywordMatcher(s.keywords),
		mention.WithLexicons(s.lexicons[kind]),
		mention.WithStrongThreshold(s.strong),
		mention.WithDedupeMaxSize(s.dedupe),
		mention.WithLogger(s.logger.Named(string(kind))),
	)
}

func (s *Service) runKind(ctx context.Context, runID string, kind model.Kind) (KindReport, error) {
	kr := KindReport{Kind: kind}
	label := string(kind)

	pop, err := s.loadPopulation(ctx, kind)
	if err != nil {
		return kr, err
	}
	kr.Loaded = len(pop.entities)
	s.metrics.UpdateEntitiesLoaded(label, kr.Loaded)

	ex := s.extractor(kind, pop)

	videos, err := s.store.Videos(ctx)
	if err != nil {
		s.logger.Warn(ctx, "videos unavailable, scoring without transcripts",
			logger.String("kind", label), logger.Error(err))
		videos = nil
	}
	blank := 0
	for _, v := range videos {
		if strings.TrimSpace(v.Transcript) == "" && strings.TrimSpace(v.Title) == "" {
			blank++
		}
	}
	s.metrics.AddUnits(string(model.SourceVideo), len(videos)-blank, map[string]int{mention.SkipEmpty: blank})
	videoStats := ex.Videos(ctx, videos)
	youtube := s.youtubeAxis(label, videoStats)

	var raws []mention.RawStats
	for _, ent := range ex.Entities() {
		if err := ctx.Err(); err != nil {
			return kr, err
		}
		raw, ok := s.extract(ctx, ex, ent)
		if !ok {
			kr.Excluded++
			continue
		}
		raw.Video = videoStats[ent.Key()]
		raws = append(raws, raw)
	}

	vectors := make([]scoring.FeatureVector, len(raws))
	for i, raw := range raws {
		vectors[i] = scoring.Aggregate(raw)
	}
	res := s.composer.Score(vectors)
	for f, n := range res.Population {
		s.metrics.UpdatePopulation(label, string(f), n)
	}
	for _, f := range res.Degenerate {
		s.metrics.RecordDegenerateNormalization(label, string(f))
	}

	computedAt := s.now().UTC()
	entries := make([]types.Entry, 0, len(raws))
	for i, raw := range raws {
		doc := s.document(raw, vectors[i], res.Normalized[i], youtube[raw.Entity.Key()], res.Impact[i], pop)
		doc.RunID = runID
		doc.ComputedAt = computedAt
		kr.Scored++
		s.metrics.RecordEntityScored(label)

		start := time.Now()
		err := s.store.UpsertInsight(ctx, kind, doc)
		s.metrics.RecordPersist(label, time.Since(start), err)
		if err != nil {
			kr.Failed++
			s.logger.Error(ctx, "failed to persist insight",
				logger.String("kind", label),
				logger.String("entity", doc.Name),
				logger.Error(err))
			continue
		}
		kr.Persisted++
		entries = append(entries, types.Entry{Name: doc.Name, Affiliation: doc.Affiliation, Score: doc.ImpactScore})
	}
	kr.Ranking = types.Rank(entries)

	s.logger.Info(ctx, "population scored",
		logger.String("kind", label),
		logger.Int("loaded", kr.Loaded),
		logger.Int("scored", kr.Scored),
		logger.Int("excluded", kr.Excluded),
		logger.Int("failed", kr.Failed))
	return kr, nil
}

// youtubeAxis scales transcript sentiment over every entity with a video
// mention, whether or not it ends up scored.
func (s *Service) youtubeAxis(kind string, stats map[string]*mention.VideoStats) map[string]float64 {
	raw := make(map[string]float64, len(stats))
	for key, st := range stats {
		if st.MentionCount > 0 {
			raw[key] = scoring.Mean(st.Sentiments)
		}
	}
	scaled, degenerate := s.composer.ScaleAxis(raw)
	s.metrics.UpdatePopulation(kind, string(scoring.FeatureYouTube), len(raw))
	if degenerate {
		s.metrics.RecordDegenerateNormalization(kind, string(scoring.FeatureYouTube))
	}
	return scaled
}

// extract gathers news and social coverage for one entity. It reports false
// when the entity has no usable news and must be left out of the run.
func (s *Service) extract(ctx context.Context, ex *mention.Extractor, ent model.Entity) (mention.RawStats, bool) {
	label := string(ent.Kind)

	articles, err := s.store.Articles(ctx, ent.Kind, ent.Name)
	if err != nil {
		s.logger.Warn(ctx, "articles unavailable, excluding entity",
			logger.String("entity", ent.Name), logger.Error(err))
		s.metrics.RecordEntityExcluded(label, excludedLoadFailure)
		return mention.RawStats{}, false
	}
	news := ex.News(ctx, ent, articles)
	s.metrics.AddUnits(string(model.SourceNews), news.NumArticles, news.Skipped)
	if news.NumArticles == 0 {
		s.logger.Debug(ctx, "no news, excluding entity", logger.String("entity", ent.Name))
		s.metrics.RecordEntityExcluded(label, excludedNoNews)
		return mention.RawStats{}, false
	}

	record, err := s.store.Social(ctx, ent.Name)
	if err != nil {
		s.logger.Warn(ctx, "social posts unavailable",
			logger.String("entity", ent.Name), logger.Error(err))
		record = model.SocialRecord{}
	}
	social := ex.Social(record)
	s.metrics.AddUnits(string(model.SourceSocial), social.NumPosts, map[string]int{mention.SkipEmpty: social.Skipped})

	return mention.RawStats{Entity: ent, News: news, Social: social}, true
}

// document builds the persisted insight of one scored entity. Averages keep
// three decimals; scaled values keep two.
func (s *Service) document(raw mention.RawStats, fv scoring.FeatureVector, nv scoring.NormalizedVector, youtube, impact float64, pop population) model.Insight {
	ent := raw.Entity
	doc := model.Insight{
		Name:        ent.Name,
		Kind:        ent.Kind,
		Affiliation: ent.Affiliation,
		Photo:       ent.Photo,

		NumArticles:             raw.News.NumArticles,
		AvgSentimentNews:        model.Round(fv.AvgSentiment, 3),
		NormalizedSentimentNews: model.Round(nv.Sentiment, 2),
		CountPositiveSentences:  raw.News.PositiveSentences,
		CountNegativeSentences:  raw.News.NegativeSentences,
		PositiveKeywordCounts:   nonNil(raw.News.Keywords.Positive),
		NegativeKeywordCounts:   nonNil(raw.News.Keywords.Negative),
		StrongPositiveSentences: append([]string{}, raw.News.StrongPositive...),
		StrongNegativeSentences: append([]string{}, raw.News.StrongNegative...),

		ImpactScore: model.Round(impact, 2),
	}

	if ent.Kind == model.KindClub {
		names := pop.clubs[ent.Key()]
		doc.NumPlayers = len(names)
		doc.PlayerNames = append([]string(nil), names...)
		doc.Twitter = &model.TwitterSummary{
			MentionCount: raw.Social.MentionCount,
			NumPosts:     raw.Social.NumPosts,
		}
	}

	if v := raw.Video; v != nil {
		doc.YouTube = model.YouTubeSummary{
			MentionCount: v.MentionCount,
			NumVideos:    v.NumVideos,
			VideoIDs:     append([]string(nil), v.VideoIDs...),
		}
		if fv.AvgSentimentYouTube != nil {
			doc.YouTube.AvgSentimentYouTube = model.Ptr(model.Round(*fv.AvgSentimentYouTube, 3))
			doc.YouTube.NormalizedSentimentYouTube = model.Ptr(model.Round(youtube, 2))
			doc.YouTube.PositiveKeywordCounts = nonNil(v.Keywords.Positive)
			doc.YouTube.NegativeKeywordCounts = nonNil(v.Keywords.Negative)
		}
	}

	if fv.AvgSentimentTwitter != nil && nv.Twitter != nil {
		doc.AvgSentimentTwitter = model.Ptr(model.Round(*fv.AvgSentimentTwitter, 3))
		doc.NormalizedSentimentTwitter = model.Ptr(model.Round(*nv.Twitter, 2))
	}
	return doc
}

func nonNil(m map[string]int) map[string]int {
	if m == nil {
		return map[string]int{}
	}
	return m
}
