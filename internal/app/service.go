// Package service runs the media impact pipeline: it loads each entity
// population, extracts and scores its coverage, and persists one insight
// document per scored entity.
package service

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	repository "github.com/okian/mediaimpact/internal/adapters/repository"
	"github.com/okian/mediaimpact/internal/domain/keyword"
	"github.com/okian/mediaimpact/internal/domain/mention"
	"github.com/okian/mediaimpact/internal/domain/model"
	"github.com/okian/mediaimpact/internal/domain/scoring"
	"github.com/okian/mediaimpact/internal/domain/sentiment"
	"github.com/okian/mediaimpact/internal/domain/types"
	"github.com/okian/mediaimpact/pkg/logger"
	"github.com/okian/mediaimpact/pkg/metrics"
)

// Store is what a run reads from and writes to.
type Store interface {
	repository.Source
	repository.Sink
}

// Service runs the scoring pipeline over a store.
type Service struct {
	store Store

	// Pipeline components
	kinds    []model.Kind
	scorer   sentiment.Scorer
	keywords keyword.Matcher
	names    mention.NameMatcher
	lexicons map[model.Kind]keyword.LexiconSet
	strong   float64
	dedupe   int
	composer *scoring.Composer

	// Run identity
	now   func() time.Time
	runID func() string

	metrics *metrics.Manager
	logger  logger.Logger
}

// Option applies a configuration option to the Service.
type Option func(*Service)

// WithKinds sets which entity kinds are scored and in which order.
func WithKinds(kinds ...model.Kind) Option {
	return func(s *Service) {
		if len(kinds) > 0 {
			s.kinds = kinds
		}
	}
}

// WithScorer sets the sentiment scorer.
func WithScorer(scorer sentiment.Scorer) Option {
	return func(s *Service) {
		if scorer != nil {
			s.scorer = scorer
		}
	}
}

// WithKeywordMatcher sets how lexicon keywords are counted.
func WithKeywordMatcher(m keyword.Matcher) Option {
	return func(s *Service) {
		if m != nil {
			s.keywords = m
		}
	}
}

// WithNameMatcher sets how entity names are found in text.
func WithNameMatcher(m mention.NameMatcher) Option {
	return func(s *Service) {
		if m != nil {
			s.names = m
		}
	}
}

// WithLexicons sets the keyword lexicons for one kind.
func WithLexicons(kind model.Kind, set keyword.LexiconSet) Option {
	return func(s *Service) {
		s.lexicons[kind] = set
	}
}

// WithStrongThreshold sets the strong sentence threshold.
func WithStrongThreshold(t float64) Option {
	return func(s *Service) {
		if t > 0 && t <= 1 {
			s.strong = t
		}
	}
}

// WithDedupeMaxSize bounds the article fingerprints remembered per entity.
func WithDedupeMaxSize(n int) Option {
	return func(s *Service) {
		if n >= 0 {
			s.dedupe = n
		}
	}
}

// WithComposer sets the population scaler.
func WithComposer(c *scoring.Composer) Option {
	return func(s *Service) {
		if c != nil {
			s.composer = c
		}
	}
}

// WithMetrics sets the metrics manager. Defaults to the global one.
func WithMetrics(m *metrics.Manager) Option {
	return func(s *Service) {
		if m != nil {
			s.metrics = m
		}
	}
}

// WithLogger sets a custom logger for the service.
func WithLogger(l logger.Logger) Option {
	return func(s *Service) {
		if l != nil {
			s.logger = l
		}
	}
}

// WithClock sets the time source stamped on documents.
func WithClock(now func() time.Time) Option {
	return func(s *Service) {
		if now != nil {
			s.now = now
		}
	}
}

// WithRunIDs sets the run identifier generator.
func WithRunIDs(next func() string) Option {
	return func(s *Service) {
		if next != nil {
			s.runID = next
		}
	}
}

// New constructs a Service with default configuration.
func New(store Store, opts ...Option) *Service {
	s := &Service{
		store:    store,
		kinds:    model.Kinds(),
		scorer:   sentiment.NewLexiconScorer(),
		keywords: keyword.SubstringMatcher{},
		names:    mention.SubstringMatcher{},
		lexicons: map[model.Kind]keyword.LexiconSet{
			model.KindClub:   {News: keyword.ClubNews(), Video: keyword.Video()},
			model.KindPlayer: {News: keyword.PlayerNews(), Video: keyword.Video()},
		},
		strong:   mention.DefaultStrongThreshold,
		composer: scoring.NewComposer(),
		now:      time.Now,
		runID:    func() string { return uuid.NewString() },
		metrics:  metrics.Default(),
	}
	for _, opt := range opts {
		opt(s)
	}
	if s.logger == nil {
		s.logger = logger.Nop()
	}
	return s
}

// KindReport summarises one population of a run.
type KindReport struct {
	Kind      model.Kind
	Loaded    int
	Scored    int
	Excluded  int
	Persisted int
	Failed    int
	Ranking   []types.Entry
}

// Report summarises a run.
type Report struct {
	RunID     string
	StartedAt time.Time
	Duration  time.Duration
	Kinds     []KindReport
}

// Failed is the number of documents that could not be persisted.
func (r Report) Failed() int {
	n := 0
	for _, k := range r.Kinds {
		n += k.Failed
	}
	return n
}

// Run executes the pipeline once for every configured kind. Persistence
// failures are logged and counted in the report; only a population that
// cannot be loaded aborts the run.
func (s *Service) Run(ctx context.Context) (Report, error) {
	report := Report{RunID: s.runID(), StartedAt: s.now().UTC()}
	start := time.Now()

	err := s.run(ctx, &report)
	report.Duration = time.Since(start)
	s.metrics.ObserveRun(report.Duration, err)

	if err != nil {
		s.logger.Error(ctx, "pipeline run failed",
			logger.String("run_id", report.RunID),
			logger.Error(err))
		return report, err
	}
	s.logger.Info(ctx, "pipeline run finished",
		logger.String("run_id", report.RunID),
		logger.Duration("duration", report.Duration),
		logger.Int("failed_writes", report.Failed()))
	return report, nil
}

func (s *Service) run(ctx context.Context, report *Report) error {
	if s.store == nil {
		return ErrNoStore
	}
	s.logger.Info(ctx, "pipeline run started",
		logger.String("run_id", report.RunID),
		logger.Any("kinds", s.kinds))

	for _, kind := range s.kinds {
		if err := ctx.Err(); err != nil {
			return err
		}
		kr, err := s.runKind(ctx, report.RunID, kind)
		if err != nil {
			return fmt.Errorf("%s: %w", kind, err)
		}
		report.Kinds = append(report.Kinds, kr)
	}
	return nil
}
