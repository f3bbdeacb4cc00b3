// Package config defines process configuration and its loading hooks.
//
// Conventions:
// - Defaults live in New; Load layers a YAML file and env vars on top.
// - Validation errors wrap ErrInvalidConfig, loading errors ErrLoadConfig.
package config

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/okian/mediaimpact/internal/domain/keyword"
	"github.com/okian/mediaimpact/internal/domain/mention"
	"github.com/okian/mediaimpact/internal/domain/model"
)

// LexiconConfig overrides the built-in keyword lexicons.
type LexiconConfig struct {
	ClubNews   keyword.Lexicon `koanf:"club_news"`
	PlayerNews keyword.Lexicon `koanf:"player_news"`
	Video      keyword.Lexicon `koanf:"video"`
}

// Config contains process configuration.
type Config struct {
	// LogLevel controls verbosity: debug, info, warn, error.
	LogLevel string `koanf:"log_level"`
	// LogFormat is text or json.
	LogFormat string `koanf:"log_format"`

	// StoreDriver selects the backend: sqlite, mongo or memory.
	StoreDriver    string `koanf:"store_driver"`
	SQLitePath     string `koanf:"sqlite_path"`
	MongoURI       string `koanf:"mongo_uri"`
	MongoDatabase  string `koanf:"mongo_database"`
	MongoTimeoutMS int    `koanf:"mongo_timeout_ms"`

	// Kinds is a comma separated list of entity kinds to score, in order.
	Kinds string `koanf:"kinds"`

	// KeywordMatch is substring or token; NameMatch is substring or word.
	KeywordMatch string `koanf:"keyword_match"`
	NameMatch    string `koanf:"name_match"`

	// StrongThreshold is the absolute polarity of a strong news sentence.
	StrongThreshold float64 `koanf:"strong_threshold"`

	// SentimentOverrides adds or replaces word polarities of the scorer.
	SentimentOverrides map[string]float64 `koanf:"sentiment_overrides"`

	// DedupeMaxSize bounds the article fingerprints remembered per entity.
	// Zero keeps every fingerprint.
	DedupeMaxSize int `koanf:"dedupe_max_size"`

	// MetricsTextfile, when set, receives the run metrics in text format.
	MetricsTextfile  string            `koanf:"metrics_textfile"`
	MetricsEnabled   bool              `koanf:"metrics_enabled"`
	MetricsNamespace string            `koanf:"metrics_namespace"`
	MetricsLabels    map[string]string `koanf:"metrics_labels"`
	// Histogram buckets: run duration in seconds, document writes in ms.
	MetricsRunBuckets     []float64 `koanf:"metrics_run_buckets_s"`
	MetricsPersistBuckets []float64 `koanf:"metrics_persist_buckets_ms"`

	Lexicons LexiconConfig `koanf:"lexicons"`
}

// New creates a Config with defaults.
func New(_ context.Context) *Config {
	return &Config{
		LogLevel:         "info",
		LogFormat:        "text",
		StoreDriver:      "sqlite",
		SQLitePath:       "media_impact.db",
		MongoURI:         "mongodb://localhost:27017",
		MongoDatabase:    "media_impact_db",
		MongoTimeoutMS:   10_000,
		Kinds:            "club,player",
		KeywordMatch:     keyword.MatchSubstring,
		NameMatch:        mention.NameMatchSubstring,
		StrongThreshold:  0.6,
		MetricsEnabled:   true,
		MetricsNamespace: "media_impact",
	}
}

// Validate checks value ranges and required fields.
func (c *Config) Validate() error {
	switch strings.ToLower(c.LogFormat) {
	case "text", "json":
	default:
		return fmt.Errorf("%w: log_format %q", ErrInvalidConfig, c.LogFormat)
	}
	switch strings.ToLower(c.StoreDriver) {
	case "sqlite":
		if c.SQLitePath == "" {
			return fmt.Errorf("%w: sqlite_path must not be empty", ErrInvalidConfig)
		}
	case "mongo":
		if c.MongoURI == "" || c.MongoDatabase == "" {
			return fmt.Errorf("%w: mongo_uri and mongo_database are required", ErrInvalidConfig)
		}
	case "memory":
	default:
		return fmt.Errorf("%w: store_driver %q", ErrInvalidConfig, c.StoreDriver)
	}
	if _, err := keyword.NewMatcher(c.KeywordMatch); err != nil {
		return fmt.Errorf("%w: keyword_match: %v", ErrInvalidConfig, err)
	}
	if _, err := mention.NewNameMatcher(c.NameMatch); err != nil {
		return fmt.Errorf("%w: name_match: %v", ErrInvalidConfig, err)
	}
	if c.MongoTimeoutMS <= 0 {
		return fmt.Errorf("%w: mongo_timeout_ms must be positive", ErrInvalidConfig)
	}
	if c.StrongThreshold <= 0 || c.StrongThreshold > 1 {
		return fmt.Errorf("%w: strong_threshold must be in (0, 1]", ErrInvalidConfig)
	}
	if c.DedupeMaxSize < 0 {
		return fmt.Errorf("%w: dedupe_max_size must not be negative", ErrInvalidConfig)
	}
	if !increasing(c.MetricsRunBuckets) {
		return fmt.Errorf("%w: metrics_run_buckets_s must be positive and increasing", ErrInvalidConfig)
	}
	if !increasing(c.MetricsPersistBuckets) {
		return fmt.Errorf("%w: metrics_persist_buckets_ms must be positive and increasing", ErrInvalidConfig)
	}
	for name := range c.MetricsLabels {
		if !labelName(name) {
			return fmt.Errorf("%w: metrics_labels: invalid label %q", ErrInvalidConfig, name)
		}
	}
	if _, err := c.EntityKinds(); err != nil {
		return err
	}
	return nil
}

// labelName reports whether s is a valid Prometheus label name.
func labelName(s string) bool {
	if s == "" || strings.HasPrefix(s, "__") {
		return false
	}
	for i, r := range s {
		letter := r == '_' || (r >= 'a' && r <= 'z') || (r >= 'A' && r <= 'Z')
		if !letter && (i == 0 || r < '0' || r > '9') {
			return false
		}
	}
	return true
}

// increasing reports whether buckets are positive and strictly increasing.
// An empty list means the built-in buckets.
func increasing(buckets []float64) bool {
	prev := 0.0
	for _, b := range buckets {
		if b <= prev {
			return false
		}
		prev = b
	}
	return true
}

// EntityKinds parses Kinds. Duplicates are dropped, order is kept.
func (c *Config) EntityKinds() ([]model.Kind, error) {
	var out []model.Kind
	seen := make(map[model.Kind]bool)
	for _, part := range strings.Split(c.Kinds, ",") {
		k := model.Kind(strings.ToLower(strings.TrimSpace(part)))
		if k == "" {
			continue
		}
		if !k.Valid() {
			return nil, fmt.Errorf("%w: unknown kind %q", ErrInvalidConfig, part)
		}
		if !seen[k] {
			seen[k] = true
			out = append(out, k)
		}
	}
	if len(out) == 0 {
		return nil, fmt.Errorf("%w: kinds must name at least one kind", ErrInvalidConfig)
	}
	return out, nil
}

// MongoTimeout is MongoTimeoutMS as a duration.
func (c *Config) MongoTimeout() time.Duration {
	return time.Duration(c.MongoTimeoutMS) * time.Millisecond
}

// LexiconSet returns the keyword lexicons for kind. Each side that is not
// configured falls back to the built-in list.
func (c *Config) LexiconSet(kind model.Kind) keyword.LexiconSet {
	news, def := c.Lexicons.ClubNews, keyword.ClubNews()
	if kind == model.KindPlayer {
		news, def = c.Lexicons.PlayerNews, keyword.PlayerNews()
	}
	return keyword.LexiconSet{
		News:  withDefaults(news, def),
		Video: withDefaults(c.Lexicons.Video, keyword.Video()),
	}
}

func withDefaults(l, def keyword.Lexicon) keyword.Lexicon {
	if len(l.Positive) == 0 {
		l.Positive = def.Positive
	}
	if len(l.Negative) == 0 {
		l.Negative = def.Negative
	}
	return l
}
