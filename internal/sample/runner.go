// Package sample generates a reproducible football media corpus and
// checks the insights a pipeline run produced from it.
package sample

import (
	"context"
	"fmt"
	"time"

	repository "github.com/okian/mediaimpact/internal/adapters/repository"
	"github.com/okian/mediaimpact/internal/domain/model"
	"github.com/okian/mediaimpact/pkg/logger"
)

// Option applies a configuration option to Seed and Verify.
type Option func(*options)

type options struct {
	logger logger.Logger
}

// WithLogger sets the logger used for progress output.
func WithLogger(l logger.Logger) Option {
	return func(o *options) {
		if l != nil {
			o.logger = l
		}
	}
}

func apply(opts []Option) options {
	o := options{logger: logger.Nop()}
	for _, opt := range opts {
		opt(&o)
	}
	return o
}

// Seed generates a corpus and writes it through w.
func Seed(ctx context.Context, w repository.Writer, cfg Config, opts ...Option) (*Stats, error) {
	o := apply(opts)
	stats := &Stats{StartTime: time.Now()}

	o.logger.Info(ctx, "generating sample corpus",
		logger.Int("clubs", cfg.Clubs),
		logger.Int("playersPerClub", cfg.PlayersPerClub),
		logger.Int("articlesPerEntity", cfg.ArticlesPerEntity),
		logger.Int("videos", cfg.Videos),
		logger.Any("seed", cfg.Seed))

	corpus, err := Generate(cfg)
	if err != nil {
		return nil, err
	}

	if err := write(ctx, w, corpus, stats); err != nil {
		return stats, err
	}

	stats.EndTime = time.Now()
	stats.Duration = stats.EndTime.Sub(stats.StartTime)
	o.logger.Info(ctx, "sample corpus written",
		logger.Int("clubs", stats.ClubsWritten),
		logger.Int("players", stats.PlayersWritten),
		logger.Int("articles", stats.ArticlesWritten),
		logger.Int("posts", stats.PostsWritten),
		logger.Int("videos", stats.VideosWritten),
		logger.Duration("duration", stats.Duration))
	return stats, nil
}

func write(ctx context.Context, w repository.Writer, c *Corpus, stats *Stats) error {
	for _, club := range c.Clubs {
		if err := w.SaveClub(ctx, club); err != nil {
			return fmt.Errorf("save club %q: %w", club.Name, err)
		}
		stats.ClubsWritten++

		articles := c.ClubArticles[club.Name]
		if err := w.SaveArticles(ctx, model.KindClub, club.Name, articles); err != nil {
			return fmt.Errorf("save articles for %q: %w", club.Name, err)
		}
		stats.ArticlesWritten += len(articles)

		rec := c.Social[club.Name]
		if err := w.SaveSocial(ctx, club.Name, rec); err != nil {
			return fmt.Errorf("save social for %q: %w", club.Name, err)
		}
		stats.PostsWritten += len(rec.Posts)
	}

	for _, p := range c.Players {
		if err := ctx.Err(); err != nil {
			return err
		}
		if err := w.SavePlayer(ctx, p); err != nil {
			return fmt.Errorf("save player %q: %w", p.Name, err)
		}
		stats.PlayersWritten++

		articles := c.PlayerArticles[p.Name]
		if err := w.SaveArticles(ctx, model.KindPlayer, p.Name, articles); err != nil {
			return fmt.Errorf("save articles for %q: %w", p.Name, err)
		}
		stats.ArticlesWritten += len(articles)
	}

	for _, v := range c.Videos {
		if err := w.SaveVideo(ctx, v); err != nil {
			return fmt.Errorf("save video %s: %w", v.ID, err)
		}
		stats.VideosWritten++
	}
	return nil
}
