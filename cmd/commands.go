package main

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	service "github.com/okian/mediaimpact/internal/app"
	"github.com/okian/mediaimpact/internal/config"
	"github.com/okian/mediaimpact/internal/domain/keyword"
	"github.com/okian/mediaimpact/internal/domain/mention"
	"github.com/okian/mediaimpact/internal/domain/sentiment"
	"github.com/okian/mediaimpact/internal/domain/types"
	"github.com/okian/mediaimpact/internal/sample"
	"github.com/okian/mediaimpact/pkg/logger"
	"github.com/okian/mediaimpact/pkg/metrics"
)

const defaultTop = 10

func runCmd() *cobra.Command {
	var top int
	cmd := &cobra.Command{
		Use:   "run",
		Short: "Score every configured population and store the insights",
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runPipeline(cmd, top)
		},
	}
	cmd.Flags().IntVar(&top, "top", defaultTop, "Number of ranked entities to print per kind")
	return cmd
}

func runPipeline(cmd *cobra.Command, top int) error {
	ctx := cmd.Context()
	e, err := bootstrap(cmd)
	if err != nil {
		return err
	}
	defer e.close(ctx)

	m := newMetrics(e.cfg)
	svc, err := newService(e, m)
	if err != nil {
		return err
	}

	report, err := svc.Run(ctx)
	writeMetrics(ctx, e, m)
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	printf(out, "run %s finished in %s\n", report.RunID, report.Duration)
	for _, kr := range report.Kinds {
		printf(out, "\n%s: %d loaded, %d scored, %d excluded, %d failed\n",
			kr.Kind, kr.Loaded, kr.Scored, kr.Excluded, kr.Failed)
		printRanking(cmd, types.Top(kr.Ranking, top))
	}
	if n := report.Failed(); n > 0 {
		return fmt.Errorf("%d insight documents could not be stored", n)
	}
	return nil
}

// newService wires the pipeline from configuration.
func newService(e *env, m *metrics.Manager) (*service.Service, error) {
	cfg := e.cfg
	kinds, err := cfg.EntityKinds()
	if err != nil {
		return nil, err
	}
	kw, err := keyword.NewMatcher(cfg.KeywordMatch)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", config.ErrInvalidConfig, err)
	}
	names, err := mention.NewNameMatcher(cfg.NameMatch)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", config.ErrInvalidConfig, err)
	}

	opts := []service.Option{
		service.WithKinds(kinds...),
		service.WithScorer(sentiment.NewLexiconScorer(sentiment.WithOverrides(cfg.SentimentOverrides))),
		service.WithKeywordMatcher(kw),
		service.WithNameMatcher(names),
		service.WithStrongThreshold(cfg.StrongThreshold),
		service.WithDedupeMaxSize(cfg.DedupeMaxSize),
		service.WithMetrics(m),
		service.WithLogger(e.log.Named("pipeline")),
	}
	for _, kind := range kinds {
		opts = append(opts, service.WithLexicons(kind, cfg.LexiconSet(kind)))
	}
	return service.New(e.store, opts...), nil
}

// newMetrics builds the run's metrics manager. Empty settings keep the
// manager defaults.
func newMetrics(cfg *config.Config) *metrics.Manager {
	return metrics.NewManager(
		metrics.WithMetricsEnabled(cfg.MetricsEnabled),
		metrics.WithNamespace(cfg.MetricsNamespace),
		metrics.WithConstLabels(cfg.MetricsLabels),
		metrics.WithRunBuckets(cfg.MetricsRunBuckets),
		metrics.WithPersistBuckets(cfg.MetricsPersistBuckets),
	)
}

// writeMetrics dumps the registry for a node_exporter textfile collector.
func writeMetrics(ctx context.Context, e *env, m *metrics.Manager) {
	path := e.cfg.MetricsTextfile
	if path == "" {
		return
	}
	if err := m.WriteTextfile(path); err != nil {
		e.log.Warn(ctx, "failed to write metrics textfile", logger.String("path", path), logger.Error(err))
	}
}

func printRanking(cmd *cobra.Command, entries []types.Entry) {
	out := cmd.OutOrStdout()
	for _, en := range entries {
		if en.Affiliation != "" {
			printf(out, "%3d. %-28s %6.2f  (%s)\n", en.Rank, en.Name, en.Score, en.Affiliation)
			continue
		}
		printf(out, "%3d. %-28s %6.2f\n", en.Rank, en.Name, en.Score)
	}
}

func seedCmd() *cobra.Command {
	cfg := sample.DefaultConfig()
	cmd := &cobra.Command{
		Use:   "seed",
		Short: "Write a reproducible sample corpus into the configured store",
		RunE: func(cmd *cobra.Command, _ []string) error {
			ctx := cmd.Context()
			e, err := bootstrap(cmd)
			if err != nil {
				return err
			}
			defer e.close(ctx)

			stats, err := sample.Seed(ctx, e.store, cfg, sample.WithLogger(e.log.Named("sample")))
			if err != nil {
				return fmt.Errorf("seed failed: %w", err)
			}
			printf(cmd.OutOrStdout(), "seeded %d clubs, %d players, %d articles, %d posts, %d videos\n",
				stats.ClubsWritten, stats.PlayersWritten, stats.ArticlesWritten, stats.PostsWritten, stats.VideosWritten)
			return nil
		},
	}
	cmd.Flags().IntVar(&cfg.Clubs, "clubs", cfg.Clubs, "Number of clubs")
	cmd.Flags().IntVar(&cfg.PlayersPerClub, "players", cfg.PlayersPerClub, "Players per club")
	cmd.Flags().IntVar(&cfg.ArticlesPerEntity, "articles", cfg.ArticlesPerEntity, "News articles per entity")
	cmd.Flags().IntVar(&cfg.PostsPerClub, "posts", cfg.PostsPerClub, "Social posts per club")
	cmd.Flags().IntVar(&cfg.Videos, "videos", cfg.Videos, "Highlight videos")
	cmd.Flags().Uint64Var(&cfg.Seed, "seed", cfg.Seed, "Random seed")
	return cmd
}

func verifyCmd() *cobra.Command {
	var top int
	cmd := &cobra.Command{
		Use:   "verify",
		Short: "Check the stored insights and print the leading entities",
		RunE: func(cmd *cobra.Command, _ []string) error {
			ctx := cmd.Context()
			e, err := bootstrap(cmd)
			if err != nil {
				return err
			}
			defer e.close(ctx)

			kinds, err := e.cfg.EntityKinds()
			if err != nil {
				return err
			}
			for _, kind := range kinds {
				entries, err := sample.Verify(ctx, e.store, kind, top, sample.WithLogger(e.log.Named("verify")))
				if err != nil {
					return err
				}
				printf(cmd.OutOrStdout(), "%s: ok\n", kind)
				printRanking(cmd, entries)
			}
			return nil
		},
	}
	cmd.Flags().IntVar(&top, "top", defaultTop, "Number of ranked entities to print per kind")
	return cmd
}
