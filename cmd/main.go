package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"

	repository "github.com/okian/mediaimpact/internal/adapters/repository"
	"github.com/okian/mediaimpact/internal/config"
	"github.com/okian/mediaimpact/pkg/logger"
)

func main() {
	// Load .env if present
	_ = godotenv.Load(".env")

	// Root context with cancel on SIGINT/SIGTERM.
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	if err := newRootCmd().ExecuteContext(ctx); err != nil {
		stop()
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	var top int
	root := &cobra.Command{
		Use:   "media-impact",
		Short: "Score the media impact of football clubs and players",
		Long: `media-impact reads collected news, social posts and video transcripts,
scores every club and player against its population and stores one insight
document per entity. Without a subcommand it runs the pipeline.`,
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runPipeline(cmd, top)
		},
	}
	root.Flags().IntVar(&top, "top", defaultTop, "Number of ranked entities to print per kind")

	root.AddCommand(runCmd())
	root.AddCommand(seedCmd())
	root.AddCommand(verifyCmd())
	return root
}

// env is what every subcommand needs: validated config and an open store.
type env struct {
	cfg   *config.Config
	store repository.Store
	log   logger.Logger
}

// bootstrap loads configuration, initializes logging and opens the store.
// Logs go to the command's stderr so that rankings on stdout stay clean.
func bootstrap(cmd *cobra.Command) (*env, error) {
	ctx := cmd.Context()

	cfg, err := config.Load(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}

	if err := logger.Init(logger.WithFormat(cfg.LogFormat), logger.WithWriter(cmd.ErrOrStderr())); err != nil {
		return nil, fmt.Errorf("failed to initialize logging: %w", err)
	}
	log := logger.Get()
	if err := logger.SetLevelString(cfg.LogLevel); err != nil {
		log.Warn(ctx, "invalid log_level; falling back to info", logger.String("log_level", cfg.LogLevel), logger.Error(err))
		_ = logger.SetLevelString("info")
	}

	store, err := repository.New(ctx, repository.Config{
		Driver:        cfg.StoreDriver,
		SQLitePath:    cfg.SQLitePath,
		MongoURI:      cfg.MongoURI,
		MongoDatabase: cfg.MongoDatabase,
	},
		repository.WithTimeout(cfg.MongoTimeout()),
		repository.WithLogger(log.Named("repository")),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to open %s store: %w", cfg.StoreDriver, err)
	}
	log.Info(ctx, "store opened", logger.String("driver", cfg.StoreDriver))

	return &env{cfg: cfg, store: store, log: log}, nil
}

func (e *env) close(ctx context.Context) {
	if err := e.store.Close(); err != nil {
		e.log.Error(ctx, "failed to close store", logger.Error(err))
	}
}

func printf(w io.Writer, format string, args ...any) {
	_, _ = fmt.Fprintf(w, format, args...)
}
