package sample

import (
	"context"
	"errors"
	"fmt"

	repository "github.com/okian/mediaimpact/internal/adapters/repository"
	"github.com/okian/mediaimpact/internal/domain/model"
	"github.com/okian/mediaimpact/internal/domain/scoring"
	"github.com/okian/mediaimpact/internal/domain/types"
	"github.com/okian/mediaimpact/pkg/logger"
)

// ErrVerification is returned when stored insights break an output rule.
var ErrVerification = errors.New("insight verification failed")

// Verify checks the stored insights of one kind and returns its top n
// entries. Documents must be ordered by impact, carry scores inside the
// score range and, for players, name their club.
func Verify(ctx context.Context, sink repository.Sink, kind model.Kind, n int, opts ...Option) ([]types.Entry, error) {
	o := apply(opts)

	docs, err := sink.Insights(ctx, kind)
	if err != nil {
		return nil, fmt.Errorf("load %s insights: %w", kind, err)
	}
	if len(docs) == 0 {
		return nil, fmt.Errorf("%w: no %s insights stored", ErrVerification, kind)
	}

	entries := make([]types.Entry, 0, len(docs))
	for i, d := range docs {
		if !scoring.ScoreRange.Contains(d.ImpactScore) {
			return nil, fmt.Errorf("%w: %s impact %.2f out of range", ErrVerification, d.Name, d.ImpactScore)
		}
		if i > 0 && d.ImpactScore > docs[i-1].ImpactScore {
			return nil, fmt.Errorf("%w: %s ranked below a lower score", ErrVerification, d.Name)
		}
		if kind == model.KindPlayer && d.Affiliation == "" {
			return nil, fmt.Errorf("%w: player %s has no club", ErrVerification, d.Name)
		}
		if d.NumArticles == 0 {
			return nil, fmt.Errorf("%w: %s was scored without news", ErrVerification, d.Name)
		}
		entries = append(entries, types.Entry{Name: d.Name, Affiliation: d.Affiliation, Score: d.ImpactScore})
	}

	top := types.Top(types.Rank(entries), n)
	for _, e := range top {
		o.logger.Info(ctx, "top entity",
			logger.String("kind", string(kind)),
			logger.Int("rank", e.Rank),
			logger.String("name", e.Name),
			logger.Float64("impactScore", e.Score))
	}
	return top, nil
}
