// Package repository provides the persistence collaborators of the
// pipeline: the source of roster and text records and the sink for
// per-entity insight documents.
package repository

import (
	"context"

	"github.com/okian/mediaimpact/internal/domain/model"
)

// Source reads everything a run needs. Results are returned in a stable
// order so that repeated runs over the same data produce the same output.
type Source interface {
	// Clubs returns every club ordered by name.
	Clubs(ctx context.Context) ([]model.Club, error)
	// Players returns every player ordered by name.
	Players(ctx context.Context) ([]model.Player, error)
	// Articles returns the news articles stored for one entity, in
	// collection order. An entity without articles yields an empty slice.
	Articles(ctx context.Context, kind model.Kind, name string) ([]model.Article, error)
	// Social returns the social record of one entity. An entity without a
	// record yields a zero record.
	Social(ctx context.Context, name string) (model.SocialRecord, error)
	// Videos returns every transcribed video ordered by publish date and id.
	Videos(ctx context.Context) ([]model.Video, error)
}

// Sink persists insight documents.
type Sink interface {
	// UpsertInsight replaces the document of one entity, keyed by kind and
	// name. Returns ErrInvalidDocument when the document has no name or its
	// kind disagrees with kind.
	UpsertInsight(ctx context.Context, kind model.Kind, doc model.Insight) error
	// Insight returns one stored document or ErrNotFound.
	Insight(ctx context.Context, kind model.Kind, name string) (model.Insight, error)
	// Insights returns all stored documents of a kind, highest impact first.
	Insights(ctx context.Context, kind model.Kind) ([]model.Insight, error)
}

// Writer loads source records, used by the seeder and in tests.
type Writer interface {
	SaveClub(ctx context.Context, c model.Club) error
	SavePlayer(ctx context.Context, p model.Player) error
	SaveArticles(ctx context.Context, kind model.Kind, name string, articles []model.Article) error
	SaveSocial(ctx context.Context, name string, record model.SocialRecord) error
	SaveVideo(ctx context.Context, v model.Video) error
}

// Store is a complete persistence backend.
type Store interface {
	Source
	Sink
	Writer
	Close() error
}

// validate checks a document before it is written.
func validate(kind model.Kind, doc model.Insight) (model.Insight, error) {
	if !kind.Valid() {
		return doc, ErrInvalidDocument
	}
	if doc.Name == "" {
		return doc, ErrInvalidDocument
	}
	if doc.Kind == "" {
		doc.Kind = kind
	}
	if doc.Kind != kind {
		return doc, ErrInvalidDocument
	}
	return doc, nil
}
