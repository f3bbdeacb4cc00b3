package repository

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/jmoiron/sqlx"
	_ "modernc.org/sqlite" // registers the "sqlite" driver

	"github.com/okian/mediaimpact/internal/domain/model"
	"github.com/okian/mediaimpact/pkg/logger"
)

// SQLiteStore implements Store on an embedded SQLite database.
type SQLiteStore struct {
	db     *sqlx.DB
	logger logger.Logger
}

var _ Store = (*SQLiteStore)(nil)

// NewSQLiteStore opens (or creates) the database at path and runs the
// schema migration.
func NewSQLiteStore(ctx context.Context, path string, opts ...Option) (*SQLiteStore, error) {
	cfg := newSettings(opts)
	dsn := fmt.Sprintf("file:%s?_pragma=busy_timeout(%d)&_pragma=journal_mode(WAL)",
		path, cfg.timeout.Milliseconds())

	db, err := sqlx.Open("sqlite", dsn)
	if err != nil {
		return nil, fmt.Errorf("open sqlite %s: %w", path, err)
	}
	db.SetMaxOpenConns(1)

	if _, err := db.ExecContext(ctx, sqliteSchema); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("run migrations: %w", err)
	}
	cfg.logger.Debug(ctx, "sqlite store ready", logger.String("path", path))
	return &SQLiteStore{db: db, logger: cfg.logger}, nil
}

// Close implements Store.
func (s *SQLiteStore) Close() error {
	return s.db.Close()
}

// Clubs implements Source.
func (s *SQLiteStore) Clubs(ctx context.Context) ([]model.Club, error) {
	var out []model.Club
	if err := s.db.SelectContext(ctx, &out, `SELECT name, squad_url, logo FROM clubs ORDER BY name`); err != nil {
		return nil, fmt.Errorf("list clubs: %w", err)
	}
	return out, nil
}

// Players implements Source.
func (s *SQLiteStore) Players(ctx context.Context) ([]model.Player, error) {
	var out []model.Player
	if err := s.db.SelectContext(ctx, &out, `SELECT name, club, photo FROM players ORDER BY name`); err != nil {
		return nil, fmt.Errorf("list players: %w", err)
	}
	return out, nil
}

// Articles implements Source.
func (s *SQLiteStore) Articles(ctx context.Context, kind model.Kind, name string) ([]model.Article, error) {
	out := []model.Article{}
	err := s.db.SelectContext(ctx, &out, `
		SELECT title, text, source, date, url FROM articles
		WHERE kind = ? AND entity = ?
		ORDER BY id`, string(kind), strings.ToLower(name))
	if err != nil {
		return nil, fmt.Errorf("list articles for %s: %w", name, err)
	}
	return out, nil
}

// Social implements Source.
func (s *SQLiteStore) Social(ctx context.Context, name string) (model.SocialRecord, error) {
	var rec model.SocialRecord
	key := strings.ToLower(name)

	err := s.db.GetContext(ctx, &rec.MentionCount,
		`SELECT mention_count FROM social_records WHERE entity = ?`, key)
	if err != nil && !errors.Is(err, sql.ErrNoRows) {
		return rec, fmt.Errorf("get social record for %s: %w", name, err)
	}
	err = s.db.SelectContext(ctx, &rec.Posts,
		`SELECT content, posted_at FROM social_posts WHERE entity = ? ORDER BY id`, key)
	if err != nil {
		return rec, fmt.Errorf("list posts for %s: %w", name, err)
	}
	return rec, nil
}

// Videos implements Source.
func (s *SQLiteStore) Videos(ctx context.Context) ([]model.Video, error) {
	var out []model.Video
	err := s.db.SelectContext(ctx, &out, `
		SELECT video_id, title, transcript, thumbnail, publish_date FROM videos
		ORDER BY publish_date, video_id`)
	if err != nil {
		return nil, fmt.Errorf("list videos: %w", err)
	}
	return out, nil
}

// UpsertInsight implements Sink.
func (s *SQLiteStore) UpsertInsight(ctx context.Context, kind model.Kind, doc model.Insight) error {
	doc, err := validate(kind, doc)
	if err != nil {
		return err
	}
	raw, err := json.Marshal(doc)
	if err != nil {
		return fmt.Errorf("encode insight %s: %w", doc.Name, err)
	}
	_, err = s.db.ExecContext(ctx, `
		INSERT INTO insights (kind, entity, impact_score, run_id, doc, updated_at)
		VALUES (?, ?, ?, ?, ?, ?)
		ON CONFLICT(kind, entity) DO UPDATE SET
			impact_score = excluded.impact_score,
			run_id = excluded.run_id,
			doc = excluded.doc,
			updated_at = excluded.updated_at
	`, string(kind), strings.ToLower(doc.Name), doc.ImpactScore, doc.RunID, string(raw), time.Now().UTC())
	if err != nil {
		return fmt.Errorf("upsert insight %s: %w", doc.Name, err)
	}
	return nil
}

// Insight implements Sink.
func (s *SQLiteStore) Insight(ctx context.Context, kind model.Kind, name string) (model.Insight, error) {
	var raw string
	err := s.db.GetContext(ctx, &raw,
		`SELECT doc FROM insights WHERE kind = ? AND entity = ?`, string(kind), strings.ToLower(name))
	if errors.Is(err, sql.ErrNoRows) {
		return model.Insight{}, ErrNotFound
	}
	if err != nil {
		return model.Insight{}, fmt.Errorf("get insight %s: %w", name, err)
	}
	var doc model.Insight
	if err := json.Unmarshal([]byte(raw), &doc); err != nil {
		return model.Insight{}, fmt.Errorf("decode insight %s: %w", name, err)
	}
	return doc, nil
}

// Insights implements Sink.
func (s *SQLiteStore) Insights(ctx context.Context, kind model.Kind) ([]model.Insight, error) {
	var raws []string
	if err := s.db.SelectContext(ctx, &raws, `SELECT doc FROM insights WHERE kind = ?`, string(kind)); err != nil {
		return nil, fmt.Errorf("list insights: %w", err)
	}
	out := make([]model.Insight, 0, len(raws))
	for _, raw := range raws {
		var doc model.Insight
		if err := json.Unmarshal([]byte(raw), &doc); err != nil {
			return nil, fmt.Errorf("decode insight: %w", err)
		}
		out = append(out, doc)
	}
	sortInsights(out)
	return out, nil
}

// SaveClub implements Writer.
func (s *SQLiteStore) SaveClub(ctx context.Context, c model.Club) error {
	_, err := s.db.ExecContext(ctx, `
		INSERT INTO clubs (entity, name, squad_url, logo) VALUES (?, ?, ?, ?)
		ON CONFLICT(entity) DO UPDATE SET
			name = excluded.name, squad_url = excluded.squad_url, logo = excluded.logo
	`, strings.ToLower(c.Name), c.Name, c.SquadURL, c.Logo)
	if err != nil {
		return fmt.Errorf("save club %s: %w", c.Name, err)
	}
	return nil
}

// SavePlayer implements Writer.
func (s *SQLiteStore) SavePlayer(ctx context.Context, p model.Player) error {
	_, err := s.db.ExecContext(ctx, `
		INSERT INTO players (entity, name, club, photo) VALUES (?, ?, ?, ?)
		ON CONFLICT(entity) DO UPDATE SET
			name = excluded.name, club = excluded.club, photo = excluded.photo
	`, strings.ToLower(p.Name), p.Name, p.Club, p.Photo)
	if err != nil {
		return fmt.Errorf("save player %s: %w", p.Name, err)
	}
	return nil
}

// SaveArticles implements Writer. Articles are appended to what is stored.
func (s *SQLiteStore) SaveArticles(ctx context.Context, kind model.Kind, name string, articles []model.Article) error {
	return s.inTx(ctx, func(tx *sqlx.Tx) error {
		for _, a := range articles {
			_, err := tx.ExecContext(ctx, `
				INSERT INTO articles (kind, entity, title, text, source, date, url)
				VALUES (?, ?, ?, ?, ?, ?, ?)
			`, string(kind), strings.ToLower(name), a.Title, a.Text, a.Source, a.Date, a.URL)
			if err != nil {
				return fmt.Errorf("save article for %s: %w", name, err)
			}
		}
		return nil
	})
}

// SaveSocial implements Writer. The stored record is replaced.
func (s *SQLiteStore) SaveSocial(ctx context.Context, name string, record model.SocialRecord) error {
	key := strings.ToLower(name)
	return s.inTx(ctx, func(tx *sqlx.Tx) error {
		if _, err := tx.ExecContext(ctx, `
			INSERT INTO social_records (entity, mention_count) VALUES (?, ?)
			ON CONFLICT(entity) DO UPDATE SET mention_count = excluded.mention_count
		`, key, record.MentionCount); err != nil {
			return fmt.Errorf("save social record for %s: %w", name, err)
		}
		if _, err := tx.ExecContext(ctx, `DELETE FROM social_posts WHERE entity = ?`, key); err != nil {
			return fmt.Errorf("clear posts for %s: %w", name, err)
		}
		for _, p := range record.Posts {
			if _, err := tx.ExecContext(ctx,
				`INSERT INTO social_posts (entity, content, posted_at) VALUES (?, ?, ?)`,
				key, p.Content, p.Timestamp.UTC()); err != nil {
				return fmt.Errorf("save post for %s: %w", name, err)
			}
		}
		return nil
	})
}

// SaveVideo implements Writer.
func (s *SQLiteStore) SaveVideo(ctx context.Context, v model.Video) error {
	_, err := s.db.ExecContext(ctx, `
		INSERT INTO videos (video_id, title, transcript, thumbnail, publish_date) VALUES (?, ?, ?, ?, ?)
		ON CONFLICT(video_id) DO UPDATE SET
			title = excluded.title,
			transcript = excluded.transcript,
			thumbnail = excluded.thumbnail,
			publish_date = excluded.publish_date
	`, v.ID, v.Title, v.Transcript, v.Thumbnail, v.PublishDate)
	if err != nil {
		return fmt.Errorf("save video %s: %w", v.ID, err)
	}
	return nil
}

func (s *SQLiteStore) inTx(ctx context.Context, fn func(tx *sqlx.Tx) error) error {
	tx, err := s.db.BeginTxx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin tx: %w", err)
	}
	if err := fn(tx); err != nil {
		_ = tx.Rollback()
		return err
	}
	if err := tx.Commit(); err != nil {
		return fmt.Errorf("commit tx: %w", err)
	}
	return nil
}
