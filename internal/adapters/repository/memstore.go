package repository

import (
	"context"
	"sort"
	"strings"
	"sync"

	"github.com/okian/mediaimpact/internal/domain/model"
)

// MemStore is a map-backed Store for tests and dry runs.
type MemStore struct {
	mu sync.RWMutex

	clubs    map[string]model.Club
	players  map[string]model.Player
	articles map[string][]model.Article // kind/name -> articles
	social   map[string]model.SocialRecord
	videos   map[string]model.Video
	insights map[string]model.Insight // kind/name -> document
	closed   bool
}

var _ Store = (*MemStore)(nil)

// NewMemStore creates an empty in-memory store.
func NewMemStore() *MemStore {
	return &MemStore{
		clubs:    make(map[string]model.Club),
		players:  make(map[string]model.Player),
		articles: make(map[string][]model.Article),
		social:   make(map[string]model.SocialRecord),
		videos:   make(map[string]model.Video),
		insights: make(map[string]model.Insight),
	}
}

func entityKey(kind model.Kind, name string) string {
	return string(kind) + "/" + strings.ToLower(name)
}

// Clubs implements Source.
func (s *MemStore) Clubs(_ context.Context) ([]model.Club, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if s.closed {
		return nil, ErrClosed
	}
	out := make([]model.Club, 0, len(s.clubs))
	for _, c := range s.clubs {
		out = append(out, c)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Name < out[j].Name })
	return out, nil
}

// Players implements Source.
func (s *MemStore) Players(_ context.Context) ([]model.Player, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if s.closed {
		return nil, ErrClosed
	}
	out := make([]model.Player, 0, len(s.players))
	for _, p := range s.players {
		out = append(out, p)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Name < out[j].Name })
	return out, nil
}

// Articles implements Source.
func (s *MemStore) Articles(_ context.Context, kind model.Kind, name string) ([]model.Article, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if s.closed {
		return nil, ErrClosed
	}
	return append([]model.Article{}, s.articles[entityKey(kind, name)]...), nil
}

// Social implements Source.
func (s *MemStore) Social(_ context.Context, name string) (model.SocialRecord, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if s.closed {
		return model.SocialRecord{}, ErrClosed
	}
	rec := s.social[strings.ToLower(name)]
	rec.Posts = append([]model.Post(nil), rec.Posts...)
	return rec, nil
}

// Videos implements Source.
func (s *MemStore) Videos(_ context.Context) ([]model.Video, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if s.closed {
		return nil, ErrClosed
	}
	out := make([]model.Video, 0, len(s.videos))
	for _, v := range s.videos {
		out = append(out, v)
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].PublishDate != out[j].PublishDate {
			return out[i].PublishDate < out[j].PublishDate
		}
		return out[i].ID < out[j].ID
	})
	return out, nil
}

// UpsertInsight implements Sink.
func (s *MemStore) UpsertInsight(_ context.Context, kind model.Kind, doc model.Insight) error {
	doc, err := validate(kind, doc)
	if err != nil {
		return err
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.closed {
		return ErrClosed
	}
	s.insights[entityKey(kind, doc.Name)] = doc
	return nil
}

// Insight implements Sink.
func (s *MemStore) Insight(_ context.Context, kind model.Kind, name string) (model.Insight, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	doc, ok := s.insights[entityKey(kind, name)]
	if !ok {
		return model.Insight{}, ErrNotFound
	}
	return doc, nil
}

// Insights implements Sink.
func (s *MemStore) Insights(_ context.Context, kind model.Kind) ([]model.Insight, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	var out []model.Insight
	for _, doc := range s.insights {
		if doc.Kind == kind {
			out = append(out, doc)
		}
	}
	sortInsights(out)
	return out, nil
}

// SaveClub implements Writer.
func (s *MemStore) SaveClub(_ context.Context, c model.Club) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.clubs[strings.ToLower(c.Name)] = c
	return nil
}

// SavePlayer implements Writer.
func (s *MemStore) SavePlayer(_ context.Context, p model.Player) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.players[strings.ToLower(p.Name)] = p
	return nil
}

// SaveArticles implements Writer. Articles are appended to what is stored.
func (s *MemStore) SaveArticles(_ context.Context, kind model.Kind, name string, articles []model.Article) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	key := entityKey(kind, name)
	s.articles[key] = append(s.articles[key], articles...)
	return nil
}

// SaveSocial implements Writer.
func (s *MemStore) SaveSocial(_ context.Context, name string, record model.SocialRecord) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.social[strings.ToLower(name)] = record
	return nil
}

// SaveVideo implements Writer.
func (s *MemStore) SaveVideo(_ context.Context, v model.Video) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.videos[v.ID] = v
	return nil
}

// Close implements Store.
func (s *MemStore) Close() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.closed = true
	return nil
}

func sortInsights(docs []model.Insight) {
	sort.SliceStable(docs, func(i, j int) bool {
		if docs[i].ImpactScore != docs[j].ImpactScore {
			return docs[i].ImpactScore > docs[j].ImpactScore
		}
		return docs[i].Name < docs[j].Name
	})
}
