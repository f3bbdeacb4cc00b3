package repository

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"strings"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/okian/mediaimpact/internal/domain/model"
	"github.com/okian/mediaimpact/pkg/logger"
)

// Collection names shared with the scrapers that fill the database.
const (
	collClubs          = "clubs"
	collPlayers        = "players"
	collNews           = "news_data"
	collTwitter        = "twitter_data"
	collVideos         = "youtube_data"
	collClubInsights   = "club_insights"
	collPlayerInsights = "player_insights"
)

// postDateLayout is how the social scraper writes post dates.
const postDateLayout = "2006-01-02 15:04:05"

// newsRecord is one scraped batch of articles for an entity. Club batches
// are keyed by "club", player batches by "player".
type newsRecord struct {
	Club     string          `bson:"club,omitempty"`
	Player   string          `bson:"player,omitempty"`
	Source   string          `bson:"source"`
	Count    int             `bson:"articles_count"`
	Articles []model.Article `bson:"articles"`
}

type twitterPost struct {
	Date    string `bson:"date"`
	Content string `bson:"content"`
}

type twitterRecord struct {
	Entity       string        `bson:"entity"`
	Source       string        `bson:"source"`
	MentionCount int           `bson:"mention_count"`
	Mentions     []twitterPost `bson:"mentions_data"`
}

// MongoStore implements Store on the document database the scrapers write to.
type MongoStore struct {
	client  *mongo.Client
	db      *mongo.Database
	timeout time.Duration
	logger  logger.Logger
}

var _ Store = (*MongoStore)(nil)

// NewMongoStore connects to uri and verifies the connection with a ping.
func NewMongoStore(ctx context.Context, uri, database string, opts ...Option) (*MongoStore, error) {
	cfg := newSettings(opts)

	connectCtx, cancel := context.WithTimeout(ctx, cfg.timeout)
	defer cancel()

	client, err := mongo.Connect(connectCtx, options.Client().ApplyURI(uri).SetConnectTimeout(cfg.timeout))
	if err != nil {
		return nil, fmt.Errorf("connect mongo: %w", err)
	}
	if err := client.Ping(connectCtx, nil); err != nil {
		_ = client.Disconnect(ctx)
		return nil, fmt.Errorf("ping mongo: %w", err)
	}
	cfg.logger.Debug(ctx, "mongo store ready", logger.String("database", database))
	return &MongoStore{
		client:  client,
		db:      client.Database(database),
		timeout: cfg.timeout,
		logger:  cfg.logger,
	}, nil
}

// Close implements Store.
func (s *MongoStore) Close() error {
	ctx, cancel := context.WithTimeout(context.Background(), s.timeout)
	defer cancel()
	return s.client.Disconnect(ctx)
}

func (s *MongoStore) op(ctx context.Context) (context.Context, context.CancelFunc) {
	return context.WithTimeout(ctx, s.timeout)
}

func (s *MongoStore) findAll(ctx context.Context, coll string, filter any, out any) error {
	ctx, cancel := s.op(ctx)
	defer cancel()
	cur, err := s.db.Collection(coll).Find(ctx, filter)
	if err != nil {
		return err
	}
	return cur.All(ctx, out)
}

// Clubs implements Source.
func (s *MongoStore) Clubs(ctx context.Context) ([]model.Club, error) {
	var out []model.Club
	if err := s.findAll(ctx, collClubs, bson.M{}, &out); err != nil {
		return nil, fmt.Errorf("list clubs: %w", err)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Name < out[j].Name })
	return out, nil
}

// Players implements Source.
func (s *MongoStore) Players(ctx context.Context) ([]model.Player, error) {
	var out []model.Player
	if err := s.findAll(ctx, collPlayers, bson.M{}, &out); err != nil {
		return nil, fmt.Errorf("list players: %w", err)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Name < out[j].Name })
	return out, nil
}

// Articles implements Source. All batches stored for the entity are
// concatenated; repeated links are left to the caller.
func (s *MongoStore) Articles(ctx context.Context, kind model.Kind, name string) ([]model.Article, error) {
	var records []newsRecord
	if err := s.findAll(ctx, collNews, newsFilter(kind, name), &records); err != nil {
		return nil, fmt.Errorf("list articles for %s: %w", name, err)
	}
	out := []model.Article{}
	for _, r := range records {
		out = append(out, r.Articles...)
	}
	return out, nil
}

// Social implements Source.
func (s *MongoStore) Social(ctx context.Context, name string) (model.SocialRecord, error) {
	ctx, cancel := s.op(ctx)
	defer cancel()

	var rec twitterRecord
	err := s.db.Collection(collTwitter).FindOne(ctx, bson.M{"entity": name, "source": "twitter"}).Decode(&rec)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return model.SocialRecord{}, nil
	}
	if err != nil {
		return model.SocialRecord{}, fmt.Errorf("get social record for %s: %w", name, err)
	}
	return rec.toModel(), nil
}

// Videos implements Source.
func (s *MongoStore) Videos(ctx context.Context) ([]model.Video, error) {
	var out []model.Video
	if err := s.findAll(ctx, collVideos, bson.M{}, &out); err != nil {
		return nil, fmt.Errorf("list videos: %w", err)
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
func (s *MongoStore) UpsertInsight(ctx context.Context, kind model.Kind, doc model.Insight) error {
	doc, err := validate(kind, doc)
	if err != nil {
		return err
	}
	coll, filter, update, err := insightUpdate(kind, doc)
	if err != nil {
		return err
	}
	ctx, cancel := s.op(ctx)
	defer cancel()
	if _, err := s.db.Collection(coll).UpdateOne(ctx, filter, update, options.Update().SetUpsert(true)); err != nil {
		return fmt.Errorf("upsert insight %s: %w", doc.Name, err)
	}
	return nil
}

// Insight implements Sink.
func (s *MongoStore) Insight(ctx context.Context, kind model.Kind, name string) (model.Insight, error) {
	ctx, cancel := s.op(ctx)
	defer cancel()

	var doc model.Insight
	err := s.db.Collection(insightCollection(kind)).FindOne(ctx, bson.M{"name": name}).Decode(&doc)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return model.Insight{}, ErrNotFound
	}
	if err != nil {
		return model.Insight{}, fmt.Errorf("get insight %s: %w", name, err)
	}
	return doc, nil
}

// Insights implements Sink.
func (s *MongoStore) Insights(ctx context.Context, kind model.Kind) ([]model.Insight, error) {
	var out []model.Insight
	if err := s.findAll(ctx, insightCollection(kind), bson.M{"kind": kind}, &out); err != nil {
		return nil, fmt.Errorf("list insights: %w", err)
	}
	sortInsights(out)
	return out, nil
}

// SaveClub implements Writer.
func (s *MongoStore) SaveClub(ctx context.Context, c model.Club) error {
	return s.upsert(ctx, collClubs, bson.M{"club_name": c.Name}, c)
}

// SavePlayer implements Writer.
func (s *MongoStore) SavePlayer(ctx context.Context, p model.Player) error {
	return s.upsert(ctx, collPlayers, bson.M{"name": p.Name, "club_name": p.Club}, p)
}

// SaveArticles implements Writer. Each call stores one batch.
func (s *MongoStore) SaveArticles(ctx context.Context, kind model.Kind, name string, articles []model.Article) error {
	ctx, cancel := s.op(ctx)
	defer cancel()
	if _, err := s.db.Collection(collNews).InsertOne(ctx, newNewsRecord(kind, name, articles)); err != nil {
		return fmt.Errorf("save articles for %s: %w", name, err)
	}
	return nil
}

// SaveSocial implements Writer. The stored record is replaced.
func (s *MongoStore) SaveSocial(ctx context.Context, name string, record model.SocialRecord) error {
	return s.upsert(ctx, collTwitter, bson.M{"entity": name, "source": "twitter"}, newTwitterRecord(name, record))
}

// SaveVideo implements Writer.
func (s *MongoStore) SaveVideo(ctx context.Context, v model.Video) error {
	return s.upsert(ctx, collVideos, bson.M{"video_id": v.ID}, v)
}

func (s *MongoStore) upsert(ctx context.Context, coll string, filter bson.M, doc any) error {
	ctx, cancel := s.op(ctx)
	defer cancel()
	_, err := s.db.Collection(coll).UpdateOne(ctx, filter, bson.M{"$set": doc}, options.Update().SetUpsert(true))
	if err != nil {
		return fmt.Errorf("upsert %s: %w", coll, err)
	}
	return nil
}

func insightCollection(kind model.Kind) string {
	if kind == model.KindClub {
		return collClubInsights
	}
	return collPlayerInsights
}

// insightUpdate builds the upsert for one document. Club documents also
// carry club_name, the key the dashboard reads them by.
func insightUpdate(kind model.Kind, doc model.Insight) (coll string, filter, update bson.M, err error) {
	raw, err := bson.Marshal(doc)
	if err != nil {
		return "", nil, nil, fmt.Errorf("%w: encode %s: %v", ErrInvalidDocument, doc.Name, err)
	}
	var set bson.M
	if err := bson.Unmarshal(raw, &set); err != nil {
		return "", nil, nil, fmt.Errorf("%w: encode %s: %v", ErrInvalidDocument, doc.Name, err)
	}
	filter = bson.M{"name": doc.Name}
	if kind == model.KindClub {
		set["club_name"] = doc.Name
		filter = bson.M{"club_name": doc.Name}
	}
	return insightCollection(kind), filter, bson.M{"$set": set}, nil
}

func newsFilter(kind model.Kind, name string) bson.M {
	field := "club"
	if kind == model.KindPlayer {
		field = "player"
	}
	return bson.M{field: name, "source": "news"}
}

func newNewsRecord(kind model.Kind, name string, articles []model.Article) newsRecord {
	r := newsRecord{Source: "news", Count: len(articles), Articles: articles}
	if kind == model.KindPlayer {
		r.Player = name
	} else {
		r.Club = name
	}
	return r
}

func newTwitterRecord(name string, record model.SocialRecord) twitterRecord {
	r := twitterRecord{Entity: name, Source: "twitter", MentionCount: record.MentionCount}
	for _, p := range record.Posts {
		r.Mentions = append(r.Mentions, twitterPost{
			Date:    p.Timestamp.UTC().Format(postDateLayout),
			Content: p.Content,
		})
	}
	return r
}

func (r twitterRecord) toModel() model.SocialRecord {
	rec := model.SocialRecord{MentionCount: r.MentionCount}
	for _, m := range r.Mentions {
		// unparsable dates are kept as zero time; only the content is scored
		ts, _ := time.Parse(postDateLayout, strings.TrimSpace(m.Date))
		rec.Posts = append(rec.Posts, model.Post{Content: m.Content, Timestamp: ts})
	}
	return rec
}
