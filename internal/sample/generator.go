package sample

import (
	"fmt"
	"math/rand/v2"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/okian/mediaimpact/internal/domain/model"
)

// Tier is the coverage profile given to a generated entity.
type Tier int

// Coverage tiers, most favourable first.
const (
	TierElite Tier = iota
	TierHigh
	TierAverage
	TierLow
	TierVeryLow
	tierCount
)

func (t Tier) String() string {
	switch t {
	case TierElite:
		return "elite"
	case TierHigh:
		return "high"
	case TierAverage:
		return "average"
	case TierLow:
		return "low"
	case TierVeryLow:
		return "very_low"
	default:
		return "unknown"
	}
}

// Constants for corpus generation.
const (
	sentencesPerArticle = 3
	sentencesPerVideo   = 4
	mentionsPerPost     = 3
	duplicateOneIn      = 4
	pcgStream           = 0x9e3779b97f4a7c15
)

var clubNames = []string{ //nolint:gochecknoglobals // read-only name pool
	"Ashford Rovers", "Bramley Town", "Calder Athletic", "Dunmore United",
	"Eastbrook Harriers", "Fenwick Albion", "Glenhaven Rangers", "Harrowgate Wanderers",
}

var (
	firstNames = []string{"Tomas", "Ravi", "Kofi", "Lukas", "Mateo", "Emil", "Jonah", "Idris"}            //nolint:gochecknoglobals // read-only name pool
	lastNames  = []string{"Okafor", "Lindqvist", "Moreau", "Castell", "Brandt", "Sato", "Varga", "Quill"} //nolint:gochecknoglobals // read-only name pool
)

// newsTemplates holds match report sentences per tier. Elite and very low
// sentences are written to clear the strong sentence threshold.
var newsTemplates = [tierCount][]string{ //nolint:gochecknoglobals // read-only templates
	TierElite: {
		"{name} were outstanding in a clinical victory.",
		"{name} produced a brilliant and dominant display.",
		"Fans praised a magnificent performance from {name}.",
		"A superb comeback secured a deserved win for {name}.",
	},
	TierHigh: {
		"{name} looked solid and confident in a comfortable win.",
		"{name} showed momentum with an improved and effective performance.",
		"A good result for {name}, though some errors remain.",
	},
	TierAverage: {
		"{name} played out a draw on Saturday.",
		"The manager spoke to the press about {name} ahead of the weekend.",
		"{name} made progress in training but conceded late.",
	},
	TierLow: {
		"{name} struggled and conceded twice in a poor defeat.",
		"Criticism grew after {name} looked fragile again.",
		"A costly mistake left {name} with a frustrating loss.",
	},
	TierVeryLow: {
		"{name} suffered a shambolic defeat and a humiliating collapse.",
		"It was an abysmal and embarrassing night for {name}.",
		"Fans booed after a dreadful display and another disastrous loss by {name}.",
	},
}

var socialTemplates = [tierCount][]string{ //nolint:gochecknoglobals // read-only templates
	TierElite:   {"what a performance from {name}, absolutely brilliant", "{name} are the best side in the league"},
	TierHigh:    {"good win for {name} today", "{name} looking strong"},
	TierAverage: {"watching {name} tonight", "{name} team news is out"},
	TierLow:     {"{name} were poor again", "frustrating afternoon for {name}"},
	TierVeryLow: {"{name} are a disaster", "worst display from {name} this season"},
}

var commentaryTemplates = [tierCount][]string{ //nolint:gochecknoglobals // read-only templates
	TierElite:   {"What a brilliant goal from {name}!", "{name} with a world-class assist."},
	TierHigh:    {"Great run by {name} and a solid pass."},
	TierAverage: {"{name} takes the corner."},
	TierLow:     {"{name} with a poor clearance there."},
	TierVeryLow: {"A terrible blunder by {name} and it is an own goal."},
}

// Corpus is a generated set of source records.
type Corpus struct {
	Clubs          []model.Club
	Players        []model.Player
	ClubArticles   map[string][]model.Article
	PlayerArticles map[string][]model.Article
	Social         map[string]model.SocialRecord
	Videos         []model.Video
	Tiers          map[string]Tier // entity name -> tier
}

// generator carries the random source of one Generate call.
type generator struct {
	cfg   Config
	rng   *rand.Rand
	epoch time.Time
}

// Generate builds a corpus. The same config always yields the same corpus.
func Generate(cfg Config) (*Corpus, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	g := &generator{
		cfg:   cfg,
		rng:   rand.New(rand.NewPCG(cfg.Seed, cfg.Seed^pcgStream)), //nolint:gosec // reproducible fixtures, not secrets
		epoch: time.Date(2025, 5, 1, 12, 0, 0, 0, time.UTC),
	}

	c := &Corpus{
		ClubArticles:   make(map[string][]model.Article),
		PlayerArticles: make(map[string][]model.Article),
		Social:         make(map[string]model.SocialRecord),
		Tiers:          make(map[string]Tier),
	}

	for ci := 0; ci < cfg.Clubs; ci++ {
		club := model.Club{Name: clubNames[ci], SquadURL: "https://clubs.example/" + slug(clubNames[ci])}
		tier := Tier(ci % int(tierCount))
		c.Clubs = append(c.Clubs, club)
		c.Tiers[club.Name] = tier
		c.ClubArticles[club.Name] = g.articles(club.Name, tier)
		c.Social[club.Name] = g.social(club.Name, tier)

		for pi := 0; pi < cfg.PlayersPerClub; pi++ {
			p := model.Player{
				Name: firstNames[pi] + " " + lastNames[(ci+pi)%len(lastNames)],
				Club: club.Name,
			}
			ptier := Tier((ci + pi) % int(tierCount))
			c.Players = append(c.Players, p)
			c.Tiers[p.Name] = ptier
			c.PlayerArticles[p.Name] = g.articles(p.Name, ptier)
		}
	}

	for vi := 0; vi < cfg.Videos; vi++ {
		c.Videos = append(c.Videos, g.video(vi, c))
	}
	return c, nil
}

func (g *generator) pick(templates []string, name string) string {
	return strings.ReplaceAll(templates[g.rng.IntN(len(templates))], "{name}", name)
}

// articles writes the news of one entity. Some entities get a repeated
// article under the same URL.
func (g *generator) articles(name string, tier Tier) []model.Article {
	out := make([]model.Article, 0, g.cfg.ArticlesPerEntity+1)
	for j := 0; j < g.cfg.ArticlesPerEntity; j++ {
		sentences := make([]string, sentencesPerArticle)
		for k := range sentences {
			sentences[k] = g.pick(newsTemplates[tier], name)
		}
		out = append(out, model.Article{
			Title:  fmt.Sprintf("%s: matchday report %d", name, j+1),
			Text:   "<p>" + strings.Join(sentences, " ") + "</p>",
			Source: "sample",
			Date:   g.epoch.AddDate(0, 0, j).Format(time.DateOnly),
			URL:    fmt.Sprintf("https://news.example/%s/%d", slug(name), j+1),
		})
	}
	if len(out) > 1 && g.rng.IntN(duplicateOneIn) == 0 {
		out = append(out, out[0])
	}
	return out
}

func (g *generator) social(name string, tier Tier) model.SocialRecord {
	rec := model.SocialRecord{MentionCount: g.cfg.PostsPerClub * mentionsPerPost}
	for j := 0; j < g.cfg.PostsPerClub; j++ {
		rec.Posts = append(rec.Posts, model.Post{
			Content:   g.pick(socialTemplates[tier], name),
			Timestamp: g.epoch.Add(time.Duration(j) * time.Hour),
		})
	}
	return rec
}

// video narrates a match between two clubs, naming their players when the
// squads are populated.
func (g *generator) video(i int, c *Corpus) model.Video {
	home := c.Clubs[g.rng.IntN(len(c.Clubs))]
	away := c.Clubs[g.rng.IntN(len(c.Clubs))]

	names := []string{home.Name, away.Name}
	for _, p := range c.Players {
		if p.Club == home.Name || p.Club == away.Name {
			names = append(names, p.Name)
		}
	}

	lines := make([]string, sentencesPerVideo)
	for k := range lines {
		name := names[g.rng.IntN(len(names))]
		lines[k] = g.pick(commentaryTemplates[c.Tiers[name]], name)
	}

	id := uuid.NewSHA1(uuid.NameSpaceURL, fmt.Appendf(nil, "sample-video/%d/%d", g.cfg.Seed, i))
	return model.Video{
		ID:          id.String(),
		Title:       fmt.Sprintf("Highlights: %s vs %s", home.Name, away.Name),
		Transcript:  strings.Join(lines, " "),
		PublishDate: g.epoch.AddDate(0, 0, i).Format(time.DateOnly),
	}
}

func slug(name string) string {
	return strings.ReplaceAll(strings.ToLower(name), " ", "-")
}
