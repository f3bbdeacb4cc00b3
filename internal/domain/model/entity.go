// Package model contains domain models passed between layers.
package model

import (
	"strings"
	"time"
)

// Kind identifies which population an entity belongs to.
type Kind string

const (
	KindClub   Kind = "club"
	KindPlayer Kind = "player"
)

// Kinds returns all entity kinds in scoring order.
func Kinds() []Kind { return []Kind{KindClub, KindPlayer} }

// Valid reports whether k is a known kind.
func (k Kind) Valid() bool { return k == KindClub || k == KindPlayer }

// Source identifies where a text unit came from.
type Source string

const (
	SourceNews   Source = "news"
	SourceSocial Source = "social"
	SourceVideo  Source = "video"
)

// Club is a roster record for a club.
type Club struct {
	Name     string `json:"name" bson:"club_name" db:"name"`
	SquadURL string `json:"squad_url,omitempty" bson:"squad_url,omitempty" db:"squad_url"`
	Logo     string `json:"logo,omitempty" bson:"logo_base64,omitempty" db:"logo"`
}

// Player is a roster record for a player and its club affiliation.
type Player struct {
	Name  string `json:"name" bson:"name" db:"name"`
	Club  string `json:"club" bson:"club_name" db:"club"`
	Photo string `json:"photo,omitempty" bson:"photo_base64,omitempty" db:"photo"`
}

// Article is one news article attributed to an entity.
type Article struct {
	Title  string `json:"title,omitempty" bson:"title,omitempty" db:"title"`
	Text   string `json:"text" bson:"text" db:"text"`
	Source string `json:"source,omitempty" bson:"source,omitempty" db:"source"`
	Date   string `json:"date,omitempty" bson:"date,omitempty" db:"date"`
	URL    string `json:"url,omitempty" bson:"url,omitempty" db:"url"`
}

// Post is one short social-media mention of an entity.
type Post struct {
	Content   string    `json:"content" bson:"content" db:"content"`
	Timestamp time.Time `json:"timestamp" bson:"-" db:"posted_at"`
}

// SocialRecord groups the posts collected for one entity.
type SocialRecord struct {
	MentionCount int    `json:"mention_count"`
	Posts        []Post `json:"posts"`
}

// Video is a transcribed video from the highlights playlist.
type Video struct {
	ID          string `json:"video_id" bson:"video_id" db:"video_id"`
	Title       string `json:"title" bson:"title" db:"title"`
	Transcript  string `json:"transcript_text" bson:"transcript_text" db:"transcript"`
	Thumbnail   string `json:"thumbnail,omitempty" bson:"thumbnail_base64,omitempty" db:"thumbnail"`
	PublishDate string `json:"publish_date,omitempty" bson:"publish_date,omitempty" db:"publish_date"`
}

// Entity is a club or player being scored.
type Entity struct {
	Name        string
	Kind        Kind
	Affiliation string // owning club for players, empty for clubs
	Photo       string
}

// Key is the lowercase lookup key used by name matching.
func (e Entity) Key() string { return strings.ToLower(e.Name) }

// TextUnit is a sentence or document under analysis.
type TextUnit struct {
	Text     string
	Source   Source
	Polarity float64
}
