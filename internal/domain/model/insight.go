package model

import (
	"math"
	"time"
)

// Insight is the per-entity document persisted at the end of a run.
// Optional axes are pointers so that "no data" and "zero" stay distinct.
type Insight struct {
	Name        string `json:"name" bson:"name"`
	Kind        Kind   `json:"kind" bson:"kind"`
	Affiliation string `json:"affiliation,omitempty" bson:"affiliation,omitempty"`
	Photo       string `json:"photo,omitempty" bson:"photo,omitempty"`

	NumPlayers  int      `json:"num_players,omitempty" bson:"num_players,omitempty"`
	PlayerNames []string `json:"player_names,omitempty" bson:"player_names,omitempty"`

	NumArticles             int            `json:"num_articles" bson:"num_articles"`
	AvgSentimentNews        float64        `json:"avg_sentiment_news" bson:"avg_sentiment_news"`
	NormalizedSentimentNews float64        `json:"normalized_sentiment_news" bson:"normalized_sentiment_news"`
	CountPositiveSentences  int            `json:"count_positive_sentences" bson:"count_positive_sentences"`
	CountNegativeSentences  int            `json:"count_negative_sentences" bson:"count_negative_sentences"`
	PositiveKeywordCounts   map[string]int `json:"positive_keyword_counts" bson:"positive_keyword_counts"`
	NegativeKeywordCounts   map[string]int `json:"negative_keyword_counts" bson:"negative_keyword_counts"`
	StrongPositiveSentences []string       `json:"strong_positive_sentences" bson:"strong_positive_sentences"`
	StrongNegativeSentences []string       `json:"strong_negative_sentences" bson:"strong_negative_sentences"`

	YouTube YouTubeSummary  `json:"youtube_summary" bson:"youtube_summary"`
	Twitter *TwitterSummary `json:"twitter_summary,omitempty" bson:"twitter_summary,omitempty"`

	AvgSentimentTwitter        *float64 `json:"avg_sentiment_twitter,omitempty" bson:"avg_sentiment_twitter,omitempty"`
	NormalizedSentimentTwitter *float64 `json:"normalized_sentiment_twitter,omitempty" bson:"normalized_sentiment_twitter,omitempty"`

	ImpactScore float64 `json:"impact_score" bson:"impact_score"`

	RunID      string    `json:"run_id" bson:"run_id"`
	ComputedAt time.Time `json:"computed_at" bson:"computed_at"`
}

// YouTubeSummary describes an entity's presence in video transcripts.
type YouTubeSummary struct {
	MentionCount               int            `json:"mention_count" bson:"mention_count"`
	NumVideos                  int            `json:"num_videos" bson:"num_videos"`
	VideoIDs                   []string       `json:"video_ids,omitempty" bson:"video_ids,omitempty"`
	AvgSentimentYouTube        *float64       `json:"avg_sentiment_youtube,omitempty" bson:"avg_sentiment_youtube,omitempty"`
	NormalizedSentimentYouTube *float64       `json:"normalized_sentiment_youtube,omitempty" bson:"normalized_sentiment_youtube,omitempty"`
	PositiveKeywordCounts      map[string]int `json:"positive_keyword_counts,omitempty" bson:"positive_keyword_counts,omitempty"`
	NegativeKeywordCounts      map[string]int `json:"negative_keyword_counts,omitempty" bson:"negative_keyword_counts,omitempty"`
}

// TwitterSummary is attached to club documents.
type TwitterSummary struct {
	MentionCount int `json:"mention_count" bson:"mention_count"`
	NumPosts     int `json:"num_posts" bson:"num_posts"`
}

// Round rounds v to the given number of decimal places.
func Round(v float64, places int) float64 {
	p := math.Pow(10, float64(places))
	return math.Round(v*p) / p
}

// Ptr returns a pointer to v.
func Ptr[T any](v T) *T { return &v }
