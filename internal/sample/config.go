package sample

import (
	"errors"
	"fmt"
	"time"
)

// Limits of the built-in name pools.
const (
	MaxClubs          = 8
	MaxPlayersPerClub = 8
)

// Default corpus shape.
const (
	DefaultClubs             = 6
	DefaultPlayersPerClub    = 4
	DefaultArticlesPerEntity = 3
	DefaultPostsPerClub      = 5
	DefaultVideos            = 8
	DefaultSeed              = 42
)

// ErrInvalidConfig is returned for a corpus shape the generator cannot build.
var ErrInvalidConfig = errors.New("invalid sample config")

// Config holds the shape of a generated corpus.
type Config struct {
	Clubs             int    // Number of clubs
	PlayersPerClub    int    // Squad size per club
	ArticlesPerEntity int    // News articles per club and per player
	PostsPerClub      int    // Social posts per club
	Videos            int    // Transcribed highlight videos
	Seed              uint64 // Same seed, same corpus
}

// DefaultConfig returns the default corpus shape.
func DefaultConfig() Config {
	return Config{
		Clubs:             DefaultClubs,
		PlayersPerClub:    DefaultPlayersPerClub,
		ArticlesPerEntity: DefaultArticlesPerEntity,
		PostsPerClub:      DefaultPostsPerClub,
		Videos:            DefaultVideos,
		Seed:              DefaultSeed,
	}
}

// Validate checks the corpus shape.
func (c Config) Validate() error {
	switch {
	case c.Clubs < 1 || c.Clubs > MaxClubs:
		return fmt.Errorf("%w: clubs must be between 1 and %d", ErrInvalidConfig, MaxClubs)
	case c.PlayersPerClub < 0 || c.PlayersPerClub > MaxPlayersPerClub:
		return fmt.Errorf("%w: players per club must be between 0 and %d", ErrInvalidConfig, MaxPlayersPerClub)
	case c.ArticlesPerEntity < 0, c.PostsPerClub < 0, c.Videos < 0:
		return fmt.Errorf("%w: counts must not be negative", ErrInvalidConfig)
	}
	return nil
}

// Stats holds seeding statistics.
type Stats struct {
	ClubsWritten    int
	PlayersWritten  int
	ArticlesWritten int
	PostsWritten    int
	VideosWritten   int
	StartTime       time.Time
	EndTime         time.Time
	Duration        time.Duration
}
