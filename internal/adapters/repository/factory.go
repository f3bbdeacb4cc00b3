package repository

import (
	"context"
	"fmt"
	"strings"
)

// Store drivers accepted by New.
const (
	DriverSQLite = "sqlite"
	DriverMongo  = "mongo"
	DriverMemory = "memory"
)

// Config selects and locates a backend.
type Config struct {
	Driver        string
	SQLitePath    string
	MongoURI      string
	MongoDatabase string
}

// New opens the backend named by cfg.Driver.
func New(ctx context.Context, cfg Config, opts ...Option) (Store, error) {
	switch strings.ToLower(strings.TrimSpace(cfg.Driver)) {
	case DriverSQLite:
		return NewSQLiteStore(ctx, cfg.SQLitePath, opts...)
	case DriverMongo:
		return NewMongoStore(ctx, cfg.MongoURI, cfg.MongoDatabase, opts...)
	case DriverMemory:
		return NewMemStore(), nil
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownDriver, cfg.Driver)
	}
}
