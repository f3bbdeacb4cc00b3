package repository

import (
	"time"

	"github.com/okian/mediaimpact/pkg/logger"
)

const defaultTimeout = 10 * time.Second

type settings struct {
	timeout time.Duration
	logger  logger.Logger
}

func newSettings(opts []Option) settings {
	s := settings{timeout: defaultTimeout, logger: logger.Nop()}
	for _, opt := range opts {
		opt(&s)
	}
	return s
}

// Option applies a configuration option to a store.
type Option func(*settings)

// WithTimeout bounds connection setup and each remote operation. For
// SQLite it is the busy timeout.
func WithTimeout(d time.Duration) Option {
	return func(s *settings) {
		if d > 0 {
			s.timeout = d
		}
	}
}

// WithLogger sets the store logger.
func WithLogger(l logger.Logger) Option {
	return func(s *settings) {
		if l != nil {
			s.logger = l
		}
	}
}
