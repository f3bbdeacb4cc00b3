package config

import (
	"errors"
)

// Sentinel error kinds for this package. Validation failures wrap
// ErrInvalidConfig; unreadable files and env wrap ErrLoadConfig.
var (
	ErrInvalidConfig = errors.New("invalid config")
	ErrLoadConfig    = errors.New("load config failed")
)
