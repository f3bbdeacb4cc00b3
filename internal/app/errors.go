package service

import "errors"

// Sentinel error kinds for a pipeline run.
var (
	// ErrLoadPopulation means the entities of a kind could not be enumerated.
	// It is the only error that aborts a run.
	ErrLoadPopulation = errors.New("load population failed")
	ErrNoStore        = errors.New("no store configured")
)
