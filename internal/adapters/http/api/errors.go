package api

import "errors"

// Sentinel kinds for API errors.
var (
	// ErrBackpressure is returned when the ingest queue refuses a game.
	ErrBackpressure = errors.New("backpressure")
)
