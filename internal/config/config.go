// Package config defines service configuration structures and loading hooks.
package config

import "runtime"

// Config contains process configuration. Extend as needed.
type Config struct {
	// LogLevel controls verbosity: debug, info, warn, error.
	LogLevel string `koanf:"log_level"`

	// Addr configures the HTTP listen address, e.g. ":8080".
	Addr string `koanf:"addr"`

	// QueueSize bounds the in-memory ingest queue.
	QueueSize int `koanf:"queue_size"`

	// WorkerCount sets the number of ingest workers.
	WorkerCount int `koanf:"worker_count"`

	// DedupeSize bounds the fixture deduplication index.
	DedupeSize int `koanf:"dedupe_size"`

	// MaxLimit caps the limit query parameter on leaderboard endpoints.
	MaxLimit int `koanf:"max_limit"`

	// ViewCacheTTLSeconds controls how long computed views are served
	// from cache before recomputation.
	ViewCacheTTLSeconds int `koanf:"view_cache_ttl_seconds"`

	// PowerWeights maps power-ranking factor names (record, margin,
	// strength) to their weights.
	PowerWeights map[string]float64 `koanf:"power_weights"`
}

// New creates a Config with defaults.
func New() *Config {
	return &Config{
		LogLevel:            "info",
		Addr:                ":9080",
		QueueSize:           100_000,
		WorkerCount:         runtime.NumCPU() * 4,
		DedupeSize:          50_000,
		MaxLimit:            100,
		ViewCacheTTLSeconds: 300,
		PowerWeights: map[string]float64{
			"record":   0.5,
			"margin":   0.3,
			"strength": 0.2,
		},
	}
}
