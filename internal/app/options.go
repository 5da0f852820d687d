package service

import (
	"time"

	"github.com/okian/gridiron/pkg/logger"
)

// Option applies a configuration option to the Service.
type Option func(*Service)

// WithWorkerCount sets the number of ingest workers. Non-positive
// values fall back to CPU-based scaling in the pool.
func WithWorkerCount(n int) Option {
	return func(s *Service) {
		s.workerCount = n
	}
}

// WithQueueSize sets the ingest queue capacity.
func WithQueueSize(n int) Option {
	return func(s *Service) {
		if n > 0 {
			s.queueSize = n
		}
	}
}

// WithDedupeSize bounds the fixture dedupe index.
func WithDedupeSize(n int) Option {
	return func(s *Service) {
		if n > 0 {
			s.dedupeSize = n
		}
	}
}

// WithViewTTL sets how long computed views are served from cache.
func WithViewTTL(ttl time.Duration) Option {
	return func(s *Service) {
		if ttl > 0 {
			s.viewTTL = ttl
		}
	}
}

// WithPowerWeights sets the factor weights feeding the power rankings.
// Recognized factors are "record", "margin", and "strength".
func WithPowerWeights(weights map[string]float64) Option {
	return func(s *Service) {
		s.powerWeights = weights
	}
}

// WithLogger sets a custom logger for the service.
func WithLogger(l logger.Logger) Option {
	return func(s *Service) {
		if l != nil {
			s.logger = l
		}
	}
}
