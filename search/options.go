package search

import (
	"github.com/dymensionxyz/tonshard/types"
)

// Option configures a Searcher.
type Option func(*Searcher)

// WithLogger sets the logger.
func WithLogger(logger types.Logger) Option {
	return func(s *Searcher) {
		s.logger = logger
	}
}

// WithMaxAttempts caps the number of candidates generated. Zero means no limit.
func WithMaxAttempts(n uint64) Option {
	return func(s *Searcher) {
		s.maxAttempts = n
	}
}

// WithWorkers sets the number of concurrent generation loops.
func WithWorkers(n int) Option {
	return func(s *Searcher) {
		s.workers = n
	}
}

// WithMissHandler registers a callback invoked for every candidate outside the target shard.
// With more than one worker it is called concurrently.
func WithMissHandler(f func(Miss)) Option {
	return func(s *Searcher) {
		s.onMiss = f
	}
}

// WithProgressInterval logs a progress line every n attempts. Zero disables it.
func WithProgressInterval(n uint64) Option {
	return func(s *Searcher) {
		s.progressInterval = n
	}
}
