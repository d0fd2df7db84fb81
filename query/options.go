package query

import (
	"log/slog"
	"time"

	"github.com/jmgilman/go/errors"
)

const (
	// DefaultRetention is how long an unused entry is kept.
	DefaultRetention = 24 * time.Hour

	// DefaultFetchRetries is how many times a retryable fetch failure is retried.
	DefaultFetchRetries = 1
)

// config holds configuration for a Cache.
type config struct {
	retention time.Duration
	retries   int
	logger    *slog.Logger
	now       func() time.Time
}

func newConfig() *config {
	return &config{
		retention: DefaultRetention,
		retries:   DefaultFetchRetries,
		logger:    slog.New(slog.DiscardHandler),
		now:       time.Now,
	}
}

// Option configures a Cache.
type Option func(*config) error

// WithRetention sets how long an entry survives without being read.
// Entries are never evicted for size.
func WithRetention(d time.Duration) Option {
	return func(cfg *config) error {
		if d <= 0 {
			err := errors.New(errors.CodeInvalidInput, "retention must be positive")
			return errors.WithContext(err, "field", "retention")
		}
		cfg.retention = d
		return nil
	}
}

// WithFetchRetries sets how many times a fetch is retried after a retryable
// failure. Zero disables retries.
func WithFetchRetries(n int) Option {
	return func(cfg *config) error {
		if n < 0 {
			err := errors.New(errors.CodeInvalidInput, "fetch retries cannot be negative")
			return errors.WithContext(err, "field", "retries")
		}
		cfg.retries = n
		return nil
	}
}

// WithLogger sets the structured logger.
func WithLogger(logger *slog.Logger) Option {
	return func(cfg *config) error {
		if logger == nil {
			err := errors.New(errors.CodeInvalidInput, "logger cannot be nil")
			return errors.WithContext(err, "field", "logger")
		}
		cfg.logger = logger
		return nil
	}
}

// withClock overrides the time source. Used by tests.
func withClock(now func() time.Time) Option {
	return func(cfg *config) error {
		cfg.now = now
		return nil
	}
}
