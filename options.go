package placeholder

import (
	"log/slog"
	"time"

	"github.com/jmgilman/go/errors"
)

// This file contains option types for the client and for partial updates.
// Update options mirror the fields of UpdateUserOptions and UpdatePostOptions
// so that callers only name what changes.

// ClientOption configures a Client.
type ClientOption func(*clientConfig) error

// WithLogger sets the structured logger used by the client and its caches.
func WithLogger(logger *slog.Logger) ClientOption {
	return func(cfg *clientConfig) error {
		if logger == nil {
			err := errors.New(errors.CodeInvalidInput, "logger cannot be nil")
			return errors.WithContext(err, "field", "logger")
		}
		cfg.logger = logger
		return nil
	}
}

// WithRetention sets how long cached collections are kept.
func WithRetention(d time.Duration) ClientOption {
	return func(cfg *clientConfig) error {
		cfg.retention = d
		return nil
	}
}

// WithFetchRetries sets how many times a failed read is retried when the
// failure is retryable.
func WithFetchRetries(n int) ClientOption {
	return func(cfg *clientConfig) error {
		cfg.retries = n
		return nil
	}
}

// UserUpdateOption configures a user update.
type UserUpdateOption func(*UpdateUserOptions)

// WithName sets a new display name.
func WithName(name string) UserUpdateOption {
	return func(opts *UpdateUserOptions) {
		opts.Name = &name
	}
}

// WithUsername sets a new handle.
func WithUsername(username string) UserUpdateOption {
	return func(opts *UpdateUserOptions) {
		opts.Username = &username
	}
}

// WithEmail sets a new email address.
func WithEmail(email string) UserUpdateOption {
	return func(opts *UpdateUserOptions) {
		opts.Email = &email
	}
}

// PostUpdateOption configures a post update.
type PostUpdateOption func(*UpdatePostOptions)

// WithTitle sets a new title.
func WithTitle(title string) PostUpdateOption {
	return func(opts *UpdatePostOptions) {
		opts.Title = &title
	}
}

// WithBody sets a new body.
func WithBody(body string) PostUpdateOption {
	return func(opts *UpdatePostOptions) {
		opts.Body = &body
	}
}

// WithOwner moves the post to another user.
func WithOwner(userID int) PostUpdateOption {
	return func(opts *UpdatePostOptions) {
		opts.UserID = &userID
	}
}
