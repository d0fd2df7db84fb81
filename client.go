package placeholder

import (
	"context"
	"log/slog"
	"time"

	"github.com/jmgilman/go/errors"
	"github.com/jmgilman/go/placeholder/query"
)

// Client provides cached access to the users and posts collections.
// It is the main entry point and is meant to be created once at startup and
// passed to whatever renders or mutates data.
//
// Example usage:
//
//	gw, err := rest.New()
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	client, err := placeholder.NewClient(gw)
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	users, err := client.Users().List(ctx)
type Client struct {
	gateway Gateway
	users   *query.Cache[User]
	posts   *query.Cache[Post]
	logger  *slog.Logger
}

// clientConfig holds configuration for a Client.
type clientConfig struct {
	logger    *slog.Logger
	retention time.Duration
	retries   int
}

// NewClient creates a client backed by gateway.
func NewClient(gateway Gateway, opts ...ClientOption) (*Client, error) {
	if gateway == nil {
		err := errors.New(errors.CodeInvalidInput, "gateway cannot be nil")
		return nil, errors.WithContext(err, "field", "gateway")
	}

	cfg := &clientConfig{
		logger:    slog.New(slog.DiscardHandler),
		retention: query.DefaultRetention,
		retries:   query.DefaultFetchRetries,
	}
	for _, opt := range opts {
		if err := opt(cfg); err != nil {
			return nil, err
		}
	}

	cacheOpts := []query.Option{
		query.WithRetention(cfg.retention),
		query.WithFetchRetries(cfg.retries),
	}

	users, err := query.New[User](append(cacheOpts, query.WithLogger(cfg.logger.With("resource", KeyUsers)))...)
	if err != nil {
		return nil, err
	}
	posts, err := query.New[Post](append(cacheOpts, query.WithLogger(cfg.logger.With("resource", KeyPosts)))...)
	if err != nil {
		return nil, err
	}

	return &Client{
		gateway: gateway,
		users:   users,
		posts:   posts,
		logger:  cfg.logger,
	}, nil
}

// Users returns the user service.
func (c *Client) Users() *UserService {
	return &UserService{client: c}
}

// Posts returns the post service.
func (c *Client) Posts() *PostService {
	return &PostService{client: c}
}

// Start runs cache expiry janitors until ctx is done.
func (c *Client) Start(ctx context.Context) {
	c.users.Start(ctx)
	c.posts.Start(ctx)
}

// Gateway returns the underlying Gateway.
// This is an escape hatch for uncached access to the remote collections.
func (c *Client) Gateway() Gateway {
	return c.gateway
}

// UserCache returns the cache holding user collections.
func (c *Client) UserCache() *query.Cache[User] {
	return c.users
}

// PostCache returns the cache holding post collections.
func (c *Client) PostCache() *query.Cache[Post] {
	return c.posts
}
