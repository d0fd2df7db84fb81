// Package rest provides a Gateway implementation that talks to the API over
// HTTP using net/http.
//
// Each method issues exactly one request. Responses with a non-success status
// are reported as placeholder.ErrCodeRequestFailed; the gateway never retries.
package rest

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"strconv"
	"time"

	"github.com/google/go-querystring/query"
	"github.com/jmgilman/go/errors"
	"github.com/jmgilman/go/placeholder"
)

const contentTypeJSON = "application/json; charset=UTF-8"

// Gateway implements placeholder.Gateway over HTTP.
type Gateway struct {
	client  *http.Client
	baseURL *url.URL
	logger  *slog.Logger
}

// New creates a REST gateway.
//
// Example with defaults:
//
//	gw, err := rest.New()
//
// Example with a custom client:
//
//	httpClient := &http.Client{Timeout: 30 * time.Second}
//	gw, err := rest.New(rest.WithHTTPClient(httpClient))
func New(opts ...Option) (*Gateway, error) {
	cfg := &config{
		baseURL: placeholder.DefaultBaseURL,
		logger:  slog.New(slog.DiscardHandler),
	}

	for _, opt := range opts {
		if err := opt(cfg); err != nil {
			return nil, err
		}
	}

	base, err := url.Parse(cfg.baseURL)
	if err != nil {
		err := errors.Wrap(err, errors.CodeInvalidConfig, "invalid base URL")
		return nil, errors.WithContext(err, "base_url", cfg.baseURL)
	}
	if base.Scheme != "http" && base.Scheme != "https" || base.Host == "" {
		err := errors.New(errors.CodeInvalidConfig, "base URL must be an absolute http(s) URL")
		return nil, errors.WithContext(err, "base_url", cfg.baseURL)
	}

	client := cfg.client
	if client == nil {
		client = &http.Client{}
	}
	if cfg.timeout > 0 {
		cp := *client
		cp.Timeout = cfg.timeout
		client = &cp
	}

	return &Gateway{
		client:  client,
		baseURL: base,
		logger:  cfg.logger,
	}, nil
}

// config holds configuration for Gateway.
type config struct {
	client  *http.Client
	baseURL string
	timeout time.Duration
	logger  *slog.Logger
}

// Option configures the REST gateway.
type Option func(*config) error

// WithBaseURL sets the API root. Defaults to placeholder.DefaultBaseURL.
func WithBaseURL(baseURL string) Option {
	return func(cfg *config) error {
		if baseURL == "" {
			err := errors.New(errors.CodeInvalidInput, "base URL cannot be empty")
			return errors.WithContext(err, "field", "base_url")
		}
		cfg.baseURL = baseURL
		return nil
	}
}

// WithHTTPClient sets a custom HTTP client.
func WithHTTPClient(client *http.Client) Option {
	return func(cfg *config) error {
		if client == nil {
			err := errors.New(errors.CodeInvalidInput, "http client cannot be nil")
			return errors.WithContext(err, "field", "client")
		}
		cfg.client = client
		return nil
	}
}

// WithTimeout bounds every request. Zero means no timeout.
func WithTimeout(timeout time.Duration) Option {
	return func(cfg *config) error {
		if timeout < 0 {
			err := errors.New(errors.CodeInvalidInput, "timeout cannot be negative")
			return errors.WithContext(err, "field", "timeout")
		}
		cfg.timeout = timeout
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

// User operations

// ListUsers retrieves all users.
func (g *Gateway) ListUsers(ctx context.Context) ([]placeholder.User, error) {
	var users []placeholder.User
	if err := g.do(ctx, http.MethodGet, "/users", nil, nil, &users); err != nil {
		return nil, err
	}
	return users, nil
}

// GetUser retrieves a single user.
func (g *Gateway) GetUser(ctx context.Context, id int) (*placeholder.User, error) {
	var user placeholder.User
	if err := g.do(ctx, http.MethodGet, userPath(id), nil, nil, &user); err != nil {
		return nil, err
	}
	return &user, nil
}

// CreateUser creates a user.
func (g *Gateway) CreateUser(ctx context.Context, opts placeholder.CreateUserOptions) (*placeholder.User, error) {
	var user placeholder.User
	if err := g.do(ctx, http.MethodPost, "/users", nil, opts, &user); err != nil {
		return nil, err
	}
	return &user, nil
}

// UpdateUser updates a user.
func (g *Gateway) UpdateUser(ctx context.Context, id int, opts placeholder.UpdateUserOptions) (*placeholder.User, error) {
	var user placeholder.User
	if err := g.do(ctx, http.MethodPut, userPath(id), nil, opts, &user); err != nil {
		return nil, err
	}
	return &user, nil
}

// DeleteUser deletes a user.
func (g *Gateway) DeleteUser(ctx context.Context, id int) error {
	return g.do(ctx, http.MethodDelete, userPath(id), nil, nil, nil)
}

// Post operations

// ListPosts retrieves posts, narrowed by opts.
func (g *Gateway) ListPosts(ctx context.Context, opts placeholder.ListPostsOptions) ([]placeholder.Post, error) {
	values, err := query.Values(opts)
	if err != nil {
		return nil, errors.Wrap(err, errors.CodeInvalidInput, "failed to encode list options")
	}

	var posts []placeholder.Post
	if err := g.do(ctx, http.MethodGet, "/posts", values, nil, &posts); err != nil {
		return nil, err
	}
	return posts, nil
}

// GetPost retrieves a single post.
func (g *Gateway) GetPost(ctx context.Context, id int) (*placeholder.Post, error) {
	var post placeholder.Post
	if err := g.do(ctx, http.MethodGet, postPath(id), nil, nil, &post); err != nil {
		return nil, err
	}
	return &post, nil
}

// ListUserPosts retrieves the posts of one user.
func (g *Gateway) ListUserPosts(ctx context.Context, userID int) ([]placeholder.Post, error) {
	var posts []placeholder.Post
	if err := g.do(ctx, http.MethodGet, userPath(userID)+"/posts", nil, nil, &posts); err != nil {
		return nil, err
	}
	return posts, nil
}

// CreatePost creates a post.
func (g *Gateway) CreatePost(ctx context.Context, opts placeholder.CreatePostOptions) (*placeholder.Post, error) {
	var post placeholder.Post
	if err := g.do(ctx, http.MethodPost, "/posts", nil, opts, &post); err != nil {
		return nil, err
	}
	return &post, nil
}

// UpdatePost updates a post.
func (g *Gateway) UpdatePost(ctx context.Context, id int, opts placeholder.UpdatePostOptions) (*placeholder.Post, error) {
	var post placeholder.Post
	if err := g.do(ctx, http.MethodPut, postPath(id), nil, opts, &post); err != nil {
		return nil, err
	}
	return &post, nil
}

// DeletePost deletes a post.
func (g *Gateway) DeletePost(ctx context.Context, id int) error {
	return g.do(ctx, http.MethodDelete, postPath(id), nil, nil, nil)
}

// do sends one request and decodes the response into out (when non-nil).
func (g *Gateway) do(ctx context.Context, method, path string, values url.Values, body, out interface{}) error {
	u := g.baseURL.JoinPath(path)
	if len(values) > 0 {
		u.RawQuery = values.Encode()
	}

	var reader io.Reader
	if body != nil {
		payload, err := json.Marshal(body)
		if err != nil {
			return errors.Wrap(err, errors.CodeInvalidInput, "failed to marshal request")
		}
		reader = bytes.NewReader(payload)
	}

	req, err := http.NewRequestWithContext(ctx, method, u.String(), reader)
	if err != nil {
		return errors.Wrap(err, errors.CodeInvalidInput, "failed to build request")
	}
	req.Header.Set("Accept", "application/json")
	if body != nil {
		req.Header.Set("Content-Type", contentTypeJSON)
	}

	start := time.Now()
	resp, err := g.client.Do(req)
	if err != nil {
		return placeholder.WrapTransportError(err, method, path)
	}
	defer func() { _ = resp.Body.Close() }()

	g.logger.Debug("request completed",
		"method", method,
		"path", path,
		"status", resp.StatusCode,
		"duration", time.Since(start),
	)

	if !placeholder.IsSuccess(resp.StatusCode) {
		_, _ = io.Copy(io.Discard, resp.Body)
		return placeholder.NewRequestFailedError(method, path, resp.StatusCode)
	}

	if out == nil {
		return nil
	}
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return placeholder.WrapDecodeError(err, path)
	}
	return nil
}

func userPath(id int) string {
	return "/users/" + strconv.Itoa(id)
}

func postPath(id int) string {
	return "/posts/" + strconv.Itoa(id)
}
