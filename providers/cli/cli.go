//nolint:contextcheck // Context is properly passed via CommandWrapper.WithContext() but linter cannot verify
package cli

import (
	"context"
	"encoding/json"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/google/go-querystring/query"
	"github.com/jmgilman/go/errors"
	"github.com/jmgilman/go/exec"
	"github.com/jmgilman/go/placeholder"
)

// curl exit codes that map to specific error codes.
const (
	curlExitCouldNotResolve = 6
	curlExitCouldNotConnect = 7
	curlExitTimedOut        = 28
)

// statusMarker separates the response body from the status line appended by
// the --write-out format.
const statusMarker = "\n"

// Option configures the CLI gateway.
type Option func(*Gateway) error

// Gateway implements placeholder.Gateway by shelling out to curl.
type Gateway struct {
	wrapper *exec.CommandWrapper
	baseURL string
	maxTime time.Duration
}

// New creates a gateway using the curl binary found on PATH.
// Uses the workspace exec module for command execution.
//
// Example:
//
//	gw, err := cli.New(cli.WithMaxTime(10 * time.Second))
//	if err != nil {
//	    log.Fatal(err)
//	}
func New(opts ...Option) (*Gateway, error) {
	// Default executor
	executor := exec.New(exec.WithInheritEnv())

	gw := &Gateway{
		wrapper: exec.NewWrapper(executor, "curl"),
		baseURL: placeholder.DefaultBaseURL,
	}

	// Apply options (can override the wrapper)
	for _, opt := range opts {
		if err := opt(gw); err != nil {
			return nil, err
		}
	}

	// Verify curl is installed
	result, err := gw.wrapper.Run("--version")
	if err != nil {
		return nil, wrapUnavailableError(err, result)
	}

	return gw, nil
}

// WithExecutor sets a custom executor for the CLI gateway.
// This is primarily useful for testing with a mock executor.
func WithExecutor(executor exec.Executor) Option {
	return func(g *Gateway) error {
		if executor == nil {
			err := errors.New(errors.CodeInvalidInput, "executor cannot be nil")
			return errors.WithContext(err, "field", "executor")
		}
		g.wrapper = exec.NewWrapper(executor, "curl")
		return nil
	}
}

// WithBaseURL sets the API root. Defaults to placeholder.DefaultBaseURL.
func WithBaseURL(baseURL string) Option {
	return func(g *Gateway) error {
		u, err := url.Parse(baseURL)
		if err != nil || u.Host == "" || (u.Scheme != "http" && u.Scheme != "https") {
			err := errors.New(errors.CodeInvalidConfig, "base URL must be an absolute http(s) URL")
			return errors.WithContext(err, "base_url", baseURL)
		}
		g.baseURL = strings.TrimSuffix(baseURL, "/")
		return nil
	}
}

// WithMaxTime bounds each transfer through curl's --max-time flag.
func WithMaxTime(d time.Duration) Option {
	return func(g *Gateway) error {
		if d < 0 {
			err := errors.New(errors.CodeInvalidInput, "max time cannot be negative")
			return errors.WithContext(err, "field", "max_time")
		}
		g.maxTime = d
		return nil
	}
}

// ListUsers retrieves all users.
func (g *Gateway) ListUsers(ctx context.Context) ([]placeholder.User, error) {
	var users []placeholder.User
	if err := g.request(ctx, "GET", "/users", "", nil, &users); err != nil {
		return nil, err
	}
	return users, nil
}

// GetUser retrieves a single user.
func (g *Gateway) GetUser(ctx context.Context, id int) (*placeholder.User, error) {
	var user placeholder.User
	if err := g.request(ctx, "GET", "/users/"+strconv.Itoa(id), "", nil, &user); err != nil {
		return nil, err
	}
	return &user, nil
}

// CreateUser creates a user.
func (g *Gateway) CreateUser(ctx context.Context, opts placeholder.CreateUserOptions) (*placeholder.User, error) {
	var user placeholder.User
	if err := g.request(ctx, "POST", "/users", "", opts, &user); err != nil {
		return nil, err
	}
	return &user, nil
}

// UpdateUser updates a user.
func (g *Gateway) UpdateUser(ctx context.Context, id int, opts placeholder.UpdateUserOptions) (*placeholder.User, error) {
	var user placeholder.User
	if err := g.request(ctx, "PUT", "/users/"+strconv.Itoa(id), "", opts, &user); err != nil {
		return nil, err
	}
	return &user, nil
}

// DeleteUser deletes a user.
func (g *Gateway) DeleteUser(ctx context.Context, id int) error {
	return g.request(ctx, "DELETE", "/users/"+strconv.Itoa(id), "", nil, nil)
}

// ListPosts retrieves posts, narrowed by opts.
func (g *Gateway) ListPosts(ctx context.Context, opts placeholder.ListPostsOptions) ([]placeholder.Post, error) {
	values, err := query.Values(opts)
	if err != nil {
		return nil, errors.Wrap(err, errors.CodeInvalidInput, "failed to encode list options")
	}

	var posts []placeholder.Post
	if err := g.request(ctx, "GET", "/posts", values.Encode(), nil, &posts); err != nil {
		return nil, err
	}
	return posts, nil
}

// GetPost retrieves a single post.
func (g *Gateway) GetPost(ctx context.Context, id int) (*placeholder.Post, error) {
	var post placeholder.Post
	if err := g.request(ctx, "GET", "/posts/"+strconv.Itoa(id), "", nil, &post); err != nil {
		return nil, err
	}
	return &post, nil
}

// ListUserPosts retrieves the posts of one user.
func (g *Gateway) ListUserPosts(ctx context.Context, userID int) ([]placeholder.Post, error) {
	var posts []placeholder.Post
	path := "/users/" + strconv.Itoa(userID) + "/posts"
	if err := g.request(ctx, "GET", path, "", nil, &posts); err != nil {
		return nil, err
	}
	return posts, nil
}

// CreatePost creates a post.
func (g *Gateway) CreatePost(ctx context.Context, opts placeholder.CreatePostOptions) (*placeholder.Post, error) {
	var post placeholder.Post
	if err := g.request(ctx, "POST", "/posts", "", opts, &post); err != nil {
		return nil, err
	}
	return &post, nil
}

// UpdatePost updates a post.
func (g *Gateway) UpdatePost(ctx context.Context, id int, opts placeholder.UpdatePostOptions) (*placeholder.Post, error) {
	var post placeholder.Post
	if err := g.request(ctx, "PUT", "/posts/"+strconv.Itoa(id), "", opts, &post); err != nil {
		return nil, err
	}
	return &post, nil
}

// DeletePost deletes a post.
func (g *Gateway) DeletePost(ctx context.Context, id int) error {
	return g.request(ctx, "DELETE", "/posts/"+strconv.Itoa(id), "", nil, nil)
}

// Helper methods

// request runs one curl invocation. curl is not asked to fail on HTTP errors;
// the status is appended to stdout and checked here instead.
func (g *Gateway) request(ctx context.Context, method, path, rawQuery string, body, out interface{}) error {
	args := []string{"-sS", "-X", method, "-H", "Accept: application/json"}

	if body != nil {
		payload, err := json.Marshal(body)
		if err != nil {
			return errors.Wrap(err, errors.CodeInvalidInput, "failed to marshal request")
		}
		args = append(args,
			"-H", "Content-Type: application/json; charset=UTF-8",
			"--data-raw", string(payload),
		)
	}

	if g.maxTime > 0 {
		args = append(args, "--max-time", strconv.FormatFloat(g.maxTime.Seconds(), 'f', -1, 64))
	}

	target := g.baseURL + path
	if rawQuery != "" {
		target += "?" + rawQuery
	}
	args = append(args, "-w", statusMarker+"%{http_code}", target)

	result, err := g.wrapper.Clone().WithContext(ctx).Run(args...)
	if err != nil {
		return wrapCLIError(err, result, method, path)
	}

	payload, status, err := splitStatus(result.Stdout)
	if err != nil {
		return errors.WithContext(err, "path", path)
	}
	if !placeholder.IsSuccess(status) {
		return placeholder.NewRequestFailedError(method, path, status)
	}

	if out == nil {
		return nil
	}
	if err := json.Unmarshal([]byte(payload), out); err != nil {
		return placeholder.WrapDecodeError(err, path)
	}
	return nil
}

// splitStatus separates the body from the trailing status code.
func splitStatus(stdout string) (string, int, error) {
	idx := strings.LastIndex(stdout, statusMarker)
	if idx < 0 {
		return "", 0, errors.New(errors.CodeInternal, "curl output is missing the status code")
	}

	status, err := strconv.Atoi(strings.TrimSpace(stdout[idx+len(statusMarker):]))
	if err != nil {
		return "", 0, errors.Wrap(err, errors.CodeInternal, "failed to parse status code")
	}
	return stdout[:idx], status, nil
}

// wrapCLIError wraps a failed curl invocation, mapping well-known exit codes.
func wrapCLIError(err error, result *exec.Result, method, path string) error {
	wrapped := placeholder.WrapTransportError(err, method, path)
	if result == nil {
		return wrapped
	}

	switch result.ExitCode {
	case curlExitTimedOut:
		wrapped = errors.Wrapf(wrapped, errors.CodeTimeout, "%s %s timed out", method, path)
	case curlExitCouldNotResolve, curlExitCouldNotConnect:
		// already a network error
	default:
		wrapped = errors.Wrapf(wrapped, errors.CodeExecutionFailed, "curl failed for %s %s", method, path)
	}

	wrapped = errors.WithContext(wrapped, "exit_code", result.ExitCode)
	if result.Stderr != "" {
		wrapped = errors.WithContext(wrapped, "stderr", strings.TrimSpace(result.Stderr))
	}
	return wrapped
}

// wrapUnavailableError wraps a failure to run curl at all.
func wrapUnavailableError(err error, result *exec.Result) error {
	unavailable := errors.Wrap(err, errors.CodeUnavailable, "curl is not available")
	unavailable = errors.WithContext(unavailable, "hint", "Install curl or use the http backend")
	if result != nil && result.Stderr != "" {
		unavailable = errors.WithContext(unavailable, "stderr", result.Stderr)
	}
	return unavailable
}
