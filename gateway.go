package placeholder

import "context"

//go:generate go run github.com/matryer/moq@latest -out mocks/gateway.go -pkg mocks . Gateway

// Gateway defines the interface for talking to the remote collections.
// Implementations include the REST gateway (net/http) and the CLI gateway
// (curl through the workspace exec module).
//
// Every method issues exactly one request. There are no retries, no batching
// and no timeout unless the implementation was configured with one. A
// response with a non-success status fails with ErrCodeRequestFailed; callers
// must treat such failures as transient and of unknown cause.
//
// Example using the REST gateway:
//
//	gw, err := rest.New(rest.WithBaseURL(placeholder.DefaultBaseURL))
//	if err != nil {
//	    log.Fatal(err)
//	}
//	users, err := gw.ListUsers(ctx)
type Gateway interface {
	// User operations

	// ListUsers retrieves all users (GET /users).
	ListUsers(ctx context.Context) ([]User, error)

	// GetUser retrieves a single user (GET /users/{id}).
	GetUser(ctx context.Context, id int) (*User, error)

	// CreateUser creates a user (POST /users) and returns the server's copy.
	CreateUser(ctx context.Context, opts CreateUserOptions) (*User, error)

	// UpdateUser updates a user (PUT /users/{id}).
	// Only non-nil fields in opts are sent.
	UpdateUser(ctx context.Context, id int, opts UpdateUserOptions) (*User, error)

	// DeleteUser deletes a user (DELETE /users/{id}).
	DeleteUser(ctx context.Context, id int) error

	// Post operations

	// ListPosts retrieves posts (GET /posts), optionally narrowed by opts.
	ListPosts(ctx context.Context, opts ListPostsOptions) ([]Post, error)

	// GetPost retrieves a single post (GET /posts/{id}).
	GetPost(ctx context.Context, id int) (*Post, error)

	// ListUserPosts retrieves the posts of one user (GET /users/{id}/posts).
	ListUserPosts(ctx context.Context, userID int) ([]Post, error)

	// CreatePost creates a post (POST /posts) and returns the server's copy.
	CreatePost(ctx context.Context, opts CreatePostOptions) (*Post, error)

	// UpdatePost updates a post (PUT /posts/{id}).
	// Only non-nil fields in opts are sent.
	UpdatePost(ctx context.Context, id int, opts UpdatePostOptions) (*Post, error)

	// DeletePost deletes a post (DELETE /posts/{id}).
	DeletePost(ctx context.Context, id int) error
}
