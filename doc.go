// Package placeholder provides a cached client for the users and posts
// collections of the JSONPlaceholder demo API.
//
// Reads are served from an in-memory cache keyed by resource. Updates and
// deletes are applied to the cached collection before the request is sent
// and rolled back to the exact previous snapshot if the request fails.
//
// # Architecture
//
// The library is built on several key principles:
//
//  1. Transport abstraction through the Gateway interface
//  2. Two concrete gateways (net/http and curl)
//  3. A generic keyed cache with request coalescing (package query)
//  4. Resource services (UserService, PostService) that own cache keys
//  5. Consistent error handling using workspace errors library
//  6. Context support for cancellation and timeouts
//
// # Core Types
//
// Client is the main entry point. It is constructed once and passed to
// whatever needs data; there is no package-level state.
//
// UserService and PostService provide the cached operations for one resource
// kind each.
//
// Gateway abstracts the remote API. Each call issues exactly one request.
//
// # Gateway Implementations
//
// ## REST Gateway
//
// Package providers/rest talks to the API with net/http. It is the default.
//
// ## CLI Gateway
//
// Package providers/cli shells out to curl through the workspace exec
// module. Useful where outbound traffic must go through a configured curl.
//
// # Resource Keys
//
// Collections are cached under:
//
//   - "users": every user (KeyUsers)
//   - "posts": every post (KeyPosts)
//   - "users/{id}/posts": the posts of one user (UserPostsKey)
//
// Any successful post mutation invalidates "posts" and every
// "users/{id}/posts" key.
//
// # Usage Examples
//
// ## Example 1: Listing and Searching Users
//
//	package main
//
//	import (
//	    "context"
//	    "fmt"
//	    "log"
//
//	    "github.com/jmgilman/go/placeholder"
//	    "github.com/jmgilman/go/placeholder/filters"
//	    "github.com/jmgilman/go/placeholder/providers/rest"
//	)
//
//	func main() {
//	    gw, err := rest.New()
//	    if err != nil {
//	        log.Fatal(err)
//	    }
//
//	    client, err := placeholder.NewClient(gw)
//	    if err != nil {
//	        log.Fatal(err)
//	    }
//
//	    ctx := context.Background()
//	    users, err := client.Users().List(ctx)
//	    if err != nil {
//	        log.Fatal(err)
//	    }
//
//	    for _, u := range filters.Users(users, "clem") {
//	        fmt.Println(u.Name)
//	    }
//	}
//
// ## Example 2: Optimistic Delete
//
//	if err := client.Posts().Delete(ctx, 5); err != nil {
//	    // The request failed and post 5 is back in the cached collection.
//	    entry, _ := client.Posts().Cached()
//	    render(entry.Data)
//	}
//
// ## Example 3: Partial Updates
//
//	user, err := client.Users().Update(ctx, 3,
//	    placeholder.WithName("Clementine Bauch"),
//	    placeholder.WithEmail("nathan@yesenia.net"),
//	)
//
// # Error Handling
//
// The library uses the workspace errors library for consistent error handling.
// Errors carry one of these codes:
//
//   - ErrCodeRequestFailed: the API answered with a non-success status
//   - ErrCodeFetchFailed: a read failed; cached data is untouched
//   - ErrCodeMutationFailed: a write failed; optimistic edits were rolled back
//   - errors.CodeInvalidInput: invalid identifiers or missing fields
//   - errors.CodeNetwork: the request never got a response
//
// Request and network failures are classified retryable:
//
//	if err := client.Users().Delete(ctx, 1); err != nil {
//	    if placeholder.IsMutationFailed(err) && errors.IsRetryable(err) {
//	        // offer the user a retry
//	    }
//	}
//
// # Testing
//
// The mocks sub-package provides a moq generated GatewayMock:
//
//	mock := &mocks.GatewayMock{
//	    ListUsersFunc: func(ctx context.Context) ([]placeholder.User, error) {
//	        return []placeholder.User{{ID: 1, Name: "Leanne Graham"}}, nil
//	    },
//	}
//	client, err := placeholder.NewClient(mock)
//
// For testing the CLI gateway without curl installed:
//
//	gw, err := cli.New(cli.WithExecutor(mockExecutor))
//
// # Dependencies
//
// This library depends on:
//   - github.com/jmgilman/go/errors - Workspace errors library
//   - github.com/jmgilman/go/exec - Workspace exec library (for the CLI gateway)
//   - github.com/jellydator/ttlcache/v3 - Cache retention
//   - golang.org/x/sync - Request coalescing
//   - github.com/google/go-querystring - Query string encoding
package placeholder
