package placeholder

import (
	"strconv"
	"strings"

	"github.com/jmgilman/go/errors"
)

// DefaultBaseURL is the public JSONPlaceholder endpoint.
const DefaultBaseURL = "https://jsonplaceholder.typicode.com"

// Resource keys used by the client caches.
const (
	// KeyUsers caches the full user collection.
	KeyUsers = "users"

	// KeyPosts caches the full post collection.
	KeyPosts = "posts"
)

// UserPostsKey returns the cache key for the posts owned by a single user.
// The key mirrors the endpoint path (users/{id}/posts).
func UserPostsKey(userID int) string {
	return KeyUsers + "/" + strconv.Itoa(userID) + "/" + KeyPosts
}

// IsUserPostsKey reports whether key was produced by UserPostsKey.
func IsUserPostsKey(key string) bool {
	return strings.HasPrefix(key, KeyUsers+"/") && strings.HasSuffix(key, "/"+KeyPosts)
}

// validateID rejects identifiers the API could never have assigned.
func validateID(field string, id int) error {
	if id <= 0 {
		return errors.WithContext(newInvalidInputError(field, "must be positive"), "value", id)
	}
	return nil
}
