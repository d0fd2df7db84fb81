package placeholder

import (
	"context"

	"github.com/jmgilman/go/placeholder/query"
)

// PostService provides cached post operations.
//
// The full collection is cached under KeyPosts and per-user listings under
// UserPostsKey. Every successful post mutation invalidates both, since a
// change to one post can affect any listing that contains it.
//
//	posts := client.Posts()
//	if err := posts.Delete(ctx, 5); err != nil {
//	    // the post is back in the cached collection
//	}
type PostService struct {
	client *Client
}

// List returns all posts, from the cache when fresh.
func (s *PostService) List(ctx context.Context) ([]Post, error) {
	posts, err := s.client.posts.Fetch(ctx, KeyPosts, func(ctx context.Context) ([]Post, error) {
		return s.client.gateway.ListPosts(ctx, ListPostsOptions{})
	})
	if err != nil {
		return nil, wrapFetchError(err, "failed to list posts")
	}
	return posts, nil
}

// ListByUser returns the posts of one user, from the cache when fresh.
func (s *PostService) ListByUser(ctx context.Context, userID int) ([]Post, error) {
	if err := validateID("user id", userID); err != nil {
		return nil, err
	}

	posts, err := s.client.posts.Fetch(ctx, UserPostsKey(userID), func(ctx context.Context) ([]Post, error) {
		return s.client.gateway.ListUserPosts(ctx, userID)
	})
	if err != nil {
		return nil, wrapFetchError(err, "failed to list user posts")
	}
	return posts, nil
}

// Cached returns the cache entry for the full post collection without
// fetching.
func (s *PostService) Cached() (query.Entry[Post], bool) {
	return s.client.posts.Get(KeyPosts)
}

// Invalidate marks every cached post listing stale.
func (s *PostService) Invalidate() {
	s.client.posts.Invalidate(KeyPosts)
	s.client.posts.InvalidateMatching(IsUserPostsKey)
}

// Get retrieves a single post. It is not cached.
func (s *PostService) Get(ctx context.Context, id int) (*Post, error) {
	if err := validateID("post id", id); err != nil {
		return nil, err
	}

	post, err := s.client.gateway.GetPost(ctx, id)
	if err != nil {
		return nil, wrapFetchError(err, "failed to get post")
	}
	return post, nil
}

// Create creates a post. The cache is invalidated once the request succeeds.
func (s *PostService) Create(ctx context.Context, opts CreatePostOptions) (*Post, error) {
	if opts.Title == "" {
		return nil, newInvalidInputError("title", "cannot be empty")
	}
	if err := validateID("user id", opts.UserID); err != nil {
		return nil, err
	}

	var created *Post
	result := s.client.posts.Mutate(ctx, KeyPosts, nil, func(ctx context.Context) error {
		var err error
		created, err = s.client.gateway.CreatePost(ctx, opts)
		return err
	})
	if result.Err != nil {
		return nil, wrapMutationError(result.Err, "failed to create post")
	}

	s.client.posts.InvalidateMatching(IsUserPostsKey)
	s.client.logger.Debug("created post", "id", created.ID, "user_id", created.UserID)
	return created, nil
}

// Update updates the post with the provided options. The cached copy is
// changed before the request is sent and restored if it fails.
//
// Example:
//
//	post, err := client.Posts().Update(ctx, 1,
//	    placeholder.WithTitle("new title"),
//	    placeholder.WithOwner(2),
//	)
func (s *PostService) Update(ctx context.Context, id int, opts ...PostUpdateOption) (*Post, error) {
	if err := validateID("post id", id); err != nil {
		return nil, err
	}

	updateOpts := UpdatePostOptions{}
	for _, opt := range opts {
		opt(&updateOpts)
	}
	if updateOpts.IsEmpty() {
		return nil, newInvalidInputError("update", "no fields to update")
	}
	if updateOpts.UserID != nil {
		if err := validateID("user id", *updateOpts.UserID); err != nil {
			return nil, err
		}
	}
	if updateOpts.Title != nil && *updateOpts.Title == "" {
		return nil, newInvalidInputError("title", "cannot be empty")
	}

	updater := func(current []Post) []Post {
		for i, p := range current {
			if p.ID == id {
				current[i] = updateOpts.Apply(p)
			}
		}
		return current
	}

	var updated *Post
	result := s.client.posts.Mutate(ctx, KeyPosts, updater, func(ctx context.Context) error {
		var err error
		updated, err = s.client.gateway.UpdatePost(ctx, id, updateOpts)
		return err
	})
	if result.Err != nil {
		s.client.logger.Warn("post update rolled back", "id", id, "error", result.Err)
		return nil, wrapMutationError(result.Err, "failed to update post")
	}

	s.client.posts.InvalidateMatching(IsUserPostsKey)
	return updated, nil
}

// Delete deletes the post with the given id. The post disappears from the
// cached collection immediately and reappears if the request fails.
func (s *PostService) Delete(ctx context.Context, id int) error {
	if err := validateID("post id", id); err != nil {
		return err
	}

	updater := func(current []Post) []Post {
		out := make([]Post, 0, len(current))
		for _, p := range current {
			if p.ID != id {
				out = append(out, p)
			}
		}
		return out
	}

	result := s.client.posts.Mutate(ctx, KeyPosts, updater, func(ctx context.Context) error {
		return s.client.gateway.DeletePost(ctx, id)
	})
	if result.Err != nil {
		s.client.logger.Warn("post delete rolled back", "id", id, "error", result.Err)
		return wrapMutationError(result.Err, "failed to delete post")
	}

	s.client.posts.InvalidateMatching(IsUserPostsKey)
	return nil
}
