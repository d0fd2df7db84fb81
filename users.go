package placeholder

import (
	"context"

	"github.com/jmgilman/go/placeholder/query"
)

// UserService provides cached user operations.
//
// UserService instances are obtained from a Client:
//
//	users := client.Users()
//	list, err := users.List(ctx)
//
// Reads go through the user cache under KeyUsers. Update and Delete edit the
// cached collection optimistically and roll back if the request fails.
type UserService struct {
	client *Client
}

// List returns all users, from the cache when fresh.
// On failure the previous collection, if any, stays available via Cached.
func (s *UserService) List(ctx context.Context) ([]User, error) {
	users, err := s.client.users.Fetch(ctx, KeyUsers, s.client.gateway.ListUsers)
	if err != nil {
		return nil, wrapFetchError(err, "failed to list users")
	}
	return users, nil
}

// Cached returns the cache entry for the user collection without fetching.
// The entry may be stale or carry the error of the last failed fetch.
func (s *UserService) Cached() (query.Entry[User], bool) {
	return s.client.users.Get(KeyUsers)
}

// Invalidate marks the user collection stale.
func (s *UserService) Invalidate() {
	s.client.users.Invalidate(KeyUsers)
}

// Get retrieves a single user. It is not cached.
func (s *UserService) Get(ctx context.Context, id int) (*User, error) {
	if err := validateID("user id", id); err != nil {
		return nil, err
	}

	user, err := s.client.gateway.GetUser(ctx, id)
	if err != nil {
		return nil, wrapFetchError(err, "failed to get user")
	}
	return user, nil
}

// Posts returns the posts owned by the user with the given id.
func (s *UserService) Posts(ctx context.Context, id int) ([]Post, error) {
	return s.client.Posts().ListByUser(ctx, id)
}

// Create creates a user. The identifier is assigned by the server, so the
// cache is not edited optimistically; it is invalidated once the request
// succeeds.
func (s *UserService) Create(ctx context.Context, opts CreateUserOptions) (*User, error) {
	if opts.Name == "" {
		return nil, newInvalidInputError("name", "cannot be empty")
	}
	if opts.Username == "" {
		return nil, newInvalidInputError("username", "cannot be empty")
	}
	if opts.Email == "" {
		return nil, newInvalidInputError("email", "cannot be empty")
	}

	var created *User
	result := s.client.users.Mutate(ctx, KeyUsers, nil, func(ctx context.Context) error {
		var err error
		created, err = s.client.gateway.CreateUser(ctx, opts)
		return err
	})
	if result.Err != nil {
		return nil, wrapMutationError(result.Err, "failed to create user")
	}

	s.client.logger.Debug("created user", "id", created.ID)
	return created, nil
}

// Update updates the user with the provided options. The cached copy is
// changed before the request is sent and restored if it fails.
//
// Example:
//
//	user, err := client.Users().Update(ctx, 3,
//	    placeholder.WithName("Clementine Bauch"),
//	    placeholder.WithEmail("nathan@yesenia.net"),
//	)
func (s *UserService) Update(ctx context.Context, id int, opts ...UserUpdateOption) (*User, error) {
	if err := validateID("user id", id); err != nil {
		return nil, err
	}

	updateOpts := UpdateUserOptions{}
	for _, opt := range opts {
		opt(&updateOpts)
	}
	if updateOpts.IsEmpty() {
		return nil, newInvalidInputError("update", "no fields to update")
	}

	updater := func(current []User) []User {
		for i, u := range current {
			if u.ID == id {
				current[i] = updateOpts.Apply(u)
			}
		}
		return current
	}

	var updated *User
	result := s.client.users.Mutate(ctx, KeyUsers, updater, func(ctx context.Context) error {
		var err error
		updated, err = s.client.gateway.UpdateUser(ctx, id, updateOpts)
		return err
	})
	if result.Err != nil {
		s.client.logger.Warn("user update rolled back", "id", id, "error", result.Err)
		return nil, wrapMutationError(result.Err, "failed to update user")
	}

	return updated, nil
}

// Delete deletes the user with the given id. The user disappears from the
// cached collection immediately and reappears if the request fails.
func (s *UserService) Delete(ctx context.Context, id int) error {
	if err := validateID("user id", id); err != nil {
		return err
	}

	updater := func(current []User) []User {
		out := make([]User, 0, len(current))
		for _, u := range current {
			if u.ID != id {
				out = append(out, u)
			}
		}
		return out
	}

	result := s.client.users.Mutate(ctx, KeyUsers, updater, func(ctx context.Context) error {
		return s.client.gateway.DeleteUser(ctx, id)
	})
	if result.Err != nil {
		s.client.logger.Warn("user delete rolled back", "id", id, "error", result.Err)
		return wrapMutationError(result.Err, "failed to delete user")
	}

	return nil
}
