package views

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"strconv"
	"sync"

	"github.com/jmgilman/go/placeholder"
	"github.com/jmgilman/go/placeholder/filters"
)

// SearchView renders users and posts together, matched against the users
// search term. Posts match on their author's username.
type SearchView struct {
	mu     sync.Mutex
	users  *placeholder.UserService
	posts  *placeholder.PostService
	store  *filters.Store
	out    io.Writer
	logger *slog.Logger
}

// NewSearchView creates a combined search view writing to out.
func NewSearchView(client *placeholder.Client, store *filters.Store, out io.Writer, opts ...Option) *SearchView {
	cfg := newConfig(opts)
	return &SearchView{
		users:  client.Users(),
		posts:  client.Posts(),
		store:  store,
		out:    out,
		logger: cfg.logger,
	}
}

// Render writes the combined table. Either collection may be served from a
// stale snapshot; the first read failure is returned.
func (v *SearchView) Render(ctx context.Context) error {
	v.mu.Lock()
	defer v.mu.Unlock()

	userList, uerr := v.users.List(ctx)
	users, usersOK := resolve(userList, uerr, v.users.Cached)

	postList, perr := v.posts.List(ctx)
	posts, postsOK := resolve(postList, perr, v.posts.Cached)

	if usersOK || postsOK {
		items := filters.Combined(users, posts, v.store.UserFilter().SearchTerm)
		if err := writeItems(v.out, items); err != nil {
			return err
		}
	}

	if uerr != nil {
		writeError(v.out, placeholder.KeyUsers, uerr, usersOK)
	}
	if perr != nil {
		writeError(v.out, placeholder.KeyPosts, perr, postsOK)
	}

	if uerr != nil {
		return uerr
	}
	return perr
}

// Bind re-renders the view whenever the users filter context changes.
func (v *SearchView) Bind(ctx context.Context) func() {
	return bind(ctx, v.store, v, v.logger, filters.ScopeUsers)
}

func writeItems(w io.Writer, items []filters.Item) error {
	if len(items) == 0 {
		_, err := fmt.Fprintln(w, "(no results)")
		return err
	}

	t := newTable(w, "KIND", "ID", "NAME/TITLE", "EMAIL")
	for _, item := range items {
		switch item.Kind {
		case filters.KindUser:
			t.row(string(item.Kind), strconv.Itoa(item.User.ID), item.User.Name, item.User.Email)
		case filters.KindPost:
			t.row(string(item.Kind), strconv.Itoa(item.Post.ID), item.Post.Title, item.AuthorEmail)
		}
	}
	return t.flush()
}
