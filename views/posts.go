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

// PostView renders the post collection narrowed by the posts filter context.
// Authors are resolved against the user collection; a missing author is
// shown as filters.UnknownAuthor.
type PostView struct {
	mu     sync.Mutex
	posts  *placeholder.PostService
	users  *placeholder.UserService
	store  *filters.Store
	out    io.Writer
	logger *slog.Logger
}

// NewPostView creates a post view writing to out.
func NewPostView(client *placeholder.Client, store *filters.Store, out io.Writer, opts ...Option) *PostView {
	cfg := newConfig(opts)
	return &PostView{
		posts:  client.Posts(),
		users:  client.Users(),
		store:  store,
		out:    out,
		logger: cfg.logger,
	}
}

// Render writes the table. The returned error is the post read failure, if
// any. A failure to load users only degrades the author column.
func (v *PostView) Render(ctx context.Context) error {
	v.mu.Lock()
	defer v.mu.Unlock()

	list, err := v.posts.List(ctx)
	rows, ok := resolve(list, err, v.posts.Cached)

	userList, uerr := v.users.List(ctx)
	users, _ := resolve(userList, uerr, v.users.Cached)
	if uerr != nil {
		v.logger.Debug("rendering posts without fresh users", "error", uerr)
	}

	filter := v.store.PostFilter()
	if filter.SelectedUserID != nil {
		fmt.Fprintf(v.out, "posts by %s\n", filters.AuthorName(users, *filter.SelectedUserID))
	}

	if ok {
		rows = filters.Posts(rows, filter.SelectedUserID, filter.SearchTerm)
		if werr := writePosts(v.out, rows, users); werr != nil {
			return werr
		}
	}
	if err != nil {
		writeError(v.out, placeholder.KeyPosts, err, ok)
	}
	return err
}

// Bind re-renders the view whenever the posts filter context changes.
// The returned function detaches it.
func (v *PostView) Bind(ctx context.Context) func() {
	return bind(ctx, v.store, v, v.logger, filters.ScopePosts)
}

func writePosts(w io.Writer, posts []placeholder.Post, users []placeholder.User) error {
	if len(posts) == 0 {
		_, err := fmt.Fprintln(w, "(no posts)")
		return err
	}

	t := newTable(w, "ID", "AUTHOR", "TITLE")
	for _, p := range posts {
		t.row(strconv.Itoa(p.ID), filters.AuthorName(users, p.UserID), p.Title)
	}
	return t.flush()
}
