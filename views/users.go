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

// UserView renders the user collection narrowed by the users filter context.
type UserView struct {
	mu     sync.Mutex
	users  *placeholder.UserService
	store  *filters.Store
	out    io.Writer
	logger *slog.Logger
}

// NewUserView creates a user view writing to out.
func NewUserView(client *placeholder.Client, store *filters.Store, out io.Writer, opts ...Option) *UserView {
	cfg := newConfig(opts)
	return &UserView{
		users:  client.Users(),
		store:  store,
		out:    out,
		logger: cfg.logger,
	}
}

// Render writes the table. The returned error is the read failure, if any;
// it has already been reported in the output.
func (v *UserView) Render(ctx context.Context) error {
	v.mu.Lock()
	defer v.mu.Unlock()

	list, err := v.users.List(ctx)
	rows, ok := resolve(list, err, v.users.Cached)

	if ok {
		rows = filters.Users(rows, v.store.UserFilter().SearchTerm)
		if werr := writeUsers(v.out, rows); werr != nil {
			return werr
		}
	}
	if err != nil {
		writeError(v.out, placeholder.KeyUsers, err, ok)
	}
	return err
}

// Bind re-renders the view whenever the users filter context changes.
// The returned function detaches it.
func (v *UserView) Bind(ctx context.Context) func() {
	return bind(ctx, v.store, v, v.logger, filters.ScopeUsers)
}

func writeUsers(w io.Writer, users []placeholder.User) error {
	if len(users) == 0 {
		_, err := fmt.Fprintln(w, "(no users)")
		return err
	}

	t := newTable(w, "ID", "NAME", "USERNAME", "EMAIL")
	for _, u := range users {
		t.row(strconv.Itoa(u.ID), u.Name, u.Username, u.Email)
	}
	return t.flush()
}
