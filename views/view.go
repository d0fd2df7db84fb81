// Package views renders the cached collections as aligned text tables.
//
// Views read through the client services, so rendering triggers a fetch
// only when the cached collection is missing or stale. When a fetch fails
// the last good collection is rendered followed by an error line; with
// nothing cached only the error line is written.
package views

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"strings"
	"text/tabwriter"

	"github.com/jmgilman/go/placeholder/filters"
	"github.com/jmgilman/go/placeholder/query"
)

// Option configures a view.
type Option func(*config)

type config struct {
	logger *slog.Logger
}

// WithLogger sets the logger used for failures during bound re-renders.
func WithLogger(logger *slog.Logger) Option {
	return func(c *config) {
		if logger != nil {
			c.logger = logger
		}
	}
}

func newConfig(opts []Option) *config {
	cfg := &config{logger: slog.New(slog.DiscardHandler)}
	for _, opt := range opts {
		opt(cfg)
	}
	return cfg
}

// renderer is implemented by every view.
type renderer interface {
	Render(ctx context.Context) error
}

// bind re-renders r whenever store changes one of scopes.
func bind(ctx context.Context, store *filters.Store, r renderer, logger *slog.Logger, scopes ...filters.Scope) func() {
	_, unsubscribe := store.Subscribe(func(_ filters.State, changed filters.Scope) {
		for _, scope := range scopes {
			if scope == changed {
				if err := r.Render(ctx); err != nil {
					logger.Debug("re-render failed", "scope", changed, "error", err)
				}
				return
			}
		}
	})
	return unsubscribe
}

// resolve picks the rows to render after a read: the fresh result, or the
// last cached collection when the read failed. ok is false when there is
// nothing to show.
func resolve[T any](fresh []T, err error, cached func() (query.Entry[T], bool)) (rows []T, ok bool) {
	if err == nil {
		return fresh, true
	}
	if entry, found := cached(); found && entry.HasData {
		return entry.Data, true
	}
	return nil, false
}

// table writes tab separated rows with aligned columns.
type table struct {
	tw *tabwriter.Writer
}

func newTable(w io.Writer, headers ...string) *table {
	t := &table{tw: tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)}
	t.row(headers...)
	return t
}

func (t *table) row(cols ...string) {
	fmt.Fprintln(t.tw, strings.Join(cols, "\t"))
}

func (t *table) flush() error {
	return t.tw.Flush()
}

// writeError writes the failure indicator shown under a table.
func writeError(w io.Writer, resource string, err error, stale bool) {
	if stale {
		fmt.Fprintf(w, "! could not refresh %s, showing cached data: %v\n", resource, err)
		return
	}
	fmt.Fprintf(w, "! could not load %s: %v\n", resource, err)
}
