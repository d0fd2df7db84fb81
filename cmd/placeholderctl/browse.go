package main

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"strconv"
	"strings"
	"sync"

	"github.com/jmgilman/go/placeholder/filters"
	"github.com/jmgilman/go/placeholder/views"
)

// scopeSearch selects the combined view in browse mode. It reuses the users
// search term.
const scopeSearch filters.Scope = "search"

const browseHelp = `type to search, or:
  :user N    show only posts by user N
  :user      show posts by every user
  :delete N  delete item N
  :refresh   reload from the API
  :quit      exit`

// view is implemented by every view in the views package.
type view interface {
	Render(ctx context.Context) error
	Bind(ctx context.Context) func()
}

// syncWriter serializes writes from the input loop and debounced renders.
type syncWriter struct {
	mu sync.Mutex
	w  io.Writer
}

func (s *syncWriter) Write(p []byte) (int, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.w.Write(p)
}

// browser is the interactive loop. Plain input lines become search terms,
// applied through the debouncer; lines starting with ':' are commands.
type browser struct {
	app       *app
	scope     filters.Scope
	in        io.Reader
	out       io.Writer
	debouncer *filters.Debouncer
	view      view
	prompt    bool
}

func newBrowser(a *app, scope filters.Scope, in io.Reader, debouncer *filters.Debouncer) *browser {
	out := &syncWriter{w: a.out}

	var v view
	switch scope {
	case filters.ScopePosts:
		v = views.NewPostView(a.client, a.store, out, views.WithLogger(a.logger))
	case scopeSearch:
		v = views.NewSearchView(a.client, a.store, out, views.WithLogger(a.logger))
	default:
		v = views.NewUserView(a.client, a.store, out, views.WithLogger(a.logger))
	}

	return &browser{
		app:       a,
		scope:     scope,
		in:        in,
		out:       out,
		debouncer: debouncer,
		view:      v,
	}
}

// run reads commands until :quit, end of input or ctx is done. Failures are
// printed and do not end the loop.
func (b *browser) run(ctx context.Context) error {
	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	unbind := b.view.Bind(ctx)
	defer unbind()
	defer b.debouncer.Cancel()

	fmt.Fprintln(b.out, browseHelp)
	b.render(ctx)

	lines := make(chan string)
	go func() {
		defer close(lines)
		scanner := bufio.NewScanner(b.in)
		for scanner.Scan() {
			select {
			case lines <- scanner.Text():
			case <-ctx.Done():
				return
			}
		}
	}()

	for {
		if b.prompt {
			fmt.Fprint(b.out, "> ")
		}

		select {
		case <-ctx.Done():
			return nil
		case line, ok := <-lines:
			if !ok {
				// Apply whatever was typed last before leaving.
				b.debouncer.Flush()
				return nil
			}
			if quit := b.handle(ctx, line); quit {
				return nil
			}
		}
	}
}

// handle processes one input line and reports whether to exit.
func (b *browser) handle(ctx context.Context, line string) bool {
	line = strings.TrimSpace(line)
	if !strings.HasPrefix(line, ":") {
		b.debouncer.Schedule(func() { b.setTerm(line) })
		return false
	}

	fields := strings.Fields(line)
	switch fields[0] {
	case ":quit", ":q":
		return true

	case ":refresh":
		b.app.client.Users().Invalidate()
		b.app.client.Posts().Invalidate()
		b.render(ctx)

	case ":user":
		if b.scope != filters.ScopePosts {
			fmt.Fprintln(b.out, "! :user only applies when browsing posts")
			return false
		}
		if len(fields) == 1 {
			b.app.store.SetSelectedUserID(nil)
			return false
		}
		id, err := strconv.Atoi(fields[1])
		if err != nil {
			fmt.Fprintf(b.out, "! invalid user id %q\n", fields[1])
			return false
		}
		b.app.store.SetSelectedUserID(&id)

	case ":delete":
		if len(fields) != 2 {
			fmt.Fprintln(b.out, "! usage: :delete N")
			return false
		}
		id, err := strconv.Atoi(fields[1])
		if err != nil {
			fmt.Fprintf(b.out, "! invalid id %q\n", fields[1])
			return false
		}
		b.delete(ctx, id)

	case ":help":
		fmt.Fprintln(b.out, browseHelp)

	default:
		fmt.Fprintf(b.out, "! unknown command %s\n", fields[0])
	}
	return false
}

func (b *browser) setTerm(term string) {
	if b.scope == filters.ScopePosts {
		b.app.store.SetPostSearchTerm(term)
		return
	}
	b.app.store.SetUserSearchTerm(term)
}

func (b *browser) delete(ctx context.Context, id int) {
	var err error
	if b.scope == filters.ScopePosts {
		err = b.app.client.Posts().Delete(ctx, id)
	} else {
		err = b.app.client.Users().Delete(ctx, id)
	}

	if err != nil {
		b.app.logger.Warn("delete failed", "id", id, "error", err)
		fmt.Fprintf(b.out, "! delete %d failed and was undone: %v\n", id, err)
	} else {
		fmt.Fprintf(b.out, "deleted %d\n", id)
	}
	b.render(ctx)
}

func (b *browser) render(ctx context.Context) {
	if err := b.view.Render(ctx); err != nil {
		b.app.logger.Debug("render failed", "scope", b.scope, "error", err)
	}
}
