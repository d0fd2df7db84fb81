package main

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"strconv"

	"github.com/docopt/docopt-go"
	"github.com/jmgilman/go/errors"
	"github.com/jmgilman/go/placeholder"
	"github.com/jmgilman/go/placeholder/filters"
	"github.com/jmgilman/go/placeholder/views"
	"gopkg.in/yaml.v3"
)

// app holds what every command needs.
type app struct {
	client *placeholder.Client
	store  *filters.Store
	logger *slog.Logger
	out    io.Writer
}

// dispatch runs a one-shot command.
func (a *app) dispatch(ctx context.Context, opts docopt.Opts) error {
	// "users posts <id>" also sets "posts", so users is checked first.
	if users, _ := opts.Bool("users"); users {
		return a.users(ctx, opts)
	}
	if posts, _ := opts.Bool("posts"); posts {
		return a.posts(ctx, opts)
	}
	if search, _ := opts.Bool("search"); search {
		term, _ := opts.String("<term>")
		a.store.SetUserSearchTerm(term)
		return views.NewSearchView(a.client, a.store, a.out, views.WithLogger(a.logger)).Render(ctx)
	}
	return nil
}

func (a *app) users(ctx context.Context, opts docopt.Opts) error {
	svc := a.client.Users()

	switch {
	case flag(opts, "get"):
		id, err := intArg(opts, "<id>")
		if err != nil {
			return err
		}
		user, err := svc.Get(ctx, id)
		if err != nil {
			return err
		}
		return a.print(user)

	case flag(opts, "posts"):
		id, err := intArg(opts, "<id>")
		if err != nil {
			return err
		}
		a.store.SetSelectedUserID(&id)
		return views.NewPostView(a.client, a.store, a.out, views.WithLogger(a.logger)).Render(ctx)

	case flag(opts, "create"):
		name, _ := opts.String("--name")
		username, _ := opts.String("--username")
		email, _ := opts.String("--email")
		user, err := svc.Create(ctx, placeholder.CreateUserOptions{Name: name, Username: username, Email: email})
		if err != nil {
			return err
		}
		return a.print(user)

	case flag(opts, "update"):
		id, err := intArg(opts, "<id>")
		if err != nil {
			return err
		}
		var updates []placeholder.UserUpdateOption
		if v, err := opts.String("--name"); err == nil {
			updates = append(updates, placeholder.WithName(v))
		}
		if v, err := opts.String("--username"); err == nil {
			updates = append(updates, placeholder.WithUsername(v))
		}
		if v, err := opts.String("--email"); err == nil {
			updates = append(updates, placeholder.WithEmail(v))
		}
		user, err := svc.Update(ctx, id, updates...)
		if err != nil {
			return err
		}
		return a.print(user)

	case flag(opts, "delete"):
		id, err := intArg(opts, "<id>")
		if err != nil {
			return err
		}
		if err := svc.Delete(ctx, id); err != nil {
			return err
		}
		_, err = fmt.Fprintf(a.out, "deleted user %d\n", id)
		return err

	default:
		term, _ := opts.String("--search")
		a.store.SetUserSearchTerm(term)
		return views.NewUserView(a.client, a.store, a.out, views.WithLogger(a.logger)).Render(ctx)
	}
}

func (a *app) posts(ctx context.Context, opts docopt.Opts) error {
	svc := a.client.Posts()

	switch {
	case flag(opts, "get"):
		id, err := intArg(opts, "<id>")
		if err != nil {
			return err
		}
		post, err := svc.Get(ctx, id)
		if err != nil {
			return err
		}
		return a.print(post)

	case flag(opts, "create"):
		owner, err := intArg(opts, "--user")
		if err != nil {
			return err
		}
		title, _ := opts.String("--title")
		body, _ := opts.String("--body")
		post, err := svc.Create(ctx, placeholder.CreatePostOptions{UserID: owner, Title: title, Body: body})
		if err != nil {
			return err
		}
		return a.print(post)

	case flag(opts, "update"):
		id, err := intArg(opts, "<id>")
		if err != nil {
			return err
		}
		var updates []placeholder.PostUpdateOption
		if _, err := opts.String("--user"); err == nil {
			owner, err := intArg(opts, "--user")
			if err != nil {
				return err
			}
			updates = append(updates, placeholder.WithOwner(owner))
		}
		if v, err := opts.String("--title"); err == nil {
			updates = append(updates, placeholder.WithTitle(v))
		}
		if v, err := opts.String("--body"); err == nil {
			updates = append(updates, placeholder.WithBody(v))
		}
		post, err := svc.Update(ctx, id, updates...)
		if err != nil {
			return err
		}
		return a.print(post)

	case flag(opts, "delete"):
		id, err := intArg(opts, "<id>")
		if err != nil {
			return err
		}
		if err := svc.Delete(ctx, id); err != nil {
			return err
		}
		_, err = fmt.Fprintf(a.out, "deleted post %d\n", id)
		return err

	default:
		term, _ := opts.String("--search")
		a.store.SetPostSearchTerm(term)
		if _, err := opts.String("--user"); err == nil {
			owner, err := intArg(opts, "--user")
			if err != nil {
				return err
			}
			a.store.SetSelectedUserID(&owner)
		}
		return views.NewPostView(a.client, a.store, a.out, views.WithLogger(a.logger)).Render(ctx)
	}
}

// print writes a single record as YAML.
func (a *app) print(v interface{}) error {
	enc := yaml.NewEncoder(a.out)
	if err := enc.Encode(v); err != nil {
		return errors.Wrap(err, errors.CodeInternal, "failed to encode output")
	}
	if err := enc.Close(); err != nil {
		return errors.Wrap(err, errors.CodeInternal, "failed to flush output")
	}
	return nil
}

func flag(opts docopt.Opts, name string) bool {
	v, _ := opts.Bool(name)
	return v
}

// intArg parses an integer argument or option value.
func intArg(opts docopt.Opts, name string) (int, error) {
	raw, err := opts.String(name)
	if err != nil {
		err := errors.New(errors.CodeInvalidInput, "missing value")
		return 0, errors.WithContext(err, "argument", name)
	}
	v, err := strconv.Atoi(raw)
	if err != nil {
		err := errors.Wrapf(err, errors.CodeInvalidInput, "%s must be an integer", name)
		return 0, errors.WithContext(err, "value", raw)
	}
	return v, nil
}
