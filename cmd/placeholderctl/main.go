// Command placeholderctl lists, searches and edits the users and posts of the
// JSONPlaceholder API through the cached client.
package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"

	"github.com/docopt/docopt-go"
	"github.com/jmgilman/go/placeholder/filters"
	"golang.org/x/term"
)

const version = "0.1.0"

const usage = `Placeholder control.

Reads go through an in-memory cache; deletes and updates are applied locally
first and rolled back when the API rejects them.

Usage:
    placeholderctl users [list] [--search=<term>] [options]
    placeholderctl users get <id> [options]
    placeholderctl users posts <id> [options]
    placeholderctl users create --name=<name> --username=<username> --email=<email> [options]
    placeholderctl users update <id> [--name=<name>] [--username=<username>] [--email=<email>] [options]
    placeholderctl users delete <id> [options]
    placeholderctl posts [list] [--search=<term>] [--user=<id>] [options]
    placeholderctl posts get <id> [options]
    placeholderctl posts create --user=<id> --title=<title> [--body=<body>] [options]
    placeholderctl posts update <id> [--user=<id>] [--title=<title>] [--body=<body>] [options]
    placeholderctl posts delete <id> [options]
    placeholderctl search [<term>] [options]
    placeholderctl browse (users|posts|search) [options]
    placeholderctl -h | --help
    placeholderctl --version

Options:
    -h --help               Show this screen.
    --version               Show version.
    --config=<path>         YAML configuration file.
    --base-url=<url>        API root URL.
    --backend=<backend>     Transport, http or curl.
    --timeout=<duration>    Per request timeout, e.g. 10s.
    --log-level=<level>     debug, info, warn or error.
    --search=<term>         Case-insensitive search term.
    --user=<id>             Owner user id.
    --name=<name>           User name.
    --username=<username>   User handle.
    --email=<email>         User email.
    --title=<title>         Post title.
    --body=<body>           Post body.`

func main() {
	os.Exit(run(os.Args[1:], os.Stdin, os.Stdout, os.Stderr))
}

// run executes one invocation and returns the process exit code.
func run(args []string, stdin io.Reader, stdout, stderr io.Writer) int {
	helped := false
	parser := &docopt.Parser{
		HelpHandler: func(err error, usage string) {
			helped = true
			if err != nil {
				fmt.Fprintln(stderr, usage)
				return
			}
			fmt.Fprintln(stdout, usage)
		},
	}

	opts, err := parser.ParseArgs(usage, args, version)
	if err != nil {
		return 2
	}
	if helped {
		return 0
	}

	configPath, _ := opts.String("--config")
	cfg, err := LoadConfig(configPath)
	if err != nil {
		fmt.Fprintf(stderr, "error: %v\n", err)
		return 1
	}
	if err := cfg.ApplyFlags(opts); err != nil {
		fmt.Fprintf(stderr, "error: %v\n", err)
		return 1
	}
	if err := cfg.Validate(); err != nil {
		fmt.Fprintf(stderr, "error: %v\n", err)
		return 1
	}

	logger := cfg.NewLogger(stderr)

	gateway, err := cfg.NewGateway(logger)
	if err != nil {
		fmt.Fprintf(stderr, "error: %v\n", err)
		return 1
	}
	client, err := cfg.NewClient(gateway, logger)
	if err != nil {
		fmt.Fprintf(stderr, "error: %v\n", err)
		return 1
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()
	client.Start(ctx)

	a := &app{
		client: client,
		store:  filters.NewStore(),
		logger: logger,
		out:    stdout,
	}

	if browse, _ := opts.Bool("browse"); browse {
		b := newBrowser(a, browseTarget(opts), stdin, filters.NewDebouncer(cfg.Debounce))
		b.prompt = isTerminal(stdin)
		err = b.run(ctx)
	} else {
		err = a.dispatch(ctx, opts)
	}

	if err != nil {
		fmt.Fprintf(stderr, "error: %v\n", err)
		return 1
	}
	return 0
}

func browseTarget(opts docopt.Opts) filters.Scope {
	if posts, _ := opts.Bool("posts"); posts {
		return filters.ScopePosts
	}
	if search, _ := opts.Bool("search"); search {
		return scopeSearch
	}
	return filters.ScopeUsers
}

// isTerminal reports whether r is an interactive terminal.
func isTerminal(r io.Reader) bool {
	f, ok := r.(*os.File)
	return ok && term.IsTerminal(int(f.Fd()))
}
