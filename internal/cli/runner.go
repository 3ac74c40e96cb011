package cli

import (
	"bufio"
	"context"
	"fmt"
	"strings"
	"time"

	"go.uber.org/zap"

	"github.com/johnsonav1992/remix-v3-experimental/internal/app"
	"github.com/johnsonav1992/remix-v3-experimental/internal/auth"
	"github.com/johnsonav1992/remix-v3-experimental/internal/fetch"
	"github.com/johnsonav1992/remix-v3-experimental/internal/logging"
	"github.com/johnsonav1992/remix-v3-experimental/internal/tui"
	"github.com/johnsonav1992/remix-v3-experimental/internal/ui"
)

// Run dispatches subcommands and returns an exit code (0 ok, 1 error, 2 usage).
func Run(ctx context.Context, args []string, opt Options, stdio Stdio) int {
	if len(args) == 0 {
		PrintHelp(stdio)
		return 2
	}
	ui.SetTheme(opt.Theme)
	cmd, a := args[0], args[1:]

	switch cmd {
	case "help", "-h", "--help":
		PrintHelp(stdio)
		return 0

	case "app":
		return withSession(opt, stdio, func(s *app.Session, f fetch.Fetcher) int {
			if err := tui.Run(ctx, s, f, tui.Options{Group: opt.Group}); err != nil {
				ui.Fail(stdio.Err, "tui: "+err.Error())
				return 1
			}
			return 0
		})

	case "repl":
		return withSession(opt, stdio, func(s *app.Session, f fetch.Fetcher) int {
			r := NewREPL(s, f, opt.Group, stdio.Out, stdio.Err)
			defer r.Close()
			return r.Serve(ctx, stdio.In)
		})

	case "posts":
		return withSession(opt, stdio, func(s *app.Session, f fetch.Fetcher) int {
			return doPosts(ctx, s, f, stdio)
		})

	case "auth":
		if len(a) != 1 {
			ui.Fail(stdio.Err, "usage: tada auth <login|logout|status>")
			return 2
		}
		switch a[0] {
		case "login":
			return doAuthLogin(stdio)
		case "logout":
			return doAuthLogout(stdio)
		case "status":
			return doAuthStatus(stdio)
		}
		ui.Fail(stdio.Err, "usage: tada auth <login|logout|status>")
		return 2
	}

	ui.Fail(stdio.Err, "unknown subcommand: "+cmd)
	fmt.Fprintln(stdio.Err)
	PrintHelp(stdio)
	return 2
}

func PrintHelp(stdio Stdio) {
	fmt.Fprintf(stdio.Out, `tada - observable todo, counter and posts demos

Usage:
  tada [flags] <subcommand> [args]

Subcommands:
  app                         Interactive TUI (todos, counter, posts tabs)
  repl                        Line-oriented session over the same stores
  posts                       Fetch the posts feed once and print titles
  auth <login|logout|status>  Bearer token sent with the posts request

Flags:
  -group            list grouped by pending/done
  -theme NAME       classic | neon | mono
  -posts-url URL    feed endpoint (env %s)
  -log-file PATH    write JSON logs to PATH
  -debug            log every store mutation

Examples:
  tada app
  echo 'add Buy milk' | tada repl
  tada -posts-url http://localhost:8080/posts posts
`, PostsURLEnv)
}

// withSession builds the logger, session and fetcher shared by the
// interactive subcommands, runs fn, and tears everything down.
func withSession(opt Options, stdio Stdio, fn func(*app.Session, fetch.Fetcher) int) int {
	logger, err := logging.New(opt.LogFile, opt.Debug)
	if err != nil {
		ui.Fail(stdio.Err, "log: "+err.Error())
		return 1
	}
	s := app.NewSession(logger)
	defer s.Close()

	return fn(s, newFetcher(opt, s.Log, stdio))
}

func newFetcher(opt Options, log *zap.Logger, stdio Stdio) fetch.Fetcher {
	url := ResolvePostsURL(opt.PostsURL)
	creds, err := auth.Lookup()
	if err != nil {
		// The feed is public; carry on without a token.
		log.Warn("credentials unreadable", zap.Error(err))
		fmt.Fprintln(stdio.Err, ui.Current().Muted.Render("auth: "+err.Error()))
	}
	log.Info("posts endpoint", zap.String("url", url), zap.Bool("authorized", creds != nil))
	return fetch.NewClient(url, fetch.WithAuthorization(creds.Header()))
}

func doPosts(ctx context.Context, s *app.Session, f fetch.Fetcher, stdio Stdio) int {
	if err := fetch.Load(ctx, s.Posts, f); err != nil {
		s.Log.Warn("posts load failed", zap.Error(err))
		fmt.Fprintln(stdio.Out, ui.Panel(ui.PostsLines(s.Posts.Snapshot())))
		return 1
	}
	fmt.Fprintln(stdio.Out, ui.Panel(ui.PostsLines(s.Posts.Snapshot())))
	return 0
}

func doAuthLogin(stdio Stdio) int {
	fmt.Fprint(stdio.Out, "Paste your token: ")
	line, err := bufio.NewReader(stdio.In).ReadString('\n')
	if err != nil && strings.TrimSpace(line) == "" {
		ui.Fail(stdio.Err, "read token: "+err.Error())
		return 1
	}
	if err := auth.Save(line, nil); err != nil {
		ui.Fail(stdio.Err, "save token: "+err.Error())
		return 1
	}
	ui.OK(stdio.Out, "logged in")
	return 0
}

func doAuthLogout(stdio Stdio) int {
	c, err := auth.Lookup()
	if err != nil {
		// A corrupt file is still removed; say so before clearing it.
		ui.Fail(stdio.Err, "credentials unreadable, removing anyway: "+err.Error())
	}
	if c != nil && c.Source == auth.SourceEnv {
		ui.OK(stdio.Out, "token is provided by "+auth.EnvVar+" (nothing to delete)")
		return 0
	}
	if err := auth.Clear(); err != nil {
		ui.Fail(stdio.Err, "logout: "+err.Error())
		return 1
	}
	ui.OK(stdio.Out, "logged out")
	return 0
}

func doAuthStatus(stdio Stdio) int {
	c, err := auth.Lookup()
	if err != nil {
		ui.Fail(stdio.Err, "status: "+err.Error())
		return 1
	}
	if c == nil {
		fmt.Fprintln(stdio.Out, ui.Current().Muted.Render("not logged in"))
		fmt.Fprintln(stdio.Out, "Run: tada auth login")
		return 0
	}
	fmt.Fprintf(stdio.Out, "source: %s\n", c.Source)
	if c.ExpiresAt != nil {
		fmt.Fprintf(stdio.Out, "expires: %s\n", c.ExpiresAt.UTC().Format(time.RFC3339))
	} else {
		fmt.Fprintln(stdio.Out, "expires: (unknown)")
	}
	fmt.Fprintln(stdio.Out, "env override: "+auth.EnvVar)
	return 0
}
