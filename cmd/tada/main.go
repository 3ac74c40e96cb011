package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/johnsonav1992/remix-v3-experimental/internal/cli"
)

func main() {
	// Root flags (apply to every subcommand)
	group := flag.Bool("group", false, "group todos by pending/done")
	theme := flag.String("theme", "classic", "color theme: classic, neon or mono")
	postsURL := flag.String("posts-url", "", "posts feed endpoint (default $"+cli.PostsURLEnv+" or the public feed)")
	logFile := flag.String("log-file", "", "write JSON logs to this file")
	debug := flag.Bool("debug", false, "log every store mutation")
	flag.Parse()

	args := flag.Args()
	if len(args) == 0 {
		cli.PrintHelp(cli.OSStdio())
		os.Exit(2)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	code := cli.Run(ctx, args, cli.Options{
		Group:    *group,
		Theme:    *theme,
		PostsURL: *postsURL,
		LogFile:  *logFile,
		Debug:    *debug,
	}, cli.OSStdio())
	stop()
	if code != 0 {
		fmt.Fprintln(os.Stderr)
	}
	os.Exit(code)
}
