package cli

import (
	"io"
	"os"
	"strings"

	"github.com/johnsonav1992/remix-v3-experimental/internal/fetch"
)

// PostsURLEnv overrides the feed endpoint when -posts-url is not given.
const PostsURLEnv = "TADA_POSTS_URL"

// Options tune behavior from root flags.
type Options struct {
	Group    bool   // list grouped by pending/done
	Theme    string // classic | neon | mono
	PostsURL string
	LogFile  string // empty disables logging
	Debug    bool
}

// Stdio carries the streams a command reads and writes.
type Stdio struct {
	In  io.Reader
	Out io.Writer
	Err io.Writer
}

// OSStdio is the process's own streams.
func OSStdio() Stdio {
	return Stdio{In: os.Stdin, Out: os.Stdout, Err: os.Stderr}
}

// ResolvePostsURL picks the flag value, then the environment, then the default.
func ResolvePostsURL(flagValue string) string {
	if v := strings.TrimSpace(flagValue); v != "" {
		return v
	}
	if v := strings.TrimSpace(os.Getenv(PostsURLEnv)); v != "" {
		return v
	}
	return fetch.DefaultURL
}
