package cli_test

import (
	"bytes"
	"context"
	"fmt"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/johnsonav1992/remix-v3-experimental/internal/auth"
	"github.com/johnsonav1992/remix-v3-experimental/internal/cli"
	"github.com/johnsonav1992/remix-v3-experimental/internal/fetch"
)

func isolate(t *testing.T) {
	t.Helper()
	t.Setenv("HOME", t.TempDir())
	t.Setenv(auth.EnvVar, "")
	t.Setenv(cli.PostsURLEnv, "")
}

func run(t *testing.T, opt cli.Options, stdin string, args ...string) (int, string, string) {
	t.Helper()
	var out, errOut bytes.Buffer
	code := cli.Run(context.Background(), args, opt, cli.Stdio{
		In:  strings.NewReader(stdin),
		Out: &out,
		Err: &errOut,
	})
	return code, out.String(), errOut.String()
}

func TestRun_Usage(t *testing.T) {
	isolate(t)
	tests := []struct {
		name string
		args []string
		code int
	}{
		{"no args", nil, 2},
		{"help", []string{"help"}, 0},
		{"unknown", []string{"nope"}, 2},
		{"auth without action", []string{"auth"}, 2},
		{"auth bad action", []string{"auth", "whoami"}, 2},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			code, out, _ := run(t, cli.Options{}, "", tt.args...)
			if code != tt.code {
				t.Errorf("expected %d, got %d", tt.code, code)
			}
			if tt.code == 0 && !strings.Contains(out, "Subcommands:") {
				t.Errorf("expected help text, got %q", out)
			}
		})
	}
}

func TestRun_Posts(t *testing.T) {
	isolate(t)
	var gotAuth string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotAuth = r.Header.Get("Authorization")
		fmt.Fprint(w, `[{"id":1,"title":"alpha"},{"id":2,"title":"beta"}]`)
	}))
	defer srv.Close()
	t.Setenv(auth.EnvVar, "secret")

	code, out, errOut := run(t, cli.Options{PostsURL: srv.URL}, "", "posts")
	if code != 0 {
		t.Fatalf("expected 0, got %d (%s)", code, errOut)
	}
	if !strings.Contains(out, "alpha") || !strings.Contains(out, "beta") {
		t.Errorf("expected titles in %q", out)
	}
	if gotAuth != "Bearer secret" {
		t.Errorf("expected bearer header, got %q", gotAuth)
	}
}

func TestRun_PostsFailure(t *testing.T) {
	isolate(t)
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "down", http.StatusServiceUnavailable)
	}))
	defer srv.Close()

	code, out, _ := run(t, cli.Options{PostsURL: srv.URL}, "", "posts")
	if code != 1 {
		t.Fatalf("expected 1, got %d", code)
	}
	if !strings.Contains(out, "Error: unexpected status 503") {
		t.Errorf("expected error line in %q", out)
	}
}

func TestRun_REPL(t *testing.T) {
	isolate(t)
	code, out, _ := run(t, cli.Options{Theme: "mono"}, "add buy milk\nls\n", "repl")
	if code != 0 {
		t.Fatalf("expected 0, got %d", code)
	}
	if !strings.Contains(out, "buy milk") || !strings.Contains(out, "[ ]") {
		t.Errorf("expected mono list in %q", out)
	}
}

func TestRun_AuthLifecycle(t *testing.T) {
	isolate(t)

	code, out, _ := run(t, cli.Options{}, "", "auth", "status")
	if code != 0 || !strings.Contains(out, "not logged in") {
		t.Fatalf("expected logged out status, got %d %q", code, out)
	}

	if code, _, errOut := run(t, cli.Options{}, "tok-123\n", "auth", "login"); code != 0 {
		t.Fatalf("login: expected 0, got %d (%s)", code, errOut)
	}
	code, out, _ = run(t, cli.Options{}, "", "auth", "status")
	if code != 0 || !strings.Contains(out, "source: file") {
		t.Errorf("expected file source, got %d %q", code, out)
	}

	if code, _, _ := run(t, cli.Options{}, "", "auth", "logout"); code != 0 {
		t.Errorf("logout: expected 0, got %d", code)
	}
	_, out, _ = run(t, cli.Options{}, "", "auth", "status")
	if !strings.Contains(out, "not logged in") {
		t.Errorf("expected logged out after logout, got %q", out)
	}
}

func TestRun_AuthLoginEmpty(t *testing.T) {
	isolate(t)
	if code, _, _ := run(t, cli.Options{}, "", "auth", "login"); code != 1 {
		t.Errorf("expected 1 for empty input, got %d", code)
	}
}

func TestResolvePostsURL(t *testing.T) {
	isolate(t)
	if got := cli.ResolvePostsURL(""); got != fetch.DefaultURL {
		t.Errorf("expected default, got %q", got)
	}
	t.Setenv(cli.PostsURLEnv, "http://env.example")
	if got := cli.ResolvePostsURL(""); got != "http://env.example" {
		t.Errorf("expected env value, got %q", got)
	}
	if got := cli.ResolvePostsURL(" http://flag.example "); got != "http://flag.example" {
		t.Errorf("expected flag value, got %q", got)
	}
}

func TestRun_AuthLogoutCorruptCredentials(t *testing.T) {
	isolate(t)
	home := os.Getenv("HOME")
	dir := filepath.Join(home, ".tada")
	if err := os.MkdirAll(dir, 0o700); err != nil {
		t.Fatalf("mkdir: %v", err)
	}
	path := filepath.Join(dir, "credentials.json")
	if err := os.WriteFile(path, []byte("{not json"), 0o600); err != nil {
		t.Fatalf("write: %v", err)
	}

	code, _, errOut := run(t, cli.Options{}, "", "auth", "logout")
	if code != 0 {
		t.Fatalf("expected 0, got %d", code)
	}
	if !strings.Contains(errOut, "credentials unreadable") {
		t.Errorf("expected warning on stderr, got %q", errOut)
	}
	if _, err := os.Stat(path); !os.IsNotExist(err) {
		t.Errorf("expected credentials file removed, stat err %v", err)
	}
}
