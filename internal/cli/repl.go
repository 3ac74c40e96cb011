package cli

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/johnsonav1992/remix-v3-experimental/internal/app"
	"github.com/johnsonav1992/remix-v3-experimental/internal/fetch"
	"github.com/johnsonav1992/remix-v3-experimental/internal/notify"
	"github.com/johnsonav1992/remix-v3-experimental/internal/query"
	"github.com/johnsonav1992/remix-v3-experimental/internal/ui"
)

const prompt = "tada> "

// REPL is a line-oriented consumer of a session's stores. It subscribes
// once at construction and prints a notice on every store change.
type REPL struct {
	session *app.Session
	fetcher fetch.Fetcher
	group   bool
	out     io.Writer
	errOut  io.Writer
	cancels []notify.CancelFunc
}

func NewREPL(s *app.Session, f fetch.Fetcher, group bool, out, errOut io.Writer) *REPL {
	r := &REPL{session: s, fetcher: f, group: group, out: out, errOut: errOut}
	r.cancels = []notify.CancelFunc{
		s.Todos.Subscribe(r.todosChanged),
		s.Shared.Subscribe(r.sharedChanged),
		s.Posts.Subscribe(r.postsChanged),
	}
	return r
}

// Close drops the REPL's store subscriptions.
func (r *REPL) Close() {
	for _, cancel := range r.cancels {
		cancel()
	}
	r.cancels = nil
}

func (r *REPL) notice(msg string) {
	fmt.Fprintln(r.out, ui.Current().Muted.Render("↻ "+msg))
}

func (r *REPL) todosChanged() {
	done, pending := r.session.Todos.Stats()
	r.notice(fmt.Sprintf("todos: %d pending, %d done", pending, done))
}

func (r *REPL) sharedChanged() {
	r.notice("shared: " + r.session.Shared.Value())
}

func (r *REPL) postsChanged() {
	st := r.session.Posts.Snapshot()
	if st.Loading {
		r.notice("posts: loading")
		return
	}
	r.notice("posts: settled")
	fmt.Fprintln(r.out, ui.Panel(ui.PostsLines(st)))
}

// Serve reads commands from in until EOF or quit.
func (r *REPL) Serve(ctx context.Context, in io.Reader) int {
	sc := bufio.NewScanner(in)
	for {
		fmt.Fprint(r.out, prompt)
		if !sc.Scan() {
			break
		}
		if _, quit := r.Exec(ctx, sc.Text()); quit {
			return 0
		}
	}
	fmt.Fprintln(r.out)
	if err := sc.Err(); err != nil {
		ui.Fail(r.errOut, "read: "+err.Error())
		return 1
	}
	return 0
}

// Exec runs one command line and returns its status code (0 ok, 1 error,
// 2 usage) and whether the session should end.
func (r *REPL) Exec(ctx context.Context, line string) (code int, quit bool) {
	cmd, rest, _ := strings.Cut(strings.TrimSpace(line), " ")
	rest = strings.TrimSpace(rest)

	switch strings.ToLower(cmd) {
	case "":
		return 0, false

	case "quit", "exit", "q":
		return 0, true

	case "help", "?":
		r.help()
		return 0, false

	case "add":
		// The store takes any text; empty input is rejected here.
		if rest == "" {
			ui.Fail(r.errOut, "usage: add <text...>")
			return 2, false
		}
		t := r.session.Todos.Add(rest)
		ui.OK(r.out, fmt.Sprintf("added #%d", t.ID))
		return 0, false

	case "toggle", "done":
		id, code := r.parseID(cmd, rest)
		if code != 0 {
			return code, false
		}
		_, known := r.session.Todos.Get(id)
		r.session.Todos.Toggle(id)
		if !known {
			fmt.Fprintln(r.errOut, ui.Current().Muted.Render(fmt.Sprintf("no todo #%d (run `ls` to see ids)", id)))
		}
		return 0, false

	case "rm", "delete":
		id, code := r.parseID(cmd, rest)
		if code != 0 {
			return code, false
		}
		r.session.Todos.Delete(id)
		return 0, false

	case "ls", "list":
		f, err := query.Compile(rest)
		if err != nil {
			ui.Fail(r.errOut, "ls: "+err.Error())
			return 2, false
		}
		todos, err := f.Apply(r.session.Todos.List())
		if err != nil {
			ui.Fail(r.errOut, "ls: "+err.Error())
			return 1, false
		}
		fmt.Fprintln(r.out, ui.Panel(ui.TodoLines(todos, r.group)))
		return 0, false

	case "set":
		if rest == "" {
			ui.Fail(r.errOut, "usage: set <value...>")
			return 2, false
		}
		r.session.Shared.Set(rest)
		return 0, false

	case "get":
		fmt.Fprintln(r.out, r.session.Shared.Value())
		return 0, false

	case "posts":
		if err := fetch.Load(ctx, r.session.Posts, r.fetcher); err != nil {
			return 1, false
		}
		return 0, false
	}

	ui.Fail(r.errOut, "unknown command: "+cmd+" (try `help`)")
	return 2, false
}

func (r *REPL) parseID(cmd, arg string) (int, int) {
	if arg == "" || strings.ContainsAny(arg, " \t") {
		ui.Fail(r.errOut, "usage: "+cmd+" <id>")
		return 0, 2
	}
	id, err := strconv.Atoi(arg)
	if err != nil {
		ui.Fail(r.errOut, cmd+": not a number: "+arg)
		return 0, 2
	}
	return id, 0
}

func (r *REPL) help() {
	fmt.Fprint(r.out, `Commands:
  add <text...>     Add a todo
  toggle <id>       Flip a todo between pending and done
  rm <id>           Delete a todo
  ls [filter]       List todos, e.g. ls !completed && text contains "milk"
  set <value...>    Replace the shared counter value
  get               Print the shared counter value
  posts             Fetch the external posts feed
  quit              End the session
`)
}
