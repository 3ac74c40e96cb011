package ui

import (
	"fmt"

	"github.com/johnsonav1992/remix-v3-experimental/internal/model"
	"github.com/johnsonav1992/remix-v3-experimental/internal/store/poststore"
)

const (
	EmptyTodos   = "No todos yet. Add one above!"
	PostsHeading = "External Posts"
	PostsLoading = "Loading posts..."
	PostsEmpty   = "No posts found."
)

const maxTitle = 80

// Header is the counts line shown above the todo list.
func Header(todos []model.Todo) string {
	t := Current()
	done, pending := countTodos(todos)
	return fmt.Sprintf("%s  %s %d  %s %d  %s %d",
		t.Title.Render("Todos"),
		t.Success.Render(t.SymDone), done,
		t.Pending.Render(t.SymPending), pending,
		t.Accent.Render("Total"), len(todos),
	)
}

// TodoLines renders the whole todo panel body: header, progress, list.
func TodoLines(todos []model.Todo, group bool) []string {
	t := Current()
	done, pending := countTodos(todos)
	lines := []string{
		Header(todos),
		t.Muted.Render(ProgressBar(done, done+pending, 28)),
		"",
	}
	if group {
		return append(lines, groupLines(todos)...)
	}
	return append(lines, flatLines(todos)...)
}

// TodoLine renders a single "#id box text" row.
func TodoLine(td model.Todo) string {
	t := Current()
	box, text := t.Muted.Render(t.BoxUnchecked), truncate(td.Text)
	if td.Completed {
		box, text = t.Success.Render(t.BoxChecked), t.Done.Render(text)
	}
	return fmt.Sprintf("%s %s %s", t.Muted.Render(fmt.Sprintf("#%-3d", td.ID)), box, text)
}

func flatLines(todos []model.Todo) []string {
	if len(todos) == 0 {
		return []string{Current().Muted.Render(EmptyTodos)}
	}
	out := make([]string, 0, len(todos))
	for _, td := range todos {
		out = append(out, TodoLine(td))
	}
	return out
}

func groupLines(todos []model.Todo) []string {
	t := Current()
	var pend, done []model.Todo
	for _, td := range todos {
		if td.Completed {
			done = append(done, td)
		} else {
			pend = append(pend, td)
		}
	}
	section := func(title string, items []model.Todo) []string {
		lines := []string{t.Accent.Render(title)}
		if len(items) == 0 {
			return append(lines, t.Muted.Render("(none)"))
		}
		for _, td := range items {
			lines = append(lines, TodoLine(td))
		}
		return lines
	}
	lines := section("Pending", pend)
	lines = append(lines, "")
	return append(lines, section("Done", done)...)
}

// PostsLines renders the posts screen body for a snapshot.
func PostsLines(st poststore.State) []string {
	t := Current()
	lines := []string{t.Title.Render(PostsHeading), ""}
	if st.Loading {
		lines = append(lines, t.Muted.Render(PostsLoading))
	}
	if st.Err != nil {
		lines = append(lines, t.Error.Render("Error: "+st.Err.Error()))
	}
	if st.Empty() {
		lines = append(lines, t.Muted.Render(PostsEmpty))
	}
	for _, p := range st.Posts {
		lines = append(lines, t.Pending.Render(t.SymPending)+" "+truncate(p.Title))
	}
	return lines
}

func countTodos(todos []model.Todo) (done, pending int) {
	for _, td := range todos {
		if td.Completed {
			done++
		} else {
			pending++
		}
	}
	return
}

func truncate(s string) string {
	r := []rune(s)
	if len(r) > maxTitle {
		return string(r[:maxTitle-3]) + "..."
	}
	return s
}
