package tui

import (
	"fmt"
	"io"

	"github.com/charmbracelet/bubbles/list"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/johnsonav1992/remix-v3-experimental/internal/model"
	"github.com/johnsonav1992/remix-v3-experimental/internal/ui"
)

// todoItem adapts model.Todo to list.Item.
type todoItem struct{ model.Todo }

func (i todoItem) Title() string       { return i.Text }
func (i todoItem) Description() string { return "" }
func (i todoItem) FilterValue() string { return i.Text }

// itemDelegate renders one todo per line.
type itemDelegate struct{}

func (d itemDelegate) Height() int                         { return 1 }
func (d itemDelegate) Spacing() int                        { return 0 }
func (d itemDelegate) Update(tea.Msg, *list.Model) tea.Cmd { return nil }
func (d itemDelegate) Render(w io.Writer, m list.Model, index int, item list.Item) {
	it, ok := item.(todoItem)
	if !ok {
		return
	}
	prefix := "  "
	if index == m.Index() {
		prefix = ui.Current().Selected.Render(">") + " "
	}
	fmt.Fprint(w, prefix+ui.TodoLine(it.Todo))
}
