package tui

import (
	"strings"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/list"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/johnsonav1992/remix-v3-experimental/internal/model"
	"github.com/johnsonav1992/remix-v3-experimental/internal/notify"
	"github.com/johnsonav1992/remix-v3-experimental/internal/store/todostore"
	"github.com/johnsonav1992/remix-v3-experimental/internal/ui"
)

var (
	addKey    = key.NewBinding(key.WithKeys("a"), key.WithHelp("a", "add"))
	toggleKey = key.NewBinding(key.WithKeys(" ", "x"), key.WithHelp("space", "toggle"))
	deleteKey = key.NewBinding(key.WithKeys("d"), key.WithHelp("d", "delete"))
)

// todosView lists todos and hosts the inline add form.
type todosView struct {
	store  *todostore.Store
	group  bool
	list   list.Model
	cancel notify.CancelFunc

	adding bool
	ti     textinput.Model
	addErr string

	// renders counts store-driven refreshes.
	renders int
}

func newTodosView(store *todostore.Store, group bool) *todosView {
	l := list.New(nil, itemDelegate{}, 0, 0)
	l.SetShowHelp(true)
	l.SetShowStatusBar(true)
	l.SetFilteringEnabled(true)
	l.SetStatusBarItemName("todo", "todos")
	l.Styles.Title = ui.Current().Title
	l.Styles.HelpStyle = ui.Current().Help
	l.FilterInput.Prompt = "/ "
	l.AdditionalShortHelpKeys = func() []key.Binding { return []key.Binding{addKey, toggleKey, deleteKey} }
	l.AdditionalFullHelpKeys = l.AdditionalShortHelpKeys

	ti := textinput.New()
	ti.Prompt = "> "
	ti.Placeholder = "What needs to be done?"
	ti.CharLimit = 200

	v := &todosView{store: store, group: group, list: l, ti: ti}
	v.sync()
	v.cancel = store.Subscribe(v.refresh)
	return v
}

func (v *todosView) refresh() {
	v.renders++
	v.sync()
}

// sync re-derives the list rows from the store.
func (v *todosView) sync() {
	todos := v.store.List()
	v.list.Title = ui.Header(todos)
	if v.group {
		todos = pendingFirst(todos)
	}
	items := make([]list.Item, 0, len(todos))
	for _, t := range todos {
		items = append(items, todoItem{t})
	}
	v.list.SetItems(items)
	if n := len(items); n > 0 && v.list.Index() >= n {
		v.list.Select(n - 1)
	}
}

func pendingFirst(todos []model.Todo) []model.Todo {
	out := make([]model.Todo, 0, len(todos))
	for _, t := range todos {
		if !t.Completed {
			out = append(out, t)
		}
	}
	for _, t := range todos {
		if t.Completed {
			out = append(out, t)
		}
	}
	return out
}

// capturesKeys reports whether keystrokes belong to this view's text fields.
func (v *todosView) capturesKeys() bool {
	return v.adding || v.list.FilterState() == list.Filtering
}

func (v *todosView) selected() (model.Todo, bool) {
	it, ok := v.list.SelectedItem().(todoItem)
	return it.Todo, ok
}

func (v *todosView) Update(msg tea.Msg) tea.Cmd {
	if v.adding {
		if k, ok := msg.(tea.KeyMsg); ok {
			switch k.String() {
			case "enter":
				text := strings.TrimSpace(v.ti.Value())
				if text == "" {
					v.addErr = "Todo text cannot be empty"
					return nil
				}
				v.closeForm()
				v.store.Add(text)
				return nil
			case "esc":
				v.closeForm()
				return nil
			}
		}
		var cmd tea.Cmd
		v.ti, cmd = v.ti.Update(msg)
		return cmd
	}

	if k, ok := msg.(tea.KeyMsg); ok && v.list.FilterState() != list.Filtering {
		switch {
		case key.Matches(k, addKey):
			v.adding = true
			v.addErr = ""
			v.ti.SetValue("")
			return v.ti.Focus()
		case key.Matches(k, toggleKey):
			if t, ok := v.selected(); ok {
				v.store.Toggle(t.ID)
			}
			return nil
		case key.Matches(k, deleteKey):
			if t, ok := v.selected(); ok {
				v.store.Delete(t.ID)
			}
			return nil
		}
	}

	var cmd tea.Cmd
	v.list, cmd = v.list.Update(msg)
	return cmd
}

func (v *todosView) closeForm() {
	v.adding = false
	v.addErr = ""
	v.ti.SetValue("")
	v.ti.Blur()
}

func (v *todosView) SetSize(w, h int) {
	if v.adding {
		h -= 3
	}
	v.list.SetSize(w, h)
}

func (v *todosView) View() string {
	var b strings.Builder
	if len(v.list.Items()) == 0 && v.list.FilterState() == list.Unfiltered {
		b.WriteString(v.list.Title + "\n\n" + ui.Current().Muted.Render(ui.EmptyTodos))
	} else {
		b.WriteString(v.list.View())
	}
	if v.adding {
		title := "Add todo"
		if v.addErr != "" {
			title += "  " + ui.Current().Error.Render(v.addErr)
		}
		b.WriteString("\n" + ui.Panel([]string{title, v.ti.View()}))
	}
	return b.String()
}

func (v *todosView) Close() { v.cancel() }
