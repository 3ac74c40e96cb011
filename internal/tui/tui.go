// Package tui is the interactive front end: one Bubble Tea program with a
// tab per demo. Every tab reads a store from the session it is given and
// subscribes to it once, for the lifetime of the program.
package tui

import (
	"context"
	"strings"

	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/johnsonav1992/remix-v3-experimental/internal/app"
	"github.com/johnsonav1992/remix-v3-experimental/internal/fetch"
	"github.com/johnsonav1992/remix-v3-experimental/internal/ui"
)

type Options struct {
	Group bool // show pending todos before done ones
}

type tab int

const (
	tabTodos tab = iota
	tabCounter
	tabPosts
)

var tabNames = []string{"Todos", "Counter", "Posts"}

// Model is the root tea.Model.
type Model struct {
	active  tab
	todos   *todosView
	counter *counterView
	posts   *postsView

	width, height int
}

// New wires the views to the session's stores. Call Close when done.
func New(ctx context.Context, s *app.Session, f fetch.Fetcher, opt Options) *Model {
	m := &Model{
		todos:   newTodosView(s.Todos, opt.Group),
		counter: newCounterView(s.Shared),
		posts:   newPostsView(ctx, s.Posts, f),
		width:   80,
		height:  24,
	}
	m.todos.SetSize(m.width-4, m.height-6)
	return m
}

// Run blocks until the user quits.
func Run(ctx context.Context, s *app.Session, f fetch.Fetcher, opt Options) error {
	m := New(ctx, s, f, opt)
	defer m.Close()
	_, err := tea.NewProgram(m, tea.WithAltScreen(), tea.WithContext(ctx)).Run()
	return err
}

// Close drops every store subscription.
func (m *Model) Close() {
	m.todos.Close()
	m.counter.Close()
	m.posts.Close()
}

// Init starts the posts load, as the posts screen does on mount.
func (m *Model) Init() tea.Cmd {
	return m.posts.load()
}

func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width, m.height = msg.Width, msg.Height
		m.todos.SetSize(m.width-4, m.height-6)
		return m, nil

	case postsResolvedMsg, spinner.TickMsg:
		return m, m.posts.Update(msg)

	case tea.KeyMsg:
		if msg.String() == "ctrl+c" {
			return m, tea.Quit
		}
		if m.active != tabTodos || !m.todos.capturesKeys() {
			switch msg.String() {
			case "q":
				return m, tea.Quit
			case "tab":
				m.active = (m.active + 1) % tab(len(tabNames))
				return m, nil
			case "shift+tab":
				m.active = (m.active + tab(len(tabNames)) - 1) % tab(len(tabNames))
				return m, nil
			case "1", "2", "3":
				m.active = tab(msg.String()[0] - '1')
				return m, nil
			}
		}
	}

	switch m.active {
	case tabTodos:
		cmd := m.todos.Update(msg)
		m.todos.SetSize(m.width-4, m.height-6)
		return m, cmd
	case tabCounter:
		return m, m.counter.Update(msg)
	default:
		return m, m.posts.Update(msg)
	}
}

func (m *Model) View() string {
	t := ui.Current()
	names := make([]string, len(tabNames))
	for i, n := range tabNames {
		if tab(i) == m.active {
			names[i] = t.Selected.Render(" " + n + " ")
		} else {
			names[i] = t.Muted.Render(" " + n + " ")
		}
	}
	bar := lipgloss.JoinHorizontal(lipgloss.Top, names...)

	var body string
	switch m.active {
	case tabTodos:
		body = m.todos.View()
	case tabCounter:
		body = m.counter.View()
	default:
		body = m.posts.View()
	}
	help := t.Help.Render("tab switch • q quit")
	return ui.Panel([]string{bar, "", strings.TrimRight(body, "\n"), "", help})
}
