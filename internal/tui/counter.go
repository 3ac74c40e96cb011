package tui

import (
	"fmt"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/johnsonav1992/remix-v3-experimental/internal/notify"
	"github.com/johnsonav1992/remix-v3-experimental/internal/store/sharedstore"
	"github.com/johnsonav1992/remix-v3-experimental/internal/ui"
)

const updatedValue = "updated value"

var (
	clickKey  = key.NewBinding(key.WithKeys("enter", " "), key.WithHelp("enter", "click"))
	updateKey = key.NewBinding(key.WithKeys("u"), key.WithHelp("u", "update shared value"))
)

// counterView pairs a local click counter with a value read from the
// shared store by both the parent and the child section.
type counterView struct {
	shared *sharedstore.Store
	cancel notify.CancelFunc

	count   int
	value   string
	renders int
}

func newCounterView(shared *sharedstore.Store) *counterView {
	v := &counterView{shared: shared, value: shared.Value()}
	v.cancel = shared.Subscribe(v.refresh)
	return v
}

func (v *counterView) refresh() {
	v.renders++
	v.value = v.shared.Value()
}

func (v *counterView) Update(msg tea.Msg) tea.Cmd {
	k, ok := msg.(tea.KeyMsg)
	if !ok {
		return nil
	}
	switch {
	case key.Matches(k, clickKey):
		v.count += 2
	case key.Matches(k, updateKey):
		v.shared.Set(updatedValue)
	}
	return nil
}

func (v *counterView) View() string {
	t := ui.Current()
	return fmt.Sprintf("%s\n%s\n\n%s\n\n%s",
		t.Accent.Render(fmt.Sprintf("[ Click Me %d ]", v.count)),
		v.value,
		ui.Panel([]string{"I'm a child component hey " + v.value}),
		t.Help.Render("enter click • u update shared value"),
	)
}

func (v *counterView) Close() { v.cancel() }
