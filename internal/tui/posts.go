package tui

import (
	"context"
	"strings"

	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/johnsonav1992/remix-v3-experimental/internal/fetch"
	"github.com/johnsonav1992/remix-v3-experimental/internal/model"
	"github.com/johnsonav1992/remix-v3-experimental/internal/notify"
	"github.com/johnsonav1992/remix-v3-experimental/internal/store/poststore"
	"github.com/johnsonav1992/remix-v3-experimental/internal/ui"
)

// postsResolvedMsg carries the fetch outcome back onto the update loop,
// which is the only goroutine allowed to touch the store.
type postsResolvedMsg struct {
	posts []model.Post
	err   error
}

type postsView struct {
	ctx     context.Context
	store   *poststore.Store
	fetcher fetch.Fetcher
	cancel  notify.CancelFunc
	spinner spinner.Model

	state   poststore.State
	renders int
}

func newPostsView(ctx context.Context, store *poststore.Store, f fetch.Fetcher) *postsView {
	sp := spinner.New()
	sp.Spinner = spinner.Dot
	v := &postsView{ctx: ctx, store: store, fetcher: f, spinner: sp, state: store.Snapshot()}
	v.cancel = store.Subscribe(v.refresh)
	return v
}

func (v *postsView) refresh() {
	v.renders++
	v.state = v.store.Snapshot()
}

// load starts one fetch. It returns nil when a load is already running.
func (v *postsView) load() tea.Cmd {
	if !v.store.Begin() {
		return nil
	}
	ctx, f := v.ctx, v.fetcher
	return tea.Batch(v.spinner.Tick, func() tea.Msg {
		posts, err := f.FetchPosts(ctx)
		return postsResolvedMsg{posts: posts, err: err}
	})
}

func (v *postsView) Update(msg tea.Msg) tea.Cmd {
	switch msg := msg.(type) {
	case postsResolvedMsg:
		v.store.Resolve(msg.posts, msg.err)
		return nil
	case spinner.TickMsg:
		if !v.state.Loading {
			return nil
		}
		var cmd tea.Cmd
		v.spinner, cmd = v.spinner.Update(msg)
		return cmd
	}
	return nil
}

func (v *postsView) View() string {
	lines := ui.PostsLines(v.state)
	if v.state.Loading {
		for i, ln := range lines {
			if strings.Contains(ln, ui.PostsLoading) {
				lines[i] = v.spinner.View() + " " + ln
			}
		}
	}
	return strings.Join(lines, "\n")
}

func (v *postsView) Close() { v.cancel() }
