// Package poststore tracks the state of the external posts feed.
//
// A load is Begin followed by exactly one Resolve. Each of the two steps
// notifies once, so a consumer re-renders twice per load. Every load
// replaces the previous outcome: a settled store holds posts or an error,
// never both.
package poststore

import (
	"go.uber.org/zap"

	"github.com/johnsonav1992/remix-v3-experimental/internal/model"
	"github.com/johnsonav1992/remix-v3-experimental/internal/notify"
)

// State is a point-in-time copy of the store.
type State struct {
	Loading bool
	Err     error
	Posts   []model.Post
}

// Empty reports a settled load that produced neither posts nor an error.
func (st State) Empty() bool {
	return !st.Loading && st.Err == nil && len(st.Posts) == 0
}

// Store is not safe for concurrent use.
type Store struct {
	loading bool
	err     error
	posts   []model.Post
	changed notify.Channel
	log     *zap.Logger
}

// New returns an idle store with no posts. A nil logger disables logging.
func New(logger *zap.Logger) *Store {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Store{log: logger.Named("posts")}
}

// Begin marks a load in flight and drops the previous outcome. It returns
// false, without notifying, when a load is already running.
func (s *Store) Begin() bool {
	if s.loading {
		return false
	}
	s.loading = true
	s.err = nil
	s.posts = nil
	s.log.Debug("posts loading")
	s.changed.Notify()
	return true
}

// Resolve settles the in-flight load: err != nil records the failure,
// otherwise posts become the store's contents. It returns false, without
// notifying, when no load is in flight.
func (s *Store) Resolve(posts []model.Post, err error) bool {
	if !s.loading {
		return false
	}
	s.loading = false
	if err != nil {
		s.err = err
		s.log.Debug("posts failed", zap.Error(err))
	} else {
		s.posts = append([]model.Post(nil), posts...)
		s.log.Debug("posts loaded", zap.Int("count", len(posts)))
	}
	s.changed.Notify()
	return true
}

// Snapshot returns a copy of the current state.
func (s *Store) Snapshot() State {
	posts := make([]model.Post, len(s.posts))
	copy(posts, s.posts)
	return State{Loading: s.loading, Err: s.err, Posts: posts}
}

// Subscribe registers fn to run after Begin and after Resolve.
func (s *Store) Subscribe(fn func()) notify.CancelFunc {
	return s.changed.Subscribe(fn)
}
