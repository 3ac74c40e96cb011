// Package todostore is the in-memory owner of the todo list.
//
// Every mutation goes through Add, Toggle or Delete, and each one notifies
// subscribers before returning. Toggle of an unknown id stays silent while
// Delete always notifies, matched or not.
package todostore

import (
	"go.uber.org/zap"

	"github.com/johnsonav1992/remix-v3-experimental/internal/model"
	"github.com/johnsonav1992/remix-v3-experimental/internal/notify"
)

// Store is not safe for concurrent use.
type Store struct {
	nextID  int
	records []model.Todo
	changed notify.Channel
	log     *zap.Logger
}

// New returns an empty store whose first id is 1.
func New(logger *zap.Logger) *Store {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Store{nextID: 1, log: logger.Named("todos")}
}

// Add appends a todo and returns it. Text is stored as given.
func (s *Store) Add(text string) model.Todo {
	t := model.Todo{ID: s.nextID, Text: text}
	s.nextID++
	s.records = append(s.records, t)
	s.log.Debug("todo added", zap.Int("id", t.ID), zap.Int("count", len(s.records)))
	s.changed.Notify()
	return t
}

// Toggle flips Completed on the matching todo. Unknown ids are ignored.
func (s *Store) Toggle(id int) {
	for i := range s.records {
		if s.records[i].ID != id {
			continue
		}
		s.records[i].Completed = !s.records[i].Completed
		s.log.Debug("todo toggled", zap.Int("id", id), zap.Bool("completed", s.records[i].Completed))
		s.changed.Notify()
		return
	}
	s.log.Debug("toggle ignored", zap.Int("id", id))
}

// Delete removes the matching todo, if any, and always notifies.
func (s *Store) Delete(id int) {
	kept := s.records[:0:0]
	for _, t := range s.records {
		if t.ID != id {
			kept = append(kept, t)
		}
	}
	removed := len(s.records) - len(kept)
	s.records = kept
	s.log.Debug("todo deleted", zap.Int("id", id), zap.Int("removed", removed))
	s.changed.Notify()
}

// List returns a copy of the todos in insertion order.
func (s *Store) List() []model.Todo {
	out := make([]model.Todo, len(s.records))
	copy(out, s.records)
	return out
}

// Get looks a todo up by id.
func (s *Store) Get(id int) (model.Todo, bool) {
	for _, t := range s.records {
		if t.ID == id {
			return t, true
		}
	}
	return model.Todo{}, false
}

// Stats counts completed and pending todos.
func (s *Store) Stats() (done, pending int) {
	for _, t := range s.records {
		if t.Completed {
			done++
		} else {
			pending++
		}
	}
	return
}

// Subscribe registers fn to run after every change.
func (s *Store) Subscribe(fn func()) notify.CancelFunc {
	return s.changed.Subscribe(fn)
}
