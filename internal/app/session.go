// Package app owns the stores of one run.
//
// A Session is built once in main and handed by pointer to every screen
// and command that needs a store. Nothing looks stores up by type.
package app

import (
	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/johnsonav1992/remix-v3-experimental/internal/store/poststore"
	"github.com/johnsonav1992/remix-v3-experimental/internal/store/sharedstore"
	"github.com/johnsonav1992/remix-v3-experimental/internal/store/todostore"
)

type Session struct {
	ID     uuid.UUID
	Log    *zap.Logger
	Todos  *todostore.Store
	Shared *sharedstore.Store
	Posts  *poststore.Store
}

// NewSession builds empty stores that log with the session id attached.
func NewSession(logger *zap.Logger) *Session {
	if logger == nil {
		logger = zap.NewNop()
	}
	id := uuid.New()
	log := logger.With(zap.String("session", id.String()))
	log.Info("session started")
	return &Session{
		ID:     id,
		Log:    log,
		Todos:  todostore.New(log),
		Shared: sharedstore.New(log),
		Posts:  poststore.New(log),
	}
}

// Close flushes the session logger.
func (s *Session) Close() {
	s.Log.Info("session ended", zap.Int("todos", len(s.Todos.List())))
	_ = s.Log.Sync()
}
