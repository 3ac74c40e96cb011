package app_test

import (
	"testing"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"

	"github.com/johnsonav1992/remix-v3-experimental/internal/app"
)

func TestNewSession_FreshStores(t *testing.T) {
	s := app.NewSession(nil)
	if s.ID == uuid.Nil {
		t.Error("expected a session id")
	}
	if len(s.Todos.List()) != 0 {
		t.Error("expected empty todos")
	}
	if s.Shared.Value() == "" {
		t.Error("expected shared default value")
	}
	if st := s.Posts.Snapshot(); st.Loading || st.Err != nil {
		t.Errorf("expected idle posts store, got %+v", st)
	}
}

func TestNewSession_DistinctIDs(t *testing.T) {
	a, b := app.NewSession(nil), app.NewSession(nil)
	if a.ID == b.ID {
		t.Error("expected distinct session ids")
	}
}

func TestSession_LogsCarrySessionID(t *testing.T) {
	core, logs := observer.New(zapcore.DebugLevel)
	s := app.NewSession(zap.New(core))
	s.Todos.Add("a")
	s.Close()

	want := s.ID.String()
	for _, e := range logs.All() {
		if got, ok := e.ContextMap()["session"]; !ok || got != want {
			t.Errorf("entry %q: expected session %s, got %v", e.Message, want, got)
		}
	}
	if n := logs.FilterMessage("todo added").Len(); n != 1 {
		t.Errorf("expected 1 'todo added' entry, got %d", n)
	}
}
