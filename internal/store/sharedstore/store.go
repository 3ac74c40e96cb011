// Package sharedstore holds the one value the counter screen shares
// between its parent and child views.
package sharedstore

import (
	"go.uber.org/zap"

	"github.com/johnsonav1992/remix-v3-experimental/internal/notify"
)

// DefaultValue is what a fresh store reports.
const DefaultValue = "default value"

// Store is not safe for concurrent use.
type Store struct {
	value   string
	changed notify.Channel
	log     *zap.Logger
}

// New returns a store holding DefaultValue. A nil logger disables logging.
func New(logger *zap.Logger) *Store {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Store{value: DefaultValue, log: logger.Named("shared")}
}

// Value returns the current shared value.
func (s *Store) Value() string { return s.value }

// Set replaces the value and notifies, even when v equals the current value.
func (s *Store) Set(v string) {
	s.value = v
	s.log.Debug("shared value set", zap.String("value", v))
	s.changed.Notify()
}

// Subscribe registers fn to run after every Set.
func (s *Store) Subscribe(fn func()) notify.CancelFunc {
	return s.changed.Subscribe(fn)
}
