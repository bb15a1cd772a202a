package memory

import (
	"context"
	"sync"

	"github.com/custodia-labs/menusearch/internal/core/domain"
	"github.com/custodia-labs/menusearch/internal/core/ports/driven"
)

// Ensure HandoffStore implements the interface.
var _ driven.HandoffStore = (*HandoffStore)(nil)

// HandoffStore is an in-memory implementation of driven.HandoffStore.
// It lives as long as the process, which is one session for the TUI.
type HandoffStore struct {
	mu    sync.RWMutex
	slots map[string]domain.NavigationHandoff
}

// NewHandoffStore creates a new in-memory handoff store.
func NewHandoffStore() *HandoffStore {
	return &HandoffStore{
		slots: make(map[string]domain.NavigationHandoff),
	}
}

// Put replaces the session's handoff.
func (s *HandoffStore) Put(_ context.Context, session string, h domain.NavigationHandoff) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.slots[session] = h
	return nil
}

// Get returns a copy of the session's handoff, or nil.
func (s *HandoffStore) Get(_ context.Context, session string) (*domain.NavigationHandoff, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	h, ok := s.slots[session]
	if !ok {
		return nil, nil
	}
	return &h, nil
}

// Delete empties the session's slot.
func (s *HandoffStore) Delete(_ context.Context, session string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.slots, session)
	return nil
}
