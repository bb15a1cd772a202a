package services

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/custodia-labs/menusearch/internal/core/domain"
	"github.com/custodia-labs/menusearch/internal/core/ports/driven"
	"github.com/custodia-labs/menusearch/internal/core/ports/driving"
	"github.com/custodia-labs/menusearch/internal/logger"
)

// Ensure NavigationService implements the interface.
var _ driving.NavigationService = (*NavigationService)(nil)

var handoffLog = logger.For("handoff")

// NavigationService carries the active query from a selected search result
// to its destination page through a session-scoped HandoffStore.
//
// A handoff is armed by Select and read by the first Consume whose item id
// matches. It is read at most once: after that it stays in the Consumed
// state for domain.ConsumeWindow and is then removed.
type NavigationService struct {
	store   driven.HandoffStore
	session string
	ttl     time.Duration
	now     func() time.Time
}

// NewNavigationService creates a navigation service for one session.
// A non-positive ttl falls back to domain.DefaultHandoffTTL.
func NewNavigationService(store driven.HandoffStore, session string, ttl time.Duration) *NavigationService {
	if ttl <= 0 {
		ttl = domain.DefaultHandoffTTL
	}
	return &NavigationService{
		store:   store,
		session: session,
		ttl:     ttl,
		now:     time.Now,
	}
}

// SetClock replaces the time source. Used by tests.
func (s *NavigationService) SetClock(now func() time.Time) {
	s.now = now
}

// Session returns the session id handoffs are stored under.
func (s *NavigationService) Session() string {
	return s.session
}

// Select records the handoff for result and returns its path.
// Any earlier handoff in the session is replaced.
func (s *NavigationService) Select(ctx context.Context, query string, result domain.SearchResult) (string, error) {
	if result.Path == "" {
		return "", fmt.Errorf("%w: result has no path", domain.ErrInvalidInput)
	}

	now := s.now()
	h := domain.NavigationHandoff{
		Query:     strings.TrimSpace(query),
		Field:     result.Field,
		DishID:    result.TargetID(),
		Type:      result.Type,
		CreatedAt: now,
		ExpiresAt: now.Add(s.ttl),
	}
	if err := s.store.Put(ctx, s.session, h); err != nil {
		return "", fmt.Errorf("store handoff: %w", err)
	}

	handoffLog.Debug("armed %q for %s %s (%s)", h.Query, h.Type, h.DishID, h.Field)
	return result.Path, nil
}

// Consume returns the pending handoff if it targets itemID.
func (s *NavigationService) Consume(ctx context.Context, itemID string) (*domain.NavigationHandoff, error) {
	h, err := s.live(ctx)
	if err != nil || h == nil {
		return nil, err
	}

	if !h.Matches(itemID) {
		handoffLog.Debug("handoff targets %s, not %s: left in place", h.DishID, itemID)
		return nil, nil
	}

	if h.Consumed {
		handoffLog.Debug("handoff for %s already consumed", itemID)
		return nil, nil
	}

	now := s.now()
	h.Consumed = true
	if deadline := now.Add(domain.ConsumeWindow); deadline.Before(h.ExpiresAt) {
		h.ExpiresAt = deadline
	}
	if err := s.store.Put(ctx, s.session, *h); err != nil {
		return nil, fmt.Errorf("store handoff: %w", err)
	}
	handoffLog.Debug("consumed %q for %s", h.Query, itemID)
	return h, nil
}

// Pending returns the stored handoff and its state.
func (s *NavigationService) Pending(ctx context.Context) (*domain.NavigationHandoff, domain.HandoffState, error) {
	h, err := s.live(ctx)
	if err != nil {
		return nil, domain.HandoffIdle, err
	}
	return h, h.State(s.now()), nil
}

// Clear drops any pending handoff.
func (s *NavigationService) Clear(ctx context.Context) error {
	return s.store.Delete(ctx, s.session)
}

// live loads the session's handoff, deleting it if it has expired.
func (s *NavigationService) live(ctx context.Context) (*domain.NavigationHandoff, error) {
	h, err := s.store.Get(ctx, s.session)
	if err != nil {
		return nil, fmt.Errorf("load handoff: %w", err)
	}
	if h == nil {
		return nil, nil
	}
	if h.Expired(s.now()) {
		if err := s.store.Delete(ctx, s.session); err != nil {
			handoffLog.Warn("delete expired handoff: %v", err)
		}
		return nil, nil
	}
	return h, nil
}
