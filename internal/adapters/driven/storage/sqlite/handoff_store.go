package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/custodia-labs/menusearch/internal/core/domain"
	"github.com/custodia-labs/menusearch/internal/core/ports/driven"
)

// handoffStore implements driven.HandoffStore with one row per session.
type handoffStore struct {
	store *Store
}

var _ driven.HandoffStore = (*handoffStore)(nil)

// Put replaces the session's handoff.
func (s *handoffStore) Put(ctx context.Context, session string, h domain.NavigationHandoff) error {
	_, err := s.store.db.ExecContext(ctx, `
		INSERT INTO handoffs (session, query, field, dish_id, type, created_at, expires_at, consumed)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?)
		ON CONFLICT(session) DO UPDATE SET
			query = excluded.query,
			field = excluded.field,
			dish_id = excluded.dish_id,
			type = excluded.type,
			created_at = excluded.created_at,
			expires_at = excluded.expires_at,
			consumed = excluded.consumed
	`, session, h.Query, string(h.Field), h.DishID, string(h.Type),
		toMillis(h.CreatedAt), toMillis(h.ExpiresAt), h.Consumed)
	if err != nil {
		return fmt.Errorf("saving handoff: %w", err)
	}
	return nil
}

// Get returns the session's handoff, or nil when the slot is empty.
func (s *handoffStore) Get(ctx context.Context, session string) (*domain.NavigationHandoff, error) {
	row := s.store.db.QueryRowContext(ctx, `
		SELECT query, field, dish_id, type, created_at, expires_at, consumed
		FROM handoffs WHERE session = ?
	`, session)

	var h domain.NavigationHandoff
	var field, kind string
	var createdAt, expiresAt int64
	if err := row.Scan(&h.Query, &field, &h.DishID, &kind, &createdAt, &expiresAt, &h.Consumed); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("scanning handoff: %w", err)
	}
	h.Field = domain.Field(field)
	h.Type = domain.RecordType(kind)
	h.CreatedAt = fromMillis(createdAt)
	h.ExpiresAt = fromMillis(expiresAt)
	return &h, nil
}

// Delete empties the session's slot.
func (s *handoffStore) Delete(ctx context.Context, session string) error {
	if _, err := s.store.db.ExecContext(ctx, "DELETE FROM handoffs WHERE session = ?", session); err != nil {
		return fmt.Errorf("deleting handoff: %w", err)
	}
	return nil
}
