package domain

import "time"

// HandoffState is the lifecycle of a navigation handoff.
//
//	Idle -> Selected -> Armed -> Consumed
type HandoffState string

// Handoff states.
const (
	// HandoffIdle means no handoff is pending.
	HandoffIdle HandoffState = "idle"

	// HandoffSelected means a result was activated and the handoff is being written.
	HandoffSelected HandoffState = "selected"

	// HandoffArmed means a handoff is stored and waiting for its destination.
	HandoffArmed HandoffState = "armed"

	// HandoffConsumed means the destination used the handoff; it is deleted
	// once the consume window closes.
	HandoffConsumed HandoffState = "consumed"
)

// Handoff timing.
const (
	// ConsumeWindow is how long a consumed handoff survives so the destination
	// can render, scroll and flash before it is erased.
	ConsumeWindow = 3 * time.Second

	// FlashDuration is how long the destination keeps its temporary highlight.
	FlashDuration = 2 * time.Second

	// DefaultHandoffTTL bounds the life of a handoff nobody consumed.
	DefaultHandoffTTL = 30 * time.Minute
)

// NavigationHandoff is the pending context that tells a detail page which
// search query and field led to it.
type NavigationHandoff struct {
	Query  string     `json:"query"`
	Field  Field      `json:"field"`
	DishID string     `json:"dishId"`
	Type   RecordType `json:"type"`

	// CreatedAt is when the result was selected.
	CreatedAt time.Time `json:"createdAt"`

	// ExpiresAt is when the handoff stops being visible. Consuming it
	// pulls this forward to the end of the consume window.
	ExpiresAt time.Time `json:"expiresAt"`

	// Consumed is set once a matching destination has read the handoff.
	Consumed bool `json:"consumed"`
}

// Expired reports whether the handoff is no longer visible at now.
func (h *NavigationHandoff) Expired(now time.Time) bool {
	return !h.ExpiresAt.IsZero() && !now.Before(h.ExpiresAt)
}

// Matches reports whether the handoff targets the item with the given id.
func (h *NavigationHandoff) Matches(itemID string) bool {
	return h.DishID != "" && h.DishID == itemID
}

// State returns the lifecycle state of the handoff at now.
// A nil handoff is idle.
func (h *NavigationHandoff) State(now time.Time) HandoffState {
	switch {
	case h == nil, h.Expired(now):
		return HandoffIdle
	case h.Consumed:
		return HandoffConsumed
	default:
		return HandoffArmed
	}
}
