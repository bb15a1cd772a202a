package domain

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

// TestNavigationHandoff_State tests lifecycle states over time
func TestNavigationHandoff_State(t *testing.T) {
	now := time.Date(2025, 3, 1, 12, 0, 0, 0, time.UTC)

	var none *NavigationHandoff
	assert.Equal(t, HandoffIdle, none.State(now))

	h := &NavigationHandoff{Query: "борщ", DishID: "1", ExpiresAt: now.Add(time.Minute)}
	assert.Equal(t, HandoffArmed, h.State(now))

	h.Consumed = true
	h.ExpiresAt = now.Add(ConsumeWindow)
	assert.Equal(t, HandoffConsumed, h.State(now.Add(time.Second)))
	assert.Equal(t, HandoffIdle, h.State(now.Add(ConsumeWindow)))
}

// TestNavigationHandoff_Matches tests target comparison
func TestNavigationHandoff_Matches(t *testing.T) {
	h := &NavigationHandoff{DishID: "1"}

	assert.True(t, h.Matches("1"))
	assert.False(t, h.Matches("2"))
	assert.False(t, (&NavigationHandoff{}).Matches(""))
}

// TestNavigationHandoff_ExpiredZero tests that a zero deadline never expires
func TestNavigationHandoff_ExpiredZero(t *testing.T) {
	h := &NavigationHandoff{DishID: "1"}
	assert.False(t, h.Expired(time.Now()))
}
