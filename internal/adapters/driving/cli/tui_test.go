package cli

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/custodia-labs/menusearch/internal/core/domain"
	"github.com/custodia-labs/menusearch/internal/core/ports/driving"
)

func TestTUICmd_Registered(t *testing.T) {
	cmd, _, err := rootCmd.Find([]string{"tui"})
	require.NoError(t, err)
	assert.Equal(t, "tui", cmd.Name())
	assert.Contains(t, cmd.Long, "ctrl+k")
}

func TestTUIPorts_OwnSession(t *testing.T) {
	env := setupTestServices(t)
	ctx := context.Background()

	ports := tuiPorts(services)
	require.NoError(t, ports.Validate())
	assert.NotSame(t, services.Search, ports.Search)

	// A handoff left by the open command is invisible to the TUI.
	results, err := func() ([]domain.SearchResult, error) {
		require.NoError(t, services.Search.Open(ctx))
		defer services.Search.Close()
		return services.Search.Search(ctx, "сметан")
	}()
	require.NoError(t, err)
	require.NotEmpty(t, results)
	_, err = env.nav.Select(ctx, "сметан", results[0])
	require.NoError(t, err)

	page, err := ports.Detail.Load(ctx, "/dish/1", driving.DetailOptions{})
	require.NoError(t, err)
	assert.Empty(t, page.Query)

	_, state, err := env.nav.Pending(ctx)
	require.NoError(t, err)
	assert.Equal(t, domain.HandoffArmed, state)
}

func TestTUIPorts_WithoutCatalog(t *testing.T) {
	setupTestServices(t)
	svc := *services
	svc.Catalog = nil

	ports := tuiPorts(&svc)

	assert.Same(t, svc.Search, ports.Search)
	assert.Same(t, svc.Detail, ports.Detail)
}
