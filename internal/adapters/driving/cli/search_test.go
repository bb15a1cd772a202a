package cli

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/custodia-labs/menusearch/internal/core/domain"
)

func TestSearchCmd_Use(t *testing.T) {
	assert.Equal(t, "search <query>", searchCmd.Use)
	assert.Contains(t, searchCmd.Long, "At most 50 results")
}

func TestSearchCmd_RequiresExactlyOneArg(t *testing.T) {
	setupTestServices(t)

	_, err := execute(t, "search")

	require.Error(t, err)
	assert.Contains(t, err.Error(), "accepts 1 arg(s)")
}

func TestSearchCmd_HasFlags(t *testing.T) {
	limit := searchCmd.Flags().Lookup("limit")
	require.NotNil(t, limit)
	assert.Equal(t, "n", limit.Shorthand)
	assert.Equal(t, "50", limit.DefValue)

	require.NotNil(t, searchCmd.Flags().Lookup("json"))
}

func TestSearchCmd_PrintsResults(t *testing.T) {
	setupTestServices(t)

	out, err := execute(t, "search", "сметан")

	require.NoError(t, err)
	assert.Contains(t, out, "Results (1):")
	assert.Contains(t, out, "[1] dish Борщ")
	assert.Contains(t, out, "[сметан]")
	assert.Contains(t, out, "/dish/1")
}

func TestSearchCmd_EnglishBadge(t *testing.T) {
	setupTestServices(t)

	out, err := execute(t, "search", "sour cream")

	require.NoError(t, err)
	assert.Contains(t, out, "(EN)")
	assert.Contains(t, out, "[sour cream]")
}

func TestSearchCmd_Hints(t *testing.T) {
	setupTestServices(t)

	tests := []struct {
		query string
		want  string
	}{
		{"б", "Type at least 2 characters"},
		{"   ", "Start typing to search"},
		{"ыыы", "Nothing found"},
	}
	for _, tt := range tests {
		t.Run(tt.want, func(t *testing.T) {
			out, err := execute(t, "search", tt.query)
			require.NoError(t, err)
			assert.Contains(t, out, tt.want)
		})
	}
}

func TestSearchCmd_JSON(t *testing.T) {
	setupTestServices(t)

	out, err := execute(t, "search", "суп", "--json")

	require.NoError(t, err)
	var results []domain.SearchResult
	require.NoError(t, json.Unmarshal([]byte(out), &results))
	require.NotEmpty(t, results)
	for _, r := range results {
		assert.NotEmpty(t, r.Path)
	}
}

func TestSearchCmd_LimitBounds(t *testing.T) {
	setupTestServices(t)

	for _, n := range []string{"0", "51"} {
		_, err := execute(t, "search", "суп", "--limit", n)
		assert.ErrorIs(t, err, domain.ErrInvalidInput, n)
	}
}

func TestSearchCmd_ClosesIndex(t *testing.T) {
	setupTestServices(t)

	_, err := execute(t, "search", "борщ")

	require.NoError(t, err)
	assert.Equal(t, domain.IndexIdle, services.Search.Status())
}
