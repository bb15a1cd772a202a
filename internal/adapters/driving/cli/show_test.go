package cli

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/custodia-labs/menusearch/internal/core/domain"
)

func TestShowCmd_Item(t *testing.T) {
	setupTestServices(t)

	out, err := execute(t, "show", "/dish/1")

	require.NoError(t, err)
	assert.Contains(t, out, "Борщ  (dish #1)")
	assert.Contains(t, out, "Description")
	assert.Contains(t, out, "Composition")
	assert.NotContains(t, out, "Query:")
}

func TestShowCmd_BareID(t *testing.T) {
	setupTestServices(t)

	out, err := execute(t, "show", "2")

	require.NoError(t, err)
	assert.Contains(t, out, "Пельмени")
}

func TestShowCmd_EnglishWithQuery(t *testing.T) {
	setupTestServices(t)

	out, err := execute(t, "show", "/dish/1", "--en", "-q", "cream")

	require.NoError(t, err)
	assert.Contains(t, out, "Borscht")
	assert.Contains(t, out, "[cream]")
	assert.Contains(t, out, "> Description")
}

func TestShowCmd_Menu(t *testing.T) {
	setupTestServices(t)

	out, err := execute(t, "show", domain.MenuPath("Основное меню"))

	require.NoError(t, err)
	assert.Contains(t, out, "Основное меню (2 items)")
	assert.NotContains(t, out, "Окрошка")
}

func TestShowCmd_Errors(t *testing.T) {
	setupTestServices(t)

	tests := []struct {
		path string
		want error
	}{
		{"/soup/1", domain.ErrInvalidPath},
		{"/dish/", domain.ErrInvalidPath},
		{"/dish/404", domain.ErrNotFound},
		{"/menu/Завтрак", domain.ErrNotFound},
	}
	for _, tt := range tests {
		t.Run(tt.path, func(t *testing.T) {
			_, err := execute(t, "show", tt.path)
			assert.ErrorIs(t, err, tt.want)
		})
	}
}
