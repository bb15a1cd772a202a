package cli

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/custodia-labs/menusearch/internal/core/domain"
)

// recordingImporter keeps what it was asked to import.
type recordingImporter struct {
	items []domain.SourceItem
	err   error
}

func (r *recordingImporter) Import(_ context.Context, items []domain.SourceItem) (int, error) {
	if r.err != nil {
		return 0, r.err
	}
	r.items = append(r.items, items...)
	return len(items), nil
}

func writeCatalog(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "catalog.json")
	require.NoError(t, os.WriteFile(path, []byte(body), 0o600))
	return path
}

func TestImportCmd(t *testing.T) {
	setupTestServices(t)
	imp := &recordingImporter{}
	services.Importer = imp

	path := writeCatalog(t, `[{"id": 7, "title": "Уха", "menu": "Основное меню"}, {"id": "8", "title": "Квас"}]`)

	out, err := execute(t, "import", path)

	require.NoError(t, err)
	assert.Contains(t, out, "Imported 2 items.")
	require.Len(t, imp.items, 2)
	assert.Equal(t, "7", imp.items[0].ID)
	assert.Equal(t, "Уха", imp.items[0].Title)
}

func TestImportCmd_Errors(t *testing.T) {
	t.Run("no importer", func(t *testing.T) {
		setupTestServices(t)

		_, err := execute(t, "import", writeCatalog(t, `[]`))

		assert.ErrorIs(t, err, errNoImporter)
	})

	t.Run("missing file", func(t *testing.T) {
		setupTestServices(t)
		services.Importer = &recordingImporter{}

		_, err := execute(t, "import", filepath.Join(t.TempDir(), "nope.json"))

		assert.Error(t, err)
	})

	t.Run("store failure", func(t *testing.T) {
		setupTestServices(t)
		boom := errors.New("disk full")
		services.Importer = &recordingImporter{err: boom}

		_, err := execute(t, "import", writeCatalog(t, `[{"id": "1"}]`))

		assert.ErrorIs(t, err, boom)
	})
}
