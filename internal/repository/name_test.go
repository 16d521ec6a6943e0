package repository

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Ryuen4/Asmaul-Husna-Quiz/internal/domain/entities"
)

func writeNamesFile(t *testing.T, names []*entities.Name) string {
	t.Helper()

	wrapper := struct {
		Names []*entities.Name `json:"names"`
	}{Names: names}

	data, err := json.Marshal(wrapper)
	require.NoError(t, err)

	path := filepath.Join(t.TempDir(), "names.json")
	require.NoError(t, os.WriteFile(path, data, 0o644))
	return path
}

func fullCatalog() []*entities.Name {
	names := make([]*entities.Name, 0, 99)
	for i := 1; i <= 99; i++ {
		names = append(names, &entities.Name{
			Number:          i,
			ArabicName:      fmt.Sprintf("arabic-%d", i),
			Transliteration: fmt.Sprintf("Name-%d", i),
			Meaning:         fmt.Sprintf("Meaning %d", i),
		})
	}
	return names
}

func TestNewNameRepository(t *testing.T) {
	repo, err := NewNameRepository(writeNamesFile(t, fullCatalog()))
	require.NoError(t, err)

	all, err := repo.GetAll(context.Background())
	require.NoError(t, err)
	assert.Len(t, all, 99)
}

func TestNewNameRepository_AssetValidation(t *testing.T) {
	t.Run("missing file", func(t *testing.T) {
		_, err := NewNameRepository(filepath.Join(t.TempDir(), "missing.json"))
		assert.Error(t, err)
	})

	t.Run("wrong count", func(t *testing.T) {
		_, err := NewNameRepository(writeNamesFile(t, fullCatalog()[:98]))
		assert.ErrorContains(t, err, "expected 99 names")
	})

	t.Run("duplicate number", func(t *testing.T) {
		names := fullCatalog()
		names[98].Number = 1
		_, err := NewNameRepository(writeNamesFile(t, names))
		assert.ErrorContains(t, err, "duplicate name number")
	})

	t.Run("number out of range", func(t *testing.T) {
		names := fullCatalog()
		names[98].Number = 100
		_, err := NewNameRepository(writeNamesFile(t, names))
		assert.ErrorContains(t, err, "out of range")
	})
}

func TestNameRepository_GetByNumber(t *testing.T) {
	repo, err := NewNameRepository(writeNamesFile(t, fullCatalog()))
	require.NoError(t, err)
	ctx := context.Background()

	name, err := repo.GetByNumber(ctx, 42)
	require.NoError(t, err)
	assert.Equal(t, 42, name.Number)

	_, err = repo.GetByNumber(ctx, 0)
	assert.ErrorIs(t, err, ErrInvalidNumber)

	_, err = repo.GetByNumber(ctx, 100)
	assert.ErrorIs(t, err, ErrInvalidNumber)
}

func TestNameRepository_GetRandom(t *testing.T) {
	repo, err := NewNameRepository(writeNamesFile(t, fullCatalog()))
	require.NoError(t, err)

	name, err := repo.GetRandom(context.Background())
	require.NoError(t, err)
	assert.GreaterOrEqual(t, name.Number, 1)
	assert.LessOrEqual(t, name.Number, 99)
}

func TestNameRepository_Search(t *testing.T) {
	repo, err := NewNameRepository(writeNamesFile(t, fullCatalog()))
	require.NoError(t, err)
	ctx := context.Background()

	found, err := repo.Search(ctx, "name-4")
	require.NoError(t, err)
	// Matches Name-4, Name-40..Name-49.
	assert.Len(t, found, 11)

	found, err = repo.Search(ctx, "no such thing")
	require.NoError(t, err)
	assert.Empty(t, found)

	found, err = repo.Search(ctx, "   ")
	require.NoError(t, err)
	assert.Len(t, found, 99)
}
