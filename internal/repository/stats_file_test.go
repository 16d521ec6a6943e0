package repository

import (
	"context"
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Ryuen4/Asmaul-Husna-Quiz/internal/domain/entities"
)

func newTestStatsRepo(t *testing.T) *FileStatsRepository {
	t.Helper()
	return NewFileStatsRepository(filepath.Join(t.TempDir(), "stats.json"))
}

func TestFileStatsRepository_MissingFile(t *testing.T) {
	repo := newTestStatsRepo(t)

	best, err := repo.Best(context.Background())
	require.NoError(t, err)
	assert.Empty(t, best)
}

func TestFileStatsRepository_RecordAndLoad(t *testing.T) {
	repo := newTestStatsRepo(t)
	ctx := context.Background()

	require.NoError(t, repo.RecordScore(ctx, entities.LevelEasy, 7))
	require.NoError(t, repo.RecordScore(ctx, entities.LevelHard, 31))

	best, err := repo.Best(ctx)
	require.NoError(t, err)
	assert.Equal(t, map[entities.Level]int{
		entities.LevelEasy: 7,
		entities.LevelHard: 31,
	}, best)
}

func TestFileStatsRepository_StrictlyGreaterOnly(t *testing.T) {
	repo := newTestStatsRepo(t)
	ctx := context.Background()

	require.NoError(t, repo.RecordScore(ctx, entities.LevelEasy, 3))
	require.NoError(t, repo.RecordScore(ctx, entities.LevelEasy, 2))
	require.NoError(t, repo.RecordScore(ctx, entities.LevelEasy, 3))
	require.NoError(t, repo.RecordScore(ctx, entities.LevelEasy, 5))

	best, err := repo.Best(ctx)
	require.NoError(t, err)
	assert.Equal(t, 5, best[entities.LevelEasy])
}

func TestFileStatsRepository_ZeroScoreNotRecorded(t *testing.T) {
	repo := newTestStatsRepo(t)
	ctx := context.Background()

	require.NoError(t, repo.RecordScore(ctx, entities.LevelMedium, 0))

	best, err := repo.Best(ctx)
	require.NoError(t, err)
	assert.Empty(t, best)
	_, err = os.Stat(repo.path)
	assert.True(t, os.IsNotExist(err), "a no-op record must not create the file")
}

func TestFileStatsRepository_MalformedFileResets(t *testing.T) {
	repo := newTestStatsRepo(t)
	ctx := context.Background()

	require.NoError(t, os.WriteFile(repo.path, []byte("{not json"), 0o644))

	best, err := repo.Best(ctx)
	require.NoError(t, err)
	assert.Empty(t, best)

	// Recording over a corrupt file starts from scratch.
	require.NoError(t, repo.RecordScore(ctx, entities.LevelEasy, 4))
	best, err = repo.Best(ctx)
	require.NoError(t, err)
	assert.Equal(t, map[entities.Level]int{entities.LevelEasy: 4}, best)
}

func TestFileStatsRepository_WrongKeyIgnored(t *testing.T) {
	repo := newTestStatsRepo(t)
	ctx := context.Background()

	stale, err := json.Marshal(statsBlob{Key: "some_other_key", Best: map[string]int{"easy": 9}})
	require.NoError(t, err)
	require.NoError(t, os.WriteFile(repo.path, stale, 0o644))

	best, err := repo.Best(ctx)
	require.NoError(t, err)
	assert.Empty(t, best)
}

func TestFileStatsRepository_WritesVersionedBlob(t *testing.T) {
	repo := newTestStatsRepo(t)
	ctx := context.Background()

	require.NoError(t, repo.RecordScore(ctx, entities.LevelEasy, 6))

	data, err := os.ReadFile(repo.path)
	require.NoError(t, err)

	var blob statsBlob
	require.NoError(t, json.Unmarshal(data, &blob))
	assert.Equal(t, StatsKey, blob.Key)
	assert.Equal(t, map[string]int{"easy": 6}, blob.Best)
}

func TestFileStatsRepository_CreatesParentDir(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "dir", "stats.json")
	repo := NewFileStatsRepository(path)

	require.NoError(t, repo.RecordScore(context.Background(), entities.LevelHard, 12))

	_, err := os.Stat(path)
	assert.NoError(t, err)
}
