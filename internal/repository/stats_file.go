package repository

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sync"

	"github.com/Ryuen4/Asmaul-Husna-Quiz/internal/domain/entities"
)

// StatsKey identifies the persisted best-score record. Bump the suffix if
// the layout ever changes.
const StatsKey = "asmaul_husna_stats_v1"

// statsBlob is the on-disk layout: the whole mapping is read and written as
// one record under the versioned key.
type statsBlob struct {
	Key  string         `json:"key"`
	Best map[string]int `json:"best"`
}

// FileStatsRepository persists the best score per difficulty level in a
// single local JSON file. The whole mapping is rewritten on every update;
// the write goes through a temp file and a rename so a crash mid-write
// leaves either the old or the new record, never a torn one.
type FileStatsRepository struct {
	mu   sync.Mutex
	path string
}

// NewFileStatsRepository creates a repository backed by the file at path.
// The file does not have to exist yet.
func NewFileStatsRepository(path string) *FileStatsRepository {
	return &FileStatsRepository{path: path}
}

// Best returns the stored best score per level. A missing or malformed file
// yields an empty mapping, never an error: stats are best-effort and must
// not break the caller.
func (r *FileStatsRepository) Best(_ context.Context) (map[entities.Level]int, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	return r.loadLocked(), nil
}

// RecordScore stores the score for the level if it is strictly greater than
// the current best. An absent best counts as 0, so a first-ever score of 0
// is not recorded.
func (r *FileStatsRepository) RecordScore(_ context.Context, level entities.Level, score int) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	best := r.loadLocked()
	if score <= best[level] {
		return nil
	}
	best[level] = score

	return r.saveLocked(best)
}

func (r *FileStatsRepository) loadLocked() map[entities.Level]int {
	out := make(map[entities.Level]int)

	data, err := os.ReadFile(r.path)
	if err != nil {
		return out
	}

	var blob statsBlob
	if err := json.Unmarshal(data, &blob); err != nil || blob.Key != StatsKey {
		// Malformed record: reset to empty rather than failing.
		return out
	}

	for level, score := range blob.Best {
		out[entities.Level(level)] = score
	}
	return out
}

func (r *FileStatsRepository) saveLocked(best map[entities.Level]int) error {
	blob := statsBlob{
		Key:  StatsKey,
		Best: make(map[string]int, len(best)),
	}
	for level, score := range best {
		blob.Best[string(level)] = score
	}

	data, err := json.MarshalIndent(blob, "", "  ")
	if err != nil {
		return fmt.Errorf("marshal stats: %w", err)
	}

	dir := filepath.Dir(r.path)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("create stats dir: %w", err)
	}

	tmp, err := os.CreateTemp(dir, "stats-*.json")
	if err != nil {
		return fmt.Errorf("create temp stats file: %w", err)
	}
	tmpName := tmp.Name()

	if _, err := tmp.Write(data); err != nil {
		_ = tmp.Close()
		_ = os.Remove(tmpName)
		return fmt.Errorf("write stats: %w", err)
	}
	if err := tmp.Close(); err != nil {
		_ = os.Remove(tmpName)
		return fmt.Errorf("close stats file: %w", err)
	}

	if err := os.Rename(tmpName, r.path); err != nil {
		_ = os.Remove(tmpName)
		return fmt.Errorf("replace stats file: %w", err)
	}
	return nil
}
