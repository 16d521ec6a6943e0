package repository

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/Ryuen4/Asmaul-Husna-Quiz/internal/domain/entities"
)

// PostgresStatsRepository persists the best-score mapping as a single JSONB
// blob keyed by StatsKey. The whole mapping is read and written in one
// statement, matching the file backend's read-whole/write-whole contract.
type PostgresStatsRepository struct {
	db *pgxpool.Pool
}

// NewPostgresStatsRepository creates a repository backed by the given pool.
func NewPostgresStatsRepository(db *pgxpool.Pool) *PostgresStatsRepository {
	return &PostgresStatsRepository{db: db}
}

// EnsureSchema creates the stats table if it does not exist yet.
func (r *PostgresStatsRepository) EnsureSchema(ctx context.Context) error {
	query := `
		CREATE TABLE IF NOT EXISTS quiz_stats (
			key  TEXT PRIMARY KEY,
			data JSONB NOT NULL
		)
	`

	if _, err := r.db.Exec(ctx, query); err != nil {
		return fmt.Errorf("ensure stats schema: %w", err)
	}
	return nil
}

// Best returns the stored best score per level. An absent row or a
// malformed blob yields an empty mapping.
func (r *PostgresStatsRepository) Best(ctx context.Context) (map[entities.Level]int, error) {
	out := make(map[entities.Level]int)

	var data []byte
	err := r.db.QueryRow(ctx, `SELECT data FROM quiz_stats WHERE key = $1`, StatsKey).Scan(&data)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return out, nil
		}
		return nil, fmt.Errorf("load stats: %w", err)
	}

	var best map[string]int
	if err := json.Unmarshal(data, &best); err != nil {
		// Malformed record: reset to empty rather than failing.
		return out, nil
	}

	for level, score := range best {
		out[entities.Level(level)] = score
	}
	return out, nil
}

// RecordScore stores the score for the level if it is strictly greater than
// the current best, rewriting the whole mapping in a single upsert.
func (r *PostgresStatsRepository) RecordScore(ctx context.Context, level entities.Level, score int) error {
	best, err := r.Best(ctx)
	if err != nil {
		return err
	}

	if score <= best[level] {
		return nil
	}
	best[level] = score

	blob := make(map[string]int, len(best))
	for l, s := range best {
		blob[string(l)] = s
	}

	data, err := json.Marshal(blob)
	if err != nil {
		return fmt.Errorf("marshal stats: %w", err)
	}

	query := `
		INSERT INTO quiz_stats (key, data)
		VALUES ($1, $2)
		ON CONFLICT (key) DO UPDATE SET data = EXCLUDED.data
	`

	if _, err := r.db.Exec(ctx, query, StatsKey, data); err != nil {
		return fmt.Errorf("save stats: %w", err)
	}
	return nil
}
