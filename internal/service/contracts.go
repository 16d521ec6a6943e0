package service

import (
	"context"

	"github.com/Ryuen4/Asmaul-Husna-Quiz/internal/domain/entities"
)

// NameRepository supplies the static name catalog.
type NameRepository interface {
	GetByNumber(_ context.Context, number int) (*entities.Name, error)
	GetRandom(_ context.Context) (*entities.Name, error)
	GetAll(_ context.Context) ([]*entities.Name, error)
	Search(_ context.Context, term string) ([]*entities.Name, error)
}

// StatsRepository persists the best score per difficulty level. Best must
// return an empty mapping when nothing has been persisted yet or the
// persisted record is malformed. RecordScore overwrites only when the new
// score is strictly greater than the stored best, writing the whole mapping
// in one go.
type StatsRepository interface {
	Best(ctx context.Context) (map[entities.Level]int, error)
	RecordScore(ctx context.Context, level entities.Level, score int) error
}
