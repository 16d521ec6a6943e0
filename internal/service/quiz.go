package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"go.uber.org/zap"

	"github.com/Ryuen4/Asmaul-Husna-Quiz/internal/domain/entities"
)

// ErrUnknownLevel is returned when a session is requested for a level that
// has no configuration.
var ErrUnknownLevel = errors.New("unknown difficulty level")

// statsWriteTimeout bounds the best-score persistence triggered by a
// finishing session. Persistence is local and fast; a slow or failing store
// must not hold the session.
const statsWriteTimeout = 5 * time.Second

// QuizService drives quiz sessions end to end: it generates the question
// set for a level, hands out the live session, and records the best score
// when a session finishes. A failed stats write is logged and dropped; the
// result shown to the user is unaffected.
type QuizService struct {
	names  NameRepository
	stats  StatsRepository
	gen    *Generator
	logger *zap.Logger
}

func NewQuizService(
	names NameRepository,
	stats StatsRepository,
	gen *Generator,
	logger *zap.Logger,
) *QuizService {
	return &QuizService{
		names:  names,
		stats:  stats,
		gen:    gen,
		logger: logger,
	}
}

// StartSession builds a fresh session for the level. The returned session
// is already Active; the brief Initializing state is observable through
// Session.State by anyone holding the session while generation runs.
func (s *QuizService) StartSession(ctx context.Context, level entities.Level) (*Session, error) {
	cfg, ok := entities.ConfigFor(level)
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrUnknownLevel, level)
	}

	catalog, err := s.names.GetAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("load catalog: %w", err)
	}

	session := newSession(level, cfg, s.recordResult)

	questions, err := s.gen.Generate(cfg, catalog)
	if err != nil {
		return nil, fmt.Errorf("generate questions: %w", err)
	}

	session.activate(questions)
	return session, nil
}

// BestScores returns the persisted best score per level.
func (s *QuizService) BestScores(ctx context.Context) (map[entities.Level]int, error) {
	return s.stats.Best(ctx)
}

// recordResult is the one-shot finish hook installed on every session. It
// runs once per session instance, on whichever path finished it first.
func (s *QuizService) recordResult(result *entities.Result) {
	ctx, cancel := context.WithTimeout(context.Background(), statsWriteTimeout)
	defer cancel()

	if err := s.stats.RecordScore(ctx, result.Level, result.Score); err != nil {
		s.logger.Warn("failed to record best score",
			zap.String("level", string(result.Level)),
			zap.Int("score", result.Score),
			zap.Error(err),
		)
		return
	}

	s.logger.Info("session finished",
		zap.String("level", string(result.Level)),
		zap.Int("score", result.Score),
		zap.Int("total", result.Total),
	)
}
