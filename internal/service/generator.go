package service

import (
	"errors"
	"math/rand"
	"sync"
	"time"

	"github.com/Ryuen4/Asmaul-Husna-Quiz/internal/domain/entities"
)

// distractorsPerQuestion is fixed regardless of level: every question shows
// the correct name plus three wrong ones.
const distractorsPerQuestion = 3

// ErrInsufficientCatalog is returned when the catalog cannot supply the
// requested number of questions plus three distinct distractors. Generation
// fails outright rather than degrading to fewer options.
var ErrInsufficientCatalog = errors.New("catalog too small for requested quiz")

// Generator builds a session's question list from the catalog. The random
// source is injectable so tests can supply a deterministic one.
type Generator struct {
	mu  sync.Mutex
	rng *rand.Rand
}

// NewGenerator creates a Generator. A nil source falls back to a
// time-seeded one.
func NewGenerator(src rand.Source) *Generator {
	if src == nil {
		src = rand.NewSource(time.Now().UnixNano())
	}
	return &Generator{rng: rand.New(src)}
}

// Generate draws cfg.QuestionCount distinct names from the catalog without
// replacement, then for each of them picks three distinct distractors from
// the rest of the catalog and shuffles the four options. The same name may
// serve as the correct answer of one question and a distractor of another;
// there is no global deduplication across questions.
func (g *Generator) Generate(cfg entities.LevelConfig, catalog []*entities.Name) ([]entities.Question, error) {
	if cfg.QuestionCount < 1 || len(catalog) < cfg.QuestionCount+distractorsPerQuestion {
		return nil, ErrInsufficientCatalog
	}

	g.mu.Lock()
	defer g.mu.Unlock()

	pool := append([]*entities.Name(nil), catalog...)
	g.rng.Shuffle(len(pool), func(i, j int) {
		pool[i], pool[j] = pool[j], pool[i]
	})

	questions := make([]entities.Question, 0, cfg.QuestionCount)
	for _, correct := range pool[:cfg.QuestionCount] {
		distractors := g.pickDistractors(catalog, correct.Number, distractorsPerQuestion)
		questions = append(questions, entities.Question{
			Correct: correct,
			Options: g.buildOptions(correct, distractors),
		})
	}

	return questions, nil
}

// pickDistractors draws count distinct names from the catalog, excluding
// the target number.
func (g *Generator) pickDistractors(catalog []*entities.Name, targetNumber, count int) []*entities.Name {
	candidates := make([]*entities.Name, 0, len(catalog))
	for _, n := range catalog {
		if n.Number != targetNumber {
			candidates = append(candidates, n)
		}
	}

	g.rng.Shuffle(len(candidates), func(i, j int) {
		candidates[i], candidates[j] = candidates[j], candidates[i]
	})

	return candidates[:count]
}

// buildOptions combines the correct name with its distractors and applies a
// uniform random permutation, so the correct answer does not always land in
// the same position.
func (g *Generator) buildOptions(correct *entities.Name, distractors []*entities.Name) []*entities.Name {
	options := make([]*entities.Name, 0, 1+len(distractors))
	options = append(options, correct)
	options = append(options, distractors...)

	g.rng.Shuffle(len(options), func(i, j int) {
		options[i], options[j] = options[j], options[i]
	})

	return options
}
