package service

import (
	"fmt"
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Ryuen4/Asmaul-Husna-Quiz/internal/domain/entities"
)

func makeCatalog(n int) []*entities.Name {
	names := make([]*entities.Name, 0, n)
	for i := 1; i <= n; i++ {
		names = append(names, &entities.Name{
			Number:          i,
			ArabicName:      fmt.Sprintf("arabic-%d", i),
			Transliteration: fmt.Sprintf("Name-%d", i),
			Meaning:         fmt.Sprintf("Meaning %d", i),
		})
	}
	return names
}

func TestGenerator_Generate(t *testing.T) {
	gen := NewGenerator(rand.NewSource(1))
	catalog := makeCatalog(99)
	cfg := entities.LevelConfig{QuestionCount: 10}

	questions, err := gen.Generate(cfg, catalog)
	require.NoError(t, err)
	require.Len(t, questions, 10)

	seenCorrect := make(map[int]struct{})
	for _, q := range questions {
		// Correct answers are drawn without replacement.
		_, dup := seenCorrect[q.Correct.Number]
		assert.False(t, dup, "correct name %d repeated", q.Correct.Number)
		seenCorrect[q.Correct.Number] = struct{}{}

		require.Len(t, q.Options, 4)

		seenOptions := make(map[int]struct{})
		correctCount := 0
		for _, opt := range q.Options {
			_, dup := seenOptions[opt.Number]
			assert.False(t, dup, "option %d repeated within a question", opt.Number)
			seenOptions[opt.Number] = struct{}{}

			if opt.Number == q.Correct.Number {
				correctCount++
			}
		}
		assert.Equal(t, 1, correctCount, "correct name must appear exactly once among options")
	}
}

func TestGenerator_Generate_ShufflesCorrectPosition(t *testing.T) {
	gen := NewGenerator(rand.NewSource(42))
	catalog := makeCatalog(99)
	cfg := entities.LevelConfig{QuestionCount: 50}

	questions, err := gen.Generate(cfg, catalog)
	require.NoError(t, err)

	positions := make(map[int]struct{})
	for _, q := range questions {
		for i, opt := range q.Options {
			if opt.Number == q.Correct.Number {
				positions[i] = struct{}{}
			}
		}
	}

	// With 50 questions the correct answer has to land in more than one
	// slot; a fixed position would make the quiz trivially gameable.
	assert.Greater(t, len(positions), 1)
}

func TestGenerator_Generate_InsufficientCatalog(t *testing.T) {
	gen := NewGenerator(rand.NewSource(1))

	tests := []struct {
		name    string
		cfg     entities.LevelConfig
		catalog []*entities.Name
	}{
		{
			name:    "zero questions",
			cfg:     entities.LevelConfig{QuestionCount: 0},
			catalog: makeCatalog(99),
		},
		{
			name:    "catalog smaller than count plus distractors",
			cfg:     entities.LevelConfig{QuestionCount: 10},
			catalog: makeCatalog(12),
		},
		{
			name:    "empty catalog",
			cfg:     entities.LevelConfig{QuestionCount: 1},
			catalog: nil,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := gen.Generate(tt.cfg, tt.catalog)
			assert.ErrorIs(t, err, ErrInsufficientCatalog)
		})
	}
}

func TestGenerator_Generate_ExactBoundary(t *testing.T) {
	gen := NewGenerator(rand.NewSource(7))

	// QuestionCount + 3 distractors is the minimum viable catalog.
	catalog := makeCatalog(13)
	cfg := entities.LevelConfig{QuestionCount: 10}

	questions, err := gen.Generate(cfg, catalog)
	require.NoError(t, err)
	assert.Len(t, questions, 10)
}

func TestGenerator_Generate_DoesNotMutateCatalog(t *testing.T) {
	gen := NewGenerator(rand.NewSource(3))
	catalog := makeCatalog(99)

	order := make([]int, len(catalog))
	for i, n := range catalog {
		order[i] = n.Number
	}

	_, err := gen.Generate(entities.LevelConfig{QuestionCount: 10}, catalog)
	require.NoError(t, err)

	for i, n := range catalog {
		assert.Equal(t, order[i], n.Number)
	}
}
