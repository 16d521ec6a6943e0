package service

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Ryuen4/Asmaul-Husna-Quiz/internal/domain/entities"
)

func questionsFor(catalog []*entities.Name, correctNumbers ...int) []entities.Question {
	byNumber := make(map[int]*entities.Name, len(catalog))
	for _, n := range catalog {
		byNumber[n.Number] = n
	}

	questions := make([]entities.Question, 0, len(correctNumbers))
	for _, num := range correctNumbers {
		correct := byNumber[num]
		options := []*entities.Name{correct}
		for _, n := range catalog {
			if len(options) == 4 {
				break
			}
			if n.Number != num {
				options = append(options, n)
			}
		}
		questions = append(questions, entities.Question{Correct: correct, Options: options})
	}
	return questions
}

func TestScore(t *testing.T) {
	catalog := makeCatalog(10)
	questions := questionsFor(catalog, 1, 2, 3, 4)

	answers := map[int]int{
		1: 1, // correct
		2: 5, // wrong option
		3: 3, // correct
		// 4 unanswered
	}

	result := score(entities.LevelEasy, questions, answers)
	require.NotNil(t, result)
	assert.Equal(t, entities.LevelEasy, result.Level)
	assert.Equal(t, 2, result.Score)
	assert.Equal(t, 4, result.Total)
	assert.Equal(t, 50, result.Percentage())
}

func TestScore_EmptyAnswers(t *testing.T) {
	catalog := makeCatalog(10)
	questions := questionsFor(catalog, 1, 2, 3)

	result := score(entities.LevelHard, questions, map[int]int{})
	assert.Equal(t, 0, result.Score)
	assert.Equal(t, 3, result.Total)
	assert.Equal(t, 0, result.Percentage())
}

func TestScore_AllCorrect(t *testing.T) {
	catalog := makeCatalog(10)
	questions := questionsFor(catalog, 2, 4, 6)

	result := score(entities.LevelMedium, questions, map[int]int{2: 2, 4: 4, 6: 6})
	assert.Equal(t, 3, result.Score)
	assert.Equal(t, 100, result.Percentage())
}

func TestScore_CopiesAnswers(t *testing.T) {
	catalog := makeCatalog(10)
	questions := questionsFor(catalog, 1)

	answers := map[int]int{1: 1}
	result := score(entities.LevelEasy, questions, answers)

	answers[1] = 9
	assert.Equal(t, 1, result.Answers[1], "result must not share the caller's answers map")
}

func TestResult_PercentageRounds(t *testing.T) {
	r := &entities.Result{Score: 2, Total: 3}
	assert.Equal(t, 67, r.Percentage())

	r = &entities.Result{Score: 1, Total: 3}
	assert.Equal(t, 33, r.Percentage())
}
