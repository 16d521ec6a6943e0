package service

import "github.com/Ryuen4/Asmaul-Husna-Quiz/internal/domain/entities"

// score computes the result for a finished session. A question counts as
// correct when the selected option's number equals the correct name's
// number; an absent answer or a mismatch counts as incorrect. Pure function:
// no side effects, no randomness, order-independent.
func score(level entities.Level, questions []entities.Question, answers map[int]int) *entities.Result {
	correct := 0
	for _, q := range questions {
		if selected, ok := answers[q.Correct.Number]; ok && selected == q.Correct.Number {
			correct++
		}
	}

	copied := make(map[int]int, len(answers))
	for k, v := range answers {
		copied[k] = v
	}

	return &entities.Result{
		Level:     level,
		Score:     correct,
		Total:     len(questions),
		Questions: questions,
		Answers:   copied,
	}
}
