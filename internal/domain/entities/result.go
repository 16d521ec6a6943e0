package entities

import "math"

// Result is the outcome of a finished quiz session. Questions and Answers
// are carried over verbatim so the result screen can show a per-question
// review. Only the score itself is persisted.
type Result struct {
	Level     Level
	Score     int
	Total     int
	Questions []Question
	Answers   map[int]int // question's name number -> selected option's name number
}

// Percentage returns the score as a rounded percentage of the total.
// Total is never zero: a session always has at least one question.
func (r *Result) Percentage() int {
	return int(math.Round(100 * float64(r.Score) / float64(r.Total)))
}
