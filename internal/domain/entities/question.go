package entities

// Question is one multiple choice question within a quiz session. The
// options contain the correct name exactly once; the rest are distractors
// drawn from the catalog. Option order is randomized at generation time and
// fixed for the session's duration.
type Question struct {
	Correct *Name
	Options []*Name
}

// HasOption reports whether the given name number is one of the question's
// options.
func (q Question) HasOption(number int) bool {
	for _, opt := range q.Options {
		if opt.Number == number {
			return true
		}
	}
	return false
}

// Option returns the option with the given name number, or nil if the
// number does not belong to this question.
func (q Question) Option(number int) *Name {
	for _, opt := range q.Options {
		if opt.Number == number {
			return opt
		}
	}
	return nil
}
