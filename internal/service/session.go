package service

import (
	"errors"
	"sync"

	"github.com/Ryuen4/Asmaul-Husna-Quiz/internal/domain/entities"
)

// Session states. A session moves Initializing -> Active -> Finished; there
// is no way back from Finished. Retrying a level always builds a fresh
// session. Abandoning discards the session without a result.
const (
	StateInitializing = "initializing"
	StateActive       = "active"
	StateFinished     = "finished"
	StateAbandoned    = "abandoned"
)

var (
	ErrSessionNotActive = errors.New("quiz session is not active")
	ErrUnknownQuestion  = errors.New("question is not part of the session")
	ErrInvalidOption    = errors.New("option does not belong to the question")
)

// Session is a live quiz in progress. All mutating operations are
// serialized by a single lock, so answer selections and timer ticks never
// interleave and lose an update.
type Session struct {
	mu        sync.Mutex
	level     entities.Level
	cfg       entities.LevelConfig
	questions []entities.Question
	answers   map[int]int // question's name number -> selected option's name number
	remaining int         // seconds left, meaningful only for timed levels
	state     string
	result    *entities.Result
	onFinish  func(*entities.Result)
	done      chan struct{}
}

// newSession creates a session in the Initializing state. The onFinish hook
// fires exactly once per session instance, when the session first reaches
// Finished by manual submit or timer expiry. It never fires on abandon.
func newSession(level entities.Level, cfg entities.LevelConfig, onFinish func(*entities.Result)) *Session {
	return &Session{
		level:    level,
		cfg:      cfg,
		answers:  make(map[int]int),
		state:    StateInitializing,
		onFinish: onFinish,
		done:     make(chan struct{}),
	}
}

// activate installs the generated questions, arms the countdown and moves
// the session to Active.
func (s *Session) activate(questions []entities.Question) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.questions = questions
	s.remaining = int(s.cfg.TimeLimit.Seconds())
	s.state = StateActive
}

// SelectAnswer records the selected option for a question. Selecting again
// overwrites the previous choice. The option must belong to the question's
// option list.
func (s *Session) SelectAnswer(questionNumber, optionNumber int) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.state != StateActive {
		return ErrSessionNotActive
	}

	var question *entities.Question
	for i := range s.questions {
		if s.questions[i].Correct.Number == questionNumber {
			question = &s.questions[i]
			break
		}
	}
	if question == nil {
		return ErrUnknownQuestion
	}
	if !question.HasOption(optionNumber) {
		return ErrInvalidOption
	}

	s.answers[questionNumber] = optionNumber
	return nil
}

// Tick advances the countdown by one second. When the countdown reaches
// zero the session auto-submits with whatever answers have been recorded so
// far. Ticks delivered to an untimed or already finished session are
// no-ops, so a dangling timer cannot produce a duplicate result. Returns
// true when this tick finished the session.
func (s *Session) Tick() bool {
	s.mu.Lock()

	if s.state != StateActive || !s.cfg.Timed() {
		s.mu.Unlock()
		return false
	}

	s.remaining--
	if s.remaining > 0 {
		s.mu.Unlock()
		return false
	}

	s.remaining = 0
	result, hook := s.finishLocked()
	s.mu.Unlock()

	if hook != nil {
		hook(result)
	}
	return true
}

// Finish submits the session. Any number of questions may be unanswered;
// each counts as incorrect. Calling Finish on an already finished session
// returns the same result and triggers no further side effects.
func (s *Session) Finish() *entities.Result {
	s.mu.Lock()

	if s.state == StateFinished {
		result := s.result
		s.mu.Unlock()
		return result
	}
	if s.state != StateActive {
		s.mu.Unlock()
		return nil
	}

	result, hook := s.finishLocked()
	s.mu.Unlock()

	if hook != nil {
		hook(result)
	}
	return result
}

// finishLocked scores the session and transitions to Finished. The caller
// holds the lock; only reachable from Active, so the returned hook is
// handed out exactly once. The hook itself runs outside the lock.
func (s *Session) finishLocked() (*entities.Result, func(*entities.Result)) {
	s.result = score(s.level, s.questions, s.answers)
	s.state = StateFinished
	close(s.done)

	hook := s.onFinish
	s.onFinish = nil
	return s.result, hook
}

// Abandon discards the session: no result, no stats update. Safe to call in
// any state; abandoning a finished session does nothing.
func (s *Session) Abandon() {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.state != StateActive && s.state != StateInitializing {
		return
	}

	s.state = StateAbandoned
	s.onFinish = nil
	close(s.done)
}

// Done is closed when the session leaves Active for any reason. The ticker
// goroutine uses it to stop delivering ticks.
func (s *Session) Done() <-chan struct{} {
	return s.done
}

// Result returns the session's result once finished.
func (s *Session) Result() (*entities.Result, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.state != StateFinished {
		return nil, false
	}
	return s.result, true
}

// State returns the current session state.
func (s *Session) State() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.state
}

// Level returns the session's difficulty level.
func (s *Session) Level() entities.Level {
	return s.level
}

// Config returns the session's level configuration.
func (s *Session) Config() entities.LevelConfig {
	return s.cfg
}

// Questions returns the session's questions in order.
func (s *Session) Questions() []entities.Question {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]entities.Question(nil), s.questions...)
}

// Answers returns a copy of the recorded answers.
func (s *Session) Answers() map[int]int {
	s.mu.Lock()
	defer s.mu.Unlock()

	out := make(map[int]int, len(s.answers))
	for k, v := range s.answers {
		out[k] = v
	}
	return out
}

// Answered returns how many questions have a recorded answer.
func (s *Session) Answered() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.answers)
}

// Remaining returns the seconds left on the countdown. Zero for untimed
// sessions.
func (s *Session) Remaining() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.remaining
}
