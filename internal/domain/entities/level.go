package entities

import "time"

// Level represents a quiz difficulty level.
type Level string

const (
	LevelEasy   Level = "easy"
	LevelMedium Level = "medium"
	LevelHard   Level = "hard"
)

// AllLevels lists the configured levels in display order.
var AllLevels = []Level{LevelEasy, LevelMedium, LevelHard}

// LevelConfig describes one difficulty level: how many questions a session
// asks and the total time allowed. A zero TimeLimit means the session is
// untimed.
type LevelConfig struct {
	QuestionCount int
	TimeLimit     time.Duration
}

// Timed reports whether sessions at this level run against a countdown.
func (c LevelConfig) Timed() bool {
	return c.TimeLimit > 0
}

var levelConfigs = map[Level]LevelConfig{
	LevelEasy:   {QuestionCount: 10, TimeLimit: 0},
	LevelMedium: {QuestionCount: 25, TimeLimit: 5 * time.Minute},
	LevelHard:   {QuestionCount: 50, TimeLimit: 10 * time.Minute},
}

// ConfigFor returns the configuration for the given level.
func ConfigFor(level Level) (LevelConfig, bool) {
	cfg, ok := levelConfigs[level]
	return cfg, ok
}

// Valid reports whether the level is one of the configured levels.
func (l Level) Valid() bool {
	_, ok := levelConfigs[l]
	return ok
}
