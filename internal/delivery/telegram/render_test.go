package telegram

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/Ryuen4/Asmaul-Husna-Quiz/internal/domain/entities"
)

var testName = &entities.Name{
	Number:            1,
	ArabicName:        "الرحمن",
	Transliteration:   "Ar-Rahman",
	Meaning:           "The Most Merciful",
	BnTransliteration: "আর-রাহমান",
	BnMeaning:         "পরম দয়ালু",
}

func TestLanguageFallbacks(t *testing.T) {
	assert.Equal(t, "Ar-Rahman", transliterationFor(testName, langEnglish))
	assert.Equal(t, "আর-রাহমান", transliterationFor(testName, langBengali))
	assert.Equal(t, "পরম দয়ালু", meaningFor(testName, langBengali))

	// Bengali falls back to English when a translation is missing.
	partial := &entities.Name{Transliteration: "Al-Malik", Meaning: "The King"}
	assert.Equal(t, "Al-Malik", transliterationFor(partial, langBengali))
	assert.Equal(t, "The King", meaningFor(partial, langBengali))
}

func TestBuildResultText_Verdicts(t *testing.T) {
	names := []*entities.Name{
		{Number: 1, Transliteration: "One", Meaning: "First"},
		{Number: 2, Transliteration: "Two", Meaning: "Second"},
		{Number: 3, Transliteration: "Three", Meaning: "Third"},
		{Number: 4, Transliteration: "Four", Meaning: "Fourth"},
		{Number: 5, Transliteration: "Five", Meaning: "Fifth"},
	}
	questions := make([]entities.Question, 0, len(names))
	for _, n := range names {
		questions = append(questions, entities.Question{Correct: n, Options: names})
	}

	tests := []struct {
		name    string
		answers map[int]int
		score   int
		verdict string
	}{
		{"mastery", map[int]int{1: 1, 2: 2, 3: 3, 4: 4, 5: 5}, 5, labelsEN.Mastery},
		{"commendable", map[int]int{1: 1, 2: 2, 3: 3, 4: 4, 5: 1}, 4, labelsEN.Commendable},
		{"growth", map[int]int{1: 1}, 1, labelsEN.Growth},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := &entities.Result{
				Level:     entities.LevelEasy,
				Score:     tt.score,
				Total:     len(questions),
				Questions: questions,
				Answers:   tt.answers,
			}

			text := buildResultText(result, langEnglish)
			assert.Contains(t, text, tt.verdict)
		})
	}
}

func TestBuildResultText_ShowsChosenOnWrongAnswer(t *testing.T) {
	first := &entities.Name{Number: 1, Transliteration: "One", Meaning: "First"}
	second := &entities.Name{Number: 2, Transliteration: "Two", Meaning: "Second"}
	question := entities.Question{Correct: first, Options: []*entities.Name{first, second}}

	result := &entities.Result{
		Level:     entities.LevelEasy,
		Score:     0,
		Total:     1,
		Questions: []entities.Question{question},
		Answers:   map[int]int{1: 2},
	}

	text := buildResultText(result, langEnglish)
	assert.Contains(t, text, "❌")
	assert.Contains(t, text, "Second")
}

func TestFormatClock(t *testing.T) {
	assert.Equal(t, "0:00", formatClock(0))
	assert.Equal(t, "0:59", formatClock(59))
	assert.Equal(t, "1:00", formatClock(60))
	assert.Equal(t, "10:05", formatClock(605))
}

func TestCapitalize(t *testing.T) {
	assert.Equal(t, "Easy", capitalize("easy"))
	assert.Equal(t, "", capitalize(""))
	assert.Equal(t, "X", capitalize("x"))
}
