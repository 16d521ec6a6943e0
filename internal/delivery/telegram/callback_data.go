package telegram

import (
	"strconv"
	"strings"
)

// Callback action constants.
const (
	actionQuiz = "quiz"
	actionName = "name"
	actionLang = "lang"
)

// Quiz sub-actions.
const (
	quizLevel  = "level"
	quizAnswer = "ans"
	quizNav    = "nav"
	quizSubmit = "submit"
	quizCancel = "cancel"
)

// Lang sub-actions.
const (
	langToggle = "toggle"
)

// callbackData represents structured callback data.
type callbackData struct {
	Action string
	Params []string
	Raw    string
}

// encode creates callback string.
func (cd callbackData) encode() string {
	if len(cd.Params) == 0 {
		return cd.Action
	}
	return cd.Action + ":" + strings.Join(cd.Params, ":")
}

// decodeCallback parses callback data string.
func decodeCallback(data string) callbackData {
	parts := strings.Split(data, ":")
	if len(parts) == 0 {
		return callbackData{Raw: data}
	}

	return callbackData{
		Action: parts[0],
		Params: parts[1:],
		Raw:    data,
	}
}

// buildQuizLevelCallback builds callback data for starting a quiz at a level.
func buildQuizLevelCallback(level string) string {
	return callbackData{
		Action: actionQuiz,
		Params: []string{quizLevel, level},
	}.encode()
}

// buildQuizAnswerCallback builds callback data for selecting an option. The
// card index is carried along so the same question card can be re-rendered.
func buildQuizAnswerCallback(card, questionNumber, optionNumber int) string {
	return callbackData{
		Action: actionQuiz,
		Params: []string{
			quizAnswer,
			strconv.Itoa(card),
			strconv.Itoa(questionNumber),
			strconv.Itoa(optionNumber),
		},
	}.encode()
}

// buildQuizNavCallback builds callback data for moving to another question card.
func buildQuizNavCallback(card int) string {
	return callbackData{
		Action: actionQuiz,
		Params: []string{quizNav, strconv.Itoa(card)},
	}.encode()
}

// buildQuizSubmitCallback builds callback data for submitting the session.
func buildQuizSubmitCallback() string {
	return callbackData{
		Action: actionQuiz,
		Params: []string{quizSubmit},
	}.encode()
}

// buildQuizCancelCallback builds callback data for abandoning the session.
func buildQuizCancelCallback() string {
	return callbackData{
		Action: actionQuiz,
		Params: []string{quizCancel},
	}.encode()
}

// buildNameCallback builds callback data for opening a catalog page.
func buildNameCallback(page int) string {
	return callbackData{
		Action: actionName,
		Params: []string{strconv.Itoa(page)},
	}.encode()
}

// buildLangToggleCallback builds callback data for switching the language.
func buildLangToggleCallback() string {
	return callbackData{
		Action: actionLang,
		Params: []string{langToggle},
	}.encode()
}
