package telegram

import (
	"context"
	"strconv"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	"go.uber.org/zap"
)

func (h *Handler) handleCallback(ctx context.Context, cb *tgbotapi.CallbackQuery) {
	if cb.Message == nil {
		h.answerCallback(cb.ID, "")
		return
	}

	data := decodeCallback(cb.Data)

	switch data.Action {
	case actionQuiz:
		h.handleQuizCallback(ctx, cb, data)
	case actionName:
		h.handleNamePageCallback(ctx, cb, data)
	case actionLang:
		h.handleLangCallback(cb)
	default:
		h.answerCallback(cb.ID, "")
	}
}

func (h *Handler) handleQuizCallback(ctx context.Context, cb *tgbotapi.CallbackQuery, data callbackData) {
	if len(data.Params) == 0 {
		h.answerCallback(cb.ID, "")
		return
	}

	switch data.Params[0] {
	case quizLevel:
		if len(data.Params) != 2 {
			h.answerCallback(cb.ID, "")
			return
		}
		h.handleQuizLevel(ctx, cb, data.Params[1])

	case quizAnswer:
		if len(data.Params) != 4 {
			h.answerCallback(cb.ID, "")
			return
		}
		card, err1 := strconv.Atoi(data.Params[1])
		questionNumber, err2 := strconv.Atoi(data.Params[2])
		optionNumber, err3 := strconv.Atoi(data.Params[3])
		if err1 != nil || err2 != nil || err3 != nil {
			h.logger.Warn("invalid quiz answer callback", zap.String("data", data.Raw))
			h.answerCallback(cb.ID, "")
			return
		}
		h.handleQuizAnswer(cb, card, questionNumber, optionNumber)

	case quizNav:
		if len(data.Params) != 2 {
			h.answerCallback(cb.ID, "")
			return
		}
		card, err := strconv.Atoi(data.Params[1])
		if err != nil {
			h.answerCallback(cb.ID, "")
			return
		}
		h.handleQuizNav(cb, card)

	case quizSubmit:
		h.handleQuizSubmit(cb)

	case quizCancel:
		h.handleQuizCancel(cb)

	default:
		h.answerCallback(cb.ID, "")
	}
}

func (h *Handler) handleNamePageCallback(ctx context.Context, cb *tgbotapi.CallbackQuery, data callbackData) {
	defer h.answerCallback(cb.ID, "")

	if len(data.Params) != 1 {
		return
	}
	page, err := strconv.Atoi(data.Params[0])
	if err != nil || page < 0 {
		h.logger.Warn("invalid page in callback", zap.String("data", data.Raw))
		return
	}

	names, err := h.nameService.GetAll(ctx)
	if err != nil {
		h.logger.Error("failed to get names", zap.Error(err))
		return
	}

	lang := h.prefs.Get(cb.Message.Chat.ID)
	text, totalPages := buildNamesPage(names, page, lang)
	if totalPages == 0 || page >= totalPages {
		h.logger.Warn("page out of range",
			zap.Int("page", page),
			zap.Int("total_pages", totalPages),
		)
		return
	}

	edit := tgbotapi.NewEditMessageText(cb.Message.Chat.ID, cb.Message.MessageID, text)
	edit.ParseMode = tgbotapi.ModeHTML
	if kb := buildNameKeyboard(page, totalPages); kb != nil {
		edit.ReplyMarkup = kb
	}
	h.send(edit)
}

func (h *Handler) handleLangCallback(cb *tgbotapi.CallbackQuery) {
	lang := h.prefs.Toggle(cb.Message.Chat.ID)
	h.answerCallback(cb.ID, labelsFor(lang).LangSwitched)
}
