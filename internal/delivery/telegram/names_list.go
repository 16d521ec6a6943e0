package telegram

import (
	"context"
	"strings"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	"go.uber.org/zap"

	"github.com/Ryuen4/Asmaul-Husna-Quiz/internal/domain/entities"
)

const namesPerPage = 5

// maxSearchResults caps the /find output to keep messages readable.
const maxSearchResults = 10

func (h *Handler) handleAllCommand(ctx context.Context, chatID int64) {
	names, err := h.nameService.GetAll(ctx)
	if err != nil {
		h.logger.Error("failed to get names", zap.Error(err))
		h.send(newPlainMessage(chatID, msgNameUnavailable))
		return
	}

	lang := h.prefs.Get(chatID)
	page := 0
	text, totalPages := buildNamesPage(names, page, lang)

	msg := newHTMLMessage(chatID, text)
	if kb := buildNameKeyboard(page, totalPages); kb != nil {
		msg.ReplyMarkup = *kb
	}
	h.send(msg)
}

func (h *Handler) handleFindCommand(ctx context.Context, chatID int64, argsStr string) {
	lang := h.prefs.Get(chatID)
	lb := labelsFor(lang)

	term := strings.TrimSpace(argsStr)
	if term == "" {
		h.send(newPlainMessage(chatID, lb.SearchUsage))
		return
	}

	names, err := h.nameService.Search(ctx, term)
	if err != nil {
		h.logger.Error("failed to search names", zap.Error(err))
		h.send(newPlainMessage(chatID, msgNameUnavailable))
		return
	}
	if len(names) == 0 {
		h.send(newPlainMessage(chatID, lb.SearchNothing))
		return
	}

	if len(names) > maxSearchResults {
		names = names[:maxSearchResults]
	}

	var b strings.Builder
	for i, n := range names {
		if i > 0 {
			b.WriteString("\n\n")
		}
		b.WriteString(processName(n, lang))
	}
	h.send(newHTMLMessage(chatID, b.String()))
}

func buildNameKeyboard(page, totalPages int) *tgbotapi.InlineKeyboardMarkup {
	if totalPages <= 1 {
		return nil
	}

	var row []tgbotapi.InlineKeyboardButton

	if page > 0 {
		row = append(row, tgbotapi.NewInlineKeyboardButtonData("◀️", buildNameCallback(page-1)))
	}
	if page < totalPages-1 {
		row = append(row, tgbotapi.NewInlineKeyboardButtonData("▶️", buildNameCallback(page+1)))
	}

	kb := tgbotapi.InlineKeyboardMarkup{
		InlineKeyboard: [][]tgbotapi.InlineKeyboardButton{row},
	}
	return &kb
}

func buildNamesPage(names []*entities.Name, page int, lang string) (text string, totalPages int) {
	totalPages = (len(names) + namesPerPage - 1) / namesPerPage
	if totalPages == 0 {
		return "", 0
	}

	start := page * namesPerPage
	if start >= len(names) {
		return "", totalPages
	}
	end := start + namesPerPage
	if end > len(names) {
		end = len(names)
	}

	var b strings.Builder
	for i, name := range names[start:end] {
		if i > 0 {
			b.WriteString("\n\n")
		}
		b.WriteString(processName(name, lang))
	}

	return b.String(), totalPages
}
