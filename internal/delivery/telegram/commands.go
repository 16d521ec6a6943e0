package telegram

import (
	"context"
	"fmt"
	"strconv"
	"strings"

	"go.uber.org/zap"

	"github.com/Ryuen4/Asmaul-Husna-Quiz/internal/domain/entities"
)

// handleNumber processes numeric input and displays the corresponding name.
func (h *Handler) handleNumber(ctx context.Context, chatID int64, text string) {
	n, err := strconv.Atoi(strings.TrimSpace(text))
	if err != nil {
		h.send(newPlainMessage(chatID, msgIncorrectNameNumber))
		return
	}

	if n < 1 || n > 99 {
		h.send(newPlainMessage(chatID, msgOutOfRangeNumber))
		return
	}

	name, err := h.nameService.GetByNumber(ctx, n)
	if err != nil {
		h.logger.Error("failed to get name by number", zap.Int("number", n), zap.Error(err))
		h.send(newPlainMessage(chatID, msgNameUnavailable))
		return
	}

	h.send(newHTMLMessage(chatID, processName(name, h.prefs.Get(chatID))))
}

func (h *Handler) handleRandomCommand(ctx context.Context, chatID int64) {
	name, err := h.nameService.GetRandom(ctx)
	if err != nil {
		h.logger.Error("failed to get random name", zap.Error(err))
		h.send(newPlainMessage(chatID, msgNameUnavailable))
		return
	}

	h.send(newHTMLMessage(chatID, processName(name, h.prefs.Get(chatID))))
}

// handleBestCommand shows the persisted best score per level.
func (h *Handler) handleBestCommand(ctx context.Context, chatID int64) {
	lb := labelsFor(h.prefs.Get(chatID))

	best, err := h.quizService.BestScores(ctx)
	if err != nil {
		h.logger.Warn("failed to load best scores", zap.Error(err))
		best = map[entities.Level]int{}
	}

	if len(best) == 0 {
		h.send(newPlainMessage(chatID, lb.NoBestScores))
		return
	}

	var b strings.Builder
	fmt.Fprintf(&b, "<b>%s</b>\n", lb.BestHeader)
	for _, level := range entities.AllLevels {
		score, ok := best[level]
		if !ok {
			continue
		}
		cfg, _ := entities.ConfigFor(level)
		fmt.Fprintf(&b, "\n%s — %d/%d", capitalize(string(level)), score, cfg.QuestionCount)
	}

	h.send(newHTMLMessage(chatID, b.String()))
}

func (h *Handler) handleLangCommand(chatID int64) {
	lang := h.prefs.Toggle(chatID)
	h.send(newPlainMessage(chatID, labelsFor(lang).LangSwitched))
}
