package telegram

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	"go.uber.org/zap"

	"github.com/Ryuen4/Asmaul-Husna-Quiz/internal/domain/entities"
	"github.com/Ryuen4/Asmaul-Husna-Quiz/internal/service"
)

// handleQuizCommand shows the level picker with the best score badge per
// level.
func (h *Handler) handleQuizCommand(ctx context.Context, chatID int64) {
	lb := labelsFor(h.prefs.Get(chatID))

	best, err := h.quizService.BestScores(ctx)
	if err != nil {
		h.logger.Warn("failed to load best scores", zap.Error(err))
		best = map[entities.Level]int{}
	}

	var rows [][]tgbotapi.InlineKeyboardButton
	for _, level := range entities.AllLevels {
		cfg, _ := entities.ConfigFor(level)

		limit := lb.Unlimited
		if cfg.Timed() {
			limit = fmt.Sprintf("%dm", int(cfg.TimeLimit.Minutes()))
		}

		text := fmt.Sprintf("%s · %d %s · %s", capitalize(string(level)), cfg.QuestionCount, lb.Questions, limit)
		if score, ok := best[level]; ok {
			text += fmt.Sprintf(" · %s %d/%d", lb.Best, score, cfg.QuestionCount)
		}

		rows = append(rows, tgbotapi.NewInlineKeyboardRow(
			tgbotapi.NewInlineKeyboardButtonData(text, buildQuizLevelCallback(string(level))),
		))
	}

	msg := newHTMLMessage(chatID, "<b>"+lb.ChooseLevel+"</b>")
	msg.ReplyMarkup = tgbotapi.NewInlineKeyboardMarkup(rows...)
	h.send(msg)
}

// handleQuizLevel starts a fresh session for the chosen level. The picker
// message briefly shows a loading indicator while the questions are
// generated, then becomes the first question card.
func (h *Handler) handleQuizLevel(ctx context.Context, cb *tgbotapi.CallbackQuery, levelStr string) {
	chatID := cb.Message.Chat.ID
	lang := h.prefs.Get(chatID)
	lb := labelsFor(lang)

	level := entities.Level(levelStr)
	if !level.Valid() {
		h.logger.Warn("unknown level in callback", zap.String("level", levelStr))
		h.answerCallback(cb.ID, "")
		return
	}

	loading := tgbotapi.NewEditMessageText(chatID, cb.Message.MessageID, lb.Preparing)
	h.send(loading)
	h.answerCallback(cb.ID, "")

	session, err := h.quizService.StartSession(ctx, level)
	if err != nil {
		h.logger.Error("failed to start session",
			zap.String("level", levelStr),
			zap.Error(err),
		)
		h.send(newPlainMessage(chatID, msgQuizUnavailable))
		return
	}

	// Starting a new quiz silently discards any previous one.
	if prev := h.sessions.Store(chatID, session); prev != nil {
		prev.Abandon()
	}

	if session.Config().Timed() {
		go h.runCountdown(ctx, chatID, session)
	}

	text, kb := renderQuestionCard(session, 0, lang)
	edit := tgbotapi.NewEditMessageText(chatID, cb.Message.MessageID, text)
	edit.ParseMode = tgbotapi.ModeHTML
	edit.ReplyMarkup = kb
	h.send(edit)
}

// runCountdown drives the session's one second ticks while it is active.
// The goroutine exits as soon as the session leaves the active state, so a
// manual submit or an abandon stops the countdown immediately.
func (h *Handler) runCountdown(ctx context.Context, chatID int64, session *service.Session) {
	ticker := time.NewTicker(time.Second)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-session.Done():
			return
		case <-ticker.C:
			if !session.Tick() {
				continue
			}

			// Auto-submit: the session finished on this tick.
			h.sessions.Delete(chatID, session)

			lang := h.prefs.Get(chatID)
			lb := labelsFor(lang)

			result, ok := session.Result()
			if !ok {
				return
			}

			h.send(newPlainMessage(chatID, lb.TimeUp))
			h.send(newHTMLMessage(chatID, buildResultText(result, lang)))
			return
		}
	}
}

func (h *Handler) handleQuizAnswer(cb *tgbotapi.CallbackQuery, card, questionNumber, optionNumber int) {
	chatID := cb.Message.Chat.ID
	lang := h.prefs.Get(chatID)
	lb := labelsFor(lang)

	session := h.sessions.Get(chatID)
	if session == nil {
		h.answerCallback(cb.ID, lb.NoActiveQuiz)
		return
	}

	if err := session.SelectAnswer(questionNumber, optionNumber); err != nil {
		switch {
		case errors.Is(err, service.ErrSessionNotActive):
			h.answerCallback(cb.ID, lb.NoActiveQuiz)
		case errors.Is(err, service.ErrUnknownQuestion), errors.Is(err, service.ErrInvalidOption):
			// Stale keyboard from an earlier session; ignore the press.
			h.logger.Warn("rejected answer selection",
				zap.Int("question", questionNumber),
				zap.Int("option", optionNumber),
				zap.Error(err),
			)
			h.answerCallback(cb.ID, "")
		default:
			h.answerCallback(cb.ID, "")
		}
		return
	}

	h.answerCallback(cb.ID, "")
	h.editQuestionCard(cb, session, card, lang)
}

func (h *Handler) handleQuizNav(cb *tgbotapi.CallbackQuery, card int) {
	chatID := cb.Message.Chat.ID
	lang := h.prefs.Get(chatID)

	session := h.sessions.Get(chatID)
	if session == nil {
		h.answerCallback(cb.ID, labelsFor(lang).NoActiveQuiz)
		return
	}

	h.answerCallback(cb.ID, "")
	h.editQuestionCard(cb, session, card, lang)
}

func (h *Handler) handleQuizSubmit(cb *tgbotapi.CallbackQuery) {
	chatID := cb.Message.Chat.ID
	lang := h.prefs.Get(chatID)
	lb := labelsFor(lang)

	session := h.sessions.Get(chatID)
	if session == nil {
		h.answerCallback(cb.ID, lb.NoActiveQuiz)
		return
	}

	result := session.Finish()
	h.sessions.Delete(chatID, session)
	h.answerCallback(cb.ID, "")

	if result == nil {
		// The countdown beat us to it; the result was already delivered.
		return
	}

	edit := tgbotapi.NewEditMessageText(chatID, cb.Message.MessageID, buildResultText(result, lang))
	edit.ParseMode = tgbotapi.ModeHTML
	h.send(edit)
}

func (h *Handler) handleQuizCancel(cb *tgbotapi.CallbackQuery) {
	chatID := cb.Message.Chat.ID
	lb := labelsFor(h.prefs.Get(chatID))

	session := h.sessions.Get(chatID)
	if session == nil {
		h.answerCallback(cb.ID, lb.NoActiveQuiz)
		return
	}

	session.Abandon()
	h.sessions.Delete(chatID, session)
	h.answerCallback(cb.ID, "")

	edit := tgbotapi.NewEditMessageText(chatID, cb.Message.MessageID, lb.Cancelled)
	h.send(edit)
}

func (h *Handler) editQuestionCard(cb *tgbotapi.CallbackQuery, session *service.Session, card int, lang string) {
	text, kb := renderQuestionCard(session, card, lang)
	edit := tgbotapi.NewEditMessageText(cb.Message.Chat.ID, cb.Message.MessageID, text)
	edit.ParseMode = tgbotapi.ModeHTML
	edit.ReplyMarkup = kb
	h.send(edit)
}

// renderQuestionCard builds the text and keyboard for one question.
func renderQuestionCard(session *service.Session, card int, lang string) (string, *tgbotapi.InlineKeyboardMarkup) {
	lb := labelsFor(lang)
	questions := session.Questions()
	answers := session.Answers()

	if card < 0 {
		card = 0
	}
	if card >= len(questions) {
		card = len(questions) - 1
	}
	q := questions[card]

	var b strings.Builder
	fmt.Fprintf(&b, "<b>%s %d/%d</b> · %s: %d/%d",
		lb.QuestionOf, card+1, len(questions),
		lb.Answered, len(answers), len(questions),
	)
	if session.Config().Timed() {
		fmt.Fprintf(&b, "\n⏱ %s: %s", lb.TimeLeft, formatClock(session.Remaining()))
	}
	fmt.Fprintf(&b, "\n\n<b>%s</b>  ‖  %s", transliterationFor(q.Correct, lang), q.Correct.ArabicName)

	selected, hasAnswer := answers[q.Correct.Number]

	var rows [][]tgbotapi.InlineKeyboardButton
	for _, opt := range q.Options {
		marker := "⚪️"
		if hasAnswer && selected == opt.Number {
			marker = "🔘"
		}
		rows = append(rows, tgbotapi.NewInlineKeyboardRow(
			tgbotapi.NewInlineKeyboardButtonData(
				marker+" "+meaningFor(opt, lang),
				buildQuizAnswerCallback(card, q.Correct.Number, opt.Number),
			),
		))
	}

	var nav []tgbotapi.InlineKeyboardButton
	if card > 0 {
		nav = append(nav, tgbotapi.NewInlineKeyboardButtonData(lb.Prev, buildQuizNavCallback(card-1)))
	}
	if card < len(questions)-1 {
		nav = append(nav, tgbotapi.NewInlineKeyboardButtonData(lb.Next, buildQuizNavCallback(card+1)))
	}
	if len(nav) > 0 {
		rows = append(rows, nav)
	}

	rows = append(rows, tgbotapi.NewInlineKeyboardRow(
		tgbotapi.NewInlineKeyboardButtonData(lb.Submit, buildQuizSubmitCallback()),
	))
	rows = append(rows, tgbotapi.NewInlineKeyboardRow(
		tgbotapi.NewInlineKeyboardButtonData(lb.Cancel, buildQuizCancelCallback()),
	))

	kb := tgbotapi.NewInlineKeyboardMarkup(rows...)
	return b.String(), &kb
}

// buildResultText renders the final report with the per-question analysis.
func buildResultText(result *entities.Result, lang string) string {
	lb := labelsFor(lang)
	pct := result.Percentage()

	verdict := lb.Growth
	switch {
	case pct == 100:
		verdict = lb.Mastery
	case pct >= 80:
		verdict = lb.Commendable
	}

	var b strings.Builder
	fmt.Fprintf(&b, "<b>%s</b>\n\n", lb.Report)
	fmt.Fprintf(&b, "<b>%d%%</b> — %s\n", pct, verdict)
	fmt.Fprintf(&b, "%d / %d %s\n\n", result.Score, result.Total, lb.CorrectOf)
	fmt.Fprintf(&b, "<b>%s</b>\n", lb.Analysis)

	for i, q := range result.Questions {
		selected, answered := result.Answers[q.Correct.Number]
		correct := answered && selected == q.Correct.Number

		mark := "❌"
		if correct {
			mark = "✅"
		}

		fmt.Fprintf(&b, "%s %d. %s — %s",
			mark, i+1, transliterationFor(q.Correct, lang), meaningFor(q.Correct, lang))

		if !correct {
			chosen := lb.Empty
			if answered {
				if opt := q.Option(selected); opt != nil {
					chosen = meaningFor(opt, lang)
				}
			}
			fmt.Fprintf(&b, " (%s: %s)", lb.Chosen, chosen)
		}
		b.WriteString("\n")
	}

	return b.String()
}

func formatClock(seconds int) string {
	return fmt.Sprintf("%d:%02d", seconds/60, seconds%60)
}

func capitalize(s string) string {
	if s == "" {
		return s
	}
	return strings.ToUpper(s[:1]) + s[1:]
}
