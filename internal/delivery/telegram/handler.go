package telegram

import (
	"context"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	"go.uber.org/zap"

	"github.com/Ryuen4/Asmaul-Husna-Quiz/internal/domain/entities"
	"github.com/Ryuen4/Asmaul-Husna-Quiz/internal/service"
	"github.com/Ryuen4/Asmaul-Husna-Quiz/internal/storage"
)

type QuizService interface {
	StartSession(ctx context.Context, level entities.Level) (*service.Session, error)
	BestScores(ctx context.Context) (map[entities.Level]int, error)
}

type NameService interface {
	GetByNumber(ctx context.Context, number int) (*entities.Name, error)
	GetRandom(ctx context.Context) (*entities.Name, error)
	GetAll(ctx context.Context) ([]*entities.Name, error)
	Search(ctx context.Context, term string) ([]*entities.Name, error)
}

type Handler struct {
	bot         *tgbotapi.BotAPI
	logger      *zap.Logger
	quizService QuizService
	nameService NameService
	sessions    *storage.SessionStorage
	prefs       *languagePrefs
}

func NewHandler(
	bot *tgbotapi.BotAPI,
	logger *zap.Logger,
	quizService QuizService,
	nameService NameService,
	sessions *storage.SessionStorage,
) *Handler {
	return &Handler{
		bot:         bot,
		logger:      logger,
		quizService: quizService,
		nameService: nameService,
		sessions:    sessions,
		prefs:       newLanguagePrefs(),
	}
}

func (h *Handler) Run(ctx context.Context) error {
	h.logger.Info("telegram handler started")
	defer h.logger.Info("telegram handler stopped")

	u := tgbotapi.NewUpdate(0)
	u.Timeout = 60

	updates := h.bot.GetUpdatesChan(u)

	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case update := <-updates:
			h.handleUpdate(ctx, update)
		}
	}
}

func (h *Handler) handleUpdate(ctx context.Context, update tgbotapi.Update) {
	if update.CallbackQuery != nil {
		h.logger.Debug("callback received",
			zap.Int64("user_id", update.CallbackQuery.From.ID),
			zap.String("data", update.CallbackQuery.Data),
		)
		h.handleCallback(ctx, update.CallbackQuery)
		return
	}

	if update.Message == nil {
		h.logger.Debug("update without message and callback")
		return
	}

	h.logger.Debug("update received",
		zap.Int64("chat_id", update.Message.Chat.ID),
		zap.String("text", update.Message.Text),
	)

	chatID := update.Message.Chat.ID

	if update.Message.IsCommand() {
		switch update.Message.Command() {
		case "start":
			h.send(newHTMLMessage(chatID, msgWelcome))
		case "help":
			h.send(newHTMLMessage(chatID, msgHelp))
		case "quiz":
			h.handleQuizCommand(ctx, chatID)
		case "all":
			h.handleAllCommand(ctx, chatID)
		case "find":
			h.handleFindCommand(ctx, chatID, update.Message.CommandArguments())
		case "best":
			h.handleBestCommand(ctx, chatID)
		case "random":
			h.handleRandomCommand(ctx, chatID)
		case "lang":
			h.handleLangCommand(chatID)
		default:
			h.send(newHTMLMessage(chatID, msgHelp))
		}
		return
	}

	// Bare numbers look up a single name.
	h.handleNumber(ctx, chatID, update.Message.Text)
}

func (h *Handler) send(c tgbotapi.Chattable) {
	if _, err := h.bot.Send(c); err != nil {
		h.logger.Error("failed to send message", zap.Error(err))
	}
}

// answerCallback removes the "clock" on the user's button press, optionally
// with an alert text.
func (h *Handler) answerCallback(callbackID, text string) {
	answer := tgbotapi.NewCallback(callbackID, text)
	if _, err := h.bot.Request(answer); err != nil {
		h.logger.Error("callback answer error", zap.Error(err))
	}
}

func newHTMLMessage(chatID int64, text string) tgbotapi.MessageConfig {
	msg := tgbotapi.NewMessage(chatID, text)
	msg.ParseMode = tgbotapi.ModeHTML
	return msg
}

func newPlainMessage(chatID int64, text string) tgbotapi.MessageConfig {
	return tgbotapi.NewMessage(chatID, text)
}
