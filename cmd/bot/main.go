package main

import (
	"context"
	"errors"
	"log"
	"os/signal"
	"syscall"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	"github.com/joho/godotenv"
	"go.uber.org/zap"

	"github.com/Ryuen4/Asmaul-Husna-Quiz/internal/config"
	"github.com/Ryuen4/Asmaul-Husna-Quiz/internal/delivery/telegram"
	"github.com/Ryuen4/Asmaul-Husna-Quiz/internal/infra/postgres"
	"github.com/Ryuen4/Asmaul-Husna-Quiz/internal/logger"
	"github.com/Ryuen4/Asmaul-Husna-Quiz/internal/repository"
	"github.com/Ryuen4/Asmaul-Husna-Quiz/internal/service"
	"github.com/Ryuen4/Asmaul-Husna-Quiz/internal/storage"
)

func main() {
	_ = godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		log.Fatal(err)
	}

	zl, err := logger.New(cfg)
	if err != nil {
		log.Fatal(err)
	}
	defer func() { _ = zl.Sync() }()

	bot, err := tgbotapi.NewBotAPI(cfg.TelegramAPIToken)
	if err != nil {
		zl.Fatal("failed to create bot API", zap.Error(err))
	}

	// Set commands.
	commands := []tgbotapi.BotCommand{
		{
			Command:     "start",
			Description: "Start the bot",
		},
		{
			Command:     "quiz",
			Description: "Take an exam",
		},
		{
			Command:     "all",
			Description: "Browse all 99 names",
		},
		{
			Command:     "find",
			Description: "Search the library (usage: /find mercy)",
		},
		{
			Command:     "best",
			Description: "Show best scores",
		},
		{
			Command:     "random",
			Description: "Get a random name",
		},
		{
			Command:     "lang",
			Description: "Switch English / বাংলা",
		},
		{
			Command:     "help",
			Description: "How it works",
		},
	}

	if _, err = bot.Request(tgbotapi.NewSetMyCommands(commands...)); err != nil {
		zl.Warn("failed to set bot commands", zap.Error(err))
	}

	zl.Info("authorized", zap.String("account", bot.Self.UserName))

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	nameRepo, err := repository.NewNameRepository(cfg.NamesJSONPath)
	if err != nil {
		zl.Fatal("failed to load name catalog", zap.Error(err))
	}

	var statsRepo service.StatsRepository
	switch cfg.Stats.Backend {
	case config.StatsBackendPostgres:
		dsn, err := cfg.DB.DSN()
		if err != nil {
			zl.Fatal("database URL is not configured", zap.Error(err))
		}

		pool, err := postgres.NewPool(ctx, dsn, postgres.PoolConfig{
			MaxConns:        int32(cfg.DB.MaxConnections),
			MaxConnLifetime: cfg.DB.MaxConnLifetime,
		})
		if err != nil {
			zl.Fatal("failed to create database pool", zap.Error(err))
		}
		defer pool.Close()

		pg := repository.NewPostgresStatsRepository(pool)
		if err := pg.EnsureSchema(ctx); err != nil {
			zl.Fatal("failed to ensure stats schema", zap.Error(err))
		}
		statsRepo = pg
	default:
		statsRepo = repository.NewFileStatsRepository(cfg.Stats.FilePath)
	}

	quizService := service.NewQuizService(nameRepo, statsRepo, service.NewGenerator(nil), zl)
	nameService := service.NewNameService(nameRepo)
	sessions := storage.NewSessionStorage()

	handler := telegram.NewHandler(bot, zl, quizService, nameService, sessions)
	if err := handler.Run(ctx); err != nil && !errors.Is(err, context.Canceled) {
		zl.Error("handler stopped", zap.Error(err))
	}

	zl.Info("shutdown signal received")
}
