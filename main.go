package main

import (
	"log/slog"
	"os"
	"time"

	"anonpairbot/config"
	"anonpairbot/internal/handler"
	"anonpairbot/internal/repository"
	"anonpairbot/internal/service"
	"anonpairbot/internal/transport"
	"anonpairbot/pkg/database"
	"anonpairbot/pkg/groq"
	"anonpairbot/pkg/i18n"
	"anonpairbot/pkg/telegram"
)

func main() {
	log := slog.New(slog.NewTextHandler(os.Stdout, nil))
	log.Info("starting anonpairbot")

	cfg, err := config.Load()
	if err != nil {
		log.Error("failed to load config", "err", err)
		os.Exit(1)
	}

	translator := i18n.New(cfg.DefaultLang)
	if err := translator.LoadDir(cfg.LocalesDir); err != nil {
		log.Error("failed to load locales", "err", err)
		os.Exit(1)
	}

	db, err := database.Connect(cfg.SupabaseURL, cfg.SupabaseKey)
	if err != nil {
		log.Error("could not initialize supabase client", "err", err)
		os.Exit(1)
	}

	userRepo := repository.NewUserRepository(db)
	sessionRepo := repository.NewSessionRepository(db)

	botClient := telegram.NewClient(cfg.BotToken)
	bot := transport.New(botClient)
	registry := service.NewRegistry()

	onboarding := service.NewOnboarding(userRepo, sessionRepo, registry, bot, translator, log)
	matchmaker := service.NewMatchmaker(userRepo, sessionRepo, registry, bot, translator, log)
	lifecycle := service.NewLifecycle(userRepo, sessionRepo, registry, bot, translator, log)
	relay := service.NewRelay(sessionRepo, bot, translator, cfg.ModChannelID, log)

	var llm service.Completer
	if cfg.GroqAPIKey != "" {
		llm = groq.NewClient(cfg.GroqAPIKey)
	}
	debate := service.NewDebate(llm, cfg.GroqCoderModel, cfg.GroqReviewerModel, cfg.DebateRounds, bot, translator, log)

	admin := handler.NewAdminHandler(botClient, userRepo, sessionRepo, translator, cfg, log)
	botHandler := handler.NewBotHandler(botClient, userRepo, onboarding, matchmaker, lifecycle, relay, debate, admin, translator, log)
	dispatcher := handler.NewDispatcher(botHandler.HandleUpdate)

	registerCommands(botClient)

	log.Info("bot is running, polling for updates")

	offset := 0
	for {
		updates, err := botClient.GetUpdates(offset)
		if err != nil {
			log.Error("error fetching updates", "err", err)
			time.Sleep(5 * time.Second)
			continue
		}

		for _, update := range updates {
			if update.UpdateID >= offset {
				offset = update.UpdateID + 1
			}
			dispatcher.Dispatch(update)
		}

		time.Sleep(500 * time.Millisecond)
	}
}

func registerCommands(bot *telegram.Client) {
	cmds := []telegram.BotCommand{
		{Command: "start", Description: "👋 Start / Status"},
		{Command: "find", Description: "🔍 Find a partner"},
		{Command: "stop", Description: "⛔ End chat"},
		{Command: "profile", Description: "👤 My profile"},
		{Command: "vip", Description: "🌟 VIP info"},
		{Command: "debate", Description: "🤖 AI debate on a task"},
		{Command: "help", Description: "❓ Help"},
	}
	_ = bot.SetMyCommands(cmds, "")
	_ = bot.SetMyCommands(cmds, "en")

	cmdsID := []telegram.BotCommand{
		{Command: "start", Description: "👋 Mulai / Status"},
		{Command: "find", Description: "🔍 Cari teman"},
		{Command: "stop", Description: "⛔ Akhiri chat"},
		{Command: "profile", Description: "👤 Profil saya"},
		{Command: "vip", Description: "🌟 Info VIP"},
		{Command: "debate", Description: "🤖 Debat AI"},
		{Command: "help", Description: "❓ Bantuan"},
	}
	_ = bot.SetMyCommands(cmdsID, "id")
}
