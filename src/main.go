package main

import (
	"context"
	"log"
	"net/http"

	"fintrack-server/src/api"
	"fintrack-server/src/config"
	"fintrack-server/src/db"
	"fintrack-server/src/handlers"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
)

func main() {
	cfg := config.Load()

	// Connect to database
	pool, err := db.Connect(cfg.DatabaseURL)
	if err != nil {
		log.Fatalf("DB connection failed: %v", err)
	}
	defer pool.Close()

	if err := db.Migrate(context.Background(), cfg.DatabaseURL); err != nil {
		log.Fatalf("DB migration failed: %v", err)
	}

	db.InitCache()

	if cfg.SeedCategories {
		if err := db.SeedDefaultCategories(context.Background(), pool); err != nil {
			log.Fatalf("Category seed failed: %v", err)
		}
	}

	// The bot is optional: without a token the webhook still accepts
	// updates, it just cannot reply.
	var replier handlers.Replier
	if cfg.BotToken != "" {
		botAPI, err := tgbotapi.NewBotAPI(cfg.BotToken)
		if err != nil {
			log.Fatalf("Bot init failed: %v", err)
		}
		replier = botAPI
	} else {
		log.Println("WARN: TELEGRAM_BOT_TOKEN not set, chat replies disabled")
	}

	// Router
	router := api.NewRouter(pool, cfg, replier)

	log.Println("API server running on port", cfg.Port)
	if err := http.ListenAndServe(":"+cfg.Port, router); err != nil {
		log.Fatal(err)
	}
}
