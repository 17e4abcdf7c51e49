package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"

	"twentyone/internal/bot"
	"twentyone/internal/config"
	"twentyone/internal/database"
	"twentyone/internal/history"
)

func main() {
	cfg, err := config.LoadBot()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	db, err := database.New(cfg.DatabasePath)
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}
	defer db.Close()

	log.Println("Database connected")

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	b, err := bot.New(ctx, cfg, history.NewRepository(db.DB))
	if err != nil {
		log.Fatalf("Failed to create bot: %v", err)
	}

	if err := b.Run(ctx); err != nil {
		log.Fatalf("Bot error: %v", err)
	}
}
