package main

import (
	"context"
	"errors"
	"fmt"
	"log"
	"os"

	"twentyone/internal/config"
	"twentyone/internal/console"
	"twentyone/internal/database"
	"twentyone/internal/game"
	"twentyone/internal/history"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	db, err := database.New(cfg.DatabasePath)
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}
	defer db.Close()

	fmt.Println("Welcome to 21!")

	m, err := game.NewMatch(game.MatchConfig{
		Rules:     cfg.Rules,
		Prompter:  console.NewPrompter(os.Stdin, os.Stdout),
		Announcer: console.NewAnnouncer(os.Stdout),
		Recorder:  history.NewRepository(db.DB),
	})
	if err != nil {
		log.Fatalf("Failed to create match: %v", err)
	}

	_, err = m.Play(context.Background())
	switch {
	case err == nil:
	case errors.Is(err, game.ErrInputClosed):
		fmt.Println("\nMatch abandoned.")
	default:
		log.Fatalf("Game error: %v", err)
	}

	fmt.Println("Thanks for playing 21. Goodbye!")
}
