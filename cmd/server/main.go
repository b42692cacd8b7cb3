package main

import (
	"context"
	"log"

	"github.com/alkime/postcraft/internal/ai"
	"github.com/alkime/postcraft/internal/config"
	"github.com/alkime/postcraft/internal/keyring"
	"github.com/alkime/postcraft/internal/logger"
	"github.com/alkime/postcraft/internal/server"
	"github.com/alkime/postcraft/internal/store"
)

func main() {
	// Load configuration
	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	// Setup structured logging
	slogger := logger.SetupLogger(cfg)

	// Fall back to the system keychain for missing provider keys
	if cfg.AnthropicAPIKey == "" {
		if key, err := keyring.Get(keyring.Anthropic); err == nil {
			cfg.AnthropicAPIKey = key
		}
	}
	if cfg.OpenAIAPIKey == "" {
		if key, err := keyring.Get(keyring.OpenAI); err == nil {
			cfg.OpenAIAPIKey = key
		}
	}

	slogger.Info("Starting postcraft server",
		"env", cfg.Env,
		"port", cfg.Port,
		"db_path", cfg.DBPath,
		"anthropic_key_set", cfg.AnthropicAPIKey != "",
		"openai_key_set", cfg.OpenAIAPIKey != "",
	)

	// Open durable storage and load the saved set once at startup
	persister, err := store.OpenSQLite(cfg.DBPath)
	if err != nil {
		slogger.Error("Failed to open database", "error", err)
		log.Fatalf("Fatal: %v", err)
	}
	defer persister.Close()

	saved, err := store.LoadSaved(context.Background(), persister)
	if err != nil {
		slogger.Error("Failed to load saved posts", "error", err)
		log.Fatalf("Fatal: %v", err)
	}

	generator := ai.NewClient(cfg.AnthropicAPIKey, cfg.OpenAIAPIKey)
	working := store.NewWorking()

	srv := server.New(cfg, slogger, generator, working, saved)
	if err := srv.Run(); err != nil {
		slogger.Error("Failed to start server", "error", err)
		log.Fatalf("Fatal: %v", err)
	}
}
