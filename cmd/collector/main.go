package main

import (
	"log"
	"log/slog"
	"os"

	"regnews/internal/collector"
	"regnews/internal/config"

	"github.com/joho/godotenv"
)

func main() {

	godotenv.Load()

	slog.SetDefault(slog.New(slog.NewJSONHandler(os.Stdout, nil)))

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("configuration error: %v", err)
	}

	if err := collector.RunAll(cfg); err != nil {
		os.Exit(1)
	}
}
