package main

import (
	"log"
	"log/slog"
	"os"

	"regnews/db"
	"regnews/internal/collector"
	"regnews/internal/config"
	"regnews/internal/handler"
	"regnews/internal/repository"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
)

func main() {

	godotenv.Load()

	slog.SetDefault(slog.New(slog.NewJSONHandler(os.Stdout, nil)))

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("configuration error: %v", err)
	}

	conn, err := db.Connect(cfg.DatabaseURL)
	if err != nil {
		log.Fatalf("error connecting to DB: %v", err)
	}
	defer conn.Close()

	repo := repository.NewArticleRepository(conn)
	if err := repo.EnsureSchema(); err != nil {
		log.Fatalf("error ensuring schema: %v", err)
	}

	newsHandler := handler.NewNewsHandler(repo)
	triggerHandler := handler.NewTriggerHandler(cfg.CronSecret, func() error {
		return collector.RunAll(cfg)
	})

	r := gin.Default()

	allowedOrigins := []string{"http://localhost:3000"}
	if cfg.FrontendURL != "" {
		allowedOrigins = append(allowedOrigins, cfg.FrontendURL)
	}

	slog.Info("AllowOrigins URL:", "urls", allowedOrigins)

	r.Use(cors.New(cors.Config{
		AllowOrigins: allowedOrigins,
		AllowMethods: []string{"GET", "POST", "OPTIONS"},
		AllowHeaders: []string{"Origin", "Content-Type", "X-Cron-Token"},
	}))

	r.GET("/api/news", newsHandler.GetLatestNews)
	r.GET("/api/news/social", newsHandler.GetSocialNews)
	r.GET("/api/news/external", newsHandler.GetExternalNews)
	r.GET("/health", newsHandler.GetHealth)
	r.GET("/run-scraper", triggerHandler.RunCollectors)
	r.POST("/run-scraper", triggerHandler.RunCollectors)
	r.GET("/run-scraper-sync", triggerHandler.RunCollectorsSync)
	r.POST("/run-scraper-sync", triggerHandler.RunCollectorsSync)

	err = r.Run(":" + cfg.Port)
	if err != nil {
		log.Fatalf("error starting server: %v", err)
	}
}
