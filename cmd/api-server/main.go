package main

import (
	"fmt"
	"log"
	"log/slog"
	"os"

	"github.com/gin-gonic/gin"

	"labvote/database"
	"labvote/internal/config"
	"labvote/internal/http-api/handler"
)

func main() {
	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatalf("could not load config: %v", err)
	}
	if err := cfg.Validate(); err != nil {
		log.Fatalf("invalid config: %v", err)
	}

	logger := newLogger(cfg)

	db, err := database.Connect(cfg, logger)
	if err != nil {
		logger.Error("could not connect to database", "error", err)
		os.Exit(1)
	}

	if cfg.GoEnv == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	r := handler.NewRouter(db, cfg.CORSOrigins)

	addr := fmt.Sprintf(":%d", cfg.HTTPPort)
	logger.Info("Server running", "addr", addr)
	if err := r.Run(addr); err != nil {
		logger.Error("server stopped", "error", err)
		os.Exit(1)
	}
}

func newLogger(cfg *config.Config) *slog.Logger {
	var level slog.Level
	switch cfg.LogLevel {
	case "debug":
		level = slog.LevelDebug
	case "warn":
		level = slog.LevelWarn
	case "error":
		level = slog.LevelError
	default:
		level = slog.LevelInfo
	}

	opts := &slog.HandlerOptions{Level: level}
	if cfg.LogFormat == "json" {
		return slog.New(slog.NewJSONHandler(os.Stdout, opts))
	}
	return slog.New(slog.NewTextHandler(os.Stdout, opts))
}
