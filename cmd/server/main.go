package main

import (
	"log"
	"os"

	"github.com/katakuxiko/itmo-predict/internal/api"
	"github.com/katakuxiko/itmo-predict/internal/config"
	"github.com/katakuxiko/itmo-predict/internal/logger"
	"github.com/katakuxiko/itmo-predict/internal/metrics"
	"github.com/katakuxiko/itmo-predict/internal/service"
)

func main() {
	// config
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("config: %v", err)
	}

	// logger
	lg, err := logger.NewStructured(cfg.LogLevel, cfg.LogFormat)
	if err != nil {
		log.Fatalf("logger: %v", err)
	}

	if err := run(cfg, lg); err != nil {
		lg.Error("server stopped", map[string]interface{}{"error": err.Error()})
		_ = lg.Sync()
		os.Exit(1)
	}
	_ = lg.Sync()
}

// run поднимает сервер и блокируется до его остановки
func run(cfg *config.Config, lg logger.Logger) error {
	// services
	m := metrics.New()
	llm := service.NewLLMClient(cfg, m)

	// api
	app := api.NewApp(lg, cfg.LogBodyLimit)
	api.RegisterRoutes(app, llm, lg, m)

	lg.Info("server started", map[string]interface{}{
		"addr":  cfg.ServerAddr,
		"model": cfg.ChatModel,
	})
	return app.Listen(cfg.ServerAddr)
}
