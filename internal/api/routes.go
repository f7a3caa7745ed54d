package api

import (
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/adaptor"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/katakuxiko/itmo-predict/internal/logger"
	"github.com/katakuxiko/itmo-predict/internal/metrics"
)

// NewApp создаёт fiber-приложение с общими middleware
func NewApp(log logger.Logger, bodyLimit int) *fiber.App {
	app := fiber.New(fiber.Config{
		ErrorHandler:          ErrorHandler(log),
		DisableStartupMessage: true,
	})
	app.Use(AccessLog(log, bodyLimit))
	app.Use(recover.New())
	return app
}

func RegisterRoutes(app *fiber.App, llm LLM, log logger.Logger, m *metrics.Metrics) {
	h := NewHandler(llm, log, m)

	app.Get("/health", h.Health)
	app.Get("/models", h.ListModels)
	app.Get("/metrics", adaptor.HTTPHandler(m.Handler()))
	app.Post("/api/request", h.CountPredictions, recover.New(), h.Predict)
}
