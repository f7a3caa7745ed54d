package api

import (
	"errors"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/katakuxiko/itmo-predict/internal/logger"
	"github.com/katakuxiko/itmo-predict/internal/model"
	"github.com/katakuxiko/itmo-predict/internal/util"
)

// AccessLog пишет две строки на запрос: при получении и по завершении.
// Тела обрезаются до bodyLimit рун (0 без обрезки).
func AccessLog(log logger.Logger, bodyLimit int) fiber.Handler {
	return func(c *fiber.Ctx) error {
		start := time.Now()
		url := c.BaseURL() + c.OriginalURL()

		log.Info("incoming request", map[string]interface{}{
			"method": c.Method(),
			"url":    url,
			"body":   util.TruncateRunes(string(c.Body()), bodyLimit),
		})

		if err := c.Next(); err != nil {
			// ответ формирует ErrorHandler приложения, чтобы статус в логе был итоговым
			if herr := c.App().ErrorHandler(c, err); herr != nil {
				_ = c.SendStatus(fiber.StatusInternalServerError)
			}
		}

		log.Info("request completed", map[string]interface{}{
			"method":   c.Method(),
			"url":      url,
			"status":   c.Response().StatusCode(),
			"body":     util.TruncateRunes(string(c.Response().Body()), bodyLimit),
			"duration": time.Since(start).String(),
		})
		return nil
	}
}

// ErrorHandler отдаёт ошибки fiber в формате {"detail": ...}
func ErrorHandler(log logger.Logger) fiber.ErrorHandler {
	return func(c *fiber.Ctx, err error) error {
		var fe *fiber.Error
		if errors.As(err, &fe) {
			return errorJSON(c, fe.Code, fe.Message)
		}
		log.WithError(err).Error("unhandled error", map[string]interface{}{"path": c.Path()})
		return errorJSON(c, fiber.StatusInternalServerError, msgInternalError)
	}
}

func errorJSON(c *fiber.Ctx, status int, detail string) error {
	return c.Status(status).JSON(model.ErrorResponse{Detail: detail})
}
