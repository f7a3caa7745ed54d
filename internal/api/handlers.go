package api

import (
	"context"
	"errors"
	"strconv"

	"github.com/gofiber/fiber/v2"
	"github.com/katakuxiko/itmo-predict/internal/logger"
	"github.com/katakuxiko/itmo-predict/internal/metrics"
	"github.com/katakuxiko/itmo-predict/internal/model"
	"github.com/katakuxiko/itmo-predict/internal/service"
	"github.com/sashabaranov/go-openai"
)

const (
	msgInternalError = "Internal server error"
	msgInvalidJSON   = "Response is not valid JSON"
)

// LLM: то, что хендлеру нужно от провайдера
type LLM interface {
	Complete(ctx context.Context, question string) (service.Reply, error)
	ListModels(ctx context.Context) ([]openai.Model, error)
}

// Handler хранит зависимости для обработчиков
type Handler struct {
	llm     LLM
	log     logger.Logger
	metrics *metrics.Metrics
}

// NewHandler конструктор
func NewHandler(llm LLM, log logger.Logger, m *metrics.Metrics) *Handler {
	return &Handler{llm: llm, log: log, metrics: m}
}

// Health — простая проверка
func (h *Handler) Health(c *fiber.Ctx) error {
	return c.SendString("ok")
}

// ListModels — проксирование к провайдеру (список моделей)
func (h *Handler) ListModels(c *fiber.Ctx) error {
	models, err := h.llm.ListModels(c.UserContext())
	if err != nil {
		h.log.WithError(err).Error("list models failed", nil)
		return errorJSON(c, fiber.StatusInternalServerError, msgInternalError)
	}
	return c.JSON(models)
}

// predictRequest различает отсутствующие поля и нулевые значения
type predictRequest struct {
	ID    *int    `json:"id"`
	Query *string `json:"query"`
}

// Predict отвечает на вопрос об ИТМО: один вызов модели и разбор ответа
func (h *Handler) Predict(c *fiber.Ctx) error {
	var body predictRequest
	if err := c.BodyParser(&body); err != nil {
		return h.reject(c, err.Error())
	}
	if body.ID == nil {
		return h.reject(c, "field required: id")
	}
	if body.Query == nil {
		return h.reject(c, "field required: query")
	}
	req := model.PredictionRequest{ID: *body.ID, Query: *body.Query}

	log := h.log.With(map[string]interface{}{"request_id": req.ID})
	log.Info("processing prediction request", nil)

	reply, err := h.llm.Complete(c.UserContext(), req.Query)
	if err != nil {
		return h.fail(c, log, err)
	}

	resp := model.PredictionResponse{
		ID:        req.ID,
		Answer:    reply.Answer,
		Reasoning: reply.Reasoning,
		Sources:   reply.Sources,
	}
	if resp.Sources == nil {
		resp.Sources = []string{}
	}

	log.Info("prediction request processed", nil)
	return c.Status(fiber.StatusOK).JSON(resp)
}

func (h *Handler) reject(c *fiber.Ctx, detail string) error {
	h.log.Warn("malformed prediction request", map[string]interface{}{"detail": detail})
	return errorJSON(c, fiber.StatusUnprocessableEntity, detail)
}

func (h *Handler) fail(c *fiber.Ctx, log logger.Logger, err error) error {
	status, detail := fiber.StatusInternalServerError, msgInternalError

	var vErr *service.ValidationError
	switch {
	case errors.As(err, &vErr):
		status, detail = fiber.StatusBadRequest, vErr.Message
		log.WithError(err).Error("validation error", nil)
	case errors.Is(err, service.ErrInvalidJSON):
		detail = msgInvalidJSON
		log.WithError(err).Error("provider response is not valid JSON", nil)
	default:
		log.WithError(err).Error("internal error processing request", nil)
	}

	return errorJSON(c, status, detail)
}

// CountPredictions считает ответы /api/request по итоговому статусу.
// Стоит перед recover, поэтому паника хендлера тоже попадает в счётчик как 500.
func (h *Handler) CountPredictions(c *fiber.Ctx) error {
	err := c.Next()
	status := c.Response().StatusCode()
	if err != nil {
		status = fiber.StatusInternalServerError
		var fe *fiber.Error
		if errors.As(err, &fe) {
			status = fe.Code
		}
	}
	h.metrics.ObservePrediction(strconv.Itoa(status))
	return err
}
