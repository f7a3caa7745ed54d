package service

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/katakuxiko/itmo-predict/internal/config"
	"github.com/katakuxiko/itmo-predict/internal/metrics"
	"github.com/katakuxiko/itmo-predict/internal/util"
	"github.com/sashabaranov/go-openai"
)

const (
	temperature = 0.3
	maxTokens   = 1000
	maxSources  = 3
)

// LLMClient: клиент OpenAI-совместимого провайдера (vsegpt)
type LLMClient struct {
	client   *openai.Client
	chatName string
	metrics  *metrics.Metrics
}

// NewLLMClient создаёт клиент с настройками из config
func NewLLMClient(cfg *config.Config, m *metrics.Metrics) *LLMClient {
	oaiCfg := openai.DefaultConfig(cfg.LLMAPIKey)
	oaiCfg.BaseURL = cfg.LLMBaseURL
	oaiCfg.HTTPClient = &citationsDoer{next: &http.Client{Timeout: cfg.LLMTimeout}}

	return &LLMClient{
		client:   openai.NewClientWithConfig(oaiCfg),
		chatName: cfg.ChatModel,
		metrics:  m,
	}
}

// Complete задаёт вопрос модели одним запросом (без ретраев) и разбирает ответ.
// Источники берутся из citations провайдера, а если их нет, из поля sources
// в тексте ответа; в обоих случаях не больше трёх.
func (l *LLMClient) Complete(ctx context.Context, question string) (Reply, error) {
	ctx, sink := withCitationSink(ctx)

	start := time.Now()
	resp, err := l.client.CreateChatCompletion(ctx, openai.ChatCompletionRequest{
		Model:       l.chatName,
		Messages:    BuildMessages(question),
		Temperature: temperature,
		MaxTokens:   maxTokens,
	})
	l.metrics.ObserveProvider(providerOutcome(err), time.Since(start))
	if err != nil {
		return Reply{}, fmt.Errorf("chat completion: %w", err)
	}
	if len(resp.Choices) == 0 {
		return Reply{}, errors.New("provider returned no choices")
	}

	reply, err := ExtractReply(strings.TrimSpace(resp.Choices[0].Message.Content))
	if err != nil {
		return Reply{}, err
	}

	if len(sink.urls) > 0 {
		reply.Sources = sink.urls
	}
	reply.Sources = util.Head(reply.Sources, maxSources)
	return reply, nil
}

// ListModels возвращает список моделей провайдера
func (l *LLMClient) ListModels(ctx context.Context) ([]openai.Model, error) {
	resp, err := l.client.ListModels(ctx)
	if err != nil {
		return nil, err
	}
	return resp.Models, nil
}

func providerOutcome(err error) string {
	var apiErr *openai.APIError
	switch {
	case err == nil:
		return "success"
	case errors.Is(err, ErrInvalidJSON):
		return "invalid_json"
	case errors.As(err, &apiErr):
		return "api_error"
	default:
		return "transport_error"
	}
}
