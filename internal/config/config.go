package config

import (
	"errors"
	"fmt"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/cast"
	"github.com/spf13/viper"
)

type Config struct {
	ServerAddr   string
	LLMAPIKey    string
	LLMBaseURL   string
	ChatModel    string
	LLMTimeout   time.Duration
	LogLevel     string
	LogFormat    string
	LogBodyLimit int
}

// Load читает конфигурацию из окружения (и .env, если он есть)
func Load() (*Config, error) {
	// .env необязателен
	_ = godotenv.Load()
	return load(viper.New())
}

func load(v *viper.Viper) (*Config, error) {
	v.SetDefault("SERVER_ADDR", ":8080")
	v.SetDefault("LLM_BASE_URL", "https://api.vsegpt.ru/v1")
	v.SetDefault("LLM_MODEL", "perplexity/latest-large-online")
	v.SetDefault("LLM_TIMEOUT", "60s")
	v.SetDefault("LOG_LEVEL", "info")
	v.SetDefault("LOG_FORMAT", "json")
	v.SetDefault("LOG_BODY_LIMIT", 4096)
	v.AutomaticEnv()

	// GetDuration/GetInt молча превращают мусор в 0, поэтому разбираем сами
	timeout, err := cast.ToDurationE(v.Get("LLM_TIMEOUT"))
	if err != nil {
		return nil, fmt.Errorf("invalid LLM_TIMEOUT %q: %w", v.GetString("LLM_TIMEOUT"), err)
	}
	if timeout <= 0 {
		return nil, fmt.Errorf("LLM_TIMEOUT must be positive, got %s", timeout)
	}
	bodyLimit, err := cast.ToIntE(v.Get("LOG_BODY_LIMIT"))
	if err != nil {
		return nil, fmt.Errorf("invalid LOG_BODY_LIMIT %q: %w", v.GetString("LOG_BODY_LIMIT"), err)
	}
	if bodyLimit < 0 {
		return nil, fmt.Errorf("LOG_BODY_LIMIT must not be negative, got %d", bodyLimit)
	}

	cfg := &Config{
		ServerAddr:   v.GetString("SERVER_ADDR"),
		LLMAPIKey:    v.GetString("GPT_KEY"),
		LLMBaseURL:   v.GetString("LLM_BASE_URL"),
		ChatModel:    v.GetString("LLM_MODEL"),
		LLMTimeout:   timeout,
		LogLevel:     v.GetString("LOG_LEVEL"),
		LogFormat:    v.GetString("LOG_FORMAT"),
		LogBodyLimit: bodyLimit,
	}
	if cfg.LLMAPIKey == "" {
		return nil, errors.New("GPT_KEY is not set")
	}
	return cfg, nil
}
