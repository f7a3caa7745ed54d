package config

import (
	"testing"
	"time"

	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_Defaults(t *testing.T) {
	t.Setenv("GPT_KEY", "secret")

	cfg, err := load(viper.New())
	require.NoError(t, err)

	assert.Equal(t, "secret", cfg.LLMAPIKey)
	assert.Equal(t, ":8080", cfg.ServerAddr)
	assert.Equal(t, "https://api.vsegpt.ru/v1", cfg.LLMBaseURL)
	assert.Equal(t, "perplexity/latest-large-online", cfg.ChatModel)
	assert.Equal(t, 60*time.Second, cfg.LLMTimeout)
	assert.Equal(t, "info", cfg.LogLevel)
	assert.Equal(t, "json", cfg.LogFormat)
	assert.Equal(t, 4096, cfg.LogBodyLimit)
}

func TestLoad_EnvOverrides(t *testing.T) {
	t.Setenv("GPT_KEY", "secret")
	t.Setenv("SERVER_ADDR", ":9090")
	t.Setenv("LLM_BASE_URL", "http://localhost:1234/v1")
	t.Setenv("LLM_TIMEOUT", "5s")
	t.Setenv("LOG_BODY_LIMIT", "0")

	cfg, err := load(viper.New())
	require.NoError(t, err)

	assert.Equal(t, ":9090", cfg.ServerAddr)
	assert.Equal(t, "http://localhost:1234/v1", cfg.LLMBaseURL)
	assert.Equal(t, 5*time.Second, cfg.LLMTimeout)
	assert.Equal(t, 0, cfg.LogBodyLimit)
}

func TestLoad_MissingKey(t *testing.T) {
	t.Setenv("GPT_KEY", "")

	cfg, err := load(viper.New())
	assert.Error(t, err)
	assert.Nil(t, cfg)
}

func TestLoad_InvalidNumbers(t *testing.T) {
	tests := []struct {
		name  string
		key   string
		value string
	}{
		{"timeout typo", "LLM_TIMEOUT", "60sec"},
		{"timeout garbage", "LLM_TIMEOUT", "abc"},
		{"zero timeout", "LLM_TIMEOUT", "0s"},
		{"body limit garbage", "LOG_BODY_LIMIT", "4k"},
		{"negative body limit", "LOG_BODY_LIMIT", "-1"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Setenv("GPT_KEY", "secret")
			t.Setenv(tt.key, tt.value)

			cfg, err := load(viper.New())
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.key)
			assert.Nil(t, cfg)
		})
	}
}
