package main

import (
	"testing"

	"github.com/jstaylor-eng/AnkAi/internal/config"
	"github.com/jstaylor-eng/AnkAi/internal/inference"
	"github.com/stretchr/testify/assert"
)

func TestNewInferenceClient(t *testing.T) {
	tests := []struct {
		name       string
		llm        config.LLMConfig
		wantErr    error
		wantErrMsg string
		wantClient bool
	}{
		{
			name:    "provider none is unavailable",
			llm:     config.LLMConfig{Provider: "none"},
			wantErr: inference.ErrUnavailable,
		},
		{
			name:    "auto with no credentials is unavailable",
			llm:     config.LLMConfig{Provider: "auto"},
			wantErr: inference.ErrUnavailable,
		},
		{
			name:       "auto prefers groq",
			llm:        config.LLMConfig{Provider: "auto", GroqAPIKey: "gsk_test", AnthropicAPIKey: "sk-ant-test"},
			wantClient: true,
		},
		{
			name:       "auto falls back to anthropic",
			llm:        config.LLMConfig{Provider: "auto", AnthropicAPIKey: "sk-ant-test"},
			wantClient: true,
		},
		{
			name:       "auto falls back to ollama",
			llm:        config.LLMConfig{Provider: "auto", OllamaURL: "http://localhost:11434"},
			wantClient: true,
		},
		{
			name:       "explicit openai without key fails",
			llm:        config.LLMConfig{Provider: "openai"},
			wantErrMsg: "llm.openai_api_key is required",
		},
		{
			name:       "explicit groq without key fails",
			llm:        config.LLMConfig{Provider: "groq"},
			wantErrMsg: "llm.groq_api_key is required",
		},
		{
			name:       "explicit anthropic with key",
			llm:        config.LLMConfig{Provider: "anthropic", AnthropicAPIKey: "sk-ant-test"},
			wantClient: true,
		},
		{
			name:       "explicit ollama needs no key",
			llm:        config.LLMConfig{Provider: "ollama", OllamaURL: "http://localhost:11434"},
			wantClient: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			client, err := newInferenceClient(&config.Config{LLM: tt.llm})

			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				assert.Nil(t, client)
				return
			}
			if tt.wantErrMsg != "" {
				assert.ErrorContains(t, err, tt.wantErrMsg)
				assert.Nil(t, client)
				return
			}
			assert.NoError(t, err)
			assert.NotNil(t, client)
		})
	}
}

func TestOllamaBaseURL(t *testing.T) {
	tests := []struct {
		name      string
		serverURL string
		want      string
	}{
		{
			name:      "bare server URL gets the API path",
			serverURL: "http://localhost:11434",
			want:      "http://localhost:11434/v1",
		},
		{
			name:      "trailing slash is normalized",
			serverURL: "http://localhost:11434/",
			want:      "http://localhost:11434/v1",
		},
		{
			name:      "existing API path is kept",
			serverURL: "http://localhost:11434/v1",
			want:      "http://localhost:11434/v1",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ollamaBaseURL(tt.serverURL))
		})
	}
}
