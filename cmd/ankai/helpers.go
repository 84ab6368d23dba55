package main

import (
	"context"
	"fmt"
	"strings"

	"github.com/jstaylor-eng/AnkAi/internal/anki"
	"github.com/jstaylor-eng/AnkAi/internal/config"
	"github.com/jstaylor-eng/AnkAi/internal/dictionary"
	"github.com/jstaylor-eng/AnkAi/internal/inference"
	"github.com/jstaylor-eng/AnkAi/internal/inference/anthropic"
	"github.com/jstaylor-eng/AnkAi/internal/inference/openai"
	"github.com/jstaylor-eng/AnkAi/internal/vocab"
)

func loadConfig() (*config.Config, error) {
	cfg, err := config.Load(configFile)
	if err != nil {
		return nil, fmt.Errorf("failed to load configuration: %w", err)
	}
	return cfg, nil
}

// workspace bundles what most commands need: the configuration, the session
// state, and a vocabulary registry loaded from the selected decks.
type workspace struct {
	cfg        *config.Config
	state      *sessionState
	ankiClient *anki.HTTPClient
	registry   *vocab.Registry
	stats      vocab.Stats
}

func openWorkspace(ctx context.Context) (*workspace, error) {
	cfg, err := loadConfig()
	if err != nil {
		return nil, err
	}

	state, err := loadSession(cfg.State.File)
	if err != nil {
		return nil, fmt.Errorf("failed to load session state: %w", err)
	}
	if len(state.Decks) == 0 {
		return nil, fmt.Errorf("no decks selected. Run 'ankai decks select <deck>' first")
	}

	ankiClient := anki.NewHTTPClient(cfg.Anki.URL)
	store := dictionary.Load(cfg.Dictionary.Path)
	registry := vocab.NewRegistry(ankiClient, store)
	stats, err := registry.LoadFromDecks(ctx, state.Decks)
	if err != nil {
		_ = ankiClient.Close()
		return nil, fmt.Errorf("failed to load vocabulary from decks: %w", err)
	}

	return &workspace{
		cfg:        cfg,
		state:      state,
		ankiClient: ankiClient,
		registry:   registry,
		stats:      stats,
	}, nil
}

func (w *workspace) close() {
	_ = w.ankiClient.Close()
}

// statusWords returns the hanzi of all registry entries with the given
// status, in registry order.
func statusWords(registry *vocab.Registry, status vocab.Status) []string {
	entries := registry.GetByStatus(status)
	words := make([]string, 0, len(entries))
	for _, entry := range entries {
		words = append(words, entry.Hanzi)
	}
	return words
}

// newInferenceClient picks a language model provider from the configuration.
// With provider "auto" the first provider with credentials wins: groq, then
// anthropic, then a local ollama. inference.ErrUnavailable is returned when
// nothing is configured so callers can degrade gracefully.
func newInferenceClient(cfg *config.Config) (inference.Client, error) {
	llm := cfg.LLM
	provider := llm.Provider
	if provider == "" {
		provider = "auto"
	}

	switch provider {
	case "none":
		return nil, inference.ErrUnavailable
	case "openai":
		if llm.OpenAIAPIKey == "" {
			return nil, fmt.Errorf("llm.openai_api_key is required for the openai provider")
		}
		return openai.NewClient(openai.BaseURL, llm.OpenAIAPIKey, llm.Model, llm.RetryAttempts), nil
	case "groq":
		if llm.GroqAPIKey == "" {
			return nil, fmt.Errorf("llm.groq_api_key is required for the groq provider")
		}
		return openai.NewClient(openai.GroqBaseURL, llm.GroqAPIKey, llm.Model, llm.RetryAttempts), nil
	case "anthropic":
		if llm.AnthropicAPIKey == "" {
			return nil, fmt.Errorf("llm.anthropic_api_key is required for the anthropic provider")
		}
		return anthropic.NewClient(llm.AnthropicAPIKey, llm.Model, llm.RetryAttempts), nil
	case "ollama":
		return openai.NewClient(ollamaBaseURL(llm.OllamaURL), "", llm.Model, llm.RetryAttempts), nil
	}

	if llm.GroqAPIKey != "" {
		return openai.NewClient(openai.GroqBaseURL, llm.GroqAPIKey, llm.Model, llm.RetryAttempts), nil
	}
	if llm.AnthropicAPIKey != "" {
		return anthropic.NewClient(llm.AnthropicAPIKey, llm.Model, llm.RetryAttempts), nil
	}
	if llm.OllamaURL != "" {
		return openai.NewClient(ollamaBaseURL(llm.OllamaURL), "", llm.Model, llm.RetryAttempts), nil
	}
	return nil, inference.ErrUnavailable
}

// ollamaBaseURL appends the OpenAI-compatible path segment that Ollama
// serves its API under, since the configuration holds the bare server URL.
func ollamaBaseURL(serverURL string) string {
	trimmed := strings.TrimSuffix(serverURL, "/")
	if strings.HasSuffix(trimmed, "/v1") {
		return trimmed
	}
	return trimmed + "/v1"
}
