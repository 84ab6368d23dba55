// Package config loads application configuration from a YAML file, the
// environment, and defaults.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/spf13/viper"
)

type Config struct {
	Anki       AnkiConfig       `mapstructure:"anki"`
	LLM        LLMConfig        `mapstructure:"llm"`
	Dictionary DictionaryConfig `mapstructure:"dictionary"`
	Daily      DailyConfig      `mapstructure:"daily"`
	State      StateConfig      `mapstructure:"state"`
}

type AnkiConfig struct {
	URL string `mapstructure:"url" validate:"required,url"`
}

// LLMConfig selects and configures the language model provider. Provider
// "auto" picks the first provider with credentials: groq, then anthropic,
// then a local ollama. "none" disables language model features.
type LLMConfig struct {
	Provider        string `mapstructure:"provider" validate:"omitempty,oneof=auto openai groq anthropic ollama none"`
	Model           string `mapstructure:"model"`
	OpenAIAPIKey    string `mapstructure:"openai_api_key"`
	GroqAPIKey      string `mapstructure:"groq_api_key"`
	AnthropicAPIKey string `mapstructure:"anthropic_api_key"`
	OllamaURL       string `mapstructure:"ollama_url" validate:"omitempty,url"`
	RetryAttempts   uint   `mapstructure:"retry_attempts"`
}

type DictionaryConfig struct {
	// Path to a CC-CEDICT file. Empty means the bundled dictionary.
	Path string `mapstructure:"path"`
}

type DailyConfig struct {
	NewWordLimit int `mapstructure:"new_word_limit" validate:"gte=0"`
}

type StateConfig struct {
	// File holds session state between command runs: selected decks and
	// today's introduced words.
	File string `mapstructure:"file" validate:"required"`
}

func Load(configFile string) (*Config, error) {
	v := viper.New()

	v.SetConfigType("yaml")

	if configFile != "" {
		v.SetConfigFile(configFile)
	} else {
		v.SetConfigName("config")
		v.AddConfigPath(".")
		v.AddConfigPath("$HOME/.config/ankai")
	}

	v.SetDefault("anki.url", "http://localhost:8765")
	v.SetDefault("llm.provider", "auto")
	v.SetDefault("llm.ollama_url", "http://localhost:11434")
	v.SetDefault("llm.retry_attempts", 3)
	v.SetDefault("daily.new_word_limit", 5)
	v.SetDefault("state.file", defaultStateFile())

	// Bind credentials to environment variables only (not from config file)
	if err := v.BindEnv("llm.openai_api_key", "OPENAI_API_KEY"); err != nil {
		return nil, fmt.Errorf("failed to bind OPENAI_API_KEY environment variable: %w", err)
	}
	if err := v.BindEnv("llm.groq_api_key", "GROQ_API_KEY"); err != nil {
		return nil, fmt.Errorf("failed to bind GROQ_API_KEY environment variable: %w", err)
	}
	if err := v.BindEnv("llm.anthropic_api_key", "ANTHROPIC_API_KEY"); err != nil {
		return nil, fmt.Errorf("failed to bind ANTHROPIC_API_KEY environment variable: %w", err)
	}
	if err := v.BindEnv("anki.url", "ANKI_CONNECT_URL"); err != nil {
		return nil, fmt.Errorf("failed to bind ANKI_CONNECT_URL environment variable: %w", err)
	}

	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("configuration file found but could not be read: %w. Please check the file format and permissions", err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("invalid configuration format: %w", err)
	}

	if err := cfg.validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

func (cfg *Config) validate() error {
	validate, trans, err := newValidator()
	if err != nil {
		return fmt.Errorf("newValidator() > %w", err)
	}

	if err := validate.Struct(cfg); err != nil {
		var validationErrors validator.ValidationErrors
		if !errors.As(err, &validationErrors) {
			return fmt.Errorf("configuration validation failed: %w", err)
		}
		messages := make([]string, 0, len(validationErrors))
		for _, fieldError := range validationErrors {
			messages = append(messages, fieldError.Translate(trans))
		}
		return fmt.Errorf("invalid configuration: %s", strings.Join(messages, "; "))
	}
	return nil
}

func defaultStateFile() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return "ankai_state.yml"
	}
	return filepath.Join(home, ".config", "ankai", "state.yml")
}
