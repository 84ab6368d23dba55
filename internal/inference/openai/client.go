// Package openai implements inference.Client against any OpenAI-compatible
// chat completions API: OpenAI itself, Groq, and a local Ollama server.
package openai

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/avast/retry-go"
	"resty.dev/v3"

	"github.com/jstaylor-eng/AnkAi/internal/inference"
)

const (
	// BaseURL is the OpenAI API endpoint.
	BaseURL = "https://api.openai.com/v1"
	// GroqBaseURL is Groq's OpenAI-compatible endpoint.
	GroqBaseURL = "https://api.groq.com/openai/v1"
	// OllamaBaseURL is the OpenAI-compatible endpoint of a default local Ollama.
	OllamaBaseURL = "http://localhost:11434/v1"
)

type Client struct {
	httpClient       *resty.Client
	model            string
	maxRetryAttempts uint
}

var _ inference.Client = (*Client)(nil)

// NewClient builds a client for an OpenAI-compatible endpoint. apiKey may be
// empty for servers that do not authenticate, like a local Ollama.
func NewClient(baseURL, apiKey, model string, retryAttempts uint) *Client {
	if baseURL == "" {
		baseURL = BaseURL
	}
	client := resty.New()
	client.SetBaseURL(baseURL)
	client.SetHeader("Content-Type", "application/json")
	if apiKey != "" {
		client.SetHeader("Authorization", "Bearer "+apiKey)
	}

	return &Client{
		httpClient:       client,
		model:            model,
		maxRetryAttempts: retryAttempts,
	}
}

func (client *Client) Close() error {
	return client.httpClient.Close()
}

// GetModel returns the model name configured for this client
func (client *Client) GetModel() string {
	return client.model
}

type ChatCompletionRequest struct {
	Model       string    `json:"model"`
	Messages    []Message `json:"messages"`
	Temperature float32   `json:"temperature,omitempty"`
}

type Message struct {
	Role    Role   `json:"role"`
	Content string `json:"content"`
}

type Role string

const (
	RoleSystem    Role = "system"
	RoleUser      Role = "user"
	RoleAssistant Role = "assistant"
)

type ChatCompletionResponse struct {
	ID      string   `json:"id"`
	Object  string   `json:"object"`
	Created int64    `json:"created"`
	Model   string   `json:"model"`
	Choices []Choice `json:"choices"`
	Usage   Usage    `json:"usage"`
}

type Choice struct {
	Index        int           `json:"index"`
	Message      ChoiceMessage `json:"message"`
	FinishReason string        `json:"finish_reason"`
}

type ChoiceMessage struct {
	Role    Role   `json:"role"`
	Content string `json:"content"`
}

type Usage struct {
	PromptTokens     int `json:"prompt_tokens"`
	CompletionTokens int `json:"completion_tokens"`
	TotalTokens      int `json:"total_tokens"`
}

// complete sends one system plus user exchange and returns the raw content of
// the first choice, retrying transient failures with exponential backoff.
func (client *Client) complete(ctx context.Context, system, user string, temperature float32) (string, error) {
	var content string
	if err := retry.Do(
		func() error {
			result, err := client.completeOnce(ctx, system, user, temperature)
			if err != nil {
				if !isRetryableError(err) {
					return retry.Unrecoverable(err)
				}
				return err
			}
			content = result
			return nil
		},
		retry.Context(ctx),
		retry.Attempts(client.maxRetryAttempts+1),
		retry.DelayType(func(n uint, err error, config *retry.Config) time.Duration {
			return retry.BackOffDelay(n, err, config)
		}),
	); err != nil {
		return "", err
	}
	return content, nil
}

func (client *Client) completeOnce(ctx context.Context, system, user string, temperature float32) (string, error) {
	requestBody := ChatCompletionRequest{
		Model:       client.model,
		Temperature: temperature,
		Messages: []Message{
			{Role: RoleSystem, Content: system},
			{Role: RoleUser, Content: user},
		},
	}

	response, err := client.httpClient.R().
		SetContext(ctx).
		SetBody(requestBody).
		SetResult(&ChatCompletionResponse{}).
		Post("/chat/completions")
	if err != nil {
		return "", fmt.Errorf("httpClient.Post > %w", err)
	}
	if response.IsError() {
		return "", fmt.Errorf("response error %d: %s", response.StatusCode(), response.String())
	}

	responseBody := response.Result().(*ChatCompletionResponse)
	if responseBody == nil || len(responseBody.Choices) == 0 {
		return "", fmt.Errorf("empty response body or choices: %s", response.String())
	}

	content := responseBody.Choices[0].Message.Content
	if content == "" {
		return "", fmt.Errorf("empty response content: %s", response.String())
	}
	slog.Default().Debug("chat completion",
		"model", client.model,
		"finishReason", responseBody.Choices[0].FinishReason,
		"totalTokens", responseBody.Usage.TotalTokens,
	)
	return content, nil
}

// RewriteSentences implements the inference.Client interface
func (client *Client) RewriteSentences(
	ctx context.Context,
	params inference.RewriteRequest,
) (inference.RewriteResponse, error) {
	if len(params.Sentences) == 0 {
		return inference.RewriteResponse{}, nil
	}

	system, user := inference.RewritePrompt(params)
	content, err := client.complete(ctx, system, user, 0.3)
	if err != nil {
		return inference.RewriteResponse{}, err
	}

	var sentences []inference.RewrittenSentence
	if err := inference.DecodeJSON(content, &sentences); err != nil {
		return inference.RewriteResponse{}, fmt.Errorf("inference.DecodeJSON > %w", err)
	}
	return inference.RewriteResponse{Sentences: sentences}, nil
}

// TranslateToChinese implements the inference.Client interface. When the
// response fails to parse as JSON, the Chinese sentences are salvaged from
// the raw output so a truncated response still produces a usable document.
func (client *Client) TranslateToChinese(
	ctx context.Context,
	params inference.TranslateRequest,
) (inference.TranslateResponse, error) {
	if params.Text == "" {
		return inference.TranslateResponse{}, nil
	}

	system, user := inference.TranslatePrompt(params)
	content, err := client.complete(ctx, system, user, 0.3)
	if err != nil {
		return inference.TranslateResponse{}, err
	}

	var sentences []inference.TranslatedSentence
	if err := inference.DecodeJSON(content, &sentences); err != nil {
		salvaged := inference.SalvageChineseValues(content)
		if len(salvaged) == 0 {
			return inference.TranslateResponse{}, fmt.Errorf("inference.DecodeJSON > %w", err)
		}
		slog.Default().Warn("salvaged translation from malformed model output",
			"sentences", len(salvaged),
			"error", err,
		)
		for _, chinese := range salvaged {
			sentences = append(sentences, inference.TranslatedSentence{Chinese: chinese})
		}
	}
	return inference.TranslateResponse{Sentences: sentences}, nil
}

// GenerateRecallSentences implements the inference.Client interface
func (client *Client) GenerateRecallSentences(
	ctx context.Context,
	params inference.RecallRequest,
) (inference.RecallResponse, error) {
	system, user := inference.RecallPrompt(params)
	content, err := client.complete(ctx, system, user, 0.7)
	if err != nil {
		return inference.RecallResponse{}, err
	}

	var sentences []inference.RecallSentence
	if err := inference.DecodeJSON(content, &sentences); err != nil {
		return inference.RecallResponse{}, fmt.Errorf("inference.DecodeJSON > %w", err)
	}
	return inference.RecallResponse{Sentences: sentences}, nil
}

// GenerateChatReply implements the inference.Client interface
func (client *Client) GenerateChatReply(
	ctx context.Context,
	params inference.ChatRequest,
) (inference.ChatResponse, error) {
	system, user := inference.ChatPrompt(params)
	content, err := client.complete(ctx, system, user, 0.7)
	if err != nil {
		return inference.ChatResponse{}, err
	}

	var reply inference.ChatResponse
	if err := inference.DecodeJSON(content, &reply); err != nil {
		return inference.ChatResponse{}, fmt.Errorf("inference.DecodeJSON > %w", err)
	}
	return reply, nil
}

// GenerateWordIntroduction implements the inference.Client interface
func (client *Client) GenerateWordIntroduction(
	ctx context.Context,
	params inference.WordIntroductionRequest,
) (inference.WordIntroductionResponse, error) {
	system, user := inference.WordIntroductionPrompt(params)
	content, err := client.complete(ctx, system, user, 0.5)
	if err != nil {
		return inference.WordIntroductionResponse{}, err
	}

	var examples []inference.ExampleSentence
	if err := inference.DecodeJSON(content, &examples); err != nil {
		return inference.WordIntroductionResponse{}, fmt.Errorf("inference.DecodeJSON > %w", err)
	}
	return inference.WordIntroductionResponse{Examples: examples}, nil
}
