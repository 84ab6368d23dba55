// Package anthropic implements inference.Client against the Anthropic
// Messages API.
package anthropic

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/avast/retry-go"
	"resty.dev/v3"

	"github.com/jstaylor-eng/AnkAi/internal/inference"
)

const (
	// BaseURL is the Anthropic API endpoint.
	BaseURL = "https://api.anthropic.com"

	apiVersion = "2023-06-01"

	// maxTokens bounds a single response. Documents are processed sentence
	// batch by sentence batch, so this is generous.
	maxTokens = 4096
)

type Client struct {
	httpClient       *resty.Client
	model            string
	maxRetryAttempts uint
}

var _ inference.Client = (*Client)(nil)

func NewClient(apiKey, model string, retryAttempts uint) *Client {
	client := resty.New()
	client.SetBaseURL(BaseURL)
	client.SetHeader("Content-Type", "application/json")
	client.SetHeader("x-api-key", apiKey)
	client.SetHeader("anthropic-version", apiVersion)

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

type MessagesRequest struct {
	Model     string    `json:"model"`
	MaxTokens int       `json:"max_tokens"`
	System    string    `json:"system,omitempty"`
	Messages  []Message `json:"messages"`
}

type Message struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

type MessagesResponse struct {
	ID         string         `json:"id"`
	Model      string         `json:"model"`
	StopReason string         `json:"stop_reason"`
	Content    []ContentBlock `json:"content"`
	Usage      Usage          `json:"usage"`
}

type ContentBlock struct {
	Type string `json:"type"`
	Text string `json:"text"`
}

type Usage struct {
	InputTokens  int `json:"input_tokens"`
	OutputTokens int `json:"output_tokens"`
}

// isRetryableError determines if an error should trigger a retry
func isRetryableError(err error) bool {
	if err == nil {
		return false
	}

	errStr := err.Error()
	if strings.Contains(errStr, "connection refused") || strings.Contains(errStr, "i/o timeout") {
		return true
	}
	if strings.Contains(errStr, "response error 5") {
		return true
	}
	// 429 rate limiting; Anthropic's 529 overload matches the 5xx check above
	if strings.Contains(errStr, "response error 429") {
		return true
	}
	return false
}

func (client *Client) complete(ctx context.Context, system, user string) (string, error) {
	var content string
	if err := retry.Do(
		func() error {
			result, err := client.completeOnce(ctx, system, user)
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

func (client *Client) completeOnce(ctx context.Context, system, user string) (string, error) {
	requestBody := MessagesRequest{
		Model:     client.model,
		MaxTokens: maxTokens,
		System:    system,
		Messages: []Message{
			{Role: "user", Content: user},
		},
	}

	response, err := client.httpClient.R().
		SetContext(ctx).
		SetBody(requestBody).
		SetResult(&MessagesResponse{}).
		Post("/v1/messages")
	if err != nil {
		return "", fmt.Errorf("httpClient.Post > %w", err)
	}
	if response.IsError() {
		return "", fmt.Errorf("response error %d: %s", response.StatusCode(), response.String())
	}

	responseBody := response.Result().(*MessagesResponse)
	if responseBody == nil || len(responseBody.Content) == 0 {
		return "", fmt.Errorf("empty response content: %s", response.String())
	}

	var text strings.Builder
	for _, block := range responseBody.Content {
		if block.Type == "text" {
			text.WriteString(block.Text)
		}
	}
	if text.Len() == 0 {
		return "", fmt.Errorf("no text blocks in response: %s", response.String())
	}
	slog.Default().Debug("messages completion",
		"model", client.model,
		"stopReason", responseBody.StopReason,
		"outputTokens", responseBody.Usage.OutputTokens,
	)
	return text.String(), nil
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
	content, err := client.complete(ctx, system, user)
	if err != nil {
		return inference.RewriteResponse{}, err
	}

	var sentences []inference.RewrittenSentence
	if err := inference.DecodeJSON(content, &sentences); err != nil {
		return inference.RewriteResponse{}, fmt.Errorf("inference.DecodeJSON > %w", err)
	}
	return inference.RewriteResponse{Sentences: sentences}, nil
}

// TranslateToChinese implements the inference.Client interface
func (client *Client) TranslateToChinese(
	ctx context.Context,
	params inference.TranslateRequest,
) (inference.TranslateResponse, error) {
	if params.Text == "" {
		return inference.TranslateResponse{}, nil
	}

	system, user := inference.TranslatePrompt(params)
	content, err := client.complete(ctx, system, user)
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
	content, err := client.complete(ctx, system, user)
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
	content, err := client.complete(ctx, system, user)
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
	content, err := client.complete(ctx, system, user)
	if err != nil {
		return inference.WordIntroductionResponse{}, err
	}

	var examples []inference.ExampleSentence
	if err := inference.DecodeJSON(content, &examples); err != nil {
		return inference.WordIntroductionResponse{}, fmt.Errorf("inference.DecodeJSON > %w", err)
	}
	return inference.WordIntroductionResponse{Examples: examples}, nil
}
