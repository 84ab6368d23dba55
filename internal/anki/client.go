// Package anki talks to a running Anki instance through the AnkiConnect add-on.
package anki

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"

	"resty.dev/v3"
)

const (
	// DefaultURL is where AnkiConnect listens on a desktop install.
	DefaultURL = "http://localhost:8765"

	// apiVersion is the AnkiConnect protocol version this client speaks.
	apiVersion = 6

	// cardsInfoBatchSize bounds a single cardsInfo request. Large decks are
	// fetched in chunks so AnkiConnect does not build one huge response.
	cardsInfoBatchSize = 100
)

// ConnectError is an error reported by AnkiConnect itself rather than the transport.
type ConnectError struct {
	Action  string
	Message string
}

func (e *ConnectError) Error() string {
	return fmt.Sprintf("ankiconnect %s: %s", e.Action, e.Message)
}

type HTTPClient struct {
	httpClient *resty.Client
}

var _ Client = (*HTTPClient)(nil)

func NewHTTPClient(baseURL string) *HTTPClient {
	if baseURL == "" {
		baseURL = DefaultURL
	}
	client := resty.New()
	client.SetBaseURL(baseURL)
	client.SetHeader("Content-Type", "application/json")

	return &HTTPClient{
		httpClient: client,
	}
}

func (client *HTTPClient) Close() error {
	return client.httpClient.Close()
}

type connectRequest struct {
	Action  string `json:"action"`
	Version int    `json:"version"`
	Params  any    `json:"params,omitempty"`
}

type connectResponse struct {
	Result json.RawMessage `json:"result"`
	Error  *string         `json:"error"`
}

// invoke posts a single AnkiConnect action and decodes its result into out.
// A nil out discards the result.
func (client *HTTPClient) invoke(ctx context.Context, action string, params any, out any) error {
	response, err := client.httpClient.R().
		SetContext(ctx).
		SetBody(connectRequest{
			Action:  action,
			Version: apiVersion,
			Params:  params,
		}).
		SetResult(&connectResponse{}).
		Post("")
	if err != nil {
		return fmt.Errorf("httpClient.Post(%s) > %w", action, err)
	}
	if response.IsError() {
		return fmt.Errorf("response error %d for %s: %s", response.StatusCode(), action, response.String())
	}

	responseBody := response.Result().(*connectResponse)
	if responseBody.Error != nil && *responseBody.Error != "" {
		return &ConnectError{Action: action, Message: *responseBody.Error}
	}
	if out == nil || len(responseBody.Result) == 0 {
		return nil
	}
	if err := json.Unmarshal(responseBody.Result, out); err != nil {
		return fmt.Errorf("json.Unmarshal(%s result) > %w", action, err)
	}
	return nil
}

func (client *HTTPClient) Version(ctx context.Context) (int, error) {
	var version int
	if err := client.invoke(ctx, "version", nil, &version); err != nil {
		return 0, err
	}
	return version, nil
}

func (client *HTTPClient) DeckNames(ctx context.Context) ([]string, error) {
	var names []string
	if err := client.invoke(ctx, "deckNames", nil, &names); err != nil {
		return nil, err
	}
	return names, nil
}

func (client *HTTPClient) FindCards(ctx context.Context, query string) ([]int64, error) {
	var cardIDs []int64
	params := map[string]any{"query": query}
	if err := client.invoke(ctx, "findCards", params, &cardIDs); err != nil {
		return nil, err
	}
	return cardIDs, nil
}

// CardsInfo fetches card details in batches of cardsInfoBatchSize and
// concatenates them in the order of cardIDs.
func (client *HTTPClient) CardsInfo(ctx context.Context, cardIDs []int64) ([]CardInfo, error) {
	cards := make([]CardInfo, 0, len(cardIDs))
	for start := 0; start < len(cardIDs); start += cardsInfoBatchSize {
		end := min(start+cardsInfoBatchSize, len(cardIDs))

		var batch []CardInfo
		params := map[string]any{"cards": cardIDs[start:end]}
		if err := client.invoke(ctx, "cardsInfo", params, &batch); err != nil {
			return nil, err
		}
		cards = append(cards, batch...)
		slog.Default().Debug("fetched card batch", "from", start, "to", end, "total", len(cardIDs))
	}
	return cards, nil
}

func (client *HTTPClient) AnswerCards(ctx context.Context, answers []CardAnswer) ([]bool, error) {
	for _, answer := range answers {
		if answer.Ease < 1 || answer.Ease > 4 {
			return nil, fmt.Errorf("ease must be between 1 and 4, got %d for card %d", answer.Ease, answer.CardID)
		}
	}

	var accepted []bool
	params := map[string]any{"answers": answers}
	if err := client.invoke(ctx, "answerCards", params, &accepted); err != nil {
		return nil, err
	}
	return accepted, nil
}

func (client *HTTPClient) GetDeckConfig(ctx context.Context, deckName string) (DeckConfig, error) {
	var config DeckConfig
	params := map[string]any{"deck": deckName}
	if err := client.invoke(ctx, "getDeckConfig", params, &config); err != nil {
		return DeckConfig{}, err
	}
	return config, nil
}

func (client *HTTPClient) Sync(ctx context.Context) error {
	return client.invoke(ctx, "sync", nil, nil)
}
