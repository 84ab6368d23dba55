package anthropic

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jstaylor-eng/AnkAi/internal/inference"
)

func messagesServer(t *testing.T, text string) *httptest.Server {
	t.Helper()

	return httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/v1/messages", r.URL.Path)
		assert.Equal(t, "test-key", r.Header.Get("x-api-key"))
		assert.Equal(t, apiVersion, r.Header.Get("anthropic-version"))

		var request MessagesRequest
		require.NoError(t, json.NewDecoder(r.Body).Decode(&request))
		assert.NotEmpty(t, request.System)
		require.Len(t, request.Messages, 1)
		assert.Equal(t, "user", request.Messages[0].Role)

		response := MessagesResponse{
			Model:      request.Model,
			StopReason: "end_turn",
			Content: []ContentBlock{
				{Type: "text", Text: text},
			},
		}
		w.Header().Set("Content-Type", "application/json")
		require.NoError(t, json.NewEncoder(w).Encode(response))
	}))
}

func newTestClient(t *testing.T, server *httptest.Server) *Client {
	t.Helper()

	client := NewClient("test-key", "test-model", 0)
	client.httpClient.SetBaseURL(server.URL)
	t.Cleanup(func() {
		assert.NoError(t, client.Close())
	})
	return client
}

func TestClient_RewriteSentences(t *testing.T) {
	server := messagesServer(t, `[{"original": "他乘坐火车抵达。", "rewritten": "他坐火车到了。", "translation": "He arrived by train."}]`)
	defer server.Close()

	client := newTestClient(t, server)

	got, err := client.RewriteSentences(context.Background(), inference.RewriteRequest{
		Sentences:    []string{"他乘坐火车抵达。"},
		LearnedWords: []string{"坐", "火车"},
		MaxNewWords:  2,
	})
	require.NoError(t, err)
	require.Len(t, got.Sentences, 1)
	assert.Equal(t, "他坐火车到了。", got.Sentences[0].Rewritten)
}

func TestClient_GenerateWordIntroduction(t *testing.T) {
	server := messagesServer(t, `[{"chinese": "我有一只猫。", "pinyin": "wǒ yǒu yī zhī māo", "english": "I have a cat.", "note": "只 is the measure word for cats"}]`)
	defer server.Close()

	client := newTestClient(t, server)

	got, err := client.GenerateWordIntroduction(context.Background(), inference.WordIntroductionRequest{
		Word:         inference.Word{Hanzi: "猫", Pinyin: "māo", Definition: "cat"},
		LearnedWords: []string{"我", "有", "一", "只"},
	})
	require.NoError(t, err)
	require.Len(t, got.Examples, 1)
	assert.Equal(t, "我有一只猫。", got.Examples[0].Chinese)
}

func TestClient_ServerError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadRequest)
	}))
	defer server.Close()

	client := newTestClient(t, server)

	_, err := client.GenerateChatReply(context.Background(), inference.ChatRequest{Message: "你好"})
	assert.ErrorContains(t, err, "response error 400")
}
