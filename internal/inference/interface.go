// Package inference defines the language-model operations used to rewrite,
// translate, and generate practice material, plus helpers for decoding the
// loosely formatted JSON models return.
package inference

import (
	"context"
	"errors"
)

//go:generate mockgen -source=interface.go -destination=../mocks/inference/mock_client.go -package=mock_inference

// ErrUnavailable is returned when no language model provider is configured.
// Callers degrade gracefully: processing continues without rewriting or
// translation.
var ErrUnavailable = errors.New("no language model provider is configured")

// Client interface defines the methods for language model operations
type Client interface {
	// RewriteSentences simplifies Chinese sentences towards the learner's
	// known vocabulary, introducing at most MaxNewWords unknown words.
	RewriteSentences(ctx context.Context, params RewriteRequest) (RewriteResponse, error)
	// TranslateToChinese renders an English text as learner-level Chinese.
	TranslateToChinese(ctx context.Context, params TranslateRequest) (TranslateResponse, error)
	// GenerateRecallSentences produces English prompts whose Chinese
	// translations exercise due vocabulary.
	GenerateRecallSentences(ctx context.Context, params RecallRequest) (RecallResponse, error)
	// GenerateChatReply continues a Chinese conversation pitched at the
	// learner's level.
	GenerateChatReply(ctx context.Context, params ChatRequest) (ChatResponse, error)
	// GenerateWordIntroduction produces example sentences that teach a
	// single word in known-vocabulary context.
	GenerateWordIntroduction(ctx context.Context, params WordIntroductionRequest) (WordIntroductionResponse, error)
}

// RewriteRequest holds sentences to simplify along with the vocabulary the
// rewrite may lean on.
type RewriteRequest struct {
	Sentences    []string `json:"sentences"`
	LearnedWords []string `json:"learned_words"`
	DueWords     []string `json:"due_words"`
	MaxNewWords  int      `json:"max_new_words"`
}

type RewriteResponse struct {
	Sentences []RewrittenSentence `json:"sentences"`
}

// RewrittenSentence pairs an original sentence with its simplified form. A
// sentence the model left unchanged has Rewritten equal to Original.
type RewrittenSentence struct {
	Original    string `json:"original"`
	Rewritten   string `json:"rewritten"`
	Translation string `json:"translation"`
}

type TranslateRequest struct {
	Text         string   `json:"text"`
	LearnedWords []string `json:"learned_words"`
	DueWords     []string `json:"due_words"`
	MaxNewWords  int      `json:"max_new_words"`
}

type TranslateResponse struct {
	Sentences []TranslatedSentence `json:"sentences"`
}

// TranslatedSentence carries one source sentence and its Chinese rendering.
// BackTranslation is the literal English of the Chinese actually produced,
// which can drift from the source when vocabulary is constrained.
type TranslatedSentence struct {
	English         string `json:"english"`
	Chinese         string `json:"chinese"`
	Pinyin          string `json:"pinyin"`
	BackTranslation string `json:"back_translation,omitempty"`
}

type RecallRequest struct {
	Count        int      `json:"count"`
	Topic        string   `json:"topic,omitempty"`
	LearnedWords []string `json:"learned_words"`
	DueWords     []string `json:"due_words"`
}

type RecallResponse struct {
	Sentences []RecallSentence `json:"sentences"`
}

// RecallSentence is a production drill: the learner sees English and
// produces the Chinese.
type RecallSentence struct {
	English string `json:"english"`
	Chinese string `json:"chinese"`
	Pinyin  string `json:"pinyin"`
}

type ChatMessage struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

type ChatRequest struct {
	Message      string        `json:"message"`
	History      []ChatMessage `json:"history,omitempty"`
	LearnedWords []string      `json:"learned_words"`
	DueWords     []string      `json:"due_words"`
}

type ChatResponse struct {
	Chinese     string `json:"chinese"`
	Pinyin      string `json:"pinyin"`
	Translation string `json:"translation"`
}

// Word identifies the vocabulary item a word introduction teaches.
type Word struct {
	Hanzi      string `json:"hanzi"`
	Pinyin     string `json:"pinyin"`
	Definition string `json:"definition"`
}

type WordIntroductionRequest struct {
	Word         Word     `json:"word"`
	LearnedWords []string `json:"learned_words"`
	DueWords     []string `json:"due_words"`
}

type WordIntroductionResponse struct {
	Examples []ExampleSentence `json:"examples"`
}

// ExampleSentence shows the taught word used in known-vocabulary context.
type ExampleSentence struct {
	Chinese string `json:"chinese"`
	Pinyin  string `json:"pinyin"`
	English string `json:"english"`
	Note    string `json:"note,omitempty"`
}

const (
	DefaultMaxRetryAttempts = 3
)
