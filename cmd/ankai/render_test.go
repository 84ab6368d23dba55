package main

import (
	"testing"

	"github.com/fatih/color"
	"github.com/jstaylor-eng/AnkAi/internal/article"
	"github.com/jstaylor-eng/AnkAi/internal/vocab"
	"github.com/stretchr/testify/assert"
)

func TestRenderEntry(t *testing.T) {
	color.NoColor = true
	defer func() { color.NoColor = false }()

	tests := []struct {
		name  string
		entry vocab.Entry
		want  string
	}{
		{
			name: "full entry",
			entry: vocab.Entry{
				Hanzi:      "火车站",
				Pinyin:     "huǒ chē zhàn",
				Definition: "train station",
				Status:     vocab.StatusDue,
			},
			want: "火车站  huǒ chē zhàn  train station",
		},
		{
			name: "hanzi only",
			entry: vocab.Entry{
				Hanzi:  "嗡嗡",
				Status: vocab.StatusUnknown,
			},
			want: "嗡嗡",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, renderEntry(tt.entry))
		})
	}
}

func TestRenderSentence(t *testing.T) {
	color.NoColor = true
	defer func() { color.NoColor = false }()

	sentence := article.Sentence{
		Original:  "我去火车站。",
		Rewritten: "我去火车站。",
		Words: []vocab.Entry{
			{Hanzi: "我", Status: vocab.StatusLearned},
			{Hanzi: "去", Status: vocab.StatusLearned},
			{Hanzi: "火车站", Status: vocab.StatusDue},
			{Hanzi: "。", Status: vocab.StatusLearned},
		},
	}

	assert.Equal(t, "我去火车站。", renderSentence(sentence))
}
