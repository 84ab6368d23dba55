package vocab

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/jstaylor-eng/AnkAi/internal/anki"
)

func TestDeriveStatus(t *testing.T) {
	tests := []struct {
		name  string
		queue int
		due   int64
		want  Status
	}{
		{name: "new card", queue: anki.QueueNew, want: StatusNew},
		{name: "learning card", queue: anki.QueueLearning, due: 1700000000, want: StatusDue},
		{name: "relearning card", queue: anki.QueueRelearn, due: 1700000000, want: StatusDue},
		{name: "review card due now", queue: anki.QueueReview, due: 0, want: StatusDue},
		{name: "review card overdue", queue: anki.QueueReview, due: -3, want: StatusDue},
		{name: "review card scheduled ahead", queue: anki.QueueReview, due: 12, want: StatusLearned},
		{name: "suspended card", queue: -1, want: StatusLearned},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, DeriveStatus(tc.queue, tc.due))
		})
	}
}

func TestIsBasic(t *testing.T) {
	tests := []struct {
		word string
		want bool
	}{
		{word: "的", want: true},
		{word: "我们", want: true},
		{word: "星期三", want: true},
		{word: "十五", want: true},
		{word: "三百零五", want: true},
		{word: "火车站", want: false},
		{word: "十五年", want: false},
		{word: "", want: false},
	}
	for _, tc := range tests {
		t.Run(tc.word, func(t *testing.T) {
			assert.Equal(t, tc.want, IsBasic(tc.word))
		})
	}
}

func TestGeneratePinyin(t *testing.T) {
	tests := []struct {
		name  string
		hanzi string
		want  string
	}{
		{name: "tone marks", hanzi: "火车", want: "huǒ chē"},
		{name: "single character", hanzi: "猫", want: "māo"},
		{name: "latin characters have no reading", hanzi: "OK", want: ""},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, GeneratePinyin(tc.hanzi))
		})
	}
}

func TestStripHTML(t *testing.T) {
	tests := []struct {
		name  string
		value string
		want  string
	}{
		{name: "plain text untouched", value: "火车站", want: "火车站"},
		{name: "tags removed", value: "<b>火车</b><br>train", want: "火车 train"},
		{name: "entities decoded", value: "to study&nbsp;hard", want: "to study hard"},
		{name: "nested markup", value: `<div class="front"><span>朋友</span></div>`, want: "朋友"},
		{name: "whitespace collapsed", value: "  train \n station ", want: "train station"},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, StripHTML(tc.value))
		})
	}
}
