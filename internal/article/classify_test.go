package article

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestIsPunctuation(t *testing.T) {
	tests := []struct {
		name  string
		token string
		want  bool
	}{
		{name: "empty", token: "", want: true},
		{name: "whitespace", token: " \t\n", want: true},
		{name: "fullwidth ideographic punctuation", token: "。", want: true},
		{name: "fullwidth comma run", token: "，！？", want: true},
		{name: "ASCII punctuation", token: "...", want: true},
		{name: "cjk brackets", token: "《》", want: true},
		{name: "single word", token: "火车", want: false},
		{name: "word with trailing punctuation", token: "好。", want: false},
		{name: "latin word", token: "train", want: false},
		{name: "digits are countable words", token: "123", want: false},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, IsPunctuation(tc.token))
		})
	}
}

func TestDetectLanguage(t *testing.T) {
	tests := []struct {
		name string
		text string
		want string
	}{
		{name: "pure chinese", text: "今天天气很好。", want: LangChinese},
		{name: "pure english", text: "The weather is nice today.", want: LangEnglish},
		{name: "chinese with a latin name", text: "马斯克的SpaceX公司今天发射了新的火箭。", want: LangChinese},
		{name: "english with one chinese word", text: "The word 猫 means cat.", want: LangEnglish},
		{name: "english quoting chinese place names", text: "We visited 北京 and 上海 last summer on our family trip", want: LangEnglish},
		{name: "empty text", text: "", want: LangEnglish},
		{name: "digits only", text: "12345", want: LangEnglish},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, DetectLanguage(tc.text))
		})
	}
}

func TestComprehensionPercent(t *testing.T) {
	tests := []struct {
		name  string
		known int
		total int
		want  float64
	}{
		{name: "seven of ten", known: 7, total: 10, want: 70.0},
		{name: "rounds to one decimal", known: 2, total: 3, want: 66.7},
		{name: "all known", known: 5, total: 5, want: 100.0},
		{name: "none known", known: 0, total: 8, want: 0.0},
		{name: "empty document", known: 0, total: 0, want: 0.0},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, ComprehensionPercent(tc.known, tc.total))
		})
	}
}
