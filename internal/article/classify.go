package article

import (
	"regexp"
	"strings"

	"github.com/jstaylor-eng/AnkAi/internal/vocab"
)

// punctuationPattern matches tokens made entirely of punctuation: CJK
// symbols, fullwidth forms, ASCII punctuation ranges, and control characters.
var punctuationPattern = regexp.MustCompile(`^[\s\x{3000}-\x{303F}\x{FF00}-\x{FFEF}` +
	`\x{0000}-\x{002F}\x{003A}-\x{0040}\x{005B}-\x{0060}\x{007B}-\x{007F}]+$`)

// IsPunctuation reports whether token carries no vocabulary: empty,
// whitespace, or punctuation only.
func IsPunctuation(token string) bool {
	if strings.TrimSpace(token) == "" {
		return true
	}
	return punctuationPattern.MatchString(token)
}

// classifyTokens resolves each token against the registry. Punctuation
// tokens pass through as learned so they never count against comprehension,
// and are excluded from statistics by IsPunctuation at aggregation time.
func classifyTokens(registry *vocab.Registry, tokens []string) []vocab.Entry {
	words := make([]vocab.Entry, 0, len(tokens))
	for _, token := range tokens {
		if IsPunctuation(token) {
			words = append(words, vocab.Entry{
				Hanzi:  token,
				Status: vocab.StatusLearned,
			})
			continue
		}
		words = append(words, registry.Classify(token))
	}
	return words
}
