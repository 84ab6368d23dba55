// Package segment splits Chinese text into sentences and words.
package segment

import (
	"fmt"
	"strings"
	"unicode/utf8"

	"github.com/go-ego/gse"

	"github.com/jstaylor-eng/AnkAi/internal/vocab"
)

// userWordFrequency is the weight given to words added from the learner's
// decks, high enough that the matcher prefers them over built-in entries.
const userWordFrequency = 100

// Segmenter is a dictionary-based word breaker biased towards the learner's
// own vocabulary. Tokenizing never drops text: concatenating the tokens of a
// sentence yields the sentence again.
type Segmenter struct {
	seg       gse.Segmenter
	userWords map[string]bool
}

// New builds a segmenter backed by the dictionary bundled with gse.
func New() (*Segmenter, error) {
	segmenter := &Segmenter{
		userWords: map[string]bool{},
	}
	if err := segmenter.seg.LoadDictEmbed(); err != nil {
		return nil, fmt.Errorf("seg.LoadDictEmbed() > %w", err)
	}
	return segmenter, nil
}

// NewEmpty builds a segmenter with no base dictionary, so the only
// multi-character words it knows are the ones added through SetUserWords.
// Used in tests where deterministic word boundaries matter.
func NewEmpty() (*Segmenter, error) {
	segmenter := &Segmenter{
		userWords: map[string]bool{},
	}
	if err := segmenter.seg.LoadDictStr(""); err != nil {
		return nil, fmt.Errorf("seg.LoadDictStr() > %w", err)
	}
	return segmenter, nil
}

// SetUserWords biases the word breaker towards words, so registered compounds
// like 火车站 come out as one token. Words stay registered across calls; words
// already added are skipped.
func (segmenter *Segmenter) SetUserWords(words []string) error {
	added := false
	for _, word := range words {
		if segmenter.userWords[word] {
			continue
		}
		segmenter.userWords[word] = true
		if utf8.RuneCountInString(word) < 2 {
			continue
		}
		if err := segmenter.seg.AddToken(word, userWordFrequency); err != nil {
			return fmt.Errorf("seg.AddToken(%s) > %w", word, err)
		}
		added = true
	}
	if added {
		// Recompute the matcher state, otherwise tokens added after dictionary
		// load are not found during Cut.
		segmenter.seg.CalcToken()
	}
	return nil
}

// Tokenize breaks text into words. The dictionary matcher runs first, then a
// post-pass splits numeral-unit fusions such as 十五分钟 into 十五 and 分钟.
func (segmenter *Segmenter) Tokenize(text string) []string {
	if text == "" {
		return nil
	}
	tokens := segmenter.seg.Cut(text)
	return segmenter.splitNumeralUnits(tokens)
}

// unitWords are measure and time words that commonly fuse with a preceding
// number during dictionary matching.
var unitWords = map[string]bool{
	"分钟": true, "小时": true, "秒": true, "点": true, "点钟": true,
	"天": true, "年": true, "月": true, "日": true, "号": true,
	"星期": true, "周": true, "礼拜": true,
	"块": true, "块钱": true, "元": true, "毛": true, "分": true,
	"个": true, "次": true, "岁": true, "名": true, "位": true,
}

// splitNumeralUnits rewrites tokens like 十五分钟 as 十五 plus 分钟. A token
// qualifies when it is longer than two characters, starts with a run of
// numeral characters, and the rest is a unit word or a word the learner has
// registered.
func (segmenter *Segmenter) splitNumeralUnits(tokens []string) []string {
	result := make([]string, 0, len(tokens))
	for _, token := range tokens {
		runes := []rune(token)
		if len(runes) <= 2 {
			result = append(result, token)
			continue
		}

		numeralEnd := 0
		for numeralEnd < len(runes) && vocab.IsNumeralRune(runes[numeralEnd]) {
			numeralEnd++
		}
		if numeralEnd == 0 || numeralEnd == len(runes) {
			result = append(result, token)
			continue
		}

		suffix := string(runes[numeralEnd:])
		if !unitWords[suffix] && !segmenter.userWords[suffix] {
			result = append(result, token)
			continue
		}
		result = append(result, string(runes[:numeralEnd]), suffix)
	}
	return result
}

// sentence-final punctuation, fullwidth and ASCII
func isTerminal(r rune) bool {
	switch r {
	case '。', '！', '？', '…', '.', '!', '?':
		return true
	}
	return false
}

// SplitSentences cuts text at runs of sentence-final punctuation, keeping the
// punctuation attached to the sentence it ends. Fragments that are only
// whitespace are dropped.
func SplitSentences(text string) []string {
	var sentences []string
	var current strings.Builder
	var punctuation strings.Builder

	flush := func() {
		sentence := current.String()
		if strings.TrimSpace(sentence) != "" {
			sentences = append(sentences, sentence+punctuation.String())
		}
		current.Reset()
		punctuation.Reset()
	}

	for _, r := range text {
		if isTerminal(r) {
			punctuation.WriteRune(r)
			continue
		}
		if punctuation.Len() > 0 {
			flush()
		}
		current.WriteRune(r)
	}
	flush()

	return sentences
}
