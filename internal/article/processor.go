// Package article turns raw text or a web page into a classified, learner
// level document: sentences, word statuses, and comprehension statistics.
package article

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"math"

	"github.com/go-playground/validator/v10"

	"github.com/jstaylor-eng/AnkAi/internal/inference"
	"github.com/jstaylor-eng/AnkAi/internal/segment"
	"github.com/jstaylor-eng/AnkAi/internal/vocab"
)

// Request describes one processing run. Exactly one of URL and Text must be
// set; SourceLang defaults to auto-detection.
type Request struct {
	URL         string `json:"url" validate:"omitempty,url"`
	Text        string `json:"text"`
	Rewrite     bool   `json:"rewrite"`
	MaxNewWords int    `json:"max_new_words" validate:"gte=0"`
	SourceLang  string `json:"source_lang" validate:"omitempty,oneof=auto en zh"`
}

// Sentence is one processed sentence. Rewritten equals Original unless a
// rewrite pass changed it; Words classifies the tokens of the form shown to
// the learner, i.e. the rewritten one.
type Sentence struct {
	Original    string        `json:"original"`
	Rewritten   string        `json:"rewritten"`
	Translation string        `json:"translation,omitempty"`
	Words       []vocab.Entry `json:"words"`
}

// Stats aggregates word counts over a document. Punctuation tokens are not
// counted. KnownWords spans learned and due occurrences, DueCount and
// NewCount are distinct words, and UnknownCount is every occurrence not yet
// known, new words included.
type Stats struct {
	TotalWords           int     `json:"total_words"`
	KnownWords           int     `json:"known_words"`
	ComprehensionPercent float64 `json:"comprehension_percent"`
	DueCount             int     `json:"due_count"`
	NewCount             int     `json:"new_count"`
	UnknownCount         int     `json:"unknown_count"`
	SourceLang           string  `json:"source_lang"`
}

// Document is the result of processing one article.
type Document struct {
	Title     string        `json:"title,omitempty"`
	Sentences []Sentence    `json:"sentences"`
	DueWords  []vocab.Entry `json:"due_words"`
	NewWords  []vocab.Entry `json:"new_words"`
	Stats     Stats         `json:"stats"`
}

type Processor struct {
	registry  *vocab.Registry
	segmenter *segment.Segmenter
	fetcher   Fetcher
	llm       inference.Client
	validate  *validator.Validate
}

// NewProcessor wires a pipeline. llm may be nil: rewriting is skipped and
// English input degrades to a notice instead of a translation. fetcher may be
// nil when only raw text is processed.
func NewProcessor(
	registry *vocab.Registry,
	segmenter *segment.Segmenter,
	fetcher Fetcher,
	llm inference.Client,
) *Processor {
	return &Processor{
		registry:  registry,
		segmenter: segmenter,
		fetcher:   fetcher,
		llm:       llm,
		validate:  validator.New(),
	}
}

// Process runs the pipeline: fetch, detect language, split, tokenize,
// classify, and optionally rewrite.
func (processor *Processor) Process(ctx context.Context, request Request) (*Document, error) {
	if err := processor.validate.Struct(request); err != nil {
		return nil, fmt.Errorf("invalid request: %w", err)
	}
	if request.Text == "" && request.URL == "" {
		return nil, errors.New("either text or url must be provided")
	}
	if request.Text != "" && request.URL != "" {
		return nil, errors.New("text and url are mutually exclusive")
	}

	title := ""
	text := request.Text
	if request.URL != "" {
		if processor.fetcher == nil {
			return nil, errors.New("no fetcher configured for url input")
		}
		fetchedTitle, fetchedText, err := processor.fetcher.Fetch(ctx, request.URL)
		if err != nil {
			return nil, fmt.Errorf("fetcher.Fetch(%s) > %w", request.URL, err)
		}
		title = fetchedTitle
		text = fetchedText
	}

	lang := request.SourceLang
	if lang == "" || lang == LangAuto {
		lang = DetectLanguage(text)
		slog.Default().Debug("detected source language", "lang", lang)
	}

	if err := processor.segmenter.SetUserWords(processor.registry.Words()); err != nil {
		return nil, fmt.Errorf("segmenter.SetUserWords > %w", err)
	}

	if lang == LangEnglish {
		return processor.processEnglish(ctx, title, text, request.MaxNewWords)
	}
	return processor.processChinese(ctx, title, text, request.Rewrite, request.MaxNewWords)
}

func (processor *Processor) processChinese(
	ctx context.Context,
	title, text string,
	rewrite bool,
	maxNewWords int,
) (*Document, error) {
	document := &Document{Title: title}

	for _, sentenceText := range segment.SplitSentences(text) {
		tokens := processor.segmenter.Tokenize(sentenceText)
		document.Sentences = append(document.Sentences, Sentence{
			Original:  sentenceText,
			Rewritten: sentenceText,
			Words:     classifyTokens(processor.registry, tokens),
		})
	}

	if rewrite && processor.llm != nil {
		processor.rewriteSentences(ctx, document, maxNewWords)
	}

	processor.aggregate(document, LangChinese)
	return document, nil
}

// rewriteSentences asks the model to simplify the document towards the
// learner's vocabulary and reclassifies any sentence that changed. A model
// failure leaves the document as already classified.
func (processor *Processor) rewriteSentences(ctx context.Context, document *Document, maxNewWords int) {
	originals := make([]string, 0, len(document.Sentences))
	for _, sentence := range document.Sentences {
		originals = append(originals, sentence.Original)
	}

	response, err := processor.llm.RewriteSentences(ctx, inference.RewriteRequest{
		Sentences:    originals,
		LearnedWords: entryWords(processor.registry.GetByStatus(vocab.StatusLearned)),
		DueWords:     entryWords(processor.registry.GetByStatus(vocab.StatusDue)),
		MaxNewWords:  maxNewWords,
	})
	if err != nil {
		slog.Default().Warn("rewrite failed, keeping original sentences", "error", err)
		return
	}

	rewrittenByOriginal := make(map[string]inference.RewrittenSentence, len(response.Sentences))
	for _, rewritten := range response.Sentences {
		rewrittenByOriginal[rewritten.Original] = rewritten
	}

	for i := range document.Sentences {
		sentence := &document.Sentences[i]
		rewritten, ok := rewrittenByOriginal[sentence.Original]
		if !ok {
			continue
		}
		sentence.Translation = rewritten.Translation
		if rewritten.Rewritten == "" || rewritten.Rewritten == sentence.Original {
			continue
		}
		sentence.Rewritten = rewritten.Rewritten
		sentence.Words = classifyTokens(processor.registry, processor.segmenter.Tokenize(rewritten.Rewritten))
	}
}

func (processor *Processor) processEnglish(
	ctx context.Context,
	title, text string,
	maxNewWords int,
) (*Document, error) {
	document := &Document{Title: title}

	if processor.llm == nil {
		document.Sentences = []Sentence{
			{
				Original:    text,
				Rewritten:   "需要配置语言模型来翻译英文。",
				Translation: "A language model provider is required to translate English input.",
			},
		}
		document.Stats.SourceLang = LangEnglish
		return document, nil
	}

	response, err := processor.llm.TranslateToChinese(ctx, inference.TranslateRequest{
		Text:         text,
		LearnedWords: entryWords(processor.registry.GetByStatus(vocab.StatusLearned)),
		DueWords:     entryWords(processor.registry.GetByStatus(vocab.StatusDue)),
		MaxNewWords:  maxNewWords,
	})
	if err != nil {
		return nil, fmt.Errorf("llm.TranslateToChinese > %w", err)
	}

	for _, translated := range response.Sentences {
		translation := translated.BackTranslation
		if translation == "" {
			translation = translated.English
		}
		document.Sentences = append(document.Sentences, Sentence{
			Original:    translated.English,
			Rewritten:   translated.Chinese,
			Translation: translation,
			Words:       classifyTokens(processor.registry, processor.segmenter.Tokenize(translated.Chinese)),
		})
	}

	processor.aggregate(document, LangEnglish)
	return document, nil
}

// aggregate fills document statistics and collects the distinct due and new
// words in first-occurrence order. A word counts as known when it is learned
// or merely due for review; everything else, new words included, counts as
// unknown.
func (processor *Processor) aggregate(document *Document, lang string) {
	seenDue := map[string]bool{}
	seenNew := map[string]bool{}
	stats := Stats{SourceLang: lang}

	for _, sentence := range document.Sentences {
		for _, word := range sentence.Words {
			if IsPunctuation(word.Hanzi) {
				continue
			}
			stats.TotalWords++

			switch word.Status {
			case vocab.StatusLearned:
				stats.KnownWords++
			case vocab.StatusDue:
				stats.KnownWords++
				if !seenDue[word.Hanzi] {
					seenDue[word.Hanzi] = true
					document.DueWords = append(document.DueWords, word)
				}
			case vocab.StatusNew:
				if !seenNew[word.Hanzi] {
					seenNew[word.Hanzi] = true
					document.NewWords = append(document.NewWords, word)
				}
			}
		}
	}

	stats.DueCount = len(document.DueWords)
	stats.NewCount = len(document.NewWords)
	stats.UnknownCount = stats.TotalWords - stats.KnownWords
	stats.ComprehensionPercent = ComprehensionPercent(stats.KnownWords, stats.TotalWords)
	document.Stats = stats
}

// ComprehensionPercent is the share of known words among countable words,
// rounded to one decimal place. Zero countable words is zero comprehension.
func ComprehensionPercent(known, total int) float64 {
	if total == 0 {
		return 0
	}
	return math.Round(float64(known)/float64(total)*1000) / 10
}

func entryWords(entries []vocab.Entry) []string {
	words := make([]string, 0, len(entries))
	for _, entry := range entries {
		words = append(words, entry.Hanzi)
	}
	return words
}
