package main

import (
	"fmt"
	"strings"

	"github.com/fatih/color"
	"github.com/jstaylor-eng/AnkAi/internal/article"
	"github.com/jstaylor-eng/AnkAi/internal/vocab"
)

var (
	boldText   = color.New(color.Bold)
	faintText  = color.New(color.Faint)
	statusTint = map[vocab.Status]*color.Color{
		vocab.StatusNew:     color.New(color.FgCyan),
		vocab.StatusDue:     color.New(color.FgYellow),
		vocab.StatusLearned: color.New(color.FgGreen),
		vocab.StatusUnknown: color.New(color.FgRed),
	}
)

func colorizeWord(entry vocab.Entry) string {
	tint, ok := statusTint[entry.Status]
	if !ok {
		return entry.Hanzi
	}
	return tint.Sprint(entry.Hanzi)
}

func renderEntry(entry vocab.Entry) string {
	parts := []string{colorizeWord(entry)}
	if entry.Pinyin != "" {
		parts = append(parts, entry.Pinyin)
	}
	if entry.Definition != "" {
		parts = append(parts, entry.Definition)
	}
	return strings.Join(parts, "  ")
}

func renderSentence(sentence article.Sentence) string {
	var builder strings.Builder
	for _, word := range sentence.Words {
		builder.WriteString(colorizeWord(word))
	}
	return builder.String()
}

func renderDocument(document *article.Document) {
	if document.Title != "" {
		boldText.Println(document.Title)
		fmt.Println()
	}

	for _, sentence := range document.Sentences {
		fmt.Println(renderSentence(sentence))
		if sentence.Translation != "" {
			faintText.Println(sentence.Translation)
		}
	}
	fmt.Println()

	stats := document.Stats
	fmt.Printf("Comprehension: %.1f%% (%d/%d words known)\n",
		stats.ComprehensionPercent, stats.KnownWords, stats.TotalWords)
	fmt.Printf("due: %d  new: %d  unknown: %d\n", stats.DueCount, stats.NewCount, stats.UnknownCount)

	if len(document.DueWords) > 0 {
		fmt.Println("\nDue words:")
		for _, entry := range document.DueWords {
			fmt.Printf("  %s\n", renderEntry(entry))
		}
	}
	if len(document.NewWords) > 0 {
		fmt.Println("\nNew words:")
		for _, entry := range document.NewWords {
			fmt.Printf("  %s\n", renderEntry(entry))
		}
	}
}

func printChinese(chinese, pinyin, translation string) {
	boldText.Println(chinese)
	if pinyin != "" {
		faintText.Println(pinyin)
	}
	if translation != "" {
		fmt.Println(translation)
	}
}
