package article

import (
	"sort"

	"github.com/jstaylor-eng/AnkAi/internal/vocab"
)

// EnforceDailyLimit caps how many distinct new words a document may introduce
// in one day. When the document brings more new words than the tracker's
// remaining allowance, the most frequent ones are kept and the rest are
// demoted to unknown, so the learner is not asked to absorb them yet. Kept
// words are recorded against today's allowance.
func EnforceDailyLimit(document *Document, tracker *vocab.Tracker) {
	if tracker == nil || len(document.NewWords) == 0 {
		return
	}

	remaining := tracker.Remaining()
	if len(document.NewWords) <= remaining {
		tracker.MarkIntroduced(entryWords(document.NewWords))
		return
	}

	// Count occurrences of each new word across the document.
	frequency := map[string]int{}
	for _, sentence := range document.Sentences {
		for _, word := range sentence.Words {
			if word.Status == vocab.StatusNew {
				frequency[word.Hanzi]++
			}
		}
	}

	// Rank by frequency, first occurrence breaking ties.
	ranked := append([]vocab.Entry(nil), document.NewWords...)
	sort.SliceStable(ranked, func(i, j int) bool {
		return frequency[ranked[i].Hanzi] > frequency[ranked[j].Hanzi]
	})

	kept := map[string]bool{}
	document.NewWords = ranked[:remaining]
	for _, word := range document.NewWords {
		kept[word.Hanzi] = true
	}

	for i := range document.Sentences {
		sentence := &document.Sentences[i]
		for j := range sentence.Words {
			word := &sentence.Words[j]
			if word.Status == vocab.StatusNew && !kept[word.Hanzi] {
				word.Status = vocab.StatusUnknown
			}
		}
	}

	// Demotion changes no known or total counts, only how many distinct new
	// words remain.
	document.Stats.NewCount = len(document.NewWords)
	tracker.MarkIntroduced(entryWords(document.NewWords))
}
