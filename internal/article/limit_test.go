package article

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jstaylor-eng/AnkAi/internal/vocab"
)

// documentWithNewWords builds a document whose new words appear with the
// given per-word frequencies, in map-independent first-seen order.
func documentWithNewWords(order []string, frequency map[string]int) *Document {
	document := &Document{}
	var words []vocab.Entry
	for _, hanzi := range order {
		document.NewWords = append(document.NewWords, vocab.Entry{Hanzi: hanzi, Status: vocab.StatusNew})
		for i := 0; i < frequency[hanzi]; i++ {
			words = append(words, vocab.Entry{Hanzi: hanzi, Status: vocab.StatusNew})
		}
	}
	document.Sentences = []Sentence{{Words: words}}
	document.Stats.TotalWords = len(words)
	document.Stats.NewCount = len(order)
	document.Stats.UnknownCount = len(words)
	return document
}

func newTestTracker(t *testing.T, limit int) *vocab.Tracker {
	t.Helper()

	return vocab.NewTrackerFromState(vocab.TrackerState{
		Limit: limit,
		Date:  time.Now().Format(time.DateOnly),
	})
}

func TestEnforceDailyLimit(t *testing.T) {
	t.Run("keeps the most frequent words up to the allowance", func(t *testing.T) {
		document := documentWithNewWords(
			[]string{"山", "火", "水"},
			map[string]int{"火": 5, "山": 1, "水": 3},
		)
		tracker := newTestTracker(t, 2)

		EnforceDailyLimit(document, tracker)

		require.Len(t, document.NewWords, 2)
		assert.Equal(t, "火", document.NewWords[0].Hanzi)
		assert.Equal(t, "水", document.NewWords[1].Hanzi)
		assert.Equal(t, []string{"火", "水"}, tracker.IntroducedToday())
		assert.Equal(t, 0, tracker.Remaining())

		// 山 occurrences are demoted, 火 and 水 stay new. The unknown count
		// does not move: a demoted word was not known before either.
		assert.Equal(t, 2, document.Stats.NewCount)
		assert.Equal(t, 9, document.Stats.UnknownCount)
		for _, word := range document.Sentences[0].Words {
			if word.Hanzi == "山" {
				assert.Equal(t, vocab.StatusUnknown, word.Status)
			} else {
				assert.Equal(t, vocab.StatusNew, word.Status)
			}
		}
	})

	t.Run("under the allowance everything is kept and recorded", func(t *testing.T) {
		document := documentWithNewWords(
			[]string{"火", "水"},
			map[string]int{"火": 2, "水": 1},
		)
		tracker := newTestTracker(t, 5)

		EnforceDailyLimit(document, tracker)

		assert.Len(t, document.NewWords, 2)
		assert.Equal(t, 2, document.Stats.NewCount)
		assert.Equal(t, []string{"火", "水"}, tracker.IntroducedToday())
		assert.Equal(t, 3, tracker.Remaining())
	})

	t.Run("exhausted allowance demotes every new word", func(t *testing.T) {
		document := documentWithNewWords(
			[]string{"火"},
			map[string]int{"火": 2},
		)
		tracker := newTestTracker(t, 0)

		EnforceDailyLimit(document, tracker)

		assert.Empty(t, document.NewWords)
		assert.Equal(t, 0, document.Stats.NewCount)
		assert.Equal(t, 2, document.Stats.UnknownCount)
		assert.Empty(t, tracker.IntroducedToday())
	})

	t.Run("frequency ties break by first occurrence", func(t *testing.T) {
		document := documentWithNewWords(
			[]string{"山", "火", "水"},
			map[string]int{"山": 2, "火": 2, "水": 2},
		)
		tracker := newTestTracker(t, 2)

		EnforceDailyLimit(document, tracker)

		require.Len(t, document.NewWords, 2)
		assert.Equal(t, "山", document.NewWords[0].Hanzi)
		assert.Equal(t, "火", document.NewWords[1].Hanzi)
	})

	t.Run("nil tracker is a no-op", func(t *testing.T) {
		document := documentWithNewWords([]string{"火"}, map[string]int{"火": 1})
		EnforceDailyLimit(document, nil)
		assert.Len(t, document.NewWords, 1)
	})
}
