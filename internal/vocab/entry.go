package vocab

import (
	"strings"

	"github.com/mozillazg/go-pinyin"
)

// Entry is a single vocabulary word with its reading, meaning, and review status.
// CardID and DeckName are zero for words synthesized outside any deck, such as
// dictionary fallbacks and partial compound matches.
type Entry struct {
	Hanzi      string `json:"hanzi"`
	Pinyin     string `json:"pinyin"`
	Definition string `json:"definition"`
	Status     Status `json:"status"`
	CardID     int64  `json:"card_id,omitempty"`
	DeckName   string `json:"deck_name,omitempty"`
}

// GeneratePinyin renders hanzi as tone-marked pinyin syllables joined by
// spaces. Runes without a reading, like Latin letters or digits, are dropped.
func GeneratePinyin(hanzi string) string {
	args := pinyin.NewArgs()
	args.Style = pinyin.Tone

	syllables := pinyin.Pinyin(hanzi, args)
	parts := make([]string, 0, len(syllables))
	for _, candidates := range syllables {
		if len(candidates) > 0 {
			parts = append(parts, candidates[0])
		}
	}
	return strings.Join(parts, " ")
}
