package vocab

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"unicode/utf8"

	"github.com/jstaylor-eng/AnkAi/internal/anki"
	"github.com/jstaylor-eng/AnkAi/internal/dictionary"
)

// Field name candidates for sniffing note types. Matched case-insensitively,
// earlier names win.
var (
	hanziFieldNames      = []string{"Hanzi", "Chinese", "Simplified", "Character", "Characters", "Word", "Vocab", "Front", "Expression", "Headword"}
	readingFieldNames    = []string{"Pinyin", "Reading", "Pronunciation"}
	definitionFieldNames = []string{"Definition", "Meaning", "English", "Translation", "Back", "Gloss"}
)

// Registry is the learner's vocabulary, loaded from one or more Anki decks.
// Entries keep deck load order, so classification and listing are deterministic,
// and the first deck to define a word wins.
type Registry struct {
	ankiClient anki.Client
	store      *dictionary.Store

	entries map[string]*Entry
	order   []string
	decks   []string
}

// Stats summarizes a registry load.
type Stats struct {
	Total   int `json:"total"`
	New     int `json:"new"`
	Due     int `json:"due"`
	Learned int `json:"learned"`
}

func NewRegistry(ankiClient anki.Client, store *dictionary.Store) *Registry {
	return &Registry{
		ankiClient: ankiClient,
		store:      store,
		entries:    map[string]*Entry{},
	}
}

// LoadFromDecks replaces the registry contents with the vocabulary of deckNames.
func (registry *Registry) LoadFromDecks(ctx context.Context, deckNames []string) (Stats, error) {
	registry.entries = map[string]*Entry{}
	registry.order = nil
	registry.decks = append([]string(nil), deckNames...)

	for _, deckName := range deckNames {
		cardIDs, err := registry.ankiClient.FindCards(ctx, fmt.Sprintf("deck:%q", deckName))
		if err != nil {
			return Stats{}, fmt.Errorf("ankiClient.FindCards(%s) > %w", deckName, err)
		}
		cards, err := registry.ankiClient.CardsInfo(ctx, cardIDs)
		if err != nil {
			return Stats{}, fmt.Errorf("ankiClient.CardsInfo(%s) > %w", deckName, err)
		}

		loaded := 0
		for _, card := range cards {
			entry := extractEntry(card)
			if entry == nil {
				continue
			}
			if registry.insert(entry) {
				loaded++
			}
		}
		slog.Default().Debug("loaded deck", "deck", deckName, "cards", len(cards), "words", loaded)
	}

	return registry.Summary(), nil
}

// insert stores entry unless its word is already registered. Earlier decks win.
func (registry *Registry) insert(entry *Entry) bool {
	if _, ok := registry.entries[entry.Hanzi]; ok {
		return false
	}
	registry.entries[entry.Hanzi] = entry
	registry.order = append(registry.order, entry.Hanzi)
	return true
}

// extractEntry turns an Anki card into a vocabulary entry, sniffing field
// names for the word, reading, and meaning. Cards without a usable word
// field are skipped.
func extractEntry(card anki.CardInfo) *Entry {
	fieldsByName := make(map[string]string, len(card.Fields))
	for name, field := range card.Fields {
		fieldsByName[strings.ToLower(name)] = field.Value
	}

	hanzi := StripHTML(findField(fieldsByName, hanziFieldNames))
	if hanzi == "" {
		return nil
	}

	reading := StripHTML(findField(fieldsByName, readingFieldNames))
	if reading == "" {
		reading = GeneratePinyin(hanzi)
	}

	return &Entry{
		Hanzi:      hanzi,
		Pinyin:     reading,
		Definition: StripHTML(findField(fieldsByName, definitionFieldNames)),
		Status:     DeriveStatus(card.Queue, card.Due),
		CardID:     card.CardID,
		DeckName:   card.DeckName,
	}
}

func findField(fieldsByName map[string]string, candidates []string) string {
	for _, candidate := range candidates {
		if value, ok := fieldsByName[strings.ToLower(candidate)]; ok && strings.TrimSpace(value) != "" {
			return value
		}
	}
	return ""
}

// Classify resolves a word to a vocabulary entry. Resolution order:
// registry hit, basic vocabulary, partial compound match against a longer
// registered word, then dictionary fallback. The result for a word outside
// the registry is synthesized and never stored, so classification is
// idempotent and read-only.
func (registry *Registry) Classify(word string) Entry {
	if entry, ok := registry.entries[word]; ok {
		return *entry
	}

	if IsBasic(word) {
		return Entry{
			Hanzi:      word,
			Pinyin:     GeneratePinyin(word),
			Definition: "(basic)",
			Status:     StatusLearned,
		}
	}

	if entry, ok := registry.matchCompound(word); ok {
		return entry
	}

	definition := ""
	if registry.store != nil {
		definition = registry.store.Lookup(word)
	}
	return Entry{
		Hanzi:      word,
		Pinyin:     GeneratePinyin(word),
		Definition: definition,
		Status:     StatusUnknown,
	}
}

// matchCompound looks for a strictly longer registered word that starts or
// ends with word, e.g. 火车 inside a registered 火车站. The synthesized entry
// inherits the compound's status, card, and deck, and points its definition
// at the compound. Registration order breaks ties.
func (registry *Registry) matchCompound(word string) (Entry, bool) {
	wordLen := utf8.RuneCountInString(word)
	if wordLen == 0 {
		return Entry{}, false
	}

	for _, registered := range registry.order {
		if utf8.RuneCountInString(registered) <= wordLen {
			continue
		}
		if !strings.HasPrefix(registered, word) && !strings.HasSuffix(registered, word) {
			continue
		}

		compound := registry.entries[registered]
		return Entry{
			Hanzi:      word,
			Pinyin:     GeneratePinyin(word),
			Definition: fmt.Sprintf("→ %s: %s", compound.Hanzi, compound.Definition),
			Status:     compound.Status,
			CardID:     compound.CardID,
			DeckName:   compound.DeckName,
		}, true
	}
	return Entry{}, false
}

// RefreshOne re-reads a single card from Anki and updates its entry in place,
// used after grading a card so the next classification sees the new state.
// A card outside the loaded decks, or one without a recognizable word field,
// leaves the registry untouched.
func (registry *Registry) RefreshOne(ctx context.Context, cardID int64) error {
	cards, err := registry.ankiClient.CardsInfo(ctx, []int64{cardID})
	if err != nil {
		return fmt.Errorf("ankiClient.CardsInfo(%d) > %w", cardID, err)
	}
	if len(cards) == 0 {
		return nil
	}

	updated := extractEntry(cards[0])
	if updated == nil {
		return nil
	}

	existing, ok := registry.entries[updated.Hanzi]
	if !ok {
		return nil
	}
	*existing = *updated
	return nil
}

// GetByStatus returns the entries with the given status in registration order.
func (registry *Registry) GetByStatus(status Status) []Entry {
	var entries []Entry
	for _, word := range registry.order {
		if entry := registry.entries[word]; entry.Status == status {
			entries = append(entries, *entry)
		}
	}
	return entries
}

// Words returns every registered word in registration order.
func (registry *Registry) Words() []string {
	return append([]string(nil), registry.order...)
}

// Summary counts entries per status.
func (registry *Registry) Summary() Stats {
	stats := Stats{Total: len(registry.order)}
	for _, entry := range registry.entries {
		switch entry.Status {
		case StatusNew:
			stats.New++
		case StatusDue:
			stats.Due++
		case StatusLearned:
			stats.Learned++
		}
	}
	return stats
}

// Len reports how many words are registered.
func (registry *Registry) Len() int {
	return len(registry.order)
}

// Decks returns the deck names of the last load.
func (registry *Registry) Decks() []string {
	return append([]string(nil), registry.decks...)
}
