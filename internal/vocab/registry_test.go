package vocab

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/jstaylor-eng/AnkAi/internal/anki"
	"github.com/jstaylor-eng/AnkAi/internal/dictionary"
	mock_anki "github.com/jstaylor-eng/AnkAi/internal/mocks/anki"
)

func cardField(value string, order int) anki.CardField {
	return anki.CardField{Value: value, Order: order}
}

func TestRegistry_LoadFromDecks(t *testing.T) {
	tests := []struct {
		name      string
		deckCards map[string][]anki.CardInfo
		decks     []string
		wantStats Stats
		check     func(t *testing.T, registry *Registry)
	}{
		{
			name:  "sniffs field names case-insensitively and derives statuses",
			decks: []string{"HSK1"},
			deckCards: map[string][]anki.CardInfo{
				"HSK1": {
					{
						CardID:   1,
						DeckName: "HSK1",
						Queue:    anki.QueueNew,
						Fields: map[string]anki.CardField{
							"hanzi":   cardField("火车站", 0),
							"pinyin":  cardField("huǒ chē zhàn", 1),
							"english": cardField("train station", 2),
						},
					},
					{
						CardID:   2,
						DeckName: "HSK1",
						Queue:    anki.QueueReview,
						Due:      -2,
						Fields: map[string]anki.CardField{
							"Word":    cardField("<b>学习</b>", 0),
							"Meaning": cardField("to study", 1),
						},
					},
					{
						CardID:   3,
						DeckName: "HSK1",
						Queue:    anki.QueueReview,
						Due:      15,
						Fields: map[string]anki.CardField{
							"Front": cardField("朋友", 0),
							"Back":  cardField("friend", 1),
						},
					},
				},
			},
			wantStats: Stats{Total: 3, New: 1, Due: 1, Learned: 1},
			check: func(t *testing.T, registry *Registry) {
				station := registry.Classify("火车站")
				assert.Equal(t, StatusNew, station.Status)
				assert.Equal(t, "huǒ chē zhàn", station.Pinyin)
				assert.Equal(t, "train station", station.Definition)

				study := registry.Classify("学习")
				assert.Equal(t, StatusDue, study.Status)
				assert.Equal(t, "学习", study.Hanzi, "HTML tags are stripped from fields")
				assert.NotEmpty(t, study.Pinyin, "missing reading field falls back to generated pinyin")
			},
		},
		{
			name:  "first deck wins for duplicated words",
			decks: []string{"HSK1", "HSK2"},
			deckCards: map[string][]anki.CardInfo{
				"HSK1": {
					{
						CardID:   1,
						DeckName: "HSK1",
						Queue:    anki.QueueReview,
						Due:      30,
						Fields: map[string]anki.CardField{
							"Hanzi":   cardField("朋友", 0),
							"English": cardField("friend", 1),
						},
					},
				},
				"HSK2": {
					{
						CardID:   2,
						DeckName: "HSK2",
						Queue:    anki.QueueNew,
						Fields: map[string]anki.CardField{
							"Hanzi":   cardField("朋友", 0),
							"English": cardField("friend (duplicate)", 1),
						},
					},
				},
			},
			wantStats: Stats{Total: 1, Learned: 1},
			check: func(t *testing.T, registry *Registry) {
				entry := registry.Classify("朋友")
				assert.Equal(t, int64(1), entry.CardID)
				assert.Equal(t, "HSK1", entry.DeckName)
				assert.Equal(t, StatusLearned, entry.Status)
			},
		},
		{
			name:  "cards without a recognizable word field are skipped",
			decks: []string{"Sentences"},
			deckCards: map[string][]anki.CardInfo{
				"Sentences": {
					{
						CardID:   1,
						DeckName: "Sentences",
						Queue:    anki.QueueNew,
						Fields: map[string]anki.CardField{
							"Audio": cardField("[sound:a.mp3]", 0),
						},
					},
				},
			},
			wantStats: Stats{},
		},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			mockClient := mock_anki.NewMockClient(ctrl)

			cardID := int64(0)
			for _, deckName := range tc.decks {
				cards := tc.deckCards[deckName]
				cardIDs := make([]int64, 0, len(cards))
				for range cards {
					cardID++
					cardIDs = append(cardIDs, cardID)
				}
				mockClient.EXPECT().
					FindCards(gomock.Any(), `deck:"`+deckName+`"`).
					Return(cardIDs, nil)
				mockClient.EXPECT().
					CardsInfo(gomock.Any(), cardIDs).
					Return(cards, nil)
			}

			registry := NewRegistry(mockClient, nil)
			stats, err := registry.LoadFromDecks(context.Background(), tc.decks)
			require.NoError(t, err)
			assert.Equal(t, tc.wantStats, stats)
			if tc.check != nil {
				tc.check(t, registry)
			}
		})
	}
}

func TestRegistry_Classify(t *testing.T) {
	store := dictionary.Load("")
	registry := NewRegistry(nil, store)
	registry.insert(&Entry{
		Hanzi:      "火车站",
		Pinyin:     "huǒ chē zhàn",
		Definition: "train station",
		Status:     StatusDue,
		CardID:     1,
		DeckName:   "HSK1",
	})
	registry.insert(&Entry{
		Hanzi:      "学习",
		Pinyin:     "xué xí",
		Definition: "to study",
		Status:     StatusLearned,
		CardID:     2,
		DeckName:   "HSK1",
	})

	tests := []struct {
		name           string
		word           string
		wantStatus     Status
		wantDefinition string
	}{
		{
			name:           "registered word",
			word:           "学习",
			wantStatus:     StatusLearned,
			wantDefinition: "to study",
		},
		{
			name:           "basic particle counts as learned",
			word:           "的",
			wantStatus:     StatusLearned,
			wantDefinition: "(basic)",
		},
		{
			name:           "pure numeral counts as learned",
			word:           "十五",
			wantStatus:     StatusLearned,
			wantDefinition: "(basic)",
		},
		{
			name:           "prefix of a registered compound inherits its status",
			word:           "火车",
			wantStatus:     StatusDue,
			wantDefinition: "→ 火车站: train station",
		},
		{
			name:           "suffix of a registered compound inherits its status",
			word:           "车站",
			wantStatus:     StatusDue,
			wantDefinition: "→ 火车站: train station",
		},
		{
			name:           "unregistered word falls back to the dictionary",
			word:           "猫",
			wantStatus:     StatusUnknown,
			wantDefinition: "cat",
		},
		{
			name:           "word in no source stays unknown with no definition",
			word:           "嗡嗡",
			wantStatus:     StatusUnknown,
			wantDefinition: "",
		},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			got := registry.Classify(tc.word)
			assert.Equal(t, tc.word, got.Hanzi)
			assert.Equal(t, tc.wantStatus, got.Status)
			assert.Equal(t, tc.wantDefinition, got.Definition)
		})
	}

	t.Run("compound match inherits the card and deck", func(t *testing.T) {
		got := registry.Classify("火车")
		assert.Equal(t, int64(1), got.CardID)
		assert.Equal(t, "HSK1", got.DeckName)
	})

	t.Run("classification is idempotent and does not grow the registry", func(t *testing.T) {
		before := registry.Len()
		first := registry.Classify("猫")
		second := registry.Classify("猫")
		assert.Equal(t, first, second)
		assert.Equal(t, before, registry.Len())
	})
}

func TestRegistry_RefreshOne(t *testing.T) {
	ctrl := gomock.NewController(t)
	mockClient := mock_anki.NewMockClient(ctrl)

	registry := NewRegistry(mockClient, nil)
	registry.insert(&Entry{
		Hanzi:    "朋友",
		Status:   StatusDue,
		CardID:   7,
		DeckName: "HSK1",
	})

	mockClient.EXPECT().
		CardsInfo(gomock.Any(), []int64{7}).
		Return([]anki.CardInfo{
			{
				CardID:   7,
				DeckName: "HSK1",
				Queue:    anki.QueueReview,
				Due:      10,
				Fields: map[string]anki.CardField{
					"Hanzi":   cardField("朋友", 0),
					"English": cardField("friend", 1),
				},
			},
		}, nil)

	require.NoError(t, registry.RefreshOne(context.Background(), 7))
	assert.Equal(t, StatusLearned, registry.Classify("朋友").Status)
}

func TestRegistry_RefreshOne_NoOp(t *testing.T) {
	tests := []struct {
		name  string
		cards []anki.CardInfo
	}{
		{
			name:  "unknown card",
			cards: nil,
		},
		{
			name: "card without a word field",
			cards: []anki.CardInfo{
				{
					CardID: 9,
					Fields: map[string]anki.CardField{
						"Sound": cardField("audio.mp3", 0),
					},
				},
			},
		},
		{
			name: "word outside the loaded decks",
			cards: []anki.CardInfo{
				{
					CardID:   9,
					DeckName: "Other",
					Queue:    anki.QueueNew,
					Fields: map[string]anki.CardField{
						"Hanzi": cardField("山", 0),
					},
				},
			},
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			mockClient := mock_anki.NewMockClient(ctrl)
			mockClient.EXPECT().
				CardsInfo(gomock.Any(), []int64{9}).
				Return(tc.cards, nil)

			registry := NewRegistry(mockClient, nil)
			registry.insert(&Entry{Hanzi: "朋友", Status: StatusDue, CardID: 7})

			require.NoError(t, registry.RefreshOne(context.Background(), 9))
			assert.Equal(t, StatusDue, registry.Classify("朋友").Status)
		})
	}
}

func TestRegistry_GetByStatus(t *testing.T) {
	registry := NewRegistry(nil, nil)
	registry.insert(&Entry{Hanzi: "一去", Status: StatusDue})
	registry.insert(&Entry{Hanzi: "二回", Status: StatusNew})
	registry.insert(&Entry{Hanzi: "三番", Status: StatusDue})

	due := registry.GetByStatus(StatusDue)
	require.Len(t, due, 2)
	assert.Equal(t, "一去", due[0].Hanzi, "registration order is preserved")
	assert.Equal(t, "三番", due[1].Hanzi)
	assert.Empty(t, registry.GetByStatus(StatusLearned))
}
