package anki

import (
	"context"
)

//go:generate mockgen -source=interface.go -destination=../mocks/anki/mock_client.go -package=mock_anki

// Client interface defines the AnkiConnect operations used by the rest of the application
type Client interface {
	Version(ctx context.Context) (int, error)
	DeckNames(ctx context.Context) ([]string, error)
	FindCards(ctx context.Context, query string) ([]int64, error)
	CardsInfo(ctx context.Context, cardIDs []int64) ([]CardInfo, error)
	AnswerCards(ctx context.Context, answers []CardAnswer) ([]bool, error)
	GetDeckConfig(ctx context.Context, deckName string) (DeckConfig, error)
	Sync(ctx context.Context) error
}

// CardField is a single note field as AnkiConnect reports it, HTML included.
type CardField struct {
	Value string `json:"value"`
	Order int    `json:"order"`
}

// CardInfo mirrors one element of a cardsInfo result.
type CardInfo struct {
	CardID    int64                `json:"cardId"`
	NoteID    int64                `json:"note"`
	DeckName  string               `json:"deckName"`
	ModelName string               `json:"modelName"`
	Fields    map[string]CardField `json:"fields"`
	Queue     int                  `json:"queue"`
	Due       int64                `json:"due"`
	Interval  int                  `json:"interval"`
	Factor    int                  `json:"factor"`
	Reps      int                  `json:"reps"`
	Lapses    int                  `json:"lapses"`
}

// Scheduler queue values as Anki stores them on a card.
const (
	QueueNew      = 0
	QueueLearning = 1
	QueueReview   = 2
	QueueRelearn  = 3
)

// CardAnswer grades a single card. Ease follows Anki: 1 again, 2 hard, 3 good, 4 easy.
type CardAnswer struct {
	CardID int64 `json:"cardId"`
	Ease   int   `json:"ease"`
}

// DeckConfig is the subset of a deck's option group this application reads.
type DeckConfig struct {
	ID   int64  `json:"id"`
	Name string `json:"name"`
	New  struct {
		Delays []float64 `json:"delays"`
		PerDay int       `json:"perDay"`
	} `json:"new"`
	Review struct {
		PerDay int `json:"perDay"`
	} `json:"rev"`
	Lapse struct {
		Delays []float64 `json:"delays"`
	} `json:"lapse"`
}
