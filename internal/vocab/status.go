// Package vocab tracks a learner's vocabulary, built from Anki decks and
// classified against the scheduler state of each card.
package vocab

import (
	"github.com/jstaylor-eng/AnkAi/internal/anki"
)

// Status is a word's place in the learner's review cycle.
type Status string

const (
	// StatusNew is a word in a selected deck whose card has never been studied.
	StatusNew Status = "new"
	// StatusDue is a word whose card is in learning, relearning, or due for review.
	StatusDue Status = "due"
	// StatusLearned is a word whose card is scheduled in the future.
	StatusLearned Status = "learned"
	// StatusUnknown is a word that appears in no selected deck.
	StatusUnknown Status = "unknown"
)

// DeriveStatus maps a card's scheduler queue and due value to a vocabulary status.
// Review cards whose due value is not in the future count as due.
func DeriveStatus(queue int, due int64) Status {
	switch queue {
	case anki.QueueNew:
		return StatusNew
	case anki.QueueLearning, anki.QueueRelearn:
		return StatusDue
	case anki.QueueReview:
		if due <= 0 {
			return StatusDue
		}
		return StatusLearned
	default:
		return StatusLearned
	}
}
