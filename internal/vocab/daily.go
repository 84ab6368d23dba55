package vocab

import (
	"time"
)

// Tracker enforces a daily allowance of newly introduced words. The set of
// introduced words resets when the local calendar date changes between calls.
type Tracker struct {
	limit      int
	day        string
	introduced map[string]bool
	order      []string
	now        func() time.Time
}

// TrackerState is the serializable snapshot of a tracker, persisted between
// command invocations.
type TrackerState struct {
	Limit      int      `yaml:"limit" json:"limit"`
	Date       string   `yaml:"date" json:"date"`
	Introduced []string `yaml:"introduced" json:"introduced"`
}

func NewTracker(limit int) *Tracker {
	return newTrackerAt(limit, time.Now)
}

func newTrackerAt(limit int, now func() time.Time) *Tracker {
	return &Tracker{
		limit:      limit,
		day:        now().Format(time.DateOnly),
		introduced: map[string]bool{},
		now:        now,
	}
}

// NewTrackerFromState restores a persisted tracker. A snapshot from an earlier
// date starts fresh, keeping only the limit.
func NewTrackerFromState(state TrackerState) *Tracker {
	return newTrackerFromStateAt(state, time.Now)
}

func newTrackerFromStateAt(state TrackerState, now func() time.Time) *Tracker {
	tracker := newTrackerAt(state.Limit, now)
	if state.Date != tracker.day {
		return tracker
	}
	for _, word := range state.Introduced {
		tracker.mark(word)
	}
	return tracker
}

// rollover clears the introduced set when the date has changed since the last call.
func (tracker *Tracker) rollover() {
	today := tracker.now().Format(time.DateOnly)
	if today == tracker.day {
		return
	}
	tracker.day = today
	tracker.introduced = map[string]bool{}
	tracker.order = nil
}

// Limit returns the configured daily allowance.
func (tracker *Tracker) Limit() int {
	return tracker.limit
}

// SetLimit changes the daily allowance without touching today's introduced set.
func (tracker *Tracker) SetLimit(limit int) {
	if limit < 0 {
		limit = 0
	}
	tracker.limit = limit
}

// Remaining reports how many more words may be introduced today. Words already
// introduced today never make this negative.
func (tracker *Tracker) Remaining() int {
	tracker.rollover()
	remaining := tracker.limit - len(tracker.order)
	if remaining < 0 {
		return 0
	}
	return remaining
}

// MarkIntroduced records words as introduced today. Repeats are free: a word
// already introduced today does not consume allowance again.
func (tracker *Tracker) MarkIntroduced(words []string) {
	tracker.rollover()
	for _, word := range words {
		tracker.mark(word)
	}
}

func (tracker *Tracker) mark(word string) {
	if tracker.introduced[word] {
		return
	}
	tracker.introduced[word] = true
	tracker.order = append(tracker.order, word)
}

// IntroducedToday lists today's introduced words in introduction order.
func (tracker *Tracker) IntroducedToday() []string {
	tracker.rollover()
	return append([]string(nil), tracker.order...)
}

// State snapshots the tracker for persistence.
func (tracker *Tracker) State() TrackerState {
	tracker.rollover()
	return TrackerState{
		Limit:      tracker.limit,
		Date:       tracker.day,
		Introduced: append([]string(nil), tracker.order...),
	}
}
