package main

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/jstaylor-eng/AnkAi/internal/vocab"
	"gopkg.in/yaml.v3"
)

// sessionState persists between command runs: which decks the learner
// selected and which new words were introduced today.
type sessionState struct {
	Decks []string           `yaml:"decks"`
	Daily vocab.TrackerState `yaml:"daily"`
}

func loadSession(path string) (*sessionState, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return &sessionState{}, nil
		}
		return nil, fmt.Errorf("os.ReadFile(%s) > %w", path, err)
	}

	var state sessionState
	if err := yaml.Unmarshal(data, &state); err != nil {
		return nil, fmt.Errorf("yaml.Unmarshal() > %w", err)
	}
	return &state, nil
}

func (state *sessionState) save(path string) error {
	data, err := yaml.Marshal(state)
	if err != nil {
		return fmt.Errorf("yaml.Marshal() > %w", err)
	}
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return fmt.Errorf("os.MkdirAll(%s) > %w", dir, err)
		}
	}
	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("os.WriteFile(%s) > %w", path, err)
	}
	return nil
}

// tracker rebuilds the daily tracker from persisted state. The configured
// limit wins over the persisted one so a config change takes effect without
// waiting for the next day.
func (state *sessionState) tracker(limit int) *vocab.Tracker {
	if state.Daily.Date == "" {
		return vocab.NewTracker(limit)
	}
	tracker := vocab.NewTrackerFromState(state.Daily)
	tracker.SetLimit(limit)
	return tracker
}
