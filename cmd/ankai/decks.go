package main

import (
	"fmt"
	"log/slog"
	"slices"

	"github.com/jstaylor-eng/AnkAi/internal/anki"
	"github.com/spf13/cobra"
)

func newDecksCommand() *cobra.Command {
	decksCommand := &cobra.Command{
		Use:   "decks",
		Short: "Manage which Anki decks supply vocabulary",
	}

	decksCommand.AddCommand(newDecksListCommand())
	decksCommand.AddCommand(newDecksSelectCommand())

	return decksCommand
}

func newDecksListCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List the decks available in Anki",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig()
			if err != nil {
				return err
			}

			ankiClient := anki.NewHTTPClient(cfg.Anki.URL)
			defer func() {
				_ = ankiClient.Close()
			}()

			names, err := ankiClient.DeckNames(cmd.Context())
			if err != nil {
				return fmt.Errorf("failed to list decks: %w", err)
			}

			state, err := loadSession(cfg.State.File)
			if err != nil {
				return fmt.Errorf("failed to load session state: %w", err)
			}

			for _, name := range names {
				marker := " "
				options := ""
				if slices.Contains(state.Decks, name) {
					marker = "*"
					deckConfig, err := ankiClient.GetDeckConfig(cmd.Context(), name)
					if err != nil {
						slog.Warn("failed to read deck options", "deck", name, "error", err)
					} else {
						options = fmt.Sprintf("  (new/day: %d, reviews/day: %d)",
							deckConfig.New.PerDay, deckConfig.Review.PerDay)
					}
				}
				fmt.Printf("%s %s%s\n", marker, name, options)
			}
			return nil
		},
	}
}

func newDecksSelectCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "select <deck> [deck...]",
		Short: "Select the decks used as the vocabulary source",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig()
			if err != nil {
				return err
			}

			ankiClient := anki.NewHTTPClient(cfg.Anki.URL)
			defer func() {
				_ = ankiClient.Close()
			}()

			available, err := ankiClient.DeckNames(cmd.Context())
			if err != nil {
				return fmt.Errorf("failed to list decks: %w", err)
			}
			for _, name := range args {
				if !slices.Contains(available, name) {
					return fmt.Errorf("deck %q does not exist in Anki", name)
				}
			}

			state, err := loadSession(cfg.State.File)
			if err != nil {
				return fmt.Errorf("failed to load session state: %w", err)
			}
			state.Decks = args
			if err := state.save(cfg.State.File); err != nil {
				return fmt.Errorf("failed to save session state: %w", err)
			}

			fmt.Printf("Selected %d deck(s)\n", len(args))
			return nil
		},
	}
}
