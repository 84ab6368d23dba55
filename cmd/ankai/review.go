package main

import (
	"fmt"
	"log/slog"
	"strconv"

	"github.com/jstaylor-eng/AnkAi/internal/anki"
	"github.com/spf13/cobra"
)

func newReviewCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "review <cardID> <ease>",
		Short: "Answer a card (ease 1=again, 2=hard, 3=good, 4=easy)",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()

			cardID, err := strconv.ParseInt(args[0], 10, 64)
			if err != nil {
				return fmt.Errorf("invalid card ID %q: %w", args[0], err)
			}
			ease, err := strconv.Atoi(args[1])
			if err != nil {
				return fmt.Errorf("invalid ease %q: %w", args[1], err)
			}

			w, err := openWorkspace(ctx)
			if err != nil {
				return err
			}
			defer w.close()

			results, err := w.ankiClient.AnswerCards(ctx, []anki.CardAnswer{
				{CardID: cardID, Ease: ease},
			})
			if err != nil {
				return fmt.Errorf("failed to answer card: %w", err)
			}
			if len(results) == 0 || !results[0] {
				return fmt.Errorf("card %d could not be answered, it may not be in the answerable state", cardID)
			}

			if err := w.registry.RefreshOne(ctx, cardID); err != nil {
				slog.Warn("failed to refresh card after answering", "cardID", cardID, "error", err)
			}

			fmt.Printf("Answered card %d with ease %d\n", cardID, ease)
			return nil
		},
	}
}

func newSyncCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "sync",
		Short: "Trigger an AnkiWeb sync through AnkiConnect",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()

			cfg, err := loadConfig()
			if err != nil {
				return err
			}

			ankiClient := anki.NewHTTPClient(cfg.Anki.URL)
			defer func() {
				_ = ankiClient.Close()
			}()

			version, err := ankiClient.Version(ctx)
			if err != nil {
				return fmt.Errorf("failed to reach AnkiConnect at %s: %w", cfg.Anki.URL, err)
			}
			slog.Debug("connected to AnkiConnect", "version", version)

			if err := ankiClient.Sync(ctx); err != nil {
				return fmt.Errorf("failed to sync: %w", err)
			}

			fmt.Println("Sync started")
			return nil
		},
	}
}
