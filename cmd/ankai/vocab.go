package main

import (
	"fmt"

	"github.com/jstaylor-eng/AnkAi/internal/vocab"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
)

type statusFlag vocab.Status

func (f *statusFlag) Set(val string) error {
	for _, status := range allStatuses {
		if val == string(status) {
			*f = statusFlag(status)
			return nil
		}
	}
	return fmt.Errorf("invalid status: %s", val)
}

func (f statusFlag) String() string {
	return string(f)
}

func (f *statusFlag) Type() string {
	return "status"
}

var (
	_           pflag.Value = (*statusFlag)(nil)
	allStatuses             = []vocab.Status{vocab.StatusNew, vocab.StatusDue, vocab.StatusLearned, vocab.StatusUnknown}
)

func newVocabCommand() *cobra.Command {
	var statusFilter statusFlag

	command := &cobra.Command{
		Use:   "vocab",
		Short: "Show the vocabulary loaded from the selected decks",
		RunE: func(cmd *cobra.Command, args []string) error {
			w, err := openWorkspace(cmd.Context())
			if err != nil {
				return err
			}
			defer w.close()

			if statusFilter != "" {
				entries := w.registry.GetByStatus(vocab.Status(statusFilter))
				for _, entry := range entries {
					fmt.Println(renderEntry(entry))
				}
				fmt.Printf("\n%d word(s)\n", len(entries))
				return nil
			}

			fmt.Printf("Loaded %d words from %d deck(s)\n", w.stats.Total, len(w.state.Decks))
			fmt.Printf("  new: %d  due: %d  learned: %d\n", w.stats.New, w.stats.Due, w.stats.Learned)
			return nil
		},
	}

	command.Flags().Var(&statusFilter, "status", fmt.Sprintf("Filter by status. Possible values are %v", allStatuses))

	return command
}

func newWordCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "word <hanzi>",
		Short: "Classify a single word against the loaded vocabulary",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			w, err := openWorkspace(cmd.Context())
			if err != nil {
				return err
			}
			defer w.close()

			entry := w.registry.Classify(args[0])
			fmt.Println(renderEntry(entry))
			fmt.Printf("status: %s\n", entry.Status)
			if entry.DeckName != "" {
				fmt.Printf("deck: %s\n", entry.DeckName)
			}
			return nil
		},
	}
}
