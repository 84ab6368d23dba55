package main

import (
	"fmt"

	"github.com/jstaylor-eng/AnkAi/internal/inference"
	"github.com/jstaylor-eng/AnkAi/internal/vocab"
	"github.com/spf13/cobra"
)

func newTeachCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "teach <hanzi>",
		Short: "Introduce a word with example sentences built from known vocabulary",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()

			w, err := openWorkspace(ctx)
			if err != nil {
				return err
			}
			defer w.close()

			llmClient, err := newInferenceClient(w.cfg)
			if err != nil {
				return fmt.Errorf("a language model provider is required to teach a word: %w", err)
			}

			entry := w.registry.Classify(args[0])
			response, err := llmClient.GenerateWordIntroduction(ctx, inference.WordIntroductionRequest{
				Word: inference.Word{
					Hanzi:      entry.Hanzi,
					Pinyin:     entry.Pinyin,
					Definition: entry.Definition,
				},
				LearnedWords: statusWords(w.registry, vocab.StatusLearned),
				DueWords:     statusWords(w.registry, vocab.StatusDue),
			})
			if err != nil {
				return fmt.Errorf("failed to generate word introduction: %w", err)
			}

			fmt.Println(renderEntry(entry))
			fmt.Println()
			for _, example := range response.Examples {
				printChinese(example.Chinese, example.Pinyin, example.English)
				if example.Note != "" {
					fmt.Printf("  (%s)\n", example.Note)
				}
				fmt.Println()
			}

			// An introduced word counts against today's allowance.
			if entry.Status == vocab.StatusNew {
				tracker := w.state.tracker(w.cfg.Daily.NewWordLimit)
				tracker.MarkIntroduced([]string{entry.Hanzi})
				w.state.Daily = tracker.State()
				if err := w.state.save(w.cfg.State.File); err != nil {
					return fmt.Errorf("failed to save session state: %w", err)
				}
			}
			return nil
		},
	}
}
