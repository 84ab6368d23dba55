package main

import (
	"bufio"
	"fmt"
	"os"

	"github.com/jstaylor-eng/AnkAi/internal/inference"
	"github.com/jstaylor-eng/AnkAi/internal/vocab"
	"github.com/spf13/cobra"
)

func newPracticeCommand() *cobra.Command {
	var (
		count int
		topic string
	)

	command := &cobra.Command{
		Use:   "practice",
		Short: "Translate English prompts into Chinese to exercise due vocabulary",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()

			if count < 1 {
				return fmt.Errorf("--count must be at least 1")
			}

			w, err := openWorkspace(ctx)
			if err != nil {
				return err
			}
			defer w.close()

			llmClient, err := newInferenceClient(w.cfg)
			if err != nil {
				return fmt.Errorf("a language model provider is required for practice: %w", err)
			}

			response, err := llmClient.GenerateRecallSentences(ctx, inference.RecallRequest{
				Count:        count,
				Topic:        topic,
				LearnedWords: statusWords(w.registry, vocab.StatusLearned),
				DueWords:     statusWords(w.registry, vocab.StatusDue),
			})
			if err != nil {
				return fmt.Errorf("failed to generate practice sentences: %w", err)
			}
			if len(response.Sentences) == 0 {
				return fmt.Errorf("the model returned no practice sentences")
			}

			fmt.Println("Translate each sentence into Chinese. Press Enter to reveal the answer.")
			fmt.Println()

			stdinReader := bufio.NewReader(os.Stdin)
			for i, sentence := range response.Sentences {
				fmt.Printf("%d. %s\n", i+1, sentence.English)
				if _, err := stdinReader.ReadString('\n'); err != nil {
					return nil
				}
				printChinese(sentence.Chinese, sentence.Pinyin, "")
				fmt.Println()
			}
			return nil
		},
	}

	command.Flags().IntVar(&count, "count", 5, "Number of practice sentences")
	command.Flags().StringVar(&topic, "topic", "", "Optional topic for the sentences")

	return command
}
