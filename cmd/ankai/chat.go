package main

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/jstaylor-eng/AnkAi/internal/inference"
	"github.com/jstaylor-eng/AnkAi/internal/vocab"
	"github.com/spf13/cobra"
)

func newChatCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "chat",
		Short: "Chat in Chinese at your vocabulary level",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()

			w, err := openWorkspace(ctx)
			if err != nil {
				return err
			}
			defer w.close()

			llmClient, err := newInferenceClient(w.cfg)
			if err != nil {
				return fmt.Errorf("a language model provider is required for chat: %w", err)
			}

			learnedWords := statusWords(w.registry, vocab.StatusLearned)
			dueWords := statusWords(w.registry, vocab.StatusDue)

			fmt.Println("Chat session started. Type 'quit' to exit.")
			fmt.Println()

			stdinReader := bufio.NewReader(os.Stdin)
			var history []inference.ChatMessage
			for {
				fmt.Print("> ")
				line, err := stdinReader.ReadString('\n')
				if err != nil {
					if err == io.EOF {
						return nil
					}
					return fmt.Errorf("failed to read input: %w", err)
				}
				message := strings.TrimSpace(line)
				if message == "" {
					continue
				}
				if message == "quit" || message == "exit" {
					return nil
				}

				response, err := llmClient.GenerateChatReply(ctx, inference.ChatRequest{
					Message:      message,
					History:      history,
					LearnedWords: learnedWords,
					DueWords:     dueWords,
				})
				if err != nil {
					return fmt.Errorf("failed to generate reply: %w", err)
				}

				printChinese(response.Chinese, response.Pinyin, response.Translation)
				fmt.Println()

				history = append(history,
					inference.ChatMessage{Role: "user", Content: message},
					inference.ChatMessage{Role: "assistant", Content: response.Chinese},
				)
			}
		},
	}
}
