package main

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/spf13/cobra"
)

var (
	configFile string
	debugMode  bool
)

func main() {
	rootCommand := newRootCommand()
	if err := rootCommand.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func newRootCommand() *cobra.Command {
	rootCommand := &cobra.Command{
		Use:           "ankai",
		Short:         "Read and practice Chinese with vocabulary from your Anki collection",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			setupLogger(debugMode)
			return nil
		},
	}

	rootCommand.PersistentFlags().StringVar(&configFile, "config", "", "Path to configuration file")
	rootCommand.PersistentFlags().BoolVar(&debugMode, "debug", false, "Enable debug logging")

	rootCommand.AddCommand(newDecksCommand())
	rootCommand.AddCommand(newVocabCommand())
	rootCommand.AddCommand(newWordCommand())
	rootCommand.AddCommand(newArticleCommand())
	rootCommand.AddCommand(newReviewCommand())
	rootCommand.AddCommand(newPracticeCommand())
	rootCommand.AddCommand(newChatCommand())
	rootCommand.AddCommand(newTeachCommand())
	rootCommand.AddCommand(newSyncCommand())

	return rootCommand
}

func setupLogger(debugMode bool) {
	level := slog.LevelInfo
	if debugMode {
		level = slog.LevelDebug
	}
	logger := slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{
		Level:     level,
		AddSource: true,
	}))
	slog.SetDefault(logger)
}
