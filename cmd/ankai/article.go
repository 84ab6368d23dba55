package main

import (
	"errors"
	"fmt"
	"log/slog"
	"os"

	"github.com/jstaylor-eng/AnkAi/internal/article"
	"github.com/jstaylor-eng/AnkAi/internal/inference"
	"github.com/jstaylor-eng/AnkAi/internal/segment"
	"github.com/spf13/cobra"
)

func newArticleCommand() *cobra.Command {
	articleCommand := &cobra.Command{
		Use:   "article",
		Short: "Read articles with vocabulary-aware analysis",
	}

	articleCommand.AddCommand(newArticleProcessCommand())

	return articleCommand
}

func newArticleProcessCommand() *cobra.Command {
	var (
		pageURL     string
		text        string
		filePath    string
		rewrite     bool
		maxNewWords int
		sourceLang  string
	)

	command := &cobra.Command{
		Use:   "process",
		Short: "Segment, classify, and optionally simplify an article",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()

			if filePath != "" {
				if text != "" {
					return fmt.Errorf("--text and --file are mutually exclusive")
				}
				data, err := os.ReadFile(filePath)
				if err != nil {
					return fmt.Errorf("failed to read %s: %w", filePath, err)
				}
				text = string(data)
			}

			w, err := openWorkspace(ctx)
			if err != nil {
				return err
			}
			defer w.close()

			llmClient, err := newInferenceClient(w.cfg)
			if err != nil {
				if !errors.Is(err, inference.ErrUnavailable) {
					return err
				}
				slog.Debug("no language model provider configured, rewriting disabled")
			}

			segmenter, err := segment.New()
			if err != nil {
				return fmt.Errorf("failed to initialize segmenter: %w", err)
			}

			processor := article.NewProcessor(w.registry, segmenter, article.NewReadabilityFetcher(), llmClient)
			document, err := processor.Process(ctx, article.Request{
				URL:         pageURL,
				Text:        text,
				Rewrite:     rewrite,
				MaxNewWords: maxNewWords,
				SourceLang:  sourceLang,
			})
			if err != nil {
				return fmt.Errorf("failed to process article: %w", err)
			}

			tracker := w.state.tracker(w.cfg.Daily.NewWordLimit)
			article.EnforceDailyLimit(document, tracker)
			w.state.Daily = tracker.State()
			if err := w.state.save(w.cfg.State.File); err != nil {
				return fmt.Errorf("failed to save session state: %w", err)
			}

			renderDocument(document)
			return nil
		},
	}

	command.Flags().StringVar(&pageURL, "url", "", "Fetch the article from this URL")
	command.Flags().StringVar(&text, "text", "", "Process this text directly")
	command.Flags().StringVar(&filePath, "file", "", "Read the article from this file")
	command.Flags().BoolVar(&rewrite, "rewrite", false, "Simplify sentences towards known vocabulary")
	command.Flags().IntVar(&maxNewWords, "max-new-words", 3, "Maximum unknown words a rewrite may introduce per sentence")
	command.Flags().StringVar(&sourceLang, "lang", "auto", "Source language (auto, zh, en)")

	return command
}
