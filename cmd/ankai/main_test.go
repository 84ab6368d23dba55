package main

import (
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSetupLogger(t *testing.T) {
	tests := []struct {
		name      string
		debugMode bool
		wantLevel slog.Level
	}{
		{
			name:      "debug mode enabled",
			debugMode: true,
			wantLevel: slog.LevelDebug,
		},
		{
			name:      "debug mode disabled",
			debugMode: false,
			wantLevel: slog.LevelInfo,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			setupLogger(tt.debugMode)
			logger := slog.Default()
			assert.NotNil(t, logger)
			assert.Equal(t, tt.wantLevel <= slog.LevelDebug, logger.Enabled(nil, slog.LevelDebug))
		})
	}
}

func TestNewRootCommand(t *testing.T) {
	cmd := newRootCommand()

	assert.Equal(t, "ankai", cmd.Use)
	assert.True(t, cmd.SilenceUsage)
	assert.True(t, cmd.SilenceErrors)
	assert.NotNil(t, cmd.PersistentFlags().Lookup("config"))
	assert.NotNil(t, cmd.PersistentFlags().Lookup("debug"))

	wantSubcommands := []string{"decks", "vocab", "word", "article", "review", "practice", "chat", "teach", "sync"}
	for _, want := range wantSubcommands {
		found := false
		for _, sub := range cmd.Commands() {
			if sub.Name() == want {
				found = true
				break
			}
		}
		assert.True(t, found, "missing subcommand %s", want)
	}
}

func TestNewDecksCommand(t *testing.T) {
	cmd := newDecksCommand()

	assert.Equal(t, "decks", cmd.Use)
	assert.True(t, cmd.HasSubCommands())
}

func TestNewArticleCommand(t *testing.T) {
	cmd := newArticleCommand()

	assert.Equal(t, "article", cmd.Use)
	assert.True(t, cmd.HasSubCommands())

	processCmd, _, err := cmd.Find([]string{"process"})
	assert.NoError(t, err)
	for _, flag := range []string{"url", "text", "file", "rewrite", "max-new-words", "lang"} {
		assert.NotNil(t, processCmd.Flags().Lookup(flag), "missing flag %s", flag)
	}
	assert.Equal(t, "3", processCmd.Flags().Lookup("max-new-words").DefValue)
}
