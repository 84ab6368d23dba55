// Package dictionary provides word definitions from a CC-CEDICT formatted file.
package dictionary

import (
	"bufio"
	"bytes"
	_ "embed"
	"fmt"
	"log/slog"
	"os"
	"strings"
)

//go:embed data/cedict.u8
var embeddedCedict []byte

// Store holds CC-CEDICT definitions keyed by headword. Both the simplified
// and the traditional form of each entry resolve to the same definition.
// Lookups never fail: a missing word is an empty definition.
type Store struct {
	definitions map[string]string
}

// Load reads a CC-CEDICT file from path. An empty path, or a path that cannot
// be read, falls back to the dictionary bundled with the binary.
func Load(path string) *Store {
	if path != "" {
		data, err := os.ReadFile(path)
		if err == nil {
			return parse(data)
		}
		slog.Default().Warn("failed to read dictionary file, falling back to the bundled dictionary",
			"path", path,
			"error", err,
		)
	}
	return parse(embeddedCedict)
}

// parse scans CC-CEDICT lines of the form
//
//	traditional simplified [pin1 yin1] /first definition/second definition/
//
// Comment lines and lines that do not match are skipped. The first definition
// wins: later lines never overwrite a headword that is already present.
func parse(data []byte) *Store {
	store := &Store{
		definitions: map[string]string{},
	}

	scanner := bufio.NewScanner(bytes.NewReader(data))
	scanner.Buffer(make([]byte, 0, 64*1024), 1024*1024)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}

		traditional, simplified, definition, err := parseLine(line)
		if err != nil {
			slog.Default().Debug("skipping malformed dictionary line", "line", line, "error", err)
			continue
		}

		if _, ok := store.definitions[simplified]; !ok {
			store.definitions[simplified] = definition
		}
		if _, ok := store.definitions[traditional]; !ok {
			store.definitions[traditional] = definition
		}
	}
	return store
}

func parseLine(line string) (traditional, simplified, definition string, err error) {
	bracket := strings.Index(line, " [")
	if bracket < 0 {
		return "", "", "", fmt.Errorf("no pinyin bracket in %q", line)
	}

	forms := strings.Fields(line[:bracket])
	if len(forms) != 2 {
		return "", "", "", fmt.Errorf("expected 2 headword forms, got %d in %q", len(forms), line)
	}

	slash := strings.Index(line[bracket:], "] /")
	if slash < 0 {
		return "", "", "", fmt.Errorf("no definition in %q", line)
	}
	rest := line[bracket+slash+len("] /"):]

	end := strings.Index(rest, "/")
	if end < 0 {
		return "", "", "", fmt.Errorf("unterminated definition in %q", line)
	}
	definition = strings.TrimSpace(rest[:end])
	if definition == "" {
		return "", "", "", fmt.Errorf("empty definition in %q", line)
	}

	return forms[0], forms[1], definition, nil
}

// Lookup returns the first CC-CEDICT definition for word, or "" when the
// dictionary does not contain it.
func (store *Store) Lookup(word string) string {
	return store.definitions[word]
}

// Len reports how many headwords the store resolves.
func (store *Store) Len() int {
	return len(store.definitions)
}
