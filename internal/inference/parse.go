package inference

import (
	"encoding/json"
	"fmt"
	"regexp"
	"strings"
)

// DecodeJSON unmarshals model output into out, tolerating the usual framing
// noise: markdown code fences, prose before or after the JSON, and trailing
// garbage after the closing bracket.
func DecodeJSON(content string, out any) error {
	content = strings.TrimSpace(content)
	if content == "" {
		return fmt.Errorf("empty model output")
	}

	content = stripCodeFence(content)

	start := strings.IndexAny(content, "[{")
	if start < 0 {
		return fmt.Errorf("no JSON found in model output: %s", truncate(content, 200))
	}
	content = content[start:]

	if err := json.Unmarshal([]byte(content), out); err == nil {
		return nil
	}

	// The model may append prose after the JSON. Cut at the balanced
	// closing bracket and retry.
	if end := findBalancedEnd(content); end > 0 {
		if err := json.Unmarshal([]byte(content[:end]), out); err == nil {
			return nil
		}
	}
	return fmt.Errorf("json.Unmarshal(%s) failed", truncate(content, 200))
}

func stripCodeFence(content string) string {
	if !strings.Contains(content, "```") {
		return content
	}
	// Take the body of the first fenced block that starts with JSON.
	parts := strings.Split(content, "```")
	for _, part := range parts[1:] {
		part = strings.TrimPrefix(part, "json")
		part = strings.TrimSpace(part)
		if strings.HasPrefix(part, "[") || strings.HasPrefix(part, "{") {
			return part
		}
	}
	return content
}

// findBalancedEnd returns the index just past the bracket that balances the
// opening one, skipping brackets inside JSON strings. Zero means unbalanced.
func findBalancedEnd(content string) int {
	if content == "" {
		return 0
	}
	open := content[0]
	var closing byte
	switch open {
	case '[':
		closing = ']'
	case '{':
		closing = '}'
	default:
		return 0
	}

	depth := 0
	inString := false
	escaped := false
	for i := 0; i < len(content); i++ {
		c := content[i]
		if escaped {
			escaped = false
			continue
		}
		switch {
		case c == '\\' && inString:
			escaped = true
		case c == '"':
			inString = !inString
		case inString:
		case c == open:
			depth++
		case c == closing:
			depth--
			if depth == 0 {
				return i + 1
			}
		}
	}
	return 0
}

var chineseValuePattern = regexp.MustCompile(`"chinese"\s*:\s*"([^"]+)"`)

// SalvageChineseValues pulls "chinese" string values out of model output that
// failed to parse as JSON, so a truncated response still yields sentences.
func SalvageChineseValues(content string) []string {
	matches := chineseValuePattern.FindAllStringSubmatch(content, -1)
	values := make([]string, 0, len(matches))
	for _, match := range matches {
		values = append(values, match[1])
	}
	return values
}

func truncate(s string, n int) string {
	if len(s) <= n {
		return s
	}
	return s[:n] + "..."
}
