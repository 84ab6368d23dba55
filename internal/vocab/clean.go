package vocab

import (
	"strings"

	"golang.org/x/net/html"
)

// StripHTML flattens an Anki field value to plain text: tags are dropped,
// entities decoded, and whitespace collapsed to single spaces. Anki stores
// fields as HTML fragments, so values like "<b>火车</b>&nbsp;" come back
// as "火车".
func StripHTML(value string) string {
	if !strings.ContainsAny(value, "<&") {
		return collapseWhitespace(value)
	}

	var text strings.Builder
	tokenizer := html.NewTokenizer(strings.NewReader(value))
	for {
		tokenType := tokenizer.Next()
		if tokenType == html.ErrorToken {
			break
		}
		switch tokenType {
		case html.TextToken:
			text.Write(tokenizer.Text())
		case html.StartTagToken, html.SelfClosingTagToken:
			name, _ := tokenizer.TagName()
			if tag := string(name); tag == "br" || tag == "div" || tag == "p" {
				text.WriteByte(' ')
			}
		}
	}
	return collapseWhitespace(text.String())
}

func collapseWhitespace(value string) string {
	value = strings.ReplaceAll(value, " ", " ")
	return strings.Join(strings.Fields(value), " ")
}
