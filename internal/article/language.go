package article

import (
	"unicode"
)

// Language codes used by the pipeline.
const (
	LangChinese = "zh"
	LangEnglish = "en"
	LangAuto    = "auto"
)

// DetectLanguage guesses whether text is Chinese or English by majority:
// more Han characters than Latin letters means Chinese. Digits, punctuation,
// and other scripts are ignored.
func DetectLanguage(text string) string {
	han := 0
	latin := 0
	for _, r := range text {
		switch {
		case unicode.Is(unicode.Han, r):
			han++
		case unicode.Is(unicode.Latin, r):
			latin++
		}
	}
	if han > latin {
		return LangChinese
	}
	return LangEnglish
}
