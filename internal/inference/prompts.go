package inference

import (
	"fmt"
	"strings"
)

// Prompt builders shared by every provider. Each returns the system prompt
// and the user message for one operation; the provider only supplies the
// transport.

const tutorRole = `You are a Chinese language tutor helping a learner read and practice at their own vocabulary level.
The learner's vocabulary is given as two lists:
- LEARNED words: the learner reads these comfortably. Prefer them everywhere.
- DUE words: the learner is reviewing these. Work them in naturally when possible.
Simplified characters only. Natural, grammatical Chinese.`

func vocabularyBlock(learned, due []string) string {
	var block strings.Builder
	block.WriteString("LEARNED words:\n")
	block.WriteString(strings.Join(learned, "、"))
	block.WriteString("\n\nDUE words:\n")
	block.WriteString(strings.Join(due, "、"))
	return block.String()
}

// RewritePrompt asks the model to simplify sentences towards the learner's
// vocabulary, introducing at most maxNewWords words outside it.
func RewritePrompt(params RewriteRequest) (system, user string) {
	system = tutorRole + `

TASK: Rewrite each input sentence using the learner's vocabulary, preserving the meaning.
- Keep a sentence unchanged when the learner already knows every word in it.
- You may use at most ` + fmt.Sprint(params.MaxNewWords) + ` words outside the vocabulary lists across ALL sentences combined.
- Never merge or drop sentences. Output exactly one object per input sentence, in order.

OUTPUT: ONLY a JSON array, no text outside it:
[{"original": "<input sentence>", "rewritten": "<simplified sentence>", "translation": "<English translation of the rewritten sentence>"}]`

	var input strings.Builder
	input.WriteString(vocabularyBlock(params.LearnedWords, params.DueWords))
	input.WriteString("\n\nSentences to rewrite:\n")
	for i, sentence := range params.Sentences {
		fmt.Fprintf(&input, "%d. %s\n", i+1, sentence)
	}
	return system, input.String()
}

// TranslatePrompt asks the model to render an English text as Chinese the
// learner can read.
func TranslatePrompt(params TranslateRequest) (system, user string) {
	system = tutorRole + `

TASK: Translate the English text into Chinese at the learner's level, sentence by sentence.
- You may use at most ` + fmt.Sprint(params.MaxNewWords) + ` words outside the vocabulary lists across the whole text.
- When the vocabulary cannot express a detail, simplify the detail rather than using harder words, and reflect the simplification in back_translation.

OUTPUT: ONLY a JSON array, no text outside it:
[{"english": "<source sentence>", "chinese": "<Chinese translation>", "pinyin": "<tone-marked pinyin>", "back_translation": "<literal English of the Chinese>"}]`

	user = vocabularyBlock(params.LearnedWords, params.DueWords) + "\n\nText to translate:\n" + params.Text
	return system, user
}

// RecallPrompt asks for English sentences the learner should translate back
// into Chinese, exercising due vocabulary.
func RecallPrompt(params RecallRequest) (system, user string) {
	system = tutorRole + `

TASK: Write English sentences for translation practice. Their ideal Chinese translations must use ONLY the learner's vocabulary, and each should exercise at least one DUE word.
- Everyday, concrete situations. One idea per sentence.

OUTPUT: ONLY a JSON array, no text outside it:
[{"english": "<English sentence>", "chinese": "<ideal Chinese translation>", "pinyin": "<tone-marked pinyin>"}]`

	var input strings.Builder
	input.WriteString(vocabularyBlock(params.LearnedWords, params.DueWords))
	fmt.Fprintf(&input, "\n\nWrite %d sentences.", params.Count)
	if params.Topic != "" {
		fmt.Fprintf(&input, " Topic: %s.", params.Topic)
	}
	return system, input.String()
}

// ChatPrompt asks for the next turn of a conversation in learner-level Chinese.
func ChatPrompt(params ChatRequest) (system, user string) {
	system = tutorRole + `

TASK: You are chatting with the learner in Chinese. Reply to their last message naturally in one to three short sentences, using the learner's vocabulary. Gently correct their Chinese only when it blocks understanding.

OUTPUT: ONLY a JSON object, no text outside it:
{"chinese": "<your reply>", "pinyin": "<tone-marked pinyin>", "translation": "<English translation>"}`

	var input strings.Builder
	input.WriteString(vocabularyBlock(params.LearnedWords, params.DueWords))
	input.WriteString("\n\nConversation so far:\n")
	for _, message := range params.History {
		fmt.Fprintf(&input, "%s: %s\n", message.Role, message.Content)
	}
	fmt.Fprintf(&input, "learner: %s\n", params.Message)
	return system, input.String()
}

// WordIntroductionPrompt asks for example sentences teaching a single word.
func WordIntroductionPrompt(params WordIntroductionRequest) (system, user string) {
	system = tutorRole + `

TASK: Teach the learner one new word with four example sentences. Every other word in each example must come from the learner's vocabulary, so the new word is the only unfamiliar element. Order the examples from simplest to hardest.

OUTPUT: ONLY a JSON array, no text outside it:
[{"chinese": "<example sentence>", "pinyin": "<tone-marked pinyin>", "english": "<English translation>", "note": "<short usage note, optional>"}]`

	user = vocabularyBlock(params.LearnedWords, params.DueWords) + fmt.Sprintf(
		"\n\nWord to teach: %s (%s): %s",
		params.Word.Hanzi, params.Word.Pinyin, params.Word.Definition,
	)
	return system, user
}
