package llm

import (
	"fmt"
	"strings"

	"github.com/vocabdeck/vocabdeck-backend/internal/domain"
)

const promptPreamble = "You are a vocabulary content engine for language learners."

// wordList renders caller-supplied words for a prompt, carrying any
// caller-provided meanings through to the model.
func wordList(words []domain.WordRef) string {
	parts := make([]string, len(words))
	for i, ref := range words {
		if ref.Meaning != "" {
			parts[i] = fmt.Sprintf("%s (meaning: %s)", ref.Value, ref.Meaning)
		} else {
			parts[i] = ref.Value
		}
	}
	return strings.Join(parts, ", ")
}

func definePrompt(word, contextName string) string {
	contextLine := "The definition is general-purpose."
	if contextName != "" {
		contextLine = fmt.Sprintf("Prefer a definition fitting the %q context; set matched_context to %q if you use it.", contextName, contextName)
	}

	return fmt.Sprintf(`%s

Define the English word %q. %s

Output ONLY a valid JSON object matching this exact schema:
{
  "word": %q,
  "text": "<clear definition suitable for B1+ learners>",
  "matched_context": "<context name if context-specific, else empty>",
  "found": true
}

Rules:
- Keep the definition to one sentence
- Output ONLY the JSON, no markdown, no explanations`,
		promptPreamble, word, contextLine, word)
}

func examplesPrompt(word, contextName string, limit int) string {
	contextLine := ""
	if contextName != "" {
		contextLine = fmt.Sprintf(" set in a %s context", contextName)
	}

	return fmt.Sprintf(`%s

Write %d natural example sentences using the English word %q%s.

Output ONLY a valid JSON array matching this exact schema:
[
  {"sentence": "<sentence containing the word>", "context": %q}
]

Rules:
- Every sentence must contain the word itself
- Vary sentence structure and register
- Output ONLY the JSON, no markdown, no explanations`,
		promptPreamble, limit, word, contextLine, contextName)
}

func similarPrompt(word string, limit int) string {
	return fmt.Sprintf(`%s

List up to %d synonyms or near-synonyms of the English word %q.

Output ONLY a valid JSON array matching this exact schema:
[
  {
    "word": "<similar word>",
    "meaning": "<short definition>",
    "similarity_score": <0.0 to 1.0>,
    "usage_note": "<when to prefer it over %q, or empty>"
  }
]

Rules:
- Order by descending similarity_score
- Output ONLY the JSON, no markdown, no explanations`,
		promptPreamble, limit, word, word)
}

func readingPrompt(words []domain.WordRef, contextName string) string {
	contextLine := "everyday life"
	if contextName != "" {
		contextLine = contextName
	}

	return fmt.Sprintf(`%s

Compose a short reading passage about %s that naturally uses each of these words: %s.

Output ONLY a valid JSON object matching this exact schema:
{
  "text": "<the full passage>",
  "context": %q,
  "words": [
    {"word": "<word>", "meaning": "<its meaning in this passage>", "offset": 0}
  ],
  "words_included": <number of listed words used>,
  "total_words_in_list": %d
}

Rules:
- Use every word exactly as given at least once
- Keep the passage under 150 words
- Output ONLY the JSON, no markdown, no explanations`,
		promptPreamble, contextLine, wordList(words), contextName, len(words))
}

func exercisesPrompt(words []domain.WordRef, contextName string, types []domain.ExerciseType) string {
	typeNames := make([]string, len(types))
	for i, tp := range types {
		typeNames[i] = tp.String()
	}

	contextLine := ""
	if contextName != "" {
		contextLine = fmt.Sprintf(" The exercises are set in a %s context.", contextName)
	}

	return fmt.Sprintf(`%s

Create one practice exercise per word for: %s. Pick each exercise's type from: %s.%s

Output ONLY a valid JSON array matching this exact schema:
[
  {
    "type": "<one of the allowed types>",
    "question": "<the question text>",
    "options": ["<option>", "..."],
    "correct": "<the correct answer as a literal string>",
    "word": "<the word>",
    "difficulty": "<beginner|intermediate|advanced>",
    "explanation": "<one-line explanation of the answer>"
  }
]

Rules:
- multiple_choice and matching need exactly 4 options including the correct one
- true_false options are exactly ["true", "false"]
- correct must appear verbatim among the options when options are present
- Output ONLY the JSON, no markdown, no explanations`,
		promptPreamble, wordList(words), strings.Join(typeNames, ", "), contextLine)
}

func quizPrompt(words []domain.WordRef, contextName string, limit int) string {
	contextLine := ""
	if contextName != "" {
		contextLine = fmt.Sprintf(" The quiz is set in a %s context.", contextName)
	}

	return fmt.Sprintf(`%s

Create a multiple-choice quiz of at most %d questions over these words: %s.%s

Output ONLY a valid JSON array matching this exact schema:
[
  {
    "word": "<the word>",
    "question": "<the question text>",
    "options": ["<option>", "<option>", "<option>", "<option>"],
    "correct": "<the correct option verbatim>",
    "difficulty": "<beginner|intermediate|advanced>",
    "explanation": "<one-line explanation of the answer>"
  }
]

Rules:
- Exactly 4 options per question, one question per word at most
- correct must appear verbatim among the options
- Output ONLY the JSON, no markdown, no explanations`,
		promptPreamble, limit, wordList(words), contextLine)
}
