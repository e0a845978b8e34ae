// Package passage assembles short reading passages that embed target
// vocabulary inside curated example sentences.
package passage

import (
	"fmt"
	"log/slog"
	"strings"

	"github.com/vocabdeck/vocabdeck-backend/internal/domain"
)

// wordsPerMinute is the fixed reading speed assumption behind the
// reading-time estimate.
const wordsPerMinute = 200

// ---------------------------------------------------------------------------
// Consumer-defined interfaces (private)
// ---------------------------------------------------------------------------

type contentStore interface {
	Definition(word, contextName string) domain.DefinitionResult
	SentenceExamples(word, contextName string) []domain.SentenceExample
}

// ---------------------------------------------------------------------------
// Composer
// ---------------------------------------------------------------------------

// Composer builds reading passages from stored example sentences.
type Composer struct {
	store contentStore
	log   *slog.Logger
}

// NewComposer creates the passage composer.
func NewComposer(log *slog.Logger, store contentStore) *Composer {
	return &Composer{
		store: store,
		log:   log.With("service", "passage"),
	}
}

// Compose builds one passage: a context intro, the first example
// sentence of every word that has one, and a context conclusion. Words
// without an example for the context are left out silently; they still
// count toward TotalWordsInList.
func (c *Composer) Compose(words []domain.WordRef, contextName string) domain.Passage {
	ctxName := domain.NormalizeWord(contextName)

	var b strings.Builder
	b.WriteString(introFor(ctxName))

	passage := domain.Passage{Context: ctxName}
	for _, ref := range words {
		w := domain.NormalizeWord(ref.Value)
		if w == "" {
			continue
		}
		passage.TotalWordsInList++

		examples := c.store.SentenceExamples(w, ctxName)
		if len(examples) == 0 {
			c.log.Debug("word has no example for passage", "word", w, "context", ctxName)
			continue
		}
		sentence := examples[0].Sentence

		b.WriteString(" ")
		sentenceStart := b.Len()
		b.WriteString(sentence)

		// Offset points at the word inside the appended sentence; when
		// the sentence does not contain the word literally, it points at
		// the sentence itself.
		offset := sentenceStart
		if idx := indexFold(sentence, w); idx >= 0 {
			offset += idx
		}
		var meaning string
		if res := c.store.Definition(w, ctxName); res.Found {
			meaning = res.Text
		}
		passage.Words = append(passage.Words, domain.PassageWord{
			Word:    w,
			Meaning: meaning,
			Offset:  offset,
		})
		passage.WordsIncluded++
	}

	b.WriteString(" ")
	b.WriteString(conclusionFor(ctxName))

	passage.Text = b.String()
	passage.ReadingTimeMin = readingTime(passage.Text)
	return passage
}

// readingTime estimates reading minutes, rounded up.
func readingTime(text string) int {
	words := len(strings.Fields(text))
	return (words + wordsPerMinute - 1) / wordsPerMinute
}

// indexFold returns the byte index of the first case-insensitive
// occurrence of sub in s, or -1.
func indexFold(s, sub string) int {
	return strings.Index(strings.ToLower(s), strings.ToLower(sub))
}

var intros = map[string]string{
	"business": "Let's look at how these words come up in the world of business.",
	"daily":    "Here is a short story from everyday life.",
	"travel":   "Imagine setting off on a journey.",
	"academic": "Consider how these words appear in academic writing.",
}

var conclusions = map[string]string{
	"business": "These expressions come up in offices and negotiations every day.",
	"daily":    "You will hear these words again and again in daily conversation.",
	"travel":   "Keep these words handy for your next trip.",
	"academic": "Watch for these words the next time you read a paper.",
}

func introFor(contextName string) string {
	if s, ok := intros[contextName]; ok {
		return s
	}
	if contextName == "" {
		return "Here is a short reading passage."
	}
	return fmt.Sprintf("Here is a short passage about %s.", contextName)
}

func conclusionFor(contextName string) string {
	if s, ok := conclusions[contextName]; ok {
		return s
	}
	if contextName == "" {
		return "That concludes this short reading."
	}
	return fmt.Sprintf("That concludes this short reading about %s.", contextName)
}
