package llm

import (
	"context"
	"fmt"
	"strings"

	"github.com/google/uuid"

	"github.com/vocabdeck/vocabdeck-backend/internal/domain"
)

// Define resolves one word's definition through the model.
func (c *Client) Define(ctx context.Context, word, contextName string) (domain.DefinitionResult, error) {
	var res domain.DefinitionResult
	if err := c.completeInto(ctx, definePrompt(word, contextName), &res); err != nil {
		return domain.DefinitionResult{}, err
	}
	res.Word = domain.NormalizeWord(word)
	return res, nil
}

// ExampleSentences asks the model for usage examples of a word.
func (c *Client) ExampleSentences(ctx context.Context, word, contextName string, limit int) ([]domain.SentenceExample, error) {
	n := limit
	if n <= 0 {
		n = 5
	}

	var examples []domain.SentenceExample
	if err := c.completeInto(ctx, examplesPrompt(word, contextName, n), &examples); err != nil {
		return nil, err
	}
	if len(examples) > n {
		examples = examples[:n]
	}
	return examples, nil
}

// SimilarWords asks the model for synonyms and near-synonyms.
func (c *Client) SimilarWords(ctx context.Context, word string, limit int) ([]domain.SimilarWord, error) {
	n := limit
	if n <= 0 {
		n = 5
	}

	var similar []domain.SimilarWord
	if err := c.completeInto(ctx, similarPrompt(word, n), &similar); err != nil {
		return nil, err
	}
	if len(similar) > n {
		similar = similar[:n]
	}
	return similar, nil
}

// LightReading asks the model to compose a passage around the words.
// Offsets and inclusion counts are recomputed locally against the
// returned text; models cannot count bytes.
func (c *Client) LightReading(ctx context.Context, words []domain.WordRef, contextName string) (*domain.Passage, error) {
	var p domain.Passage
	if err := c.completeInto(ctx, readingPrompt(words, contextName), &p); err != nil {
		return nil, err
	}

	p.Context = contextName
	p.TotalWordsInList = len(words)

	included := 0
	for _, ref := range words {
		if indexFold(p.Text, ref.Value) >= 0 {
			included++
		}
	}
	p.WordsIncluded = included

	for i := range p.Words {
		off := indexFold(p.Text, p.Words[i].Word)
		if off < 0 {
			off = 0
		}
		p.Words[i].Offset = off
	}
	return &p, nil
}

// Generate asks the model for one exercise per word, confined to the
// allowed types. Records with an unknown type or no word are dropped.
func (c *Client) Generate(ctx context.Context, words []domain.WordRef, contextName string, types []domain.ExerciseType) ([]domain.Exercise, error) {
	var decoded []domain.Exercise
	if err := c.completeInto(ctx, exercisesPrompt(words, contextName, types), &decoded); err != nil {
		return nil, err
	}

	exercises := decoded[:0]
	for _, ex := range decoded {
		if !ex.Type.IsValid() || ex.Word == "" {
			c.log.Debug("dropping malformed model exercise", "type", ex.Type, "word", ex.Word)
			continue
		}
		ex.ID = fmt.Sprintf("%s_%s_%s", ex.Type, domain.NormalizeWord(ex.Word), uuid.NewString())
		ex.Context = contextName
		ex.DistractorOrigin = domain.DistractorOriginSynthesized
		exercises = append(exercises, ex)
	}
	return exercises, nil
}

// Capability for the model engine reflects credential availability: the
// model can synthesize material for any word, so coverage is all or
// nothing. No API call is made.
func (c *Client) Capability(ctx context.Context, words []domain.WordRef, contextName string) (domain.Capability, error) {
	preview := domain.Capability{TotalWords: len(words)}

	if !c.Configured() {
		for _, ref := range words {
			preview.Missing = append(preview.Missing, domain.NormalizeWord(ref.Value))
		}
		return preview, nil
	}

	preview.CoveredWords = len(words)
	preview.CanGenerate = len(words) > 0
	for _, ref := range words {
		preview.Details = append(preview.Details, domain.WordCapability{
			Word:          domain.NormalizeWord(ref.Value),
			HasDefinition: true,
		})
	}
	return preview, nil
}

// QuizQuestions asks the model for a multiple-choice quiz over the
// words, capped at limit questions.
func (c *Client) QuizQuestions(ctx context.Context, words []domain.WordRef, contextName string, limit int) ([]domain.QuizQuestion, error) {
	n := limit
	if n <= 0 {
		n = len(words)
	}

	var decoded []domain.QuizQuestion
	if err := c.completeInto(ctx, quizPrompt(words, contextName, n), &decoded); err != nil {
		return nil, err
	}

	questions := decoded[:0]
	for _, q := range decoded {
		if q.Word == "" {
			c.log.Debug("dropping malformed model quiz question")
			continue
		}
		q.ID = fmt.Sprintf("quiz_%s_%s", domain.NormalizeWord(q.Word), uuid.NewString())
		q.Context = contextName
		q.DistractorOrigin = domain.DistractorOriginSynthesized
		questions = append(questions, q)
	}
	if len(questions) > n {
		questions = questions[:n]
	}
	return questions, nil
}

// Health reports the model engine's serving state.
func (c *Client) Health(ctx context.Context) domain.EngineHealth {
	return domain.EngineHealth{
		Mode:      domain.ModeModel,
		Available: c.Configured(),
		Details: map[string]any{
			"credential_configured": c.Configured(),
			"model":                 c.cfg.Model,
		},
	}
}

func indexFold(s, substr string) int {
	return strings.Index(strings.ToLower(s), strings.ToLower(substr))
}
