package modes

import (
	"context"

	"github.com/vocabdeck/vocabdeck-backend/internal/domain"
	"github.com/vocabdeck/vocabdeck-backend/internal/service/exercise"
)

// The manual façades dispatch to the curated-content services. Each
// call guards on context cancellation and store readiness, then hands
// off; no content decisions are made at this layer.

type manualDefinitions struct {
	store contentStore
}

func (m *manualDefinitions) Define(ctx context.Context, word, contextName string) (domain.DefinitionResult, error) {
	if err := ready(ctx, m.store); err != nil {
		return domain.DefinitionResult{}, err
	}
	return m.store.Definition(word, contextName), nil
}

func (m *manualDefinitions) Health(ctx context.Context) domain.EngineHealth {
	return manualHealth(m.store)
}

type manualVocabulary struct {
	store    contentStore
	composer passageComposer
}

func (m *manualVocabulary) ExampleSentences(ctx context.Context, word, contextName string, limit int) ([]domain.SentenceExample, error) {
	if err := ready(ctx, m.store); err != nil {
		return nil, err
	}
	return truncate(m.store.SentenceExamples(word, contextName), limit), nil
}

func (m *manualVocabulary) SimilarWords(ctx context.Context, word string, limit int) ([]domain.SimilarWord, error) {
	if err := ready(ctx, m.store); err != nil {
		return nil, err
	}
	return truncate(m.store.SimilarWords(word), limit), nil
}

func (m *manualVocabulary) LightReading(ctx context.Context, words []domain.WordRef, contextName string) (*domain.Passage, error) {
	if err := ready(ctx, m.store); err != nil {
		return nil, err
	}
	p := m.composer.Compose(words, contextName)
	return &p, nil
}

func (m *manualVocabulary) Health(ctx context.Context) domain.EngineHealth {
	return manualHealth(m.store)
}

type manualExercises struct {
	store     contentStore
	generator exerciseGenerator
}

func (m *manualExercises) Generate(ctx context.Context, words []domain.WordRef, contextName string, types []domain.ExerciseType) ([]domain.Exercise, error) {
	if err := ready(ctx, m.store); err != nil {
		return nil, err
	}
	return m.generator.Generate(exercise.GenerateInput{Words: words, Context: contextName, Types: types})
}

func (m *manualExercises) Capability(ctx context.Context, words []domain.WordRef, contextName string) (domain.Capability, error) {
	if err := ready(ctx, m.store); err != nil {
		return domain.Capability{}, err
	}
	return m.generator.Capability(words, contextName), nil
}

func (m *manualExercises) Health(ctx context.Context) domain.EngineHealth {
	return manualHealth(m.store)
}

type manualQuiz struct {
	store     contentStore
	generator exerciseGenerator
}

func (m *manualQuiz) QuizQuestions(ctx context.Context, words []domain.WordRef, contextName string, limit int) ([]domain.QuizQuestion, error) {
	if err := ready(ctx, m.store); err != nil {
		return nil, err
	}
	return m.generator.QuizQuestions(exercise.QuizInput{Words: words, Context: contextName, Limit: limit})
}

func (m *manualQuiz) Health(ctx context.Context) domain.EngineHealth {
	return manualHealth(m.store)
}

// ready rejects calls on a cancelled context or an unloaded store.
func ready(ctx context.Context, st contentStore) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	if !st.Loaded() {
		return domain.ErrNotLoaded
	}
	return nil
}

func manualHealth(st contentStore) domain.EngineHealth {
	stats := st.Stats()
	return domain.EngineHealth{
		Mode:      domain.ModeManual,
		Available: st.Loaded(),
		Details: map[string]any{
			"loaded":   st.Loaded(),
			"words":    stats.Words,
			"contexts": len(stats.Contexts),
		},
	}
}

// truncate caps items at limit; a non-positive limit keeps everything.
func truncate[T any](items []T, limit int) []T {
	if limit > 0 && len(items) > limit {
		return items[:limit]
	}
	return items
}
