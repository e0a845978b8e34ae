// Package modes fixes the serving engine for every functional area at
// construction time. The engine mode is read from config exactly once;
// after New returns, each area adapter holds one concrete engine and no
// call path re-checks the flag.
package modes

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/vocabdeck/vocabdeck-backend/internal/config"
	"github.com/vocabdeck/vocabdeck-backend/internal/domain"
	"github.com/vocabdeck/vocabdeck-backend/internal/service/exercise"
)

// ---------------------------------------------------------------------------
// Engine contracts (one per functional area)
// ---------------------------------------------------------------------------

// DefinitionEngine serves word definitions.
type DefinitionEngine interface {
	Define(ctx context.Context, word, contextName string) (domain.DefinitionResult, error)
	Health(ctx context.Context) domain.EngineHealth
}

// VocabularyEngine serves example sentences, similar words and reading
// passages.
type VocabularyEngine interface {
	ExampleSentences(ctx context.Context, word, contextName string, limit int) ([]domain.SentenceExample, error)
	SimilarWords(ctx context.Context, word string, limit int) ([]domain.SimilarWord, error)
	LightReading(ctx context.Context, words []domain.WordRef, contextName string) (*domain.Passage, error)
	Health(ctx context.Context) domain.EngineHealth
}

// ExerciseEngine serves practice exercises and coverage previews.
type ExerciseEngine interface {
	Generate(ctx context.Context, words []domain.WordRef, contextName string, types []domain.ExerciseType) ([]domain.Exercise, error)
	Capability(ctx context.Context, words []domain.WordRef, contextName string) (domain.Capability, error)
	Health(ctx context.Context) domain.EngineHealth
}

// QuizEngine serves multiple-choice quizzes.
type QuizEngine interface {
	QuizQuestions(ctx context.Context, words []domain.WordRef, contextName string, limit int) ([]domain.QuizQuestion, error)
	Health(ctx context.Context) domain.EngineHealth
}

// ModelEngine is the combined surface a model-backed engine must cover
// to serve every area.
type ModelEngine interface {
	DefinitionEngine
	VocabularyEngine
	ExerciseEngine
	QuizEngine
}

// ---------------------------------------------------------------------------
// Consumer-defined interfaces (private)
// ---------------------------------------------------------------------------

type contentStore interface {
	Loaded() bool
	Stats() domain.ContentStats
	Definition(word, contextName string) domain.DefinitionResult
	SentenceExamples(word, contextName string) []domain.SentenceExample
	SimilarWords(word string) []domain.SimilarWord
}

type exerciseGenerator interface {
	Generate(in exercise.GenerateInput) ([]domain.Exercise, error)
	Capability(words []domain.WordRef, contextName string) domain.Capability
	QuizQuestions(in exercise.QuizInput) ([]domain.QuizQuestion, error)
}

type passageComposer interface {
	Compose(words []domain.WordRef, contextName string) domain.Passage
}

// ---------------------------------------------------------------------------
// Engines
// ---------------------------------------------------------------------------

// Engines holds the selected engine for every functional area.
type Engines struct {
	Definitions DefinitionEngine
	Vocabulary  VocabularyEngine
	Exercises   ExerciseEngine
	Quiz        QuizEngine

	mode domain.Mode
	log  *slog.Logger
}

// New selects the engines once from cfg.Mode. Manual mode wires thin
// façades over the store, generator and composer; model mode routes
// every area to the same model client.
func New(log *slog.Logger, cfg config.EngineConfig, st contentStore, gen exerciseGenerator, comp passageComposer, model ModelEngine) (*Engines, error) {
	mode := domain.Mode(cfg.Mode)
	if !mode.IsValid() {
		return nil, fmt.Errorf("engine mode %q: %w", cfg.Mode, domain.ErrValidation)
	}

	e := &Engines{mode: mode, log: log.With("service", "modes")}
	switch mode {
	case domain.ModeManual:
		e.Definitions = &manualDefinitions{store: st}
		e.Vocabulary = &manualVocabulary{store: st, composer: comp}
		e.Exercises = &manualExercises{store: st, generator: gen}
		e.Quiz = &manualQuiz{store: st, generator: gen}
	case domain.ModeModel:
		if model == nil {
			return nil, fmt.Errorf("mode %q needs a model engine: %w", cfg.Mode, domain.ErrValidation)
		}
		e.Definitions = model
		e.Vocabulary = model
		e.Exercises = model
		e.Quiz = model
	}

	e.log.Info("engines selected", "mode", mode)
	return e, nil
}

// Mode reports the mode fixed at construction.
func (e *Engines) Mode() domain.Mode { return e.mode }

// Health collects every area engine's health, keyed by area name.
func (e *Engines) Health(ctx context.Context) map[string]domain.EngineHealth {
	return map[string]domain.EngineHealth{
		"definitions": e.Definitions.Health(ctx),
		"vocabulary":  e.Vocabulary.Health(ctx),
		"exercises":   e.Exercises.Health(ctx),
		"quiz":        e.Quiz.Health(ctx),
	}
}

// ValidateAnswer checks a learner's answer against the correct one.
// Pure normalization, identical in every mode.
func (e *Engines) ValidateAnswer(given, correct string) bool {
	return exercise.CheckAnswer(given, correct)
}
