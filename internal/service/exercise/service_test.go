package exercise

import (
	"io"
	"log/slog"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vocabdeck/vocabdeck-backend/internal/config"
	"github.com/vocabdeck/vocabdeck-backend/internal/domain"
)

// ===========================================================================
// Manual mocks (moq-style with func fields)
// ===========================================================================

var testFillers = []string{"a kind of pastry", "a unit of weight", "a sailing maneuver"}

type mockStore struct {
	DefinitionFunc             func(word, contextName string) domain.DefinitionResult
	FullDefinitionFunc         func(word string) (domain.Definition, bool)
	SentenceExamplesFunc       func(word, contextName string) []domain.SentenceExample
	DistractorsFunc            func(word, contextName string) domain.DistractorPick
	CuratedDistractorCountFunc func(word, contextName string) int
}

func (m *mockStore) Definition(word, contextName string) domain.DefinitionResult {
	if m.DefinitionFunc != nil {
		return m.DefinitionFunc(word, contextName)
	}
	return domain.DefinitionNotFound(word)
}

func (m *mockStore) FullDefinition(word string) (domain.Definition, bool) {
	if m.FullDefinitionFunc != nil {
		return m.FullDefinitionFunc(word)
	}
	return domain.Definition{}, false
}

func (m *mockStore) SentenceExamples(word, contextName string) []domain.SentenceExample {
	if m.SentenceExamplesFunc != nil {
		return m.SentenceExamplesFunc(word, contextName)
	}
	return nil
}

func (m *mockStore) Distractors(word, contextName string) domain.DistractorPick {
	if m.DistractorsFunc != nil {
		return m.DistractorsFunc(word, contextName)
	}
	return domain.DistractorPick{Values: testFillers, Origin: domain.DistractorOriginSynthesized}
}

func (m *mockStore) CuratedDistractorCount(word, contextName string) int {
	if m.CuratedDistractorCountFunc != nil {
		return m.CuratedDistractorCountFunc(word, contextName)
	}
	return 0
}

// storeWithWords builds a mock whose definitions come from a plain
// word→meaning map.
func storeWithWords(meanings map[string]string) *mockStore {
	return &mockStore{
		DefinitionFunc: func(word, contextName string) domain.DefinitionResult {
			text, ok := meanings[word]
			if !ok {
				return domain.DefinitionNotFound(word)
			}
			return domain.DefinitionResult{Word: word, Text: text, Found: true}
		},
	}
}

func testLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func testGenCfg() config.GenerationConfig {
	return config.GenerationConfig{
		MaxWordsPerRequest: 50,
		DefaultQuizSize:    10,
		MaxExamples:        20,
		MaxSimilarWords:    10,
		Seed:               42,
	}
}

func newTestService(store contentStore, opts ...Option) *Service {
	return NewService(testLogger(), store, testGenCfg(), opts...)
}

func refs(words ...string) []domain.WordRef {
	out := make([]domain.WordRef, len(words))
	for i, w := range words {
		out[i] = domain.WordRef{ID: w, Value: w}
	}
	return out
}

// ===========================================================================
// Generate
// ===========================================================================

func TestService_Generate(t *testing.T) {
	t.Parallel()

	t.Run("one exercise per covered word", func(t *testing.T) {
		t.Parallel()
		svc := newTestService(storeWithWords(map[string]string{
			"ocean":   "a very large expanse of sea",
			"harvest": "the gathering of ripened crops",
		}))

		exercises, err := svc.Generate(GenerateInput{
			Words: refs("ocean", "harvest"),
			Types: []domain.ExerciseType{domain.ExerciseTypeMultipleChoice},
		})
		require.NoError(t, err)

		require.Len(t, exercises, 2)
		assert.Equal(t, "ocean", exercises[0].Word)
		assert.Equal(t, "harvest", exercises[1].Word)
		for _, ex := range exercises {
			assert.Equal(t, domain.ExerciseTypeMultipleChoice, ex.Type)
			assert.True(t, strings.HasPrefix(ex.ID, "multiple_choice_"+ex.Word+"_"), "id = %q", ex.ID)
			assert.NotEmpty(t, ex.Question)
			assert.Contains(t, ex.Options, ex.Correct)
		}
	})

	t.Run("words without a definition are skipped", func(t *testing.T) {
		t.Parallel()
		svc := newTestService(storeWithWords(map[string]string{
			"ocean": "a very large expanse of sea",
		}))

		exercises, err := svc.Generate(GenerateInput{
			Words: refs("ocean", "zephyr", "quasar"),
			Types: []domain.ExerciseType{domain.ExerciseTypeMultipleChoice},
		})
		require.NoError(t, err)

		require.Len(t, exercises, 1)
		assert.Equal(t, "ocean", exercises[0].Word)
	})

	t.Run("unknown word with caller-supplied meaning still skipped", func(t *testing.T) {
		t.Parallel()
		svc := newTestService(storeWithWords(nil))

		exercises, err := svc.Generate(GenerateInput{
			Words:   []domain.WordRef{{ID: "1", Value: "zephyr", Meaning: "???"}},
			Context: "daily",
			Types:   []domain.ExerciseType{domain.ExerciseTypeMultipleChoice},
		})
		require.NoError(t, err)
		assert.Empty(t, exercises)
	})

	t.Run("meaning comes from the store, not the caller", func(t *testing.T) {
		t.Parallel()
		svc := newTestService(storeWithWords(map[string]string{
			"ocean": "a very large expanse of sea",
		}))

		exercises, err := svc.Generate(GenerateInput{
			Words: []domain.WordRef{{ID: "1", Value: "ocean", Meaning: "caller-supplied meaning"}},
			Types: []domain.ExerciseType{domain.ExerciseTypeMultipleChoice},
		})
		require.NoError(t, err)

		require.Len(t, exercises, 1)
		assert.Equal(t, "a very large expanse of sea", exercises[0].Correct)
	})

	t.Run("types outside the allowed set never appear", func(t *testing.T) {
		t.Parallel()
		meanings := make(map[string]string, 60)
		words := make([]string, 0, 60)
		for _, w := range strings.Fields(strings.Repeat("alpha beta gamma delta epsilon zeta eta theta iota kappa ", 5)) {
			if _, ok := meanings[w]; ok {
				continue
			}
			meanings[w] = "meaning of " + w
			words = append(words, w)
		}
		svc := newTestService(storeWithWords(meanings))

		allowed := []domain.ExerciseType{domain.ExerciseTypeTrueFalse, domain.ExerciseTypeFillInBlank}
		var produced []domain.Exercise
		for i := 0; i < 10; i++ {
			exercises, err := svc.Generate(GenerateInput{Words: refs(words...), Types: allowed})
			require.NoError(t, err)
			produced = append(produced, exercises...)
		}

		seen := make(map[domain.ExerciseType]int)
		for _, ex := range produced {
			seen[ex.Type]++
		}
		assert.Len(t, seen, 2, "both allowed types should be produced")
		assert.Positive(t, seen[domain.ExerciseTypeTrueFalse])
		assert.Positive(t, seen[domain.ExerciseTypeFillInBlank])
	})

	t.Run("fixed seed is reproducible", func(t *testing.T) {
		t.Parallel()
		meanings := map[string]string{"ocean": "a very large expanse of sea"}

		a, err := newTestService(storeWithWords(meanings)).Generate(GenerateInput{
			Words: refs("ocean"),
			Types: domain.AllExerciseTypes(),
		})
		require.NoError(t, err)
		b, err := newTestService(storeWithWords(meanings)).Generate(GenerateInput{
			Words: refs("ocean"),
			Types: domain.AllExerciseTypes(),
		})
		require.NoError(t, err)

		require.Len(t, a, 1)
		require.Len(t, b, 1)
		assert.Equal(t, a[0].Type, b[0].Type)
		assert.Equal(t, a[0].Question, b[0].Question)
		assert.Equal(t, a[0].Options, b[0].Options)
	})

	t.Run("difficulty prefers curated metadata", func(t *testing.T) {
		t.Parallel()
		store := storeWithWords(map[string]string{"ocean": "a very large expanse of sea"})
		store.FullDefinitionFunc = func(word string) (domain.Definition, bool) {
			return domain.Definition{Word: word, Difficulty: domain.DifficultyAdvanced}, true
		}
		svc := newTestService(store)

		exercises, err := svc.Generate(GenerateInput{
			Words: refs("ocean"),
			Types: []domain.ExerciseType{domain.ExerciseTypeMultipleChoice},
		})
		require.NoError(t, err)
		require.Len(t, exercises, 1)
		assert.Equal(t, domain.DifficultyAdvanced, exercises[0].Difficulty)
	})

	t.Run("distractor origin carried on option types", func(t *testing.T) {
		t.Parallel()
		store := storeWithWords(map[string]string{"ocean": "a very large expanse of sea"})
		store.DistractorsFunc = func(word, contextName string) domain.DistractorPick {
			return domain.DistractorPick{
				Values: []string{"a pond", "a hill", testFillers[0]},
				Origin: domain.DistractorOriginMixed,
			}
		}
		svc := newTestService(store)

		exercises, err := svc.Generate(GenerateInput{
			Words: refs("ocean"),
			Types: []domain.ExerciseType{domain.ExerciseTypeMultipleChoice},
		})
		require.NoError(t, err)
		require.Len(t, exercises, 1)
		assert.Equal(t, domain.DistractorOriginMixed, exercises[0].DistractorOrigin)
	})

	t.Run("validation", func(t *testing.T) {
		t.Parallel()
		svc := newTestService(storeWithWords(nil))

		tests := []struct {
			name string
			in   GenerateInput
		}{
			{name: "no words", in: GenerateInput{Types: domain.AllExerciseTypes()}},
			{name: "no types", in: GenerateInput{Words: refs("ocean")}},
			{name: "unknown type", in: GenerateInput{Words: refs("ocean"), Types: []domain.ExerciseType{"crossword"}}},
		}
		for _, tt := range tests {
			t.Run(tt.name, func(t *testing.T) {
				_, err := svc.Generate(tt.in)
				require.ErrorIs(t, err, domain.ErrValidation)
			})
		}
	})

	t.Run("too many words", func(t *testing.T) {
		t.Parallel()
		svc := newTestService(storeWithWords(nil))

		words := make([]domain.WordRef, 51)
		for i := range words {
			words[i] = domain.WordRef{Value: "w"}
		}
		_, err := svc.Generate(GenerateInput{Words: words, Types: domain.AllExerciseTypes()})
		require.ErrorIs(t, err, domain.ErrValidation)
	})
}

func TestService_Capability(t *testing.T) {
	t.Parallel()

	store := storeWithWords(map[string]string{
		"ocean":   "a very large expanse of sea",
		"harvest": "the gathering of ripened crops",
	})
	store.SentenceExamplesFunc = func(word, contextName string) []domain.SentenceExample {
		if word == "ocean" {
			return []domain.SentenceExample{{Sentence: "The ocean was calm."}}
		}
		return nil
	}
	store.CuratedDistractorCountFunc = func(word, contextName string) int {
		if word == "ocean" {
			return 4
		}
		return 0
	}
	svc := newTestService(store)

	preview := svc.Capability(refs("ocean", "harvest", "zephyr"), "daily")

	assert.True(t, preview.CanGenerate)
	assert.Equal(t, 3, preview.TotalWords)
	assert.Equal(t, 2, preview.CoveredWords)
	assert.Equal(t, []string{"zephyr"}, preview.Missing)

	require.Len(t, preview.Details, 3)
	assert.Equal(t, domain.WordCapability{
		Word: "ocean", HasDefinition: true, ExampleCount: 1, CuratedDistractors: 4,
	}, preview.Details[0])
	assert.Equal(t, domain.WordCapability{
		Word: "harvest", HasDefinition: true,
	}, preview.Details[1])
	assert.False(t, preview.Details[2].HasDefinition)
}

func TestService_Capability_NoCoverage(t *testing.T) {
	t.Parallel()
	svc := newTestService(storeWithWords(nil))

	preview := svc.Capability(refs("zephyr"), "")

	assert.False(t, preview.CanGenerate)
	assert.Equal(t, 1, preview.TotalWords)
	assert.Zero(t, preview.CoveredWords)
}
