package store

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vocabdeck/vocabdeck-backend/internal/adapter/contentdir"
	"github.com/vocabdeck/vocabdeck-backend/internal/domain"
)

func TestStore_Definition(t *testing.T) {
	t.Parallel()
	s, _ := loadedTestStore(t)

	tests := []struct {
		name        string
		word        string
		contextName string
		wantFound   bool
		wantText    string
		wantMatched string
	}{
		{
			name:      "general definition",
			word:      "ocean",
			wantFound: true,
			wantText:  "a very large expanse of sea",
		},
		{
			name:        "contextual entry wins",
			word:        "ocean",
			contextName: "marine",
			wantFound:   true,
			wantText:    "the salt water body covering most of the planet",
			wantMatched: "marine",
		},
		{
			name:        "unknown context falls back to general",
			word:        "ocean",
			contextName: "finance",
			wantFound:   true,
			wantText:    "a very large expanse of sea",
		},
		{
			name:        "word is normalized before lookup",
			word:        "  OCEAN ",
			contextName: "MARINE",
			wantFound:   true,
			wantText:    "the salt water body covering most of the planet",
			wantMatched: "marine",
		},
		{
			name: "unknown word",
			word: "quasar",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			res := s.Definition(tt.word, tt.contextName)

			assert.Equal(t, tt.wantFound, res.Found)
			assert.Equal(t, tt.wantText, res.Text)
			assert.Equal(t, tt.wantMatched, res.MatchedContext)
		})
	}

	t.Run("not found message embeds the word", func(t *testing.T) {
		t.Parallel()
		res := s.Definition("Quasar", "")
		assert.False(t, res.Found)
		assert.Equal(t, `Definition not found for "quasar"`, res.Message())
	})
}

func TestStore_SentenceExamples(t *testing.T) {
	t.Parallel()
	s, _ := loadedTestStore(t)

	t.Run("all contexts", func(t *testing.T) {
		t.Parallel()
		examples := s.SentenceExamples("ocean", "")
		require.Len(t, examples, 2)
		assert.Equal(t, "The ocean was calm at dawn.", examples[0].Sentence)
	})

	t.Run("filtered by context", func(t *testing.T) {
		t.Parallel()
		examples := s.SentenceExamples("ocean", "ecology")
		require.Len(t, examples, 1)
		assert.Equal(t, "Plastic waste is choking the ocean.", examples[0].Sentence)
	})

	t.Run("context with no examples", func(t *testing.T) {
		t.Parallel()
		assert.Empty(t, s.SentenceExamples("ocean", "finance"))
	})

	t.Run("unknown word", func(t *testing.T) {
		t.Parallel()
		assert.Empty(t, s.SentenceExamples("quasar", ""))
	})
}

func TestStore_SimilarWords(t *testing.T) {
	t.Parallel()
	s, _ := loadedTestStore(t)

	words := s.SimilarWords("ocean")
	require.Len(t, words, 2)
	assert.Equal(t, "sea", words[0].Word)
	assert.Equal(t, "gulf", words[1].Word)

	assert.Empty(t, s.SimilarWords("harvest"))
}

func TestStore_Templates(t *testing.T) {
	t.Parallel()
	s, _ := loadedTestStore(t)

	t.Run("by context", func(t *testing.T) {
		t.Parallel()
		tpls := s.Templates("marine")
		require.Len(t, tpls, 1)
		assert.Equal(t, domain.ExerciseTypeMultipleChoice, tpls[0].Type)
	})

	t.Run("empty context flattens all", func(t *testing.T) {
		t.Parallel()
		tpls := s.Templates("")
		assert.Len(t, tpls, 1)
	})

	t.Run("unknown context", func(t *testing.T) {
		t.Parallel()
		assert.Empty(t, s.Templates("finance"))
	})
}

func TestStore_Distractors(t *testing.T) {
	t.Parallel()
	s, _ := loadedTestStore(t)

	t.Run("word pool, fully curated", func(t *testing.T) {
		t.Parallel()
		pick := s.Distractors("ocean", "")

		assert.Equal(t, domain.DistractorOriginCurated, pick.Origin)
		assert.Equal(t, []string{"a narrow mountain pass", "a grain silo", "a city square"}, pick.Values)
	})

	t.Run("context pool wins even when short", func(t *testing.T) {
		t.Parallel()
		pick := s.Distractors("ocean", "marine")

		assert.Equal(t, domain.DistractorOriginMixed, pick.Origin)
		require.Len(t, pick.Values, 3)
		assert.Equal(t, "a naval signal flag", pick.Values[0])
		assert.Equal(t, "a tidal chart", pick.Values[1])
		assert.Contains(t, fillerDistractors, pick.Values[2])
	})

	t.Run("no pool synthesizes fillers", func(t *testing.T) {
		t.Parallel()
		pick := s.Distractors("harvest", "")

		assert.Equal(t, domain.DistractorOriginSynthesized, pick.Origin)
		require.Len(t, pick.Values, 3)
		for _, v := range pick.Values {
			assert.Contains(t, fillerDistractors, v)
		}
	})

	t.Run("context without pool uses word pool", func(t *testing.T) {
		t.Parallel()
		pick := s.Distractors("ocean", "ecology")

		assert.Equal(t, domain.DistractorOriginCurated, pick.Origin)
		assert.Equal(t, []string{"a narrow mountain pass", "a grain silo", "a city square"}, pick.Values)
	})
}

func TestStore_CuratedDistractorCount(t *testing.T) {
	t.Parallel()
	s, _ := loadedTestStore(t)

	assert.Equal(t, 4, s.CuratedDistractorCount("ocean", ""))
	assert.Equal(t, 2, s.CuratedDistractorCount("ocean", "marine"))
	assert.Equal(t, 0, s.CuratedDistractorCount("harvest", ""))
}

func TestStore_AllWords(t *testing.T) {
	t.Parallel()
	s, dir := loadedTestStore(t)

	// A word present only in the similar category still counts.
	writeCategoryJSON(t, dir.Root(), contentdir.SimilarDir, "tide", []domain.SimilarWord{
		{Word: "current", Meaning: "a steady flow of water", SimilarityScore: 0.7},
	})
	require.NoError(t, s.Reload(context.Background()))

	assert.Equal(t, []string{"harvest", "ocean", "tide"}, s.AllWords())
}

func TestStore_HasWord(t *testing.T) {
	t.Parallel()
	s, _ := loadedTestStore(t)

	assert.True(t, s.HasWord("ocean"))
	assert.True(t, s.HasWord(" Ocean "))
	assert.False(t, s.HasWord("quasar"))
}

func TestStore_Stats(t *testing.T) {
	t.Parallel()
	s, _ := loadedTestStore(t)

	stats := s.Stats()

	assert.Equal(t, 2, stats.Words)
	assert.Equal(t, 2, stats.Definitions)
	assert.Equal(t, 2, stats.Sentences)
	assert.Equal(t, 2, stats.SimilarEntries)
	assert.Equal(t, 1, stats.Templates)
	assert.Equal(t, 2, stats.DistractorKeys)
	assert.Equal(t, []string{"ecology", "marine"}, stats.Contexts)
	assert.Equal(t, 1, stats.ByDifficulty[domain.DifficultyBeginner])
	assert.Equal(t, 1, stats.ByDifficulty[domain.DifficultyIntermediate])
	assert.Equal(t, 2, stats.ByPartOfSpeech["noun"])
}

func TestStore_QueriesReturnCopies(t *testing.T) {
	t.Parallel()
	s, _ := loadedTestStore(t)

	examples := s.SentenceExamples("ocean", "")
	require.NotEmpty(t, examples)
	examples[0].Sentence = "mutated"

	again := s.SentenceExamples("ocean", "")
	assert.Equal(t, "The ocean was calm at dawn.", again[0].Sentence)

	def, ok := s.FullDefinition("ocean")
	require.True(t, ok)
	def.Contextual["marine"] = "mutated"

	res := s.Definition("ocean", "marine")
	assert.Equal(t, "the salt water body covering most of the planet", res.Text)
}
