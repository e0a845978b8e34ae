package exercise

import (
	"unicode/utf8"

	"github.com/vocabdeck/vocabdeck-backend/internal/domain"
)

// DifficultyFn decides the difficulty attached to a generated exercise.
// curated is the difficulty from the word's stored definition, possibly
// empty.
type DifficultyFn func(word string, curated domain.Difficulty) domain.Difficulty

// DefaultDifficulty prefers curated difficulty metadata and falls back
// to a word-length approximation. The length thresholds are a stand-in
// for real linguistic metadata, which is why the strategy is pluggable.
func DefaultDifficulty(word string, curated domain.Difficulty) domain.Difficulty {
	if curated.IsValid() {
		return curated
	}
	switch n := utf8.RuneCountInString(word); {
	case n <= 4:
		return domain.DifficultyBeginner
	case n <= 8:
		return domain.DifficultyIntermediate
	default:
		return domain.DifficultyAdvanced
	}
}
