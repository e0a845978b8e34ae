package exercise

import (
	"fmt"
	"math/rand"
	"regexp"

	"github.com/google/uuid"

	"github.com/vocabdeck/vocabdeck-backend/internal/domain"
)

// blankMarker replaces the target word in blanked-out sentences.
const blankMarker = "_____"

// material is everything a builder may draw on for one word. Builders
// are pure: same material and rng state, same exercise.
type material struct {
	word        string
	meaning     string
	examples    []domain.SentenceExample
	distractors domain.DistractorPick
}

func buildExercise(rng *rand.Rand, t domain.ExerciseType, m material) domain.Exercise {
	switch t {
	case domain.ExerciseTypeFillInBlank:
		return fillInBlank(rng, m)
	case domain.ExerciseTypeMatching:
		return matching(rng, m)
	case domain.ExerciseTypeTrueFalse:
		return trueFalse(rng, m)
	case domain.ExerciseTypeSentenceCompletion:
		return sentenceCompletion(m)
	default:
		return multipleChoice(rng, m)
	}
}

// multipleChoice asks for the meaning among the correct one and the
// distractor pick, shuffled. Correct carries the meaning verbatim so
// scoring never depends on option order.
func multipleChoice(rng *rand.Rand, m material) domain.Exercise {
	options := make([]string, 0, 1+len(m.distractors.Values))
	options = append(options, m.meaning)
	options = append(options, m.distractors.Values...)
	shuffle(rng, options)

	return domain.Exercise{
		Question:    fmt.Sprintf("What does %q mean?", m.word),
		Options:     options,
		Correct:     m.meaning,
		Explanation: fmt.Sprintf("%q means: %s", m.word, m.meaning),
	}
}

// fillInBlank blanks the word out of a random example sentence. With no
// usable sentence it falls back to a template that names the meaning as
// the hint.
func fillInBlank(rng *rand.Rand, m material) domain.Exercise {
	if len(m.examples) > 0 {
		ex := m.examples[rng.Intn(len(m.examples))]
		if blanked, ok := blankWord(ex.Sentence, m.word); ok {
			return domain.Exercise{
				Question:    fmt.Sprintf("Fill in the blank: %s", blanked),
				Correct:     m.word,
				Explanation: m.meaning,
			}
		}
	}
	return domain.Exercise{
		Question:    fmt.Sprintf("Fill in the blank with the word that means %q: %s", m.meaning, blankMarker),
		Correct:     m.word,
		Explanation: m.meaning,
	}
}

// matching shares the option machinery of multipleChoice behind a match
// prompt.
func matching(rng *rand.Rand, m material) domain.Exercise {
	options := make([]string, 0, 1+len(m.distractors.Values))
	options = append(options, m.meaning)
	options = append(options, m.distractors.Values...)
	shuffle(rng, options)

	return domain.Exercise{
		Question:    fmt.Sprintf("Match the word %q to its meaning.", m.word),
		Options:     options,
		Correct:     m.meaning,
		Explanation: fmt.Sprintf("%q means: %s", m.word, m.meaning),
	}
}

// trueFalse states either the correct meaning or a distractor, with the
// boolean answer fixed in the same step so statement and answer cannot
// disagree.
func trueFalse(rng *rand.Rand, m material) domain.Exercise {
	shown := m.meaning
	correct := "true"
	if rng.Intn(2) == 1 && len(m.distractors.Values) > 0 {
		shown = m.distractors.Values[rng.Intn(len(m.distractors.Values))]
		correct = "false"
	}

	return domain.Exercise{
		Question:    fmt.Sprintf("True or false: %q means %q.", m.word, shown),
		Options:     []string{"true", "false"},
		Correct:     correct,
		Explanation: fmt.Sprintf("%q means: %s", m.word, m.meaning),
	}
}

// sentenceCompletion blanks the word out of the first example sentence
// that contains it; the fallback asks the learner to produce a sentence
// of their own.
func sentenceCompletion(m material) domain.Exercise {
	for _, ex := range m.examples {
		if blanked, ok := blankWord(ex.Sentence, m.word); ok {
			return domain.Exercise{
				Question:    fmt.Sprintf("Complete the sentence: %s", blanked),
				Correct:     m.word,
				Explanation: m.meaning,
			}
		}
	}
	return domain.Exercise{
		Question:    fmt.Sprintf("Use the word %q in a sentence.", m.word),
		Correct:     m.word,
		Explanation: m.meaning,
	}
}

// blankWord replaces every case-insensitive whole-word occurrence of
// word in sentence with the blank marker. ok is false when the sentence
// does not contain the word.
func blankWord(sentence, word string) (string, bool) {
	re, err := regexp.Compile(`(?i)\b` + regexp.QuoteMeta(word) + `\b`)
	if err != nil {
		return sentence, false
	}
	if !re.MatchString(sentence) {
		return sentence, false
	}
	return re.ReplaceAllString(sentence, blankMarker), true
}

func exerciseID(t domain.ExerciseType, word string) string {
	return fmt.Sprintf("%s_%s_%s", t, word, uuid.NewString())
}
