package domain

// Definition is a curated dictionary definition for a single word.
// Contextual holds per-context overrides keyed by context name; General is
// the fallback when no contextual entry matches.
type Definition struct {
	Word          string            `json:"word"`
	General       string            `json:"general"`
	Contextual    map[string]string `json:"contextual,omitempty"`
	Difficulty    Difficulty        `json:"difficulty,omitempty"`
	PartOfSpeech  string            `json:"part_of_speech,omitempty"`
	Pronunciation string            `json:"pronunciation,omitempty"`
	AudioFile     string            `json:"audio_file,omitempty"`
}

// Resolve returns the definition text for the given context.
// A contextual entry wins over the general definition; the returned
// matched string is the context name that matched, or empty when the
// general definition was used. ok is false when the word has neither.
func (d Definition) Resolve(contextName string) (text, matched string, ok bool) {
	if contextName != "" {
		if t, found := d.Contextual[contextName]; found && t != "" {
			return t, contextName, true
		}
	}
	if d.General != "" {
		return d.General, "", true
	}
	return "", "", false
}

// SentenceExample is a curated usage example for a word.
type SentenceExample struct {
	Sentence    string     `json:"sentence"`
	Translation *string    `json:"translation,omitempty"`
	Context     string     `json:"context,omitempty"`
	Difficulty  Difficulty `json:"difficulty,omitempty"`
	AudioFile   string     `json:"audio_file,omitempty"`
	ContextNote string     `json:"context_note,omitempty"`
}

// SimilarWord is a curated synonym or near-synonym suggestion.
type SimilarWord struct {
	Word            string  `json:"word"`
	Meaning         string  `json:"meaning"`
	SimilarityScore float64 `json:"similarity_score"`
	UsageNote       string  `json:"usage_note,omitempty"`
}

// ExerciseTemplate is a curated per-context question template.
// Templates are loaded and exported alongside the other categories; the
// generator builds its questions from fixed per-type rules instead.
type ExerciseTemplate struct {
	Type             ExerciseType `json:"type"`
	QuestionTemplate string       `json:"question_template"`
	Distractors      []string     `json:"distractors,omitempty"`
	Context          string       `json:"context,omitempty"`
	Difficulty       Difficulty   `json:"difficulty,omitempty"`
}

// WordRef is a word item supplied by the caller, in the shape the list
// layer uses. Meaning is carried for the model engine's prompts; the
// manual engine resolves meanings exclusively through the content store.
type WordRef struct {
	ID      string `json:"id"`
	Value   string `json:"value"`
	Meaning string `json:"meaning,omitempty"`
}
