package domain

// Exercise is a single generated exercise for one word.
// Correct holds the answer as a literal string (never an option index),
// so shuffling Options can never invalidate it.
type Exercise struct {
	ID               string           `json:"id"`
	Type             ExerciseType     `json:"type"`
	Question         string           `json:"question"`
	Options          []string         `json:"options,omitempty"`
	Correct          string           `json:"correct"`
	Word             string           `json:"word"`
	Context          string           `json:"context,omitempty"`
	Difficulty       Difficulty       `json:"difficulty"`
	Explanation      string           `json:"explanation,omitempty"`
	DistractorOrigin DistractorOrigin `json:"distractor_origin,omitempty"`
}

// QuizQuestion is a single multiple-choice quiz question.
type QuizQuestion struct {
	ID               string           `json:"id"`
	Word             string           `json:"word"`
	Question         string           `json:"question"`
	Options          []string         `json:"options"`
	Correct          string           `json:"correct"`
	Context          string           `json:"context,omitempty"`
	Difficulty       Difficulty       `json:"difficulty"`
	Explanation      string           `json:"explanation,omitempty"`
	DistractorOrigin DistractorOrigin `json:"distractor_origin,omitempty"`
}

// Capability previews how well the store covers a word list before
// generation is attempted.
type Capability struct {
	CanGenerate  bool             `json:"can_generate"`
	TotalWords   int              `json:"total_words"`
	CoveredWords int              `json:"covered_words"`
	Missing      []string         `json:"missing,omitempty"`
	Details      []WordCapability `json:"details,omitempty"`
}

// WordCapability is the per-word slice of a Capability preview.
type WordCapability struct {
	Word               string `json:"word"`
	HasDefinition      bool   `json:"has_definition"`
	ExampleCount       int    `json:"example_count"`
	CuratedDistractors int    `json:"curated_distractors"`
}
