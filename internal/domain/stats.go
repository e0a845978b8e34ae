package domain

import "time"

// ContentStats is an aggregate snapshot of the loaded content.
type ContentStats struct {
	Words          int                `json:"words"`
	Definitions    int                `json:"definitions"`
	Sentences      int                `json:"sentences"`
	SimilarEntries int                `json:"similar_entries"`
	Templates      int                `json:"templates"`
	DistractorKeys int                `json:"distractor_keys"`
	Contexts       []string           `json:"contexts,omitempty"`
	ByDifficulty   map[Difficulty]int `json:"by_difficulty,omitempty"`
	ByPartOfSpeech map[string]int     `json:"by_part_of_speech,omitempty"`
}

// ValidationReport is the result of the post-load content validation pass.
// Errors make the data set unusable (a word with no definition anywhere);
// warnings degrade generation quality but never block it.
type ValidationReport struct {
	Valid     bool      `json:"valid"`
	Errors    []string  `json:"errors,omitempty"`
	Warnings  []string  `json:"warnings,omitempty"`
	Words     int       `json:"words"`
	Contexts  []string  `json:"contexts,omitempty"`
	CheckedAt time.Time `json:"checked_at"`
}

// EngineHealth is one engine's slice of the health report: the mode it
// runs in, whether it can serve, and mode-specific details (loaded flag
// and counts for manual, credential and model id for model).
type EngineHealth struct {
	Mode      Mode           `json:"mode"`
	Available bool           `json:"available"`
	Details   map[string]any `json:"details,omitempty"`
}
