package domain

import "fmt"

// DefinitionResult is the outcome of a definition lookup. Callers branch
// on Found; Message renders the display text, including the legacy
// not-found sentinel that embeds the looked-up word.
type DefinitionResult struct {
	Word           string `json:"word"`
	Text           string `json:"text,omitempty"`
	MatchedContext string `json:"matched_context,omitempty"`
	Found          bool   `json:"found"`
}

// Message returns the definition text, or the not-found sentinel for
// display surfaces.
func (r DefinitionResult) Message() string {
	if r.Found {
		return r.Text
	}
	return fmt.Sprintf("Definition not found for %q", r.Word)
}

// DefinitionNotFound builds the NotFound result for a word.
func DefinitionNotFound(word string) DefinitionResult {
	return DefinitionResult{Word: word}
}

// DistractorPick is a resolved set of exactly three wrong answers for a
// word, with the provenance of the set recorded in Origin.
type DistractorPick struct {
	Values []string         `json:"values"`
	Origin DistractorOrigin `json:"origin"`
}
