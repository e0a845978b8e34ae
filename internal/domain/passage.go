package domain

// Passage is a short composed reading text that embeds vocabulary words
// inside curated example sentences.
type Passage struct {
	Text             string        `json:"text"`
	Context          string        `json:"context,omitempty"`
	Words            []PassageWord `json:"words"`
	WordsIncluded    int           `json:"words_included"`
	TotalWordsInList int           `json:"total_words_in_list"`
	ReadingTimeMin   int           `json:"reading_time_minutes"`
}

// PassageWord marks one included word for client-side highlighting.
// Offset is the byte offset of the word's occurrence within Text.
type PassageWord struct {
	Word    string `json:"word"`
	Meaning string `json:"meaning,omitempty"`
	Offset  int    `json:"offset"`
}
