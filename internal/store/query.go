package store

import (
	"sort"

	"github.com/vocabdeck/vocabdeck-backend/internal/domain"
)

// distractorCount is the number of wrong options every generated
// exercise carries. Pools shorter than this are padded with fillers.
const distractorCount = 3

// fillerDistractors are generic meaning-shaped phrases used to pad
// distractor pools that have fewer than distractorCount curated
// entries. They are picked in order, skipping any that collide with
// an already chosen value.
var fillerDistractors = []string{
	"a kind of musical instrument",
	"a large sea creature",
	"an ancient farming tool",
	"a unit of distance",
	"a ceremonial garment",
	"a type of dwelling",
}

// Definition resolves the definition text for a word, preferring the
// contextual entry for contextName over the general one. A miss is not
// an error: the result carries Found=false and a presentable message.
func (s *Store) Definition(word, contextName string) domain.DefinitionResult {
	w := domain.NormalizeWord(word)
	c := domain.NormalizeWord(contextName)

	s.mu.RLock()
	defer s.mu.RUnlock()

	def, ok := s.st.definitions[w]
	if !ok {
		return domain.DefinitionNotFound(w)
	}
	text, matched, ok := def.Resolve(c)
	if !ok {
		return domain.DefinitionNotFound(w)
	}
	return domain.DefinitionResult{
		Word:           w,
		Text:           text,
		MatchedContext: matched,
		Found:          true,
	}
}

// FullDefinition returns the complete definition record for a word.
func (s *Store) FullDefinition(word string) (domain.Definition, bool) {
	w := domain.NormalizeWord(word)

	s.mu.RLock()
	defer s.mu.RUnlock()

	def, ok := s.st.definitions[w]
	if !ok {
		return domain.Definition{}, false
	}
	return copyDefinition(def), true
}

// SentenceExamples returns the curated examples for a word. A non-empty
// contextName keeps only examples tagged with that context; an empty one
// returns all examples in file order.
func (s *Store) SentenceExamples(word, contextName string) []domain.SentenceExample {
	w := domain.NormalizeWord(word)
	c := domain.NormalizeWord(contextName)

	s.mu.RLock()
	defer s.mu.RUnlock()

	examples := s.st.sentences[w]
	out := make([]domain.SentenceExample, 0, len(examples))
	for _, ex := range examples {
		if c != "" && ex.Context != c {
			continue
		}
		out = append(out, copySentence(ex))
	}
	return out
}

// SimilarWords returns the curated similar-word entries for a word in
// file order.
func (s *Store) SimilarWords(word string) []domain.SimilarWord {
	w := domain.NormalizeWord(word)

	s.mu.RLock()
	defer s.mu.RUnlock()

	words := s.st.similar[w]
	out := make([]domain.SimilarWord, len(words))
	copy(out, words)
	return out
}

// Templates returns the exercise templates for a context. An empty
// contextName flattens every context in sorted order.
func (s *Store) Templates(contextName string) []domain.ExerciseTemplate {
	c := domain.NormalizeWord(contextName)

	s.mu.RLock()
	defer s.mu.RUnlock()

	if c != "" {
		tpls := s.st.templates[c]
		out := make([]domain.ExerciseTemplate, len(tpls))
		for i, tpl := range tpls {
			out[i] = copyTemplate(tpl)
		}
		return out
	}

	contexts := make([]string, 0, len(s.st.templates))
	for name := range s.st.templates {
		contexts = append(contexts, name)
	}
	sort.Strings(contexts)

	var out []domain.ExerciseTemplate
	for _, name := range contexts {
		for _, tpl := range s.st.templates[name] {
			out = append(out, copyTemplate(tpl))
		}
	}
	return out
}

// Distractors assembles exactly distractorCount wrong options for a
// word. The context-specific pool keyed "<context>_<word>" wins over the
// word pool when it has any entries; whichever pool is chosen, the first
// entries in file order are taken and fillers pad the remainder. Origin
// reports how much of the result is curated.
func (s *Store) Distractors(word, contextName string) domain.DistractorPick {
	w := domain.NormalizeWord(word)
	c := domain.NormalizeWord(contextName)

	s.mu.RLock()
	defer s.mu.RUnlock()

	pool := s.distractorPoolLocked(w, c)
	curated := len(pool)
	if curated > distractorCount {
		curated = distractorCount
	}

	values := make([]string, 0, distractorCount)
	values = append(values, pool[:curated]...)
	for _, filler := range fillerDistractors {
		if len(values) == distractorCount {
			break
		}
		if contains(values, filler) {
			continue
		}
		values = append(values, filler)
	}

	origin := domain.DistractorOriginMixed
	switch curated {
	case distractorCount:
		origin = domain.DistractorOriginCurated
	case 0:
		origin = domain.DistractorOriginSynthesized
	}
	return domain.DistractorPick{Values: values, Origin: origin}
}

// CuratedDistractorCount reports how many curated distractors exist for
// a word, counting the context pool when it is non-empty and the word
// pool otherwise.
func (s *Store) CuratedDistractorCount(word, contextName string) int {
	w := domain.NormalizeWord(word)
	c := domain.NormalizeWord(contextName)

	s.mu.RLock()
	defer s.mu.RUnlock()

	return len(s.distractorPoolLocked(w, c))
}

func (s *Store) distractorPoolLocked(w, c string) []string {
	if c != "" {
		if pool := s.st.distractors[compositeKey(c, w)]; len(pool) > 0 {
			return pool
		}
	}
	return s.st.distractors[w]
}

// HasWord reports whether a definition exists for the word.
func (s *Store) HasWord(word string) bool {
	w := domain.NormalizeWord(word)

	s.mu.RLock()
	defer s.mu.RUnlock()

	_, ok := s.st.definitions[w]
	return ok
}

// AllWords returns the sorted union of all words that have a
// definition, sentence examples, or similar-word entries. Distractor
// pools do not contribute: their composite keys cannot be attributed
// to a word without guessing where the context prefix ends.
func (s *Store) AllWords() []string {
	s.mu.RLock()
	defer s.mu.RUnlock()

	seen := make(map[string]struct{}, len(s.st.definitions))
	for w := range s.st.definitions {
		seen[w] = struct{}{}
	}
	for w := range s.st.sentences {
		seen[w] = struct{}{}
	}
	for w := range s.st.similar {
		seen[w] = struct{}{}
	}

	words := make([]string, 0, len(seen))
	for w := range seen {
		words = append(words, w)
	}
	sort.Strings(words)
	return words
}

// AllDefinitions returns every definition sorted by word, for export.
func (s *Store) AllDefinitions() []domain.Definition {
	s.mu.RLock()
	defer s.mu.RUnlock()

	words := make([]string, 0, len(s.st.definitions))
	for w := range s.st.definitions {
		words = append(words, w)
	}
	sort.Strings(words)

	out := make([]domain.Definition, 0, len(words))
	for _, w := range words {
		out = append(out, copyDefinition(s.st.definitions[w]))
	}
	return out
}

// AllSentences returns every sentence example keyed by word, for export.
func (s *Store) AllSentences() map[string][]domain.SentenceExample {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make(map[string][]domain.SentenceExample, len(s.st.sentences))
	for w, examples := range s.st.sentences {
		copied := make([]domain.SentenceExample, len(examples))
		for i, ex := range examples {
			copied[i] = copySentence(ex)
		}
		out[w] = copied
	}
	return out
}

func copyDefinition(def domain.Definition) domain.Definition {
	contextual := make(map[string]string, len(def.Contextual))
	for k, v := range def.Contextual {
		contextual[k] = v
	}
	def.Contextual = contextual
	return def
}

func copySentence(ex domain.SentenceExample) domain.SentenceExample {
	if ex.Translation != nil {
		t := *ex.Translation
		ex.Translation = &t
	}
	return ex
}

func copyTemplate(tpl domain.ExerciseTemplate) domain.ExerciseTemplate {
	distractors := make([]string, len(tpl.Distractors))
	copy(distractors, tpl.Distractors)
	tpl.Distractors = distractors
	return tpl
}

func contains(values []string, v string) bool {
	for _, existing := range values {
		if existing == v {
			return true
		}
	}
	return false
}
