package store

import (
	"context"
	"fmt"

	"github.com/vocabdeck/vocabdeck-backend/internal/domain"
)

// DefinitionUpdate describes a partial update to a stored definition.
// Nil fields are left unchanged; a non-nil Contextual replaces the
// whole contextual map.
type DefinitionUpdate struct {
	General       *string
	Contextual    map[string]string
	Difficulty    *domain.Difficulty
	PartOfSpeech  *string
	Pronunciation *string
	AudioFile     *string
}

// AddDefinition stores a new definition and writes it through to the
// default source file. In-memory state stays authoritative: if the file
// write fails the definition remains stored and the error is returned,
// so a later reload may lose it.
func (s *Store) AddDefinition(ctx context.Context, def domain.Definition) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	def.Word = domain.NormalizeWord(def.Word)
	if err := validateDefinition(def); err != nil {
		return err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if !s.loaded {
		return domain.ErrNotLoaded
	}
	if _, ok := s.st.definitions[def.Word]; ok {
		return fmt.Errorf("definition for %q: %w", def.Word, domain.ErrAlreadyExists)
	}

	def.Contextual = normalizeContextMap(def.Contextual)
	src := s.cfg.DefaultSource
	s.st.definitions[def.Word] = def
	s.st.defSource[def.Word] = src
	s.st.sourceWords[src] = append(s.st.sourceWords[src], def.Word)

	s.log.Info("definition added", "word", def.Word, "source", src)
	return s.writeSourceLocked(src)
}

// UpdateDefinition applies a partial update to an existing definition
// and rewrites its source file.
func (s *Store) UpdateDefinition(ctx context.Context, word string, upd DefinitionUpdate) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	w := domain.NormalizeWord(word)
	if w == "" {
		return domain.NewValidationError("word", "must not be empty")
	}
	if upd.Difficulty != nil && *upd.Difficulty != "" && !upd.Difficulty.IsValid() {
		return domain.NewValidationError("difficulty", fmt.Sprintf("unknown difficulty %q", *upd.Difficulty))
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if !s.loaded {
		return domain.ErrNotLoaded
	}
	def, ok := s.st.definitions[w]
	if !ok {
		return fmt.Errorf("definition for %q: %w", w, domain.ErrNotFound)
	}

	if upd.General != nil {
		def.General = *upd.General
	}
	if upd.Contextual != nil {
		def.Contextual = normalizeContextMap(upd.Contextual)
	}
	if upd.Difficulty != nil {
		def.Difficulty = *upd.Difficulty
	}
	if upd.PartOfSpeech != nil {
		def.PartOfSpeech = *upd.PartOfSpeech
	}
	if upd.Pronunciation != nil {
		def.Pronunciation = *upd.Pronunciation
	}
	if upd.AudioFile != nil {
		def.AudioFile = *upd.AudioFile
	}
	if def.General == "" && len(def.Contextual) == 0 {
		return domain.NewValidationError("general", "definition text is required")
	}
	s.st.definitions[w] = def

	s.log.Info("definition updated", "word", w)
	return s.writeSourceLocked(s.st.defSource[w])
}

// RemoveDefinition deletes a definition and rewrites its source file.
// Sentence examples, similar words, and distractors for the word stay.
func (s *Store) RemoveDefinition(ctx context.Context, word string) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	w := domain.NormalizeWord(word)
	if w == "" {
		return domain.NewValidationError("word", "must not be empty")
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if !s.loaded {
		return domain.ErrNotLoaded
	}
	src, ok := s.st.defSource[w]
	if !ok {
		return fmt.Errorf("definition for %q: %w", w, domain.ErrNotFound)
	}

	delete(s.st.definitions, w)
	delete(s.st.defSource, w)
	words := s.st.sourceWords[src]
	for i, existing := range words {
		if existing == w {
			s.st.sourceWords[src] = append(words[:i], words[i+1:]...)
			break
		}
	}
	if len(s.st.sourceWords[src]) == 0 {
		delete(s.st.sourceWords, src)
	}

	s.log.Info("definition removed", "word", w, "source", src)
	return s.writeSourceLocked(src)
}

// AddSentenceExample appends a curated example for a word and writes
// the word's sentence file through.
func (s *Store) AddSentenceExample(ctx context.Context, word string, ex domain.SentenceExample) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	w := domain.NormalizeWord(word)
	var fields []domain.FieldError
	if w == "" {
		fields = append(fields, domain.FieldError{Field: "word", Message: "must not be empty"})
	}
	if ex.Sentence == "" {
		fields = append(fields, domain.FieldError{Field: "sentence", Message: "must not be empty"})
	}
	if ex.Difficulty != "" && !ex.Difficulty.IsValid() {
		fields = append(fields, domain.FieldError{Field: "difficulty", Message: fmt.Sprintf("unknown difficulty %q", ex.Difficulty)})
	}
	if len(fields) > 0 {
		return domain.NewValidationErrors(fields)
	}
	ex.Context = domain.NormalizeWord(ex.Context)

	s.mu.Lock()
	defer s.mu.Unlock()

	if !s.loaded {
		return domain.ErrNotLoaded
	}
	s.st.sentences[w] = append(s.st.sentences[w], ex)

	s.log.Info("sentence example added", "word", w, "context", ex.Context)
	return s.files.WriteSentences(w, s.st.sentences[w])
}

// writeSourceLocked rewrites one definitions source file from the
// current in-memory state, preserving the file's word order. Callers
// must hold the write lock.
func (s *Store) writeSourceLocked(src string) error {
	words := s.st.sourceWords[src]
	defs := make([]domain.Definition, 0, len(words))
	for _, w := range words {
		defs = append(defs, s.st.definitions[w])
	}
	if err := s.files.WriteDefinitions(src, defs); err != nil {
		return fmt.Errorf("write source %q: %w", src, err)
	}
	return nil
}

func validateDefinition(def domain.Definition) error {
	var fields []domain.FieldError
	if def.Word == "" {
		fields = append(fields, domain.FieldError{Field: "word", Message: "must not be empty"})
	}
	if def.General == "" && len(def.Contextual) == 0 {
		fields = append(fields, domain.FieldError{Field: "general", Message: "definition text is required"})
	}
	if def.Difficulty != "" && !def.Difficulty.IsValid() {
		fields = append(fields, domain.FieldError{Field: "difficulty", Message: fmt.Sprintf("unknown difficulty %q", def.Difficulty)})
	}
	if len(fields) > 0 {
		return domain.NewValidationErrors(fields)
	}
	return nil
}
