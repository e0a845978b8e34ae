package store

import (
	"context"
	"fmt"
	"log/slog"
	"sort"

	"golang.org/x/sync/errgroup"

	"github.com/vocabdeck/vocabdeck-backend/internal/domain"
)

// LoadAll loads every content category from the backing directory.
// It is idempotent after the first success: later calls return
// immediately without touching the filesystem. Concurrent callers
// coalesce onto a single in-flight load. A failed load leaves the
// previous state (or the initial empty state) untouched.
func (s *Store) LoadAll(ctx context.Context) error {
	if s.Loaded() {
		return nil
	}
	return s.doLoad(ctx)
}

// Reload unconditionally re-reads the content directory and swaps the
// new state in. It is the only way to reset store state; external file
// edits are invisible until a reload.
func (s *Store) Reload(ctx context.Context) error {
	return s.doLoad(ctx)
}

func (s *Store) doLoad(ctx context.Context) error {
	_, err, _ := s.sf.Do("load", func() (any, error) {
		return nil, s.load(ctx)
	})
	return err
}

func (s *Store) load(ctx context.Context) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	if err := s.files.EnsureLayout(); err != nil {
		return fmt.Errorf("ensure layout: %w", err)
	}

	var (
		defsBySource map[string][]domain.Definition
		sentences    map[string][]domain.SentenceExample
		similar      map[string][]domain.SimilarWord
		templates    map[string][]domain.ExerciseTemplate
		distractors  map[string][]string
	)

	var g errgroup.Group
	g.Go(func() error {
		var err error
		if defsBySource, err = s.files.ReadDefinitions(); err != nil {
			return fmt.Errorf("load definitions: %w", err)
		}
		return nil
	})
	g.Go(func() error {
		var err error
		if sentences, err = s.files.ReadSentences(); err != nil {
			return fmt.Errorf("load sentences: %w", err)
		}
		return nil
	})
	g.Go(func() error {
		var err error
		if similar, err = s.files.ReadSimilar(); err != nil {
			return fmt.Errorf("load similar words: %w", err)
		}
		return nil
	})
	g.Go(func() error {
		var err error
		if templates, err = s.files.ReadTemplates(); err != nil {
			return fmt.Errorf("load templates: %w", err)
		}
		return nil
	})
	g.Go(func() error {
		var err error
		if distractors, err = s.files.ReadDistractors(); err != nil {
			return fmt.Errorf("load distractors: %w", err)
		}
		return nil
	})
	if err := g.Wait(); err != nil {
		return err
	}

	next := s.buildState(defsBySource, sentences, similar, templates, distractors)

	s.mu.Lock()
	s.st = next
	s.loaded = true
	s.mu.Unlock()

	s.log.Info("content loaded",
		slog.Int("definitions", len(next.definitions)),
		slog.Int("sentence_words", len(next.sentences)),
		slog.Int("similar_words", len(next.similar)),
		slog.Int("template_contexts", len(next.templates)),
		slog.Int("distractor_keys", len(next.distractors)),
	)
	return nil
}

// buildState normalizes raw category maps into one state generation.
// Definition sources are visited in sorted order; the first source to
// define a word wins and later duplicates are dropped with a warning,
// keeping word-to-source-file tracking unambiguous for write-through.
func (s *Store) buildState(
	defsBySource map[string][]domain.Definition,
	sentences map[string][]domain.SentenceExample,
	similar map[string][]domain.SimilarWord,
	templates map[string][]domain.ExerciseTemplate,
	distractors map[string][]string,
) state {
	next := newState()

	sources := make([]string, 0, len(defsBySource))
	for src := range defsBySource {
		sources = append(sources, src)
	}
	sort.Strings(sources)

	for _, src := range sources {
		for _, def := range defsBySource[src] {
			w := domain.NormalizeWord(def.Word)
			if w == "" {
				s.log.Warn("skipping definition with empty word", slog.String("source", src))
				continue
			}
			if prev, ok := next.defSource[w]; ok {
				s.log.Warn("duplicate definition dropped",
					slog.String("word", w),
					slog.String("kept_source", prev),
					slog.String("dropped_source", src),
				)
				continue
			}
			def.Word = w
			def.Contextual = normalizeContextMap(def.Contextual)
			next.definitions[w] = def
			next.defSource[w] = src
			next.sourceWords[src] = append(next.sourceWords[src], w)
		}
	}

	for word, examples := range sentences {
		w := domain.NormalizeWord(word)
		if w == "" {
			continue
		}
		for i := range examples {
			examples[i].Context = domain.NormalizeWord(examples[i].Context)
		}
		next.sentences[w] = examples
	}

	for word, words := range similar {
		if w := domain.NormalizeWord(word); w != "" {
			next.similar[w] = words
		}
	}

	for contextName, tpls := range templates {
		if c := domain.NormalizeWord(contextName); c != "" {
			next.templates[c] = tpls
		}
	}

	for key, pool := range distractors {
		if k := domain.NormalizeWord(key); k != "" {
			next.distractors[k] = pool
		}
	}

	return next
}

// normalizeContextMap lowercases contextual keys and drops empty entries.
// The result is never nil.
func normalizeContextMap(contextual map[string]string) map[string]string {
	out := make(map[string]string, len(contextual))
	for contextName, text := range contextual {
		c := domain.NormalizeWord(contextName)
		if c == "" || text == "" {
			continue
		}
		out[c] = text
	}
	return out
}
