// Package exercise synthesizes practice items from curated content.
// Every public method is a pure function of its input and the current
// store state; randomness comes from a single service-owned generator
// so tests can pin a seed.
package exercise

import (
	"fmt"
	"log/slog"
	"math/rand"
	"sync"
	"time"

	"github.com/vocabdeck/vocabdeck-backend/internal/config"
	"github.com/vocabdeck/vocabdeck-backend/internal/domain"
)

// ---------------------------------------------------------------------------
// Consumer-defined interfaces (private)
// ---------------------------------------------------------------------------

type contentStore interface {
	Definition(word, contextName string) domain.DefinitionResult
	FullDefinition(word string) (domain.Definition, bool)
	SentenceExamples(word, contextName string) []domain.SentenceExample
	Distractors(word, contextName string) domain.DistractorPick
	CuratedDistractorCount(word, contextName string) int
}

// ---------------------------------------------------------------------------
// Service
// ---------------------------------------------------------------------------

// Service generates exercises and quiz questions in manual mode.
type Service struct {
	store  contentStore
	cfg    config.GenerationConfig
	log    *slog.Logger
	diffFn DifficultyFn

	rngMu sync.Mutex
	rng   *rand.Rand
}

// Option tweaks service construction.
type Option func(*Service)

// WithDifficultyFn replaces the default difficulty strategy.
func WithDifficultyFn(fn DifficultyFn) Option {
	return func(s *Service) { s.diffFn = fn }
}

// NewService creates the exercise generator. A zero cfg.Seed seeds the
// generator from the clock; any other value makes output reproducible.
func NewService(log *slog.Logger, store contentStore, cfg config.GenerationConfig, opts ...Option) *Service {
	seed := cfg.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}

	s := &Service{
		store:  store,
		cfg:    cfg,
		log:    log.With("service", "exercise"),
		diffFn: DefaultDifficulty,
		//nolint:gosec // option shuffling, not cryptographic
		rng: rand.New(rand.NewSource(seed)),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Generate produces one exercise per word that has a resolvable meaning
// for the requested context. Words without one are skipped, so the
// result may be shorter than the input. The type of each exercise is
// picked uniformly from the allowed set.
func (s *Service) Generate(in GenerateInput) ([]domain.Exercise, error) {
	if err := in.Validate(); err != nil {
		return nil, err
	}
	if len(in.Words) > s.cfg.MaxWordsPerRequest {
		return nil, domain.NewValidationError("words", fmt.Sprintf("too many (max %d)", s.cfg.MaxWordsPerRequest))
	}
	contextName := domain.NormalizeWord(in.Context)
	types := dedupeTypes(in.Types)

	s.rngMu.Lock()
	defer s.rngMu.Unlock()

	exercises := make([]domain.Exercise, 0, len(in.Words))
	for _, ref := range in.Words {
		word := domain.NormalizeWord(ref.Value)
		if word == "" {
			continue
		}
		res := s.store.Definition(word, contextName)
		if !res.Found {
			s.log.Debug("skipping word without definition", "word", word)
			continue
		}
		exType := types[s.rng.Intn(len(types))]
		exercises = append(exercises, s.buildLocked(exType, word, contextName, res.Text))
	}
	return exercises, nil
}

// buildLocked assembles one exercise. Callers hold rngMu.
func (s *Service) buildLocked(exType domain.ExerciseType, word, contextName, meaning string) domain.Exercise {
	m := material{
		word:        word,
		meaning:     meaning,
		examples:    s.store.SentenceExamples(word, contextName),
		distractors: s.store.Distractors(word, contextName),
	}

	ex := buildExercise(s.rng, exType, m)
	ex.ID = exerciseID(exType, word)
	ex.Type = exType
	ex.Word = word
	ex.Context = contextName
	ex.Difficulty = s.difficultyFor(word)
	if usesDistractors(exType) {
		ex.DistractorOrigin = m.distractors.Origin
	}
	return ex
}

func (s *Service) difficultyFor(word string) domain.Difficulty {
	var curated domain.Difficulty
	if def, ok := s.store.FullDefinition(word); ok {
		curated = def.Difficulty
	}
	return s.diffFn(word, curated)
}

func usesDistractors(t domain.ExerciseType) bool {
	switch t {
	case domain.ExerciseTypeMultipleChoice, domain.ExerciseTypeMatching, domain.ExerciseTypeTrueFalse:
		return true
	}
	return false
}

// dedupeTypes drops repeated types while preserving order, so a
// duplicated entry cannot skew uniform selection.
func dedupeTypes(types []domain.ExerciseType) []domain.ExerciseType {
	seen := make(map[domain.ExerciseType]struct{}, len(types))
	out := make([]domain.ExerciseType, 0, len(types))
	for _, t := range types {
		if _, ok := seen[t]; ok {
			continue
		}
		seen[t] = struct{}{}
		out = append(out, t)
	}
	return out
}

func clampLimit(limit, min, max, defaultVal int) int {
	if limit <= 0 {
		return defaultVal
	}
	if limit < min {
		return min
	}
	if limit > max {
		return max
	}
	return limit
}
