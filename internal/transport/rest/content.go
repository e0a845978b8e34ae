package rest

import (
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"
	"strings"

	"github.com/vocabdeck/vocabdeck-backend/internal/config"
	"github.com/vocabdeck/vocabdeck-backend/internal/domain"
	"github.com/vocabdeck/vocabdeck-backend/internal/modes"
)

// ContentHandler serves the learner-facing content endpoints. It talks
// to whichever engines were selected at startup and never inspects the
// mode itself; the same requests work against curated and model-backed
// engines.
type ContentHandler struct {
	engines *modes.Engines
	gen     config.GenerationConfig
	log     *slog.Logger
}

// NewContentHandler creates a ContentHandler.
func NewContentHandler(engines *modes.Engines, gen config.GenerationConfig, logger *slog.Logger) *ContentHandler {
	return &ContentHandler{
		engines: engines,
		gen:     gen,
		log:     logger.With("handler", "content"),
	}
}

type defineRequest struct {
	Word    string `json:"word"`
	Context string `json:"context,omitempty"`
}

func (req *defineRequest) Validate() error {
	if strings.TrimSpace(req.Word) == "" {
		return domain.NewValidationError("word", "is required")
	}
	return nil
}

// Define handles POST /api/words/define. An unknown word is a Found:false
// result, not an error.
func (h *ContentHandler) Define(w http.ResponseWriter, r *http.Request) {
	var req defineRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	if err := req.Validate(); err != nil {
		respondError(h.log, w, r, err)
		return
	}

	res, err := h.engines.Definitions.Define(r.Context(), req.Word, req.Context)
	if err != nil {
		respondError(h.log, w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, res)
}

type validateAnswerRequest struct {
	Given   string `json:"given"`
	Correct string `json:"correct"`
}

type validateAnswerResponse struct {
	Correct bool `json:"correct"`
}

// ValidateAnswer handles POST /api/words/validate-answer.
func (h *ContentHandler) ValidateAnswer(w http.ResponseWriter, r *http.Request) {
	var req validateAnswerRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	writeJSON(w, http.StatusOK, validateAnswerResponse{
		Correct: h.engines.ValidateAnswer(req.Given, req.Correct),
	})
}

type examplesRequest struct {
	Word    string `json:"word"`
	Context string `json:"context,omitempty"`
	Limit   int    `json:"limit,omitempty"`
}

func (req *examplesRequest) Validate() error {
	var errs []domain.FieldError
	if strings.TrimSpace(req.Word) == "" {
		errs = append(errs, domain.FieldError{Field: "word", Message: "is required"})
	}
	if req.Limit < 0 {
		errs = append(errs, domain.FieldError{Field: "limit", Message: "must not be negative"})
	}
	if len(errs) > 0 {
		return domain.NewValidationErrors(errs)
	}
	return nil
}

// Examples handles POST /api/vocabulary/examples.
func (h *ContentHandler) Examples(w http.ResponseWriter, r *http.Request) {
	var req examplesRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	if err := req.Validate(); err != nil {
		respondError(h.log, w, r, err)
		return
	}

	limit := clampLimit(req.Limit, 1, h.gen.MaxExamples, h.gen.MaxExamples)
	examples, err := h.engines.Vocabulary.ExampleSentences(r.Context(), req.Word, req.Context, limit)
	if err != nil {
		respondError(h.log, w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, examples)
}

type similarRequest struct {
	Word  string `json:"word"`
	Limit int    `json:"limit,omitempty"`
}

func (req *similarRequest) Validate() error {
	if strings.TrimSpace(req.Word) == "" {
		return domain.NewValidationError("word", "is required")
	}
	if req.Limit < 0 {
		return domain.NewValidationError("limit", "must not be negative")
	}
	return nil
}

// Similar handles POST /api/vocabulary/similar.
func (h *ContentHandler) Similar(w http.ResponseWriter, r *http.Request) {
	var req similarRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	if err := req.Validate(); err != nil {
		respondError(h.log, w, r, err)
		return
	}

	limit := clampLimit(req.Limit, 1, h.gen.MaxSimilarWords, h.gen.MaxSimilarWords)
	similar, err := h.engines.Vocabulary.SimilarWords(r.Context(), req.Word, limit)
	if err != nil {
		respondError(h.log, w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, similar)
}

type readingRequest struct {
	Words   []domain.WordRef `json:"words"`
	Context string           `json:"context,omitempty"`
}

func (req *readingRequest) Validate() error {
	if len(req.Words) == 0 {
		return domain.NewValidationError("words", "required (at least 1)")
	}
	return nil
}

// Reading handles POST /api/vocabulary/reading.
func (h *ContentHandler) Reading(w http.ResponseWriter, r *http.Request) {
	var req readingRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	if err := req.Validate(); err != nil {
		respondError(h.log, w, r, err)
		return
	}
	if err := h.checkWordCount(len(req.Words)); err != nil {
		respondError(h.log, w, r, err)
		return
	}

	passage, err := h.engines.Vocabulary.LightReading(r.Context(), req.Words, req.Context)
	if err != nil {
		respondError(h.log, w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, passage)
}

type exercisesRequest struct {
	Words   []domain.WordRef      `json:"words"`
	Context string                `json:"context,omitempty"`
	Types   []domain.ExerciseType `json:"types"`
}

// Validate mirrors the manual generator's input rules so the model
// engine rejects the same requests the curated one would.
func (req *exercisesRequest) Validate() error {
	var errs []domain.FieldError
	if len(req.Words) == 0 {
		errs = append(errs, domain.FieldError{Field: "words", Message: "required (at least 1)"})
	}
	if len(req.Types) == 0 {
		errs = append(errs, domain.FieldError{Field: "types", Message: "required (at least 1)"})
	}
	for idx, t := range req.Types {
		if !t.IsValid() {
			errs = append(errs, domain.FieldError{
				Field:   fmt.Sprintf("types[%d]", idx),
				Message: fmt.Sprintf("unknown exercise type %q", t),
			})
		}
	}
	if len(errs) > 0 {
		return domain.NewValidationErrors(errs)
	}
	return nil
}

// GenerateExercises handles POST /api/exercises/generate.
func (h *ContentHandler) GenerateExercises(w http.ResponseWriter, r *http.Request) {
	var req exercisesRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	if err := req.Validate(); err != nil {
		respondError(h.log, w, r, err)
		return
	}
	if err := h.checkWordCount(len(req.Words)); err != nil {
		respondError(h.log, w, r, err)
		return
	}

	exercises, err := h.engines.Exercises.Generate(r.Context(), req.Words, req.Context, req.Types)
	if err != nil {
		respondError(h.log, w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, exercises)
}

type capabilityRequest struct {
	Words   []domain.WordRef `json:"words"`
	Context string           `json:"context,omitempty"`
}

func (req *capabilityRequest) Validate() error {
	if len(req.Words) == 0 {
		return domain.NewValidationError("words", "required (at least 1)")
	}
	return nil
}

// Capability handles POST /api/exercises/capability.
func (h *ContentHandler) Capability(w http.ResponseWriter, r *http.Request) {
	var req capabilityRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	if err := req.Validate(); err != nil {
		respondError(h.log, w, r, err)
		return
	}
	if err := h.checkWordCount(len(req.Words)); err != nil {
		respondError(h.log, w, r, err)
		return
	}

	preview, err := h.engines.Exercises.Capability(r.Context(), req.Words, req.Context)
	if err != nil {
		respondError(h.log, w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, preview)
}

type quizRequest struct {
	Words   []domain.WordRef `json:"words"`
	Context string           `json:"context,omitempty"`
	Limit   int              `json:"limit,omitempty"`
}

func (req *quizRequest) Validate() error {
	var errs []domain.FieldError
	if len(req.Words) == 0 {
		errs = append(errs, domain.FieldError{Field: "words", Message: "required (at least 1)"})
	}
	if req.Limit < 0 {
		errs = append(errs, domain.FieldError{Field: "limit", Message: "must not be negative"})
	}
	if len(errs) > 0 {
		return domain.NewValidationErrors(errs)
	}
	return nil
}

// GenerateQuiz handles POST /api/quiz/generate.
func (h *ContentHandler) GenerateQuiz(w http.ResponseWriter, r *http.Request) {
	var req quizRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	if err := req.Validate(); err != nil {
		respondError(h.log, w, r, err)
		return
	}
	if err := h.checkWordCount(len(req.Words)); err != nil {
		respondError(h.log, w, r, err)
		return
	}

	limit := req.Limit
	if limit == 0 {
		limit = h.gen.DefaultQuizSize
	}

	questions, err := h.engines.Quiz.QuizQuestions(r.Context(), req.Words, req.Context, limit)
	if err != nil {
		respondError(h.log, w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, questions)
}

func (h *ContentHandler) checkWordCount(n int) error {
	if n > h.gen.MaxWordsPerRequest {
		return domain.NewValidationError("words", fmt.Sprintf("too many (max %d)", h.gen.MaxWordsPerRequest))
	}
	return nil
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
