package rest

import (
	"context"
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/vocabdeck/vocabdeck-backend/internal/domain"
	"github.com/vocabdeck/vocabdeck-backend/internal/service/impex"
	"github.com/vocabdeck/vocabdeck-backend/internal/store"
)

type adminStore interface {
	Stats() domain.ContentStats
	AddDefinition(ctx context.Context, def domain.Definition) error
	UpdateDefinition(ctx context.Context, word string, upd store.DefinitionUpdate) error
	RemoveDefinition(ctx context.Context, word string) error
	AddSentenceExample(ctx context.Context, word string, ex domain.SentenceExample) error
}

type contentLoader interface {
	Reload(ctx context.Context) (*domain.ValidationReport, error)
	Report() *domain.ValidationReport
}

type impexService interface {
	Export(ctx context.Context) (*impex.ExportData, error)
	Import(ctx context.Context, in impex.ImportInput) (*impex.ImportReport, error)
}

// AdminHandler serves the content curation and operations endpoints.
// Mutations go through the store so they hit the same validation and
// write-through path as file edits.
type AdminHandler struct {
	store  adminStore
	loader contentLoader
	impex  impexService
	log    *slog.Logger
}

// NewAdminHandler creates an AdminHandler.
func NewAdminHandler(st adminStore, loader contentLoader, impex impexService, logger *slog.Logger) *AdminHandler {
	return &AdminHandler{
		store:  st,
		loader: loader,
		impex:  impex,
		log:    logger.With("handler", "admin"),
	}
}

// Stats returns aggregate counts for the loaded content.
// GET /api/admin/stats
func (h *AdminHandler) Stats(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, h.store.Stats())
}

// AddDefinition stores a new definition.
// POST /api/admin/definitions
func (h *AdminHandler) AddDefinition(w http.ResponseWriter, r *http.Request) {
	var def domain.Definition
	if err := json.NewDecoder(r.Body).Decode(&def); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	if err := h.store.AddDefinition(r.Context(), def); err != nil {
		respondError(h.log, w, r, err)
		return
	}
	writeJSON(w, http.StatusCreated, map[string]string{"word": domain.NormalizeWord(def.Word)})
}

type updateDefinitionRequest struct {
	General       *string            `json:"general"`
	Contextual    map[string]string  `json:"contextual"`
	Difficulty    *domain.Difficulty `json:"difficulty"`
	PartOfSpeech  *string            `json:"part_of_speech"`
	Pronunciation *string            `json:"pronunciation"`
	AudioFile     *string            `json:"audio_file"`
}

// UpdateDefinition applies a partial update to an existing definition.
// Absent fields are left unchanged.
// PUT /api/admin/definitions/{word}
func (h *AdminHandler) UpdateDefinition(w http.ResponseWriter, r *http.Request) {
	var req updateDefinitionRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	upd := store.DefinitionUpdate{
		General:       req.General,
		Contextual:    req.Contextual,
		Difficulty:    req.Difficulty,
		PartOfSpeech:  req.PartOfSpeech,
		Pronunciation: req.Pronunciation,
		AudioFile:     req.AudioFile,
	}
	if err := h.store.UpdateDefinition(r.Context(), r.PathValue("word"), upd); err != nil {
		respondError(h.log, w, r, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// RemoveDefinition deletes a definition.
// DELETE /api/admin/definitions/{word}
func (h *AdminHandler) RemoveDefinition(w http.ResponseWriter, r *http.Request) {
	if err := h.store.RemoveDefinition(r.Context(), r.PathValue("word")); err != nil {
		respondError(h.log, w, r, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// AddSentence appends a curated sentence example for a word.
// POST /api/admin/sentences/{word}
func (h *AdminHandler) AddSentence(w http.ResponseWriter, r *http.Request) {
	var ex domain.SentenceExample
	if err := json.NewDecoder(r.Body).Decode(&ex); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	word := r.PathValue("word")
	if err := h.store.AddSentenceExample(r.Context(), word, ex); err != nil {
		respondError(h.log, w, r, err)
		return
	}
	writeJSON(w, http.StatusCreated, map[string]string{"word": domain.NormalizeWord(word)})
}

// Reload forces a full content reload and returns the fresh validation
// report.
// POST /api/admin/reload
func (h *AdminHandler) Reload(w http.ResponseWriter, r *http.Request) {
	report, err := h.loader.Reload(r.Context())
	if err != nil {
		respondError(h.log, w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, report)
}

// Export returns a portable snapshot of the curated content.
// GET /api/admin/export
func (h *AdminHandler) Export(w http.ResponseWriter, r *http.Request) {
	data, err := h.impex.Export(r.Context())
	if err != nil {
		respondError(h.log, w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, data)
}

// Import replays an exported snapshot into the store. Collisions are
// skipped unless overwrite=true.
// POST /api/admin/import?overwrite=true
func (h *AdminHandler) Import(w http.ResponseWriter, r *http.Request) {
	var data impex.ExportData
	if err := json.NewDecoder(r.Body).Decode(&data); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	overwrite := false
	if v := r.URL.Query().Get("overwrite"); v != "" {
		json.Unmarshal([]byte(v), &overwrite) //nolint:errcheck
	}

	report, err := h.impex.Import(r.Context(), impex.ImportInput{Data: data, Overwrite: overwrite})
	if err != nil {
		respondError(h.log, w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, report)
}
