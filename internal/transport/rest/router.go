package rest

import "net/http"

// NewRouter mounts every REST endpoint on a ServeMux. Middleware is
// applied by the caller around the returned mux.
func NewRouter(content *ContentHandler, admin *AdminHandler, health *HealthHandler) *http.ServeMux {
	mux := http.NewServeMux()

	mux.HandleFunc("GET /health", health.Health)
	mux.HandleFunc("GET /live", health.Live)
	mux.HandleFunc("GET /ready", health.Ready)

	mux.HandleFunc("POST /api/words/define", content.Define)
	mux.HandleFunc("POST /api/words/validate-answer", content.ValidateAnswer)

	mux.HandleFunc("POST /api/vocabulary/examples", content.Examples)
	mux.HandleFunc("POST /api/vocabulary/similar", content.Similar)
	mux.HandleFunc("POST /api/vocabulary/reading", content.Reading)

	mux.HandleFunc("POST /api/exercises/generate", content.GenerateExercises)
	mux.HandleFunc("POST /api/exercises/capability", content.Capability)

	mux.HandleFunc("POST /api/quiz/generate", content.GenerateQuiz)

	mux.HandleFunc("GET /api/admin/stats", admin.Stats)
	mux.HandleFunc("POST /api/admin/definitions", admin.AddDefinition)
	mux.HandleFunc("PUT /api/admin/definitions/{word}", admin.UpdateDefinition)
	mux.HandleFunc("DELETE /api/admin/definitions/{word}", admin.RemoveDefinition)
	mux.HandleFunc("POST /api/admin/sentences/{word}", admin.AddSentence)
	mux.HandleFunc("POST /api/admin/reload", admin.Reload)
	mux.HandleFunc("GET /api/admin/export", admin.Export)
	mux.HandleFunc("POST /api/admin/import", admin.Import)

	return mux
}
