package rest

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/vocabdeck/vocabdeck-backend/internal/domain"
)

func TestRouter_Dispatch(t *testing.T) {
	t.Parallel()

	var removedWord string
	st := &adminStoreMock{
		removeFunc: func(_ context.Context, word string) error {
			removedWord = word
			return nil
		},
	}
	content := newTestContentHandler(&engineMock{})
	admin := newTestAdminHandler(st, &reloaderMock{}, &impexMock{})
	health := NewHealthHandler(&loaderMock{state: domain.HealthStateHealthy}, healthyEngines(), "test")

	mux := NewRouter(content, admin, health)

	tests := []struct {
		name     string
		method   string
		target   string
		body     string
		wantCode int
	}{
		{"liveness", http.MethodGet, "/live", "", http.StatusOK},
		{"readiness", http.MethodGet, "/ready", "", http.StatusOK},
		{"define", http.MethodPost, "/api/words/define", `{"word":"tide"}`, http.StatusOK},
		{"define wrong method", http.MethodGet, "/api/words/define", "", http.StatusMethodNotAllowed},
		{"remove definition", http.MethodDelete, "/api/admin/definitions/tide", "", http.StatusNoContent},
		{"unknown route", http.MethodGet, "/api/nope", "", http.StatusNotFound},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(tt.method, tt.target, strings.NewReader(tt.body))
			rec := httptest.NewRecorder()

			mux.ServeHTTP(rec, req)

			if rec.Code != tt.wantCode {
				t.Errorf("%s %s = %d, want %d", tt.method, tt.target, rec.Code, tt.wantCode)
			}
		})
	}

	// The word path segment must reach the handler via the route pattern.
	if removedWord != "tide" {
		t.Errorf("removed word = %q, want 'tide'", removedWord)
	}
}
