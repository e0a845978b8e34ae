package rest

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/vocabdeck/vocabdeck-backend/internal/domain"
)

type loaderMock struct {
	state  domain.HealthState
	report *domain.ValidationReport
}

func (m *loaderMock) Health() domain.HealthState       { return m.state }
func (m *loaderMock) Report() *domain.ValidationReport { return m.report }

type enginesMock struct {
	mode   domain.Mode
	health map[string]domain.EngineHealth
}

func (m *enginesMock) Mode() domain.Mode { return m.mode }

func (m *enginesMock) Health(_ context.Context) map[string]domain.EngineHealth {
	return m.health
}

func healthyEngines() *enginesMock {
	return &enginesMock{
		mode: domain.ModeManual,
		health: map[string]domain.EngineHealth{
			"definitions": {Mode: domain.ModeManual, Available: true},
			"exercises":   {Mode: domain.ModeManual, Available: true},
		},
	}
}

func TestLive_Always200(t *testing.T) {
	t.Parallel()

	h := NewHealthHandler(&loaderMock{state: domain.HealthStateError}, healthyEngines(), "test-version")

	req := httptest.NewRequest(http.MethodGet, "/live", nil)
	rec := httptest.NewRecorder()

	h.Live(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("expected status 200, got %d", rec.Code)
	}

	var resp HealthResponse
	if err := json.NewDecoder(rec.Body).Decode(&resp); err != nil {
		t.Fatalf("failed to decode response: %v", err)
	}

	if resp.Status != "ok" {
		t.Errorf("expected status 'ok', got %q", resp.Status)
	}

	if resp.Timestamp.IsZero() {
		t.Error("expected non-zero timestamp")
	}
}

func TestReady_ContentHealthy(t *testing.T) {
	t.Parallel()

	h := NewHealthHandler(&loaderMock{state: domain.HealthStateHealthy}, healthyEngines(), "test-version")

	req := httptest.NewRequest(http.MethodGet, "/ready", nil)
	rec := httptest.NewRecorder()

	h.Ready(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("expected status 200, got %d", rec.Code)
	}

	var resp HealthResponse
	if err := json.NewDecoder(rec.Body).Decode(&resp); err != nil {
		t.Fatalf("failed to decode response: %v", err)
	}

	if resp.Status != "healthy" {
		t.Errorf("expected status 'healthy', got %q", resp.Status)
	}
}

func TestReady_ContentWarning(t *testing.T) {
	t.Parallel()

	// Warnings degrade quality but never block serving.
	h := NewHealthHandler(&loaderMock{state: domain.HealthStateWarning}, healthyEngines(), "test-version")

	req := httptest.NewRequest(http.MethodGet, "/ready", nil)
	rec := httptest.NewRecorder()

	h.Ready(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("expected status 200, got %d", rec.Code)
	}
}

func TestReady_ContentError(t *testing.T) {
	t.Parallel()

	h := NewHealthHandler(&loaderMock{state: domain.HealthStateError}, healthyEngines(), "test-version")

	req := httptest.NewRequest(http.MethodGet, "/ready", nil)
	rec := httptest.NewRecorder()

	h.Ready(rec, req)

	if rec.Code != http.StatusServiceUnavailable {
		t.Fatalf("expected status 503, got %d", rec.Code)
	}

	var resp HealthResponse
	if err := json.NewDecoder(rec.Body).Decode(&resp); err != nil {
		t.Fatalf("failed to decode response: %v", err)
	}

	if resp.Status != "error" {
		t.Errorf("expected status 'error', got %q", resp.Status)
	}
}

func TestHealth_AllHealthy(t *testing.T) {
	t.Parallel()

	loader := &loaderMock{
		state: domain.HealthStateHealthy,
		report: &domain.ValidationReport{
			Valid:     true,
			Words:     42,
			CheckedAt: time.Now(),
		},
	}
	h := NewHealthHandler(loader, healthyEngines(), "v1.0.0")

	req := httptest.NewRequest(http.MethodGet, "/health", nil)
	rec := httptest.NewRecorder()

	h.Health(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("expected status 200, got %d", rec.Code)
	}

	var resp HealthResponse
	if err := json.NewDecoder(rec.Body).Decode(&resp); err != nil {
		t.Fatalf("failed to decode response: %v", err)
	}

	if resp.Status != "healthy" {
		t.Errorf("expected status 'healthy', got %q", resp.Status)
	}

	if resp.Version != "v1.0.0" {
		t.Errorf("expected version 'v1.0.0', got %q", resp.Version)
	}

	if resp.Mode != domain.ModeManual {
		t.Errorf("expected mode 'manual', got %q", resp.Mode)
	}

	if resp.Content == nil || resp.Content.Words != 42 {
		t.Errorf("expected content report with 42 words, got %+v", resp.Content)
	}

	eng, ok := resp.Engines["definitions"]
	if !ok {
		t.Fatal("expected 'definitions' engine in response")
	}

	if !eng.Available {
		t.Error("expected definitions engine to be available")
	}
}

func TestHealth_ContentError(t *testing.T) {
	t.Parallel()

	h := NewHealthHandler(&loaderMock{state: domain.HealthStateError}, healthyEngines(), "v1.0.0")

	req := httptest.NewRequest(http.MethodGet, "/health", nil)
	rec := httptest.NewRecorder()

	h.Health(rec, req)

	if rec.Code != http.StatusServiceUnavailable {
		t.Fatalf("expected status 503, got %d", rec.Code)
	}

	var resp HealthResponse
	if err := json.NewDecoder(rec.Body).Decode(&resp); err != nil {
		t.Fatalf("failed to decode response: %v", err)
	}

	if resp.Status != "error" {
		t.Errorf("expected status 'error', got %q", resp.Status)
	}
}

func TestHealth_UnavailableEngineDegrades(t *testing.T) {
	t.Parallel()

	engines := &enginesMock{
		mode: domain.ModeModel,
		health: map[string]domain.EngineHealth{
			"definitions": {Mode: domain.ModeModel, Available: false},
		},
	}
	h := NewHealthHandler(&loaderMock{state: domain.HealthStateHealthy}, engines, "v1.0.0")

	req := httptest.NewRequest(http.MethodGet, "/health", nil)
	rec := httptest.NewRecorder()

	h.Health(rec, req)

	// Still serving, but the report must not read healthy.
	if rec.Code != http.StatusOK {
		t.Fatalf("expected status 200, got %d", rec.Code)
	}

	var resp HealthResponse
	if err := json.NewDecoder(rec.Body).Decode(&resp); err != nil {
		t.Fatalf("failed to decode response: %v", err)
	}

	if resp.Status != "warning" {
		t.Errorf("expected status 'warning', got %q", resp.Status)
	}
}
