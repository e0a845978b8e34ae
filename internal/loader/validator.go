package loader

import (
	"fmt"
	"time"

	"github.com/vocabdeck/vocabdeck-backend/internal/domain"
)

// revalidate runs the validation pass over the freshly loaded state and
// stores the report as the current one.
func (l *Loader) revalidate() *domain.ValidationReport {
	report := l.validate()

	l.mu.Lock()
	l.report = &report
	l.mu.Unlock()

	l.log.Info("content validated",
		"valid", report.Valid,
		"words", report.Words,
		"errors", len(report.Errors),
		"warnings", len(report.Warnings),
	)
	return &report
}

// validate checks every loaded word: a missing definition is an error,
// missing examples or an incomplete curated distractor pool are
// warnings. Warnings degrade generation quality but never block it.
func (l *Loader) validate() domain.ValidationReport {
	stats := l.store.Stats()
	report := domain.ValidationReport{
		Words:     stats.Words,
		Contexts:  stats.Contexts,
		CheckedAt: time.Now().UTC(),
	}

	for _, w := range l.store.AllWords() {
		if !l.store.Definition(w, "").Found {
			report.Errors = append(report.Errors, fmt.Sprintf("word %q has no definition", w))
		}
		if len(l.store.SentenceExamples(w, "")) == 0 {
			report.Warnings = append(report.Warnings, fmt.Sprintf("word %q has no example sentences", w))
		}
		if l.store.Distractors(w, "").Origin != domain.DistractorOriginCurated {
			report.Warnings = append(report.Warnings, fmt.Sprintf("word %q has fewer than 3 curated distractors", w))
		}
	}

	report.Valid = len(report.Errors) == 0
	return report
}

// Health reports the three-state data health signal: error when the
// store is not loaded or the last validation found errors, warning when
// loaded without a validation report, healthy otherwise.
func (l *Loader) Health() domain.HealthState {
	if !l.store.Loaded() {
		return domain.HealthStateError
	}

	l.mu.RLock()
	report := l.report
	l.mu.RUnlock()

	if report == nil {
		return domain.HealthStateWarning
	}
	if !report.Valid {
		return domain.HealthStateError
	}
	return domain.HealthStateHealthy
}

// Report returns a copy of the latest validation report, or nil before
// the first validated load.
func (l *Loader) Report() *domain.ValidationReport {
	l.mu.RLock()
	defer l.mu.RUnlock()

	if l.report == nil {
		return nil
	}
	copied := *l.report
	copied.Errors = append([]string(nil), l.report.Errors...)
	copied.Warnings = append([]string(nil), l.report.Warnings...)
	copied.Contexts = append([]string(nil), l.report.Contexts...)
	return &copied
}
