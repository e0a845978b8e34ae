package config

import (
	"fmt"

	"github.com/vocabdeck/vocabdeck-backend/internal/domain"
)

// Validate performs business-rule validation on the loaded configuration.
// It must be called after loading; Load calls it automatically.
func (c *Config) Validate() error {
	if c.Server.Port < 1 || c.Server.Port > 65535 {
		return fmt.Errorf("server.port must be in [1, 65535] (got %d)", c.Server.Port)
	}
	if c.Server.RateLimitPerMinute < 0 {
		return fmt.Errorf("server.rate_limit_per_minute must be >= 0 (got %d)", c.Server.RateLimitPerMinute)
	}

	if c.Content.DataDir == "" {
		return fmt.Errorf("content.data_dir must not be empty")
	}
	if c.Content.WatchEnabled && c.Content.WatchDebounce <= 0 {
		return fmt.Errorf("content.watch_debounce must be > 0 when watching is enabled (got %v)", c.Content.WatchDebounce)
	}

	if err := c.Loader.validate(); err != nil {
		return fmt.Errorf("loader: %w", err)
	}
	if err := c.Generation.validate(); err != nil {
		return fmt.Errorf("generation: %w", err)
	}

	if !domain.Mode(c.Engine.Mode).IsValid() {
		return fmt.Errorf("engine.mode must be %q or %q (got %q)", domain.ModeManual, domain.ModeModel, c.Engine.Mode)
	}
	if c.Engine.MaxTokens <= 0 {
		return fmt.Errorf("engine.max_tokens must be > 0 (got %d)", c.Engine.MaxTokens)
	}

	return nil
}

func (l *LoaderConfig) validate() error {
	if l.MaxAttempts < 1 {
		return fmt.Errorf("max_attempts must be >= 1 (got %d)", l.MaxAttempts)
	}
	if l.InitialBackoff <= 0 {
		return fmt.Errorf("initial_backoff must be > 0 (got %v)", l.InitialBackoff)
	}
	if l.MaxBackoff < l.InitialBackoff {
		return fmt.Errorf("max_backoff must be >= initial_backoff (got %v < %v)", l.MaxBackoff, l.InitialBackoff)
	}
	return nil
}

func (g *GenerationConfig) validate() error {
	if g.MaxWordsPerRequest < 1 {
		return fmt.Errorf("max_words_per_request must be >= 1 (got %d)", g.MaxWordsPerRequest)
	}
	if g.DefaultQuizSize < 1 {
		return fmt.Errorf("default_quiz_size must be >= 1 (got %d)", g.DefaultQuizSize)
	}
	if g.MaxExamples < 1 {
		return fmt.Errorf("max_examples must be >= 1 (got %d)", g.MaxExamples)
	}
	if g.MaxSimilarWords < 1 {
		return fmt.Errorf("max_similar_words must be >= 1 (got %d)", g.MaxSimilarWords)
	}
	return nil
}

// IsModelMode reports whether the model-backed engine is selected.
func (e EngineConfig) IsModelMode() bool {
	return domain.Mode(e.Mode) == domain.ModeModel
}

// HasCredentials reports whether the model engine has an API key configured.
func (e EngineConfig) HasCredentials() bool {
	return e.APIKey != ""
}
