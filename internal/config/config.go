package config

import (
	"time"
)

// Config is the root application configuration.
type Config struct {
	Server     ServerConfig     `yaml:"server"`
	Content    ContentConfig    `yaml:"content"`
	Loader     LoaderConfig     `yaml:"loader"`
	Generation GenerationConfig `yaml:"generation"`
	Engine     EngineConfig     `yaml:"engine"`
	Log        LogConfig        `yaml:"log"`
	CORS       CORSConfig       `yaml:"cors"`
}

// ServerConfig holds HTTP server settings. RateLimitPerMinute 0 leaves
// the per-IP rate limiter off.
type ServerConfig struct {
	Host               string        `yaml:"host"                  env:"SERVER_HOST"             env-default:"0.0.0.0"`
	Port               int           `yaml:"port"                  env:"SERVER_PORT"             env-default:"8080"`
	ReadTimeout        time.Duration `yaml:"read_timeout"          env:"SERVER_READ_TIMEOUT"     env-default:"10s"`
	WriteTimeout       time.Duration `yaml:"write_timeout"         env:"SERVER_WRITE_TIMEOUT"    env-default:"30s"`
	IdleTimeout        time.Duration `yaml:"idle_timeout"          env:"SERVER_IDLE_TIMEOUT"     env-default:"60s"`
	ShutdownTimeout    time.Duration `yaml:"shutdown_timeout"      env:"SERVER_SHUTDOWN_TIMEOUT" env-default:"10s"`
	RateLimitPerMinute int           `yaml:"rate_limit_per_minute" env:"SERVER_RATE_LIMIT"       env-default:"0"`
}

// ContentConfig holds the curated content directory settings.
type ContentConfig struct {
	DataDir       string        `yaml:"data_dir"       env:"CONTENT_DATA_DIR"       env-default:"./content"`
	DefaultSource string        `yaml:"default_source" env:"CONTENT_DEFAULT_SOURCE" env-default:"custom"`
	WatchEnabled  bool          `yaml:"watch_enabled"  env:"CONTENT_WATCH_ENABLED"  env-default:"false"`
	WatchDebounce time.Duration `yaml:"watch_debounce" env:"CONTENT_WATCH_DEBOUNCE" env-default:"500ms"`
}

// LoaderConfig holds startup load and retry settings.
type LoaderConfig struct {
	MaxAttempts    int           `yaml:"max_attempts"    env:"LOADER_MAX_ATTEMPTS"    env-default:"3"`
	InitialBackoff time.Duration `yaml:"initial_backoff" env:"LOADER_INITIAL_BACKOFF" env-default:"1s"`
	MaxBackoff     time.Duration `yaml:"max_backoff"     env:"LOADER_MAX_BACKOFF"     env-default:"5s"`
}

// GenerationConfig holds exercise and passage generation settings.
// Seed 0 means the generator is seeded from the clock at startup; any
// other value makes generation reproducible across restarts.
type GenerationConfig struct {
	MaxWordsPerRequest int   `yaml:"max_words_per_request" env:"GENERATION_MAX_WORDS"     env-default:"50"`
	DefaultQuizSize    int   `yaml:"default_quiz_size"     env:"GENERATION_QUIZ_SIZE"     env-default:"10"`
	MaxExamples        int   `yaml:"max_examples"          env:"GENERATION_MAX_EXAMPLES"  env-default:"20"`
	MaxSimilarWords    int   `yaml:"max_similar_words"     env:"GENERATION_MAX_SIMILAR"   env-default:"10"`
	Seed               int64 `yaml:"seed"                  env:"GENERATION_SEED"          env-default:"0"`
}

// EngineConfig selects the content engine and configures the model-backed one.
// The mode is read once at startup; adapters never re-check it per call.
type EngineConfig struct {
	Mode      string        `yaml:"mode"       env:"ENGINE_MODE"       env-default:"manual"`
	Model     string        `yaml:"model"      env:"ENGINE_MODEL"      env-default:"claude-sonnet-4-0"`
	APIKey    string        `yaml:"api_key"    env:"ANTHROPIC_API_KEY"`
	MaxTokens int64         `yaml:"max_tokens" env:"ENGINE_MAX_TOKENS" env-default:"2048"`
	Timeout   time.Duration `yaml:"timeout"    env:"ENGINE_TIMEOUT"    env-default:"30s"`
}

// LogConfig holds logging settings.
type LogConfig struct {
	Level  string `yaml:"level"  env:"LOG_LEVEL"  env-default:"info"`
	Format string `yaml:"format" env:"LOG_FORMAT" env-default:"json"`
}

// CORSConfig holds CORS settings.
type CORSConfig struct {
	AllowedOrigins   string `yaml:"allowed_origins"   env:"CORS_ALLOWED_ORIGINS"   env-default:"*"`
	AllowedMethods   string `yaml:"allowed_methods"   env:"CORS_ALLOWED_METHODS"   env-default:"GET,POST,PUT,DELETE,OPTIONS"`
	AllowedHeaders   string `yaml:"allowed_headers"   env:"CORS_ALLOWED_HEADERS"   env-default:"Content-Type"`
	AllowCredentials bool   `yaml:"allow_credentials" env:"CORS_ALLOW_CREDENTIALS" env-default:"true"`
	MaxAge           int    `yaml:"max_age"           env:"CORS_MAX_AGE"           env-default:"86400"`
}
