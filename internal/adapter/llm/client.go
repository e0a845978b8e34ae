// Package llm implements the model-backed content engine over the
// Anthropic Messages API. Every method builds a single prompt that
// demands a bare JSON answer in the same wire shape the manual engine
// produces, so the mode adapters can swap engines without callers
// noticing. Calls fail with domain.ErrEngineUnavailable when no
// credential is configured.
package llm

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"strings"

	anthropic "github.com/anthropics/anthropic-sdk-go"
	"github.com/anthropics/anthropic-sdk-go/option"

	"github.com/vocabdeck/vocabdeck-backend/internal/config"
	"github.com/vocabdeck/vocabdeck-backend/internal/domain"
)

// Client is the model-backed engine. One client serves every
// functional area; the mode adapters hand it out behind their
// per-area interfaces.
type Client struct {
	log *slog.Logger
	api anthropic.Client
	cfg config.EngineConfig
}

// NewClient builds the engine from config. Extra request options are
// appended after the credential, so tests can inject a transport.
func NewClient(log *slog.Logger, cfg config.EngineConfig, opts ...option.RequestOption) *Client {
	reqOpts := make([]option.RequestOption, 0, len(opts)+1)
	if cfg.APIKey != "" {
		reqOpts = append(reqOpts, option.WithAPIKey(cfg.APIKey))
	}
	reqOpts = append(reqOpts, opts...)

	return &Client{
		log: log.With("service", "llm"),
		api: anthropic.NewClient(reqOpts...),
		cfg: cfg,
	}
}

// Configured reports whether an API credential is available.
func (c *Client) Configured() bool {
	return c.cfg.APIKey != ""
}

// complete sends one prompt and returns the raw text of the first
// content block.
func (c *Client) complete(ctx context.Context, prompt string) (string, error) {
	if !c.Configured() {
		return "", fmt.Errorf("model engine: %w", domain.ErrEngineUnavailable)
	}

	if c.cfg.Timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, c.cfg.Timeout)
		defer cancel()
	}

	msg, err := c.api.Messages.New(ctx, anthropic.MessageNewParams{
		Model:     anthropic.Model(c.cfg.Model),
		MaxTokens: c.cfg.MaxTokens,
		Messages: []anthropic.MessageParam{
			anthropic.NewUserMessage(anthropic.NewTextBlock(prompt)),
		},
	})
	if err != nil {
		return "", fmt.Errorf("model call: %w", err)
	}
	if len(msg.Content) == 0 {
		return "", errors.New("empty model response")
	}
	return msg.Content[0].Text, nil
}

// completeInto runs a prompt and decodes the JSON value in the
// response into out.
func (c *Client) completeInto(ctx context.Context, prompt string, out any) error {
	text, err := c.complete(ctx, prompt)
	if err != nil {
		return err
	}
	raw, err := extractJSON(text)
	if err != nil {
		return err
	}
	if err := json.Unmarshal([]byte(raw), out); err != nil {
		return fmt.Errorf("decode model response: %w", err)
	}
	return nil
}

// extractJSON finds the first complete JSON value in a string,
// tolerating prose or code fences around it.
func extractJSON(s string) (string, error) {
	objStart := strings.Index(s, "{")
	arrStart := strings.Index(s, "[")

	start, end := objStart, strings.LastIndex(s, "}")
	if arrStart != -1 && (objStart == -1 || arrStart < objStart) {
		start, end = arrStart, strings.LastIndex(s, "]")
	}
	if start == -1 || end == -1 || end <= start {
		return "", errors.New("no JSON value found in response")
	}
	return s[start : end+1], nil
}
