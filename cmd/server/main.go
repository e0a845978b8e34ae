// Command server runs the vocabulary content backend: it loads the
// curated content directory, fixes the serving engines for the
// configured mode, and serves the REST API until SIGINT or SIGTERM.
//
// Configuration comes from config.yaml (CONFIG_PATH to override) with
// environment variable overrides.
//
// Exit codes: 0 = clean shutdown, 1 = error.
package main

import (
	"context"
	"log"
	"os/signal"
	"syscall"

	"github.com/vocabdeck/vocabdeck-backend/internal/app"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	if err := app.Run(ctx); err != nil {
		log.Fatalf("server: %v", err)
	}
}
