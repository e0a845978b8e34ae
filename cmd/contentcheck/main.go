// Command contentcheck validates a curated content directory without
// starting the server. It loads every category, runs the same
// validation pass the server runs at startup, and prints the report.
//
// Flags:
//
//	--data-dir  content directory to check (default: from configuration)
//	--strict    treat warnings as failures
//
// Exit codes: 0 = content valid, 1 = validation errors (or warnings
// with --strict), 2 = load failure.
package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"os"
	"strings"

	"github.com/vocabdeck/vocabdeck-backend/internal/adapter/contentdir"
	"github.com/vocabdeck/vocabdeck-backend/internal/app"
	"github.com/vocabdeck/vocabdeck-backend/internal/config"
	"github.com/vocabdeck/vocabdeck-backend/internal/loader"
	"github.com/vocabdeck/vocabdeck-backend/internal/store"
)

func main() {
	dataDirFlag := flag.String("data-dir", "", "content directory to check (default: from configuration)")
	strictFlag := flag.Bool("strict", false, "treat warnings as failures")
	flag.Parse()

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("load config: %v", err)
	}
	if *dataDirFlag != "" {
		cfg.Content.DataDir = *dataDirFlag
	}
	// A check tool should fail fast, not retry.
	cfg.Loader.MaxAttempts = 1

	logger := app.NewLogger(cfg.Log)

	files := contentdir.New(cfg.Content.DataDir)
	st := store.New(logger, files, cfg.Content)
	ld := loader.New(logger, st, cfg.Loader)

	report, err := ld.Initialize(context.Background())
	if err != nil {
		fmt.Fprintf(os.Stderr, "load failed: %v\n", err)
		os.Exit(2)
	}

	stats := st.Stats()
	fmt.Printf("checked %s\n", cfg.Content.DataDir)
	fmt.Printf("words: %d  definitions: %d  sentences: %d  similar: %d  templates: %d  distractor keys: %d\n",
		stats.Words, stats.Definitions, stats.Sentences, stats.SimilarEntries, stats.Templates, stats.DistractorKeys)
	if len(report.Contexts) > 0 {
		fmt.Printf("contexts: %s\n", strings.Join(report.Contexts, ", "))
	}

	for _, msg := range report.Errors {
		fmt.Printf("error: %s\n", msg)
	}
	for _, msg := range report.Warnings {
		fmt.Printf("warning: %s\n", msg)
	}

	switch {
	case !report.Valid:
		fmt.Printf("FAIL: %d errors, %d warnings\n", len(report.Errors), len(report.Warnings))
		os.Exit(1)
	case *strictFlag && len(report.Warnings) > 0:
		fmt.Printf("FAIL (strict): %d warnings\n", len(report.Warnings))
		os.Exit(1)
	default:
		fmt.Printf("OK: %d warnings\n", len(report.Warnings))
	}
}
