package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"

	"github.com/nmtri2110/transcript-flow/internal/config"
	"github.com/nmtri2110/transcript-flow/internal/dedup"
	"github.com/nmtri2110/transcript-flow/internal/fetcher"
	"github.com/nmtri2110/transcript-flow/internal/logger"
	"github.com/nmtri2110/transcript-flow/internal/processor"
	"github.com/nmtri2110/transcript-flow/internal/summarizer"
	"github.com/nmtri2110/transcript-flow/internal/watcher"
	"github.com/nmtri2110/transcript-flow/pkg/executor"
)

func main() {
	configPath := flag.String("config", "config.yaml", "path to configuration file")
	summarize := flag.Bool("summarize", false, "summarize existing cleaned transcripts and exit")
	flag.Parse()

	ctx := context.Background()

	cfg, err := config.Load(*configPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to load config: %v\n", err)
		os.Exit(1)
	}

	log := logger.New(cfg.Logging.Level)

	if err := ensureDirectories(cfg); err != nil {
		log.Error(ctx, "Failed to create directories: %v", err)
		os.Exit(1)
	}

	if *summarize {
		if len(cfg.Gemini.APIKeys) == 0 {
			log.Error(ctx, "gemini.api_keys is required for -summarize")
			os.Exit(1)
		}
		summ := summarizer.New(cfg.Gemini.APIKeys, cfg.Gemini.Model, log)
		destDir := filepath.Join(cfg.Paths.Output, "summaries")
		if err := summ.SummarizeAll(ctx, cfg.Paths.Output, destDir); err != nil {
			log.Error(ctx, "Summarization failed: %v", err)
			os.Exit(1)
		}
		return
	}

	// Initialize dependencies
	exec := executor.New()
	fetch := fetcher.New(cfg, exec, log)
	deduper := dedup.New(dedup.Options{
		PatternThreshold:  cfg.Dedup.PatternThreshold,
		SentenceThreshold: cfg.Dedup.SentenceThreshold,
		MaxPatternWindow:  cfg.Dedup.MaxPatternWindow,
		MinPatternWindow:  cfg.Dedup.MinPatternWindow,
		MinContentWordLen: cfg.Dedup.MinContentWordLen,
		FingerprintWidth:  cfg.Dedup.FingerprintWidth,
	})
	proc := processor.New(cfg, deduper, fetch, log)

	w, err := watcher.New(cfg.Paths.Input, proc.Process, log, cfg.Performance.MaxConcurrent)
	if err != nil {
		log.Error(ctx, "Failed to create watcher: %v", err)
		os.Exit(1)
	}
	defer w.Stop()

	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)

	errChan := make(chan error, 1)
	go func() {
		if err := w.Start(ctx); err != nil && err != context.Canceled {
			errChan <- err
		}
	}()

	log.Info(ctx, "========================================")
	log.Info(ctx, "Transcript cleaning pipeline is ready!")
	log.Info(ctx, "Monitoring: %s", cfg.Paths.Input)
	log.Info(ctx, "Output: %s", cfg.Paths.Output)
	log.Info(ctx, "Pattern threshold: %.2f, sentence threshold: %.2f", cfg.Dedup.PatternThreshold, cfg.Dedup.SentenceThreshold)
	log.Info(ctx, "Concurrent documents: %d", cfg.Performance.MaxConcurrent)
	log.Info(ctx, "Press Ctrl+C to stop")
	log.Info(ctx, "========================================")

	select {
	case <-sigChan:
		log.Info(ctx, "Shutdown signal received")
	case err := <-errChan:
		log.Error(ctx, "Watcher error: %v", err)
	}

	log.Info(ctx, "Shutting down gracefully...")
	cancel()

	log.Info(ctx, "Transcript pipeline stopped")
}

// ensureDirectories creates required directories if they don't exist
func ensureDirectories(cfg *config.Config) error {
	dirs := []string{
		cfg.Paths.Input,
		cfg.Paths.Output,
		cfg.Paths.Archived,
		cfg.Paths.Temp,
	}

	for _, dir := range dirs {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return fmt.Errorf("create directory %s: %w", dir, err)
		}
	}

	return nil
}
