package processor

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"
)

// Process handles one file from the input directory. Caption and
// transcript files go through the deduplication pipeline; a .urls file
// is expanded by fetching the auto-generated captions of every listed
// video first.
func (p *implProcessor) Process(ctx context.Context, path string) error {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".urls":
		return p.processURLFile(ctx, path)
	case ".vtt", ".srt", ".txt":
		return p.processCaption(ctx, path, true)
	default:
		return fmt.Errorf("unsupported file type: %s", path)
	}
}

// processCaption runs the dedup pipeline over one caption document and
// writes the cleaned transcript to the output directory. When archive
// is true the original moves to the archived folder; otherwise it is a
// temp file and gets removed.
func (p *implProcessor) processCaption(ctx context.Context, path string, archive bool) error {
	startTime := time.Now()

	p.logger.Info(ctx, "Cleaning transcript: %s", path)

	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("read caption file: %w", err)
	}

	result := p.deduper.Clean(string(data))

	outPath := p.outputPath(path)
	if err := os.WriteFile(outPath, []byte(result.Text), 0644); err != nil {
		return fmt.Errorf("write cleaned transcript: %w", err)
	}

	p.logger.Info(ctx, "Cleaned %s: %d lines, %d -> %d words, %d chars (%s)",
		filepath.Base(path),
		result.Stats.OriginalLines,
		result.Stats.OriginalWords,
		result.Stats.CleanedWords,
		result.Stats.CleanedChars,
		time.Since(startTime),
	)

	if archive {
		if err := p.moveToArchived(ctx, path); err != nil {
			p.logger.Warn(ctx, "Failed to archive %s: %v", path, err)
		}
	} else {
		p.cleanupTempFile(ctx, path)
	}

	return nil
}

// processURLFile fetches captions for every URL in the file into the
// temp directory and cleans each downloaded track.
func (p *implProcessor) processURLFile(ctx context.Context, path string) error {
	p.logger.Info(ctx, "Processing URL list: %s", path)

	captions, err := p.fetcher.FetchAll(ctx, path, p.cfg.Paths.Temp)
	if err != nil {
		return fmt.Errorf("fetch captions: %w", err)
	}

	failCount := 0
	for _, captionPath := range captions {
		if err := p.processCaption(ctx, captionPath, false); err != nil {
			p.logger.Error(ctx, "Failed to clean %s: %v", captionPath, err)
			failCount++
		}
	}

	if err := p.moveToArchived(ctx, path); err != nil {
		p.logger.Warn(ctx, "Failed to archive %s: %v", path, err)
	}

	if failCount > 0 {
		return fmt.Errorf("%d of %d fetched captions failed", failCount, len(captions))
	}

	p.logger.Info(ctx, "URL list done: %d transcripts cleaned", len(captions))
	return nil
}

// outputPath maps an input caption path to its cleaned transcript path
// in the output directory.
func (p *implProcessor) outputPath(path string) string {
	base := filepath.Base(path)
	name := strings.TrimSuffix(base, filepath.Ext(base))
	// yt-dlp names auto subs like "<id>.en.vtt"; drop the language tag
	if ext := filepath.Ext(name); len(ext) == 3 {
		name = strings.TrimSuffix(name, ext)
	}
	return filepath.Join(p.cfg.Paths.Output, name+".txt")
}
