package fetcher

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"
)

// FetchAll reads video URLs from urlsPath and downloads their
// auto-generated caption tracks into destDir using yt-dlp. The video
// itself is never downloaded. An empty URL file yields no work, not an
// error.
func (f *implFetcher) FetchAll(ctx context.Context, urlsPath, destDir string) ([]string, error) {
	urls, err := readURLFile(urlsPath)
	if err != nil {
		return nil, fmt.Errorf("read url file: %w", err)
	}

	if len(urls) == 0 {
		f.logger.Info(ctx, "No URLs found in %s", urlsPath)
		return nil, nil
	}

	if err := os.MkdirAll(destDir, 0755); err != nil {
		return nil, fmt.Errorf("create dest dir: %w", err)
	}

	f.logger.Info(ctx, "Fetching captions for %d URLs", len(urls))

	var captions []string
	for i, url := range urls {
		f.logger.Info(ctx, "[%d/%d] Fetching captions: %s", i+1, len(urls), url)

		files, err := f.fetchOne(ctx, url, destDir)
		if err != nil {
			f.logger.Error(ctx, "Failed to fetch captions for %s: %v", url, err)
			continue
		}
		if len(files) == 0 {
			f.logger.Warn(ctx, "No caption track available for %s", url)
			continue
		}
		captions = append(captions, files...)
	}

	return captions, nil
}

// fetchOne downloads the auto-generated subtitle track for a single
// URL and returns the new caption files in destDir.
func (f *implFetcher) fetchOne(ctx context.Context, url, destDir string) ([]string, error) {
	before, err := listCaptionFiles(destDir)
	if err != nil {
		return nil, err
	}

	args := []string{
		"--skip-download",
		"--write-auto-subs",
		"--sub-langs", f.cfg.Fetcher.Language,
		"--sub-format", f.cfg.Fetcher.SubtitleFormat,
		"--no-progress",
		"-o", "%(id)s.%(ext)s",
		url,
	}

	if _, err := f.executor.ExecuteInDir(ctx, destDir, f.cfg.Fetcher.BinaryPath, args...); err != nil {
		return nil, fmt.Errorf("run %s: %w", f.cfg.Fetcher.BinaryPath, err)
	}

	after, err := listCaptionFiles(destDir)
	if err != nil {
		return nil, err
	}

	var fresh []string
	for path := range after {
		if !before[path] {
			fresh = append(fresh, path)
		}
	}
	sort.Strings(fresh)
	return fresh, nil
}

// readURLFile parses a .urls file: one URL per line, blank lines and
// lines starting with # are ignored.
func readURLFile(path string) ([]string, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	var urls []string
	for _, line := range strings.Split(string(data), "\n") {
		line = strings.TrimSpace(line)
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		urls = append(urls, line)
	}
	return urls, nil
}

func listCaptionFiles(dir string) (map[string]bool, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, err
	}

	files := make(map[string]bool)
	for _, e := range entries {
		if e.IsDir() {
			continue
		}
		ext := strings.ToLower(filepath.Ext(e.Name()))
		if ext == ".vtt" || ext == ".srt" {
			files[filepath.Join(dir, e.Name())] = true
		}
	}
	return files, nil
}
