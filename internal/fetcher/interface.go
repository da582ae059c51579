package fetcher

import "context"

// Fetcher downloads auto-generated caption tracks for video URLs.
type Fetcher interface {
	// FetchAll downloads captions for every URL listed in urlsPath
	// (one per line, # comments allowed) into destDir and returns the
	// paths of the downloaded caption files. Per-URL failures are
	// logged and skipped.
	FetchAll(ctx context.Context, urlsPath, destDir string) ([]string, error)
}
