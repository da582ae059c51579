package dedup

// Deduper cleans sliding-window repetition artifacts out of a raw
// caption document and returns a single plain-text transcript.
type Deduper interface {
	Clean(raw string) Result
}

// Result is the cleaned transcript plus statistics about the run.
type Result struct {
	Text  string
	Stats Stats
}

// Stats describes how much the pipeline removed. OriginalLines counts
// physical lines of the raw document; word counts are whitespace tokens.
type Stats struct {
	OriginalLines int
	OriginalWords int
	CleanedWords  int
	CleanedChars  int
}
