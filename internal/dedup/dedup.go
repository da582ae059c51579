// Package dedup cleans sliding-window repetition artifacts out of
// auto-generated caption tracks. Captioning engines re-emit
// overlapping text windows, so the same phrase or near-sentence shows
// up many times in direct succession; left alone this bloats the token
// budget of anything summarizing the transcript downstream.
//
// The pipeline is a strict linear composition of pure stages:
// caption parsing, contiguous pattern-repeat elimination,
// near-duplicate sentence elimination, and adjacent token collapsing.
// Stages only ever remove content, so the pipeline never grows its
// input and running it twice is a no-op.
package dedup

import "strings"

// Clean runs the full deduplication pipeline over a raw caption
// document and returns the cleaned transcript with statistics.
// Empty or whitespace-only input yields an empty result, not an error.
func (d *implDeduper) Clean(raw string) Result {
	originalLines := 0
	if strings.TrimSpace(raw) != "" {
		originalLines = len(strings.Split(raw, "\n"))
	}

	content := d.parseCaptions(raw)
	tokens := strings.Fields(strings.Join(content, " "))
	originalWords := len(tokens)

	tokens = d.collapsePatternRepeats(tokens)
	text := d.dropRepeatedSentences(strings.Join(tokens, " "))
	tokens = collapseAdjacentDuplicates(strings.Fields(text))
	cleaned := strings.Join(tokens, " ")

	return Result{
		Text: cleaned,
		Stats: Stats{
			OriginalLines: originalLines,
			OriginalWords: originalWords,
			CleanedWords:  len(tokens),
			CleanedChars:  len(cleaned),
		},
	}
}
