package summarizer

import "context"

// Summarizer reads cleaned transcripts and produces LLM-generated
// markdown summaries plus styled docx exports.
type Summarizer interface {
	SummarizeAll(ctx context.Context, transcriptDir, destDir string) error
}
