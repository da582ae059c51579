package processor

import "context"

// Processor defines the interface for handling a file dropped into the
// input directory
type Processor interface {
	Process(ctx context.Context, path string) error
}
