package processor

import (
	"context"

	"github.com/nguyentantai21042004/caption-summary/internal/summarizer"
)

// Processor runs one subtitle file through extraction and summarization.
// A nil result means there was nothing to show; the reason has been logged.
type Processor interface {
	Process(ctx context.Context, path string) *summarizer.Summary
}
