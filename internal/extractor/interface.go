package extractor

import "context"

// Extractor turns a JSON subtitle export into a joined transcript and a
// summarization prompt. Extract never returns an error: every failure is
// logged and reported as a nil Result.
type Extractor interface {
	Extract(ctx context.Context, path string) *Result
}

// Result is a successful extraction.
type Result struct {
	// Prompt is the instruction prefix followed by Combined.
	Prompt string
	// Combined is the joined text, also written to OutputPath.
	Combined   string
	OutputPath string
	Records    int
	Skipped    int
}
