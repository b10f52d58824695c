package summarizer

import "context"

// Summarizer asks Gemini for a one-paragraph summary of a prompt.
// Summarize never returns an error: failures are logged and reported as nil.
type Summarizer interface {
	Summarize(ctx context.Context, prompt string) *Summary
}

// Summary is the text Gemini returned and the model that produced it.
type Summary struct {
	Text  string
	Model string
}
