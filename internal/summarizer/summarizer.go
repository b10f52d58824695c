package summarizer

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"google.golang.org/genai"
)

var (
	ErrNoCandidates     = errors.New("no valid result returned")
	ErrMalformedContent = errors.New("malformed response content")
	ErrEmptyText        = errors.New("empty summary text")
)

// Summarize sends prompt to Gemini in a single request and prints the summary.
func (s *implSummarizer) Summarize(ctx context.Context, prompt string) *Summary {
	if strings.TrimSpace(prompt) == "" {
		s.logger.Warn(ctx, "Nothing to summarize")
		return nil
	}

	apiKey, err := s.creds.Token(ctx)
	if err != nil {
		s.logger.Error(ctx, "Failed to get Gemini API key: %v", err)
		return nil
	}

	client, err := s.newClient(ctx, apiKey)
	if err != nil {
		s.logger.Error(ctx, "Failed to create Gemini client: %v", err)
		return nil
	}

	s.logger.Info(ctx, "Requesting summary from %s (%d bytes)", s.model, len(prompt))

	resp, err := client.GenerateContent(ctx, s.model, genai.Text(prompt), s.generateConfig())
	if err != nil {
		s.logger.Error(ctx, "Gemini request failed: %v", err)
		return nil
	}

	text, err := firstText(resp)
	if err != nil {
		s.logger.Error(ctx, "Gemini response rejected: %v", err)
		return nil
	}

	fmt.Fprintf(s.out, "\n%s\n%s\n", s.banner, text)

	return &Summary{Text: text, Model: s.model}
}

// generateConfig turns thinking off with a zero budget to cut latency.
func (s *implSummarizer) generateConfig() *genai.GenerateContentConfig {
	if !s.disableThinking {
		return nil
	}
	budget := int32(0)
	return &genai.GenerateContentConfig{
		ThinkingConfig: &genai.ThinkingConfig{ThinkingBudget: &budget},
	}
}

// firstText returns the text of the first part of the first candidate.
func firstText(resp *genai.GenerateContentResponse) (string, error) {
	if resp == nil || len(resp.Candidates) == 0 || resp.Candidates[0] == nil {
		return "", ErrNoCandidates
	}

	content := resp.Candidates[0].Content
	if content == nil || len(content.Parts) == 0 {
		return "", ErrMalformedContent
	}

	part := content.Parts[0]
	if part == nil || part.Text == "" {
		return "", ErrEmptyText
	}

	return part.Text, nil
}
