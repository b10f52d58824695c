package summarizer

import (
	"context"
	"io"

	"google.golang.org/genai"

	"github.com/nguyentantai21042004/caption-summary/internal/config"
	"github.com/nguyentantai21042004/caption-summary/internal/credential"
	"github.com/nguyentantai21042004/caption-summary/internal/logger"
)

// contentGenerator is the slice of *genai.Models used here.
type contentGenerator interface {
	GenerateContent(ctx context.Context, model string, contents []*genai.Content, config *genai.GenerateContentConfig) (*genai.GenerateContentResponse, error)
}

type clientFactory func(ctx context.Context, apiKey string) (contentGenerator, error)

type implSummarizer struct {
	model           string
	disableThinking bool
	banner          string
	creds           credential.Provider
	newClient       clientFactory
	out             io.Writer
	logger          logger.Logger
}

// New creates a Summarizer that prints results to out.
func New(cfg *config.Config, creds credential.Provider, out io.Writer, log logger.Logger) Summarizer {
	return &implSummarizer{
		model:           cfg.Gemini.Model,
		disableThinking: !cfg.Gemini.EnableThinking,
		banner:          cfg.Prompt.Banner,
		creds:           creds,
		newClient:       geminiClientFactory(cfg.Gemini.BaseURL),
		out:             out,
		logger:          log,
	}
}

func geminiClientFactory(baseURL string) clientFactory {
	return func(ctx context.Context, apiKey string) (contentGenerator, error) {
		client, err := genai.NewClient(ctx, &genai.ClientConfig{
			APIKey:      apiKey,
			Backend:     genai.BackendGeminiAPI,
			HTTPOptions: genai.HTTPOptions{BaseURL: baseURL},
		})
		if err != nil {
			return nil, err
		}
		return client.Models, nil
	}
}
