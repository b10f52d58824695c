package credential

import (
	"context"
	"fmt"
	"strings"

	"github.com/caarlos0/env/v11"
)

type envKeys struct {
	GeminiAPIKey string `env:"GEMINI_API_KEY"`
	GoogleAPIKey string `env:"GOOGLE_API_KEY"`
}

type envProvider struct{}

// NewEnv returns a Provider reading GEMINI_API_KEY, then GOOGLE_API_KEY,
// each time a token is requested.
func NewEnv() Provider {
	return envProvider{}
}

func (envProvider) Token(ctx context.Context) (string, error) {
	var keys envKeys
	if err := env.Parse(&keys); err != nil {
		return "", fmt.Errorf("parse environment: %w", err)
	}

	for _, key := range []string{keys.GeminiAPIKey, keys.GoogleAPIKey} {
		if key = strings.TrimSpace(key); key != "" {
			return key, nil
		}
	}

	return "", ErrNoCredential
}

type staticProvider string

// Static returns a Provider that always yields key.
func Static(key string) Provider {
	return staticProvider(key)
}

func (s staticProvider) Token(ctx context.Context) (string, error) {
	if strings.TrimSpace(string(s)) == "" {
		return "", ErrNoCredential
	}
	return string(s), nil
}
