package credential

import (
	"context"
	"errors"
)

// ErrNoCredential is returned when no API key can be found.
var ErrNoCredential = errors.New("no Gemini API key configured (set GEMINI_API_KEY or GOOGLE_API_KEY)")

// Provider produces the API key used to sign Gemini requests.
type Provider interface {
	Token(ctx context.Context) (string, error)
}
