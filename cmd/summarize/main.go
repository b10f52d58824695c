package main

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os"

	"github.com/joho/godotenv"

	"github.com/nguyentantai21042004/caption-summary/internal/config"
	"github.com/nguyentantai21042004/caption-summary/internal/credential"
	"github.com/nguyentantai21042004/caption-summary/internal/extractor"
	"github.com/nguyentantai21042004/caption-summary/internal/logger"
	"github.com/nguyentantai21042004/caption-summary/internal/processor"
	"github.com/nguyentantai21042004/caption-summary/internal/summarizer"
)

const configPath = "config.yaml"

func main() {
	ctx := context.Background()

	// A local .env may carry GEMINI_API_KEY; a missing file is fine.
	_ = godotenv.Load()

	cfg, err := loadConfig(configPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to load config: %v\n", err)
		os.Exit(1)
	}

	log := logger.New(cfg.Logging.Level)
	defer log.Sync()
	log.Debug(ctx, "Model: %s, thinking enabled: %v", cfg.Gemini.Model, cfg.Gemini.EnableThinking)

	ex := extractor.New(cfg, log)
	sum := summarizer.New(cfg, credential.NewEnv(), os.Stdout, log)
	proc := processor.New(ex, sum, log)

	processor.RunInteractive(ctx, proc, os.Stdin, os.Stdout)
}

// loadConfig reads path, falling back to defaults when the file is absent.
func loadConfig(path string) (*config.Config, error) {
	if _, err := os.Stat(path); errors.Is(err, fs.ErrNotExist) {
		return config.Default(), nil
	}
	return config.Load(path)
}
