package processor

import (
	"context"
	"time"

	"github.com/nguyentantai21042004/caption-summary/internal/summarizer"
)

// Process extracts the transcript from path and summarizes it.
func (p *implProcessor) Process(ctx context.Context, path string) *summarizer.Summary {
	startTime := time.Now()

	p.logger.Info(ctx, "========================================")
	p.logger.Info(ctx, "Starting subtitle processing: %s", path)
	p.logger.Info(ctx, "========================================")

	// Step 1: Extract transcript
	var prompt string
	if res := p.extractor.Extract(ctx, path); res != nil {
		if res.Combined == "" {
			p.logger.Warn(ctx, "No text extracted from %s", path)
		} else {
			prompt = res.Prompt
		}
	}

	// Step 2: Summarize (an empty prompt is reported and skipped)
	summary := p.summarizer.Summarize(ctx, prompt)

	duration := time.Since(startTime)
	p.logger.Info(ctx, "========================================")
	if summary != nil {
		p.logger.Info(ctx, "Processing completed successfully!")
	} else {
		p.logger.Warn(ctx, "Processing finished without a summary")
	}
	p.logger.Info(ctx, "Processing time: %s", duration)
	p.logger.Info(ctx, "========================================")

	return summary
}
