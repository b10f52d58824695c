package processor

import (
	"github.com/nguyentantai21042004/caption-summary/internal/extractor"
	"github.com/nguyentantai21042004/caption-summary/internal/logger"
	"github.com/nguyentantai21042004/caption-summary/internal/summarizer"
)

type implProcessor struct {
	extractor  extractor.Extractor
	summarizer summarizer.Summarizer
	logger     logger.Logger
}

// New creates a new Processor instance
func New(ex extractor.Extractor, sum summarizer.Summarizer, log logger.Logger) Processor {
	return &implProcessor{
		extractor:  ex,
		summarizer: sum,
		logger:     log,
	}
}
