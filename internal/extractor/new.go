package extractor

import (
	"github.com/nguyentantai21042004/caption-summary/internal/config"
	"github.com/nguyentantai21042004/caption-summary/internal/logger"
)

type implExtractor struct {
	field       string
	separator   string
	instruction string
	outputExt   string
	logger      logger.Logger
}

// New creates an Extractor from the extract and prompt settings of cfg.
func New(cfg *config.Config, log logger.Logger) Extractor {
	return &implExtractor{
		field:       cfg.Extract.Field,
		separator:   cfg.Extract.JoinSeparator(),
		instruction: cfg.Prompt.Instruction,
		outputExt:   cfg.Extract.OutputExt,
		logger:      log,
	}
}
