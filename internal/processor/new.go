package processor

import (
	"github.com/nmtri2110/transcript-flow/internal/config"
	"github.com/nmtri2110/transcript-flow/internal/dedup"
	"github.com/nmtri2110/transcript-flow/internal/fetcher"
	"github.com/nmtri2110/transcript-flow/internal/logger"
)

type implProcessor struct {
	cfg     *config.Config
	deduper dedup.Deduper
	fetcher fetcher.Fetcher
	logger  logger.Logger
}

// New creates a new Processor instance
func New(cfg *config.Config, d dedup.Deduper, f fetcher.Fetcher, log logger.Logger) Processor {
	return &implProcessor{
		cfg:     cfg,
		deduper: d,
		fetcher: f,
		logger:  log,
	}
}
