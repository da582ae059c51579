package fetcher

import (
	"github.com/nmtri2110/transcript-flow/internal/config"
	"github.com/nmtri2110/transcript-flow/internal/logger"
	"github.com/nmtri2110/transcript-flow/pkg/executor"
)

type implFetcher struct {
	cfg      *config.Config
	executor executor.Executor
	logger   logger.Logger
}

// New creates a new Fetcher instance
func New(cfg *config.Config, exec executor.Executor, log logger.Logger) Fetcher {
	return &implFetcher{
		cfg:      cfg,
		executor: exec,
		logger:   log,
	}
}
