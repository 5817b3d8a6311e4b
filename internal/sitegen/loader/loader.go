package loader

import (
	"go.uber.org/zap"

	"shopsites/internal/sitegen/config"
	"shopsites/internal/sitegen/shop"
)

// Loader is the interface for loading shops from a data source.
type Loader interface {
	Load() ([]*shop.Shop, error)
}

// New creates a loader based on the config data format.
func New(cfg *config.Config, logger *zap.Logger) Loader {
	if logger == nil {
		logger = zap.NewNop()
	}
	switch cfg.Data.Format {
	case "csv":
		return &CSVLoader{Config: cfg, Logger: logger}
	default:
		return &CSVLoader{Config: cfg, Logger: logger}
	}
}
