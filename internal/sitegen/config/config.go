package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// Load reads and parses a YAML config file, applies defaults, and validates.
// A missing file is not an error: every setting has a usable default.
func Load(path string) (*Config, error) {
	var cfg Config

	data, err := os.ReadFile(path)
	switch {
	case os.IsNotExist(err):
		cfg.ConfigDir = "."
	case err != nil:
		return nil, fmt.Errorf("reading config %s: %w", path, err)
	default:
		if err := yaml.Unmarshal(data, &cfg); err != nil {
			return nil, fmt.Errorf("parsing config %s: %w", path, err)
		}
		cfg.ConfigDir = filepath.Dir(path)
	}

	applyDefaults(&cfg)

	if err := validate(&cfg); err != nil {
		return nil, fmt.Errorf("validating config: %w", err)
	}

	// Resolve relative paths against config directory
	resolvePaths(&cfg)

	return &cfg, nil
}

func applyDefaults(cfg *Config) {
	if cfg.Site.Name == "" {
		cfg.Site.Name = "Shop Directory"
	}
	if cfg.Site.Tagline == "" {
		cfg.Site.Tagline = "Every shop gets its own page with ratings, address, and services."
	}
	if cfg.Site.Language == "" {
		cfg.Site.Language = "en"
	}
	if cfg.Site.Footer == "" {
		cfg.Site.Footer = "Generated from a local maps export"
	}
	if cfg.Paths.Data == "" {
		cfg.Paths.Data = "data/listings.csv"
	}
	if cfg.Paths.Output == "" {
		cfg.Paths.Output = "docs"
	}
	if cfg.Data.Format == "" {
		cfg.Data.Format = "csv"
	}
	if cfg.Data.LinkPrefix == "" {
		cfg.Data.LinkPrefix = "https://www.google.com/maps/place"
	}
	if cfg.Build.Parallelism == 0 {
		cfg.Build.Parallelism = 16
	}

	// Default fallback text per optional field
	if cfg.Fallbacks.Category == "" {
		cfg.Fallbacks.Category = "Local business"
	}
	if cfg.Fallbacks.Rating == "" {
		cfg.Fallbacks.Rating = "Not yet rated"
	}
	if cfg.Fallbacks.Price == "" {
		cfg.Fallbacks.Price = "Price unlisted"
	}
	if cfg.Fallbacks.Address == "" {
		cfg.Fallbacks.Address = "Address unavailable"
	}
	if cfg.Fallbacks.Status == "" {
		cfg.Fallbacks.Status = "Status unknown"
	}
	if cfg.Fallbacks.Hours == "" {
		cfg.Fallbacks.Hours = "Hours not listed"
	}
	if cfg.Fallbacks.Services == "" {
		cfg.Fallbacks.Services = "Service details coming soon"
	}

	// Default sitemap priorities
	if cfg.Sitemap.Priorities == nil {
		cfg.Sitemap.Priorities = map[string]string{
			"overview": "1.0",
			"detail":   "0.8",
		}
	}
	if cfg.Sitemap.ChangeFreqs == nil {
		cfg.Sitemap.ChangeFreqs = map[string]string{
			"overview": "weekly",
			"detail":   "monthly",
		}
	}
}

func validate(cfg *Config) error {
	if cfg.Build.Parallelism < 1 {
		return fmt.Errorf("build.parallelism must be positive, got %d", cfg.Build.Parallelism)
	}
	if cfg.Paths.Data == cfg.Paths.Output {
		return fmt.Errorf("paths.data and paths.output must differ")
	}
	return nil
}

func resolvePaths(cfg *Config) {
	resolve := func(p string) string {
		if filepath.IsAbs(p) {
			return p
		}
		return filepath.Join(cfg.ConfigDir, p)
	}

	cfg.Paths.Data = resolve(cfg.Paths.Data)
	cfg.Paths.Output = resolve(cfg.Paths.Output)
}
