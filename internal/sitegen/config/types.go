package config

// Config is the top-level shopsites configuration loaded from YAML.
type Config struct {
	Site      SiteConfig     `yaml:"site"`
	Paths     PathsConfig    `yaml:"paths"`
	Data      DataConfig     `yaml:"data"`
	Fallbacks FallbackConfig `yaml:"fallbacks"`
	Build     BuildConfig    `yaml:"build"`
	Sitemap   SitemapConfig  `yaml:"sitemap"`
	Robots    RobotsConfig   `yaml:"robots"`
	Search    SearchConfig   `yaml:"search"`

	// ConfigDir is the directory containing the config file (set at load time).
	ConfigDir string `yaml:"-"`
}

type SiteConfig struct {
	Name     string `yaml:"name"`
	Tagline  string `yaml:"tagline"`
	BaseURL  string `yaml:"base_url"`
	Language string `yaml:"language"`
	Footer   string `yaml:"footer"`
}

type PathsConfig struct {
	Data   string `yaml:"data"`
	Output string `yaml:"output"`
}

type DataConfig struct {
	Format     string `yaml:"format"`
	LinkPrefix string `yaml:"link_prefix"`
	DedupLinks *bool  `yaml:"dedup_links"`
	HasHeader  bool   `yaml:"has_header"`
}

// FallbackConfig holds the per-field placeholder text rendered when an
// optional field is empty.
type FallbackConfig struct {
	Category string `yaml:"category"`
	Rating   string `yaml:"rating"`
	Price    string `yaml:"price"`
	Address  string `yaml:"address"`
	Status   string `yaml:"status"`
	Hours    string `yaml:"hours"`
	Services string `yaml:"services"`
}

type BuildConfig struct {
	Parallelism int `yaml:"parallelism"`
}

type SitemapConfig struct {
	Lastmod     string            `yaml:"lastmod"`
	Priorities  map[string]string `yaml:"priorities"`
	ChangeFreqs map[string]string `yaml:"change_freqs"`
}

type RobotsConfig struct {
	AllowAll  *bool    `yaml:"allow_all"`
	ExtraBots []string `yaml:"extra_bots"`
}

type SearchConfig struct {
	Enabled *bool `yaml:"enabled"`
}

// DedupEnabled reports whether rows sharing an already-seen link are dropped.
func (d DataConfig) DedupEnabled() bool {
	return d.DedupLinks == nil || *d.DedupLinks
}

// IndexEnabled reports whether the search index file is generated.
func (s SearchConfig) IndexEnabled() bool {
	return s.Enabled == nil || *s.Enabled
}

// AllowsAll reports whether robots.txt allows every crawler.
func (r RobotsConfig) AllowsAll() bool {
	return r.AllowAll == nil || *r.AllowAll
}
