package output

import (
	"fmt"
	"strings"

	"shopsites/internal/sitegen/config"
)

// GenerateRobotsTxt generates a robots.txt file.
func GenerateRobotsTxt(cfg *config.Config) string {
	var lines []string

	lines = append(lines, "User-agent: *")
	if cfg.Robots.AllowsAll() {
		lines = append(lines, "Allow: /")
	}
	lines = append(lines, "")

	for _, bot := range cfg.Robots.ExtraBots {
		lines = append(lines, fmt.Sprintf("User-agent: %s", bot))
		lines = append(lines, "Allow: /")
		lines = append(lines, "")
	}

	if cfg.Site.BaseURL != "" {
		lines = append(lines, fmt.Sprintf("Sitemap: %s/sitemap.xml", strings.TrimRight(cfg.Site.BaseURL, "/")))
	}

	return strings.Join(lines, "\n") + "\n"
}
