package build

import (
	"fmt"
	"os"
	"path/filepath"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"shopsites/internal/sitegen/config"
	"shopsites/internal/sitegen/loader"
	"shopsites/internal/sitegen/output"
	"shopsites/internal/sitegen/render"
	"shopsites/internal/sitegen/shop"
)

// Builder orchestrates the entire site generation pipeline.
type Builder struct {
	cfg    *config.Config
	logger *zap.Logger
}

// NewBuilder creates a new builder. A nil logger disables logging.
func NewBuilder(cfg *config.Config, logger *zap.Logger) *Builder {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Builder{cfg: cfg, logger: logger}
}

// Build runs the complete pipeline: ingest the CSV export, then write the
// overview page, one detail page per shop, the shared stylesheet, and the
// auxiliary files. Reruns overwrite the output tree in place.
func (b *Builder) Build() error {
	b.logger.Info("building site", zap.String("site", b.cfg.Site.Name))

	ldr := loader.New(b.cfg, b.logger)
	shops, err := ldr.Load()
	if err != nil {
		return fmt.Errorf("loading shops: %w", err)
	}
	if len(shops) == 0 {
		return fmt.Errorf("no valid shops found in %s", b.cfg.Paths.Data)
	}
	b.logger.Info("loaded shops", zap.Int("count", len(shops)))

	engine, err := render.NewEngine(b.cfg)
	if err != nil {
		return fmt.Errorf("initializing render engine: %w", err)
	}

	outDir := b.cfg.Paths.Output
	if err := os.MkdirAll(outDir, 0o755); err != nil {
		return fmt.Errorf("creating output dir: %w", err)
	}

	if err := b.writeStylesheet(engine, outDir); err != nil {
		return err
	}
	if err := b.writeOverview(engine, shops, outDir); err != nil {
		return err
	}

	// Slug assignment finished inside the loader, so detail pages are
	// independent of each other and can be written in parallel.
	g := new(errgroup.Group)
	g.SetLimit(b.cfg.Build.Parallelism)
	for _, s := range shops {
		s := s
		g.Go(func() error {
			return b.writeDetailPage(engine, s, outDir)
		})
	}
	if err := g.Wait(); err != nil {
		return err
	}
	b.logger.Info("rendered detail pages", zap.Int("pages", len(shops)))

	if b.cfg.Site.BaseURL != "" {
		if err := b.writeSitemap(shops, outDir); err != nil {
			return err
		}
		robots := output.GenerateRobotsTxt(b.cfg)
		if err := os.WriteFile(filepath.Join(outDir, "robots.txt"), []byte(robots), 0o644); err != nil {
			return fmt.Errorf("writing robots.txt: %w", err)
		}
	}

	if b.cfg.Search.IndexEnabled() {
		data, err := output.GenerateSearchIndex(shops)
		if err != nil {
			return fmt.Errorf("generating search index: %w", err)
		}
		if err := os.WriteFile(filepath.Join(outDir, "search-index.json"), data, 0o644); err != nil {
			return fmt.Errorf("writing search index: %w", err)
		}
	}

	b.logger.Info("build complete",
		zap.Int("shops", len(shops)),
		zap.String("output", outDir))

	return nil
}

func (b *Builder) writeStylesheet(engine *render.Engine, outDir string) error {
	css, err := engine.RenderCSS()
	if err != nil {
		return fmt.Errorf("rendering stylesheet: %w", err)
	}

	assetsDir := filepath.Join(outDir, "assets")
	if err := os.MkdirAll(assetsDir, 0o755); err != nil {
		return fmt.Errorf("creating assets dir: %w", err)
	}
	if err := os.WriteFile(filepath.Join(assetsDir, "styles.css"), []byte(css), 0o644); err != nil {
		return fmt.Errorf("writing stylesheet: %w", err)
	}
	return nil
}

func (b *Builder) writeOverview(engine *render.Engine, shops []*shop.Shop, outDir string) error {
	html, err := engine.RenderOverview(render.OverviewContext{
		Site:      b.cfg.Site,
		Shops:     shops,
		Fallbacks: b.cfg.Fallbacks,
		ShopCount: len(shops),
	})
	if err != nil {
		return fmt.Errorf("rendering overview: %w", err)
	}
	if err := os.WriteFile(filepath.Join(outDir, "index.html"), []byte(html), 0o644); err != nil {
		return fmt.Errorf("writing overview: %w", err)
	}
	return nil
}

func (b *Builder) writeDetailPage(engine *render.Engine, s *shop.Shop, outDir string) error {
	html, err := engine.RenderDetail(render.DetailContext{
		Site:      b.cfg.Site,
		Shop:      s,
		Fallbacks: b.cfg.Fallbacks,
	})
	if err != nil {
		return fmt.Errorf("rendering %s: %w", s.Slug, err)
	}

	dir := filepath.Join(outDir, s.Slug)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("creating dir for %s: %w", s.Slug, err)
	}
	if err := os.WriteFile(filepath.Join(dir, "index.html"), []byte(html), 0o644); err != nil {
		return fmt.Errorf("writing detail page %s: %w", s.Slug, err)
	}
	return nil
}

func (b *Builder) writeSitemap(shops []*shop.Shop, outDir string) error {
	baseURL := b.cfg.Site.BaseURL
	lastmod := b.cfg.Sitemap.Lastmod

	entries := []output.SitemapEntry{
		output.NewSitemapEntry(baseURL, "/",
			lastmod,
			b.cfg.Sitemap.Priorities["overview"],
			b.cfg.Sitemap.ChangeFreqs["overview"]),
	}
	for _, s := range shops {
		entries = append(entries, output.NewSitemapEntry(baseURL, "/"+s.Slug+"/",
			lastmod,
			b.cfg.Sitemap.Priorities["detail"],
			b.cfg.Sitemap.ChangeFreqs["detail"]))
	}

	content := output.GenerateSitemap(entries)
	if err := os.WriteFile(filepath.Join(outDir, "sitemap.xml"), []byte(content), 0o644); err != nil {
		return fmt.Errorf("writing sitemap: %w", err)
	}
	return nil
}
