package render

import (
	"bytes"
	"embed"
	"fmt"
	"html/template"

	"shopsites/internal/sitegen/config"
	"shopsites/internal/sitegen/shop"
)

//go:embed all:templates
var templateFS embed.FS

// Engine is the template rendering engine. Templates are embedded so the
// binary needs nothing beyond the CSV input at run time.
type Engine struct {
	tmpl *template.Template
	cfg  *config.Config
}

// OverviewContext is the template context for the overview page.
type OverviewContext struct {
	Site      config.SiteConfig
	Shops     []*shop.Shop
	Fallbacks config.FallbackConfig
	ShopCount int
}

// DetailContext is the template context for one shop's detail page.
type DetailContext struct {
	Site      config.SiteConfig
	Shop      *shop.Shop
	Fallbacks config.FallbackConfig
}

// NewEngine creates a render engine from the embedded templates.
func NewEngine(cfg *config.Config) (*Engine, error) {
	tmpl, err := template.New("").
		Funcs(BuildFuncMap()).
		ParseFS(templateFS, "templates/*.html", "templates/_styles.css")
	if err != nil {
		return nil, fmt.Errorf("parsing embedded templates: %w", err)
	}
	return &Engine{tmpl: tmpl, cfg: cfg}, nil
}

// RenderOverview renders the overview page listing every shop as a card.
func (e *Engine) RenderOverview(ctx OverviewContext) (string, error) {
	return e.render("index.html", ctx)
}

// RenderDetail renders a single shop's detail page.
func (e *Engine) RenderDetail(ctx DetailContext) (string, error) {
	return e.render("shop.html", ctx)
}

// RenderCSS returns the shared stylesheet content.
func (e *Engine) RenderCSS() (string, error) {
	return e.render("_styles.css", nil)
}

func (e *Engine) render(name string, data interface{}) (string, error) {
	t := e.tmpl.Lookup(name)
	if t == nil {
		return "", fmt.Errorf("template %q not found", name)
	}

	var buf bytes.Buffer
	if err := t.Execute(&buf, data); err != nil {
		return "", fmt.Errorf("executing template %q: %w", name, err)
	}

	return buf.String(), nil
}
