package render

import (
	"html/template"
	"strings"

	"shopsites/internal/sitegen/shop"
)

// BuildFuncMap creates the template FuncMap shared by all pages.
func BuildFuncMap() template.FuncMap {
	return template.FuncMap{
		"slug":      shop.ToSlug,
		"lower":     strings.ToLower,
		"upper":     strings.ToUpper,
		"join":      strings.Join,
		"trimSpace": strings.TrimSpace,

		// fallback substitutes placeholder text for empty field values.
		"fallback": func(value, placeholder string) string {
			if strings.TrimSpace(value) == "" {
				return placeholder
			}
			return value
		},
	}
}
