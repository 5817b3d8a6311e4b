package output

import (
	"encoding/xml"
	"strings"
)

// SitemapEntry represents a single URL in the sitemap.
type SitemapEntry struct {
	Loc        string
	Lastmod    string
	Priority   string
	ChangeFreq string
}

type urlSet struct {
	XMLName xml.Name   `xml:"urlset"`
	XMLNS   string     `xml:"xmlns,attr"`
	URLs    []urlEntry `xml:"url"`
}

type urlEntry struct {
	Loc        string `xml:"loc"`
	Lastmod    string `xml:"lastmod,omitempty"`
	Priority   string `xml:"priority,omitempty"`
	ChangeFreq string `xml:"changefreq,omitempty"`
}

// GenerateSitemap generates the sitemap XML for the given entries.
// Entry order is preserved, so output is deterministic.
func GenerateSitemap(entries []SitemapEntry) string {
	us := urlSet{
		XMLNS: "http://www.sitemaps.org/schemas/sitemap/0.9",
	}
	for _, e := range entries {
		us.URLs = append(us.URLs, urlEntry{
			Loc:        e.Loc,
			Lastmod:    e.Lastmod,
			Priority:   e.Priority,
			ChangeFreq: e.ChangeFreq,
		})
	}

	data, err := xml.MarshalIndent(us, "", "  ")
	if err != nil {
		return ""
	}
	return xml.Header + string(data)
}

// NewSitemapEntry creates a sitemap entry for a path under the given base URL.
func NewSitemapEntry(baseURL, path, lastmod, priority, changefreq string) SitemapEntry {
	loc := strings.TrimRight(baseURL, "/") + path
	return SitemapEntry{
		Loc:        loc,
		Lastmod:    lastmod,
		Priority:   priority,
		ChangeFreq: changefreq,
	}
}
