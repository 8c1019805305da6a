// Package seo builds sitemap and robots.txt output from stored page metadata.
package seo

import (
	"encoding/xml"
	"time"
)

// XMLNamespace is the sitemap XML namespace.
const XMLNamespace = "http://www.sitemaps.org/schemas/sitemap/0.9"

// SitemapURL represents a single URL entry in the sitemap.
type SitemapURL struct {
	Loc        string `xml:"loc"`
	LastMod    string `xml:"lastmod,omitempty"`
	ChangeFreq string `xml:"changefreq,omitempty"`
	Priority   string `xml:"priority,omitempty"`
}

// Sitemap represents the complete sitemap document.
type Sitemap struct {
	XMLName xml.Name     `xml:"urlset"`
	XMLNS   string       `xml:"xmlns,attr"`
	URLs    []SitemapURL `xml:"url"`
}

// SitemapBuilder accumulates URL entries for one sitemap document.
type SitemapBuilder struct {
	siteURL string
	urls    []SitemapURL
}

// NewSitemapBuilder creates a builder rooted at the public site URL.
func NewSitemapBuilder(siteURL string) *SitemapBuilder {
	return &SitemapBuilder{siteURL: siteURL}
}

// AddPage adds a top-level page with explicit sitemap hints.
func (b *SitemapBuilder) AddPage(path, changeFreq, priority string, updatedAt time.Time) {
	url := SitemapURL{
		Loc:        b.join(path),
		ChangeFreq: changeFreq,
		Priority:   priority,
	}
	if !updatedAt.IsZero() {
		url.LastMod = updatedAt.Format(time.RFC3339)
	}
	b.urls = append(b.urls, url)
}

// AddEntry adds a content URL (project or post) with default hints.
func (b *SitemapBuilder) AddEntry(path string, updatedAt time.Time) {
	b.AddPage(path, "weekly", "0.8", updatedAt)
}

// Build marshals the accumulated entries to sitemap XML, header included.
func (b *SitemapBuilder) Build() ([]byte, error) {
	doc := Sitemap{XMLNS: XMLNamespace, URLs: b.urls}
	body, err := xml.MarshalIndent(doc, "", "  ")
	if err != nil {
		return nil, err
	}
	return append([]byte(xml.Header), body...), nil
}

func (b *SitemapBuilder) join(path string) string {
	if path == "" || path == "/" {
		return b.siteURL
	}
	if path[0] != '/' {
		path = "/" + path
	}
	return b.siteURL + path
}
