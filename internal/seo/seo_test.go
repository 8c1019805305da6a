package seo

import (
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSitemapBuilder(t *testing.T) {
	b := NewSitemapBuilder("https://luminainteriors.com")
	b.AddPage("/", "daily", "1.0", time.Time{})
	b.AddPage("/portfolio", "weekly", "0.9", time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC))
	b.AddEntry("/blog/warm-tones-2026", time.Date(2026, 2, 14, 8, 30, 0, 0, time.UTC))

	out, err := b.Build()
	require.NoError(t, err)
	xml := string(out)

	assert.True(t, strings.HasPrefix(xml, "<?xml"))
	assert.Contains(t, xml, XMLNamespace)
	assert.Contains(t, xml, "<loc>https://luminainteriors.com</loc>")
	assert.Contains(t, xml, "<loc>https://luminainteriors.com/portfolio</loc>")
	assert.Contains(t, xml, "<lastmod>2026-03-01T12:00:00Z</lastmod>")
	assert.Contains(t, xml, "<loc>https://luminainteriors.com/blog/warm-tones-2026</loc>")
	assert.Contains(t, xml, "<priority>1.0</priority>")
}

func TestSitemapBuilderNormalizesPaths(t *testing.T) {
	b := NewSitemapBuilder("https://example.com")
	b.AddEntry("projects/5", time.Time{})

	out, err := b.Build()
	require.NoError(t, err)
	assert.Contains(t, string(out), "<loc>https://example.com/projects/5</loc>")
}

func TestBuildRobots(t *testing.T) {
	out := BuildRobots(RobotsConfig{
		SiteURL:       "https://luminainteriors.com/",
		DisallowPaths: []string{"/preview"},
	})

	assert.Contains(t, out, "User-agent: *\n")
	assert.Contains(t, out, "Disallow: /api/admin\n")
	assert.Contains(t, out, "Disallow: /preview\n")
	assert.Contains(t, out, "Allow: /\n")
	assert.Contains(t, out, "Sitemap: https://luminainteriors.com/sitemap.xml\n")
}
