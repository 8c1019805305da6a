package dto

import "github.com/luminainteriors/lumina-be/internal/models"

type ProjectRequest struct {
	Title       string                `json:"title"`
	Description string                `json:"description"`
	Category    string                `json:"category"`
	Images      []models.ProjectImage `json:"images"`
	Area        string                `json:"area"`
	BudgetRange string                `json:"budget_range"`
	Duration    string                `json:"duration"`
	Location    string                `json:"location"`
	Published   bool                  `json:"published"`
	Featured    bool                  `json:"featured"`
	Sequence    int                   `json:"sequence"`
}

type SequenceRequest struct {
	Sequence int `json:"sequence"`
}

type PostRequest struct {
	Title           string   `json:"title"`
	Slug            string   `json:"slug"`
	Excerpt         string   `json:"excerpt"`
	Content         string   `json:"content"`
	CoverImage      string   `json:"cover_image"`
	Tags            []string `json:"tags"`
	Published       bool     `json:"published"`
	MetaTitle       string   `json:"meta_title"`
	MetaDescription string   `json:"meta_description"`
}

type SEOPageRequest struct {
	Title             string `json:"title"`
	Description       string `json:"description"`
	Keywords          string `json:"keywords"`
	OGTitle           string `json:"og_title"`
	OGDescription     string `json:"og_description"`
	OGImage           string `json:"og_image"`
	TwitterCard       string `json:"twitter_card"`
	SitemapPriority   string `json:"sitemap_priority"`
	SitemapChangeFreq string `json:"sitemap_changefreq"`
}
