package models

import "time"

// SEOPage holds per-page metadata plus sitemap hints. Page is the logical
// page key ("home", "portfolio", "blog", ...).
type SEOPage struct {
	ID                int64     `json:"id"`
	Page              string    `json:"page"`
	Title             string    `json:"title"`
	Description       string    `json:"description,omitempty"`
	Keywords          string    `json:"keywords,omitempty"`
	OGTitle           string    `json:"og_title,omitempty"`
	OGDescription     string    `json:"og_description,omitempty"`
	OGImage           string    `json:"og_image,omitempty"`
	TwitterCard       string    `json:"twitter_card,omitempty"`
	SitemapPriority   string    `json:"sitemap_priority,omitempty"`
	SitemapChangeFreq string    `json:"sitemap_changefreq,omitempty"`
	UpdatedAt         time.Time `json:"updated_at"`
}

// ServiceEntry is one row of the admin-ordered services.json list.
type ServiceEntry struct {
	ID          int64  `json:"id"`
	Title       string `json:"title"`
	Description string `json:"description,omitempty"`
	Icon        string `json:"icon,omitempty"`
	Sequence    int    `json:"sequence"`
}

// SlideshowEntry is one row of the admin-ordered slideshow.json list.
type SlideshowEntry struct {
	ID       int64  `json:"id"`
	Image    string `json:"image"`
	Caption  string `json:"caption,omitempty"`
	Link     string `json:"link,omitempty"`
	Sequence int    `json:"sequence"`
}
