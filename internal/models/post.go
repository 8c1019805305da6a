package models

import (
	"strings"
	"time"
)

// BlogPost is a long-form article.
type BlogPost struct {
	ID              int64      `json:"id"`
	Title           string     `json:"title"`
	Slug            string     `json:"slug"`
	Excerpt         string     `json:"excerpt,omitempty"`
	Content         string     `json:"content"`
	CoverImage      string     `json:"cover_image,omitempty"`
	Tags            []string   `json:"tags"`
	Published       bool       `json:"published"`
	PublishedAt     *time.Time `json:"published_at,omitempty"`
	ViewCount       int64      `json:"view_count"`
	LikeCount       int64      `json:"like_count"`
	ReadingMinutes  int        `json:"reading_minutes"`
	MetaTitle       string     `json:"meta_title,omitempty"`
	MetaDescription string     `json:"meta_description,omitempty"`
	CreatedAt       time.Time  `json:"created_at"`
	UpdatedAt       time.Time  `json:"updated_at"`
}

// readingWordsPerMinute is the assumed adult reading speed.
const readingWordsPerMinute = 200

// EstimateReadingMinutes computes the reading-time estimate for a body of
// text, never less than one minute.
func EstimateReadingMinutes(content string) int {
	words := len(strings.Fields(content))
	minutes := (words + readingWordsPerMinute - 1) / readingWordsPerMinute
	if minutes < 1 {
		return 1
	}
	return minutes
}
