package postgres

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"

	"github.com/luminainteriors/lumina-be/internal/models"
	"github.com/luminainteriors/lumina-be/internal/storage"
)

const seoColumns = `id, page, title, description, keywords, og_title, og_description, og_image, twitter_card, sitemap_priority, sitemap_changefreq, updated_at`

// ListSEOPages returns all SEO records ordered by page key.
func (s *Store) ListSEOPages(ctx context.Context) ([]models.SEOPage, error) {
	const query = `SELECT ` + seoColumns + ` FROM seo_pages ORDER BY page ASC;`
	rows, err := s.pool.Query(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var pages []models.SEOPage
	for rows.Next() {
		page, err := scanSEOPage(rows)
		if err != nil {
			return nil, err
		}
		pages = append(pages, page)
	}
	return pages, rows.Err()
}

// FindSEOPage fetches the record for a logical page.
func (s *Store) FindSEOPage(ctx context.Context, page string) (models.SEOPage, error) {
	const query = `SELECT ` + seoColumns + ` FROM seo_pages WHERE page = $1;`
	return scanSEOPage(s.pool.QueryRow(ctx, query, page))
}

// UpsertSEOPage creates or replaces the record for a logical page.
func (s *Store) UpsertSEOPage(ctx context.Context, p models.SEOPage) (models.SEOPage, error) {
	const query = `
	INSERT INTO seo_pages (page, title, description, keywords, og_title, og_description, og_image, twitter_card, sitemap_priority, sitemap_changefreq, updated_at)
	VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, NOW())
	ON CONFLICT (page) DO UPDATE SET
		title = EXCLUDED.title,
		description = EXCLUDED.description,
		keywords = EXCLUDED.keywords,
		og_title = EXCLUDED.og_title,
		og_description = EXCLUDED.og_description,
		og_image = EXCLUDED.og_image,
		twitter_card = EXCLUDED.twitter_card,
		sitemap_priority = EXCLUDED.sitemap_priority,
		sitemap_changefreq = EXCLUDED.sitemap_changefreq,
		updated_at = NOW()
	RETURNING ` + seoColumns + `;`
	row := s.pool.QueryRow(ctx, query,
		p.Page, p.Title, p.Description, p.Keywords, p.OGTitle, p.OGDescription,
		p.OGImage, p.TwitterCard, p.SitemapPriority, p.SitemapChangeFreq)
	return scanSEOPage(row)
}

// DeleteSEOPage removes the record for a logical page.
func (s *Store) DeleteSEOPage(ctx context.Context, page string) error {
	tag, err := s.pool.Exec(ctx, `DELETE FROM seo_pages WHERE page = $1;`, page)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return storage.ErrNotFound
	}
	return nil
}

func scanSEOPage(row pgx.Row) (models.SEOPage, error) {
	var p models.SEOPage
	err := row.Scan(&p.ID, &p.Page, &p.Title, &p.Description, &p.Keywords,
		&p.OGTitle, &p.OGDescription, &p.OGImage, &p.TwitterCard,
		&p.SitemapPriority, &p.SitemapChangeFreq, &p.UpdatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return models.SEOPage{}, storage.ErrNotFound
		}
		return models.SEOPage{}, err
	}
	return p, nil
}
