package postgres

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"

	"github.com/luminainteriors/lumina-be/internal/models"
	"github.com/luminainteriors/lumina-be/internal/storage"
)

const postColumns = `id, title, slug, excerpt, content, cover_image, tags, published, published_at, view_count, like_count, reading_minutes, meta_title, meta_description, created_at, updated_at`

// CreatePost inserts a blog post.
func (s *Store) CreatePost(ctx context.Context, post models.BlogPost) (models.BlogPost, error) {
	const query = `
	INSERT INTO blog_posts (title, slug, excerpt, content, cover_image, tags, published, published_at, reading_minutes, meta_title, meta_description)
	VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)
	RETURNING ` + postColumns + `;`
	row := s.pool.QueryRow(ctx, query,
		post.Title, post.Slug, post.Excerpt, post.Content, post.CoverImage, post.Tags,
		post.Published, post.PublishedAt, post.ReadingMinutes, post.MetaTitle, post.MetaDescription)
	created, err := scanPost(row)
	if err != nil {
		return models.BlogPost{}, translateError(err)
	}
	return created, nil
}

// ListPosts returns posts, optionally published only, newest first.
func (s *Store) ListPosts(ctx context.Context, publishedOnly bool) ([]models.BlogPost, error) {
	query := `SELECT ` + postColumns + ` FROM blog_posts`
	if publishedOnly {
		query += ` WHERE published = TRUE`
	}
	query += ` ORDER BY COALESCE(published_at, created_at) DESC;`

	rows, err := s.pool.Query(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var posts []models.BlogPost
	for rows.Next() {
		post, err := scanPost(rows)
		if err != nil {
			return nil, err
		}
		posts = append(posts, post)
	}
	return posts, rows.Err()
}

// FindPostByID fetches a post by id.
func (s *Store) FindPostByID(ctx context.Context, id int64) (models.BlogPost, error) {
	const query = `SELECT ` + postColumns + ` FROM blog_posts WHERE id = $1;`
	return scanPost(s.pool.QueryRow(ctx, query, id))
}

// FindPostBySlug fetches a post by slug.
func (s *Store) FindPostBySlug(ctx context.Context, slug string) (models.BlogPost, error) {
	const query = `SELECT ` + postColumns + ` FROM blog_posts WHERE slug = $1;`
	return scanPost(s.pool.QueryRow(ctx, query, slug))
}

// UpdatePost persists mutable post fields.
func (s *Store) UpdatePost(ctx context.Context, post models.BlogPost) (models.BlogPost, error) {
	const query = `
	UPDATE blog_posts
	SET title = $2, slug = $3, excerpt = $4, content = $5, cover_image = $6, tags = $7,
	    published = $8, published_at = $9, reading_minutes = $10, meta_title = $11,
	    meta_description = $12, updated_at = NOW()
	WHERE id = $1
	RETURNING ` + postColumns + `;`
	row := s.pool.QueryRow(ctx, query,
		post.ID, post.Title, post.Slug, post.Excerpt, post.Content, post.CoverImage, post.Tags,
		post.Published, post.PublishedAt, post.ReadingMinutes, post.MetaTitle, post.MetaDescription)
	updated, err := scanPost(row)
	if err != nil {
		return models.BlogPost{}, translateError(err)
	}
	return updated, nil
}

// DeletePost removes a post.
func (s *Store) DeletePost(ctx context.Context, id int64) error {
	tag, err := s.pool.Exec(ctx, `DELETE FROM blog_posts WHERE id = $1;`, id)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return storage.ErrNotFound
	}
	return nil
}

// IncrementPostViews bumps the public view counter.
func (s *Store) IncrementPostViews(ctx context.Context, id int64) error {
	_, err := s.pool.Exec(ctx, `UPDATE blog_posts SET view_count = view_count + 1 WHERE id = $1;`, id)
	return err
}

// IncrementPostLikes bumps the public like counter.
func (s *Store) IncrementPostLikes(ctx context.Context, id int64) error {
	tag, err := s.pool.Exec(ctx, `UPDATE blog_posts SET like_count = like_count + 1 WHERE id = $1;`, id)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return storage.ErrNotFound
	}
	return nil
}

func scanPost(row pgx.Row) (models.BlogPost, error) {
	var p models.BlogPost
	err := row.Scan(&p.ID, &p.Title, &p.Slug, &p.Excerpt, &p.Content, &p.CoverImage, &p.Tags,
		&p.Published, &p.PublishedAt, &p.ViewCount, &p.LikeCount, &p.ReadingMinutes,
		&p.MetaTitle, &p.MetaDescription, &p.CreatedAt, &p.UpdatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return models.BlogPost{}, storage.ErrNotFound
		}
		return models.BlogPost{}, err
	}
	return p, nil
}
