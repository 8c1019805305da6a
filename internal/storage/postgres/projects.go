package postgres

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/luminainteriors/lumina-be/internal/models"
	"github.com/luminainteriors/lumina-be/internal/storage"
)

const projectColumns = `id, title, description, category, images, area, budget_range, duration, location, published, featured, view_count, like_count, sequence, created_at, updated_at`

// CreateProject inserts a portfolio project.
func (s *Store) CreateProject(ctx context.Context, project models.Project) (models.Project, error) {
	images, err := json.Marshal(project.Images)
	if err != nil {
		return models.Project{}, fmt.Errorf("encode images: %w", err)
	}
	const query = `
	INSERT INTO projects (title, description, category, images, area, budget_range, duration, location, published, featured, sequence)
	VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)
	RETURNING ` + projectColumns + `;`
	row := s.pool.QueryRow(ctx, query,
		project.Title, project.Description, project.Category, images,
		project.Area, project.BudgetRange, project.Duration, project.Location,
		project.Published, project.Featured, project.Sequence)
	return scanProject(row)
}

// ListProjects returns projects in display order, optionally published only.
func (s *Store) ListProjects(ctx context.Context, publishedOnly bool) ([]models.Project, error) {
	query := `SELECT ` + projectColumns + ` FROM projects`
	if publishedOnly {
		query += ` WHERE published = TRUE`
	}
	query += ` ORDER BY sequence ASC, created_at DESC;`

	rows, err := s.pool.Query(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var projects []models.Project
	for rows.Next() {
		project, err := scanProject(rows)
		if err != nil {
			return nil, err
		}
		projects = append(projects, project)
	}
	return projects, rows.Err()
}

// FindProjectByID fetches a project by id.
func (s *Store) FindProjectByID(ctx context.Context, id int64) (models.Project, error) {
	const query = `SELECT ` + projectColumns + ` FROM projects WHERE id = $1;`
	return scanProject(s.pool.QueryRow(ctx, query, id))
}

// UpdateProject persists mutable project fields.
func (s *Store) UpdateProject(ctx context.Context, project models.Project) (models.Project, error) {
	images, err := json.Marshal(project.Images)
	if err != nil {
		return models.Project{}, fmt.Errorf("encode images: %w", err)
	}
	const query = `
	UPDATE projects
	SET title = $2, description = $3, category = $4, images = $5, area = $6,
	    budget_range = $7, duration = $8, location = $9, published = $10,
	    featured = $11, sequence = $12, updated_at = NOW()
	WHERE id = $1
	RETURNING ` + projectColumns + `;`
	row := s.pool.QueryRow(ctx, query,
		project.ID, project.Title, project.Description, project.Category, images,
		project.Area, project.BudgetRange, project.Duration, project.Location,
		project.Published, project.Featured, project.Sequence)
	return scanProject(row)
}

// UpdateProjectSequence changes the display order of one project.
func (s *Store) UpdateProjectSequence(ctx context.Context, id int64, sequence int) error {
	tag, err := s.pool.Exec(ctx,
		`UPDATE projects SET sequence = $2, updated_at = NOW() WHERE id = $1;`, id, sequence)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return storage.ErrNotFound
	}
	return nil
}

// DeleteProject removes a project.
func (s *Store) DeleteProject(ctx context.Context, id int64) error {
	tag, err := s.pool.Exec(ctx, `DELETE FROM projects WHERE id = $1;`, id)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return storage.ErrNotFound
	}
	return nil
}

// IncrementProjectViews bumps the public view counter.
func (s *Store) IncrementProjectViews(ctx context.Context, id int64) error {
	_, err := s.pool.Exec(ctx, `UPDATE projects SET view_count = view_count + 1 WHERE id = $1;`, id)
	return err
}

// IncrementProjectLikes bumps the public like counter.
func (s *Store) IncrementProjectLikes(ctx context.Context, id int64) error {
	tag, err := s.pool.Exec(ctx, `UPDATE projects SET like_count = like_count + 1 WHERE id = $1;`, id)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return storage.ErrNotFound
	}
	return nil
}

func scanProject(row pgx.Row) (models.Project, error) {
	var (
		p      models.Project
		images []byte
	)
	err := row.Scan(&p.ID, &p.Title, &p.Description, &p.Category, &images,
		&p.Area, &p.BudgetRange, &p.Duration, &p.Location, &p.Published, &p.Featured,
		&p.ViewCount, &p.LikeCount, &p.Sequence, &p.CreatedAt, &p.UpdatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return models.Project{}, storage.ErrNotFound
		}
		return models.Project{}, err
	}
	if len(images) > 0 {
		if err := json.Unmarshal(images, &p.Images); err != nil {
			return models.Project{}, fmt.Errorf("decode images: %w", err)
		}
	}
	return p, nil
}
