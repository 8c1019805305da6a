package postgres

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"

	"github.com/luminainteriors/lumina-be/internal/models"
	"github.com/luminainteriors/lumina-be/internal/storage"
)

const userColumns = `id, name, email, password_hash, role, permissions, active, last_login_at, created_at, updated_at`

// CreateUser inserts a new user row.
func (s *Store) CreateUser(ctx context.Context, user models.User) (models.User, error) {
	const query = `
	INSERT INTO users (name, email, password_hash, role, permissions, active)
	VALUES ($1, $2, $3, $4, $5, $6)
	RETURNING ` + userColumns + `;`
	row := s.pool.QueryRow(ctx, query,
		user.Name, user.Email, user.PasswordHash, user.Role, user.Permissions, user.Active)
	created, err := scanUser(row)
	if err != nil {
		return models.User{}, translateError(err)
	}
	return created, nil
}

// ListUsers returns all users, newest first.
func (s *Store) ListUsers(ctx context.Context) ([]models.User, error) {
	const query = `SELECT ` + userColumns + ` FROM users ORDER BY created_at DESC;`
	rows, err := s.pool.Query(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var users []models.User
	for rows.Next() {
		user, err := scanUser(rows)
		if err != nil {
			return nil, err
		}
		users = append(users, user)
	}
	return users, rows.Err()
}

// FindUserByID fetches a user by id.
func (s *Store) FindUserByID(ctx context.Context, id int64) (models.User, error) {
	const query = `SELECT ` + userColumns + ` FROM users WHERE id = $1;`
	return scanUser(s.pool.QueryRow(ctx, query, id))
}

// FindUserByEmail fetches a user by email address.
func (s *Store) FindUserByEmail(ctx context.Context, email string) (models.User, error) {
	const query = `SELECT ` + userColumns + ` FROM users WHERE email = $1;`
	return scanUser(s.pool.QueryRow(ctx, query, email))
}

// UpdateUser persists mutable user fields.
func (s *Store) UpdateUser(ctx context.Context, user models.User) (models.User, error) {
	const query = `
	UPDATE users
	SET name = $2, email = $3, password_hash = $4, role = $5, permissions = $6, active = $7, updated_at = NOW()
	WHERE id = $1
	RETURNING ` + userColumns + `;`
	row := s.pool.QueryRow(ctx, query,
		user.ID, user.Name, user.Email, user.PasswordHash, user.Role, user.Permissions, user.Active)
	updated, err := scanUser(row)
	if err != nil {
		return models.User{}, translateError(err)
	}
	return updated, nil
}

// DeleteUser removes a user. Removing the last remaining superadmin is
// refused with storage.ErrLastSuperadmin.
func (s *Store) DeleteUser(ctx context.Context, id int64) error {
	user, err := s.FindUserByID(ctx, id)
	if err != nil {
		return err
	}
	if user.Role == models.RoleSuperadmin {
		count, err := s.CountSuperadmins(ctx)
		if err != nil {
			return err
		}
		if count <= 1 {
			return storage.ErrLastSuperadmin
		}
	}
	tag, err := s.pool.Exec(ctx, `DELETE FROM users WHERE id = $1;`, id)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return storage.ErrNotFound
	}
	return nil
}

// TouchLastLogin records a successful login.
func (s *Store) TouchLastLogin(ctx context.Context, id int64) error {
	_, err := s.pool.Exec(ctx, `UPDATE users SET last_login_at = NOW() WHERE id = $1;`, id)
	return err
}

// CountSuperadmins counts active superadmin accounts.
func (s *Store) CountSuperadmins(ctx context.Context) (int, error) {
	var count int
	err := s.pool.QueryRow(ctx,
		`SELECT COUNT(*) FROM users WHERE role = $1;`, models.RoleSuperadmin).Scan(&count)
	return count, err
}

func scanUser(row pgx.Row) (models.User, error) {
	var user models.User
	err := row.Scan(&user.ID, &user.Name, &user.Email, &user.PasswordHash, &user.Role,
		&user.Permissions, &user.Active, &user.LastLoginAt, &user.CreatedAt, &user.UpdatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return models.User{}, storage.ErrNotFound
		}
		return models.User{}, err
	}
	return user, nil
}
