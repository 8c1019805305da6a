package postgres

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"

	"github.com/luminainteriors/lumina-be/internal/models"
	"github.com/luminainteriors/lumina-be/internal/storage"
)

const notificationColumns = `id, user_id, type, category, priority, title, message, read, read_at, expires_at, entity_id, entity_type, created_at`

// notExpired excludes rows whose expiry has passed.
const notExpired = `(expires_at IS NULL OR expires_at > NOW())`

// CreateNotification inserts a notification for one recipient.
func (s *Store) CreateNotification(ctx context.Context, n models.Notification) (models.Notification, error) {
	const query = `
	INSERT INTO notifications (user_id, type, category, priority, title, message, expires_at, entity_id, entity_type)
	VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
	RETURNING ` + notificationColumns + `;`
	row := s.pool.QueryRow(ctx, query,
		n.UserID, n.Type, n.Category, n.Priority, n.Title, n.Message,
		n.ExpiresAt, n.EntityID, n.EntityType)
	return scanNotification(row)
}

// ListNotifications returns a user's unexpired notifications, newest first.
func (s *Store) ListNotifications(ctx context.Context, userID int64) ([]models.Notification, error) {
	const query = `
	SELECT ` + notificationColumns + ` FROM notifications
	WHERE user_id = $1 AND ` + notExpired + `
	ORDER BY created_at DESC;`
	rows, err := s.pool.Query(ctx, query, userID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []models.Notification
	for rows.Next() {
		n, err := scanNotification(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, n)
	}
	return out, rows.Err()
}

// CountUnread counts a user's unread, unexpired notifications.
func (s *Store) CountUnread(ctx context.Context, userID int64) (int, error) {
	const query = `
	SELECT COUNT(*) FROM notifications
	WHERE user_id = $1 AND read = FALSE AND ` + notExpired + `;`
	var count int
	err := s.pool.QueryRow(ctx, query, userID).Scan(&count)
	return count, err
}

// MarkRead marks one of the user's notifications as read.
func (s *Store) MarkRead(ctx context.Context, userID, id int64) error {
	tag, err := s.pool.Exec(ctx,
		`UPDATE notifications SET read = TRUE, read_at = NOW() WHERE id = $1 AND user_id = $2;`,
		id, userID)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return storage.ErrNotFound
	}
	return nil
}

// MarkAllRead marks every unread notification of the user as read.
func (s *Store) MarkAllRead(ctx context.Context, userID int64) error {
	_, err := s.pool.Exec(ctx,
		`UPDATE notifications SET read = TRUE, read_at = NOW() WHERE user_id = $1 AND read = FALSE;`,
		userID)
	return err
}

// DeleteNotification removes one of the user's notifications.
func (s *Store) DeleteNotification(ctx context.Context, userID, id int64) error {
	tag, err := s.pool.Exec(ctx,
		`DELETE FROM notifications WHERE id = $1 AND user_id = $2;`, id, userID)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return storage.ErrNotFound
	}
	return nil
}

// PurgeExpired deletes notifications past their expiry, returning the count.
func (s *Store) PurgeExpired(ctx context.Context) (int64, error) {
	tag, err := s.pool.Exec(ctx,
		`DELETE FROM notifications WHERE expires_at IS NOT NULL AND expires_at <= NOW();`)
	if err != nil {
		return 0, err
	}
	return tag.RowsAffected(), nil
}

func scanNotification(row pgx.Row) (models.Notification, error) {
	var n models.Notification
	err := row.Scan(&n.ID, &n.UserID, &n.Type, &n.Category, &n.Priority, &n.Title, &n.Message,
		&n.Read, &n.ReadAt, &n.ExpiresAt, &n.EntityID, &n.EntityType, &n.CreatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return models.Notification{}, storage.ErrNotFound
		}
		return models.Notification{}, err
	}
	return n, nil
}
