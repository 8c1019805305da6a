package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/luminainteriors/lumina-be/internal/models"
	"github.com/luminainteriors/lumina-be/internal/storage"
)

const contactColumns = `id, name, email, phone, message, service, budget, is_spam, spam_score, status, encrypted, created_at, updated_at`

// CreateContact inserts a contact submission, encrypted blob included.
func (s *Store) CreateContact(ctx context.Context, contact models.Contact) (models.Contact, error) {
	const query = `
	INSERT INTO contacts (name, email, phone, message, service, budget, is_spam, spam_score, status, encrypted)
	VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)
	RETURNING ` + contactColumns + `;`
	row := s.pool.QueryRow(ctx, query,
		contact.Name, contact.Email, contact.Phone, contact.Message,
		contact.Service, contact.Budget, contact.IsSpam, contact.SpamScore,
		contact.Status, contact.Encrypted)
	return scanContact(row)
}

// ListContacts returns contacts matching the filter, newest first.
func (s *Store) ListContacts(ctx context.Context, filter storage.ContactFilter) ([]models.Contact, error) {
	query := `SELECT ` + contactColumns + ` FROM contacts`
	var (
		clauses []string
		args    []any
	)
	if filter.Status != "" {
		args = append(args, filter.Status)
		clauses = append(clauses, fmt.Sprintf("status = $%d", len(args)))
	}
	if filter.Spam != nil {
		args = append(args, *filter.Spam)
		clauses = append(clauses, fmt.Sprintf("is_spam = $%d", len(args)))
	}
	for i, clause := range clauses {
		if i == 0 {
			query += " WHERE " + clause
		} else {
			query += " AND " + clause
		}
	}
	query += " ORDER BY created_at DESC;"

	rows, err := s.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var contacts []models.Contact
	for rows.Next() {
		contact, err := scanContact(rows)
		if err != nil {
			return nil, err
		}
		contacts = append(contacts, contact)
	}
	return contacts, rows.Err()
}

// FindContactByID fetches a contact by id.
func (s *Store) FindContactByID(ctx context.Context, id int64) (models.Contact, error) {
	const query = `SELECT ` + contactColumns + ` FROM contacts WHERE id = $1;`
	return scanContact(s.pool.QueryRow(ctx, query, id))
}

// UpdateContactStatus moves a contact through its lifecycle.
func (s *Store) UpdateContactStatus(ctx context.Context, id int64, status string) (models.Contact, error) {
	const query = `
	UPDATE contacts SET status = $2, updated_at = NOW()
	WHERE id = $1
	RETURNING ` + contactColumns + `;`
	return scanContact(s.pool.QueryRow(ctx, query, id, status))
}

// DeleteContact removes a contact.
func (s *Store) DeleteContact(ctx context.Context, id int64) error {
	tag, err := s.pool.Exec(ctx, `DELETE FROM contacts WHERE id = $1;`, id)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return storage.ErrNotFound
	}
	return nil
}

func scanContact(row pgx.Row) (models.Contact, error) {
	var c models.Contact
	err := row.Scan(&c.ID, &c.Name, &c.Email, &c.Phone, &c.Message, &c.Service, &c.Budget,
		&c.IsSpam, &c.SpamScore, &c.Status, &c.Encrypted, &c.CreatedAt, &c.UpdatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return models.Contact{}, storage.ErrNotFound
		}
		return models.Contact{}, err
	}
	return c, nil
}
