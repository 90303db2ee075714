package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"news-portal/internal/domain/entity"
	"news-portal/internal/repository"
)

const contactColumns = `id, name, email, phone, message, is_read, created_at`

type ContactRepo struct {
	db *sql.DB
}

func NewContactRepo(db *sql.DB) repository.ContactRepository {
	return &ContactRepo{db: db}
}

func (repo *ContactRepo) Insert(ctx context.Context, c *entity.Contact) (int64, error) {
	const query = `
INSERT INTO contacts (name, email, phone, message)
VALUES ($1, $2, $3, $4)
RETURNING id`
	var id int64
	err := repo.db.QueryRowContext(ctx, query, c.Name, c.Email, c.Phone, c.Message).Scan(&id)
	if err != nil {
		return 0, fmt.Errorf("Insert: %w", err)
	}
	return id, nil
}

func (repo *ContactRepo) Get(ctx context.Context, id int64) (*entity.Contact, error) {
	const query = `
SELECT ` + contactColumns + `
FROM contacts
WHERE id = $1`
	c, err := scanContact(repo.db.QueryRowContext(ctx, query, id))
	if err != nil {
		return nil, fmt.Errorf("Get: %w", err)
	}
	return c, nil
}

func (repo *ContactRepo) List(ctx context.Context, offset, limit int) ([]*entity.Contact, int64, error) {
	const query = `
SELECT ` + contactColumns + `
FROM contacts
ORDER BY created_at DESC
LIMIT $1 OFFSET $2`
	rows, err := repo.db.QueryContext(ctx, query, limit, offset)
	if err != nil {
		return nil, 0, fmt.Errorf("List: %w", err)
	}
	defer func() { _ = rows.Close() }()

	contacts := make([]*entity.Contact, 0, limit)
	for rows.Next() {
		var c entity.Contact
		var phone sql.NullString
		err := rows.Scan(&c.ID, &c.Name, &c.Email, &phone, &c.Message, &c.IsRead, &c.CreatedAt)
		if err != nil {
			return nil, 0, fmt.Errorf("List: Scan: %w", err)
		}
		c.Phone = phone.String
		contacts = append(contacts, &c)
	}
	if err := rows.Err(); err != nil {
		return nil, 0, fmt.Errorf("List: rows: %w", err)
	}

	var total int64
	if err := repo.db.QueryRowContext(ctx, `SELECT COUNT(*) FROM contacts`).Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("List: count: %w", err)
	}
	return contacts, total, nil
}

func (repo *ContactRepo) MarkRead(ctx context.Context, id int64) (bool, error) {
	const query = `UPDATE contacts SET is_read = TRUE WHERE id = $1`
	res, err := repo.db.ExecContext(ctx, query, id)
	if err != nil {
		return false, fmt.Errorf("MarkRead: %w", err)
	}
	rows, _ := res.RowsAffected()
	return rows > 0, nil
}

func (repo *ContactRepo) Delete(ctx context.Context, id int64) (bool, error) {
	const query = `DELETE FROM contacts WHERE id = $1`
	res, err := repo.db.ExecContext(ctx, query, id)
	if err != nil {
		return false, fmt.Errorf("Delete: %w", err)
	}
	rows, _ := res.RowsAffected()
	return rows > 0, nil
}

func (repo *ContactRepo) UnreadCount(ctx context.Context) (int64, error) {
	var count int64
	err := repo.db.QueryRowContext(ctx,
		`SELECT COUNT(*) FROM contacts WHERE is_read = FALSE`).Scan(&count)
	if err != nil {
		return 0, fmt.Errorf("UnreadCount: %w", err)
	}
	return count, nil
}

func scanContact(row *sql.Row) (*entity.Contact, error) {
	var c entity.Contact
	var phone sql.NullString
	err := row.Scan(&c.ID, &c.Name, &c.Email, &phone, &c.Message, &c.IsRead, &c.CreatedAt)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	c.Phone = phone.String
	return &c, nil
}
