package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"news-portal/internal/domain/entity"
	"news-portal/internal/repository"
)

const adminColumns = `id, username, email, password, is_active, created_at, updated_at`

type AdminRepo struct {
	db *sql.DB
}

func NewAdminRepo(db *sql.DB) repository.AdminRepository {
	return &AdminRepo{db: db}
}

func (repo *AdminRepo) GetByID(ctx context.Context, id int64) (*entity.Admin, error) {
	const query = `
SELECT ` + adminColumns + `
FROM admins
WHERE id = $1 AND is_active = TRUE`
	a, err := scanAdmin(repo.db.QueryRowContext(ctx, query, id))
	if err != nil {
		return nil, fmt.Errorf("GetByID: %w", err)
	}
	return a, nil
}

func (repo *AdminRepo) GetByEmail(ctx context.Context, email string) (*entity.Admin, error) {
	const query = `
SELECT ` + adminColumns + `
FROM admins
WHERE email = $1 AND is_active = TRUE`
	a, err := scanAdmin(repo.db.QueryRowContext(ctx, query, email))
	if err != nil {
		return nil, fmt.Errorf("GetByEmail: %w", err)
	}
	return a, nil
}

func (repo *AdminRepo) GetByUsername(ctx context.Context, username string) (*entity.Admin, error) {
	const query = `
SELECT ` + adminColumns + `
FROM admins
WHERE username = $1 AND is_active = TRUE`
	a, err := scanAdmin(repo.db.QueryRowContext(ctx, query, username))
	if err != nil {
		return nil, fmt.Errorf("GetByUsername: %w", err)
	}
	return a, nil
}

func (repo *AdminRepo) UpdatePassword(ctx context.Context, id int64, passwordHash string) (bool, error) {
	const query = `
UPDATE admins SET password = $1, updated_at = CURRENT_TIMESTAMP
WHERE id = $2`
	res, err := repo.db.ExecContext(ctx, query, passwordHash, id)
	if err != nil {
		return false, fmt.Errorf("UpdatePassword: %w", err)
	}
	rows, _ := res.RowsAffected()
	return rows > 0, nil
}

func scanAdmin(row *sql.Row) (*entity.Admin, error) {
	var a entity.Admin
	err := row.Scan(&a.ID, &a.Username, &a.Email, &a.PasswordHash,
		&a.IsActive, &a.CreatedAt, &a.UpdatedAt)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &a, nil
}
