package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"news-portal/internal/domain/entity"
	"news-portal/internal/repository"
)

const categoryColumns = `id, name, slug, description, is_active, created_at, updated_at`

type CategoryRepo struct {
	db *sql.DB
}

func NewCategoryRepo(db *sql.DB) repository.CategoryRepository {
	return &CategoryRepo{db: db}
}

func (repo *CategoryRepo) Insert(ctx context.Context, c *entity.Category) (int64, error) {
	const query = `
INSERT INTO categories (name, slug, description)
VALUES ($1, $2, $3)
RETURNING id`
	var id int64
	err := repo.db.QueryRowContext(ctx, query, c.Name, c.Slug, c.Description).Scan(&id)
	if err != nil {
		if isUniqueViolation(err) {
			return 0, fmt.Errorf("Insert: category %q: %w", c.Name, entity.ErrConflict)
		}
		return 0, fmt.Errorf("Insert: %w", err)
	}
	return id, nil
}

func (repo *CategoryRepo) Update(ctx context.Context, c *entity.Category) (bool, error) {
	const query = `
UPDATE categories SET
       name        = $1,
       slug        = $2,
       description = $3,
       updated_at  = CURRENT_TIMESTAMP
WHERE id = $4 AND is_active = TRUE`
	res, err := repo.db.ExecContext(ctx, query, c.Name, c.Slug, c.Description, c.ID)
	if err != nil {
		if isUniqueViolation(err) {
			return false, fmt.Errorf("Update: category %q: %w", c.Name, entity.ErrConflict)
		}
		return false, fmt.Errorf("Update: %w", err)
	}
	rows, _ := res.RowsAffected()
	return rows > 0, nil
}

func (repo *CategoryRepo) Delete(ctx context.Context, id int64) (bool, error) {
	const query = `
UPDATE categories SET is_active = FALSE, updated_at = CURRENT_TIMESTAMP
WHERE id = $1 AND is_active = TRUE`
	res, err := repo.db.ExecContext(ctx, query, id)
	if err != nil {
		return false, fmt.Errorf("Delete: %w", err)
	}
	rows, _ := res.RowsAffected()
	return rows > 0, nil
}

func (repo *CategoryRepo) Get(ctx context.Context, id int64) (*entity.Category, error) {
	const query = `
SELECT ` + categoryColumns + `
FROM categories
WHERE id = $1 AND is_active = TRUE`
	c, err := scanCategory(repo.db.QueryRowContext(ctx, query, id))
	if err != nil {
		return nil, fmt.Errorf("Get: %w", err)
	}
	return c, nil
}

func (repo *CategoryRepo) GetBySlug(ctx context.Context, slug string) (*entity.Category, error) {
	const query = `
SELECT ` + categoryColumns + `
FROM categories
WHERE slug = $1 AND is_active = TRUE`
	c, err := scanCategory(repo.db.QueryRowContext(ctx, query, slug))
	if err != nil {
		return nil, fmt.Errorf("GetBySlug: %w", err)
	}
	return c, nil
}

func (repo *CategoryRepo) List(ctx context.Context) ([]*entity.Category, error) {
	const query = `
SELECT ` + categoryColumns + `
FROM categories
WHERE is_active = TRUE
ORDER BY name`
	rows, err := repo.db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("List: %w", err)
	}
	defer func() { _ = rows.Close() }()

	var categories []*entity.Category
	for rows.Next() {
		var c entity.Category
		var description sql.NullString
		err := rows.Scan(&c.ID, &c.Name, &c.Slug, &description,
			&c.IsActive, &c.CreatedAt, &c.UpdatedAt)
		if err != nil {
			return nil, fmt.Errorf("List: Scan: %w", err)
		}
		c.Description = description.String
		categories = append(categories, &c)
	}
	return categories, rows.Err()
}

func (repo *CategoryRepo) NameExists(ctx context.Context, name string, excludeID int64) (bool, error) {
	exists, err := repo.exists(ctx, "name", name, excludeID)
	if err != nil {
		return false, fmt.Errorf("NameExists: %w", err)
	}
	return exists, nil
}

func (repo *CategoryRepo) SlugExists(ctx context.Context, slug string, excludeID int64) (bool, error) {
	exists, err := repo.exists(ctx, "slug", slug, excludeID)
	if err != nil {
		return false, fmt.Errorf("SlugExists: %w", err)
	}
	return exists, nil
}

// exists checks ownership of a unique column value. column is always a
// literal from the two callers above, never user input.
func (repo *CategoryRepo) exists(ctx context.Context, column, value string, excludeID int64) (bool, error) {
	query := `SELECT EXISTS (SELECT 1 FROM categories WHERE ` + column + ` = $1`
	args := []any{value}
	if excludeID != 0 {
		query += ` AND id != $2`
		args = append(args, excludeID)
	}
	query += `)`

	var exists bool
	if err := repo.db.QueryRowContext(ctx, query, args...).Scan(&exists); err != nil {
		return false, err
	}
	return exists, nil
}

func scanCategory(row *sql.Row) (*entity.Category, error) {
	var c entity.Category
	var description sql.NullString
	err := row.Scan(&c.ID, &c.Name, &c.Slug, &description,
		&c.IsActive, &c.CreatedAt, &c.UpdatedAt)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	c.Description = description.String
	return &c, nil
}
