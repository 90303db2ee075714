// Package postgres implements the repository interfaces on top of a
// *sql.DB handle driven by the pgx stdlib adapter.
package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5/pgconn"

	"news-portal/internal/domain/entity"
	"news-portal/internal/repository"
)

// pgUniqueViolation is the Postgres error code for a unique constraint
// violation. It is how a lost slug race surfaces.
const pgUniqueViolation = "23505"

// newsColumns are the selected columns for every article read,
// including the joined category name and slug.
const newsColumns = `n.id, n.title, n.slug, n.summary, n.content, n.thumbnail,
       n.category_id, n.status, n.views, n.admin_id, n.created_at, n.updated_at,
       c.name AS category_name, c.slug AS category_slug`

type NewsRepo struct {
	db           *sql.DB
	queryBuilder *NewsQueryBuilder
}

func NewNewsRepo(db *sql.DB) repository.NewsRepository {
	return &NewsRepo{
		db:           db,
		queryBuilder: NewNewsQueryBuilder(),
	}
}

func (repo *NewsRepo) Insert(ctx context.Context, n *entity.News) (int64, error) {
	const query = `
INSERT INTO news (title, slug, summary, content, thumbnail, category_id, admin_id, status)
VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
RETURNING id`
	var id int64
	err := repo.db.QueryRowContext(ctx, query,
		n.Title, n.Slug, n.Summary, n.Content, n.Thumbnail,
		n.CategoryID, n.AdminID, string(n.Status),
	).Scan(&id)
	if err != nil {
		if isUniqueViolation(err) {
			return 0, fmt.Errorf("Insert: slug %q: %w", n.Slug, entity.ErrConflict)
		}
		return 0, fmt.Errorf("Insert: %w", err)
	}
	return id, nil
}

func (repo *NewsRepo) Update(ctx context.Context, n *entity.News) (bool, error) {
	const query = `
UPDATE news SET
       title       = $1,
       slug        = $2,
       summary     = $3,
       content     = $4,
       thumbnail   = $5,
       category_id = $6,
       updated_at  = CURRENT_TIMESTAMP
WHERE id = $7`
	res, err := repo.db.ExecContext(ctx, query,
		n.Title, n.Slug, n.Summary, n.Content, n.Thumbnail, n.CategoryID, n.ID,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return false, fmt.Errorf("Update: slug %q: %w", n.Slug, entity.ErrConflict)
		}
		return false, fmt.Errorf("Update: %w", err)
	}
	rows, _ := res.RowsAffected()
	return rows > 0, nil
}

func (repo *NewsRepo) SetStatus(ctx context.Context, id int64, status entity.Status) (bool, error) {
	const query = `UPDATE news SET status = $1, updated_at = CURRENT_TIMESTAMP WHERE id = $2`
	res, err := repo.db.ExecContext(ctx, query, string(status), id)
	if err != nil {
		return false, fmt.Errorf("SetStatus: %w", err)
	}
	rows, _ := res.RowsAffected()
	return rows > 0, nil
}

func (repo *NewsRepo) Delete(ctx context.Context, id int64) (bool, error) {
	const query = `DELETE FROM news WHERE id = $1`
	res, err := repo.db.ExecContext(ctx, query, id)
	if err != nil {
		return false, fmt.Errorf("Delete: %w", err)
	}
	rows, _ := res.RowsAffected()
	return rows > 0, nil
}

func (repo *NewsRepo) IncrementViews(ctx context.Context, id int64) (bool, error) {
	const query = `UPDATE news SET views = views + 1 WHERE id = $1`
	res, err := repo.db.ExecContext(ctx, query, id)
	if err != nil {
		return false, fmt.Errorf("IncrementViews: %w", err)
	}
	rows, _ := res.RowsAffected()
	return rows > 0, nil
}

func (repo *NewsRepo) GetBySlug(ctx context.Context, slug string, publishedOnly bool) (*repository.NewsWithCategory, error) {
	query := `
SELECT ` + newsColumns + `
FROM news n
INNER JOIN categories c ON n.category_id = c.id
WHERE n.slug = $1`
	args := []any{slug}
	if publishedOnly {
		query += ` AND n.status = $2`
		args = append(args, string(entity.StatusPublished))
	}
	query += ` LIMIT 1`

	row := repo.db.QueryRowContext(ctx, query, args...)
	item, err := scanNewsRow(row)
	if err != nil {
		return nil, fmt.Errorf("GetBySlug: %w", err)
	}
	return item, nil
}

func (repo *NewsRepo) GetByID(ctx context.Context, id int64) (*repository.NewsWithCategory, error) {
	query := `
SELECT ` + newsColumns + `
FROM news n
INNER JOIN categories c ON n.category_id = c.id
WHERE n.id = $1
LIMIT 1`
	row := repo.db.QueryRowContext(ctx, query, id)
	item, err := scanNewsRow(row)
	if err != nil {
		return nil, fmt.Errorf("GetByID: %w", err)
	}
	return item, nil
}

func (repo *NewsRepo) SlugExists(ctx context.Context, slug string, excludeID int64) (bool, error) {
	query := `SELECT EXISTS (SELECT 1 FROM news WHERE slug = $1`
	args := []any{slug}
	if excludeID != 0 {
		query += ` AND id != $2`
		args = append(args, excludeID)
	}
	query += `)`

	var exists bool
	if err := repo.db.QueryRowContext(ctx, query, args...).Scan(&exists); err != nil {
		return false, fmt.Errorf("SlugExists: %w", err)
	}
	return exists, nil
}

func (repo *NewsRepo) ListFiltered(ctx context.Context, offset, limit int, filters repository.NewsFilters) ([]repository.NewsWithCategory, int64, error) {
	whereClause, args := repo.queryBuilder.BuildWhereClause(filters, "n")

	// Ordering by created_at DESC is a contract, not a preference:
	// the latest and breaking views depend on it.
	param := len(args) + 1
	query := fmt.Sprintf(`
SELECT `+newsColumns+`
FROM news n
INNER JOIN categories c ON n.category_id = c.id
%s
ORDER BY n.created_at DESC
LIMIT $%d OFFSET $%d`, whereClause, param, param+1)
	listArgs := append(append([]any{}, args...), limit, offset)

	rows, err := repo.db.QueryContext(ctx, query, listArgs...)
	if err != nil {
		return nil, 0, fmt.Errorf("ListFiltered: %w", err)
	}
	defer func() { _ = rows.Close() }()

	items := make([]repository.NewsWithCategory, 0, limit)
	for rows.Next() {
		item, err := scanNewsRows(rows)
		if err != nil {
			return nil, 0, fmt.Errorf("ListFiltered: Scan: %w", err)
		}
		items = append(items, *item)
	}
	if err := rows.Err(); err != nil {
		return nil, 0, fmt.Errorf("ListFiltered: rows: %w", err)
	}

	countWhere, countArgs := repo.queryBuilder.BuildWhereClause(filters, "")
	countQuery := "SELECT COUNT(*) FROM news " + countWhere
	var total int64
	if err := repo.db.QueryRowContext(ctx, countQuery, countArgs...).Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("ListFiltered: count: %w", err)
	}

	return items, total, nil
}

func (repo *NewsRepo) ListByCategory(ctx context.Context, categorySlug string, offset, limit int) ([]repository.NewsWithCategory, int64, error) {
	const query = `
SELECT ` + newsColumns + `
FROM news n
INNER JOIN categories c ON n.category_id = c.id
WHERE c.slug = $1 AND n.status = $2
ORDER BY n.created_at DESC
LIMIT $3 OFFSET $4`

	rows, err := repo.db.QueryContext(ctx, query, categorySlug, string(entity.StatusPublished), limit, offset)
	if err != nil {
		return nil, 0, fmt.Errorf("ListByCategory: %w", err)
	}
	defer func() { _ = rows.Close() }()

	items := make([]repository.NewsWithCategory, 0, limit)
	for rows.Next() {
		item, err := scanNewsRows(rows)
		if err != nil {
			return nil, 0, fmt.Errorf("ListByCategory: Scan: %w", err)
		}
		items = append(items, *item)
	}
	if err := rows.Err(); err != nil {
		return nil, 0, fmt.Errorf("ListByCategory: rows: %w", err)
	}

	const countQuery = `
SELECT COUNT(*)
FROM news n
INNER JOIN categories c ON n.category_id = c.id
WHERE c.slug = $1 AND n.status = $2`
	var total int64
	if err := repo.db.QueryRowContext(ctx, countQuery, categorySlug, string(entity.StatusPublished)).Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("ListByCategory: count: %w", err)
	}

	return items, total, nil
}

func (repo *NewsRepo) Latest(ctx context.Context, limit int) ([]repository.NewsWithCategory, error) {
	const query = `
SELECT ` + newsColumns + `
FROM news n
INNER JOIN categories c ON n.category_id = c.id
WHERE n.status = $1
ORDER BY n.created_at DESC
LIMIT $2`

	rows, err := repo.db.QueryContext(ctx, query, string(entity.StatusPublished), limit)
	if err != nil {
		return nil, fmt.Errorf("Latest: %w", err)
	}
	defer func() { _ = rows.Close() }()

	items := make([]repository.NewsWithCategory, 0, limit)
	for rows.Next() {
		item, err := scanNewsRows(rows)
		if err != nil {
			return nil, fmt.Errorf("Latest: Scan: %w", err)
		}
		items = append(items, *item)
	}
	return items, rows.Err()
}

func (repo *NewsRepo) Breaking(ctx context.Context) (*repository.NewsWithCategory, error) {
	const query = `
SELECT ` + newsColumns + `
FROM news n
INNER JOIN categories c ON n.category_id = c.id
WHERE n.status = $1
ORDER BY n.created_at DESC
LIMIT 1`

	row := repo.db.QueryRowContext(ctx, query, string(entity.StatusPublished))
	item, err := scanNewsRow(row)
	if err != nil {
		return nil, fmt.Errorf("Breaking: %w", err)
	}
	return item, nil
}

// Stats issues one scalar query per counter; the dashboard is
// read-mostly and the counts are cheap against the status index.
func (repo *NewsRepo) Stats(ctx context.Context) (*repository.NewsStats, error) {
	var stats repository.NewsStats

	if err := repo.db.QueryRowContext(ctx, `SELECT COUNT(*) FROM news`).Scan(&stats.Total); err != nil {
		return nil, fmt.Errorf("Stats: total: %w", err)
	}
	if err := repo.db.QueryRowContext(ctx,
		`SELECT COUNT(*) FROM news WHERE status = $1`, string(entity.StatusPublished),
	).Scan(&stats.Published); err != nil {
		return nil, fmt.Errorf("Stats: published: %w", err)
	}
	if err := repo.db.QueryRowContext(ctx,
		`SELECT COUNT(*) FROM news WHERE status = $1`, string(entity.StatusDraft),
	).Scan(&stats.Draft); err != nil {
		return nil, fmt.Errorf("Stats: draft: %w", err)
	}
	if err := repo.db.QueryRowContext(ctx,
		`SELECT COALESCE(SUM(views), 0) FROM news`,
	).Scan(&stats.TotalViews); err != nil {
		return nil, fmt.Errorf("Stats: views: %w", err)
	}

	return &stats, nil
}

// rowScanner is satisfied by both *sql.Row and *sql.Rows.
type rowScanner interface {
	Scan(dest ...any) error
}

func scanNews(s rowScanner) (*repository.NewsWithCategory, error) {
	var n entity.News
	var thumbnail sql.NullString
	var status string
	var categoryName, categorySlug string
	err := s.Scan(&n.ID, &n.Title, &n.Slug, &n.Summary, &n.Content, &thumbnail,
		&n.CategoryID, &status, &n.Views, &n.AdminID, &n.CreatedAt, &n.UpdatedAt,
		&categoryName, &categorySlug)
	if err != nil {
		return nil, err
	}
	n.Thumbnail = thumbnail.String
	n.Status = entity.Status(status)
	return &repository.NewsWithCategory{
		News:         &n,
		CategoryName: categoryName,
		CategorySlug: categorySlug,
	}, nil
}

// scanNewsRow scans a single-row query, translating sql.ErrNoRows into
// the nil-for-absent convention.
func scanNewsRow(row *sql.Row) (*repository.NewsWithCategory, error) {
	item, err := scanNews(row)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return item, nil
}

func scanNewsRows(rows *sql.Rows) (*repository.NewsWithCategory, error) {
	return scanNews(rows)
}

// isUniqueViolation reports whether err is a Postgres unique constraint
// violation.
func isUniqueViolation(err error) bool {
	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) && pgErr.Code == pgUniqueViolation
}
