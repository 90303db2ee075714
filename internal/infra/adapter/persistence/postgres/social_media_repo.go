package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"news-portal/internal/domain/entity"
	"news-portal/internal/repository"
)

const socialMediaColumns = `id, platform_name, url, icon_name, display_order, is_active, created_at, updated_at`

type SocialMediaRepo struct {
	db *sql.DB
}

func NewSocialMediaRepo(db *sql.DB) repository.SocialMediaRepository {
	return &SocialMediaRepo{db: db}
}

func (repo *SocialMediaRepo) Insert(ctx context.Context, s *entity.SocialMedia) (int64, error) {
	const query = `
INSERT INTO social_media (platform_name, url, icon_name, display_order)
VALUES ($1, $2, $3, $4)
RETURNING id`
	var id int64
	err := repo.db.QueryRowContext(ctx, query,
		s.PlatformName, s.URL, s.IconName, s.DisplayOrder).Scan(&id)
	if err != nil {
		if isUniqueViolation(err) {
			return 0, fmt.Errorf("Insert: platform %q: %w", s.PlatformName, entity.ErrConflict)
		}
		return 0, fmt.Errorf("Insert: %w", err)
	}
	return id, nil
}

func (repo *SocialMediaRepo) Update(ctx context.Context, s *entity.SocialMedia) (bool, error) {
	const query = `
UPDATE social_media SET
       platform_name = $1,
       url           = $2,
       icon_name     = $3,
       display_order = $4,
       updated_at    = CURRENT_TIMESTAMP
WHERE id = $5`
	res, err := repo.db.ExecContext(ctx, query,
		s.PlatformName, s.URL, s.IconName, s.DisplayOrder, s.ID)
	if err != nil {
		if isUniqueViolation(err) {
			return false, fmt.Errorf("Update: platform %q: %w", s.PlatformName, entity.ErrConflict)
		}
		return false, fmt.Errorf("Update: %w", err)
	}
	rows, _ := res.RowsAffected()
	return rows > 0, nil
}

func (repo *SocialMediaRepo) Get(ctx context.Context, id int64) (*entity.SocialMedia, error) {
	const query = `
SELECT ` + socialMediaColumns + `
FROM social_media
WHERE id = $1`
	row := repo.db.QueryRowContext(ctx, query, id)
	s, err := scanSocialMedia(row.Scan)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("Get: %w", err)
	}
	return s, nil
}

func (repo *SocialMediaRepo) ListActive(ctx context.Context) ([]*entity.SocialMedia, error) {
	links, err := repo.list(ctx, true)
	if err != nil {
		return nil, fmt.Errorf("ListActive: %w", err)
	}
	return links, nil
}

func (repo *SocialMediaRepo) ListAll(ctx context.Context) ([]*entity.SocialMedia, error) {
	links, err := repo.list(ctx, false)
	if err != nil {
		return nil, fmt.Errorf("ListAll: %w", err)
	}
	return links, nil
}

func (repo *SocialMediaRepo) list(ctx context.Context, activeOnly bool) ([]*entity.SocialMedia, error) {
	query := `SELECT ` + socialMediaColumns + ` FROM social_media`
	if activeOnly {
		query += ` WHERE is_active = TRUE`
	}
	query += ` ORDER BY display_order, platform_name`

	rows, err := repo.db.QueryContext(ctx, query)
	if err != nil {
		return nil, err
	}
	defer func() { _ = rows.Close() }()

	var links []*entity.SocialMedia
	for rows.Next() {
		s, err := scanSocialMedia(rows.Scan)
		if err != nil {
			return nil, fmt.Errorf("Scan: %w", err)
		}
		links = append(links, s)
	}
	return links, rows.Err()
}

func (repo *SocialMediaRepo) SetActive(ctx context.Context, id int64, active bool) (bool, error) {
	const query = `
UPDATE social_media SET is_active = $1, updated_at = CURRENT_TIMESTAMP
WHERE id = $2`
	res, err := repo.db.ExecContext(ctx, query, active, id)
	if err != nil {
		return false, fmt.Errorf("SetActive: %w", err)
	}
	rows, _ := res.RowsAffected()
	return rows > 0, nil
}

func (repo *SocialMediaRepo) PlatformExists(ctx context.Context, platformName string, excludeID int64) (bool, error) {
	query := `SELECT EXISTS (SELECT 1 FROM social_media WHERE platform_name = $1`
	args := []any{platformName}
	if excludeID != 0 {
		query += ` AND id != $2`
		args = append(args, excludeID)
	}
	query += `)`

	var exists bool
	if err := repo.db.QueryRowContext(ctx, query, args...).Scan(&exists); err != nil {
		return false, fmt.Errorf("PlatformExists: %w", err)
	}
	return exists, nil
}

func scanSocialMedia(scan func(dest ...any) error) (*entity.SocialMedia, error) {
	var s entity.SocialMedia
	var icon sql.NullString
	err := scan(&s.ID, &s.PlatformName, &s.URL, &icon,
		&s.DisplayOrder, &s.IsActive, &s.CreatedAt, &s.UpdatedAt)
	if err != nil {
		return nil, err
	}
	s.IconName = icon.String
	return &s, nil
}
