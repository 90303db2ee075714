package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"news-portal/internal/domain/entity"
	"news-portal/internal/repository"
)

const settingColumns = `id, setting_key, setting_value, description, created_at, updated_at`

type SettingsRepo struct {
	db *sql.DB
}

func NewSettingsRepo(db *sql.DB) repository.SettingsRepository {
	return &SettingsRepo{db: db}
}

func (repo *SettingsRepo) List(ctx context.Context) ([]*entity.Setting, error) {
	const query = `
SELECT ` + settingColumns + `
FROM site_settings
ORDER BY setting_key`
	rows, err := repo.db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("List: %w", err)
	}
	defer func() { _ = rows.Close() }()

	var settings []*entity.Setting
	for rows.Next() {
		var s entity.Setting
		var value, description sql.NullString
		err := rows.Scan(&s.ID, &s.Key, &value, &description, &s.CreatedAt, &s.UpdatedAt)
		if err != nil {
			return nil, fmt.Errorf("List: Scan: %w", err)
		}
		s.Value = value.String
		s.Description = description.String
		settings = append(settings, &s)
	}
	return settings, rows.Err()
}

func (repo *SettingsRepo) Get(ctx context.Context, key string) (*entity.Setting, error) {
	const query = `
SELECT ` + settingColumns + `
FROM site_settings
WHERE setting_key = $1`
	var s entity.Setting
	var value, description sql.NullString
	err := repo.db.QueryRowContext(ctx, query, key).
		Scan(&s.ID, &s.Key, &value, &description, &s.CreatedAt, &s.UpdatedAt)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("Get: %w", err)
	}
	s.Value = value.String
	s.Description = description.String
	return &s, nil
}

func (repo *SettingsRepo) Upsert(ctx context.Context, key, value string) error {
	const query = `
INSERT INTO site_settings (setting_key, setting_value)
VALUES ($1, $2)
ON CONFLICT (setting_key)
DO UPDATE SET setting_value = EXCLUDED.setting_value, updated_at = CURRENT_TIMESTAMP`
	if _, err := repo.db.ExecContext(ctx, query, key, value); err != nil {
		return fmt.Errorf("Upsert: %w", err)
	}
	return nil
}
