package db

import "database/sql"

// MigrateUp creates the schema idempotently. Ordering matters:
// categories and admins precede news because of the foreign keys.
func MigrateUp(pool *sql.DB) error {
	if _, err := pool.Exec(`
CREATE TABLE IF NOT EXISTS admins (
    id         SERIAL PRIMARY KEY,
    username   VARCHAR(100) UNIQUE NOT NULL,
    email      VARCHAR(255) UNIQUE NOT NULL,
    password   VARCHAR(255) NOT NULL,
    is_active  BOOLEAN DEFAULT TRUE,
    created_at TIMESTAMP DEFAULT CURRENT_TIMESTAMP,
    updated_at TIMESTAMP DEFAULT CURRENT_TIMESTAMP
)`); err != nil {
		return err
	}

	if _, err := pool.Exec(`
CREATE TABLE IF NOT EXISTS categories (
    id          SERIAL PRIMARY KEY,
    name        VARCHAR(100) NOT NULL UNIQUE,
    slug        VARCHAR(100) NOT NULL UNIQUE,
    description TEXT,
    is_active   BOOLEAN DEFAULT TRUE,
    created_at  TIMESTAMP DEFAULT CURRENT_TIMESTAMP,
    updated_at  TIMESTAMP DEFAULT CURRENT_TIMESTAMP
)`); err != nil {
		return err
	}

	// The UNIQUE constraint on slug is the authoritative guard against
	// two concurrent creates deriving the same slug; the service-level
	// existence check is only a fast path.
	if _, err := pool.Exec(`
CREATE TABLE IF NOT EXISTS news (
    id          SERIAL PRIMARY KEY,
    title       VARCHAR(255) NOT NULL,
    slug        VARCHAR(255) NOT NULL UNIQUE,
    summary     TEXT NOT NULL,
    content     TEXT NOT NULL,
    thumbnail   VARCHAR(500),
    category_id INT NOT NULL REFERENCES categories(id) ON DELETE CASCADE,
    status      VARCHAR(20) DEFAULT 'draft' CHECK (status IN ('draft', 'published', 'hidden')),
    views       INT DEFAULT 0,
    admin_id    INT NOT NULL REFERENCES admins(id) ON DELETE CASCADE,
    created_at  TIMESTAMP DEFAULT CURRENT_TIMESTAMP,
    updated_at  TIMESTAMP DEFAULT CURRENT_TIMESTAMP
)`); err != nil {
		return err
	}

	if _, err := pool.Exec(`
CREATE TABLE IF NOT EXISTS contacts (
    id         SERIAL PRIMARY KEY,
    name       VARCHAR(100) NOT NULL,
    email      VARCHAR(255) NOT NULL,
    phone      VARCHAR(20),
    message    TEXT NOT NULL,
    is_read    BOOLEAN DEFAULT FALSE,
    created_at TIMESTAMP DEFAULT CURRENT_TIMESTAMP
)`); err != nil {
		return err
	}

	if _, err := pool.Exec(`
CREATE TABLE IF NOT EXISTS social_media (
    id            SERIAL PRIMARY KEY,
    platform_name VARCHAR(50) NOT NULL UNIQUE,
    url           VARCHAR(500) NOT NULL,
    icon_name     VARCHAR(50),
    display_order INT DEFAULT 0,
    is_active     BOOLEAN DEFAULT TRUE,
    created_at    TIMESTAMP DEFAULT CURRENT_TIMESTAMP,
    updated_at    TIMESTAMP DEFAULT CURRENT_TIMESTAMP
)`); err != nil {
		return err
	}

	if _, err := pool.Exec(`
CREATE TABLE IF NOT EXISTS site_settings (
    id            SERIAL PRIMARY KEY,
    setting_key   VARCHAR(100) NOT NULL UNIQUE,
    setting_value TEXT,
    description   TEXT,
    created_at    TIMESTAMP DEFAULT CURRENT_TIMESTAMP,
    updated_at    TIMESTAMP DEFAULT CURRENT_TIMESTAMP
)`); err != nil {
		return err
	}

	// Listing queries order by created_at DESC and filter on status,
	// category and slug.
	indexes := []string{
		`CREATE INDEX IF NOT EXISTS idx_news_slug ON news(slug)`,
		`CREATE INDEX IF NOT EXISTS idx_news_category ON news(category_id)`,
		`CREATE INDEX IF NOT EXISTS idx_news_status ON news(status)`,
		`CREATE INDEX IF NOT EXISTS idx_news_created_at ON news(created_at DESC)`,
		`CREATE INDEX IF NOT EXISTS idx_categories_slug ON categories(slug)`,
		`CREATE INDEX IF NOT EXISTS idx_contacts_created_at ON contacts(created_at)`,
		`CREATE INDEX IF NOT EXISTS idx_social_media_order ON social_media(display_order)`,
		`CREATE INDEX IF NOT EXISTS idx_settings_key ON site_settings(setting_key)`,
	}
	for _, idx := range indexes {
		if _, err := pool.Exec(idx); err != nil {
			return err
		}
	}

	return nil
}
