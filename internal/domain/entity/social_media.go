package entity

import "time"

// SocialMedia represents a social media link shown on the site.
// Deletion is soft via IsActive; a deleted link can be restored.
type SocialMedia struct {
	ID           int64
	PlatformName string
	URL          string
	IconName     string
	DisplayOrder int
	IsActive     bool
	CreatedAt    time.Time
	UpdatedAt    time.Time
}
