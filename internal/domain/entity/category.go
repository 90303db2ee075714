package entity

import "time"

// Category represents a content category a news article belongs to.
// Deletion is soft: IsActive is flipped to false and the category
// disappears from listings and from assignment, but articles that
// already reference it remain readable.
type Category struct {
	ID          int64
	Name        string
	Slug        string
	Description string
	IsActive    bool
	CreatedAt   time.Time
	UpdatedAt   time.Time
}
