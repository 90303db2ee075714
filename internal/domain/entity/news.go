// Package entity defines the core domain entities and validation logic for the application.
// It contains the fundamental business objects such as News and Category, along with
// their status rules and domain-specific errors.
package entity

import "time"

// Status represents the publication state of a news article.
type Status string

// Enumerated publication states. The set is flat: any status may
// transition to any other, publishing is administrator-driven.
const (
	StatusDraft     Status = "draft"
	StatusPublished Status = "published"
	StatusHidden    Status = "hidden"
)

// Valid reports whether s is one of the enumerated publication states.
func (s Status) Valid() bool {
	switch s {
	case StatusDraft, StatusPublished, StatusHidden:
		return true
	}
	return false
}

// News represents a news article in the system.
// Slug is derived from Title and is unique across all articles
// regardless of status. Views only ever increases.
type News struct {
	ID         int64
	Title      string
	Slug       string
	Summary    string
	Content    string
	Thumbnail  string
	CategoryID int64
	Status     Status
	Views      int64
	AdminID    int64
	CreatedAt  time.Time
	UpdatedAt  time.Time
}
