package entity

import "time"

// Setting is a single site configuration entry, addressed by key.
type Setting struct {
	ID          int64
	Key         string
	Value       string
	Description string
	CreatedAt   time.Time
	UpdatedAt   time.Time
}
