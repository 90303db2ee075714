package entity

import "time"

// Admin represents an administrator account.
// PasswordHash is a bcrypt hash and is never serialized outward.
type Admin struct {
	ID           int64
	Username     string
	Email        string
	PasswordHash string
	IsActive     bool
	CreatedAt    time.Time
	UpdatedAt    time.Time
}
