package entity

import "time"

// Contact represents a message submitted through the public contact form.
type Contact struct {
	ID        int64
	Name      string
	Email     string
	Phone     string
	Message   string
	IsRead    bool
	CreatedAt time.Time
}
