package repository

import (
	"context"

	"news-portal/internal/domain/entity"
)

// ContactRepository provides persistence operations for contact
// messages.
type ContactRepository interface {
	// Insert persists a new contact message and returns its id.
	Insert(ctx context.Context, c *entity.Contact) (int64, error)

	// Get fetches a contact message by id. Returns nil when absent.
	Get(ctx context.Context, id int64) (*entity.Contact, error)

	// List returns one page of contact messages, newest first, plus
	// the total count.
	List(ctx context.Context, offset, limit int) ([]*entity.Contact, int64, error)

	// MarkRead flags a message as read. Returns false if not found.
	MarkRead(ctx context.Context, id int64) (bool, error)

	// Delete hard-deletes a message. Returns false if not found.
	Delete(ctx context.Context, id int64) (bool, error)

	// UnreadCount returns the number of unread messages.
	UnreadCount(ctx context.Context) (int64, error)
}
