// Package auth provides administrator authentication use cases:
// credential verification, JWT issuance and password changes.
package auth

import "errors"

// Sentinel errors for auth use case operations.
var (
	// ErrInvalidCredentials indicates an unknown account, a deactivated
	// account or a wrong password. Callers must not distinguish the
	// three.
	ErrInvalidCredentials = errors.New("invalid credentials")

	// ErrAdminNotFound indicates that the authenticated admin no longer
	// exists.
	ErrAdminNotFound = errors.New("admin not found")
)
