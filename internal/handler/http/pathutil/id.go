// Package pathutil extracts typed parameters from URL paths and
// normalizes dynamic paths for metrics labels.
package pathutil

import (
	"errors"
	"strconv"
)

// ErrInvalidID is returned when the ID in the URL path is invalid.
var ErrInvalidID = errors.New("invalid id")

// ParseID parses a path segment, typically a mux wildcard value, as a
// positive int64.
func ParseID(s string) (int64, error) {
	id, err := strconv.ParseInt(s, 10, 64)
	if err != nil || id <= 0 {
		return 0, ErrInvalidID
	}
	return id, nil
}
