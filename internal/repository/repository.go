// Package repository holds the GORM-backed stores the login flows read from
package repository

import (
	"errors" // Not-found detection

	"gorm.io/gorm" // ORM library
)

// first runs q and returns nil, nil when no row matches
func first[T any](q *gorm.DB) (*T, error) {
	var out T                  // Row to fill
	err := q.First(&out).Error // Fetch the first matching row
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil // No match is not an error
	}
	if err != nil {
		return nil, err // Return error if query fails
	}
	return &out, nil
}
