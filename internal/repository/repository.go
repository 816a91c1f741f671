// Package repository holds the query and validation logic for each resource
// table. Handlers translate the errors defined here into HTTP status codes.
package repository

import (
	"errors"
	"regexp"
)

// ErrNotFound means the targeted id or slug matched no row. Mutations report
// it when zero rows were affected, so "nothing to do" is never a silent
// success.
var ErrNotFound = errors.New("record not found")

// ErrDuplicateSlug means a different blog post already uses the slug.
var ErrDuplicateSlug = errors.New("slug already exists")

// ValidationError reports missing or malformed input. Field names the
// offending field(s); Message is safe to return to the client.
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	return e.Message
}

var (
	slugPattern  = regexp.MustCompile(`^[a-z0-9]+(-[a-z0-9]+)*$`)
	emailPattern = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)
)

func validSlug(slug string) bool {
	return slugPattern.MatchString(slug)
}

func validEmail(email string) bool {
	return emailPattern.MatchString(email)
}
