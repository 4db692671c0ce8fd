package domain

import (
	"errors"
	"fmt"
)

// store-level sentinels, wrapped by the repository
var (
	// ErrConflict is a permanent unique-constraint violation
	ErrConflict = errors.New("conflict")
	// ErrTransient is a lock/busy/connection failure which may succeed later
	ErrTransient = errors.New("transient store error")
)

// FetchError is a network or HTTP failure reaching a source
type FetchError struct {
	URL    string
	Status int // zero when no response was received
	Err    error
}

func (e *FetchError) Error() string {
	if e.Status != 0 {
		return fmt.Sprintf("fetch %s: unexpected status code %d", e.URL, e.Status)
	}
	return fmt.Sprintf("fetch %s: %v", e.URL, e.Err)
}

func (e *FetchError) Unwrap() error { return e.Err }

// ParseError means the fetched body is not a valid feed
type ParseError struct {
	URL string
	Err error
}

func (e *ParseError) Error() string { return fmt.Sprintf("parse feed %s: %v", e.URL, e.Err) }

func (e *ParseError) Unwrap() error { return e.Err }

// DuplicateError reports an already registered feed URL
type DuplicateError struct {
	FeedID int64
	Title  string
	URL    string
}

func (e *DuplicateError) Error() string {
	return fmt.Sprintf("feed %s already exists (id %d, %q)", e.URL, e.FeedID, e.Title)
}

// NotFoundError reports a missing feed, article or folder
type NotFoundError struct {
	Kind string
	ID   int64
}

func (e *NotFoundError) Error() string { return fmt.Sprintf("%s %d not found", e.Kind, e.ID) }

// ValidationError reports caller input violating a constraint
type ValidationError struct {
	Field string
	Msg   string
}

func (e *ValidationError) Error() string { return fmt.Sprintf("invalid %s: %s", e.Field, e.Msg) }
