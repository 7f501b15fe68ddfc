package domain

import (
	"errors"
	"time"
)

var (
	// ErrNotFound is returned when no accessible project matches an id.
	// Public lookups report hidden projects the same way.
	ErrNotFound = errors.New("project not found")

	// ErrMissingFields is returned when a create request lacks title or description.
	ErrMissingFields = errors.New("title and description are required")
)

// Project is a single portfolio entry. Image and Images always hold durable
// gateway URLs, never raw payload data.
type Project struct {
	ID          int64     `json:"id"`
	Title       string    `json:"title"`
	Description string    `json:"description"`
	Tags        []string  `json:"tags"`
	Image       *string   `json:"image"`
	Images      []string  `json:"images"`
	Link        *string   `json:"link"`
	IsVisible   bool      `json:"isVisible"`
	IsFeatured  bool      `json:"isFeatured"`
	CreatedAt   time.Time `json:"createdAt"`
	UpdatedAt   time.Time `json:"updatedAt"`
}

// CreateProject carries the fields of a create request. Image and Images are
// unresolved inputs (raw payloads or remote URLs) that the service pushes
// through the upload gateway before anything is persisted.
type CreateProject struct {
	Title       string
	Description string
	Tags        []string
	Image       string
	Images      []string
	Link        *string
	IsVisible   *bool
	IsFeatured  *bool
}

// UpdateProject carries a partial update. Nil pointers mean "field absent,
// keep the stored value". Title and Description instead fall back on empty
// string; an empty string keeps the stored value too.
type UpdateProject struct {
	Title       string
	Description string
	Tags        *[]string
	Image       string
	Images      *[]string
	Link        *string
	IsVisible   *bool
	IsFeatured  *bool
}
