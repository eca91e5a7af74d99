package storage

import (
	"context"
	"errors"

	"smartgallery/internal/domain"
)

// ErrNotFound is returned when no metadata has been stored for an identifier.
var ErrNotFound = errors.New("photo not found")

// PhotoRepository defines the interface for durable photo metadata storage.
// This allows us to swap storage implementations (e.g., BadgerDB, PostgreSQL)
// without changing the resolver or admin handlers that use it.
type PhotoRepository interface {
	// Upsert stores or replaces the metadata for one photo. Concurrent edits
	// to different identifiers are safe; per-identifier the last writer wins.
	Upsert(ctx context.Context, photo domain.Photo) error

	// Get retrieves the stored metadata for one identifier, or ErrNotFound.
	Get(ctx context.Context, id string) (domain.Photo, error)

	// List returns all stored photos, optionally only those approved for
	// public display, newest-updated first.
	List(ctx context.Context, visibleOnly bool) ([]domain.Photo, error)

	// SetVisible flips the approval flag for one photo. Returns ErrNotFound
	// if the photo has no stored metadata yet.
	SetVisible(ctx context.Context, id string, visible bool) error

	// Close gracefully shuts down the repository connection.
	Close() error
}
