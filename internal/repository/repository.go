package repository

import (
	"context"
	"io"
)

// Store is the per-collection document contract consumed by the mirrors.
// Every operation is scoped to one user's slice of the collection.
type Store[T any] interface {
	List(ctx context.Context, userID string) ([]T, error)
	Insert(ctx context.Context, item T) (T, error)
	Update(ctx context.Context, userID, id string, fields map[string]any) error
	Delete(ctx context.Context, userID, id string) error
	// DeleteCompleted removes every item whose completed flag is set, as a
	// single filtered batch.
	DeleteCompleted(ctx context.Context, userID string) error
}

// BlobStore holds binary attachments (memo audio). Remove treats a missing
// path as already deleted.
type BlobStore interface {
	Upload(ctx context.Context, path string, data io.Reader) (string, error)
	Remove(ctx context.Context, path string) error
}
