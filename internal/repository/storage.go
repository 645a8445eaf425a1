package repository

import (
	"context"
	"fmt"
	"io"
	"strings"

	"github.com/supabase-community/supabase-go"
)

// SupabaseBlobStore keeps memo audio in one storage bucket.
type SupabaseBlobStore struct {
	client *supabase.Client
	bucket string
}

func NewSupabaseBlobStore(client *supabase.Client, bucket string) *SupabaseBlobStore {
	return &SupabaseBlobStore{client: client, bucket: bucket}
}

// Upload stores the blob and returns its public URL.
func (s *SupabaseBlobStore) Upload(ctx context.Context, path string, data io.Reader) (string, error) {
	if _, err := s.client.Storage.UploadFile(s.bucket, path, data); err != nil {
		return "", fmt.Errorf("failed to upload %s: %w", path, err)
	}
	resp := s.client.Storage.GetPublicUrl(s.bucket, path)
	return resp.SignedURL, nil
}

// Remove deletes the blob. A path that no longer exists is not a failure:
// the record cleanup must still proceed.
func (s *SupabaseBlobStore) Remove(ctx context.Context, path string) error {
	if path == "" {
		return nil
	}
	if _, err := s.client.Storage.RemoveFile(s.bucket, []string{path}); err != nil {
		if isNotFound(err) {
			return nil
		}
		return fmt.Errorf("failed to remove %s: %w", path, err)
	}
	return nil
}

func isNotFound(err error) bool {
	msg := strings.ToLower(err.Error())
	return strings.Contains(msg, "not_found") ||
		strings.Contains(msg, "not found") ||
		strings.Contains(msg, "404")
}
