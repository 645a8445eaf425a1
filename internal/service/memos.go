package service

import (
	"context"
	"fmt"
	"io"

	"github.com/google/uuid"

	"beaverly/internal/dates"
	"beaverly/internal/model"
)

func (p *Planner) ListMemos(ctx context.Context, userID string) ([]model.Memo, error) {
	return p.mirrors.Memos.List(ctx, userID)
}

// SaveMemo uploads the audio under a fresh per-user path, then records the
// memo with the returned playback URL.
func (p *Planner) SaveMemo(ctx context.Context, userID string, audio io.Reader, ext string) (model.Memo, error) {
	if userID == "" {
		return model.Memo{}, fmt.Errorf("failed to save memo: no user")
	}

	path := fmt.Sprintf("voice-memos/%s/%s%s", userID, uuid.New().String(), ext)
	url, err := p.blobs.Upload(ctx, path, audio)
	if err != nil {
		return model.Memo{}, fmt.Errorf("failed to upload memo audio: %w", err)
	}

	return p.mirrors.Memos.Add(ctx, userID, model.Memo{
		UserID:      userID,
		AudioURL:    url,
		StoragePath: path,
		CreatedAt:   dates.Now(),
	})
}

// DeleteMemo removes the blob first, then the record. A blob that is
// already gone does not block the record cleanup; any other blob failure
// keeps the record so the deletion can be retried.
func (p *Planner) DeleteMemo(ctx context.Context, userID string, memo model.Memo) error {
	if err := p.blobs.Remove(ctx, memo.StoragePath); err != nil {
		return err
	}
	return p.mirrors.Memos.Remove(ctx, userID, memo.ID)
}
