package model

import "beaverly/internal/dates"

// Memo references a recorded audio note. AudioURL is the public playback
// URL; StoragePath locates the blob for deletion.
type Memo struct {
	ID          string      `json:"id,omitempty"`
	UserID      string      `json:"user_id"`
	AudioURL    string      `json:"audio_url"`
	StoragePath string      `json:"storage_path"`
	CreatedAt   dates.Stamp `json:"created_at"`
}
