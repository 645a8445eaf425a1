package model

import "beaverly/internal/dates"

// Event is a calendar-only entry.
type Event struct {
	ID     string    `json:"id,omitempty"`
	UserID string    `json:"user_id"`
	Text   string    `json:"text"`
	Date   dates.Day `json:"date"`
}
