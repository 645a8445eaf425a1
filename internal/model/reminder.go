package model

import "beaverly/internal/dates"

// Reminder is an agenda-only entry.
type Reminder struct {
	ID     string    `json:"id,omitempty"`
	UserID string    `json:"user_id"`
	Text   string    `json:"text"`
	Date   dates.Day `json:"date"`
}
