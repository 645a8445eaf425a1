package model

import "beaverly/internal/dates"

// Account links a Telegram identity to the opaque backend user id that
// namespaces every collection.
type Account struct {
	ID         string      `json:"id,omitempty"`
	TelegramID int64       `json:"telegram_id"`
	UserID     string      `json:"user_id"`
	CreatedAt  dates.Stamp `json:"created_at"`
}
