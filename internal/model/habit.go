package model

import "beaverly/internal/dates"

// Habit tracks a daily goal. Completions maps calendar days to done flags;
// toggling a day touches that key only.
type Habit struct {
	ID          string             `json:"id,omitempty"`
	UserID      string             `json:"user_id"`
	Name        string             `json:"name"`
	Icon        string             `json:"icon"`
	Completions map[dates.Day]bool `json:"completions"`
}
