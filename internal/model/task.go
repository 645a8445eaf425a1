package model

import "beaverly/internal/dates"

// Task is the primary planner entity. DueDate and TimeOfDay are optional;
// a zero DueDate keeps the task out of every date-indexed view.
type Task struct {
	ID          string      `json:"id,omitempty"`
	UserID      string      `json:"user_id"`
	Text        string      `json:"text"`
	Completed   bool        `json:"completed"`
	CreatedAt   dates.Stamp `json:"created_at"`
	CompletedAt dates.Stamp `json:"completed_at,omitempty"`
	DueDate     dates.Day   `json:"due_date,omitempty"`
	TimeOfDay   string      `json:"time_of_day,omitempty"` // "HH:MM"
	Categories  []string    `json:"categories,omitempty"`
}
