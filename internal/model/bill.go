package model

import "beaverly/internal/dates"

// Bill is a payable with a calendar due date. Paying a recurring bill
// appends a copy due one month later; the paid record itself is never
// rewritten beyond its flag.
type Bill struct {
	ID        string    `json:"id,omitempty"`
	UserID    string    `json:"user_id"`
	Name      string    `json:"name"`
	Amount    float64   `json:"amount"`
	DueDate   dates.Day `json:"due_date"`
	Paid      bool      `json:"paid"`
	Recurring bool      `json:"recurring"`
}

// NextOccurrence derives the follow-up bill created when a recurring bill
// is paid.
func (b Bill) NextOccurrence() Bill {
	return Bill{
		UserID:    b.UserID,
		Name:      b.Name,
		Amount:    b.Amount,
		DueDate:   b.DueDate.AddMonths(1),
		Paid:      false,
		Recurring: b.Recurring,
	}
}
