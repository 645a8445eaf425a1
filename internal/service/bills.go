package service

import (
	"context"
	"fmt"
	"strings"

	"beaverly/internal/dates"
	"beaverly/internal/model"
)

func (p *Planner) ListBills(ctx context.Context, userID string) ([]model.Bill, error) {
	return p.mirrors.Bills.List(ctx, userID)
}

func (p *Planner) AddBill(ctx context.Context, userID, name string, amount float64, dueDate dates.Day, recurring bool) (model.Bill, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return model.Bill{}, fmt.Errorf("bill name is required")
	}
	if dueDate.IsZero() {
		return model.Bill{}, fmt.Errorf("bill due date is required")
	}

	return p.mirrors.Bills.Add(ctx, userID, model.Bill{
		UserID:    userID,
		Name:      name,
		Amount:    amount,
		DueDate:   dueDate,
		Paid:      false,
		Recurring: recurring,
	})
}

// PayBill marks a bill paid. Paying a recurring bill also appends its next
// occurrence, due one month later; the paid record itself only gains the
// flag. The returned bill is the appended occurrence, or nil when the bill
// does not recur or was already paid.
func (p *Planner) PayBill(ctx context.Context, userID string, bill model.Bill) (*model.Bill, error) {
	if err := p.mirrors.Bills.Update(ctx, userID, bill.ID, map[string]any{"paid": true}); err != nil {
		return nil, err
	}

	if bill.Paid || !bill.Recurring {
		return nil, nil
	}

	next := bill.NextOccurrence()
	next.UserID = userID
	created, err := p.mirrors.Bills.Add(ctx, userID, next)
	if err != nil {
		return nil, fmt.Errorf("failed to schedule next occurrence: %w", err)
	}
	return &created, nil
}

// UnpayBill flips a bill back to unpaid. No occurrence is retracted.
func (p *Planner) UnpayBill(ctx context.Context, userID, billID string) error {
	return p.mirrors.Bills.Update(ctx, userID, billID, map[string]any{"paid": false})
}

func (p *Planner) DeleteBill(ctx context.Context, userID, billID string) error {
	return p.mirrors.Bills.Remove(ctx, userID, billID)
}
