package service

import (
	"context"
	"fmt"
	"strings"

	"beaverly/internal/dates"
	"beaverly/internal/model"
)

func (p *Planner) ListEvents(ctx context.Context, userID string) ([]model.Event, error) {
	return p.mirrors.Events.List(ctx, userID)
}

func (p *Planner) AddEvent(ctx context.Context, userID, text string, date dates.Day) (model.Event, error) {
	text = strings.TrimSpace(text)
	if text == "" {
		return model.Event{}, fmt.Errorf("event text is required")
	}
	if date.IsZero() {
		return model.Event{}, fmt.Errorf("event date is required")
	}
	return p.mirrors.Events.Add(ctx, userID, model.Event{
		UserID: userID,
		Text:   text,
		Date:   date,
	})
}

func (p *Planner) DeleteEvent(ctx context.Context, userID, eventID string) error {
	return p.mirrors.Events.Remove(ctx, userID, eventID)
}

func (p *Planner) ListReminders(ctx context.Context, userID string) ([]model.Reminder, error) {
	return p.mirrors.Reminders.List(ctx, userID)
}

func (p *Planner) AddReminder(ctx context.Context, userID, text string, date dates.Day) (model.Reminder, error) {
	text = strings.TrimSpace(text)
	if text == "" {
		return model.Reminder{}, fmt.Errorf("reminder text is required")
	}
	if date.IsZero() {
		return model.Reminder{}, fmt.Errorf("reminder date is required")
	}
	return p.mirrors.Reminders.Add(ctx, userID, model.Reminder{
		UserID: userID,
		Text:   text,
		Date:   date,
	})
}

func (p *Planner) DeleteReminder(ctx context.Context, userID, reminderID string) error {
	return p.mirrors.Reminders.Remove(ctx, userID, reminderID)
}

func (p *Planner) ShoppingList(ctx context.Context, userID string) ([]model.ShoppingItem, error) {
	return p.mirrors.Shopping.List(ctx, userID)
}

func (p *Planner) AddShoppingItem(ctx context.Context, userID, text string) (model.ShoppingItem, error) {
	text = strings.TrimSpace(text)
	if text == "" {
		return model.ShoppingItem{}, fmt.Errorf("item text is required")
	}
	return p.mirrors.Shopping.Add(ctx, userID, model.ShoppingItem{
		UserID: userID,
		Text:   text,
	})
}

func (p *Planner) ToggleShoppingItem(ctx context.Context, userID string, item model.ShoppingItem) error {
	return p.mirrors.Shopping.Update(ctx, userID, item.ID, map[string]any{
		"completed": !item.Completed,
	})
}

func (p *Planner) DeleteShoppingItem(ctx context.Context, userID, itemID string) error {
	return p.mirrors.Shopping.Remove(ctx, userID, itemID)
}

// ClearCompletedShopping removes every checked-off item in one atomic
// batch.
func (p *Planner) ClearCompletedShopping(ctx context.Context, userID string) error {
	return p.mirrors.Shopping.ClearCompleted(ctx, userID)
}
