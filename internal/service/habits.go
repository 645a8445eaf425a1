package service

import (
	"context"
	"fmt"
	"strings"

	"beaverly/internal/dates"
	"beaverly/internal/model"
)

func (p *Planner) ListHabits(ctx context.Context, userID string) ([]model.Habit, error) {
	return p.mirrors.Habits.List(ctx, userID)
}

func (p *Planner) AddHabit(ctx context.Context, userID, name, icon string) (model.Habit, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return model.Habit{}, fmt.Errorf("habit name is required")
	}

	return p.mirrors.Habits.Add(ctx, userID, model.Habit{
		UserID:      userID,
		Name:        name,
		Icon:        icon,
		Completions: map[dates.Day]bool{},
	})
}

// ToggleHabitDay flips exactly one day in the completion map. Other days
// are never recomputed.
func (p *Planner) ToggleHabitDay(ctx context.Context, userID string, habit model.Habit, day dates.Day) error {
	completions := make(map[dates.Day]bool, len(habit.Completions)+1)
	for k, v := range habit.Completions {
		completions[k] = v
	}
	if completions[day] {
		delete(completions, day)
	} else {
		completions[day] = true
	}

	return p.mirrors.Habits.Update(ctx, userID, habit.ID, map[string]any{
		"completions": completions,
	})
}

func (p *Planner) DeleteHabit(ctx context.Context, userID, habitID string) error {
	return p.mirrors.Habits.Remove(ctx, userID, habitID)
}
