package service

import (
	"context"
	"fmt"
	"strings"

	"beaverly/internal/dates"
	"beaverly/internal/model"
	"beaverly/internal/view"
)

// TaskInput carries the fields of a new or edited task.
type TaskInput struct {
	Text       string
	DueDate    dates.Day
	TimeOfDay  string // "HH:MM", optional
	Categories []string
}

func (p *Planner) ListTasks(ctx context.Context, userID string) ([]model.Task, error) {
	return p.mirrors.Tasks.List(ctx, userID)
}

// PendingTasks returns the incomplete tasks in display order: due date,
// then time-of-day, then creation time.
func (p *Planner) PendingTasks(ctx context.Context, userID string) ([]model.Task, error) {
	tasks, err := p.mirrors.Tasks.List(ctx, userID)
	if err != nil {
		return nil, err
	}
	return view.SortIncomplete(tasks), nil
}

func (p *Planner) AddTask(ctx context.Context, userID string, input TaskInput) (model.Task, error) {
	text := strings.TrimSpace(input.Text)
	if text == "" {
		return model.Task{}, fmt.Errorf("task text is required")
	}

	return p.mirrors.Tasks.Add(ctx, userID, model.Task{
		UserID:     userID,
		Text:       text,
		Completed:  false,
		CreatedAt:  dates.Now(),
		DueDate:    input.DueDate,
		TimeOfDay:  input.TimeOfDay,
		Categories: input.Categories,
	})
}

// CompleteTask marks a task done and records the completion instant, which
// feeds the weekly histogram.
func (p *Planner) CompleteTask(ctx context.Context, userID, taskID string) error {
	return p.mirrors.Tasks.Update(ctx, userID, taskID, map[string]any{
		"completed":    true,
		"completed_at": dates.Now(),
	})
}

// ReopenTask clears the done flag and the completion instant.
func (p *Planner) ReopenTask(ctx context.Context, userID, taskID string) error {
	return p.mirrors.Tasks.Update(ctx, userID, taskID, map[string]any{
		"completed":    false,
		"completed_at": nil,
	})
}

func (p *Planner) EditTask(ctx context.Context, userID, taskID string, input TaskInput) error {
	text := strings.TrimSpace(input.Text)
	if text == "" {
		return fmt.Errorf("task text is required")
	}
	return p.mirrors.Tasks.Update(ctx, userID, taskID, map[string]any{
		"text":        text,
		"due_date":    input.DueDate,
		"time_of_day": input.TimeOfDay,
		"categories":  input.Categories,
	})
}

func (p *Planner) DeleteTask(ctx context.Context, userID, taskID string) error {
	return p.mirrors.Tasks.Remove(ctx, userID, taskID)
}

// ClearCompletedTasks removes every done task in one atomic batch.
func (p *Planner) ClearCompletedTasks(ctx context.Context, userID string) error {
	return p.mirrors.Tasks.ClearCompleted(ctx, userID)
}
