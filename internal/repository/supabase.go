package repository

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/supabase-community/supabase-go"
)

// Collection adapts one postgrest table to the Store contract. The order
// hint uses postgrest syntax ("created_at.desc"); completedColumn names the
// boolean column backing DeleteCompleted and is empty for collections
// without one.
type Collection[T any] struct {
	client          *supabase.Client
	table           string
	order           string
	completedColumn string
}

// NewCollection builds a store over the named table.
func NewCollection[T any](client *supabase.Client, table, order, completedColumn string) *Collection[T] {
	return &Collection[T]{
		client:          client,
		table:           table,
		order:           order,
		completedColumn: completedColumn,
	}
}

func (c *Collection[T]) List(ctx context.Context, userID string) ([]T, error) {
	return c.ListBy(ctx, "user_id", userID)
}

// ListBy fetches every row matching one column filter.
func (c *Collection[T]) ListBy(ctx context.Context, column, value string) ([]T, error) {
	query := c.client.From(c.table).
		Select("*", "", false).
		Eq(column, value)

	if c.order != "" {
		query = query.Order(c.order, nil)
	}

	data, _, err := query.Execute()
	if err != nil {
		return nil, fmt.Errorf("failed to list %s: %w", c.table, err)
	}

	var items []T
	if err := json.Unmarshal(data, &items); err != nil {
		return nil, fmt.Errorf("failed to parse %s: %w", c.table, err)
	}
	return items, nil
}

func (c *Collection[T]) Insert(ctx context.Context, item T) (T, error) {
	var zero T
	data, _, err := c.client.From(c.table).Insert(item, false, "", "representation", "").Execute()
	if err != nil {
		return zero, fmt.Errorf("failed to insert into %s: %w", c.table, err)
	}

	// Parse the response to pick up the backend-assigned id.
	var created []T
	if err := json.Unmarshal(data, &created); err != nil {
		return zero, fmt.Errorf("failed to parse created %s row: %w", c.table, err)
	}
	if len(created) == 0 {
		return item, nil
	}
	return created[0], nil
}

func (c *Collection[T]) Update(ctx context.Context, userID, id string, fields map[string]any) error {
	_, count, err := c.client.From(c.table).
		Update(fields, "", "exact").
		Eq("id", id).
		Eq("user_id", userID).
		Execute()
	if err != nil {
		return fmt.Errorf("failed to update %s: %w", c.table, err)
	}
	if count == 0 {
		return ErrNotFound
	}
	return nil
}

func (c *Collection[T]) Delete(ctx context.Context, userID, id string) error {
	_, count, err := c.client.From(c.table).
		Delete("", "exact").
		Eq("id", id).
		Eq("user_id", userID).
		Execute()
	if err != nil {
		return fmt.Errorf("failed to delete from %s: %w", c.table, err)
	}
	if count == 0 {
		return ErrNotFound
	}
	return nil
}

func (c *Collection[T]) DeleteCompleted(ctx context.Context, userID string) error {
	if c.completedColumn == "" {
		return fmt.Errorf("%s has no completed column", c.table)
	}
	// One filtered DELETE, so the batch commits or fails as a whole.
	_, _, err := c.client.From(c.table).
		Delete("", "").
		Eq("user_id", userID).
		Eq(c.completedColumn, "true").
		Execute()
	if err != nil {
		return fmt.Errorf("failed to clear completed %s: %w", c.table, err)
	}
	return nil
}
