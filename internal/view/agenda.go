// Package view derives display-ready structures from already-fetched
// collections. Everything here is a pure function: no I/O, no failure
// modes. Items whose dates are absent or unparseable are excluded, never
// cause the computation to abort.
package view

import (
	"fmt"
	"sort"

	"beaverly/internal/dates"
	"beaverly/internal/model"
)

// Kind labels the source collection of an agenda item.
type Kind string

const (
	KindTask     Kind = "task"
	KindBill     Kind = "bill"
	KindReminder Kind = "reminder"
	KindEvent    Kind = "event"
)

// AgendaItem is one entry in the combined daily view.
type AgendaItem struct {
	ID   string
	Text string
	Kind Kind
}

// Agenda combines everything happening today: incomplete tasks due today,
// unpaid bills due today, and reminders and events dated today. Output is
// ordered by text.
func Agenda(today dates.Day, tasks []model.Task, bills []model.Bill, reminders []model.Reminder, events []model.Event) []AgendaItem {
	items := make([]AgendaItem, 0)

	for _, task := range tasks {
		if !task.Completed && task.DueDate == today {
			items = append(items, AgendaItem{ID: task.ID, Text: task.Text, Kind: KindTask})
		}
	}
	for _, bill := range bills {
		if !bill.Paid && bill.DueDate == today {
			items = append(items, AgendaItem{ID: bill.ID, Text: fmt.Sprintf("Pay %s", bill.Name), Kind: KindBill})
		}
	}
	for _, reminder := range reminders {
		if reminder.Date == today {
			items = append(items, AgendaItem{ID: reminder.ID, Text: reminder.Text, Kind: KindReminder})
		}
	}
	for _, event := range events {
		if event.Date == today {
			items = append(items, AgendaItem{ID: event.ID, Text: event.Text, Kind: KindEvent})
		}
	}

	sort.Slice(items, func(i, j int) bool {
		return items[i].Text < items[j].Text
	})
	return items
}
