package view

import (
	"sort"
	"strings"

	"beaverly/internal/model"
)

// Tasks with no due date sort after every dated task.
var farFuture = "29991231"

// SortIncomplete returns the pending tasks ordered by due date, then
// time-of-day (untimed items sort as midnight), then creation time.
func SortIncomplete(tasks []model.Task) []model.Task {
	pending := make([]model.Task, 0, len(tasks))
	for _, task := range tasks {
		if !task.Completed {
			pending = append(pending, task)
		}
	}

	sort.SliceStable(pending, func(i, j int) bool {
		a, b := sortKey(pending[i]), sortKey(pending[j])
		if a != b {
			return a < b
		}
		return pending[i].CreatedAt.Time.Before(pending[j].CreatedAt.Time)
	})
	return pending
}

// sortKey concatenates yyyyMMdd and HHmm so a plain string compare orders
// by date then time.
func sortKey(task model.Task) string {
	day := farFuture
	if !task.DueDate.IsZero() {
		day = strings.ReplaceAll(task.DueDate.String(), "-", "")
	}
	tod := "0000"
	if task.TimeOfDay != "" {
		tod = strings.ReplaceAll(task.TimeOfDay, ":", "")
	}
	return day + tod
}

// UpcomingBills returns the unpaid bills, soonest due first.
func UpcomingBills(bills []model.Bill) []model.Bill {
	upcoming := make([]model.Bill, 0, len(bills))
	for _, bill := range bills {
		if !bill.Paid {
			upcoming = append(upcoming, bill)
		}
	}
	sort.SliceStable(upcoming, func(i, j int) bool {
		return upcoming[i].DueDate.Before(upcoming[j].DueDate)
	})
	return upcoming
}

// PaidBills returns the paid bills, most recent due date first.
func PaidBills(bills []model.Bill) []model.Bill {
	paid := make([]model.Bill, 0, len(bills))
	for _, bill := range bills {
		if bill.Paid {
			paid = append(paid, bill)
		}
	}
	sort.SliceStable(paid, func(i, j int) bool {
		return paid[j].DueDate.Before(paid[i].DueDate)
	})
	return paid
}

// SortReminders orders reminders by date ascending.
func SortReminders(reminders []model.Reminder) []model.Reminder {
	sorted := make([]model.Reminder, len(reminders))
	copy(sorted, reminders)
	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].Date.Before(sorted[j].Date)
	})
	return sorted
}
