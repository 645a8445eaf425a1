package view

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"beaverly/internal/dates"
	"beaverly/internal/model"
)

func stampAt(sec int) dates.Stamp {
	return dates.StampOf(time.Date(2024, time.March, 1, 12, 0, sec, 0, time.UTC))
}

func TestSortIncompleteOrder(t *testing.T) {
	tasks := []model.Task{
		{ID: "undated", Text: "Undated", CreatedAt: stampAt(0)},
		{ID: "late", Text: "Late slot", DueDate: dates.NewDay(2024, time.March, 10), TimeOfDay: "18:00", CreatedAt: stampAt(1)},
		{ID: "early", Text: "Early slot", DueDate: dates.NewDay(2024, time.March, 10), TimeOfDay: "09:00", CreatedAt: stampAt(2)},
		{ID: "untimed", Text: "Untimed same day", DueDate: dates.NewDay(2024, time.March, 10), CreatedAt: stampAt(3)},
		{ID: "sooner", Text: "Sooner", DueDate: dates.NewDay(2024, time.March, 5), CreatedAt: stampAt(4)},
		{ID: "done", Text: "Done", Completed: true, CreatedAt: stampAt(5)},
	}

	sorted := SortIncomplete(tasks)

	ids := make([]string, len(sorted))
	for i, task := range sorted {
		ids[i] = task.ID
	}
	// Untimed sorts as midnight within its day; undated sorts after every
	// dated task.
	assert.Equal(t, []string{"sooner", "untimed", "early", "late", "undated"}, ids)
}

func TestSortIncompleteCreatedAtTiebreak(t *testing.T) {
	day := dates.NewDay(2024, time.March, 10)
	tasks := []model.Task{
		{ID: "second", DueDate: day, CreatedAt: stampAt(10)},
		{ID: "first", DueDate: day, CreatedAt: stampAt(5)},
	}
	sorted := SortIncomplete(tasks)
	assert.Equal(t, "first", sorted[0].ID)
	assert.Equal(t, "second", sorted[1].ID)
}

func TestUpcomingAndPaidBills(t *testing.T) {
	bills := []model.Bill{
		{ID: "b1", DueDate: dates.NewDay(2024, time.March, 20)},
		{ID: "b2", DueDate: dates.NewDay(2024, time.March, 5)},
		{ID: "b3", DueDate: dates.NewDay(2024, time.February, 1), Paid: true},
		{ID: "b4", DueDate: dates.NewDay(2024, time.February, 20), Paid: true},
	}

	upcoming := UpcomingBills(bills)
	assert.Equal(t, "b2", upcoming[0].ID)
	assert.Equal(t, "b1", upcoming[1].ID)

	paid := PaidBills(bills)
	assert.Equal(t, "b4", paid[0].ID)
	assert.Equal(t, "b3", paid[1].ID)
}

func TestSortRemindersAscending(t *testing.T) {
	reminders := []model.Reminder{
		{ID: "r1", Date: dates.NewDay(2024, time.March, 20)},
		{ID: "r2", Date: dates.NewDay(2024, time.March, 1)},
	}
	sorted := SortReminders(reminders)
	assert.Equal(t, "r2", sorted[0].ID)
	// Input untouched.
	assert.Equal(t, "r1", reminders[0].ID)
}
