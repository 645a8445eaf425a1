package view

import (
	"beaverly/internal/dates"
	"beaverly/internal/model"
)

// Density levels clamp a day's item count for rendering intensity.
const (
	Level1 = 1
	Level2 = 2
	Level3 = 3
	Level4 = 4 // four or more
)

// Density buckets every dated item by calendar day and clamps each bucket
// into a level. Days with nothing on them are absent from the result.
func Density(tasks []model.Task, bills []model.Bill, events []model.Event, reminders []model.Reminder) map[dates.Day]int {
	counts := make(map[dates.Day]int)

	add := func(day dates.Day) {
		if !day.IsZero() {
			counts[day]++
		}
	}

	for _, task := range tasks {
		add(task.DueDate)
	}
	for _, bill := range bills {
		add(bill.DueDate)
	}
	for _, event := range events {
		add(event.Date)
	}
	for _, reminder := range reminders {
		add(reminder.Date)
	}

	levels := make(map[dates.Day]int, len(counts))
	for day, n := range counts {
		if n >= Level4 {
			levels[day] = Level4
		} else {
			levels[day] = n
		}
	}
	return levels
}
