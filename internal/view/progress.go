package view

import (
	"time"

	"beaverly/internal/dates"
	"beaverly/internal/model"
)

// DayCount is one bar of the weekly completion histogram.
type DayCount struct {
	Day   dates.Day
	Count int
}

// WeeklyCompletions counts tasks completed on each of the trailing seven
// days, oldest first. Completion instants are bucketed in loc.
func WeeklyCompletions(today dates.Day, loc *time.Location, tasks []model.Task) []DayCount {
	week := make([]DayCount, 7)
	index := make(map[dates.Day]int, 7)
	for i := 0; i < 7; i++ {
		day := today.AddDays(i - 6)
		week[i] = DayCount{Day: day}
		index[day] = i
	}

	for _, task := range tasks {
		if !task.Completed || task.CompletedAt.IsZero() {
			continue
		}
		if i, ok := index[task.CompletedAt.Day(loc)]; ok {
			week[i].Count++
		}
	}
	return week
}

// Split is the completed-versus-pending distribution over all tasks.
type Split struct {
	Completed int
	Pending   int
}

func CompletionSplit(tasks []model.Task) Split {
	var split Split
	for _, task := range tasks {
		if task.Completed {
			split.Completed++
		} else {
			split.Pending++
		}
	}
	return split
}
