package view

import "beaverly/internal/dates"

// Streak counts consecutive completed days ending at today, or ending at
// yesterday when today is not yet marked. It stops at the first gap.
func Streak(completions map[dates.Day]bool, today dates.Day) int {
	streak := 0
	current := today
	for completions[current] {
		streak++
		current = current.AddDays(-1)
	}

	// Today unmarked does not break an ongoing run from yesterday.
	if streak == 0 && !completions[today] {
		current = today.AddDays(-1)
		for completions[current] {
			streak++
			current = current.AddDays(-1)
		}
	}
	return streak
}
