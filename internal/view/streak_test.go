package view

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"beaverly/internal/dates"
)

func TestStreak(t *testing.T) {
	today := dates.NewDay(2024, time.March, 15)

	tests := []struct {
		name        string
		completions map[dates.Day]bool
		want        int
	}{
		{"empty", map[dates.Day]bool{}, 0},
		{"today only", map[dates.Day]bool{today: true}, 1},
		{
			"three days ending today",
			map[dates.Day]bool{
				today:             true,
				today.AddDays(-1): true,
				today.AddDays(-2): true,
			},
			3,
		},
		{
			"today unmarked falls back to yesterday",
			map[dates.Day]bool{
				today.AddDays(-1): true,
				today.AddDays(-2): true,
			},
			2,
		},
		{
			"gap before yesterday breaks run",
			map[dates.Day]bool{
				today:             true,
				today.AddDays(-2): true,
			},
			1,
		},
		{
			"only older days do not count",
			map[dates.Day]bool{
				today.AddDays(-3): true,
				today.AddDays(-4): true,
			},
			0,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Streak(tt.completions, today))
		})
	}
}

func TestStreakMarkingTodayNeverShrinks(t *testing.T) {
	today := dates.NewDay(2024, time.March, 15)
	completions := map[dates.Day]bool{
		today.AddDays(-1): true,
		today.AddDays(-2): true,
	}
	before := Streak(completions, today)
	completions[today] = true
	after := Streak(completions, today)
	assert.GreaterOrEqual(t, after, before)
	assert.Equal(t, 3, after)
}
