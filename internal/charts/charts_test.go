package charts

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"beaverly/internal/dates"
	"beaverly/internal/view"
)

func TestGenerateWeeklyCompletionsEmpty(t *testing.T) {
	g := NewChartGenerator()

	week := make([]view.DayCount, 7)
	for i := range week {
		week[i].Day = dates.NewDay(2024, time.March, 9+i)
	}

	data, err := g.GenerateWeeklyCompletions(week)
	require.NoError(t, err)
	assert.Nil(t, data, "no completions means no chart")
}

func TestGenerateWeeklyCompletions(t *testing.T) {
	g := NewChartGenerator()

	week := make([]view.DayCount, 7)
	for i := range week {
		week[i].Day = dates.NewDay(2024, time.March, 9+i)
		week[i].Count = i
	}

	data, err := g.GenerateWeeklyCompletions(week)
	require.NoError(t, err)
	assert.NotEmpty(t, data)
}

func TestGenerateCompletionSplit(t *testing.T) {
	g := NewChartGenerator()

	data, err := g.GenerateCompletionSplit(view.Split{})
	require.NoError(t, err)
	assert.Nil(t, data)

	data, err = g.GenerateCompletionSplit(view.Split{Completed: 3, Pending: 2})
	require.NoError(t, err)
	assert.NotEmpty(t, data)

	// Single-sided splits still render without a zero slice.
	data, err = g.GenerateCompletionSplit(view.Split{Completed: 5})
	require.NoError(t, err)
	assert.NotEmpty(t, data)
}
