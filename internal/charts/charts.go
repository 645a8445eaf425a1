package charts

import (
	"bytes"
	"fmt"

	"github.com/wcharczuk/go-chart/v2"

	"beaverly/internal/view"
)

// ChartGenerator renders the progress view-models as PNG images.
type ChartGenerator struct{}

func NewChartGenerator() *ChartGenerator {
	return &ChartGenerator{}
}

// GenerateWeeklyCompletions draws the tasks-completed-per-day bar chart for
// the trailing week. Returns nil bytes when nothing was completed, so the
// caller can fall back to a text notice.
func (g *ChartGenerator) GenerateWeeklyCompletions(week []view.DayCount) ([]byte, error) {
	total := 0
	for _, day := range week {
		total += day.Count
	}
	if total == 0 {
		return nil, nil
	}

	bars := make([]chart.Value, 0, len(week))
	for _, day := range week {
		bars = append(bars, chart.Value{
			Label: day.Day.Weekday().String()[:3],
			Value: float64(day.Count),
		})
	}

	graph := chart.BarChart{
		Title:    "Tasks Completed (Last 7 Days)",
		Width:    800,
		Height:   400,
		BarWidth: 60,
		Background: chart.Style{
			Padding: chart.Box{
				Top:    40,
				Left:   20,
				Right:  20,
				Bottom: 20,
			},
			FillColor: chart.ColorWhite,
		},
		XAxis: chart.Style{
			FontSize:  12,
			FontColor: chart.ColorBlack,
		},
		YAxis: chart.YAxis{
			ValueFormatter: func(v interface{}) string {
				return fmt.Sprintf("%.0f", v.(float64))
			},
			Style: chart.Style{
				FontSize:  12,
				FontColor: chart.ColorBlack,
			},
		},
		Bars: bars,
	}

	buffer := bytes.NewBuffer([]byte{})
	if err := graph.Render(chart.PNG, buffer); err != nil {
		return nil, fmt.Errorf("failed to render weekly completions: %w", err)
	}
	return buffer.Bytes(), nil
}

// GenerateCompletionSplit draws the completed-versus-pending pie chart.
// Returns nil bytes when there are no tasks at all.
func (g *ChartGenerator) GenerateCompletionSplit(split view.Split) ([]byte, error) {
	if split.Completed == 0 && split.Pending == 0 {
		return nil, nil
	}

	total := split.Completed + split.Pending
	values := make([]chart.Value, 0, 2)
	if split.Completed > 0 {
		values = append(values, chart.Value{
			Label: fmt.Sprintf("Completed: %d (%.0f%%)", split.Completed, float64(split.Completed)/float64(total)*100),
			Value: float64(split.Completed),
		})
	}
	if split.Pending > 0 {
		values = append(values, chart.Value{
			Label: fmt.Sprintf("Pending: %d (%.0f%%)", split.Pending, float64(split.Pending)/float64(total)*100),
			Value: float64(split.Pending),
		})
	}

	pie := chart.PieChart{
		Title:  "Overall Task Progress",
		Width:  800,
		Height: 800,
		Values: values,
		Background: chart.Style{
			Padding: chart.Box{
				Top:    50,
				Left:   50,
				Right:  50,
				Bottom: 50,
			},
			FillColor: chart.ColorWhite,
		},
	}

	buffer := bytes.NewBuffer([]byte{})
	if err := pie.Render(chart.PNG, buffer); err != nil {
		return nil, fmt.Errorf("failed to render completion split: %w", err)
	}
	return buffer.Bytes(), nil
}
