package bot

import (
	"context"
	"fmt"
	"strings"
	"time"

	"beaverly/internal/dates"
	"beaverly/internal/view"
)

// densitySymbols maps a density level to a calendar cell.
var densitySymbols = map[int]string{
	0:           "▫️",
	view.Level1: "🟩",
	view.Level2: "🟨",
	view.Level3: "🟧",
	view.Level4: "🟥",
}

// renderDensityMonth draws the current month as a grid of density cells,
// Monday first.
func renderDensityMonth(today dates.Day, levels map[dates.Day]int) string {
	first := time.Date(today.Year, today.Month, 1, 0, 0, 0, 0, time.UTC)
	daysInMonth := first.AddDate(0, 1, -1).Day()

	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("🗓 %s %d\n", today.Month, today.Year))
	sb.WriteString("Mo Tu We Th Fr Sa Su\n")

	// Monday-first offset of the 1st.
	offset := (int(first.Weekday()) + 6) % 7
	for i := 0; i < offset; i++ {
		sb.WriteString("    ")
	}

	column := offset
	for dayOfMonth := 1; dayOfMonth <= daysInMonth; dayOfMonth++ {
		day := dates.NewDay(today.Year, today.Month, dayOfMonth)
		sb.WriteString(densitySymbols[levels[day]] + " ")
		column++
		if column%7 == 0 {
			sb.WriteString("\n")
		}
	}
	if column%7 != 0 {
		sb.WriteString("\n")
	}

	sb.WriteString("\n🟩 1  🟨 2  🟧 3  🟥 4+ items per day")
	return sb.String()
}

// SendDailyAgendas pushes the morning agenda to every mounted chat. Wired
// to the daily scheduler job.
func (b *Bot) SendDailyAgendas(ctx context.Context) error {
	b.mu.Lock()
	chats := make(map[int64]string, len(b.sessions))
	for chatID, sess := range b.sessions {
		chats[chatID] = sess.userID
	}
	b.mu.Unlock()

	for chatID, userID := range chats {
		b.handleAgenda(ctx, chatID, userID)
	}
	return nil
}
