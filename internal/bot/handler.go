package bot

import (
	"context"
	"fmt"
	"strings"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"

	"beaverly/internal/view"
)

const welcomeText = `Welcome to Beaverly! 🦫

Your personal planner: tasks, bills, habits, shopping,
reminders, calendar and voice memos, all in one place.

• /agenda — everything due today
• /tasks, /newtask, /cleardone — task list
• /bills, /newbill — bill tracking
• /habits, /newhabit — habit streaks
• /calendar — month density view
• /reminders, /newreminder and /events, /newevent
• /shopping, /newitem, /clearlist — shopping list
• /memos — voice memos (just send me a voice message)
• /progress — productivity charts
• /stop — close the live dashboard`

func (b *Bot) handleCommand(ctx context.Context, message *tgbotapi.Message) error {
	chatID := message.Chat.ID

	if message.Command() == "start" {
		return b.handleStart(ctx, message)
	}

	userID := b.resolveUser(ctx, message.From.ID)
	if userID == "" {
		b.sendErrorMessage(chatID, "You are not linked yet. Run /start first.")
		return nil
	}

	switch message.Command() {
	case "stop":
		b.unmount(chatID)
		b.setState(chatID, awaitingNothing)
		b.sendText(chatID, "Dashboard closed. /start brings it back.")
	case "agenda":
		b.handleAgenda(ctx, chatID, userID)
	case "tasks":
		b.handleTasks(ctx, chatID, userID)
	case "newtask":
		b.setState(chatID, awaitingTask)
		b.sendText(chatID, "New task — send:\ntext | due yyyy-mm-dd | time HH:MM | categories\n(everything after the text is optional)")
	case "cleardone":
		if err := b.planner.ClearCompletedTasks(ctx, userID); err != nil {
			b.reportError(chatID, err)
			return nil
		}
		b.sendText(chatID, "Completed tasks cleared. ✅")
	case "bills":
		b.handleBills(ctx, chatID, userID)
	case "newbill":
		b.setState(chatID, awaitingBill)
		b.sendText(chatID, "New bill — send:\nname | amount | due yyyy-mm-dd | recurring\n(recurring is optional)")
	case "habits":
		b.handleHabits(ctx, chatID, userID)
	case "newhabit":
		b.setState(chatID, awaitingHabit)
		b.sendText(chatID, "New habit — send:\nname | icon\n(icon is optional, e.g. 📚)")
	case "calendar":
		b.handleCalendar(ctx, chatID, userID)
	case "reminders":
		b.handleReminders(ctx, chatID, userID)
	case "newreminder":
		b.setState(chatID, awaitingReminder)
		b.sendText(chatID, "New reminder — send:\ntext | yyyy-mm-dd")
	case "events":
		b.handleEvents(ctx, chatID, userID)
	case "newevent":
		b.setState(chatID, awaitingEvent)
		b.sendText(chatID, "New event — send:\ntext | yyyy-mm-dd")
	case "shopping":
		b.handleShopping(ctx, chatID, userID)
	case "newitem":
		b.setState(chatID, awaitingShopping)
		b.sendText(chatID, "What should I put on the shopping list?")
	case "clearlist":
		if err := b.planner.ClearCompletedShopping(ctx, userID); err != nil {
			b.reportError(chatID, err)
			return nil
		}
		b.sendText(chatID, "Checked-off items cleared. ✅")
	case "memos":
		b.handleMemos(ctx, chatID, userID)
	case "progress":
		b.handleProgress(ctx, chatID, userID)
	default:
		b.sendText(chatID, "I don't know that command. Try /start.")
	}
	return nil
}

func (b *Bot) handleStart(ctx context.Context, message *tgbotapi.Message) error {
	chatID := message.Chat.ID

	userID, err := b.planner.EnsureAccount(ctx, message.From.ID)
	if err != nil {
		b.sendErrorMessage(chatID, "Could not link your account, please try again.")
		return err
	}
	if err := b.mount(ctx, chatID, userID); err != nil {
		b.sendErrorMessage(chatID, "Could not open your dashboard, please try again.")
		return err
	}

	msg := tgbotapi.NewMessage(chatID, welcomeText)
	msg.ReplyMarkup = b.getMainKeyboard()
	b.send(msg)
	return nil
}

func (b *Bot) handleAgenda(ctx context.Context, chatID int64, userID string) {
	var items []view.AgendaItem

	// A mounted dashboard already holds live snapshots; render from them.
	if sess := b.sessionFor(chatID); sess != nil && sess.userID == userID {
		sess.mu.Lock()
		items = view.Agenda(b.planner.Today(), sess.tasks, sess.bills, sess.reminders, sess.events)
		sess.mu.Unlock()
	} else {
		var err error
		items, err = b.planner.DailyAgenda(ctx, userID)
		if err != nil {
			b.reportError(chatID, err)
			return
		}
	}

	if len(items) == 0 {
		b.sendText(chatID, "Nothing on the agenda today. Enjoy! ☀️")
		return
	}

	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("📅 Today's Agenda (%s)\n\n", b.planner.Today()))
	for _, item := range items {
		sb.WriteString(fmt.Sprintf("%s %s\n", kindBadge(item.Kind), item.Text))
	}
	b.sendText(chatID, sb.String())
}

func kindBadge(kind view.Kind) string {
	switch kind {
	case view.KindTask:
		return "☑️"
	case view.KindBill:
		return "💸"
	case view.KindReminder:
		return "🔔"
	case view.KindEvent:
		return "📌"
	}
	return "•"
}

func (b *Bot) handleTasks(ctx context.Context, chatID int64, userID string) {
	tasks, err := b.planner.ListTasks(ctx, userID)
	if err != nil {
		b.reportError(chatID, err)
		return
	}

	pending := view.SortIncomplete(tasks)
	split := view.CompletionSplit(tasks)

	if len(tasks) == 0 {
		b.sendText(chatID, "No tasks yet. /newtask adds one.")
		return
	}

	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("📋 Tasks — %d pending, %d done\n\n", split.Pending, split.Completed))
	for _, task := range pending {
		line := "• " + task.Text
		if !task.DueDate.IsZero() {
			line += " — " + task.DueDate.String()
			if task.TimeOfDay != "" {
				line += " " + task.TimeOfDay
			}
		}
		if len(task.Categories) > 0 {
			line += " [" + strings.Join(task.Categories, ", ") + "]"
		}
		sb.WriteString(line + "\n")
	}

	msg := tgbotapi.NewMessage(chatID, sb.String())
	msg.ReplyMarkup = b.getTasksKeyboard(pending)
	b.send(msg)
}

func (b *Bot) handleBills(ctx context.Context, chatID int64, userID string) {
	bills, err := b.planner.ListBills(ctx, userID)
	if err != nil {
		b.reportError(chatID, err)
		return
	}
	if len(bills) == 0 {
		b.sendText(chatID, "No bills tracked. /newbill adds one.")
		return
	}

	upcoming := view.UpcomingBills(bills)
	paid := view.PaidBills(bills)

	var sb strings.Builder
	var upcomingTotal float64
	sb.WriteString("💰 Upcoming bills:\n")
	for _, bill := range upcoming {
		upcomingTotal += bill.Amount
		line := fmt.Sprintf("• %s — $%.2f due %s", bill.Name, bill.Amount, bill.DueDate)
		if bill.Recurring {
			line += " 🔁"
		}
		sb.WriteString(line + "\n")
	}
	if len(upcoming) == 0 {
		sb.WriteString("(none)\n")
	} else {
		sb.WriteString(fmt.Sprintf("Total due: $%.2f\n", upcomingTotal))
	}

	if len(paid) > 0 {
		sb.WriteString("\n✅ Paid:\n")
		for _, bill := range paid {
			sb.WriteString(fmt.Sprintf("• %s — $%.2f (%s)\n", bill.Name, bill.Amount, bill.DueDate))
		}
	}

	msg := tgbotapi.NewMessage(chatID, sb.String())
	msg.ReplyMarkup = b.getBillsKeyboard(upcoming)
	b.send(msg)
}

func (b *Bot) handleHabits(ctx context.Context, chatID int64, userID string) {
	habits, err := b.planner.ListHabits(ctx, userID)
	if err != nil {
		b.reportError(chatID, err)
		return
	}
	if len(habits) == 0 {
		b.sendText(chatID, "No habits yet. /newhabit starts one.")
		return
	}

	today := b.planner.Today()
	var sb strings.Builder
	sb.WriteString("🎯 Habits:\n\n")
	for _, habit := range habits {
		streak := view.Streak(habit.Completions, today)
		mark := "▫️"
		if habit.Completions[today] {
			mark = "✅"
		}
		icon := habit.Icon
		if icon == "" {
			icon = "⚡"
		}
		sb.WriteString(fmt.Sprintf("%s %s %s — 🔥 %d day streak\n", mark, icon, habit.Name, streak))
	}
	sb.WriteString("\nTap a habit to toggle today.")

	msg := tgbotapi.NewMessage(chatID, sb.String())
	msg.ReplyMarkup = b.getHabitsKeyboard(habits)
	b.send(msg)
}

func (b *Bot) handleCalendar(ctx context.Context, chatID int64, userID string) {
	levels, err := b.planner.CalendarDensity(ctx, userID)
	if err != nil {
		b.reportError(chatID, err)
		return
	}
	b.sendText(chatID, renderDensityMonth(b.planner.Today(), levels))
}

func (b *Bot) handleReminders(ctx context.Context, chatID int64, userID string) {
	reminders, err := b.planner.ListReminders(ctx, userID)
	if err != nil {
		b.reportError(chatID, err)
		return
	}
	if len(reminders) == 0 {
		b.sendText(chatID, "No reminders. /newreminder adds one.")
		return
	}

	today := b.planner.Today()
	var sb strings.Builder
	sb.WriteString("🔔 Reminders:\n")
	for _, reminder := range view.SortReminders(reminders) {
		marker := "•"
		if reminder.Date == today {
			marker = "👉"
		} else if reminder.Date.Before(today) {
			marker = "⌛"
		}
		sb.WriteString(fmt.Sprintf("%s %s — %s\n", marker, reminder.Text, reminder.Date))
	}

	msg := tgbotapi.NewMessage(chatID, sb.String())
	msg.ReplyMarkup = b.getRemindersKeyboard(view.SortReminders(reminders))
	b.send(msg)
}

func (b *Bot) handleEvents(ctx context.Context, chatID int64, userID string) {
	events, err := b.planner.ListEvents(ctx, userID)
	if err != nil {
		b.reportError(chatID, err)
		return
	}
	if len(events) == 0 {
		b.sendText(chatID, "No events. /newevent adds one.")
		return
	}

	var sb strings.Builder
	sb.WriteString("📌 Events:\n")
	for _, event := range events {
		sb.WriteString(fmt.Sprintf("• %s — %s\n", event.Text, event.Date))
	}

	msg := tgbotapi.NewMessage(chatID, sb.String())
	msg.ReplyMarkup = b.getEventsKeyboard(events)
	b.send(msg)
}

func (b *Bot) handleShopping(ctx context.Context, chatID int64, userID string) {
	items, err := b.planner.ShoppingList(ctx, userID)
	if err != nil {
		b.reportError(chatID, err)
		return
	}
	if len(items) == 0 {
		b.sendText(chatID, "The shopping list is empty. /newitem adds one.")
		return
	}

	var sb strings.Builder
	sb.WriteString("🛒 Shopping list:\n")
	for _, item := range items {
		mark := "▫️"
		if item.Completed {
			mark = "✅"
		}
		sb.WriteString(fmt.Sprintf("%s %s\n", mark, item.Text))
	}
	sb.WriteString("\nTap an item to check it off.")

	msg := tgbotapi.NewMessage(chatID, sb.String())
	msg.ReplyMarkup = b.getShoppingKeyboard(items)
	b.send(msg)
}

func (b *Bot) handleMemos(ctx context.Context, chatID int64, userID string) {
	memos, err := b.planner.ListMemos(ctx, userID)
	if err != nil {
		b.reportError(chatID, err)
		return
	}
	if len(memos) == 0 {
		b.sendText(chatID, "No memos yet. Send me a voice message to record one.")
		return
	}

	var sb strings.Builder
	sb.WriteString("🎙 Voice memos:\n")
	for i, memo := range memos {
		sb.WriteString(fmt.Sprintf("%d. %s\n%s\n", i+1, memo.CreatedAt.Format("Jan 2, 2006 15:04"), memo.AudioURL))
	}

	msg := tgbotapi.NewMessage(chatID, sb.String())
	msg.ReplyMarkup = b.getMemosKeyboard(memos)
	b.send(msg)
}

func (b *Bot) handleProgress(ctx context.Context, chatID int64, userID string) {
	progress, err := b.planner.ProgressReport(ctx, userID)
	if err != nil {
		b.reportError(chatID, err)
		return
	}

	weekly, err := b.charts.GenerateWeeklyCompletions(progress.Week)
	if err != nil {
		b.reportError(chatID, err)
		return
	}
	if weekly == nil {
		b.sendText(chatID, "No tasks completed in the last 7 days yet.")
	} else {
		photo := tgbotapi.NewPhoto(chatID, tgbotapi.FileBytes{Name: "weekly.png", Bytes: weekly})
		photo.Caption = "Tasks completed, last 7 days"
		b.send(photo)
	}

	split, err := b.charts.GenerateCompletionSplit(progress.Split)
	if err != nil {
		b.reportError(chatID, err)
		return
	}
	if split == nil {
		b.sendText(chatID, "No tasks yet. Add some to get started!")
		return
	}
	photo := tgbotapi.NewPhoto(chatID, tgbotapi.FileBytes{Name: "progress.png", Bytes: split})
	photo.Caption = fmt.Sprintf("Overall: %d completed / %d pending", progress.Split.Completed, progress.Split.Pending)
	b.send(photo)
}
