package bot

import (
	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"

	"beaverly/internal/model"
)

func (b *Bot) getMainKeyboard() tgbotapi.ReplyKeyboardMarkup {
	return tgbotapi.NewReplyKeyboard(
		tgbotapi.NewKeyboardButtonRow(
			tgbotapi.NewKeyboardButton("/agenda"),
			tgbotapi.NewKeyboardButton("/tasks"),
			tgbotapi.NewKeyboardButton("/bills"),
		),
		tgbotapi.NewKeyboardButtonRow(
			tgbotapi.NewKeyboardButton("/habits"),
			tgbotapi.NewKeyboardButton("/calendar"),
			tgbotapi.NewKeyboardButton("/shopping"),
		),
		tgbotapi.NewKeyboardButtonRow(
			tgbotapi.NewKeyboardButton("/reminders"),
			tgbotapi.NewKeyboardButton("/memos"),
			tgbotapi.NewKeyboardButton("/progress"),
		),
	)
}

// truncate keeps button labels short enough to render on one row.
func truncate(s string, n int) string {
	runes := []rune(s)
	if len(runes) <= n {
		return s
	}
	return string(runes[:n-1]) + "…"
}

func (b *Bot) getTasksKeyboard(tasks []model.Task) tgbotapi.InlineKeyboardMarkup {
	var rows [][]tgbotapi.InlineKeyboardButton
	for _, task := range tasks {
		rows = append(rows, tgbotapi.NewInlineKeyboardRow(
			tgbotapi.NewInlineKeyboardButtonData("✅ "+truncate(task.Text, 24), cbTaskDone+task.ID),
			tgbotapi.NewInlineKeyboardButtonData("🗑", cbTaskDelete+task.ID),
		))
	}
	rows = append(rows, tgbotapi.NewInlineKeyboardRow(
		tgbotapi.NewInlineKeyboardButtonData("🧹 Clear completed", cbClearTasks),
	))
	return tgbotapi.NewInlineKeyboardMarkup(rows...)
}

func (b *Bot) getBillsKeyboard(upcoming []model.Bill) tgbotapi.InlineKeyboardMarkup {
	var rows [][]tgbotapi.InlineKeyboardButton
	for _, bill := range upcoming {
		rows = append(rows, tgbotapi.NewInlineKeyboardRow(
			tgbotapi.NewInlineKeyboardButtonData("💸 Pay "+truncate(bill.Name, 20), cbBillPay+bill.ID),
			tgbotapi.NewInlineKeyboardButtonData("🗑", cbBillDelete+bill.ID),
		))
	}
	return tgbotapi.NewInlineKeyboardMarkup(rows...)
}

func (b *Bot) getHabitsKeyboard(habits []model.Habit) tgbotapi.InlineKeyboardMarkup {
	var rows [][]tgbotapi.InlineKeyboardButton
	for _, habit := range habits {
		rows = append(rows, tgbotapi.NewInlineKeyboardRow(
			tgbotapi.NewInlineKeyboardButtonData(truncate(habit.Name, 24), cbHabitToggle+habit.ID),
			tgbotapi.NewInlineKeyboardButtonData("🗑", cbHabitDelete+habit.ID),
		))
	}
	return tgbotapi.NewInlineKeyboardMarkup(rows...)
}

func (b *Bot) getShoppingKeyboard(items []model.ShoppingItem) tgbotapi.InlineKeyboardMarkup {
	var rows [][]tgbotapi.InlineKeyboardButton
	for _, item := range items {
		rows = append(rows, tgbotapi.NewInlineKeyboardRow(
			tgbotapi.NewInlineKeyboardButtonData(truncate(item.Text, 24), cbShopToggle+item.ID),
			tgbotapi.NewInlineKeyboardButtonData("🗑", cbShopDelete+item.ID),
		))
	}
	rows = append(rows, tgbotapi.NewInlineKeyboardRow(
		tgbotapi.NewInlineKeyboardButtonData("🧹 Clear checked", cbClearShopping),
	))
	return tgbotapi.NewInlineKeyboardMarkup(rows...)
}

func (b *Bot) getRemindersKeyboard(reminders []model.Reminder) tgbotapi.InlineKeyboardMarkup {
	var rows [][]tgbotapi.InlineKeyboardButton
	for _, reminder := range reminders {
		rows = append(rows, tgbotapi.NewInlineKeyboardRow(
			tgbotapi.NewInlineKeyboardButtonData("🗑 "+truncate(reminder.Text, 24), cbReminderDel+reminder.ID),
		))
	}
	return tgbotapi.NewInlineKeyboardMarkup(rows...)
}

func (b *Bot) getEventsKeyboard(events []model.Event) tgbotapi.InlineKeyboardMarkup {
	var rows [][]tgbotapi.InlineKeyboardButton
	for _, event := range events {
		rows = append(rows, tgbotapi.NewInlineKeyboardRow(
			tgbotapi.NewInlineKeyboardButtonData("🗑 "+truncate(event.Text, 24), cbEventDelete+event.ID),
		))
	}
	return tgbotapi.NewInlineKeyboardMarkup(rows...)
}

func (b *Bot) getMemosKeyboard(memos []model.Memo) tgbotapi.InlineKeyboardMarkup {
	var rows [][]tgbotapi.InlineKeyboardButton
	for _, memo := range memos {
		rows = append(rows, tgbotapi.NewInlineKeyboardRow(
			tgbotapi.NewInlineKeyboardButtonData("🗑 "+memo.CreatedAt.Format("Jan 2 15:04"), cbMemoDelete+memo.ID),
		))
	}
	return tgbotapi.NewInlineKeyboardMarkup(rows...)
}
