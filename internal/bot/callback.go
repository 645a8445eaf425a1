package bot

import (
	"context"
	"fmt"
	"strings"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
)

const (
	cbTaskDone      = "task_done:"
	cbTaskDelete    = "task_del:"
	cbBillPay       = "bill_pay:"
	cbBillDelete    = "bill_del:"
	cbHabitToggle   = "habit_tog:"
	cbHabitDelete   = "habit_del:"
	cbShopToggle    = "shop_tog:"
	cbShopDelete    = "shop_del:"
	cbReminderDel   = "rem_del:"
	cbEventDelete   = "event_del:"
	cbMemoDelete    = "memo_del:"
	cbClearTasks    = "clear_tasks"
	cbClearShopping = "clear_shopping"
)

func (b *Bot) handleCallback(ctx context.Context, callback *tgbotapi.CallbackQuery) error {
	chatID := callback.Message.Chat.ID
	data := callback.Data

	// Answer first so the client drops its loading indicator.
	if _, err := b.api.Request(tgbotapi.NewCallback(callback.ID, "")); err != nil {
		return err
	}

	userID := b.resolveUser(ctx, callback.From.ID)
	if userID == "" {
		b.sendErrorMessage(chatID, "You are not linked yet. Run /start first.")
		return nil
	}

	switch {
	case data == cbClearTasks:
		if err := b.planner.ClearCompletedTasks(ctx, userID); err != nil {
			b.reportError(chatID, err)
			return nil
		}
		b.sendText(chatID, "Completed tasks cleared. ✅")

	case data == cbClearShopping:
		if err := b.planner.ClearCompletedShopping(ctx, userID); err != nil {
			b.reportError(chatID, err)
			return nil
		}
		b.sendText(chatID, "Checked-off items cleared. ✅")

	case strings.HasPrefix(data, cbTaskDone):
		if err := b.planner.CompleteTask(ctx, userID, strings.TrimPrefix(data, cbTaskDone)); err != nil {
			b.reportError(chatID, err)
			return nil
		}
		b.sendText(chatID, "Task completed. 🎉")

	case strings.HasPrefix(data, cbTaskDelete):
		if err := b.planner.DeleteTask(ctx, userID, strings.TrimPrefix(data, cbTaskDelete)); err != nil {
			b.reportError(chatID, err)
			return nil
		}
		b.sendText(chatID, "Task deleted.")

	case strings.HasPrefix(data, cbBillPay):
		b.payBill(ctx, chatID, userID, strings.TrimPrefix(data, cbBillPay))

	case strings.HasPrefix(data, cbBillDelete):
		if err := b.planner.DeleteBill(ctx, userID, strings.TrimPrefix(data, cbBillDelete)); err != nil {
			b.reportError(chatID, err)
			return nil
		}
		b.sendText(chatID, "Bill deleted.")

	case strings.HasPrefix(data, cbHabitToggle):
		b.toggleHabit(ctx, chatID, userID, strings.TrimPrefix(data, cbHabitToggle))

	case strings.HasPrefix(data, cbHabitDelete):
		if err := b.planner.DeleteHabit(ctx, userID, strings.TrimPrefix(data, cbHabitDelete)); err != nil {
			b.reportError(chatID, err)
			return nil
		}
		b.sendText(chatID, "Habit removed.")

	case strings.HasPrefix(data, cbShopToggle):
		b.toggleShopping(ctx, chatID, userID, strings.TrimPrefix(data, cbShopToggle))

	case strings.HasPrefix(data, cbShopDelete):
		if err := b.planner.DeleteShoppingItem(ctx, userID, strings.TrimPrefix(data, cbShopDelete)); err != nil {
			b.reportError(chatID, err)
			return nil
		}
		b.sendText(chatID, "Item removed.")

	case strings.HasPrefix(data, cbReminderDel):
		if err := b.planner.DeleteReminder(ctx, userID, strings.TrimPrefix(data, cbReminderDel)); err != nil {
			b.reportError(chatID, err)
			return nil
		}
		b.sendText(chatID, "Reminder deleted.")

	case strings.HasPrefix(data, cbEventDelete):
		if err := b.planner.DeleteEvent(ctx, userID, strings.TrimPrefix(data, cbEventDelete)); err != nil {
			b.reportError(chatID, err)
			return nil
		}
		b.sendText(chatID, "Event deleted.")

	case strings.HasPrefix(data, cbMemoDelete):
		b.deleteMemo(ctx, chatID, userID, strings.TrimPrefix(data, cbMemoDelete))
	}

	return nil
}

// payBill needs the full bill to decide on recurring expansion, so it
// re-reads the list and matches the id.
func (b *Bot) payBill(ctx context.Context, chatID int64, userID, billID string) {
	bills, err := b.planner.ListBills(ctx, userID)
	if err != nil {
		b.reportError(chatID, err)
		return
	}
	for _, bill := range bills {
		if bill.ID != billID {
			continue
		}
		next, err := b.planner.PayBill(ctx, userID, bill)
		if err != nil {
			b.reportError(chatID, err)
			return
		}
		if next != nil {
			b.sendText(chatID, fmt.Sprintf("%s paid. 💸 Next one is due %s.", bill.Name, next.DueDate))
		} else {
			b.sendText(chatID, fmt.Sprintf("%s paid. 💸", bill.Name))
		}
		return
	}
	b.sendErrorMessage(chatID, "That bill no longer exists.")
}

func (b *Bot) toggleHabit(ctx context.Context, chatID int64, userID, habitID string) {
	habits, err := b.planner.ListHabits(ctx, userID)
	if err != nil {
		b.reportError(chatID, err)
		return
	}
	for _, habit := range habits {
		if habit.ID != habitID {
			continue
		}
		if err := b.planner.ToggleHabitDay(ctx, userID, habit, b.planner.Today()); err != nil {
			b.reportError(chatID, err)
			return
		}
		b.handleHabits(ctx, chatID, userID)
		return
	}
	b.sendErrorMessage(chatID, "That habit no longer exists.")
}

func (b *Bot) toggleShopping(ctx context.Context, chatID int64, userID, itemID string) {
	items, err := b.planner.ShoppingList(ctx, userID)
	if err != nil {
		b.reportError(chatID, err)
		return
	}
	for _, item := range items {
		if item.ID != itemID {
			continue
		}
		if err := b.planner.ToggleShoppingItem(ctx, userID, item); err != nil {
			b.reportError(chatID, err)
			return
		}
		b.handleShopping(ctx, chatID, userID)
		return
	}
	b.sendErrorMessage(chatID, "That item no longer exists.")
}

func (b *Bot) deleteMemo(ctx context.Context, chatID int64, userID, memoID string) {
	memos, err := b.planner.ListMemos(ctx, userID)
	if err != nil {
		b.reportError(chatID, err)
		return
	}
	for _, memo := range memos {
		if memo.ID != memoID {
			continue
		}
		if err := b.planner.DeleteMemo(ctx, userID, memo); err != nil {
			b.reportError(chatID, err)
			return
		}
		b.sendText(chatID, "Memo deleted.")
		return
	}
	b.sendErrorMessage(chatID, "That memo no longer exists.")
}
