package bot

import (
	"context"
	"fmt"
	"net/http"
	"strconv"
	"strings"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"

	"beaverly/internal/dates"
	"beaverly/internal/service"
)

// handleMessage parses a plain message according to the chat's pending
// input state.
func (b *Bot) handleMessage(ctx context.Context, message *tgbotapi.Message) error {
	chatID := message.Chat.ID

	state := b.state(chatID)
	if state == awaitingNothing {
		msg := tgbotapi.NewMessage(chatID, "Pick an action:")
		msg.ReplyMarkup = b.getMainKeyboard()
		b.send(msg)
		return nil
	}

	userID := b.resolveUser(ctx, message.From.ID)
	if userID == "" {
		b.sendErrorMessage(chatID, "You are not linked yet. Run /start first.")
		return nil
	}

	parts := splitFields(message.Text)
	if len(parts) == 0 {
		b.sendErrorMessage(chatID, "That looked empty, try again.")
		return nil
	}

	var err error
	switch state {
	case awaitingTask:
		err = b.addTask(ctx, userID, chatID, parts)
	case awaitingBill:
		err = b.addBill(ctx, userID, chatID, parts)
	case awaitingHabit:
		err = b.addHabit(ctx, userID, chatID, parts)
	case awaitingEvent:
		err = b.addDated(ctx, userID, chatID, parts, "event")
	case awaitingReminder:
		err = b.addDated(ctx, userID, chatID, parts, "reminder")
	case awaitingShopping:
		_, err = b.planner.AddShoppingItem(ctx, userID, message.Text)
		if err == nil {
			b.sendText(chatID, "Added to the shopping list. 🛒")
		}
	}
	if err != nil {
		b.sendErrorMessage(chatID, err.Error())
		return nil
	}

	b.setState(chatID, awaitingNothing)
	return nil
}

// splitFields breaks "a | b | c" into trimmed segments.
func splitFields(text string) []string {
	raw := strings.Split(text, "|")
	parts := make([]string, 0, len(raw))
	for _, part := range raw {
		part = strings.TrimSpace(part)
		if part != "" {
			parts = append(parts, part)
		}
	}
	return parts
}

func (b *Bot) addTask(ctx context.Context, userID string, chatID int64, parts []string) error {
	input := service.TaskInput{Text: parts[0]}
	if len(parts) > 1 {
		due, err := dates.ParseDay(parts[1])
		if err != nil {
			return fmt.Errorf("invalid due date %q, expected yyyy-mm-dd", parts[1])
		}
		input.DueDate = due
	}
	if len(parts) > 2 {
		if !validTimeOfDay(parts[2]) {
			return fmt.Errorf("invalid time %q, expected HH:MM", parts[2])
		}
		input.TimeOfDay = parts[2]
	}
	if len(parts) > 3 {
		for _, category := range strings.Split(parts[3], ",") {
			if category = strings.TrimSpace(category); category != "" {
				input.Categories = append(input.Categories, category)
			}
		}
	}

	task, err := b.planner.AddTask(ctx, userID, input)
	if err != nil {
		return err
	}
	b.sendText(chatID, fmt.Sprintf("Task added: %s ✅", task.Text))
	return nil
}

func validTimeOfDay(s string) bool {
	parts := strings.Split(s, ":")
	if len(parts) != 2 {
		return false
	}
	hour, err := strconv.Atoi(parts[0])
	if err != nil || hour < 0 || hour > 23 {
		return false
	}
	minute, err := strconv.Atoi(parts[1])
	if err != nil || minute < 0 || minute > 59 {
		return false
	}
	return true
}

func (b *Bot) addBill(ctx context.Context, userID string, chatID int64, parts []string) error {
	if len(parts) < 3 {
		return fmt.Errorf("expected: name | amount | due yyyy-mm-dd")
	}
	amount, err := strconv.ParseFloat(parts[1], 64)
	if err != nil {
		return fmt.Errorf("invalid amount %q", parts[1])
	}
	due, err := dates.ParseDay(parts[2])
	if err != nil {
		return fmt.Errorf("invalid due date %q, expected yyyy-mm-dd", parts[2])
	}
	recurring := len(parts) > 3 && strings.EqualFold(parts[3], "recurring")

	bill, err := b.planner.AddBill(ctx, userID, parts[0], amount, due, recurring)
	if err != nil {
		return err
	}
	b.sendText(chatID, fmt.Sprintf("Bill added: %s, $%.2f due %s ✅", bill.Name, bill.Amount, bill.DueDate))
	return nil
}

func (b *Bot) addHabit(ctx context.Context, userID string, chatID int64, parts []string) error {
	icon := ""
	if len(parts) > 1 {
		icon = parts[1]
	}
	habit, err := b.planner.AddHabit(ctx, userID, parts[0], icon)
	if err != nil {
		return err
	}
	b.sendText(chatID, fmt.Sprintf("Habit started: %s 🎯", habit.Name))
	return nil
}

func (b *Bot) addDated(ctx context.Context, userID string, chatID int64, parts []string, kind string) error {
	if len(parts) < 2 {
		return fmt.Errorf("expected: text | yyyy-mm-dd")
	}
	date, err := dates.ParseDay(parts[1])
	if err != nil {
		return fmt.Errorf("invalid date %q, expected yyyy-mm-dd", parts[1])
	}

	if kind == "event" {
		event, err := b.planner.AddEvent(ctx, userID, parts[0], date)
		if err != nil {
			return err
		}
		b.sendText(chatID, fmt.Sprintf("Event added: %s on %s 📌", event.Text, event.Date))
		return nil
	}

	reminder, err := b.planner.AddReminder(ctx, userID, parts[0], date)
	if err != nil {
		return err
	}
	b.sendText(chatID, fmt.Sprintf("Reminder set: %s on %s 🔔", reminder.Text, reminder.Date))
	return nil
}

// handleVoice records an incoming voice message as a memo: download from
// Telegram, upload to the blob store, persist the record.
func (b *Bot) handleVoice(ctx context.Context, message *tgbotapi.Message) error {
	chatID := message.Chat.ID

	userID := b.resolveUser(ctx, message.From.ID)
	if userID == "" {
		b.sendErrorMessage(chatID, "You are not linked yet. Run /start first.")
		return nil
	}

	fileID := ""
	ext := ".oga"
	if message.Voice != nil {
		fileID = message.Voice.FileID
	} else if message.Audio != nil {
		fileID = message.Audio.FileID
		ext = ".mp3"
	}

	fileURL, err := b.api.GetFileDirectURL(fileID)
	if err != nil {
		b.sendErrorMessage(chatID, "Could not fetch the audio from Telegram.")
		return err
	}

	resp, err := http.Get(fileURL)
	if err != nil {
		b.sendErrorMessage(chatID, "Could not download the audio.")
		return err
	}
	defer resp.Body.Close()

	memo, err := b.planner.SaveMemo(ctx, userID, resp.Body, ext)
	if err != nil {
		b.sendErrorMessage(chatID, "Could not save your voice memo.")
		return err
	}

	b.sendText(chatID, fmt.Sprintf("Memo saved! 🎙\n%s", memo.AudioURL))
	return nil
}
