package bot

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log"
	"sync"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"

	"beaverly/internal/charts"
	"beaverly/internal/model"
	"beaverly/internal/repository"
	"beaverly/internal/service"
)

// awaiting names the input a chat's next plain message is parsed as.
type awaiting string

const (
	awaitingNothing  awaiting = ""
	awaitingTask     awaiting = "task"
	awaitingBill     awaiting = "bill"
	awaitingHabit    awaiting = "habit"
	awaitingEvent    awaiting = "event"
	awaitingReminder awaiting = "reminder"
	awaitingShopping awaiting = "shopping"
)

// session is a mounted dashboard for one chat: live snapshots of the
// agenda collections, kept current by the mirror subscriptions until the
// chat is unmounted.
type session struct {
	userID  string
	cancels []func()

	mu        sync.Mutex
	tasks     []model.Task
	bills     []model.Bill
	reminders []model.Reminder
	events    []model.Event
}

func (s *session) close() {
	for _, cancel := range s.cancels {
		cancel()
	}
}

type Bot struct {
	api     *tgbotapi.BotAPI
	planner *service.Planner
	charts  *charts.ChartGenerator

	mu       sync.Mutex
	states   map[int64]awaiting // per-chat pending input
	sessions map[int64]*session
}

func NewBot(token string, planner *service.Planner) (*Bot, error) {
	api, err := tgbotapi.NewBotAPI(token)
	if err != nil {
		return nil, err
	}

	log.Printf("[info] bot authorized on account %s", api.Self.UserName)

	return &Bot{
		api:      api,
		planner:  planner,
		charts:   charts.NewChartGenerator(),
		states:   make(map[int64]awaiting),
		sessions: make(map[int64]*session),
	}, nil
}

// Start runs the long-polling loop until ctx is cancelled.
func (b *Bot) Start(ctx context.Context) error {
	u := tgbotapi.NewUpdate(0)
	u.Timeout = 60

	updates := b.api.GetUpdatesChan(u)

	for {
		select {
		case <-ctx.Done():
			b.api.StopReceivingUpdates()
			b.closeSessions()
			return ctx.Err()
		case update, ok := <-updates:
			if !ok {
				b.closeSessions()
				return nil
			}
			if err := b.handleUpdate(ctx, update); err != nil {
				log.Printf("error handling update: %v", err)
			}
		}
	}
}

// HandleWebhook is the entry point for webhook-delivered updates.
func (b *Bot) HandleWebhook(body []byte) error {
	var update tgbotapi.Update
	if err := json.Unmarshal(body, &update); err != nil {
		return err
	}
	return b.handleUpdate(context.Background(), update)
}

func (b *Bot) handleUpdate(ctx context.Context, update tgbotapi.Update) error {
	if update.Message == nil && update.CallbackQuery == nil {
		return nil
	}

	if update.CallbackQuery != nil {
		return b.handleCallback(ctx, update.CallbackQuery)
	}

	message := update.Message
	if message.Voice != nil || message.Audio != nil {
		return b.handleVoice(ctx, message)
	}
	if message.IsCommand() {
		return b.handleCommand(ctx, message)
	}
	return b.handleMessage(ctx, message)
}

func (b *Bot) closeSessions() {
	b.mu.Lock()
	defer b.mu.Unlock()
	for chatID, sess := range b.sessions {
		sess.close()
		delete(b.sessions, chatID)
	}
}

// mount opens the live dashboard for a chat: one subscription per agenda
// collection, each writing its latest list into the session.
func (b *Bot) mount(ctx context.Context, chatID int64, userID string) error {
	b.mu.Lock()
	if existing, ok := b.sessions[chatID]; ok {
		if existing.userID == userID {
			b.mu.Unlock()
			return nil
		}
		existing.close()
		delete(b.sessions, chatID)
	}
	b.mu.Unlock()

	sess := &session{userID: userID}
	mirrors := b.planner.Mirrors()

	cancelTasks, err := mirrors.Tasks.Subscribe(ctx, userID, func(items []model.Task) {
		sess.mu.Lock()
		sess.tasks = items
		sess.mu.Unlock()
	})
	if err != nil {
		return err
	}
	sess.cancels = append(sess.cancels, cancelTasks)

	cancelBills, err := mirrors.Bills.Subscribe(ctx, userID, func(items []model.Bill) {
		sess.mu.Lock()
		sess.bills = items
		sess.mu.Unlock()
	})
	if err != nil {
		sess.close()
		return err
	}
	sess.cancels = append(sess.cancels, cancelBills)

	cancelReminders, err := mirrors.Reminders.Subscribe(ctx, userID, func(items []model.Reminder) {
		sess.mu.Lock()
		sess.reminders = items
		sess.mu.Unlock()
	})
	if err != nil {
		sess.close()
		return err
	}
	sess.cancels = append(sess.cancels, cancelReminders)

	cancelEvents, err := mirrors.Events.Subscribe(ctx, userID, func(items []model.Event) {
		sess.mu.Lock()
		sess.events = items
		sess.mu.Unlock()
	})
	if err != nil {
		sess.close()
		return err
	}
	sess.cancels = append(sess.cancels, cancelEvents)

	b.mu.Lock()
	b.sessions[chatID] = sess
	b.mu.Unlock()
	return nil
}

// unmount tears the chat's dashboard down and cancels its subscriptions.
func (b *Bot) unmount(chatID int64) {
	b.mu.Lock()
	defer b.mu.Unlock()
	if sess, ok := b.sessions[chatID]; ok {
		sess.close()
		delete(b.sessions, chatID)
	}
}

func (b *Bot) sessionFor(chatID int64) *session {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.sessions[chatID]
}

func (b *Bot) setState(chatID int64, state awaiting) {
	b.mu.Lock()
	defer b.mu.Unlock()
	if state == awaitingNothing {
		delete(b.states, chatID)
		return
	}
	b.states[chatID] = state
}

func (b *Bot) state(chatID int64) awaiting {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.states[chatID]
}

// resolveUser maps the sender to the backend user id, or "" when the chat
// has not linked an account yet.
func (b *Bot) resolveUser(ctx context.Context, telegramID int64) string {
	userID, err := b.planner.ResolveUser(ctx, telegramID)
	if err != nil {
		log.Printf("resolve user %d: %v", telegramID, err)
		return ""
	}
	return userID
}

func (b *Bot) send(msg tgbotapi.Chattable) {
	if _, err := b.api.Send(msg); err != nil {
		log.Printf("send: %v", err)
	}
}

func (b *Bot) sendText(chatID int64, text string) {
	b.send(tgbotapi.NewMessage(chatID, text))
}

func (b *Bot) sendErrorMessage(chatID int64, text string) {
	b.sendText(chatID, "❌ "+text)
}

// reportError turns a service failure into a user-facing message.
func (b *Bot) reportError(chatID int64, err error) {
	switch {
	case errors.Is(err, repository.ErrNotAuthenticated):
		b.sendErrorMessage(chatID, "You are not linked yet. Run /start first.")
	case errors.Is(err, repository.ErrNotFound):
		b.sendErrorMessage(chatID, "That item no longer exists.")
	default:
		b.sendErrorMessage(chatID, fmt.Sprintf("Something went wrong: %v", err))
	}
}
