package main

import (
	"context"
	"time"

	supabase "github.com/supabase-community/supabase-go"

	"beaverly/internal/bot"
	"beaverly/internal/config"
	"beaverly/internal/mirror"
	"beaverly/internal/model"
	"beaverly/internal/repository"
	"beaverly/internal/service"
)

// Request is the incoming API Gateway payload.
type Request struct {
	Body string `json:"body"`
}

// Response is the API Gateway reply.
type Response struct {
	StatusCode int               `json:"statusCode"`
	Body       string            `json:"body"`
	Headers    map[string]string `json:"headers,omitempty"`
}

// Handler processes a single Telegram webhook update. Every invocation
// builds a fresh bot; the function runtime keeps no state between calls.
func Handler(ctx context.Context, request Request) (*Response, error) {
	cfg, err := config.LoadConfig()
	if err != nil {
		return errorResponse(err)
	}

	client, err := supabase.NewClient(cfg.SupabaseURL, cfg.SupabaseKey, &supabase.ClientOptions{})
	if err != nil {
		return errorResponse(err)
	}

	mirrors := &service.Mirrors{
		Tasks:     mirror.New(repository.NewCollection[model.Task](client, "tasks", "created_at.asc", "completed")),
		Bills:     mirror.New(repository.NewCollection[model.Bill](client, "bills", "due_date.asc", "")),
		Habits:    mirror.New(repository.NewCollection[model.Habit](client, "habits", "created_at.asc", "")),
		Events:    mirror.New(repository.NewCollection[model.Event](client, "events", "date.asc", "")),
		Reminders: mirror.New(repository.NewCollection[model.Reminder](client, "reminders", "date.asc", "")),
		Shopping:  mirror.New(repository.NewCollection[model.ShoppingItem](client, "shopping_items", "created_at.asc", "completed")),
		Memos:     mirror.New(repository.NewCollection[model.Memo](client, "memos", "created_at.desc", "")),
	}

	blobs := repository.NewSupabaseBlobStore(client, cfg.SupabaseBucket)
	accounts := repository.NewAccountRepository(client)
	planner := service.NewPlanner(mirrors, blobs, accounts, time.Local)

	telegramBot, err := bot.NewBot(cfg.TelegramToken, planner)
	if err != nil {
		return errorResponse(err)
	}

	if err := telegramBot.HandleWebhook([]byte(request.Body)); err != nil {
		return errorResponse(err)
	}

	return &Response{
		StatusCode: 200,
		Body:       "",
		Headers: map[string]string{
			"Content-Type": "application/json",
		},
	}, nil
}

func errorResponse(err error) (*Response, error) {
	return &Response{
		StatusCode: 500,
		Body:       err.Error(),
		Headers: map[string]string{
			"Content-Type": "application/json",
		},
	}, nil
}

func main() {
	// Entry point for local invocation only; production runs Handler.
}
