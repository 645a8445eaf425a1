package main

import (
	"context"
	"log"
	"os/signal"
	"syscall"
	"time"

	supabase "github.com/supabase-community/supabase-go"

	"beaverly/internal/bot"
	"beaverly/internal/config"
	"beaverly/internal/mirror"
	"beaverly/internal/model"
	"beaverly/internal/repository"
	"beaverly/internal/service"
)

func main() {
	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatal(err)
	}

	client, err := supabase.NewClient(cfg.SupabaseURL, cfg.SupabaseKey, &supabase.ClientOptions{})
	if err != nil {
		log.Fatal(err)
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
		log.Fatal(err)
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	scheduler := service.NewScheduler(time.Local)
	if _, err := scheduler.ScheduleInterval(cfg.RefreshInterval, func() {
		refreshCtx, cancel := context.WithTimeout(ctx, cfg.RefreshInterval)
		defer cancel()
		mirrors.RefreshAll(refreshCtx)
	}); err != nil {
		log.Fatal(err)
	}
	if _, err := scheduler.ScheduleDailyHour(cfg.AgendaHour, func() {
		agendaCtx, cancel := context.WithTimeout(ctx, time.Minute)
		defer cancel()
		if err := telegramBot.SendDailyAgendas(agendaCtx); err != nil {
			log.Printf("[info] daily agenda push failed: %v", err)
		}
	}); err != nil {
		log.Fatal(err)
	}
	scheduler.Start()
	defer scheduler.Stop()

	if err := telegramBot.Start(ctx); err != nil {
		log.Fatal(err)
	}
}
