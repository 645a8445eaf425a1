package service

import (
	"context"
	"fmt"
	"io"
	"time"

	"github.com/google/uuid"

	"beaverly/internal/dates"
	"beaverly/internal/mirror"
	"beaverly/internal/model"
	"beaverly/internal/view"
)

// Mirrors bundles the live collection adapters, one per entity type.
type Mirrors struct {
	Tasks     *mirror.Mirror[model.Task]
	Bills     *mirror.Mirror[model.Bill]
	Habits    *mirror.Mirror[model.Habit]
	Events    *mirror.Mirror[model.Event]
	Reminders *mirror.Mirror[model.Reminder]
	Shopping  *mirror.Mirror[model.ShoppingItem]
	Memos     *mirror.Mirror[model.Memo]
}

// RefreshAll re-lists every subscribed collection. Wired to the interval
// scheduler as the stand-in for backend push.
func (m *Mirrors) RefreshAll(ctx context.Context) {
	m.Tasks.Refresh(ctx)
	m.Bills.Refresh(ctx)
	m.Habits.Refresh(ctx)
	m.Events.Refresh(ctx)
	m.Reminders.Refresh(ctx)
	m.Shopping.Refresh(ctx)
	m.Memos.Refresh(ctx)
}

// AccountStore resolves Telegram identities to backend user ids.
type AccountStore interface {
	FindByTelegramID(ctx context.Context, telegramID int64) (*model.Account, error)
	Insert(ctx context.Context, account model.Account) (model.Account, error)
}

// Planner provides every domain operation over the productivity
// collections.
type Planner struct {
	mirrors  *Mirrors
	blobs    BlobStore
	accounts AccountStore
	loc      *time.Location
}

// BlobStore is the audio attachment contract consumed by memo operations.
type BlobStore interface {
	Upload(ctx context.Context, path string, data io.Reader) (string, error)
	Remove(ctx context.Context, path string) error
}

// NewPlanner creates a planner over the given mirrors and stores. Day
// bucketing uses loc.
func NewPlanner(mirrors *Mirrors, blobs BlobStore, accounts AccountStore, loc *time.Location) *Planner {
	if loc == nil {
		loc = time.Local
	}
	return &Planner{
		mirrors:  mirrors,
		blobs:    blobs,
		accounts: accounts,
		loc:      loc,
	}
}

// Mirrors exposes the collection adapters for subscription from the
// presentation layer.
func (p *Planner) Mirrors() *Mirrors {
	return p.mirrors
}

// Today returns the current calendar day in the planner's location.
func (p *Planner) Today() dates.Day {
	return dates.Today(p.loc)
}

// EnsureAccount issues an opaque user id for a Telegram identity, creating
// the account on first contact.
func (p *Planner) EnsureAccount(ctx context.Context, telegramID int64) (string, error) {
	account, err := p.accounts.FindByTelegramID(ctx, telegramID)
	if err != nil {
		return "", fmt.Errorf("failed to look up account: %w", err)
	}
	if account != nil {
		return account.UserID, nil
	}

	created, err := p.accounts.Insert(ctx, model.Account{
		TelegramID: telegramID,
		UserID:     uuid.New().String(),
		CreatedAt:  dates.Now(),
	})
	if err != nil {
		return "", fmt.Errorf("failed to create account: %w", err)
	}
	return created.UserID, nil
}

// ResolveUser returns the user id linked to a Telegram identity, or ""
// when there is no account yet.
func (p *Planner) ResolveUser(ctx context.Context, telegramID int64) (string, error) {
	account, err := p.accounts.FindByTelegramID(ctx, telegramID)
	if err != nil {
		return "", fmt.Errorf("failed to look up account: %w", err)
	}
	if account == nil {
		return "", nil
	}
	return account.UserID, nil
}

// DailyAgenda builds the combined view of everything due today.
func (p *Planner) DailyAgenda(ctx context.Context, userID string) ([]view.AgendaItem, error) {
	tasks, err := p.mirrors.Tasks.List(ctx, userID)
	if err != nil {
		return nil, err
	}
	bills, err := p.mirrors.Bills.List(ctx, userID)
	if err != nil {
		return nil, err
	}
	reminders, err := p.mirrors.Reminders.List(ctx, userID)
	if err != nil {
		return nil, err
	}
	events, err := p.mirrors.Events.List(ctx, userID)
	if err != nil {
		return nil, err
	}
	return view.Agenda(p.Today(), tasks, bills, reminders, events), nil
}

// Progress is the productivity overview behind the /progress charts.
type Progress struct {
	Week  []view.DayCount
	Split view.Split
}

func (p *Planner) ProgressReport(ctx context.Context, userID string) (*Progress, error) {
	tasks, err := p.mirrors.Tasks.List(ctx, userID)
	if err != nil {
		return nil, err
	}
	return &Progress{
		Week:  view.WeeklyCompletions(p.Today(), p.loc, tasks),
		Split: view.CompletionSplit(tasks),
	}, nil
}

// CalendarDensity buckets every dated item by day, clamped into levels.
func (p *Planner) CalendarDensity(ctx context.Context, userID string) (map[dates.Day]int, error) {
	tasks, err := p.mirrors.Tasks.List(ctx, userID)
	if err != nil {
		return nil, err
	}
	bills, err := p.mirrors.Bills.List(ctx, userID)
	if err != nil {
		return nil, err
	}
	events, err := p.mirrors.Events.List(ctx, userID)
	if err != nil {
		return nil, err
	}
	reminders, err := p.mirrors.Reminders.List(ctx, userID)
	if err != nil {
		return nil, err
	}
	return view.Density(tasks, bills, events, reminders), nil
}
