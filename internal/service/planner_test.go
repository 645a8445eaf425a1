package service

import (
	"bytes"
	"context"
	"errors"
	"io"
	"strconv"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"beaverly/internal/dates"
	"beaverly/internal/mirror"
	"beaverly/internal/model"
	"beaverly/internal/repository"
)

// memStore is an in-memory Store[T] parameterized over the per-type
// accessors the generic operations need.
type memStore[T any] struct {
	items  []T
	nextID int
	getID  func(T) string
	setID  func(*T, string)
	owner  func(T) string
	apply  func(*T, map[string]any)
}

func (s *memStore[T]) List(ctx context.Context, userID string) ([]T, error) {
	out := make([]T, 0)
	for _, it := range s.items {
		if s.owner(it) == userID {
			out = append(out, it)
		}
	}
	return out, nil
}

func (s *memStore[T]) Insert(ctx context.Context, it T) (T, error) {
	s.nextID++
	s.setID(&it, strconv.Itoa(s.nextID))
	s.items = append(s.items, it)
	return it, nil
}

func (s *memStore[T]) Update(ctx context.Context, userID, id string, fields map[string]any) error {
	for i := range s.items {
		if s.owner(s.items[i]) == userID && s.getID(s.items[i]) == id {
			s.apply(&s.items[i], fields)
			return nil
		}
	}
	return repository.ErrNotFound
}

func (s *memStore[T]) Delete(ctx context.Context, userID, id string) error {
	for i := range s.items {
		if s.owner(s.items[i]) == userID && s.getID(s.items[i]) == id {
			s.items = append(s.items[:i], s.items[i+1:]...)
			return nil
		}
	}
	return repository.ErrNotFound
}

func (s *memStore[T]) DeleteCompleted(ctx context.Context, userID string) error {
	return nil
}

func newTaskStore() *memStore[model.Task] {
	return &memStore[model.Task]{
		getID: func(t model.Task) string { return t.ID },
		setID: func(t *model.Task, id string) { t.ID = id },
		owner: func(t model.Task) string { return t.UserID },
		apply: func(t *model.Task, fields map[string]any) {
			if v, ok := fields["completed"].(bool); ok {
				t.Completed = v
			}
			if v, ok := fields["text"].(string); ok {
				t.Text = v
			}
		},
	}
}

func newBillStore() *memStore[model.Bill] {
	return &memStore[model.Bill]{
		getID: func(b model.Bill) string { return b.ID },
		setID: func(b *model.Bill, id string) { b.ID = id },
		owner: func(b model.Bill) string { return b.UserID },
		apply: func(b *model.Bill, fields map[string]any) {
			if v, ok := fields["paid"].(bool); ok {
				b.Paid = v
			}
		},
	}
}

func newHabitStore() *memStore[model.Habit] {
	return &memStore[model.Habit]{
		getID: func(h model.Habit) string { return h.ID },
		setID: func(h *model.Habit, id string) { h.ID = id },
		owner: func(h model.Habit) string { return h.UserID },
		apply: func(h *model.Habit, fields map[string]any) {
			if v, ok := fields["completions"].(map[dates.Day]bool); ok {
				h.Completions = v
			}
		},
	}
}

func newEventStore() *memStore[model.Event] {
	return &memStore[model.Event]{
		getID: func(e model.Event) string { return e.ID },
		setID: func(e *model.Event, id string) { e.ID = id },
		owner: func(e model.Event) string { return e.UserID },
		apply: func(e *model.Event, fields map[string]any) {},
	}
}

func newReminderStore() *memStore[model.Reminder] {
	return &memStore[model.Reminder]{
		getID: func(r model.Reminder) string { return r.ID },
		setID: func(r *model.Reminder, id string) { r.ID = id },
		owner: func(r model.Reminder) string { return r.UserID },
		apply: func(r *model.Reminder, fields map[string]any) {},
	}
}

func newMemoStore() *memStore[model.Memo] {
	return &memStore[model.Memo]{
		getID: func(m model.Memo) string { return m.ID },
		setID: func(m *model.Memo, id string) { m.ID = id },
		owner: func(m model.Memo) string { return m.UserID },
		apply: func(m *model.Memo, fields map[string]any) {},
	}
}

type fakeBlobStore struct {
	uploads   []string
	removed   []string
	removeErr error
}

func (s *fakeBlobStore) Upload(ctx context.Context, path string, data io.Reader) (string, error) {
	s.uploads = append(s.uploads, path)
	return "https://blob.test/" + path, nil
}

func (s *fakeBlobStore) Remove(ctx context.Context, path string) error {
	if s.removeErr != nil {
		return s.removeErr
	}
	s.removed = append(s.removed, path)
	return nil
}

type fakeAccounts struct {
	accounts []model.Account
}

func (s *fakeAccounts) FindByTelegramID(ctx context.Context, telegramID int64) (*model.Account, error) {
	for _, a := range s.accounts {
		if a.TelegramID == telegramID {
			account := a
			return &account, nil
		}
	}
	return nil, nil
}

func (s *fakeAccounts) Insert(ctx context.Context, account model.Account) (model.Account, error) {
	s.accounts = append(s.accounts, account)
	return account, nil
}

type fixtures struct {
	planner  *Planner
	tasks    *memStore[model.Task]
	bills    *memStore[model.Bill]
	habits   *memStore[model.Habit]
	memos    *memStore[model.Memo]
	blobs    *fakeBlobStore
	accounts *fakeAccounts
}

func newFixtures() *fixtures {
	f := &fixtures{
		tasks:    newTaskStore(),
		bills:    newBillStore(),
		habits:   newHabitStore(),
		memos:    newMemoStore(),
		blobs:    &fakeBlobStore{},
		accounts: &fakeAccounts{},
	}
	mirrors := &Mirrors{
		Tasks:     mirror.New[model.Task](f.tasks),
		Bills:     mirror.New[model.Bill](f.bills),
		Habits:    mirror.New[model.Habit](f.habits),
		Events:    mirror.New[model.Event](newEventStore()),
		Reminders: mirror.New[model.Reminder](newReminderStore()),
		Memos:     mirror.New[model.Memo](f.memos),
	}
	f.planner = NewPlanner(mirrors, f.blobs, f.accounts, time.UTC)
	return f
}

func TestPayRecurringBillAppendsNextOccurrence(t *testing.T) {
	f := newFixtures()
	ctx := context.Background()

	bill, err := f.planner.AddBill(ctx, "alice", "Rent", 1200, dates.NewDay(2024, time.January, 15), true)
	require.NoError(t, err)

	next, err := f.planner.PayBill(ctx, "alice", bill)
	require.NoError(t, err)
	require.NotNil(t, next)
	assert.Equal(t, dates.NewDay(2024, time.February, 15), next.DueDate)
	assert.False(t, next.Paid)
	assert.True(t, next.Recurring)
	assert.Equal(t, 1200.0, next.Amount)

	bills, err := f.planner.ListBills(ctx, "alice")
	require.NoError(t, err)
	require.Len(t, bills, 2)
	assert.True(t, bills[0].Paid, "original record gains only the flag")
	assert.Equal(t, dates.NewDay(2024, time.January, 15), bills[0].DueDate)
}

func TestPayRecurringBillClampsMonthEnd(t *testing.T) {
	f := newFixtures()
	ctx := context.Background()

	bill, err := f.planner.AddBill(ctx, "alice", "Card", 50, dates.NewDay(2024, time.January, 31), true)
	require.NoError(t, err)

	next, err := f.planner.PayBill(ctx, "alice", bill)
	require.NoError(t, err)
	require.NotNil(t, next)
	assert.Equal(t, dates.NewDay(2024, time.February, 29), next.DueDate)
}

func TestPayNonRecurringBill(t *testing.T) {
	f := newFixtures()
	ctx := context.Background()

	bill, err := f.planner.AddBill(ctx, "alice", "One-off", 10, dates.NewDay(2024, time.March, 1), false)
	require.NoError(t, err)

	next, err := f.planner.PayBill(ctx, "alice", bill)
	require.NoError(t, err)
	assert.Nil(t, next)

	bills, err := f.planner.ListBills(ctx, "alice")
	require.NoError(t, err)
	assert.Len(t, bills, 1)
}

func TestPayAlreadyPaidRecurringBillDoesNotDuplicate(t *testing.T) {
	f := newFixtures()
	ctx := context.Background()

	bill, err := f.planner.AddBill(ctx, "alice", "Rent", 1200, dates.NewDay(2024, time.January, 15), true)
	require.NoError(t, err)
	_, err = f.planner.PayBill(ctx, "alice", bill)
	require.NoError(t, err)

	// The caller re-sends a stale handle that is already paid in the store.
	bill.Paid = true
	next, err := f.planner.PayBill(ctx, "alice", bill)
	require.NoError(t, err)
	assert.Nil(t, next)

	bills, err := f.planner.ListBills(ctx, "alice")
	require.NoError(t, err)
	assert.Len(t, bills, 2)
}

func TestAddBillValidation(t *testing.T) {
	f := newFixtures()
	ctx := context.Background()

	_, err := f.planner.AddBill(ctx, "alice", "  ", 10, dates.NewDay(2024, time.March, 1), false)
	assert.Error(t, err)

	_, err = f.planner.AddBill(ctx, "alice", "Rent", 10, dates.Day{}, false)
	assert.Error(t, err)
}

func TestAddTaskValidation(t *testing.T) {
	f := newFixtures()
	ctx := context.Background()

	_, err := f.planner.AddTask(ctx, "alice", TaskInput{Text: "   "})
	assert.Error(t, err)

	task, err := f.planner.AddTask(ctx, "alice", TaskInput{Text: "  water plants  "})
	require.NoError(t, err)
	assert.Equal(t, "water plants", task.Text)
	assert.False(t, task.CreatedAt.IsZero())
}

func TestToggleHabitDayFlipsOneKey(t *testing.T) {
	f := newFixtures()
	ctx := context.Background()

	habit, err := f.planner.AddHabit(ctx, "alice", "Run", "🏃")
	require.NoError(t, err)

	monday := dates.NewDay(2024, time.March, 11)
	tuesday := dates.NewDay(2024, time.March, 12)

	require.NoError(t, f.planner.ToggleHabitDay(ctx, "alice", habit, monday))

	habits, err := f.planner.ListHabits(ctx, "alice")
	require.NoError(t, err)
	require.Len(t, habits, 1)
	assert.True(t, habits[0].Completions[monday])

	require.NoError(t, f.planner.ToggleHabitDay(ctx, "alice", habits[0], tuesday))
	habits, err = f.planner.ListHabits(ctx, "alice")
	require.NoError(t, err)
	assert.True(t, habits[0].Completions[monday], "other days stay untouched")
	assert.True(t, habits[0].Completions[tuesday])

	// Toggling a set day removes its key rather than storing false.
	require.NoError(t, f.planner.ToggleHabitDay(ctx, "alice", habits[0], monday))
	habits, err = f.planner.ListHabits(ctx, "alice")
	require.NoError(t, err)
	_, present := habits[0].Completions[monday]
	assert.False(t, present)
	assert.True(t, habits[0].Completions[tuesday])
}

func TestSaveMemoUploadsThenRecords(t *testing.T) {
	f := newFixtures()
	ctx := context.Background()

	memo, err := f.planner.SaveMemo(ctx, "alice", bytes.NewReader([]byte("audio")), ".oga")
	require.NoError(t, err)

	require.Len(t, f.blobs.uploads, 1)
	assert.Equal(t, f.blobs.uploads[0], memo.StoragePath)
	assert.Contains(t, memo.StoragePath, "voice-memos/alice/")
	assert.Equal(t, "https://blob.test/"+memo.StoragePath, memo.AudioURL)
}

func TestDeleteMemoRemovesBlobFirst(t *testing.T) {
	f := newFixtures()
	ctx := context.Background()

	memo, err := f.planner.SaveMemo(ctx, "alice", bytes.NewReader([]byte("audio")), ".oga")
	require.NoError(t, err)

	require.NoError(t, f.planner.DeleteMemo(ctx, "alice", memo))
	assert.Equal(t, []string{memo.StoragePath}, f.blobs.removed)

	memos, err := f.planner.ListMemos(ctx, "alice")
	require.NoError(t, err)
	assert.Empty(t, memos)
}

func TestDeleteMemoKeepsRecordOnBlobFailure(t *testing.T) {
	f := newFixtures()
	ctx := context.Background()

	memo, err := f.planner.SaveMemo(ctx, "alice", bytes.NewReader([]byte("audio")), ".oga")
	require.NoError(t, err)

	f.blobs.removeErr = errors.New("storage down")
	require.Error(t, f.planner.DeleteMemo(ctx, "alice", memo))

	memos, err := f.planner.ListMemos(ctx, "alice")
	require.NoError(t, err)
	assert.Len(t, memos, 1, "record survives a failed blob removal")
}

func TestEnsureAccountIsIdempotent(t *testing.T) {
	f := newFixtures()
	ctx := context.Background()

	first, err := f.planner.EnsureAccount(ctx, 42)
	require.NoError(t, err)
	assert.NotEmpty(t, first)

	second, err := f.planner.EnsureAccount(ctx, 42)
	require.NoError(t, err)
	assert.Equal(t, first, second)
	assert.Len(t, f.accounts.accounts, 1)
}

func TestResolveUserWithoutAccount(t *testing.T) {
	f := newFixtures()

	userID, err := f.planner.ResolveUser(context.Background(), 99)
	require.NoError(t, err)
	assert.Empty(t, userID)
}

func TestDailyAgendaAndDensity(t *testing.T) {
	f := newFixtures()
	ctx := context.Background()
	today := f.planner.Today()

	_, err := f.planner.AddTask(ctx, "alice", TaskInput{Text: "Due today", DueDate: today})
	require.NoError(t, err)
	_, err = f.planner.AddTask(ctx, "alice", TaskInput{Text: "Undated"})
	require.NoError(t, err)
	_, err = f.planner.AddBill(ctx, "alice", "Rent", 1200, today, false)
	require.NoError(t, err)

	agenda, err := f.planner.DailyAgenda(ctx, "alice")
	require.NoError(t, err)
	require.Len(t, agenda, 2)

	density, err := f.planner.CalendarDensity(ctx, "alice")
	require.NoError(t, err)
	assert.Equal(t, 2, density[today])
}
