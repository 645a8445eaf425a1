package view

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"beaverly/internal/dates"
	"beaverly/internal/model"
)

func TestAgendaCombinesTodayOnly(t *testing.T) {
	today := dates.NewDay(2024, time.March, 15)
	tomorrow := today.AddDays(1)

	tasks := []model.Task{
		{ID: "t1", Text: "Water plants", DueDate: today},
		{ID: "t2", Text: "Done already", DueDate: today, Completed: true},
		{ID: "t3", Text: "Not today", DueDate: tomorrow},
		{ID: "t4", Text: "Undated"},
	}
	bills := []model.Bill{
		{ID: "b1", Name: "Rent", DueDate: today},
		{ID: "b2", Name: "Netflix", DueDate: today, Paid: true},
		{ID: "b3", Name: "Water", DueDate: tomorrow},
	}
	reminders := []model.Reminder{
		{ID: "r1", Text: "Call dentist", Date: today},
		{ID: "r2", Text: "Later", Date: tomorrow},
	}
	events := []model.Event{
		{ID: "e1", Text: "Standup", Date: today},
		{ID: "e2", Text: "Undated event"},
	}

	items := Agenda(today, tasks, bills, reminders, events)

	assert.Equal(t, []AgendaItem{
		{ID: "r1", Text: "Call dentist", Kind: KindReminder},
		{ID: "b1", Text: "Pay Rent", Kind: KindBill},
		{ID: "e1", Text: "Standup", Kind: KindEvent},
		{ID: "t1", Text: "Water plants", Kind: KindTask},
	}, items)
}

func TestAgendaEmpty(t *testing.T) {
	today := dates.NewDay(2024, time.March, 15)
	items := Agenda(today, nil, nil, nil, nil)
	assert.Empty(t, items)
	assert.NotNil(t, items)
}
