package events

import (
	"errors"
	"time"

	"marca/internal/storage"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type EventRepository struct{}

func (r *EventRepository) CreateEvent(event *Event) error {
	if event.ID == uuid.Nil {
		event.ID = uuid.New()
	}

	if event.CreatedAt.IsZero() {
		event.CreatedAt = time.Now().UTC()
	}

	return storage.GetDb().Create(event).Error
}

func (r *EventRepository) GetEventByID(eventID uuid.UUID) (*Event, error) {
	var event Event

	err := storage.GetDb().Where("id = ?", eventID).First(&event).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}

		return nil, err
	}

	return &event, nil
}

func (r *EventRepository) GetEventsByArtist(artistID uuid.UUID) ([]*Event, error) {
	events := make([]*Event, 0)

	err := storage.GetDb().
		Where("artist_id = ?", artistID).
		Order("event_date DESC").
		Find(&events).Error

	return events, err
}

func (r *EventRepository) UpdateEvent(event *Event) error {
	return storage.GetDb().Save(event).Error
}

func (r *EventRepository) DeleteEvent(eventID uuid.UUID) error {
	if err := storage.GetDb().Where("event_id = ?", eventID).Delete(&Expense{}).Error; err != nil {
		return err
	}

	return storage.GetDb().Delete(&Event{}, eventID).Error
}

func (r *EventRepository) DeleteEventsByArtist(artistID uuid.UUID) error {
	err := storage.GetDb().Exec(`
		DELETE FROM expenses
		WHERE event_id IN (SELECT id FROM events WHERE artist_id = ?)`, artistID).Error
	if err != nil {
		return err
	}

	return storage.GetDb().Where("artist_id = ?", artistID).Delete(&Event{}).Error
}

type ExpenseRepository struct{}

func (r *ExpenseRepository) CreateExpense(expense *Expense) error {
	if expense.ID == uuid.Nil {
		expense.ID = uuid.New()
	}

	if expense.CreatedAt.IsZero() {
		expense.CreatedAt = time.Now().UTC()
	}

	return storage.GetDb().Create(expense).Error
}

func (r *ExpenseRepository) GetExpensesByEvent(eventID uuid.UUID) ([]*Expense, error) {
	expenses := make([]*Expense, 0)

	err := storage.GetDb().
		Where("event_id = ?", eventID).
		Order("created_at ASC").
		Find(&expenses).Error

	return expenses, err
}

func (r *ExpenseRepository) GetExpenseByID(expenseID uuid.UUID) (*Expense, error) {
	var expense Expense

	err := storage.GetDb().Where("id = ?", expenseID).First(&expense).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}

		return nil, err
	}

	return &expense, nil
}

func (r *ExpenseRepository) DeleteExpense(expenseID uuid.UUID) error {
	return storage.GetDb().Delete(&Expense{}, expenseID).Error
}

func (r *ExpenseRepository) SumExpensesByEvent(eventID uuid.UUID) (int64, error) {
	var total *int64

	err := storage.GetDb().
		Model(&Expense{}).
		Select("SUM(amount_cents)").
		Where("event_id = ?", eventID).
		Scan(&total).Error
	if err != nil {
		return 0, err
	}

	if total == nil {
		return 0, nil
	}

	return *total, nil
}
