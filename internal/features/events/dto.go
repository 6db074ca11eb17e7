package events

import (
	"time"

	"github.com/google/uuid"
)

type CreateEventRequestDTO struct {
	Title      string `json:"title"      binding:"required,min=1,max=255"`
	Venue      string `json:"venue"      binding:"max=255"`
	Date       any    `json:"date"       binding:"required"`
	ValueCents *int64 `json:"valueCents"`
	Notes      string `json:"notes"      binding:"max=4096"`
}

type UpdateEventRequestDTO struct {
	Title      string `json:"title"      binding:"required,min=1,max=255"`
	Venue      string `json:"venue"      binding:"max=255"`
	Date       any    `json:"date"       binding:"required"`
	ValueCents *int64 `json:"valueCents"`
	Notes      string `json:"notes"      binding:"max=4096"`
}

// EventResponseDTO mirrors Event; ValueCents is omitted for members without
// financial access.
type EventResponseDTO struct {
	ID         uuid.UUID `json:"id"`
	ArtistID   uuid.UUID `json:"artistId"`
	Title      string    `json:"title"`
	Venue      string    `json:"venue"`
	EventDate  time.Time `json:"eventDate"`
	ValueCents *int64    `json:"valueCents,omitempty"`
	Notes      string    `json:"notes"`
	CreatedAt  time.Time `json:"createdAt"`
}

type ListEventsResponseDTO struct {
	Events []*EventResponseDTO `json:"events"`
}

type CreateExpenseRequestDTO struct {
	Description string `json:"description" binding:"required,min=1,max=1024"`
	AmountCents int64  `json:"amountCents" binding:"required,gt=0"`
}

type ListExpensesResponseDTO struct {
	Expenses []*Expense `json:"expenses"`
}

type EventFinancialsDTO struct {
	EventID       uuid.UUID `json:"eventId"`
	Title         string    `json:"title"`
	ValueCents    int64     `json:"valueCents"`
	ExpensesCents int64     `json:"expensesCents"`
}

type FinancialSummaryResponseDTO struct {
	ArtistID           uuid.UUID             `json:"artistId"`
	TotalValueCents    int64                 `json:"totalValueCents"`
	TotalExpensesCents int64                 `json:"totalExpensesCents"`
	NetCents           int64                 `json:"netCents"`
	Events             []*EventFinancialsDTO `json:"events"`
}
