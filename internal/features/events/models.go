package events

import (
	"time"

	"github.com/google/uuid"
)

type Event struct {
	ID         uuid.UUID `json:"id"         gorm:"column:id"`
	ArtistID   uuid.UUID `json:"artistId"   gorm:"column:artist_id"`
	Title      string    `json:"title"      gorm:"column:title"`
	Venue      string    `json:"venue"      gorm:"column:venue"`
	EventDate  time.Time `json:"eventDate"  gorm:"column:event_date"`
	ValueCents *int64    `json:"valueCents" gorm:"column:value_cents"`
	Notes      string    `json:"notes"      gorm:"column:notes"`
	CreatedAt  time.Time `json:"createdAt"  gorm:"column:created_at"`
}

func (Event) TableName() string {
	return "events"
}

type Expense struct {
	ID          uuid.UUID `json:"id"          gorm:"column:id"`
	EventID     uuid.UUID `json:"eventId"     gorm:"column:event_id"`
	Description string    `json:"description" gorm:"column:description"`
	AmountCents int64     `json:"amountCents" gorm:"column:amount_cents"`
	CreatedAt   time.Time `json:"createdAt"   gorm:"column:created_at"`
}

func (Expense) TableName() string {
	return "expenses"
}
