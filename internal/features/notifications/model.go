package notifications

import (
	"time"

	"github.com/google/uuid"
)

type Notification struct {
	ID        uuid.UUID        `json:"id"        gorm:"column:id"`
	UserID    uuid.UUID        `json:"userId"    gorm:"column:user_id"`
	Kind      NotificationKind `json:"kind"      gorm:"column:kind"`
	Message   string           `json:"message"   gorm:"column:message"`
	EntityID  uuid.UUID        `json:"entityId"  gorm:"column:entity_id"`
	ArtistID  *uuid.UUID       `json:"artistId"  gorm:"column:artist_id"`
	IsRead    bool             `json:"isRead"    gorm:"column:is_read"`
	CreatedAt time.Time        `json:"createdAt" gorm:"column:created_at"`
}

func (Notification) TableName() string {
	return "notifications"
}

// ChangeEvent is the advisory payload pushed over the realtime channel.
// The store remains the source of truth: clients merge events
// idempotently by entity id and can always re-fetch.
type ChangeEvent struct {
	Kind       ChangeEventKind `json:"kind"`
	Action     string          `json:"action"`
	EntityID   uuid.UUID       `json:"entityId"`
	ArtistID   *uuid.UUID      `json:"artistId,omitempty"`
	OccurredAt time.Time       `json:"occurredAt"`
}
