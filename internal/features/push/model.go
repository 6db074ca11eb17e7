package push

import (
	"time"

	"github.com/google/uuid"
)

type DeviceToken struct {
	ID        uuid.UUID `json:"id"        gorm:"column:id"`
	UserID    uuid.UUID `json:"userId"    gorm:"column:user_id"`
	Token     string    `json:"token"     gorm:"column:token"`
	Platform  string    `json:"platform"  gorm:"column:platform"`
	CreatedAt time.Time `json:"createdAt" gorm:"column:created_at"`
}

func (DeviceToken) TableName() string {
	return "device_tokens"
}
