package artists_models

import (
	"time"

	"github.com/google/uuid"
)

type Artist struct {
	ID        uuid.UUID `json:"id"        gorm:"column:id"`
	Name      string    `json:"name"      gorm:"column:name"`
	Genre     string    `json:"genre"     gorm:"column:genre"`
	Bio       string    `json:"bio"       gorm:"column:bio"`
	CreatedAt time.Time `json:"createdAt" gorm:"column:created_at"`

	// Cache-related field for negative lookups
	IsNotExists bool `json:"isNotExists,omitempty" gorm:"-"` // Used for caching non-existent artists
}

func (Artist) TableName() string {
	return "artists"
}
