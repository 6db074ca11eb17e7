package artists_models

import (
	"time"

	users_enums "marca/internal/features/users/enums"

	"github.com/google/uuid"
)

type ArtistMembership struct {
	ID        uuid.UUID              `json:"id"        gorm:"column:id"`
	UserID    uuid.UUID              `json:"userId"    gorm:"column:user_id"`
	ArtistID  uuid.UUID              `json:"artistId"  gorm:"column:artist_id"`
	Role      users_enums.ArtistRole `json:"role"      gorm:"column:role"`
	CreatedAt time.Time              `json:"createdAt" gorm:"column:created_at"`
}

func (ArtistMembership) TableName() string {
	return "artist_memberships"
}
