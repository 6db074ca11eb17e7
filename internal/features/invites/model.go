package invites

import (
	"time"

	users_enums "marca/internal/features/users/enums"

	"github.com/google/uuid"
)

// Invite carries the role it was created with. The role is frozen: accepting
// assigns exactly this role even if the sender's own role changed since.
type Invite struct {
	ID          uuid.UUID              `json:"id"          gorm:"column:id"`
	ArtistID    uuid.UUID              `json:"artistId"    gorm:"column:artist_id"`
	FromUserID  uuid.UUID              `json:"fromUserId"  gorm:"column:from_user_id"`
	ToUserID    uuid.UUID              `json:"toUserId"    gorm:"column:to_user_id"`
	Role        users_enums.ArtistRole `json:"role"        gorm:"column:role"`
	Status      InviteStatus           `json:"status"      gorm:"column:status"`
	CreatedAt   time.Time              `json:"createdAt"   gorm:"column:created_at"`
	RespondedAt *time.Time             `json:"respondedAt" gorm:"column:responded_at"`
}

func (Invite) TableName() string {
	return "invites"
}
