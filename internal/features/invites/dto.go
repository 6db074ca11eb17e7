package invites

import (
	"time"

	users_enums "marca/internal/features/users/enums"

	"github.com/google/uuid"
)

type CreateInviteRequestDTO struct {
	Email string                 `json:"email" binding:"required,email"`
	Role  users_enums.ArtistRole `json:"role"  binding:"required"`
}

type InviteDTO struct {
	ID            uuid.UUID              `json:"id"            gorm:"column:id"`
	ArtistID      uuid.UUID              `json:"artistId"      gorm:"column:artist_id"`
	ArtistName    string                 `json:"artistName"    gorm:"column:artist_name"`
	FromUserID    uuid.UUID              `json:"fromUserId"    gorm:"column:from_user_id"`
	FromUserEmail string                 `json:"fromUserEmail" gorm:"column:from_user_email"`
	ToUserID      uuid.UUID              `json:"toUserId"      gorm:"column:to_user_id"`
	ToUserEmail   string                 `json:"toUserEmail"   gorm:"column:to_user_email"`
	Role          users_enums.ArtistRole `json:"role"          gorm:"column:role"`
	Status        InviteStatus           `json:"status"        gorm:"column:status"`
	CreatedAt     time.Time              `json:"createdAt"     gorm:"column:created_at"`
	RespondedAt   *time.Time             `json:"respondedAt"   gorm:"column:responded_at"`
}

// ListInvitesResponseDTO partitions invites into pending and resolved,
// each newest first.
type ListInvitesResponseDTO struct {
	Pending  []*InviteDTO `json:"pending"`
	Resolved []*InviteDTO `json:"resolved"`
}
