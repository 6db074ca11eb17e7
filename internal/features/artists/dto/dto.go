package artists_dto

import (
	"time"

	users_enums "marca/internal/features/users/enums"

	"github.com/google/uuid"
)

type AddMemberStatus string

const (
	AddStatusInvited AddMemberStatus = "INVITED"
	AddStatusAdded   AddMemberStatus = "ADDED"
)

// Artist DTOs
type CreateArtistRequestDTO struct {
	Name  string `json:"name"  binding:"required,min=1,max=255"`
	Genre string `json:"genre" binding:"max=255"`
	Bio   string `json:"bio"   binding:"max=4096"`
}

type UpdateArtistRequestDTO struct {
	Name  string `json:"name"  binding:"required,min=1,max=255"`
	Genre string `json:"genre" binding:"max=255"`
	Bio   string `json:"bio"   binding:"max=4096"`
}

type ArtistResponseDTO struct {
	ID        uuid.UUID `json:"id"`
	Name      string    `json:"name"`
	Genre     string    `json:"genre"`
	CreatedAt time.Time `json:"createdAt"`

	// User's role within this artist (populated when fetching for specific user)
	UserRole *users_enums.ArtistRole `json:"userRole,omitempty"`
}

type ListArtistsResponseDTO struct {
	Artists []ArtistResponseDTO `json:"artists"`
}

// Membership DTOs
type AddMemberRequestDTO struct {
	Email string                 `json:"email" binding:"required,email"`
	Role  users_enums.ArtistRole `json:"role"  binding:"required"`
}

type AddMemberResponseDTO struct {
	Status AddMemberStatus `json:"status"`
}

type ChangeMemberRoleRequestDTO struct {
	Role users_enums.ArtistRole `json:"role" binding:"required"`
}

type TransferOwnershipRequestDTO struct {
	NewOwnerEmail string `json:"newOwnerEmail" binding:"required,email"`
}

type ArtistMemberResponseDTO struct {
	ID          uuid.UUID              `json:"id"`
	UserID      uuid.UUID              `json:"userId"`
	Email       string                 `json:"email"`       // Populated from user join
	DisplayName string                 `json:"displayName"` // Populated from user join
	Role        users_enums.ArtistRole `json:"role"`
	CreatedAt   time.Time              `json:"createdAt"`
}

type GetMembersResponseDTO struct {
	Members []ArtistMemberResponseDTO `json:"members"`
}
