package permissions

import (
	users_enums "marca/internal/features/users/enums"

	"github.com/google/uuid"
)

// PermissionSnapshot is the materialized view of one user's standing within
// one artist. It is derived state: the membership row is authoritative and
// the snapshot is dropped whenever that row changes.
type PermissionSnapshot struct {
	UserID       uuid.UUID              `json:"userId"`
	ArtistID     uuid.UUID              `json:"artistId"`
	Role         users_enums.ArtistRole `json:"role"`
	Capabilities Capabilities           `json:"capabilities"`
}
