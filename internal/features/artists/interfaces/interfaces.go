package artists_interfaces

import (
	users_enums "marca/internal/features/users/enums"

	"github.com/google/uuid"
)

type ArtistDeletionListener interface {
	OnBeforeArtistDeletion(artistID uuid.UUID) error
}

// MembershipNotifier receives membership mutations after they are committed.
// Implementations must not fail the originating operation.
type MembershipNotifier interface {
	OnMemberAdded(artistID, userID uuid.UUID, role users_enums.ArtistRole)
	OnMemberRoleChanged(artistID, userID uuid.UUID, newRole users_enums.ArtistRole)
	OnMemberRemoved(artistID, userID uuid.UUID)
}
