package users_enums

// ArtistRole is a user's role within a single artist (band). Roles are
// ordered by breadth: VIEWER < EDITOR < ARTIST_ADMIN < OWNER.
type ArtistRole string

const (
	ArtistRoleViewer ArtistRole = "VIEWER"
	ArtistRoleEditor ArtistRole = "EDITOR"
	ArtistRoleAdmin  ArtistRole = "ARTIST_ADMIN"
	ArtistRoleOwner  ArtistRole = "OWNER"
)

func (r ArtistRole) IsValid() bool {
	switch r {
	case ArtistRoleViewer, ArtistRoleEditor, ArtistRoleAdmin, ArtistRoleOwner:
		return true
	default:
		return false
	}
}
