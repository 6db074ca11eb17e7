package artists_services

import "errors"

// Domain failures returned by the artist and membership services.
// Controllers match these with errors.Is to pick response codes.
var (
	ErrForbidden           = errors.New("insufficient permissions")
	ErrArtistNotFound      = errors.New("artist not found")
	ErrMembershipNotFound  = errors.New("user is not a member of this artist")
	ErrDuplicateMembership = errors.New("user is already a member of this artist")
	ErrSelfModification    = errors.New("cannot change your own role")
	ErrSelfRemoval         = errors.New("cannot remove yourself from an artist")
	ErrLastOwner           = errors.New("artist must keep at least one owner")
)
